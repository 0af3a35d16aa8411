package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// ItineraryClientInterface is what the trip service needs from an AI
// provider: raw itinerary JSON plus embeddings for hotel ranking.
type ItineraryClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, prompt string, dayCount int) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

// GeminiItineraryClient implements ItineraryClientInterface using Google's
// Gemini models.
type GeminiItineraryClient struct {
	client *genai.Client
	model  string
}

func NewGeminiItineraryClient(apiKey, model string) (ItineraryClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiItineraryClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateItineraryJSON asks Gemini for an itinerary document. The prompt is
// assumed to be already sanitized and escaped by the caller; this method only
// enforces output shape.
func (c *GeminiItineraryClient) GenerateItineraryJSON(ctx context.Context, prompt string, dayCount int) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if dayCount < 1 || dayCount > 30 {
		return "", fmt.Errorf("bad dayCount %d", dayCount)
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so brace-matching stays a fallback, not the norm.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(5000)

	full := fmt.Sprintf(`Create a %d-day travel itinerary. Return JSON only, matching exactly:
{
  "hotels": [{"name":"...","address":"...","price":"...","rating":"...","description":"..."}],
  "itinerary": [
    {"day":1,"plan":[{"placeName":"...","placeDetails":"...","timeTravel":"mode, cost and minutes"}]}
  ]
}

Hard constraints:
- Exactly %d entries in "itinerary", day = 1..%d with no gaps.
- Day 1 starts with a check-in activity at the first hotel in "hotels".
- timeTravel states a transport mode, a peso cost (or Free) and a duration in minutes.

Request:
%s

Return JSON only. No comments, no markdown.`, dayCount, dayCount, dayCount, prompt)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(full))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	content = CleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("model returned invalid JSON")
	}
	return content, nil
}

// GetEmbedding generates a simple vector embedding for text.
// Gemini free tier has no dedicated embedding endpoint, so this falls back to
// a deterministic hash projection; good enough for coarse hotel ranking.
func (c *GeminiItineraryClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return textToVector(text), nil
}

func (c *GeminiItineraryClient) Close() error {
	return c.client.Close()
}

// CleanJSONResponse removes markdown fences and any prose around the first
// complete JSON value. Kept exported for the AI-boundary tests.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatchingDelim(response, objStart, '{', '}'); end != -1 {
			response = response[objStart : end+1]
		}
	} else if arrStart != -1 {
		if end := findMatchingDelim(response, arrStart, '[', ']'); end != -1 {
			response = response[arrStart : end+1]
		}
	}

	return strings.TrimSpace(response)
}

// findMatchingDelim finds the closing delimiter for the opener at start,
// skipping over string literals.
func findMatchingDelim(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// textToVector creates a deterministic vector representation of text via word
// hashing. A stand-in for a real embedding model, matching OpenAI dimensions
// so both providers share one column.
func textToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	const dimensions = 1536
	vector := make([]float32, dimensions)

	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < dimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))
	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}

// NewItineraryClient creates either an OpenAI or Gemini client.
func NewItineraryClient(provider, apiKey, model string) (ItineraryClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIItineraryClient(apiKey, model), nil
	case "gemini":
		return NewGeminiItineraryClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
