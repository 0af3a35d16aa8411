package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// SanitizeOptions controls how far SanitizeInput goes beyond injection
// removal. A zero MaxLength means no truncation.
type SanitizeOptions struct {
	MaxLength           int
	AllowHTML           bool
	StripNewlines       bool
	NormalizeWhitespace bool
}

// SanitizeResult carries the cleaned text plus what was removed. Warnings are
// non-blocking observations; the flagged text stays in Sanitized.
type SanitizeResult struct {
	Sanitized       string   `json:"sanitized"`
	HasInjection    bool     `json:"hasInjection"`
	RemovedPatterns []string `json:"removedPatterns,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

const removedPlaceholder = "[removed]"

// injectionPattern names one prompt-injection family. The list is ordered;
// earlier families are scanned (and replaced) first.
type injectionPattern struct {
	name string
	re   *regexp.Regexp
}

var injectionPatterns = []injectionPattern{
	{"instruction_override", regexp.MustCompile(`(?i)(?:ignore|disregard|forget)\s+(?:all\s+|any\s+)?(?:previous|prior|above|earlier)\s+(?:instructions?|prompts?|rules?|context)`)},
	{"role_manipulation", regexp.MustCompile(`(?i)(?:you\s+are\s+now\s+(?:a|an|the)\b|act\s+as\s+(?:a\s+|an\s+)?(?:system|admin|developer|root)\b|pretend\s+to\s+be\b)`)},
	{"system_prompt_probe", regexp.MustCompile(`(?i)(?:reveal|show|print|repeat|output|leak)\s+(?:me\s+)?(?:your|the)\s+system\s+prompt`)},
	{"jailbreak", regexp.MustCompile(`(?i)(?:\bjailbreak\b|\bdan\s+mode\b|developer\s+mode\s+enabled)`)},
	{"script_injection", regexp.MustCompile(`(?i)(?:<script[^>]*>[\s\S]*?</script>|\bon\w+\s*=\s*["']|javascript\s*:|\beval\s*\()`)},
	{"data_exfiltration", regexp.MustCompile(`(?i)(?:send|post|forward|upload)\s+(?:this|all|the|our)\s+(?:the\s+)?(?:data|conversation|chat|information|history)\s+to\b|\bexfiltrat\w+`)},
}

var (
	htmlTagRe        = regexp.MustCompile(`<[^>]+>`)
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
	spaceRunRe       = regexp.MustCompile(`[ \t]+`)
)

// SanitizeInput strips prompt-injection phrasing and unsafe markup from raw
// user text before it can reach an AI prompt. Truncation happens first so
// pattern scanning never runs over unbounded input.
func SanitizeInput(raw string, opts SanitizeOptions) SanitizeResult {
	var result SanitizeResult

	s := raw
	if opts.MaxLength > 0 && len(s) > opts.MaxLength {
		// Back off to a rune boundary so truncation never leaves invalid UTF-8.
		cut := opts.MaxLength
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}

	for _, p := range injectionPatterns {
		if !p.re.MatchString(s) {
			continue
		}
		result.HasInjection = true
		result.RemovedPatterns = append(result.RemovedPatterns, p.name)
		s = p.re.ReplaceAllLiteralString(s, removedPlaceholder)
	}

	if !opts.AllowHTML {
		s = htmlTagRe.ReplaceAllString(s, "")
	}

	if opts.StripNewlines {
		s = excessNewlinesRe.ReplaceAllString(s, "\n\n")
	}

	if opts.NormalizeWhitespace {
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
		}
		s = strings.Join(lines, "\n")
	}

	result.Sanitized = strings.TrimSpace(s)
	return result
}

const (
	travelInputMaxLength = 2000
	longLineThreshold    = 500
	wordRepeatThreshold  = 10
)

// SanitizeTravelInput applies the standard options for traveler free text and
// adds non-blocking spam heuristics: overly long single lines and excessive
// repetition of one word.
func SanitizeTravelInput(raw string) SanitizeResult {
	result := SanitizeInput(raw, SanitizeOptions{
		MaxLength:           travelInputMaxLength,
		StripNewlines:       true,
		NormalizeWhitespace: true,
	})

	for _, line := range strings.Split(result.Sanitized, "\n") {
		if len(line) > longLineThreshold {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line of %d characters looks machine-generated", len(line)))
			break
		}
	}

	counts := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(result.Sanitized)) {
		word = strings.Trim(word, ".,!?;:")
		if len(word) > 3 {
			counts[word]++
		}
	}
	for word, n := range counts {
		if n > wordRepeatThreshold {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("word %q repeated %d times", word, n))
		}
	}

	return result
}

var markdownEmphasisRe = regexp.MustCompile(`[*_]{1,3}`)

// EscapeForPrompt neutralizes characters that would break template
// interpolation when the text is embedded into a prompt.
func EscapeForPrompt(s string) string {
	replacer := strings.NewReplacer(
		"{", "(",
		"}", ")",
		"`", "'",
	)
	s = replacer.Replace(s)
	return markdownEmphasisRe.ReplaceAllString(s, "")
}
