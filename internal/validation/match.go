package validation

import (
	"fmt"
	"strings"
)

const (
	// Character-overlap candidates must beat this before they are even
	// tracked as a best-so-far.
	charOverlapFloor = 0.4
	// A fuzzy-only best above this is a near-miss: close enough to log,
	// never close enough to accept.
	fuzzyRejectFloor = 0.3
)

// MatchConfirmedHotel resolves an extracted name against the confirmed hotel
// list. Only an exact or substring match of normalized names counts as a
// confirmed reference; token and character-overlap scores are tracked but a
// fuzzy-only best is deliberately rejected, because silently accepting a
// wrong hotel is worse than correcting to the known-good primary. Near-miss
// rejections are reported through diags.
func MatchConfirmedHotel(extracted string, hotels []Hotel) (*Hotel, []string) {
	var diags []string

	normExtracted := normalizeHotelName(extracted)
	if normExtracted == "" {
		return nil, diags
	}

	for i := range hotels {
		normCandidate := normalizeHotelName(hotels[i].ResolvedName())
		if normCandidate == "" {
			continue
		}
		if normExtracted == normCandidate {
			return &hotels[i], diags
		}
	}

	for i := range hotels {
		normCandidate := normalizeHotelName(hotels[i].ResolvedName())
		if normCandidate == "" {
			continue
		}
		if strings.Contains(normExtracted, normCandidate) || strings.Contains(normCandidate, normExtracted) {
			return &hotels[i], diags
		}
	}

	bestScore := 0.0
	bestName := ""
	for i := range hotels {
		normCandidate := normalizeHotelName(hotels[i].ResolvedName())
		if normCandidate == "" {
			continue
		}

		if score := sharedTokenScore(normExtracted, normCandidate); score > bestScore {
			bestScore = score
			bestName = hotels[i].ResolvedName()
		}

		if score := charOverlapScore(normExtracted, normCandidate); score > charOverlapFloor && score > bestScore {
			bestScore = score
			bestName = hotels[i].ResolvedName()
		}
	}

	if bestScore > fuzzyRejectFloor {
		diags = append(diags, fmt.Sprintf(
			"near-miss: %q scored %.2f against %q, below confirmation threshold", extracted, bestScore, bestName))
	}
	return nil, diags
}

// sharedTokenScore is the fraction of shared tokens (longer than 3 chars)
// relative to the larger token set.
func sharedTokenScore(a, b string) float64 {
	tokensA := longTokens(a)
	tokensB := longTokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(tokensA))
	for _, t := range tokensA {
		setA[t] = true
	}
	shared := 0
	seen := make(map[string]bool, len(tokensB))
	for _, t := range tokensB {
		if setA[t] && !seen[t] {
			shared++
			seen[t] = true
		}
	}

	larger := len(setA)
	if distinct := len(distinctTokens(tokensB)); distinct > larger {
		larger = distinct
	}
	return float64(shared) / float64(larger)
}

// charOverlapScore is the fraction of the shorter string's characters present
// anywhere in the longer string.
func charOverlapScore(a, b string) float64 {
	shorter, longer := a, b
	if len([]rune(a)) > len([]rune(b)) {
		shorter, longer = b, a
	}
	runes := []rune(shorter)
	if len(runes) == 0 {
		return 0
	}
	present := 0
	for _, r := range runes {
		if strings.ContainsRune(longer, r) {
			present++
		}
	}
	return float64(present) / float64(len(runes))
}

func longTokens(s string) []string {
	var out []string
	for _, t := range strings.Fields(s) {
		if len(t) > 3 {
			out = append(out, t)
		}
	}
	return out
}

func distinctTokens(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
