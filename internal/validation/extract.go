package validation

import (
	"regexp"
	"strings"
)

// lodgingPattern pairs one extraction regex with a stable tag so precedence
// stays auditable and each pattern can be exercised on its own in tests.
type lodgingPattern struct {
	tag string
	re  *regexp.Regexp
}

// Ordered by precedence, first capture wins. Action-verb phrasings outrank the
// generic "at the X" form, which outranks the bare business-suffix form, so an
// unrelated capitalized phrase is only captured when nothing stronger applies.
var lodgingPatterns = []lodgingPattern{
	{"checkin", regexp.MustCompile(`(?i)\bcheck[-\s]?(?:in|out)(?:\s+(?:at|to|into|of|from))?\s+(?:the\s+)?(.+)`)},
	{"meal_at", regexp.MustCompile(`(?i)(?:breakfast|lunch|dinner)\s+at\s+(?:the\s+)?(.+)`)},
	{"return_rest", regexp.MustCompile(`(?i)\b(?:return|head\s+back|go\s+back|rest|relax|unwind)\s+(?:to|at)\s+(?:the\s+)?(.+)`)},
	{"stay_at", regexp.MustCompile(`(?i)stay(?:ing)?\s+(?:at|in)\s+(?:the\s+)?(.+)`)},
	{"visit_suffix", regexp.MustCompile(`(?i)visit\s+(?:the\s+)?(.+?\s(?:hotel|inn|resort|lodge|guesthouse|homestay|hostel|suites?))\b`)},
	{"at_the", regexp.MustCompile(`\bat\s+(?:the\s+)?([A-Z][\w'’&.-]*(?:\s+[A-Z][\w'’&.-]*)*)`)},
	{"name_suffix", regexp.MustCompile(`\b((?:[A-Z][\w'’&.-]*\s+)+(?:Hotel|Inn|Resort|Lodge|Guesthouse|Homestay|Hostel|View))\b`)},
	{"checkin_aggressive", regexp.MustCompile(`(?i:check[-\s]?in)\b[^A-Za-z]*((?:[A-Z][a-z'’&.-]+\s*)+)`)},
}

// ExtractHotelName pulls the lodging entity referenced by a free-text
// activity label, if any. Returns the matched name, the tag of the pattern
// that produced it, and whether anything matched.
func ExtractHotelName(text string) (string, string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", false
	}
	for _, p := range lodgingPatterns {
		m := p.re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		name := trimQualifiers(m[1])
		if name != "" {
			return name, p.tag, true
		}
	}
	return "", "", false
}

// trimQualifiers drops trailing parenthetical or dash-delimited additions,
// e.g. "Sunrise Inn (sea view)" or "Sunrise Inn - Deluxe Room".
func trimQualifiers(s string) string {
	if i := strings.IndexAny(s, "(（"); i >= 0 {
		s = s[:i]
	}
	for _, sep := range []string{" - ", " – ", " — "} {
		if i := strings.Index(s, sep); i >= 0 {
			s = s[:i]
		}
	}
	return strings.Trim(strings.TrimSpace(s), ".,;:")
}
