package validation

import (
	"regexp"
	"strings"
)

// Business-type suffixes stripped before comparison. Multi-word entries must
// come before their single-word prefixes so "guest house" wins over "guest".
var businessSuffixes = []string{
	"guest house", "guesthouse", "condominium", "apartment", "restaurant",
	"hotel", "hostel", "motel", "resort", "lodge", "resto", "suites", "suite",
	"villas", "villa", "village", "cafe", "bar", "inn", "apt", "condo", "bnb",
}

var (
	bnbVariantRe      = regexp.MustCompile(`\b(?:bed\s+(?:and|&)\s+breakfast|b\s*&\s*b)\b`)
	suffixRe          = regexp.MustCompile(`\b(?:` + strings.Join(businessSuffixes, "|") + `)\b`)
	trailingPluralRe  = regexp.MustCompile(`s\b`)
	nonWordRe         = regexp.MustCompile(`[^\w\s]`)
	multiWhitespaceRe = regexp.MustCompile(`\s+`)
)

// normalizeHotelName maps an entity name to its canonical comparison key:
// lowercased, suffix-free, article-free, punctuation-free. The trailing-"s"
// fold is a deliberate lossy heuristic (it also clips non-plural words ending
// in s, e.g. "Oasis"); matching behavior depends on this exact folding, so it
// stays as-is. The result is for comparison only, never for display.
func normalizeHotelName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = bnbVariantRe.ReplaceAllString(s, "bnb")
	s = suffixRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " and ", " ")
	s = strings.ReplaceAll(s, " & ", " ")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "the ")
	s = trailingPluralRe.ReplaceAllString(s, "")
	s = nonWordRe.ReplaceAllString(s, "")
	s = multiWhitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeHotelName is the exported form used outside the package.
func NormalizeHotelName(name string) string {
	return normalizeHotelName(name)
}
