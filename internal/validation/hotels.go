package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Fix types recorded by the hotel consistency corrector.
const (
	FixDay1CheckinForced    = "DAY1_CHECKIN_FORCED_FIX"
	FixHotelNameMismatch    = "HOTEL_NAME_MISMATCH"
	FixHotelKeywordMismatch = "HOTEL_KEYWORD_MISMATCH"
)

// Fix describes one correction applied to the itinerary.
type Fix struct {
	Day           int    `json:"day"`
	Activity      int    `json:"activity"`
	Type          string `json:"type"`
	WrongName     string `json:"wrongName,omitempty"`
	CorrectName   string `json:"correctName"`
	OriginalText  string `json:"originalText"`
	CorrectedText string `json:"correctedText"`
}

// ValidationResult is the corrector's output. IsValid is true iff no fixes
// were needed. FixedData is nil when nothing changed, so callers can tell
// "clean" apart from "corrected". Error is set instead of panicking when the
// document has an unexpected shape; the rest of the result is best-effort.
type ValidationResult struct {
	IsValid         bool      `json:"isValid"`
	TotalMismatches int       `json:"totalMismatches"`
	Fixes           []Fix     `json:"fixes"`
	FixedData       Itinerary `json:"fixedData,omitempty"`
	Error           string    `json:"error,omitempty"`
	Diagnostics     []string  `json:"diagnostics,omitempty"`
}

var lodgingKeywords = []string{
	"hotel", "inn", "resort", "lodge", "guesthouse", "guest house", "hostel",
	"bnb", "bed and breakfast", "motel", "villa", "suite",
}

var timePrefixRe = regexp.MustCompile(`^(\d{1,2}:\d{2}\s*(?:[AaPp][Mm])?)\s*[-–—]?\s*`)

// CorrectHotelReferences enforces the primary-hotel invariant: every lodging
// reference in the itinerary must resolve to a hotel from the confirmed list,
// and anything that does not is rewritten to the primary (first-ranked)
// hotel. The input itinerary is never mutated.
func CorrectHotelReferences(it Itinerary, hotels []Hotel) (result ValidationResult) {
	result.IsValid = true

	primary := PrimaryHotelName(hotels)
	if primary == "" {
		return result
	}

	fixed := copyItinerary(it)

	defer func() {
		if r := recover(); r != nil {
			result.Error = fmt.Sprintf("hotel correction aborted: %v", r)
			result.IsValid = len(result.Fixes) == 0
			result.TotalMismatches = len(result.Fixes)
			if len(result.Fixes) > 0 {
				result.FixedData = fixed
			}
		}
	}()

	result.Fixes, result.Diagnostics = forceDay1Checkin(fixed, primary)

	for d := range fixed {
		for a := range fixed[d].Plan {
			act := &fixed[d].Plan[a]

			extracted, patternTag, found := ExtractHotelName(act.PlaceName)
			if found {
				matched, diags := MatchConfirmedHotel(extracted, hotels)
				result.Diagnostics = append(result.Diagnostics, diags...)
				if matched == nil {
					original := act.PlaceName
					act.PlaceName = replaceInsensitive(act.PlaceName, extracted, primary)
					if containsInsensitive(act.PlaceDetails, extracted) {
						act.PlaceDetails = replaceInsensitive(act.PlaceDetails, extracted, primary)
					}
					if act.PlaceName != original {
						result.Fixes = append(result.Fixes, Fix{
							Day:           d + 1,
							Activity:      a + 1,
							Type:          FixHotelNameMismatch,
							WrongName:     extracted,
							CorrectName:   primary,
							OriginalText:  original,
							CorrectedText: act.PlaceName,
						})
						result.Diagnostics = append(result.Diagnostics, fmt.Sprintf(
							"day %d activity %d: replaced %q (pattern %s) with primary hotel", d+1, a+1, extracted, patternTag))
					}
				}
				continue
			}

			// Extraction came up empty; a lodging keyword without any
			// confirmed hotel name means the patterns missed a new phrasing.
			combined := act.PlaceName + " " + act.PlaceDetails
			if !containsLodgingKeyword(combined) {
				continue
			}
			if combinedNamesConfirmedHotel(combined, hotels) {
				continue
			}
			original := act.PlaceName
			act.PlaceName = "Activity at " + primary
			result.Fixes = append(result.Fixes, Fix{
				Day:           d + 1,
				Activity:      a + 1,
				Type:          FixHotelKeywordMismatch,
				CorrectName:   primary,
				OriginalText:  original,
				CorrectedText: act.PlaceName,
			})
		}
	}

	result.IsValid = len(result.Fixes) == 0
	result.TotalMismatches = len(result.Fixes)
	if len(result.Fixes) > 0 {
		result.FixedData = fixed
	}
	return result
}

// forceDay1Checkin rewrites day 1's check-in activity to the primary hotel
// when it names anything else. The day-1 check-in is the highest-consequence
// anchor of the whole itinerary, so it gets corrected before the general scan
// regardless of what the extractor patterns would do with it.
func forceDay1Checkin(fixed Itinerary, primary string) ([]Fix, []string) {
	var fixes []Fix
	var diags []string

	if len(fixed) == 0 {
		return fixes, diags
	}

	for a := range fixed[0].Plan {
		act := &fixed[0].Plan[a]
		lower := strings.ToLower(act.PlaceName)
		if !strings.Contains(lower, "check") || !strings.Contains(lower, "in") {
			continue
		}

		referenced := act.PlaceName
		if extracted, _, ok := ExtractHotelName(act.PlaceName); ok {
			referenced = extracted
		}
		normRef := normalizeHotelName(referenced)
		normPrimary := normalizeHotelName(primary)
		if normRef != "" && (strings.Contains(normRef, normPrimary) || strings.Contains(normPrimary, normRef)) {
			return fixes, diags
		}

		original := act.PlaceName
		corrected := "Check-in at " + primary
		if m := timePrefixRe.FindStringSubmatch(act.PlaceName); m != nil {
			corrected = m[1] + " - Check-in at " + primary
		}
		act.PlaceName = corrected

		fixes = append(fixes, Fix{
			Day:           1,
			Activity:      a + 1,
			Type:          FixDay1CheckinForced,
			WrongName:     referenced,
			CorrectName:   primary,
			OriginalText:  original,
			CorrectedText: corrected,
		})
		diags = append(diags, fmt.Sprintf("day 1 check-in forced from %q to primary hotel", referenced))
		return fixes, diags
	}

	return fixes, diags
}

func containsLodgingKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range lodgingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func combinedNamesConfirmedHotel(text string, hotels []Hotel) bool {
	normText := normalizeHotelName(text)
	for _, h := range hotels {
		normName := normalizeHotelName(h.ResolvedName())
		if normName != "" && strings.Contains(normText, normName) {
			return true
		}
	}
	return false
}

func containsInsensitive(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func replaceInsensitive(s, old, replacement string) string {
	if old == "" {
		return s
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(old))
	return re.ReplaceAllLiteralString(s, replacement)
}
