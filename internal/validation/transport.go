package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// TransportSegment is parsed from an activity's timeTravel text. Nil cost or
// duration means the text did not state one.
type TransportSegment struct {
	Mode            string `json:"mode"`
	CostPHP         *int   `json:"costPHP"`
	DurationMinutes *int   `json:"durationMinutes"`
}

// TransportReport aggregates mode distribution and three severity classes of
// findings across every travel segment in the itinerary.
type TransportReport struct {
	SegmentCount        int            `json:"segmentCount"`
	ModeCounts          map[string]int `json:"modeCounts"`
	Inconsistencies     []string       `json:"inconsistencies"`
	Warnings            []string       `json:"warnings"`
	Suggestions         []string       `json:"suggestions"`
	PotentialSavingsPHP int            `json:"potentialSavingsPHP"`
	Summary             string         `json:"summary"`
}

// Keyword order matters: first containment wins, so "walking" is resolved
// before "taxi" can steal "walk to the taxi stand".
var modeKeywords = []struct {
	mode     string
	keywords []string
}{
	{"walking", []string{"walking", "walk"}},
	{"jeepney", []string{"jeepney"}},
	{"tricycle", []string{"tricycle"}},
	{"bus", []string{"bus"}},
	{"taxi", []string{"taxi", "grab"}},
	{"van", []string{"van"}},
	{"car", []string{"car"}},
}

var (
	costRe    = regexp.MustCompile(`(?i)(?:₱|php\s?)(\d[\d,]*)`)
	minutesRe = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?)\b`)
	hoursRe   = regexp.MustCompile(`(?i)(\d+)\s*(?:hours?|hrs?)\b`)
)

// ParseTransportSegment resolves mode, cost and duration from a free-text
// travel description like "₱50 - 20 minutes by jeepney".
func ParseTransportSegment(text string) TransportSegment {
	var seg TransportSegment
	lower := strings.ToLower(text)

	for _, mk := range modeKeywords {
		for _, kw := range mk.keywords {
			if strings.Contains(lower, kw) {
				seg.Mode = mk.mode
				break
			}
		}
		if seg.Mode != "" {
			break
		}
	}

	if m := costRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			seg.CostPHP = &v
		}
	}

	if m := minutesRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			seg.DurationMinutes = &v
		}
	} else if m := hoursRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			minutes := v * 60
			seg.DurationMinutes = &minutes
		}
	}

	return seg
}

// ValidateTransport scans every activity's travel segment and reports hard
// inconsistencies, soft warnings and savings suggestions. The itinerary is
// read-only here; nothing is corrected.
func ValidateTransport(it Itinerary) TransportReport {
	report := TransportReport{ModeCounts: make(map[string]int)}

	for d := range it {
		for a := range it[d].Plan {
			text := strings.TrimSpace(it[d].Plan[a].TimeTravel)
			if text == "" {
				continue
			}
			report.SegmentCount++

			seg := ParseTransportSegment(text)
			mode := seg.Mode
			if mode == "" {
				mode = "unknown"
			}
			report.ModeCounts[mode]++

			ref := fmt.Sprintf("day %d, activity %d", d+1, a+1)
			lower := strings.ToLower(text)

			if strings.Contains(lower, "free") && seg.Mode != "walking" {
				report.Inconsistencies = append(report.Inconsistencies,
					fmt.Sprintf("%s: free transport should be walking, got %q", ref, mode))
			}

			if seg.DurationMinutes != nil && *seg.DurationMinutes <= 5 &&
				seg.CostPHP != nil && *seg.CostPHP > 50 {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("%s: ₱%d for a %d-minute hop looks disproportionate", ref, *seg.CostPHP, *seg.DurationMinutes))
			}

			if seg.Mode == "walking" && seg.DurationMinutes != nil && *seg.DurationMinutes > 30 {
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("%s: %d-minute walk is tiring, consider a jeepney or tricycle", ref, *seg.DurationMinutes))
			}

			if seg.CostPHP != nil && seg.Mode == "" {
				report.Inconsistencies = append(report.Inconsistencies,
					fmt.Sprintf("%s: cost ₱%d given without a transport mode", ref, *seg.CostPHP))
			}

			if seg.Mode == "taxi" && seg.DurationMinutes != nil && *seg.DurationMinutes <= 15 &&
				seg.CostPHP != nil && *seg.CostPHP > 100 {
				savings := *seg.CostPHP - 25
				report.PotentialSavingsPHP += savings
				report.Suggestions = append(report.Suggestions,
					fmt.Sprintf("%s: a jeepney (₱15-30) could save about ₱%d over the ₱%d taxi", ref, savings, *seg.CostPHP))
			}
		}
	}

	report.Summary = buildTransportSummary(report)
	return report
}

func buildTransportSummary(r TransportReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Checked %d transport segment(s)\n", r.SegmentCount)

	type modeCount struct {
		mode  string
		count int
	}
	counts := make([]modeCount, 0, len(r.ModeCounts))
	for mode, count := range r.ModeCounts {
		counts = append(counts, modeCount{mode, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].mode < counts[j].mode
	})
	for _, mc := range counts {
		fmt.Fprintf(&b, "  %s: %d\n", mc.mode, mc.count)
	}

	writeIssueClass(&b, "Inconsistencies", r.Inconsistencies)
	writeIssueClass(&b, "Warnings", r.Warnings)
	writeIssueClass(&b, "Suggestions", r.Suggestions)

	if r.PotentialSavingsPHP > 0 {
		fmt.Fprintf(&b, "Potential savings: ₱%d\n", r.PotentialSavingsPHP)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeIssueClass(b *strings.Builder, label string, issues []string) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(b, "%s (%d):\n", label, len(issues))
	shown := issues
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for _, issue := range shown {
		fmt.Fprintf(b, "  - %s\n", issue)
	}
	if rest := len(issues) - len(shown); rest > 0 {
		fmt.Fprintf(b, "  ... and %d more\n", rest)
	}
}
