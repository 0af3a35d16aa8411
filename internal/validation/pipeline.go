package validation

// StageReport summarizes what one pipeline stage did.
type StageReport struct {
	Name        string   `json:"name"`
	Changed     bool     `json:"changed"`
	FixCount    int      `json:"fixCount"`
	Details     []string `json:"details,omitempty"`
	Diagnostics []string `json:"diagnostics,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// Stage is one itinerary transformation. Stages must treat their input as
// read-only and return a (possibly identical) document.
type Stage struct {
	Name string
	Run  func(Itinerary) (Itinerary, StageReport)
}

// Pipeline runs an ordered list of stages over one document shape. Checks are
// added, removed or reordered here without touching call sites.
type Pipeline struct {
	stages []Stage
}

func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run feeds each stage the previous stage's output and collects the reports.
func (p *Pipeline) Run(it Itinerary) (Itinerary, []StageReport) {
	reports := make([]StageReport, 0, len(p.stages))
	current := it
	for _, stage := range p.stages {
		next, report := stage.Run(current)
		report.Name = stage.Name
		reports = append(reports, report)
		current = next
	}
	return current, reports
}

// HotelConsistencyStage wraps the hotel corrector as a pipeline stage.
func HotelConsistencyStage(hotels []Hotel) Stage {
	return Stage{
		Name: "hotel_consistency",
		Run: func(it Itinerary) (Itinerary, StageReport) {
			result := CorrectHotelReferences(it, hotels)
			report := StageReport{
				Changed:     result.FixedData != nil,
				FixCount:    result.TotalMismatches,
				Diagnostics: result.Diagnostics,
				Error:       result.Error,
			}
			for _, fix := range result.Fixes {
				report.Details = append(report.Details, fix.Type+": "+fix.OriginalText+" -> "+fix.CorrectedText)
			}
			if result.FixedData != nil {
				return result.FixedData, report
			}
			return it, report
		},
	}
}

// TransportStage wraps the transport validator; it reports but never edits.
func TransportStage() Stage {
	return Stage{
		Name: "transport",
		Run: func(it Itinerary) (Itinerary, StageReport) {
			result := ValidateTransport(it)
			report := StageReport{
				FixCount: len(result.Inconsistencies),
				Details:  append(append([]string{}, result.Inconsistencies...), result.Warnings...),
			}
			if result.Summary != "" {
				report.Diagnostics = []string{result.Summary}
			}
			return it, report
		},
	}
}
