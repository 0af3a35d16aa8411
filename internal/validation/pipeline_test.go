package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var order []string
	stage := func(name string) Stage {
		return Stage{Name: name, Run: func(it Itinerary) (Itinerary, StageReport) {
			order = append(order, name)
			return it, StageReport{}
		}}
	}

	p := NewPipeline(stage("first"), stage("second"), stage("third"))
	_, reports := p.Run(Itinerary{})

	assert.Equal(t, []string{"first", "second", "third"}, order)
	require.Len(t, reports, 3)
	assert.Equal(t, "first", reports[0].Name)
	assert.Equal(t, "third", reports[2].Name)
}

func TestPipelineFeedsCorrectedDocumentForward(t *testing.T) {
	it := Itinerary{
		{Plan: []Activity{{
			PlaceName:  "Check-in at Banaue View Inn",
			TimeTravel: "Free - taxi ride",
		}}},
	}
	hotels := []Hotel{{Name: "Banaue Grand View Hotel"}}

	p := NewPipeline(HotelConsistencyStage(hotels), TransportStage())
	corrected, reports := p.Run(it)

	require.Len(t, reports, 2)

	hotelReport := reports[0]
	assert.Equal(t, "hotel_consistency", hotelReport.Name)
	assert.True(t, hotelReport.Changed)
	assert.GreaterOrEqual(t, hotelReport.FixCount, 1)

	transportReport := reports[1]
	assert.Equal(t, "transport", transportReport.Name)
	assert.Equal(t, 1, transportReport.FixCount)

	// The transport stage never edits; the corrected document is the hotel
	// stage's output.
	assert.Equal(t, "Check-in at Banaue Grand View Hotel", corrected[0].Plan[0].PlaceName)
	assert.Equal(t, "Check-in at Banaue View Inn", it[0].Plan[0].PlaceName)
}

func TestPipelineCleanDocumentUnchanged(t *testing.T) {
	it := Itinerary{
		{Plan: []Activity{{
			PlaceName:  "Check-in at Banaue Grand View Hotel",
			TimeTravel: "Free - 5 minutes walking",
		}}},
	}
	hotels := []Hotel{{Name: "Banaue Grand View Hotel"}}

	p := NewPipeline(HotelConsistencyStage(hotels), TransportStage())
	corrected, reports := p.Run(it)

	assert.False(t, reports[0].Changed)
	assert.Zero(t, reports[1].FixCount)
	assert.Equal(t, it, corrected)
}
