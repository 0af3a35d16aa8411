package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHotels() []Hotel {
	return []Hotel{
		{Name: "Banaue Grand View Hotel"},
		{Name: "Sunrise Lodge"},
	}
}

func TestCorrectHotelReferencesDay1CheckinForced(t *testing.T) {
	it := Itinerary{
		{Plan: []Activity{
			{PlaceName: "8:00 AM - Check-in at Banaue View Inn"},
			{PlaceName: "Explore the rice terraces"},
		}},
	}

	result := CorrectHotelReferences(it, sampleHotels())

	assert.False(t, result.IsValid)
	assert.GreaterOrEqual(t, result.TotalMismatches, 1)
	require.NotNil(t, result.FixedData)
	assert.Equal(t, "8:00 AM - Check-in at Banaue Grand View Hotel", result.FixedData[0].Plan[0].PlaceName)

	require.NotEmpty(t, result.Fixes)
	assert.Contains(t,
		[]string{FixDay1CheckinForced, FixHotelNameMismatch},
		result.Fixes[0].Type)

	// The input document is untouched.
	assert.Equal(t, "8:00 AM - Check-in at Banaue View Inn", it[0].Plan[0].PlaceName)
}

func TestCorrectHotelReferencesConfirmedHotelUntouched(t *testing.T) {
	it := Itinerary{
		{Plan: []Activity{
			{PlaceName: "Check-in at Banaue Grand View Hotel"},
			{PlaceName: "Dinner at Sunrise Lodge", PlaceDetails: "Second hotel on the list, genuinely confirmed"},
		}},
	}

	result := CorrectHotelReferences(it, sampleHotels())

	assert.True(t, result.IsValid)
	assert.Zero(t, result.TotalMismatches)
	assert.Nil(t, result.FixedData, "clean input must not produce FixedData")
}

func TestCorrectHotelReferencesReplacesInDetailsToo(t *testing.T) {
	it := Itinerary{
		{Plan: []Activity{{PlaceName: "Check-in at Banaue Grand View Hotel"}}},
		{Plan: []Activity{
			{
				PlaceName:    "Lunch at Mountain Breeze Inn",
				PlaceDetails: "The Mountain Breeze Inn serves local dishes",
			},
		}},
	}

	result := CorrectHotelReferences(it, sampleHotels())

	require.NotNil(t, result.FixedData)
	fixedAct := result.FixedData[1].Plan[0]
	assert.Equal(t, "Lunch at Banaue Grand View Hotel", fixedAct.PlaceName)
	assert.Equal(t, "The Banaue Grand View Hotel serves local dishes", fixedAct.PlaceDetails)

	require.Len(t, result.Fixes, 1)
	fix := result.Fixes[0]
	assert.Equal(t, FixHotelNameMismatch, fix.Type)
	assert.Equal(t, 2, fix.Day)
	assert.Equal(t, 1, fix.Activity)
	assert.Equal(t, "Mountain Breeze Inn", fix.WrongName)
	assert.Equal(t, "Banaue Grand View Hotel", fix.CorrectName)
}

func TestCorrectHotelReferencesKeywordScan(t *testing.T) {
	// No extractor pattern matches, but a lodging keyword appears and no
	// confirmed hotel is named: the phrasing the patterns missed.
	it := Itinerary{
		{Plan: []Activity{{PlaceName: "Check-in at Banaue Grand View Hotel"}}},
		{Plan: []Activity{
			{
				PlaceName:    "Hotel rooftop yoga session",
				PlaceDetails: "Morning stretch with terrace views",
			},
		}},
	}

	result := CorrectHotelReferences(it, sampleHotels())

	require.NotNil(t, result.FixedData)
	assert.Equal(t, "Activity at Banaue Grand View Hotel", result.FixedData[1].Plan[0].PlaceName)
	require.Len(t, result.Fixes, 1)
	assert.Equal(t, FixHotelKeywordMismatch, result.Fixes[0].Type)
}

func TestCorrectHotelReferencesNothingToCheck(t *testing.T) {
	it := Itinerary{{Plan: []Activity{{PlaceName: "Check-in at Anywhere Inn"}}}}

	result := CorrectHotelReferences(it, nil)
	assert.True(t, result.IsValid)
	assert.Nil(t, result.FixedData)

	result = CorrectHotelReferences(it, []Hotel{{}})
	assert.True(t, result.IsValid)

	result = CorrectHotelReferences(nil, sampleHotels())
	assert.True(t, result.IsValid)
}

func TestCorrectHotelReferencesIdempotent(t *testing.T) {
	it := Itinerary{
		{Plan: []Activity{
			{PlaceName: "8:00 AM - Check-in at Banaue View Inn"},
			{PlaceName: "Lunch at Mountain Breeze Inn"},
			{PlaceName: "Hotel rooftop yoga session"},
		}},
		{Plan: []Activity{
			{PlaceName: "Breakfast at Banaue View Inn"},
		}},
	}

	first := CorrectHotelReferences(it, sampleHotels())
	require.False(t, first.IsValid)
	require.NotNil(t, first.FixedData)

	second := CorrectHotelReferences(first.FixedData, sampleHotels())
	assert.True(t, second.IsValid, "correction must be a fixed point, got fixes: %+v", second.Fixes)
	assert.Nil(t, second.FixedData)
}

func TestCorrectHotelReferencesPrimaryInvariant(t *testing.T) {
	it := Itinerary{
		{Plan: []Activity{
			{PlaceName: "Check-in at Banaue View Inn"},
			{PlaceName: "Rest at the Cloud Nine Hostel"},
			{PlaceName: "Sunset viewing at the plaza"},
		}},
	}

	result := CorrectHotelReferences(it, sampleHotels())
	require.NotNil(t, result.FixedData)

	normPrimary := NormalizeHotelName("Banaue Grand View Hotel")
	for _, day := range result.FixedData {
		for _, act := range day.Plan {
			text := act.PlaceName + " " + act.PlaceDetails
			if !containsLodgingKeyword(text) {
				continue
			}
			assert.Contains(t, normalizeHotelName(text), normPrimary,
				"lodging reference %q must name the primary hotel", act.PlaceName)
		}
	}
}

func TestHotelResolvedName(t *testing.T) {
	assert.Equal(t, "A", Hotel{Name: "A"}.ResolvedName())
	assert.Equal(t, "B", Hotel{HotelName: "B"}.ResolvedName())
	assert.Equal(t, "C", Hotel{HotelName2: "C"}.ResolvedName())
	assert.Equal(t, "A", Hotel{Name: "A", HotelName: "B"}.ResolvedName())
	assert.Equal(t, "", Hotel{}.ResolvedName())
	assert.Equal(t, "", PrimaryHotelName(nil))
}
