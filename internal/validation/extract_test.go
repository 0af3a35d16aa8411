package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHotelName(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantName    string
		wantPattern string
		wantFound   bool
	}{
		{
			name:        "check-in with time prefix",
			in:          "8:00 AM - Check-in at Banaue View Inn",
			wantName:    "Banaue View Inn",
			wantPattern: "checkin",
			wantFound:   true,
		},
		{
			name:        "check-out",
			in:          "Check-out from Sunrise Lodge",
			wantName:    "Sunrise Lodge",
			wantPattern: "checkin",
			wantFound:   true,
		},
		{
			name:        "meal at hotel",
			in:          "Dinner at the Palawan Guest House",
			wantName:    "Palawan Guest House",
			wantPattern: "meal_at",
			wantFound:   true,
		},
		{
			name:        "return to hotel",
			in:          "Return to Sunrise Lodge for the evening",
			wantName:    "Sunrise Lodge for the evening",
			wantPattern: "return_rest",
			wantFound:   true,
		},
		{
			name:        "stay at",
			in:          "Staying at Casa Bonita",
			wantName:    "Casa Bonita",
			wantPattern: "stay_at",
			wantFound:   true,
		},
		{
			name:        "visit with suffix",
			in:          "visit the famous Banaue hotel",
			wantName:    "famous Banaue hotel",
			wantPattern: "visit_suffix",
			wantFound:   true,
		},
		{
			name:        "generic at the",
			in:          "Evening merienda at the Ridge Cafe",
			wantName:    "Ridge Cafe",
			wantPattern: "at_the",
			wantFound:   true,
		},
		{
			name:        "bare name with suffix",
			in:          "Sagada Heritage Lodge walking tour",
			wantName:    "Sagada Heritage Lodge",
			wantPattern: "name_suffix",
			wantFound:   true,
		},
		{
			name:        "parenthetical qualifier trimmed",
			in:          "Lunch at Sunrise Inn (garden side)",
			wantName:    "Sunrise Inn",
			wantPattern: "meal_at",
			wantFound:   true,
		},
		{
			name:        "dash qualifier trimmed",
			in:          "Check-in at Sunrise Inn - Deluxe Room",
			wantName:    "Sunrise Inn",
			wantPattern: "checkin",
			wantFound:   true,
		},
		{
			name:      "no lodging reference",
			in:        "Explore the rice terraces",
			wantFound: false,
		},
		{
			name:      "empty",
			in:        "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, pattern, found := ExtractHotelName(tt.in)
			require.Equal(t, tt.wantFound, found)
			if !found {
				return
			}
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantPattern, pattern)
		})
	}
}

func TestExtractPrecedenceCheckinBeatsGenericAt(t *testing.T) {
	// Both "checkin" and "at_the" could match; the action-verb pattern wins.
	name, pattern, found := ExtractHotelName("Check-in at Grand Vista Hotel")
	require.True(t, found)
	assert.Equal(t, "checkin", pattern)
	assert.Equal(t, "Grand Vista Hotel", name)
}
