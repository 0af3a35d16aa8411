package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchConfirmedHotelExact(t *testing.T) {
	hotels := []Hotel{{Name: "Banaue Grand View Hotel"}, {Name: "Sunrise Lodge"}}

	matched, _ := MatchConfirmedHotel("Banaue Grand View Hotel", hotels)
	require.NotNil(t, matched)
	assert.Equal(t, "Banaue Grand View Hotel", matched.ResolvedName())

	// Normalization makes suffix and article differences irrelevant.
	matched, _ = MatchConfirmedHotel("The Banaue Grand View Inn", hotels)
	require.NotNil(t, matched)
	assert.Equal(t, "Banaue Grand View Hotel", matched.ResolvedName())
}

func TestMatchConfirmedHotelSubstring(t *testing.T) {
	hotels := []Hotel{{Name: "Sunrise Lodge"}}

	matched, _ := MatchConfirmedHotel("Sunrise Lodge Annex Building", hotels)
	require.NotNil(t, matched)
	assert.Equal(t, "Sunrise Lodge", matched.ResolvedName())
}

func TestMatchConfirmedHotelFieldAliases(t *testing.T) {
	hotels := []Hotel{{HotelName2: "Casa Bonita"}}

	matched, _ := MatchConfirmedHotel("Casa Bonita", hotels)
	require.NotNil(t, matched)
	assert.Equal(t, "Casa Bonita", matched.ResolvedName())
}

func TestMatchConfirmedHotelFuzzyIsRejected(t *testing.T) {
	// "Banaue View Inn" shares tokens with the candidate but is not the same
	// hotel; a fuzzy-only best is rejected and surfaced as a near-miss.
	hotels := []Hotel{{Name: "Banaue Grand View Hotel"}}

	matched, diags := MatchConfirmedHotel("Banaue View Inn", hotels)
	assert.Nil(t, matched)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "near-miss")
}

func TestMatchConfirmedHotelNoCandidates(t *testing.T) {
	matched, diags := MatchConfirmedHotel("Anywhere Inn", nil)
	assert.Nil(t, matched)
	assert.Empty(t, diags)

	matched, diags = MatchConfirmedHotel("Anywhere Inn", []Hotel{{}})
	assert.Nil(t, matched)
	assert.Empty(t, diags)
}

func TestCharOverlapScoreBoundaries(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"under floor", "abcdefgh", "qrstuvwx", 0.0},
		{"exactly 0.375", "abcdefgh", "abcqwxyz", 0.375},
		{"exactly 0.4", "abcde", "abfgh", 0.4},
		{"just above 0.4", "abcdefg", "abczxwv", 3.0 / 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, charOverlapScore(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCharOverlapFloorIsStrict(t *testing.T) {
	// A candidate scoring exactly 0.4 on character overlap (and nothing on
	// tokens) must not even register as a best-so-far, so no near-miss is
	// reported. Just above 0.4 it registers and is rejected as a near-miss.
	at := []Hotel{{Name: "abfgh"}}
	matched, diags := MatchConfirmedHotel("abcde", at)
	assert.Nil(t, matched)
	assert.Empty(t, diags, "score of exactly 0.4 must not be tracked")

	above := []Hotel{{Name: "abczxwv"}}
	matched, diags = MatchConfirmedHotel("abcdefg", above)
	assert.Nil(t, matched)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "near-miss")
}

func TestSharedTokenScore(t *testing.T) {
	// "banaue view" vs "banaue grand view": 2 shared of 3 in the larger set.
	assert.InDelta(t, 2.0/3.0, sharedTokenScore("banaue view", "banaue grand view"), 1e-9)
	assert.Zero(t, sharedTokenScore("ab cd", "banaue grand view"), "short tokens ignored")
	assert.Zero(t, sharedTokenScore("", "banaue"))
}
