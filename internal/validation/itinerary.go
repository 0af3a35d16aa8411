package validation

import (
	"strings"

	"github.com/brunoga/deep"
)

// Activity is one scheduled stop in a day's plan, as produced by the AI.
type Activity struct {
	PlaceName    string `json:"placeName"`
	PlaceDetails string `json:"placeDetails"`
	TimeTravel   string `json:"timeTravel"`
}

// Day groups the ordered activities of a single itinerary day.
type Day struct {
	Day  int        `json:"day,omitempty"`
	Plan []Activity `json:"plan"`
}

// Itinerary is the ordered day sequence; index+1 is the day number.
type Itinerary []Day

// Hotel is a recommended lodging option. AI responses are inconsistent about
// the name field, so all three observed spellings are decoded.
type Hotel struct {
	Name        string `json:"name,omitempty"`
	HotelName   string `json:"hotelName,omitempty"`
	HotelName2  string `json:"hotel_name,omitempty"`
	Address     string `json:"address,omitempty"`
	Price       string `json:"price,omitempty"`
	Rating      string `json:"rating,omitempty"`
	Description string `json:"description,omitempty"`
}

// ResolvedName returns the hotel's display name regardless of which field the
// AI used. This is the single place the name/hotelName/hotel_name ambiguity is
// handled; everything downstream works with the resolved value.
func (h Hotel) ResolvedName() string {
	for _, name := range []string{h.Name, h.HotelName, h.HotelName2} {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// PrimaryHotelName returns the name of the first-ranked hotel, the one the
// traveler is assumed to book. Empty when there is nothing to resolve.
func PrimaryHotelName(hotels []Hotel) string {
	if len(hotels) == 0 {
		return ""
	}
	return hotels[0].ResolvedName()
}

// copyItinerary returns an independent copy so correctors never mutate the
// caller's document.
func copyItinerary(it Itinerary) Itinerary {
	if it == nil {
		return nil
	}
	return deep.MustCopy(it)
}
