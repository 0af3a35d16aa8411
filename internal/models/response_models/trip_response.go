package response_models

import "lakbay/internal/validation"

type TripResponse struct {
	ID          string               `json:"id"`
	Destination string               `json:"destination"`
	Days        int                  `json:"days"`
	BudgetPHP   int                  `json:"budget_php"`
	Interests   []string             `json:"interests"`
	Status      string               `json:"status"`
	Itinerary   validation.Itinerary `json:"itinerary"`
	Hotels      []validation.Hotel   `json:"hotels"`
	CreatedAt   int64                `json:"created_at"`
	CreatedAtPH string               `json:"created_at_ph,omitempty"`
}

type TripListResponse struct {
	Trips    []TripResponse `json:"trips"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Total    int64          `json:"total"`
}

// TripValidationResponse pairs the corrected document with the reports that
// produced it, so clients can show what was changed and why.
type TripValidationResponse struct {
	Itinerary validation.Itinerary        `json:"itinerary"`
	Stages    []validation.StageReport    `json:"stages"`
	Transport *validation.TransportReport `json:"transport,omitempty"`
}

type SanitizeResponse struct {
	Sanitized       string   `json:"sanitized"`
	HasInjection    bool     `json:"has_injection"`
	RemovedPatterns []string `json:"removed_patterns,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

type RouteAssessmentResponse struct {
	Origin        string                      `json:"origin"`
	Destination   string                      `json:"destination"`
	DurationHours float64                     `json:"duration_hours"`
	DistanceKM    float64                     `json:"distance_km"`
	Convenience   validation.RouteConvenience `json:"convenience"`
	PreferGround  bool                        `json:"prefer_ground"`
}

type HotelCandidateResponse struct {
	HotelName   string  `json:"hotel_name"`
	City        string  `json:"city"`
	Address     string  `json:"address"`
	PricePHP    int     `json:"price_php"`
	Rating      float64 `json:"rating"`
	Similarity  float64 `json:"similarity"`
	Description string  `json:"description"`
}
