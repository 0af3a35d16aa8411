package request_models

import "lakbay/internal/validation"

type CreateTripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Days        int      `json:"days" binding:"required,min=1,max=14"`
	BudgetPHP   int      `json:"budget_php" binding:"min=0"`
	Interests   []string `json:"interests"`
	Notes       string   `json:"notes"`
}

type ListTripsRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// ValidateItineraryRequest carries a caller-supplied itinerary through the
// correction pipeline without persisting anything.
type ValidateItineraryRequest struct {
	Itinerary validation.Itinerary `json:"itinerary" binding:"required"`
	Hotels    []validation.Hotel   `json:"hotels" binding:"required"`
}

type SanitizeRequest struct {
	Text string `json:"text" binding:"required"`
}

// RouteConvenienceRequest accepts either measured figures (duration_hours,
// distance_km) or a coordinate pair; missing figures are resolved through the
// distance matrix when coordinates are present.
type RouteConvenienceRequest struct {
	Origin             string  `json:"origin" binding:"required"`
	Destination        string  `json:"destination" binding:"required"`
	DurationHours      float64 `json:"duration_hours" binding:"min=0"`
	DistanceKM         float64 `json:"distance_km" binding:"min=0"`
	OriginLat          float64 `json:"origin_lat"`
	OriginLng          float64 `json:"origin_lng"`
	DestinationLat     float64 `json:"destination_lat"`
	DestinationLng     float64 `json:"destination_lng"`
	IsFerryRoute       bool    `json:"is_ferry_route"`
	DestinationScenic  bool    `json:"destination_scenic"`
	HasOvernightOption bool    `json:"has_overnight_option"`
	HasAirport         bool    `json:"has_airport"`
}
