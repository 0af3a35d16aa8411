package validation

// ConvenienceTier buckets a city-pair route by how sane ground transport is
// as the default suggestion.
type ConvenienceTier string

const (
	TierVeryConvenient ConvenienceTier = "VERY_CONVENIENT"
	TierConvenient     ConvenienceTier = "CONVENIENT"
	TierAcceptable     ConvenienceTier = "ACCEPTABLE"
	TierImpractical    ConvenienceTier = "IMPRACTICAL"
)

// RouteInput describes a single city-pair route.
type RouteInput struct {
	TravelTimeHours    float64 `json:"travelTimeHours"`
	DistanceKm         float64 `json:"distanceKm"`
	HasOvernightOption bool    `json:"hasOvernightOption,omitempty"`
	HasFerry           bool    `json:"hasFerry,omitempty"`
	Scenic             bool    `json:"scenic,omitempty"`
}

// RouteConvenience is the classification plus fixed display metadata.
type RouteConvenience struct {
	Tier           ConvenienceTier `json:"tier"`
	Practical      bool            `json:"practical"`
	Preferred      bool            `json:"preferred"`
	Label          string          `json:"label"`
	Color          string          `json:"color"`
	Recommendation string          `json:"recommendation"`
	Advisories     []string        `json:"advisories,omitempty"`
}

var tierMeta = map[ConvenienceTier]struct {
	label          string
	color          string
	recommendation string
	practical      bool
}{
	TierVeryConvenient: {"Very Convenient", "green", "Ground transport is the clear choice", true},
	TierConvenient:     {"Convenient", "teal", "Ground transport works well for this route", true},
	TierAcceptable:     {"Acceptable", "yellow", "Ground transport is doable but long", true},
	TierImpractical:    {"Impractical", "red", "Ground transport is not recommended", false},
}

// ClassifyRouteConvenience buckets a route top to bottom, first rule wins.
// Ferry rules fire before the distance caps on purpose: a short ferry hop
// stays VERY_CONVENIENT even when the over-water distance is large.
func ClassifyRouteConvenience(in RouteInput) RouteConvenience {
	switch {
	case in.HasFerry && in.TravelTimeHours <= 2:
		return buildConvenience(TierVeryConvenient, true, nil)
	case in.HasFerry && in.TravelTimeHours <= 5:
		return buildConvenience(TierConvenient, true, nil)
	case in.TravelTimeHours <= 2 && in.DistanceKm <= 100:
		return buildConvenience(TierVeryConvenient, true, nil)
	case in.TravelTimeHours <= 4 && in.DistanceKm <= 200:
		return buildConvenience(TierConvenient, true, nil)
	case in.TravelTimeHours <= 6 && in.DistanceKm <= 300:
		advisories := []string{"Consider an overnight stay to break up the trip"}
		if in.Scenic {
			advisories = append(advisories, "The route is scenic; a daytime trip is worth it")
		}
		return buildConvenience(TierAcceptable, false, advisories)
	default:
		advisories := []string{"Fly or split the journey across days"}
		if in.HasOvernightOption {
			advisories = append(advisories, "An overnight bus is available for this route")
		}
		return buildConvenience(TierImpractical, false, advisories)
	}
}

func buildConvenience(tier ConvenienceTier, preferred bool, advisories []string) RouteConvenience {
	meta := tierMeta[tier]
	return RouteConvenience{
		Tier:           tier,
		Practical:      meta.practical,
		Preferred:      preferred,
		Label:          meta.label,
		Color:          meta.color,
		Recommendation: meta.recommendation,
		Advisories:     advisories,
	}
}

// ShouldPreferGroundTransport reports whether ground transport should be the
// default suggestion over a flight. Without an airport there is no choice.
func ShouldPreferGroundTransport(conv RouteConvenience, hasAirport bool) bool {
	if !hasAirport {
		return true
	}
	return conv.Preferred
}
