package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"lakbay/internal/models/request_models"
	"lakbay/internal/models/response_models"
	"lakbay/internal/validation"
	"lakbay/pkg/utils"
)

// GeoPoint is a named coordinate handed to the distance matrix.
type GeoPoint struct {
	ID  string
	Lat float64
	Lng float64
}

// RouteLeg is one directed leg between two points.
type RouteLeg struct {
	DistanceMeters  int
	DurationSeconds int
}

// LegMatrix maps origin ID -> destination ID -> leg.
type LegMatrix map[string]map[string]RouteLeg

// Road legs change rarely, so resolved legs are cached per (profile, from, to).

type legKey struct {
	Profile string
	From    string
	To      string
}

type legCacheEntry struct {
	Leg       RouteLeg
	ExpiresAt time.Time
}

type LegCache interface {
	Get(k legKey) (RouteLeg, bool)
	Set(k legKey, v RouteLeg, ttl time.Duration)
}

type inMemoryLegCache struct {
	mu    sync.RWMutex
	store map[legKey]legCacheEntry
}

func NewInMemoryLegCache() LegCache {
	return &inMemoryLegCache{store: make(map[legKey]legCacheEntry)}
}

func (c *inMemoryLegCache) Get(k legKey) (RouteLeg, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return RouteLeg{}, false
	}
	return it.Leg, true
}

func (c *inMemoryLegCache) Set(k legKey, v RouteLeg, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = legCacheEntry{Leg: v, ExpiresAt: time.Now().Add(ttl)}
}

type DistanceMatrixService interface {
	ComputeLegs(ctx context.Context, points []GeoPoint) (LegMatrix, error)
}

type MapboxMatrixClient struct {
	HTTP        *http.Client
	AccessToken string
	Cache       LegCache
	DefaultTTL  time.Duration
	Profile     string // "driving"
}

// NewMapboxMatrixClient builds the client. A missing token is tolerated here
// so the app can boot without Mapbox; ComputeLegs fails when actually called.
func NewMapboxMatrixClient(cache LegCache) *MapboxMatrixClient {
	token := os.Getenv("MAPBOX_ACCESS_TOKEN")
	if token == "" {
		log.Println("MAPBOX_ACCESS_TOKEN is empty; coordinate-based route resolution is disabled")
	}
	return &MapboxMatrixClient{
		HTTP:        &http.Client{Timeout: 15 * time.Second},
		AccessToken: token,
		Cache:       cache,
		DefaultTTL:  7 * 24 * time.Hour,
		Profile:     "driving",
	}
}

func (c *MapboxMatrixClient) ComputeLegs(ctx context.Context, points []GeoPoint) (LegMatrix, error) {
	if len(points) == 0 {
		return LegMatrix{}, nil
	}
	if c.AccessToken == "" {
		return nil, fmt.Errorf("mapbox matrix: MAPBOX_ACCESS_TOKEN is empty")
	}

	mat := make(LegMatrix, len(points))
	for _, p := range points {
		mat[p.ID] = make(map[string]RouteLeg, len(points))
	}

	missing := false
	for _, from := range points {
		for _, to := range points {
			if from.ID == to.ID {
				continue
			}
			if leg, ok := c.Cache.Get(legKey{Profile: c.Profile, From: from.ID, To: to.ID}); ok {
				mat[from.ID][to.ID] = leg
			} else {
				missing = true
			}
		}
	}
	if !missing {
		return mat, nil
	}

	payload, err := c.fetchMatrix(ctx, points)
	if err != nil {
		return nil, err
	}

	for i, from := range points {
		for j, to := range points {
			if from.ID == to.ID {
				continue
			}
			leg := RouteLeg{
				DistanceMeters:  cellAt(payload.Distances, i, j),
				DurationSeconds: cellAt(payload.Durations, i, j),
			}
			mat[from.ID][to.ID] = leg
			c.Cache.Set(legKey{Profile: c.Profile, From: from.ID, To: to.ID}, leg, c.DefaultTTL)
		}
	}

	return mat, nil
}

type mapboxMatrixPayload struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

func (c *MapboxMatrixClient) fetchMatrix(ctx context.Context, points []GeoPoint) (*mapboxMatrixPayload, error) {
	coords := make([]string, 0, len(points))
	for _, p := range points {
		coords = append(coords, fmt.Sprintf("%f,%f", p.Lng, p.Lat))
	}

	u := url.URL{
		Scheme: "https",
		Host:   "api.mapbox.com",
		Path:   fmt.Sprintf("/directions-matrix/v1/mapbox/%s/%s", c.Profile, strings.Join(coords, ";")),
	}
	q := url.Values{}
	q.Set("annotations", "distance,duration")
	q.Set("sources", "all")
	q.Set("destinations", "all")
	q.Set("access_token", c.AccessToken)
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapbox matrix http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("mapbox matrix bad status: %s", resp.Status)
	}

	var payload mapboxMatrixPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("mapbox decode: %w", err)
	}
	return &payload, nil
}

// cellAt reads grid[i][j] rounded to int, 0 when the cell is absent (Mapbox
// returns null for unroutable pairs).
func cellAt(grid [][]*float64, i, j int) int {
	if i >= len(grid) || j >= len(grid[i]) || grid[i][j] == nil {
		return 0
	}
	return int(*grid[i][j] + 0.5)
}

// --------------------------------------------------------------------------

type RouteServiceInterface interface {
	AssessRoute(ctx context.Context, request request_models.RouteConvenienceRequest) (response_models.RouteAssessmentResponse, error)
}

type RouteService struct {
	matrix DistanceMatrixService
}

func NewRouteService(matrix DistanceMatrixService) RouteServiceInterface {
	return &RouteService{
		matrix: matrix,
	}
}

// AssessRoute classifies a city-pair route. When the caller supplies
// coordinates instead of measured figures, the missing duration and distance
// are resolved through the distance matrix first.
func (r *RouteService) AssessRoute(ctx context.Context, request request_models.RouteConvenienceRequest) (response_models.RouteAssessmentResponse, error) {
	durationHours := request.DurationHours
	distanceKM := request.DistanceKM

	if (durationHours == 0 || distanceKM == 0) && hasCoordinates(request) {
		leg, err := r.resolveLeg(ctx, request)
		if err != nil {
			log.Printf("route leg resolution failed: %v", err)
			return response_models.RouteAssessmentResponse{}, utils.ErrInvalidInput
		}
		if durationHours == 0 {
			durationHours = float64(leg.DurationSeconds) / 3600
		}
		if distanceKM == 0 {
			distanceKM = float64(leg.DistanceMeters) / 1000
		}
	}

	if durationHours <= 0 {
		return response_models.RouteAssessmentResponse{}, utils.ErrInvalidInput
	}

	conv := validation.ClassifyRouteConvenience(validation.RouteInput{
		TravelTimeHours:    durationHours,
		DistanceKm:         distanceKM,
		HasOvernightOption: request.HasOvernightOption,
		HasFerry:           request.IsFerryRoute,
		Scenic:             request.DestinationScenic,
	})

	return response_models.RouteAssessmentResponse{
		Origin:        request.Origin,
		Destination:   request.Destination,
		DurationHours: durationHours,
		DistanceKM:    distanceKM,
		Convenience:   conv,
		PreferGround:  validation.ShouldPreferGroundTransport(conv, request.HasAirport),
	}, nil
}

func (r *RouteService) resolveLeg(ctx context.Context, request request_models.RouteConvenienceRequest) (RouteLeg, error) {
	legs, err := r.matrix.ComputeLegs(ctx, []GeoPoint{
		{ID: "origin", Lat: request.OriginLat, Lng: request.OriginLng},
		{ID: "destination", Lat: request.DestinationLat, Lng: request.DestinationLng},
	})
	if err != nil {
		return RouteLeg{}, err
	}
	return legs["origin"]["destination"], nil
}

func hasCoordinates(request request_models.RouteConvenienceRequest) bool {
	return (request.OriginLat != 0 || request.OriginLng != 0) &&
		(request.DestinationLat != 0 || request.DestinationLng != 0)
}
