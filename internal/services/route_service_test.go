package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lakbay/internal/models/request_models"
	"lakbay/internal/validation"
	"lakbay/pkg/utils"
)

type fakeMatrix struct {
	leg   RouteLeg
	err   error
	calls int
}

func (f *fakeMatrix) ComputeLegs(ctx context.Context, points []GeoPoint) (LegMatrix, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	mat := make(LegMatrix, len(points))
	for _, from := range points {
		mat[from.ID] = make(map[string]RouteLeg, len(points))
		for _, to := range points {
			if from.ID != to.ID {
				mat[from.ID][to.ID] = f.leg
			}
		}
	}
	return mat, nil
}

var _ DistanceMatrixService = (*fakeMatrix)(nil)

func TestAssessRouteResolvesLegFromCoordinates(t *testing.T) {
	// 90 km in 1.5 hours.
	matrix := &fakeMatrix{leg: RouteLeg{DistanceMeters: 90000, DurationSeconds: 5400}}
	svc := NewRouteService(matrix)

	resp, err := svc.AssessRoute(context.Background(), request_models.RouteConvenienceRequest{
		Origin:         "Manila",
		Destination:    "Tagaytay",
		OriginLat:      14.5995,
		OriginLng:      120.9842,
		DestinationLat: 14.1153,
		DestinationLng: 120.9621,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, matrix.calls)
	assert.InDelta(t, 1.5, resp.DurationHours, 1e-9)
	assert.InDelta(t, 90.0, resp.DistanceKM, 1e-9)
	assert.Equal(t, validation.TierVeryConvenient, resp.Convenience.Tier)
}

func TestAssessRouteHonorsExplicitFigures(t *testing.T) {
	matrix := &fakeMatrix{leg: RouteLeg{DistanceMeters: 999000, DurationSeconds: 99999}}
	svc := NewRouteService(matrix)

	resp, err := svc.AssessRoute(context.Background(), request_models.RouteConvenienceRequest{
		Origin:        "Batangas",
		Destination:   "Puerto Galera",
		DurationHours: 1.5,
		DistanceKM:    500,
		IsFerryRoute:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, matrix.calls, "matrix must not be consulted when figures are supplied")
	assert.Equal(t, validation.TierVeryConvenient, resp.Convenience.Tier)
}

func TestAssessRouteRejectsUnresolvableRequest(t *testing.T) {
	svc := NewRouteService(&fakeMatrix{})

	// No duration and no coordinates to resolve one from.
	_, err := svc.AssessRoute(context.Background(), request_models.RouteConvenienceRequest{
		Origin:      "Manila",
		Destination: "Batanes",
		DistanceKM:  600,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestAssessRouteSurfacesMatrixFailureAsInvalidInput(t *testing.T) {
	matrix := &fakeMatrix{err: context.DeadlineExceeded}
	svc := NewRouteService(matrix)

	_, err := svc.AssessRoute(context.Background(), request_models.RouteConvenienceRequest{
		Origin:         "Manila",
		Destination:    "Vigan",
		OriginLat:      14.5995,
		OriginLng:      120.9842,
		DestinationLat: 17.5747,
		DestinationLng: 120.3869,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestLegCacheExpiry(t *testing.T) {
	cache := NewInMemoryLegCache()
	key := legKey{Profile: "driving", From: "a", To: "b"}
	leg := RouteLeg{DistanceMeters: 1200, DurationSeconds: 180}

	cache.Set(key, leg, 50*time.Millisecond)

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, leg, got)

	time.Sleep(60 * time.Millisecond)
	_, ok = cache.Get(key)
	assert.False(t, ok)
}
