package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"lakbay/internal/models/db_models"
	"lakbay/internal/models/request_models"
	"lakbay/internal/models/response_models"
	"lakbay/internal/repositories"
	"lakbay/internal/validation"
	mem "lakbay/pkg/memcache"
	"lakbay/pkg/utils"
)

type TripServiceInterface interface {
	GenerateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTrip(ctx context.Context, accountID string, tripID string) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, accountID string, page, pageSize int) (*response_models.TripListResponse, error)
	DeleteTrip(ctx context.Context, accountID string, tripID string) error
	RevalidateTrip(ctx context.Context, accountID string, tripID string) (*response_models.TripValidationResponse, error)
	ValidateItinerary(request request_models.ValidateItineraryRequest) *response_models.TripValidationResponse
}

type TripService struct {
	tripRepo repositories.TripRepository
	aiClient utils.ItineraryClientInterface
	limiter  mem.SubmissionLimiter
}

func NewTripService(
	tripRepo repositories.TripRepository,
	aiClient utils.ItineraryClientInterface,
	limiter mem.SubmissionLimiter,
) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
		aiClient: aiClient,
		limiter:  limiter,
	}
}

// generatedPlan is the document shape the AI provider is asked to return.
type generatedPlan struct {
	Itinerary validation.Itinerary `json:"itinerary"`
	Hotels    []validation.Hotel   `json:"hotels"`
}

func (t *TripService) GenerateTrip(ctx context.Context, accountID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {

	if !t.limiter.Allow(accountID) {
		return nil, utils.ErrRateLimited
	}

	sanitized := validation.SanitizeTravelInput(request.Notes)
	if sanitized.HasInjection {
		log.Printf("dropped injection patterns from trip notes: %v", sanitized.RemovedPatterns)
	}
	notes := validation.EscapeForPrompt(sanitized.Sanitized)

	prompt := buildTripPrompt(request.Destination, request.Days, request.BudgetPHP, request.Interests, notes)

	raw, err := t.aiClient.GenerateItineraryJSON(ctx, prompt, request.Days)
	if err != nil {
		log.Printf("itinerary generation failed: %v", err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	cleaned := utils.CleanJSONResponse(raw)

	var plan generatedPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		log.Printf("itinerary parse failed: %v", err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}
	if len(plan.Itinerary) == 0 {
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	pipeline := validation.NewPipeline(
		validation.HotelConsistencyStage(plan.Hotels),
		validation.TransportStage(),
	)
	corrected, stages := pipeline.Run(plan.Itinerary)

	trip := &db_models.Trip{
		AccountID:   uuid.MustParse(accountID),
		Destination: request.Destination,
		Days:        request.Days,
		BudgetPHP:   request.BudgetPHP,
		Interests:   request.Interests,
		Status:      "ready",
	}
	trip.RawAIOutput = datatypes.JSON(cleaned)
	trip.Itinerary = mustJSON(corrected)
	trip.Hotels = mustJSON(plan.Hotels)
	trip.ValidationReport = mustJSON(stages)

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return tripToResponse(trip)
}

func (t *TripService) GetTrip(ctx context.Context, accountID string, tripID string) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.FindById(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.AccountID.String() != accountID {
		return nil, utils.ErrTripNotFound
	}

	return tripToResponse(trip)
}

func (t *TripService) ListTrips(ctx context.Context, accountID string, page, pageSize int) (*response_models.TripListResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 50 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, total, err := t.tripRepo.FindByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		resp, err := tripToResponse(&trips[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return &response_models.TripListResponse{
		Trips:    responses,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, accountID string, tripID string) error {
	trip, err := t.tripRepo.FindById(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil || trip.AccountID.String() != accountID {
		return utils.ErrTripNotFound
	}

	return t.tripRepo.Delete(ctx, tripID)
}

// RevalidateTrip reruns the pipeline over a stored trip and persists the
// outcome. Useful after the confirmed hotel list stored with the trip has been
// edited; on an untouched trip it is a no-op that refreshes the report.
func (t *TripService) RevalidateTrip(ctx context.Context, accountID string, tripID string) (*response_models.TripValidationResponse, error) {
	trip, err := t.tripRepo.FindById(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.AccountID.String() != accountID {
		return nil, utils.ErrTripNotFound
	}

	var itinerary validation.Itinerary
	if err := json.Unmarshal(trip.Itinerary, &itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}
	var hotels []validation.Hotel
	if err := json.Unmarshal(trip.Hotels, &hotels); err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := t.ValidateItinerary(request_models.ValidateItineraryRequest{
		Itinerary: itinerary,
		Hotels:    hotels,
	})

	trip.Itinerary = mustJSON(result.Itinerary)
	trip.ValidationReport = mustJSON(result.Stages)
	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return result, nil
}

// ValidateItinerary runs the correction pipeline over a caller-supplied
// document without touching the database.
func (t *TripService) ValidateItinerary(request request_models.ValidateItineraryRequest) *response_models.TripValidationResponse {
	pipeline := validation.NewPipeline(
		validation.HotelConsistencyStage(request.Hotels),
		validation.TransportStage(),
	)
	corrected, stages := pipeline.Run(request.Itinerary)

	transport := validation.ValidateTransport(corrected)

	return &response_models.TripValidationResponse{
		Itinerary: corrected,
		Stages:    stages,
		Transport: &transport,
	}
}

func buildTripPrompt(destination string, days int, budgetPHP int, interests []string, notes string) string {
	prompt := fmt.Sprintf(
		"Plan a %d-day trip to %s in the Philippines with a total budget of PHP %d.",
		days, destination, budgetPHP,
	)
	if len(interests) > 0 {
		prompt += fmt.Sprintf(" The traveler is interested in: %v.", interests)
	}
	if notes != "" {
		prompt += " Additional notes from the traveler: " + notes
	}
	return prompt
}

func tripToResponse(trip *db_models.Trip) (*response_models.TripResponse, error) {
	var itinerary validation.Itinerary
	if len(trip.Itinerary) > 0 {
		if err := json.Unmarshal(trip.Itinerary, &itinerary); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	var hotels []validation.Hotel
	if len(trip.Hotels) > 0 {
		if err := json.Unmarshal(trip.Hotels, &hotels); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return &response_models.TripResponse{
		ID:          trip.ID.String(),
		Destination: trip.Destination,
		Days:        trip.Days,
		BudgetPHP:   trip.BudgetPHP,
		Interests:   trip.Interests,
		Status:      trip.Status,
		Itinerary:   itinerary,
		Hotels:      hotels,
		CreatedAt:   trip.CreatedAt,
		CreatedAtPH: utils.FormatRFC3339PH(utils.FromUnixSecondsPH(trip.CreatedAt)),
	}, nil
}

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		// The pipeline only produces marshalable values.
		panic(err)
	}
	return datatypes.JSON(b)
}
