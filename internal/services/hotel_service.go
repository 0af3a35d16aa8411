package services

import (
	"context"
	"log"

	"lakbay/internal/models/db_models"
	"lakbay/internal/models/response_models"
	"lakbay/internal/repositories"
	"lakbay/pkg/utils"
)

type HotelServiceInterface interface {
	FindCandidates(ctx context.Context, city string, query string) ([]response_models.HotelCandidateResponse, error)
	IndexHotel(ctx context.Context, hotel db_models.HotelEmbedding) error
}

type HotelService struct {
	hotelRepo repositories.IHotelEmbeddingRepository
	aiClient  utils.ItineraryClientInterface
}

func NewHotelService(hotelRepo repositories.IHotelEmbeddingRepository, aiClient utils.ItineraryClientInterface) HotelServiceInterface {
	return &HotelService{
		hotelRepo: hotelRepo,
		aiClient:  aiClient,
	}
}

// FindCandidates embeds the free-text query and ranks known hotels in the
// city by cosine similarity.
func (h *HotelService) FindCandidates(ctx context.Context, city string, query string) ([]response_models.HotelCandidateResponse, error) {
	vector, err := h.aiClient.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("embedding lookup failed: %v", err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	hotels, err := h.hotelRepo.GetHotelsByVector(vector, city)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.HotelCandidateResponse, 0, len(hotels))
	for _, hotel := range hotels {
		results = append(results, response_models.HotelCandidateResponse{
			HotelName:   hotel.HotelName,
			City:        hotel.City,
			Address:     hotel.Address,
			PricePHP:    hotel.PricePHP,
			Rating:      hotel.Rating,
			Description: hotel.Description,
		})
	}

	return results, nil
}

func (h *HotelService) IndexHotel(ctx context.Context, hotel db_models.HotelEmbedding) error {
	vector, err := h.aiClient.GetEmbedding(ctx, hotel.HotelName+" "+hotel.Description)
	if err != nil {
		log.Printf("embedding generation failed: %v", err)
		return utils.ErrUnexpectedBehaviorOfAI
	}

	hotel.Embedding = vector

	if err := h.hotelRepo.CreateHotelEmbedding(hotel); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
