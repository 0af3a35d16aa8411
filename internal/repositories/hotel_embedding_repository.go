package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"lakbay/internal/models/db_models"
)

type IHotelEmbeddingRepository interface {
	GetHotelsByVector(vector pgvector.Vector, city string) ([]db_models.HotelEmbedding, error)
	CreateHotelEmbedding(hotel db_models.HotelEmbedding) error
}

type HotelEmbeddingRepository struct {
	db *gorm.DB
}

func NewHotelEmbeddingRepository(db *gorm.DB) IHotelEmbeddingRepository {
	return &HotelEmbeddingRepository{
		db: db,
	}
}

func (h *HotelEmbeddingRepository) GetHotelsByVector(vector pgvector.Vector, city string) ([]db_models.HotelEmbedding, error) {
	var results []db_models.HotelEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM hotel_embeddings
        WHERE city = $2
          AND (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT 15
    `

	err := h.db.Raw(query, vecStr, city).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (h *HotelEmbeddingRepository) CreateHotelEmbedding(hotel db_models.HotelEmbedding) error {
	return h.db.Create(&hotel).Error
}
