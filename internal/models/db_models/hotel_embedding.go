package db_models

import (
	"github.com/pgvector/pgvector-go"
)

// HotelEmbedding caches one embedding vector per known hotel so candidate
// lookups can run as a cosine-distance query instead of calling the AI
// provider on every request.
type HotelEmbedding struct {
	BaseModel
	HotelName   string `gorm:"uniqueIndex"`
	City        string
	Address     string
	PricePHP    int
	Rating      float64
	Description string
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
}
