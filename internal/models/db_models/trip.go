package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Trip struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Destination string
	Days        int
	BudgetPHP   int
	Interests   pq.StringArray `gorm:"type:text[]"`
	Status      string         `gorm:"default:draft"`

	Itinerary        datatypes.JSON
	Hotels           datatypes.JSON
	RawAIOutput      datatypes.JSON
	ValidationReport datatypes.JSON
}
