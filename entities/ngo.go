package entities

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type NGO struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                 string         `gorm:"not null" json:"name"`
	Description          string         `gorm:"type:text" json:"description"`
	ContactPerson        string         `json:"contact_person"`
	Email                string         `json:"email"`
	Phone                string         `json:"phone"`
	Address              string         `json:"address"`
	ServiceArea          pq.StringArray `gorm:"type:text[]" json:"service_area"`
	BeneficiaryCount     int            `json:"beneficiary_count"`
	Verified             bool           `json:"verified"`
	Rating               float64        `json:"rating"`
	TotalFoodDistributed float64        `json:"total_food_distributed"`
	Categories           pq.StringArray `gorm:"type:text[]" json:"categories"`

	Timestamp
}
