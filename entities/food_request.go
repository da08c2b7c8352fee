package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type FoodRequest struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	NGOID          string         `gorm:"type:varchar(64);index" json:"ngo_id"`
	NGOName        string         `json:"ngo_name"`
	RequestedBy    string         `gorm:"type:varchar(64);index" json:"requested_by"`
	RequestedItems pq.StringArray `gorm:"type:text[]" json:"requested_items"`
	Quantity       string         `json:"quantity"`
	Urgency        string         `gorm:"type:varchar(8)" json:"urgency"`
	Description    string         `gorm:"type:text" json:"description"`
	Location       string         `json:"location"`
	ContactPerson  string         `json:"contact_person"`
	Phone          string         `json:"phone"`
	Status         string         `gorm:"type:varchar(16);index;default:'pending'" json:"status"`
	Deadline       time.Time      `json:"deadline"`

	Timestamp
}
