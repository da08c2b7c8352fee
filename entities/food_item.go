package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type FoodItem struct {
	ID              string         `gorm:"type:varchar(64);primary_key" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Type            string         `gorm:"type:varchar(32);not null" json:"type"`
	Quantity        float64        `json:"quantity"`
	Unit            string         `gorm:"type:varchar(32)" json:"unit"`
	Provider        string         `json:"provider"`
	ProviderID      string         `gorm:"type:varchar(64);index" json:"provider_id"`
	Location        string         `json:"location"`
	SafetyHours     float64        `json:"safety_hours"`
	ListedAt        time.Time      `json:"listed_at"`
	ExpiresAt       time.Time      `gorm:"index" json:"expires_at"`
	Description     string         `gorm:"type:text" json:"description"`
	ImageURL        string         `json:"image_url,omitempty"`
	Status          string         `gorm:"type:varchar(16);index" json:"status"` // Available, Reserved, Collected, Expired
	Tags            pq.StringArray `gorm:"type:text[]" json:"tags"`
	Allergens       pq.StringArray `gorm:"type:text[]" json:"allergens"`
	NutritionalInfo string         `gorm:"type:text" json:"nutritional_info,omitempty"`
	ReservedBy      *string        `json:"reserved_by,omitempty"`
	CollectedBy     *string        `json:"collected_by,omitempty"`
	CollectedAt     *time.Time     `json:"collected_at,omitempty"`
	Rating          *float64       `json:"rating,omitempty"`

	Reviews []Review `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Timestamp
}

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodItemID string    `gorm:"type:varchar(64);index" json:"food_item_id"`
	UserID     string    `gorm:"type:varchar(64)" json:"user_id"`
	UserName   string    `json:"user_name"`
	Rating     float64   `json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	ReviewedAt time.Time `json:"reviewed_at"`

	Timestamp
}
