package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string         `json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Password     string         `json:"-"`
	Phone        string         `json:"phone"`
	Role         string         `gorm:"type:varchar(32);not null" json:"role"` // FoodProvider, Individual, NGO/Volunteer, Admin
	Organization string         `json:"organization,omitempty"`
	ProfileImage string         `json:"profile_image,omitempty"`
	Verified     bool           `json:"verified"`
	Points       int            `json:"points"`
	Dietary      pq.StringArray `gorm:"type:text[]" json:"dietary"`
	Notify       bool           `gorm:"default:true" json:"notifications"`
	Radius       float64        `gorm:"default:5" json:"radius"`

	FoodListed    int `json:"food_listed"`
	FoodCollected int `json:"food_collected"`
	ImpactScore   int `json:"impact_score"`

	Badges []UserBadge `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"badges,omitempty"`
	Timestamp
}

type UserBadge struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_badge_name" json:"user_id"`
	Name        string    `gorm:"uniqueIndex:idx_user_badge_name" json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	EarnedAt    time.Time `json:"earned_at"`
}
