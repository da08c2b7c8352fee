package entities

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Type      string    `gorm:"type:varchar(32);not null" json:"type"`
	FoodID    string    `gorm:"type:varchar(64)" json:"food_id,omitempty"`
	UserID    string    `gorm:"type:varchar(64);index" json:"user_id,omitempty"` // empty means broadcast
	NGOID     string    `gorm:"type:varchar(64)" json:"ngo_id,omitempty"`
	SentAt    time.Time `gorm:"index" json:"sent_at"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	Priority  string    `gorm:"type:varchar(8);default:'medium'" json:"priority"`
	ActionURL string    `gorm:"type:text" json:"action_url,omitempty"`

	Timestamp
}
