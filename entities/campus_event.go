package entities

import (
	"time"

	"github.com/google/uuid"
)

type CampusEvent struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Date              time.Time `gorm:"index" json:"date"`
	Location          string    `json:"location"`
	ExpectedAttendees int       `json:"expected_attendees"`
	Organizer         string    `json:"organizer"`
	FoodLogged        bool      `json:"food_logged"`
	EventType         string    `gorm:"type:varchar(32)" json:"event_type"`

	Timestamp
}
