package domain

import (
	"errors"
	"time"
)

const (
	EventConference = "Conference"
	EventWorkshop   = "Workshop"
	EventCultural   = "Cultural"
	EventSports     = "Sports"
	EventAcademic   = "Academic"
	EventSocial     = "Social"
)

var (
	MessageSuccessCreateEvent  = "event created successfully"
	MessageSuccessGetEvents    = "events retrieved successfully"
	MessageSuccessLogEventFood = "event food logged successfully"
	MessageFailedCreateEvent   = "failed to create event"
	MessageFailedGetEvents     = "failed to retrieve events"
	MessageFailedLogEventFood  = "failed to log event food"

	ErrEventNotFound = errors.New("event not found")
)

type (
	CampusEvent struct {
		ID                string    `json:"id"`
		Name              string    `json:"name"`
		Date              time.Time `json:"date"`
		Location          string    `json:"location"`
		ExpectedAttendees int       `json:"expected_attendees"`
		Organizer         string    `json:"organizer"`
		FoodLogged        bool      `json:"food_logged"`
		EventType         string    `json:"event_type"`
	}

	CreateEventRequest struct {
		Name              string    `json:"name" validate:"required,max=255"`
		Date              time.Time `json:"date" validate:"required"`
		Location          string    `json:"location" validate:"required,max=255"`
		ExpectedAttendees int       `json:"expected_attendees" validate:"gte=0"`
		Organizer         string    `json:"organizer" validate:"required,max=255"`
		EventType         string    `json:"event_type" validate:"required,oneof=Conference Workshop Cultural Sports Academic Social"`
	}
)
