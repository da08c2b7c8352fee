package event

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/permission"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EventService interface {
		CreateEvent(ctx context.Context, req domain.CreateEventRequest, role string) (domain.CampusEvent, error)
		GetUpcomingEvents(ctx context.Context) ([]domain.CampusEvent, error)
		MarkFoodLogged(ctx context.Context, id string, role string) (domain.CampusEvent, error)
	}

	eventService struct {
		eventRepository EventRepository
		now             func() time.Time
	}
)

func NewEventService(eventRepository EventRepository) EventService {
	return &eventService{
		eventRepository: eventRepository,
		now:             time.Now,
	}
}

// CreateEvent and MarkFoodLogged require canCreateFood.
func (s *eventService) CreateEvent(ctx context.Context, req domain.CreateEventRequest, role string) (domain.CampusEvent, error) {
	if !permission.For(role).Allows(permission.CreateFood) {
		return domain.CampusEvent{}, domain.ErrPermissionDenied
	}

	event := &entities.CampusEvent{
		ID:                uuid.New(),
		Name:              req.Name,
		Date:              req.Date,
		Location:          req.Location,
		ExpectedAttendees: req.ExpectedAttendees,
		Organizer:         req.Organizer,
		EventType:         req.EventType,
	}
	if err := s.eventRepository.CreateEvent(ctx, event); err != nil {
		return domain.CampusEvent{}, err
	}
	return toDomain(*event), nil
}

// GetUpcomingEvents lists events from the start of today onwards.
func (s *eventService) GetUpcomingEvents(ctx context.Context) ([]domain.CampusEvent, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	rows, err := s.eventRepository.GetEventsFrom(ctx, today)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CampusEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func (s *eventService) MarkFoodLogged(ctx context.Context, id string, role string) (domain.CampusEvent, error) {
	if !permission.For(role).Allows(permission.CreateFood) {
		return domain.CampusEvent{}, domain.ErrPermissionDenied
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.CampusEvent{}, domain.ErrEventNotFound
	}

	event, err := s.eventRepository.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CampusEvent{}, domain.ErrEventNotFound
		}
		return domain.CampusEvent{}, err
	}
	if event.FoodLogged {
		return toDomain(*event), nil
	}

	event.FoodLogged = true
	if err := s.eventRepository.UpdateEvent(ctx, event); err != nil {
		return domain.CampusEvent{}, err
	}
	return toDomain(*event), nil
}

func toDomain(e entities.CampusEvent) domain.CampusEvent {
	return domain.CampusEvent{
		ID:                e.ID.String(),
		Name:              e.Name,
		Date:              e.Date,
		Location:          e.Location,
		ExpectedAttendees: e.ExpectedAttendees,
		Organizer:         e.Organizer,
		FoodLogged:        e.FoodLogged,
		EventType:         e.EventType,
	}
}
