package event

import (
	"FoodShare-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	EventRepository interface {
		CreateEvent(ctx context.Context, event *entities.CampusEvent) error
		GetEventByID(ctx context.Context, id string) (*entities.CampusEvent, error)
		GetEventsFrom(ctx context.Context, from time.Time) ([]entities.CampusEvent, error)
		UpdateEvent(ctx context.Context, event *entities.CampusEvent) error
	}

	eventRepository struct {
		db *gorm.DB
	}
)

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(ctx context.Context, event *entities.CampusEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetEventByID(ctx context.Context, id string) (*entities.CampusEvent, error) {
	var event entities.CampusEvent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetEventsFrom(ctx context.Context, from time.Time) ([]entities.CampusEvent, error) {
	var events []entities.CampusEvent
	if err := r.db.WithContext(ctx).Where("date >= ?", from).Order("date asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) UpdateEvent(ctx context.Context, event *entities.CampusEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}
