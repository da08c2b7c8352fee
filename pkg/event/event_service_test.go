package event

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryRepo struct {
	rows   map[string]entities.CampusEvent
	writes int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[string]entities.CampusEvent)}
}

func (r *memoryRepo) CreateEvent(_ context.Context, e *entities.CampusEvent) error {
	r.rows[e.ID.String()] = *e
	r.writes++
	return nil
}

func (r *memoryRepo) GetEventByID(_ context.Context, id string) (*entities.CampusEvent, error) {
	e, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *memoryRepo) GetEventsFrom(_ context.Context, from time.Time) ([]entities.CampusEvent, error) {
	var out []entities.CampusEvent
	for _, e := range r.rows {
		if !e.Date.Before(from) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *memoryRepo) UpdateEvent(_ context.Context, e *entities.CampusEvent) error {
	r.rows[e.ID.String()] = *e
	r.writes++
	return nil
}

var now = time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)

func newService(repo EventRepository) EventService {
	svc := NewEventService(repo).(*eventService)
	svc.now = func() time.Time { return now }
	return svc
}

func request(name string, date time.Time) domain.CreateEventRequest {
	return domain.CreateEventRequest{
		Name:              name,
		Date:              date,
		Location:          "Auditorium",
		ExpectedAttendees: 200,
		Organizer:         "Student Union",
		EventType:         domain.EventConference,
	}
}

func TestUpcomingEventsIncludeToday(t *testing.T) {
	svc := newService(newMemoryRepo())
	ctx := context.Background()

	for _, req := range []domain.CreateEventRequest{
		request("next week", now.AddDate(0, 0, 7)),
		request("this morning", now.Add(-6*time.Hour)),
		request("yesterday", now.AddDate(0, 0, -1)),
	} {
		_, err := svc.CreateEvent(ctx, req, domain.RoleFoodProvider)
		require.NoError(t, err)
	}

	events, err := svc.GetUpcomingEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "this morning", events[0].Name)
	assert.Equal(t, "next week", events[1].Name)
}

func TestMarkFoodLoggedIsIdempotent(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo)
	ctx := context.Background()

	ev, err := svc.CreateEvent(ctx, request("fair", now), domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ev.FoodLogged)

	ev, err = svc.MarkFoodLogged(ctx, ev.ID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ev.FoodLogged)

	_, err = svc.MarkFoodLogged(ctx, ev.ID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.writes)
}

func TestEventPermissions(t *testing.T) {
	svc := newService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, request("fair", now), domain.RoleIndividual)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = svc.MarkFoodLogged(ctx, "bad-id", domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
