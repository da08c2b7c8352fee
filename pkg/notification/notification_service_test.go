package notification

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryRepo struct {
	mu   sync.Mutex
	rows map[string]entities.Notification
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[string]entities.Notification)}
}

func (r *memoryRepo) Create(_ context.Context, n *entities.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[n.ID.String()] = *n
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &n, nil
}

func (r *memoryRepo) ListForUser(_ context.Context, userID string, limit int) ([]entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Notification
	for _, n := range r.rows {
		if n.UserID == "" || n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	list, _ := r.ListForUser(ctx, userID, len(r.rows)+1)
	var n int64
	for _, e := range list {
		if !e.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *memoryRepo) MarkAsRead(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.rows[id]
	n.IsRead = true
	r.rows[id] = n
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

type stubMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *stubMailer) SendMail(to, subject, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

type stubRecipients map[string]domain.User

func (s stubRecipients) GetUserByID(_ context.Context, id string) (domain.User, error) {
	u, ok := s[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestListNewestFirstWithBroadcasts(t *testing.T) {
	svc := NewNotificationService(newMemoryRepo(), nil, nil, "", nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Emit(ctx, domain.Notification{Title: "old", Type: domain.NotificationFoodAvailable, Timestamp: base}))
	require.NoError(t, svc.Emit(ctx, domain.Notification{Title: "mine", Type: domain.NotificationPickupReminder, UserID: "u1", Timestamp: base.Add(time.Minute)}))
	require.NoError(t, svc.Emit(ctx, domain.Notification{Title: "theirs", Type: domain.NotificationPickupReminder, UserID: "u2", Timestamp: base.Add(2 * time.Minute)}))

	res, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, res.Notifications, 2)
	assert.Equal(t, "mine", res.Notifications[0].Title)
	assert.Equal(t, "old", res.Notifications[1].Title)
	assert.Equal(t, int64(2), res.UnreadCount)
	assert.Equal(t, domain.PriorityMedium, res.Notifications[0].Priority)
}

func TestMarkAsReadAndDismissAreIndependent(t *testing.T) {
	svc := NewNotificationService(newMemoryRepo(), nil, nil, "", nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Emit(ctx, domain.Notification{Title: "a", UserID: "u1", Timestamp: base}))
	require.NoError(t, svc.Emit(ctx, domain.Notification{Title: "b", UserID: "u1", Timestamp: base.Add(time.Second)}))

	res, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	newest, older := res.Notifications[0], res.Notifications[1]

	require.NoError(t, svc.MarkAsRead(ctx, newest.ID, "u1"))
	unread, err := svc.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	// Dismissing an unread notification works without reading it first.
	require.NoError(t, svc.Dismiss(ctx, older.ID, "u1"))
	res, err = svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, res.Notifications, 1)
	assert.True(t, res.Notifications[0].Read)
}

func TestOtherUsersNotificationIsHidden(t *testing.T) {
	svc := NewNotificationService(newMemoryRepo(), nil, nil, "", nil, nil)
	ctx := context.Background()
	require.NoError(t, svc.Emit(ctx, domain.Notification{Title: "a", UserID: "u2", Timestamp: base}))

	res, err := svc.List(ctx, "u2")
	require.NoError(t, err)
	id := res.Notifications[0].ID

	assert.ErrorIs(t, svc.MarkAsRead(ctx, id, "u1"), domain.ErrNotificationNotFound)
	assert.ErrorIs(t, svc.Dismiss(ctx, id, "u1"), domain.ErrNotificationNotFound)
	assert.ErrorIs(t, svc.Dismiss(ctx, "not-a-uuid", "u1"), domain.ErrNotificationNotFound)
}

func TestEmitMailsOptedInRecipient(t *testing.T) {
	mailer := &stubMailer{}
	recipients := stubRecipients{
		"u1": {ID: "u1", Email: "u1@example.com", Preferences: domain.Preferences{Notifications: true}},
		"u2": {ID: "u2", Email: "u2@example.com"},
	}
	svc := NewNotificationService(newMemoryRepo(), recipients, mailer, "http://localhost", nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Emit(ctx, domain.Notification{Title: "Pickup Reminder", UserID: "u1"}))
	require.NoError(t, svc.Emit(ctx, domain.Notification{Title: "Pickup Reminder", UserID: "u2"}))
	require.NoError(t, svc.Emit(ctx, domain.Notification{Title: "New Food Listed"}))
	svc.Close()

	assert.Equal(t, []string{"u1@example.com|Pickup Reminder"}, mailer.sent)
}
