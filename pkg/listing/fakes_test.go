package listing

import (
	"FoodShare-Backend/domain"
	"context"
	"fmt"
	"sync"
	"time"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (f *fakeNotifier) Emit(_ context.Context, n domain.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, n)
	return nil
}

func (f *fakeNotifier) ofType(kind string) []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Notification
	for _, n := range f.sent {
		if n.Type == kind {
			out = append(out, n)
		}
	}
	return out
}

type fakePersister struct {
	saved   map[string]domain.FoodItem
	deleted []string
	err     error
}

func newFakePersister() *fakePersister {
	return &fakePersister{saved: make(map[string]domain.FoodItem)}
}

func (f *fakePersister) Save(_ context.Context, item domain.FoodItem) error {
	if f.err != nil {
		return f.err
	}
	f.saved[item.ID] = item
	return nil
}

func (f *fakePersister) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePersister) LoadAll(_ context.Context) ([]domain.FoodItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.FoodItem, 0, len(f.saved))
	for _, item := range f.saved {
		out = append(out, item)
	}
	return out, nil
}

type fakeProgress struct {
	saved []domain.Progress
}

func (f *fakeProgress) SaveProgress(_ context.Context, p domain.Progress) error {
	f.saved = append(f.saved, p)
	return nil
}

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func provider() *domain.User {
	return &domain.User{ID: "provider-1", Name: "Central Canteen", Role: domain.RoleFoodProvider}
}

func individual() *domain.User {
	return &domain.User{ID: "user-1", Name: "Ayu", Role: domain.RoleIndividual}
}

func admin() *domain.User {
	return &domain.User{ID: "admin-1", Name: "Admin", Role: domain.RoleAdmin}
}

func sampleItem(id, status string) domain.FoodItem {
	return domain.FoodItem{
		ID:          id,
		Title:       "Vegetable Biryani",
		Type:        domain.TypeCookedFood,
		Quantity:    5,
		Unit:        "kg",
		Provider:    "Central Canteen",
		ProviderID:  "provider-1",
		Location:    "Main Campus",
		SafetyHours: 4,
		ListedAt:    testNow.Add(-time.Hour),
		ExpiresAt:   testNow.Add(3 * time.Hour),
		Status:      status,
		Tags:        []string{"vegetarian"},
	}
}
