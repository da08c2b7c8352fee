package listing

import (
	"FoodShare-Backend/domain"
	"context"
	"sync"
)

// Observer is notified after every committed change with a snapshot of the
// new collection. Observers run under the store's write lock and must not
// call back into the store.
type Observer func(items []domain.FoodItem)

type Loader interface {
	LoadAll(ctx context.Context) ([]domain.FoodItem, error)
}

// Store owns the listing collection. All writes go through Update, which
// replaces the collection atomically; readers get deep copies.
type Store struct {
	mu        sync.RWMutex
	items     []domain.FoodItem
	observers []Observer
}

func NewStore(items ...domain.FoodItem) *Store {
	return &Store{items: cloneAll(items)}
}

func (s *Store) LoadInitialData(ctx context.Context, loader Loader) error {
	items, err := loader.LoadAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cloneAll(items)
	s.notify()
	return nil
}

func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

func (s *Store) Snapshot() []domain.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.items)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) Get(id string) (domain.FoodItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.items, id); i >= 0 {
		return s.items[i].Clone(), true
	}
	return domain.FoodItem{}, false
}

// Update runs fn against a private copy of the collection. The result
// replaces the collection only when fn returns changed=true and no error, so
// a failed mutation leaves no partial state behind.
func (s *Store) Update(fn func(items []domain.FoodItem) ([]domain.FoodItem, bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed, err := fn(cloneAll(s.items))
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	s.items = next
	s.notify()
	return nil
}

func (s *Store) notify() {
	if len(s.observers) == 0 {
		return
	}
	snapshot := cloneAll(s.items)
	for _, o := range s.observers {
		o(snapshot)
	}
}

func cloneAll(items []domain.FoodItem) []domain.FoodItem {
	out := make([]domain.FoodItem, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}

func indexOf(items []domain.FoodItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
