package listing

import (
	"FoodShare-Backend/domain"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSnapshotIsIsolated(t *testing.T) {
	s := NewStore(sampleItem("a", domain.StatusAvailable))

	snap := s.Snapshot()
	snap[0].Title = "changed"
	snap[0].Tags[0] = "changed"

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Vegetable Biryani", got.Title)
	assert.Equal(t, "vegetarian", got.Tags[0])
}

func TestStoreUpdateFailureLeavesNoPartialState(t *testing.T) {
	s := NewStore(sampleItem("a", domain.StatusAvailable), sampleItem("b", domain.StatusAvailable))

	err := s.Update(func(items []domain.FoodItem) ([]domain.FoodItem, bool, error) {
		items[0].Status = domain.StatusCollected
		return nil, false, errors.New("boom")
	})
	require.Error(t, err)

	got, _ := s.Get("a")
	assert.Equal(t, domain.StatusAvailable, got.Status)
}

func TestStoreUnchangedUpdateDoesNotNotify(t *testing.T) {
	s := NewStore(sampleItem("a", domain.StatusAvailable))
	var calls int
	s.Subscribe(func([]domain.FoodItem) { calls++ })

	require.NoError(t, s.Update(func(items []domain.FoodItem) ([]domain.FoodItem, bool, error) {
		items[0].Title = "ignored"
		return items, false, nil
	}))
	assert.Zero(t, calls)

	got, _ := s.Get("a")
	assert.Equal(t, "Vegetable Biryani", got.Title)

	require.NoError(t, s.Update(func(items []domain.FoodItem) ([]domain.FoodItem, bool, error) {
		return items[:0], true, nil
	}))
	assert.Equal(t, 1, calls)
	assert.Zero(t, s.Len())
}

func TestStoreLoadInitialData(t *testing.T) {
	p := newFakePersister()
	p.saved["a"] = sampleItem("a", domain.StatusAvailable)

	s := NewStore()
	var seen int
	s.Subscribe(func(items []domain.FoodItem) { seen = len(items) })

	require.NoError(t, s.LoadInitialData(context.Background(), p))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, seen)
}
