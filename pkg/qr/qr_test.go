package qr

import (
	"FoodShare-Backend/domain"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func item() domain.FoodItem {
	return domain.FoodItem{
		ID:        "food-1",
		Title:     "Vegetable Biryani",
		Provider:  "Central Canteen",
		Location:  "Main Campus",
		Quantity:  2.5,
		Unit:      "kg",
		ExpiresAt: now.Add(3 * time.Hour),
	}
}

func TestRoundTrip(t *testing.T) {
	data, err := Encode(item(), now)
	require.NoError(t, err)

	p, err := Decode(data)
	require.NoError(t, err)

	want := item()
	assert.Equal(t, want.ID, p.ID)
	assert.Equal(t, want.Title, p.Title)
	assert.Equal(t, want.Location, p.Location)
	assert.Equal(t, want.Quantity, p.Quantity)
	assert.Equal(t, want.Unit, p.Unit)
	assert.Equal(t, PayloadType, p.Type)
	assert.True(t, want.ExpiresAt.Equal(p.ExpiresAt))
	assert.True(t, now.Equal(p.Timestamp))
}

func TestPayloadShape(t *testing.T) {
	data, err := Encode(item(), now)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "food-1",
		"title": "Vegetable Biryani",
		"provider": "Central Canteen",
		"location": "Main Campus",
		"quantity": 2.5,
		"unit": "kg",
		"expiresAt": "2024-05-01T15:00:00Z",
		"type": "FOOD_COLLECTION",
		"timestamp": "2024-05-01T12:00:00Z"
	}`, string(data))
}

func TestDecodeRejects(t *testing.T) {
	_, err := Decode([]byte(`{"id":"x","type":"PAYMENT"}`))
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = Decode([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = Decode([]byte(`{"type":"FOOD_COLLECTION"}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestPNG(t *testing.T) {
	png, err := PNG(item(), now, 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
