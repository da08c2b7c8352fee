// Package qr encodes listings into the collection QR payload and back.
package qr

import (
	"FoodShare-Backend/domain"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	PayloadType = "FOOD_COLLECTION"
	DefaultSize = 256
)

var (
	ErrInvalidPayload = errors.New("invalid qr payload")
	ErrWrongType      = errors.New("qr payload is not a food collection code")
)

type Payload struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Provider  string    `json:"provider"`
	Location  string    `json:"location"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	ExpiresAt time.Time `json:"expiresAt"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

func NewPayload(item domain.FoodItem, now time.Time) Payload {
	return Payload{
		ID:        item.ID,
		Title:     item.Title,
		Provider:  item.Provider,
		Location:  item.Location,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		ExpiresAt: item.ExpiresAt,
		Type:      PayloadType,
		Timestamp: now,
	}
}

func Encode(item domain.FoodItem, now time.Time) ([]byte, error) {
	return json.Marshal(NewPayload(item, now))
}

// PNG renders the payload for item as a QR image of size x size pixels.
func PNG(item domain.FoodItem, now time.Time, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	data, err := Encode(item, now)
	if err != nil {
		return nil, err
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}
	return png, nil
}

// Decode parses a scanned payload. Anything that is not a food collection
// code is rejected.
func Decode(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p.Type != PayloadType {
		return Payload{}, ErrWrongType
	}
	if p.ID == "" {
		return Payload{}, fmt.Errorf("%w: missing id", ErrInvalidPayload)
	}
	return p, nil
}
