package freshness

import (
	"FoodShare-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      Label
	}{
		{"exactly at expiry", now, Expired},
		{"one second past", now.Add(-time.Second), Expired},
		{"one second left", now.Add(time.Second), Warning},
		{"exactly two hours", now.Add(2 * time.Hour), Warning},
		{"just over two hours", now.Add(2*time.Hour + time.Second), Fresh},
		{"a day left", now.Add(24 * time.Hour), Fresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.expiresAt, now))
		})
	}
}

func TestTimeRemaining(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Expired", TimeRemaining(now, now))
	assert.Equal(t, "Expired", TimeRemaining(now.Add(-time.Hour), now))
	assert.Equal(t, "3h 25m left", TimeRemaining(now.Add(3*time.Hour+25*time.Minute+59*time.Second), now))
	assert.Equal(t, "45m left", TimeRemaining(now.Add(45*time.Minute+30*time.Second), now))
	assert.Equal(t, "0m left", TimeRemaining(now.Add(30*time.Second), now))
	assert.Equal(t, "1h 0m left", TimeRemaining(now.Add(time.Hour), now))
}

func TestEnvironmentalImpact(t *testing.T) {
	t.Run("empty collection is all zero", func(t *testing.T) {
		assert.Equal(t, domain.EnvironmentalImpact{}, EnvironmentalImpact(nil))
	})

	t.Run("only collected items count", func(t *testing.T) {
		items := []domain.FoodItem{
			{Quantity: 2, Unit: "kg", Status: domain.StatusCollected},
			{Quantity: 5, Unit: "pieces", Status: domain.StatusCollected},
			{Quantity: 100, Unit: "kg", Status: domain.StatusAvailable},
			{Quantity: 100, Unit: "kg", Status: domain.StatusExpired},
		}

		got := EnvironmentalImpact(items)
		assert.Equal(t, 7.0, got.FoodSaved)
		assert.Equal(t, 17.5, got.CarbonFootprintReduced)
		assert.Equal(t, 7000.0, got.WaterFootprintReduced)
		assert.Equal(t, 14, got.PeopleServed)
	})

	t.Run("people served is floored", func(t *testing.T) {
		got := EnvironmentalImpact([]domain.FoodItem{{Quantity: 0.9, Status: domain.StatusCollected}})
		assert.Equal(t, 1, got.PeopleServed)
	})
}

func TestKgEquivalent(t *testing.T) {
	assert.InDelta(t, 4.0, KgEquivalent(4, "kg"), 1e-9)
	assert.InDelta(t, 2.0, KgEquivalent(10, "pieces"), 1e-9)
	assert.InDelta(t, 3.0, KgEquivalent(10, "servings"), 1e-9)
	assert.InDelta(t, 7.0, KgEquivalent(7, "liters"), 1e-9)
	assert.InDelta(t, 10.0, KgEquivalent(10, " Pieces "), 1e-9)
	assert.InDelta(t, 10.0, KgEquivalent(10, "Pieces"), 1e-9)
	assert.InDelta(t, 10.0, KgEquivalent(10, "SERVINGS"), 1e-9)
	assert.Equal(t, 1.0, UnitFactor("Pieces"))
	assert.Equal(t, 0.2, UnitFactor("pieces"))
}

func TestLevel(t *testing.T) {
	assert.Equal(t, 1, Level(0))
	assert.Equal(t, 1, Level(99))
	assert.Equal(t, 2, Level(100))
	assert.Equal(t, 300, NextLevelPoints(250))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 0, Distance(1, 1, 1, 1), 1e-9)
	// Jakarta to Bandung is roughly 116 km as the crow flies.
	assert.InDelta(t, 116, Distance(-6.2088, 106.8456, -6.9175, 107.6191), 5)
}
