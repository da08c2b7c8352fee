// Package freshness holds the pure derived metrics computed from listings:
// freshness labels, time-remaining strings, environmental impact and the
// unit weight factors used by aggregation.
package freshness

import (
	"FoodShare-Backend/domain"
	"fmt"
	"math"
	"time"
)

type Label string

const (
	Fresh   Label = "fresh"
	Warning Label = "warning"
	Expired Label = "expired"

	WarningWindow = 2 * time.Hour

	carbonPerKg  = 2.5
	waterPerKg   = 1000
	kgPerPerson  = 0.5
	earthRadius  = 6371.0
	expiredLabel = "Expired"
)

var unitFactors = map[string]float64{
	"kg":       1.0,
	"pieces":   0.2,
	"servings": 0.3,
}

// Of classifies expiresAt relative to now. Exactly-at-expiry is expired.
func Of(expiresAt, now time.Time) Label {
	left := expiresAt.Sub(now)
	switch {
	case left <= 0:
		return Expired
	case left <= WarningWindow:
		return Warning
	default:
		return Fresh
	}
}

func IsExpired(expiresAt, now time.Time) bool {
	return Of(expiresAt, now) == Expired
}

// TimeRemaining renders the time left until expiresAt, floor-truncated.
func TimeRemaining(expiresAt, now time.Time) string {
	left := expiresAt.Sub(now)
	if left <= 0 {
		return expiredLabel
	}
	hours := int64(left / time.Hour)
	minutes := int64((left % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%dh %dm left", hours, minutes)
	}
	return fmt.Sprintf("%dm left", minutes)
}

// EnvironmentalImpact sums quantity over collected items only. The sum is
// unit-blind.
func EnvironmentalImpact(items []domain.FoodItem) domain.EnvironmentalImpact {
	var saved float64
	for _, item := range items {
		if item.Status == domain.StatusCollected {
			saved += item.Quantity
		}
	}
	return domain.EnvironmentalImpact{
		FoodSaved:              saved,
		CarbonFootprintReduced: saved * carbonPerKg,
		WaterFootprintReduced:  saved * waterPerKg,
		PeopleServed:           int(math.Floor(saved / kgPerPerson)),
	}
}

// UnitFactor returns the kg-equivalent of one unit. Units match exactly and
// anything else counts as kg.
func UnitFactor(unit string) float64 {
	if f, ok := unitFactors[unit]; ok {
		return f
	}
	return 1.0
}

func KgEquivalent(quantity float64, unit string) float64 {
	return quantity * UnitFactor(unit)
}

func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return points/domain.PointsPerLevel + 1
}

func NextLevelPoints(points int) int {
	return Level(points) * domain.PointsPerLevel
}

// Distance is the haversine distance in kilometres.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
