package listing

import (
	"FoodShare-Backend/domain"
	"time"

	"github.com/google/uuid"
)

const (
	actionFoodListed    = "food_listed"
	actionFoodCollected = "food_collected"
)

type badgeRule struct {
	threshold   int
	name        string
	description string
	icon        string
	color       string
}

var badgeRules = map[string][]badgeRule{
	actionFoodListed: {
		{1, "First Share", "Listed your first food item", "🌱", "green"},
		{10, "Food Hero", "Listed 10 food items", "🦸", "blue"},
		{50, "Waste Warrior", "Listed 50 food items", "⚔️", "purple"},
	},
	actionFoodCollected: {
		{1, "First Rescue", "Collected your first food item", "🎯", "orange"},
		{25, "Food Saver", "Collected 25 food items", "💚", "green"},
		{100, "Community Champion", "Collected 100 food items", "👑", "gold"},
	},
}

// awardBadges appends every badge the user now qualifies for and does not
// hold yet. It returns the newly awarded badges.
func awardBadges(user *domain.User, action string, count int, now time.Time) []domain.Badge {
	var earned []domain.Badge
	for _, rule := range badgeRules[action] {
		if count < rule.threshold || user.HasBadge(rule.name) {
			continue
		}
		b := domain.Badge{
			ID:          uuid.NewString(),
			Name:        rule.name,
			Description: rule.description,
			Icon:        rule.icon,
			Color:       rule.color,
			EarnedAt:    now,
		}
		user.Badges = append(user.Badges, b)
		earned = append(earned, b)
	}
	return earned
}
