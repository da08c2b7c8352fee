package analytics

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/pkg/freshness"
	"time"
)

const expiringSoonWindow = 24 * time.Hour

// Dashboard returns the role-specific counters shown on a user's home screen.
func Dashboard(items []domain.FoodItem, user *domain.User, now time.Time) domain.DashboardStats {
	stats := domain.DashboardStats{Counters: map[string]int{}, AsOf: now}
	if user == nil {
		return stats
	}
	stats.Role = user.Role

	live := func(item domain.FoodItem) bool {
		return item.Status == domain.StatusAvailable && !freshness.IsExpired(item.ExpiresAt, now)
	}
	expiringSoon := func(item domain.FoodItem) bool {
		return live(item) && item.ExpiresAt.Sub(now) <= expiringSoonWindow
	}

	c := stats.Counters
	switch user.Role {
	case domain.RoleFoodProvider:
		c["active_listings"] = 0
		c["total_distributed"] = 0
		c["expiring_soon"] = 0
		for _, item := range items {
			if item.ProviderID != user.ID {
				continue
			}
			if item.Status == domain.StatusAvailable {
				c["active_listings"]++
			}
			if item.Status == domain.StatusCollected {
				c["total_distributed"]++
			}
			if expiringSoon(item) {
				c["expiring_soon"]++
			}
		}
	case domain.RoleNGO:
		c["available_food"] = 0
		c["expiring_soon"] = 0
		c["reserved_by_me"] = 0
		for _, item := range items {
			if live(item) {
				c["available_food"]++
			}
			if expiringSoon(item) {
				c["expiring_soon"]++
			}
			if item.Status == domain.StatusReserved && item.ReservedBy == user.ID {
				c["reserved_by_me"]++
			}
		}
	case domain.RoleIndividual:
		c["available_food"] = 0
		c["collected_by_me"] = 0
		for _, item := range items {
			if live(item) {
				c["available_food"]++
			}
			if item.Status == domain.StatusCollected && item.CollectedBy == user.ID {
				c["collected_by_me"]++
			}
		}
	case domain.RoleAdmin:
		c["total_listings"] = len(items)
		c["active_listings"] = 0
		c["total_distributed"] = 0
		c["expired_listings"] = 0
		for _, item := range items {
			switch item.Status {
			case domain.StatusAvailable:
				c["active_listings"]++
			case domain.StatusCollected:
				c["total_distributed"]++
			case domain.StatusExpired:
				c["expired_listings"]++
			}
		}
	}
	return stats
}
