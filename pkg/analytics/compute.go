package analytics

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/pkg/freshness"
	"math"
	"sort"
	"time"
)

const (
	peoplePerCompletedListing = 3
	receivedShare             = 0.8
	wastePerKg                = 2.5
	topLocations              = 5
	trendDays                 = 7
)

type Bundle struct {
	TotalListings     int     `json:"total_listings"`
	ActiveListings    int     `json:"active_listings"`
	CompletedListings int     `json:"completed_listings"`
	ExpiredListings   int     `json:"expired_listings"`
	TotalKgDonated    float64 `json:"total_kg_donated"`
	PeopleHelped      int     `json:"people_helped"`
	AverageRating     float64 `json:"average_rating"`

	CollectedItems  int     `json:"collected_items"`
	TotalKgReceived float64 `json:"total_kg_received"`

	ItemsCollected int     `json:"items_collected"`
	KgCollected    float64 `json:"kg_collected"`

	TotalFoodItems int     `json:"total_food_items"`
	TotalKgSaved   float64 `json:"total_kg_saved"`
	WasteReduced   float64 `json:"waste_reduced"`

	TodayListings    int `json:"today_listings"`
	TodayCollections int `json:"today_collections"`

	CategoryStats []domain.CategoryStat `json:"category_stats"`
	LocationStats []domain.LocationStat `json:"location_stats"`

	PendingRequests  Unknowable[int]                  `json:"pending_requests"`
	TotalRequests    Unknowable[int]                  `json:"total_requests"`
	ApprovedRequests Unknowable[int]                  `json:"approved_requests"`
	TotalUsers       Unknowable[int64]                `json:"total_users"`
	ActiveUsers      Unknowable[int]                  `json:"active_users"`
	WeeklyTrends     Unknowable[[]domain.WeeklyTrend] `json:"weekly_trends"`

	Impact      domain.EnvironmentalImpact `json:"environmental_impact"`
	LastUpdated time.Time                  `json:"last_updated"`
}

// Scope filters items to what user may see in analytics. Providers see their
// own listings, matched by id or by display name; everyone else sees all.
func Scope(items []domain.FoodItem, user *domain.User) []domain.FoodItem {
	if user == nil || user.Role != domain.RoleFoodProvider {
		return items
	}
	out := make([]domain.FoodItem, 0, len(items))
	for _, item := range items {
		if item.ProviderID == user.ID || (user.Name != "" && item.Provider == user.Name) {
			out = append(out, item)
		}
	}
	return out
}

// Compute derives the bundle from items as seen by user at now. Request and
// user counts are left unknown; the Aggregator fills them when it can.
func Compute(items []domain.FoodItem, user *domain.User, now time.Time) Bundle {
	scoped := Scope(items, user)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	b := Bundle{
		TotalListings:  len(scoped),
		TotalFoodItems: len(items),
		LastUpdated:    now,
		CategoryStats:  []domain.CategoryStat{},
		LocationStats:  []domain.LocationStat{},
		WeeklyTrends:   Known(weeklyTrends(scoped, now)),
	}

	var kg, ratingSum float64
	var rated int
	categories := map[string]int{}
	locations := map[string]int{}

	for _, item := range scoped {
		switch item.Status {
		case domain.StatusAvailable:
			b.ActiveListings++
		case domain.StatusCollected:
			b.CompletedListings++
			collectedAt := now
			if item.CollectedAt != nil {
				collectedAt = *item.CollectedAt
			}
			if !collectedAt.Before(today) {
				b.TodayCollections++
			}
		case domain.StatusExpired:
			b.ExpiredListings++
		}

		listedAt := item.ListedAt
		if listedAt.IsZero() {
			listedAt = now
		}
		if !listedAt.Before(today) {
			b.TodayListings++
		}

		kg += freshness.KgEquivalent(item.Quantity, item.Unit)
		if item.Rating != nil && *item.Rating != 0 {
			ratingSum += *item.Rating
			rated++
		}
		categories[item.Type]++
		locations[item.Location]++
	}

	b.TotalKgDonated = freshness.Round1(kg)
	b.PeopleHelped = b.CompletedListings * peoplePerCompletedListing
	if rated > 0 {
		b.AverageRating = freshness.Round1(ratingSum / float64(rated))
	}
	b.CollectedItems = b.CompletedListings
	b.ItemsCollected = b.CompletedListings
	b.TotalKgReceived = freshness.Round1(kg * receivedShare)
	b.KgCollected = b.TotalKgReceived
	b.TotalKgSaved = b.TotalKgDonated
	b.WasteReduced = freshness.Round1(kg * wastePerKg)

	for category, count := range categories {
		pct := 0
		if b.TotalListings > 0 {
			pct = int(math.Round(float64(count) / float64(b.TotalListings) * 100))
		}
		b.CategoryStats = append(b.CategoryStats, domain.CategoryStat{Category: category, Count: count, Percentage: pct})
	}
	sort.Slice(b.CategoryStats, func(i, j int) bool {
		if b.CategoryStats[i].Count != b.CategoryStats[j].Count {
			return b.CategoryStats[i].Count > b.CategoryStats[j].Count
		}
		return b.CategoryStats[i].Category < b.CategoryStats[j].Category
	})

	for location, count := range locations {
		b.LocationStats = append(b.LocationStats, domain.LocationStat{Location: location, Count: count})
	}
	sort.Slice(b.LocationStats, func(i, j int) bool {
		if b.LocationStats[i].Count != b.LocationStats[j].Count {
			return b.LocationStats[i].Count > b.LocationStats[j].Count
		}
		return b.LocationStats[i].Location < b.LocationStats[j].Location
	})
	if len(b.LocationStats) > topLocations {
		b.LocationStats = b.LocationStats[:topLocations]
	}

	b.Impact = freshness.EnvironmentalImpact(scoped)
	return b
}

// weeklyTrends buckets listings by listedAt and collections by collectedAt
// into the seven days ending today. It is never unknown.
func weeklyTrends(items []domain.FoodItem, now time.Time) []domain.WeeklyTrend {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(trendDays - 1))
	trends := make([]domain.WeeklyTrend, trendDays)
	for i := range trends {
		trends[i].Day = start.AddDate(0, 0, i).Format("2006-01-02")
	}
	dayIndex := func(t time.Time) int {
		if t.IsZero() || t.Before(start) {
			return -1
		}
		d := int(t.In(now.Location()).Sub(start) / (24 * time.Hour))
		if d >= trendDays {
			return -1
		}
		return d
	}
	for _, item := range items {
		if d := dayIndex(item.ListedAt); d >= 0 {
			trends[d].Listings++
		}
		if item.Status == domain.StatusCollected && item.CollectedAt != nil {
			if d := dayIndex(*item.CollectedAt); d >= 0 {
				trends[d].Collections++
			}
		}
	}
	return trends
}
