package listing

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/pkg/freshness"
	"sort"
	"strings"
	"time"
)

const (
	FilterAll       = "all"
	FilterAvailable = "available"
	FilterFresh     = "fresh"

	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Query struct {
	Search     string
	Filter     string
	Status     string
	ProviderID string
	Page       int
	Limit      int
}

type Page struct {
	Items      []domain.FoodItem
	Pagination domain.Pagination
}

// Filter applies q to items without touching the input. Order is preserved.
func Filter(items []domain.FoodItem, q Query, now time.Time) []domain.FoodItem {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]domain.FoodItem, 0, len(items))
	for _, item := range items {
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		if q.ProviderID != "" && item.ProviderID != q.ProviderID {
			continue
		}
		if q.Status != "" && item.Status != q.Status {
			continue
		}
		switch q.Filter {
		case FilterAvailable:
			if item.Status != domain.StatusAvailable {
				continue
			}
		case FilterFresh:
			if freshness.Of(item.ExpiresAt, now) != freshness.Fresh {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

func Paginate(items []domain.FoodItem, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	total := len(items)
	start := total
	if page-1 <= total/limit {
		start = (page - 1) * limit
	}
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return Page{
		Items:      items[start:end],
		Pagination: domain.NewPagination(page, limit, int64(total)),
	}
}

// AvailableNow returns Available listings that have not expired yet,
// soonest expiry first.
func AvailableNow(items []domain.FoodItem, now time.Time) []domain.FoodItem {
	out := make([]domain.FoodItem, 0, len(items))
	for _, item := range items {
		if item.Status == domain.StatusAvailable && !freshness.IsExpired(item.ExpiresAt, now) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpiresAt.Before(out[j].ExpiresAt)
	})
	return out
}

func (c *Controller) List(q Query) Page {
	items := Filter(c.store.Snapshot(), q, c.clock())
	return Paginate(items, q.Page, q.Limit)
}

func (c *Controller) Available() []domain.FoodItem {
	return AvailableNow(c.store.Snapshot(), c.clock())
}

func (c *Controller) Get(id string) (domain.FoodItem, error) {
	item, ok := c.store.Get(id)
	if !ok {
		return domain.FoodItem{}, domain.ErrFoodItemNotFound
	}
	return item, nil
}

func matchesSearch(item domain.FoodItem, term string) bool {
	for _, field := range []string{item.Title, item.Provider, item.Description, item.Location} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
