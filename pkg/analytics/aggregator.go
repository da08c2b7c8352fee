package analytics

import (
	"FoodShare-Backend/domain"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type (
	RequestCounter interface {
		Counts(ctx context.Context) (domain.RequestCounts, error)
	}

	UserCounter interface {
		CountUsers(ctx context.Context) (int64, error)
	}

	Source interface {
		Snapshot() []domain.FoodItem
	}

	Option func(*Aggregator)

	entry struct {
		length int
		bundle Bundle
	}

	// Aggregator caches one bundle per scope and recomputes it only when
	// the collection length changed since it was computed, or on Refresh.
	Aggregator struct {
		mu       sync.Mutex
		items    []domain.FoodItem
		primed   bool
		cache    map[string]entry
		source   Source
		requests RequestCounter
		users    UserCounter
		clock    func() time.Time
		logger   *zap.Logger
	}
)

func WithRequestCounter(rc RequestCounter) Option {
	return func(a *Aggregator) { a.requests = rc }
}

func WithUserCounter(uc UserCounter) Option {
	return func(a *Aggregator) { a.users = uc }
}

func WithClock(clock func() time.Time) Option {
	return func(a *Aggregator) { a.clock = clock }
}

func NewAggregator(source Source, logger *zap.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		cache:  make(map[string]entry),
		source: source,
		clock:  time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	return a
}

// Observe receives every committed collection. Register it with
// Store.Subscribe.
func (a *Aggregator) Observe(items []domain.FoodItem) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = items
	a.primed = true
}

// Stats returns the bundle for user, recomputing only if the collection
// length moved since the cached bundle was built.
func (a *Aggregator) Stats(ctx context.Context, user *domain.User) Bundle {
	return a.get(ctx, user, false)
}

// Refresh recomputes the bundle for user regardless of the cache.
func (a *Aggregator) Refresh(ctx context.Context, user *domain.User) Bundle {
	return a.get(ctx, user, true)
}

func (a *Aggregator) Items() []domain.FoodItem {
	return a.current()
}

func (a *Aggregator) get(ctx context.Context, user *domain.User, force bool) Bundle {
	items := a.current()
	key := scopeKey(user)
	a.mu.Lock()
	cached, ok := a.cache[key]
	a.mu.Unlock()

	if ok && !force && cached.length == len(items) {
		return cached.bundle
	}

	b := Compute(items, user, a.clock())
	a.fill(ctx, &b)

	a.mu.Lock()
	a.cache[key] = entry{length: len(items), bundle: b}
	a.mu.Unlock()
	return b
}

// current returns the last observed collection. Before the first Observe it
// reads the source once; the snapshot is taken without holding a.mu since
// Observe runs under the store's write lock.
func (a *Aggregator) current() []domain.FoodItem {
	a.mu.Lock()
	if a.primed || a.source == nil {
		items := a.items
		a.mu.Unlock()
		return items
	}
	a.mu.Unlock()

	snapshot := a.source.Snapshot()

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.primed {
		a.items = snapshot
		a.primed = true
	}
	return a.items
}

func (a *Aggregator) fill(ctx context.Context, b *Bundle) {
	if a.requests != nil {
		counts, err := a.requests.Counts(ctx)
		if err != nil {
			a.logger.Warn("request counts unavailable", zap.Error(err))
		} else {
			b.TotalRequests = Known(counts.Total)
			b.PendingRequests = Known(counts.Pending)
			b.ApprovedRequests = Known(counts.Approved)
		}
	}
	if a.users != nil {
		n, err := a.users.CountUsers(ctx)
		if err != nil {
			a.logger.Warn("user count unavailable", zap.Error(err))
		} else {
			b.TotalUsers = Known(n)
		}
	}
}

func scopeKey(user *domain.User) string {
	if user != nil && user.Role == domain.RoleFoodProvider {
		return "provider:" + user.ID + ":" + user.Name
	}
	return "global"
}
