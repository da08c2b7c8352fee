// Package listing owns the food listing collection and every state
// transition a listing goes through.
package listing

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/metrics"
	"FoodShare-Backend/pkg/events"
	"FoodShare-Backend/pkg/freshness"
	"FoodShare-Backend/pkg/permission"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	Notifier interface {
		Emit(ctx context.Context, n domain.Notification) error
	}

	// Persister writes listings through to durable storage.
	Persister interface {
		Save(ctx context.Context, item domain.FoodItem) error
		Delete(ctx context.Context, id string) error
	}

	// ProgressSaver adds points and stats to a user and stores new badges.
	ProgressSaver interface {
		SaveProgress(ctx context.Context, progress domain.Progress) error
	}

	Option func(*Controller)

	Controller struct {
		store     *Store
		notifier  Notifier
		persister Persister
		progress  ProgressSaver
		publisher *events.Publisher
		logger    *zap.Logger
		clock     func() time.Time
		newID     func() string
	}

	Result struct {
		Item    domain.FoodItem
		Changed bool
		Warning string
	}
)

func WithPersister(p Persister) Option {
	return func(c *Controller) { c.persister = p }
}

func WithProgressSaver(p ProgressSaver) Option {
	return func(c *Controller) { c.progress = p }
}

func WithPublisher(p *events.Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

func WithClock(clock func() time.Time) Option {
	return func(c *Controller) { c.clock = clock }
}

func WithIDGenerator(gen func() string) Option {
	return func(c *Controller) { c.newID = gen }
}

func NewController(store *Store, notifier Notifier, logger *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		notifier: notifier,
		logger:   logger,
		clock:    time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

func (c *Controller) Store() *Store {
	return c.store
}

func (c *Controller) Now() time.Time {
	return c.clock()
}

// Create prepends a new listing owned by actor and announces it.
func (c *Controller) Create(ctx context.Context, actor *domain.User, item domain.FoodItem) (Result, error) {
	if actor == nil {
		return Result{}, domain.ErrAuthRequired
	}
	if !permission.Can(actor, permission.CreateFood) {
		return Result{}, domain.ErrPermissionDenied
	}
	if item.Quantity <= 0 {
		return Result{}, domain.ErrInvalidQuantity
	}

	now := c.clock()
	if item.ID == "" {
		item.ID = c.newID()
	}
	if item.ProviderID == "" || actor.Role != domain.RoleAdmin {
		item.ProviderID = actor.ID
	}
	if strings.TrimSpace(item.Provider) == "" {
		item.Provider = displayName(actor)
	}
	if item.ListedAt.IsZero() {
		item.ListedAt = now
	}
	if item.ExpiresAt.IsZero() {
		item.ExpiresAt = item.ListedAt.Add(hours(item.SafetyHours))
	}
	if !item.ExpiresAt.After(item.ListedAt) {
		return Result{}, domain.ErrInvalidExpiryDate
	}
	item.Status = domain.StatusAvailable
	item.ReservedBy = ""
	item.CollectedBy = ""
	item.CollectedAt = nil
	item.Rating = nil
	item.Reviews = nil
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.Allergens == nil {
		item.Allergens = []string{}
	}

	err := c.store.Update(func(items []domain.FoodItem) ([]domain.FoodItem, bool, error) {
		if indexOf(items, item.ID) >= 0 {
			return nil, false, fmt.Errorf("listing %s: %w", item.ID, domain.ErrFoodItemExists)
		}
		next := make([]domain.FoodItem, 0, len(items)+1)
		next = append(next, item.Clone())
		next = append(next, items...)
		return next, true, nil
	})
	if err != nil {
		return Result{}, err
	}
	metrics.ListingsCreatedTotal.Inc()

	res := Result{Item: item, Changed: true, Warning: c.save(ctx, "create", item)}

	actor.Stats.FoodListed++
	earned := awardBadges(actor, actionFoodListed, actor.Stats.FoodListed, now)
	c.saveProgress(ctx, domain.Progress{
		UserID: actor.ID,
		Stats:  domain.UserStats{FoodListed: 1},
		Badges: earned,
	})

	c.emit(ctx, domain.Notification{
		Title:    "New Food Listed",
		Message:  fmt.Sprintf("%s is now available for pickup at %s", item.Title, item.Location),
		Type:     domain.NotificationFoodAvailable,
		FoodID:   item.ID,
		Priority: domain.PriorityMedium,
	})
	c.emitBadges(ctx, actor, earned)
	c.publish(ctx, events.ListingCreated, item, actor.ID)

	return res, nil
}

// Reserve moves an Available listing to Reserved. Any other status is a
// no-op reported through Result.Changed. Freshness is not checked.
func (c *Controller) Reserve(ctx context.Context, id string, actor *domain.User) (Result, error) {
	if actor == nil {
		return Result{}, domain.ErrAuthRequired
	}
	if !permission.Can(actor, permission.RequestFood) {
		return Result{}, domain.ErrPermissionDenied
	}

	var res Result
	err := c.store.Update(func(items []domain.FoodItem) ([]domain.FoodItem, bool, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, false, domain.ErrFoodItemNotFound
		}
		if items[i].Status != domain.StatusAvailable {
			res.Item = items[i]
			return nil, false, nil
		}
		items[i].Status = domain.StatusReserved
		items[i].ReservedBy = actor.ID
		res.Item = items[i].Clone()
		res.Changed = true
		return items, true, nil
	})
	if err != nil || !res.Changed {
		return res, err
	}
	metrics.ListingsReservedTotal.Inc()

	res.Warning = c.save(ctx, "reserve", res.Item)
	item := res.Item

	c.emit(ctx, domain.Notification{
		Title:    "Pickup Reminder",
		Message:  fmt.Sprintf("You reserved %s. Please collect it at %s before %s.", item.Title, item.Location, item.ExpiresAt.Format("Jan 2 15:04")),
		Type:     domain.NotificationPickupReminder,
		FoodID:   item.ID,
		UserID:   actor.ID,
		Priority: domain.PriorityHigh,
	})
	c.emit(ctx, domain.Notification{
		Title:    "Listing Reserved",
		Message:  fmt.Sprintf("%s has been reserved by %s", item.Title, displayName(actor)),
		Type:     domain.NotificationSystem,
		FoodID:   item.ID,
		UserID:   item.ProviderID,
		Priority: domain.PriorityMedium,
	})
	c.publish(ctx, events.ListingReserved, item, actor.ID)

	return res, nil
}

// Collect marks a listing Collected from any prior status and credits the
// collector with one collection and ten points.
func (c *Controller) Collect(ctx context.Context, id string, actor *domain.User) (Result, error) {
	if actor == nil {
		return Result{}, domain.ErrAuthRequired
	}
	if !permission.Can(actor, permission.RequestFood) {
		return Result{}, domain.ErrPermissionDenied
	}

	now := c.clock()
	var res Result
	err := c.store.Update(func(items []domain.FoodItem) ([]domain.FoodItem, bool, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, false, domain.ErrFoodItemNotFound
		}
		items[i].Status = domain.StatusCollected
		items[i].CollectedBy = actor.ID
		items[i].CollectedAt = &now
		res.Item = items[i].Clone()
		res.Changed = true
		return items, true, nil
	})
	if err != nil {
		return Result{}, err
	}
	metrics.ListingsCollectedTotal.Inc()

	res.Warning = c.save(ctx, "collect", res.Item)
	item := res.Item

	actor.Stats.FoodCollected++
	actor.Points += domain.PointsPerCollection
	earned := awardBadges(actor, actionFoodCollected, actor.Stats.FoodCollected, now)
	c.saveProgress(ctx, domain.Progress{
		UserID: actor.ID,
		Points: domain.PointsPerCollection,
		Stats:  domain.UserStats{FoodCollected: 1},
		Badges: earned,
	})

	c.emit(ctx, domain.Notification{
		Title:    "Food Collected",
		Message:  fmt.Sprintf("%s has been collected by %s", item.Title, displayName(actor)),
		Type:     domain.NotificationSystem,
		FoodID:   item.ID,
		UserID:   item.ProviderID,
		Priority: domain.PriorityLow,
	})
	c.emitBadges(ctx, actor, earned)
	c.publish(ctx, events.ListingCollected, item, actor.ID)

	return res, nil
}

// Rate records rating on the listing. Range checks belong to the caller.
func (c *Controller) Rate(ctx context.Context, id string, actor *domain.User, rating float64, comment string) (Result, error) {
	if actor == nil {
		return Result{}, domain.ErrAuthRequired
	}

	now := c.clock()
	var res Result
	err := c.store.Update(func(items []domain.FoodItem) ([]domain.FoodItem, bool, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, false, domain.ErrFoodItemNotFound
		}
		r := rating
		items[i].Rating = &r
		items[i].Reviews = append(items[i].Reviews, domain.Review{
			ID:        c.newID(),
			UserID:    actor.ID,
			UserName:  actor.Name,
			Rating:    rating,
			Comment:   comment,
			Timestamp: now,
		})
		res.Item = items[i].Clone()
		res.Changed = true
		return items, true, nil
	})
	if err != nil {
		return Result{}, err
	}

	res.Warning = c.save(ctx, "rate", res.Item)
	c.publish(ctx, events.ListingRated, res.Item, actor.ID)
	return res, nil
}

// Edit merges patch into a listing owned by actor. A new safety window
// re-derives expiresAt unless the patch sets expiresAt itself.
func (c *Controller) Edit(ctx context.Context, id string, actor *domain.User, patch domain.FoodItemPatch) (Result, error) {
	if actor == nil {
		return Result{}, domain.ErrAuthRequired
	}
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return Result{}, domain.ErrInvalidQuantity
	}

	now := c.clock()
	var res Result
	err := c.store.Update(func(items []domain.FoodItem) ([]domain.FoodItem, bool, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, false, domain.ErrFoodItemNotFound
		}
		if !canModify(actor, items[i]) {
			return nil, false, domain.ErrPermissionDenied
		}
		if err := applyPatch(&items[i], patch, now); err != nil {
			return nil, false, err
		}
		res.Item = items[i].Clone()
		res.Changed = true
		return items, true, nil
	})
	if err != nil {
		return Result{}, err
	}

	res.Warning = c.save(ctx, "edit", res.Item)
	c.publish(ctx, events.ListingUpdated, res.Item, actor.ID)
	return res, nil
}

// Delete removes a listing owned by actor permanently.
func (c *Controller) Delete(ctx context.Context, id string, actor *domain.User) (Result, error) {
	if actor == nil {
		return Result{}, domain.ErrAuthRequired
	}

	var res Result
	err := c.store.Update(func(items []domain.FoodItem) ([]domain.FoodItem, bool, error) {
		i := indexOf(items, id)
		if i < 0 {
			return nil, false, domain.ErrFoodItemNotFound
		}
		if !canModify(actor, items[i]) {
			return nil, false, domain.ErrPermissionDenied
		}
		res.Item = items[i].Clone()
		res.Changed = true
		next := make([]domain.FoodItem, 0, len(items)-1)
		next = append(next, items[:i]...)
		next = append(next, items[i+1:]...)
		return next, true, nil
	})
	if err != nil {
		return Result{}, err
	}

	if c.persister != nil {
		if err := c.persister.Delete(ctx, id); err != nil {
			c.logger.Warn("failed to delete listing from storage", zap.String("id", id), zap.Error(err))
			metrics.OperationErrorsTotal.WithLabelValues("delete").Inc()
			res.Warning = domain.MessageWarningLocalOnly
		}
	}
	c.publish(ctx, events.ListingDeleted, res.Item, actor.ID)
	return res, nil
}

// ExpireDue moves every Available or Reserved listing past its expiry to
// Expired and warns each provider once per transition. Running it again on
// the same state changes nothing.
func (c *Controller) ExpireDue(ctx context.Context, now time.Time) ([]domain.FoodItem, error) {
	var expired []domain.FoodItem
	err := c.store.Update(func(items []domain.FoodItem) ([]domain.FoodItem, bool, error) {
		for i := range items {
			st := items[i].Status
			if st != domain.StatusAvailable && st != domain.StatusReserved {
				continue
			}
			if freshness.IsExpired(items[i].ExpiresAt, now) {
				items[i].Status = domain.StatusExpired
				expired = append(expired, items[i].Clone())
			}
		}
		return items, len(expired) > 0, nil
	})
	if err != nil {
		return nil, err
	}

	for _, item := range expired {
		metrics.ListingsExpiredTotal.Inc()
		c.save(ctx, "expire", item)
		c.emit(ctx, domain.Notification{
			Title:    "Food Expired",
			Message:  fmt.Sprintf("%s has expired and been removed from listings", item.Title),
			Type:     domain.NotificationExpiryWarning,
			FoodID:   item.ID,
			UserID:   item.ProviderID,
			Priority: domain.PriorityMedium,
		})
		c.publish(ctx, events.ListingExpired, item, "")
	}
	return expired, nil
}

func (c *Controller) save(ctx context.Context, op string, item domain.FoodItem) string {
	if c.persister == nil {
		return ""
	}
	if err := c.persister.Save(ctx, item); err != nil {
		c.logger.Warn("listing kept in memory only",
			zap.String("operation", op),
			zap.String("id", item.ID),
			zap.Error(err),
		)
		metrics.OperationErrorsTotal.WithLabelValues(op).Inc()
		return domain.MessageWarningLocalOnly
	}
	return ""
}

func (c *Controller) saveProgress(ctx context.Context, p domain.Progress) {
	if c.progress == nil {
		return
	}
	if err := c.progress.SaveProgress(ctx, p); err != nil {
		c.logger.Warn("failed to save user progress", zap.String("user_id", p.UserID), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("save_progress").Inc()
	}
}

func (c *Controller) emit(ctx context.Context, n domain.Notification) {
	if c.notifier == nil {
		return
	}
	if n.ID == "" {
		n.ID = c.newID()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = c.clock()
	}
	if err := c.notifier.Emit(ctx, n); err != nil {
		c.logger.Warn("failed to emit notification", zap.String("type", n.Type), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("notify").Inc()
	}
}

func (c *Controller) emitBadges(ctx context.Context, actor *domain.User, badges []domain.Badge) {
	for _, b := range badges {
		c.emit(ctx, domain.Notification{
			Title:    "Achievement Unlocked",
			Message:  fmt.Sprintf("You earned the %s badge: %s", b.Name, b.Description),
			Type:     domain.NotificationAchievement,
			UserID:   actor.ID,
			Priority: domain.PriorityLow,
		})
	}
}

func (c *Controller) publish(ctx context.Context, kind string, item domain.FoodItem, actorID string) {
	_ = c.publisher.Publish(ctx, events.TopicListings, events.Event{
		Type:       kind,
		EntityID:   item.ID,
		ActorID:    actorID,
		Payload:    item,
		OccurredAt: c.clock(),
	})
}

func canModify(actor *domain.User, item domain.FoodItem) bool {
	return actor.Role == domain.RoleAdmin || (item.ProviderID != "" && item.ProviderID == actor.ID)
}

func applyPatch(item *domain.FoodItem, p domain.FoodItemPatch, now time.Time) error {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Type != nil {
		item.Type = *p.Type
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.NutritionalInfo != nil {
		item.NutritionalInfo = *p.NutritionalInfo
	}
	if p.Tags != nil {
		item.Tags = append([]string(nil), p.Tags...)
	}
	if p.Allergens != nil {
		item.Allergens = append([]string(nil), p.Allergens...)
	}

	safetyChanged := p.SafetyHours != nil && *p.SafetyHours != item.SafetyHours
	if p.SafetyHours != nil {
		item.SafetyHours = *p.SafetyHours
	}
	switch {
	case p.ExpiresAt != nil:
		if !p.ExpiresAt.After(item.ListedAt) {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiresAt = *p.ExpiresAt
	case safetyChanged:
		item.ExpiresAt = now.Add(hours(item.SafetyHours))
	}
	return nil
}

func displayName(u *domain.User) string {
	if u.Organization != "" {
		return u.Organization
	}
	return u.Name
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
