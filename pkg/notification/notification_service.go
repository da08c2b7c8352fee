package notification

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/internal/metrics"
	"FoodShare-Backend/internal/utils/mailing"
	"FoodShare-Backend/pkg/events"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const listLimit = 100

type (
	NotificationService interface {
		Emit(ctx context.Context, n domain.Notification) error
		List(ctx context.Context, userID string) (domain.NotificationListResponse, error)
		MarkAsRead(ctx context.Context, id string, userID string) error
		Dismiss(ctx context.Context, id string, userID string) error
		UnreadCount(ctx context.Context, userID string) (int64, error)
		Close()
	}

	// RecipientLookup resolves the user a targeted notification is for.
	RecipientLookup interface {
		GetUserByID(ctx context.Context, id string) (domain.User, error)
	}

	notificationService struct {
		repo       NotificationRepository
		recipients RecipientLookup
		mailer     mailing.Mailer
		appURL     string
		publisher  *events.Publisher
		logger     *zap.Logger
		wg         sync.WaitGroup
	}
)

// NewNotificationService builds the service. mailer and recipients may be
// nil, in which case no email is sent.
func NewNotificationService(
	repo NotificationRepository,
	recipients RecipientLookup,
	mailer mailing.Mailer,
	appURL string,
	publisher *events.Publisher,
	logger *zap.Logger,
) NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &notificationService{
		repo:       repo,
		recipients: recipients,
		mailer:     mailer,
		appURL:     appURL,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *notificationService) Emit(ctx context.Context, n domain.Notification) error {
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	if n.Priority == "" {
		n.Priority = domain.PriorityMedium
	}

	entity := toEntity(n)
	if err := s.repo.Create(ctx, &entity); err != nil {
		return err
	}
	n.ID = entity.ID.String()
	metrics.NotificationsEmittedTotal.WithLabelValues(n.Type).Inc()

	_ = s.publisher.Publish(ctx, events.TopicNotifications, events.Event{
		Type:       n.Type,
		EntityID:   n.ID,
		ActorID:    n.UserID,
		Payload:    n,
		OccurredAt: n.Timestamp,
	})

	if n.UserID != "" && s.mailer != nil && s.recipients != nil {
		s.mail(n)
	}
	return nil
}

// mail sends n to its recipient in the background. Close waits for
// in-flight sends.
func (s *notificationService) mail(n domain.Notification) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		user, err := s.recipients.GetUserByID(ctx, n.UserID)
		if err != nil {
			s.logger.Debug("notification recipient not found", zap.String("user_id", n.UserID), zap.Error(err))
			return
		}
		if !user.Preferences.Notifications || user.Email == "" {
			return
		}
		body := mailing.NotificationBody(s.appURL, n.Title, n.Message, n.ActionURL)
		if err := s.mailer.SendMail(user.Email, n.Title, body); err != nil {
			s.logger.Warn("failed to mail notification", zap.String("user_id", n.UserID), zap.Error(err))
			metrics.OperationErrorsTotal.WithLabelValues("mail").Inc()
		}
	}()
}

func (s *notificationService) Close() {
	s.wg.Wait()
}

func (s *notificationService) List(ctx context.Context, userID string) (domain.NotificationListResponse, error) {
	list, err := s.repo.ListForUser(ctx, userID, listLimit)
	if err != nil {
		return domain.NotificationListResponse{}, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return domain.NotificationListResponse{}, err
	}

	res := domain.NotificationListResponse{
		Notifications: make([]domain.Notification, 0, len(list)),
		UnreadCount:   unread,
	}
	for _, e := range list {
		res.Notifications = append(res.Notifications, toDomain(e))
	}
	return res, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string, userID string) error {
	if _, err := s.visible(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.MarkAsRead(ctx, id)
}

func (s *notificationService) Dismiss(ctx context.Context, id string, userID string) error {
	if _, err := s.visible(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// visible loads a notification the user is allowed to see: their own or a
// broadcast. Anything else reads as not found.
func (s *notificationService) visible(ctx context.Context, id string, userID string) (*entities.Notification, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotificationNotFound
	}
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	if n.UserID != "" && n.UserID != userID {
		return nil, domain.ErrNotificationNotFound
	}
	return n, nil
}

func toEntity(n domain.Notification) entities.Notification {
	id, err := uuid.Parse(n.ID)
	if err != nil {
		id = uuid.New()
	}
	return entities.Notification{
		ID:        id,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		FoodID:    n.FoodID,
		UserID:    n.UserID,
		NGOID:     n.NGOID,
		SentAt:    n.Timestamp,
		IsRead:    n.Read,
		Priority:  n.Priority,
		ActionURL: n.ActionURL,
	}
}

func toDomain(e entities.Notification) domain.Notification {
	return domain.Notification{
		ID:        e.ID.String(),
		Title:     e.Title,
		Message:   e.Message,
		Type:      e.Type,
		FoodID:    e.FoodID,
		UserID:    e.UserID,
		NGOID:     e.NGOID,
		Timestamp: e.SentAt,
		Read:      e.IsRead,
		Priority:  e.Priority,
		ActionURL: e.ActionURL,
	}
}
