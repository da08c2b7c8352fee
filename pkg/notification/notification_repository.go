package notification

import (
	"FoodShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		Create(ctx context.Context, n *entities.Notification) error
		GetByID(ctx context.Context, id string) (*entities.Notification, error)
		ListForUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error)
		CountUnread(ctx context.Context, userID string) (int64, error)
		MarkAsRead(ctx context.Context, id string) error
		Delete(ctx context.Context, id string) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*entities.Notification, error) {
	var n entities.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID string, limit int) ([]entities.Notification, error) {
	var list []entities.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR user_id = ''", userID).
		Order("sent_at desc").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("(user_id = ? OR user_id = '') AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Notification{}).Error
}
