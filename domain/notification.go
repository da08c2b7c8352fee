package domain

import (
	"errors"
	"time"
)

const (
	NotificationFoodAvailable  = "food_available"
	NotificationPickupReminder = "pickup_reminder"
	NotificationExpiryWarning  = "expiry_warning"
	NotificationNGORequest     = "ngo_request"
	NotificationAchievement    = "achievement"
	NotificationSystem         = "system"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var (
	MessageSuccessGetNotifications    = "notifications retrieved successfully"
	MessageSuccessMarkNotification    = "notification marked as read"
	MessageSuccessDismissNotification = "notification dismissed"

	MessageFailedGetNotifications    = "failed to retrieve notifications"
	MessageFailedMarkNotification    = "failed to mark notification as read"
	MessageFailedDismissNotification = "failed to dismiss notification"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	Notification struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Message   string    `json:"message"`
		Type      string    `json:"type"`
		FoodID    string    `json:"food_id,omitempty"`
		UserID    string    `json:"user_id,omitempty"`
		NGOID     string    `json:"ngo_id,omitempty"`
		Timestamp time.Time `json:"timestamp"`
		Read      bool      `json:"read"`
		Priority  string    `json:"priority"`
		ActionURL string    `json:"action_url,omitempty"`
	}

	NotificationListResponse struct {
		Notifications []Notification `json:"notifications"`
		UnreadCount   int64          `json:"unread_count"`
	}
)
