package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// ListByUserID returns the user's notifications, newest first.
	ListByUserID(ctx context.Context, userID string) ([]Notification, error)
	GetByNotificationID(ctx context.Context, notificationID string) (*Notification, error)
	// MarkRead flips the read flag; the only mutation the core performs.
	MarkRead(ctx context.Context, notificationID string) error
}
