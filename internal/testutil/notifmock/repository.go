package notifmock

import (
	"context"
	"errors"
	"sync"

	domain "github.com/ChristianKamdemLab/ckmoney/internal/domain/notification"
)

// Repo is a function-backed mock satisfying notification.Repository. When
// no funcs are wired it behaves as an in-memory append-only store, which
// is what the reminder-engine tests want.
type Repo struct {
	mu     sync.Mutex
	stored []domain.Notification

	CreateFn              func(ctx context.Context, n *domain.Notification) error
	ListByUserIDFn        func(ctx context.Context, userID string) ([]domain.Notification, error)
	GetByNotificationIDFn func(ctx context.Context, notificationID string) (*domain.Notification, error)
	MarkReadFn            func(ctx context.Context, notificationID string) error
}

var errNotImplemented = errors.New("not implemented")

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stored = append(m.stored, *n)
	return nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Notification, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Notification
	for _, n := range m.stored {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *Repo) GetByNotificationID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	if m.GetByNotificationIDFn != nil {
		return m.GetByNotificationIDFn(ctx, notificationID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.stored {
		if m.stored[i].NotificationID == notificationID {
			n := m.stored[i]
			return &n, nil
		}
	}
	return nil, errNotImplemented
}

func (m *Repo) MarkRead(ctx context.Context, notificationID string) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, notificationID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.stored {
		if m.stored[i].NotificationID == notificationID {
			m.stored[i].Read = true
			return nil
		}
	}
	return errNotImplemented
}

// Stored returns a copy of everything persisted so far.
func (m *Repo) Stored() []domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Notification, len(m.stored))
	copy(out, m.stored)
	return out
}
