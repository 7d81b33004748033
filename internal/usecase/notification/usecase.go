package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/ChristianKamdemLab/ckmoney/internal/domain/notification"

	"gorm.io/gorm"
)

var errMissingUser = errors.New("user email is required")

type Usecase struct {
	repo domain.Repository
}

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// List returns the user's notifications, newest first.
func (u *Usecase) List(ctx context.Context, userEmail string) ([]domain.Notification, error) {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))
	if userEmail == "" {
		return nil, errMissingUser
	}
	return u.repo.ListByUserID(ctx, userEmail)
}

// MarkRead flips the read flag. Only the addressed user may do so.
func (u *Usecase) MarkRead(ctx context.Context, notificationID, userEmail string) error {
	n, err := u.repo.GetByNotificationID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if !strings.EqualFold(n.UserID, userEmail) {
		return fmt.Errorf("%w: %s", domain.ErrNotOwner, notificationID)
	}
	// Already-read is a no-op, not an error. MySQL reports zero affected
	// rows for value-preserving updates, which MarkRead would misread as
	// a missing record.
	if n.Read {
		return nil
	}
	return u.repo.MarkRead(ctx, notificationID)
}
