package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "github.com/ChristianKamdemLab/ckmoney/internal/domain/notification"
	"github.com/ChristianKamdemLab/ckmoney/internal/testutil/notifmock"

	"gorm.io/gorm"
)

func seed(t *testing.T, repo *notifmock.Repo, userID string) string {
	t.Helper()
	nid := strings.Repeat("d", 32)
	err := repo.Create(context.Background(), &domain.Notification{
		NotificationID: nid,
		UserID:         userID,
		LoanID:         strings.Repeat("a", 32),
		Title:          "Rappel J-7",
		Date:           time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return nid
}

func TestList(t *testing.T) {
	repo := &notifmock.Repo{}
	seed(t, repo, "borrower@example.com")
	uc := NewUsecase(repo)

	got, err := uc.List(context.Background(), "  Borrower@Example.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d notifications, want 1", len(got))
	}

	if _, err := uc.List(context.Background(), "   "); err == nil {
		t.Fatal("blank user must be rejected")
	}
}

func TestMarkRead(t *testing.T) {
	repo := &notifmock.Repo{}
	nid := seed(t, repo, "borrower@example.com")
	uc := NewUsecase(repo)

	if err := uc.MarkRead(context.Background(), nid, "Borrower@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.Stored()[0]; !got.Read {
		t.Fatal("read flag not set")
	}

	// marking twice is a no-op
	if err := uc.MarkRead(context.Background(), nid, "borrower@example.com"); err != nil {
		t.Fatalf("second mark: %v", err)
	}
}

func TestMarkRead_WrongOwner(t *testing.T) {
	repo := &notifmock.Repo{}
	nid := seed(t, repo, "borrower@example.com")
	uc := NewUsecase(repo)

	err := uc.MarkRead(context.Background(), nid, "lender@example.com")
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("got %v, want ErrNotOwner", err)
	}
	if repo.Stored()[0].Read {
		t.Fatal("read flag must stay unset")
	}
}

func TestMarkRead_NotFound(t *testing.T) {
	repo := &notifmock.Repo{
		GetByNotificationIDFn: func(ctx context.Context, notificationID string) (*domain.Notification, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	err := NewUsecase(repo).MarkRead(context.Background(), strings.Repeat("f", 32), "borrower@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
