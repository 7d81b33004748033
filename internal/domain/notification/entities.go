package notification

import (
	"errors"
	"time"
)

// Severity is a display category only; the core never branches on it
// beyond tagging.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

var (
	ErrNotFound = errors.New("notification not found")
	ErrNotOwner = errors.New("notification addressed to another user")
)

// Notification is addressed to a single user (the borrower email). Created
// by the reminder engine or user actions; only the read flag is ever
// mutated afterwards. The core never deletes notifications.
type Notification struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"-"`
	NotificationID string `gorm:"size:32;uniqueIndex:ux_notifications_nid" json:"notification_id"`

	UserID string   `gorm:"size:191;index:idx_notifications_user" json:"user_id"`
	LoanID string   `gorm:"size:32;index:idx_notifications_loan" json:"loan_id"`
	Type   Severity `gorm:"type:enum('info','warning','danger');default:'info'" json:"type"`

	Title   string    `gorm:"size:191" json:"title"`
	Message string    `gorm:"type:text" json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `gorm:"default:false" json:"read"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
