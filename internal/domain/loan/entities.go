package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPendingBorrower  Status = "pending_borrower"
	StatusActive           Status = "active"
	StatusRepaymentPending Status = "repayment_pending"
	StatusPaid             Status = "paid"
)

var (
	ErrNotFound            = errors.New("loan not found")
	ErrInvalidInput        = errors.New("invalid loan input")
	ErrNotAuthorized       = errors.New("actor not authorized for this transition")
	ErrTransitionViolation = errors.New("loan state transition not permitted")
)

// Loan is a signed debt acknowledgment between two private parties.
// Contract metadata (text, signatures, signing place/date) is immutable
// once set and only kept for document reproduction.
type Loan struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID string `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`

	LenderName    string `gorm:"size:191" json:"lender_name"`
	LenderEmail   string `gorm:"size:191;index:idx_loans_lender_email" json:"lender_email"`
	BorrowerName  string `gorm:"size:191" json:"borrower_name"`
	BorrowerEmail string `gorm:"size:191;index:idx_loans_borrower_email" json:"borrower_email"`

	Amount   float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Currency string  `gorm:"size:3" json:"currency"`
	// Calendar dates, compared at day granularity.
	LoanDate      time.Time `gorm:"type:date" json:"loan_date"`
	RepaymentDate time.Time `gorm:"type:date" json:"repayment_date"`
	// Annual percentage applied to overdue principal; 0 means no penalty clause.
	LateInterestRate float64 `gorm:"type:decimal(6,3);default:0" json:"late_interest_rate"`

	Status          Status    `gorm:"type:enum('pending_borrower','active','repayment_pending','paid');default:'pending_borrower'" json:"status"`
	StatusUpdatedAt time.Time `gorm:"autoCreateTime" json:"status_updated_at"`

	ContractText      string     `gorm:"type:text" json:"contract_text,omitempty"`
	LenderSignature   string     `gorm:"type:text" json:"lender_signature,omitempty"`
	BorrowerSignature string     `gorm:"type:text" json:"borrower_signature,omitempty"`
	City              string     `gorm:"size:191" json:"city"`
	Country           string     `gorm:"size:191" json:"country"`
	SignedDate        *time.Time `gorm:"type:date" json:"signed_date,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
