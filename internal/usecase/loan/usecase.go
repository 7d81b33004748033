package loan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"
	"github.com/ChristianKamdemLab/ckmoney/pkg/id"

	"gorm.io/gorm"
)

// ContractRenderer assembles the contract text for a freshly created loan.
type ContractRenderer interface {
	Render(ctx context.Context, l *domain.Loan) string
}

type Usecase struct {
	repo     domain.Repository
	contract ContractRenderer
	now      func() time.Time
}

func NewUsecase(r domain.Repository, contract ContractRenderer) *Usecase {
	return &Usecase{repo: r, contract: contract, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the reference clock. Tests use it to pin "now".
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

func validateCreate(in CreateLoanInput) error {
	switch {
	case strings.TrimSpace(in.LenderName) == "" || strings.TrimSpace(in.BorrowerName) == "":
		return fmt.Errorf("%w: lender and borrower names are required", domain.ErrInvalidInput)
	case strings.TrimSpace(in.LenderEmail) == "" || strings.TrimSpace(in.BorrowerEmail) == "":
		return fmt.Errorf("%w: lender and borrower emails are required", domain.ErrInvalidInput)
	case strings.EqualFold(in.LenderEmail, in.BorrowerEmail):
		return fmt.Errorf("%w: lender and borrower must be distinct parties", domain.ErrInvalidInput)
	case in.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	case in.LateInterestRate < 0:
		return fmt.Errorf("%w: late interest rate must not be negative", domain.ErrInvalidInput)
	case len(in.Currency) != 3:
		return fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrInvalidInput)
	case in.LoanDate.IsZero() || in.RepaymentDate.IsZero():
		return fmt.Errorf("%w: loan and repayment dates are required", domain.ErrInvalidInput)
	}
	return nil
}

// Create records a new loan awaiting the borrower's counter-signature and
// assembles its contract text.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	now := u.now()
	l := &domain.Loan{
		LoanID:           id.NewID32(),
		LenderName:       strings.TrimSpace(in.LenderName),
		LenderEmail:      normalizeEmail(in.LenderEmail),
		BorrowerName:     strings.TrimSpace(in.BorrowerName),
		BorrowerEmail:    normalizeEmail(in.BorrowerEmail),
		Amount:           in.Amount,
		Currency:         strings.ToUpper(in.Currency),
		LoanDate:         in.LoanDate,
		RepaymentDate:    in.RepaymentDate,
		LateInterestRate: in.LateInterestRate,
		Status:           domain.StatusPendingBorrower,
		StatusUpdatedAt:  now,
		LenderSignature:  in.LenderSignature,
		City:             strings.TrimSpace(in.City),
		Country:          strings.TrimSpace(in.Country),
	}
	if u.contract != nil {
		l.ContractText = u.contract.Render(ctx, l)
	}

	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l, now), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l, u.now()), nil
}

// ListByParticipant returns every loan where email is lender or borrower.
func (u *Usecase) ListByParticipant(ctx context.Context, email string) ([]LoanDTO, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: participant email is required", domain.ErrInvalidInput)
	}
	loans, err := u.repo.ListByParticipant(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i], now))
	}
	return out, nil
}

// Sign is the borrower's counter-signature: pending_borrower -> active.
func (u *Usecase) Sign(ctx context.Context, loanID, actorEmail, signature string) (*LoanDTO, error) {
	return u.transition(ctx, loanID, domain.ActionSign, actorEmail, func(l *domain.Loan, now time.Time) {
		l.BorrowerSignature = signature
		signed := now
		l.SignedDate = &signed
	})
}

// Claim: the borrower asserts payment, active -> repayment_pending.
func (u *Usecase) Claim(ctx context.Context, loanID, actorEmail string) (*LoanDTO, error) {
	return u.transition(ctx, loanID, domain.ActionClaim, actorEmail, nil)
}

// Confirm: the lender acknowledges repayment, settling the loan.
func (u *Usecase) Confirm(ctx context.Context, loanID, actorEmail string) (*LoanDTO, error) {
	return u.transition(ctx, loanID, domain.ActionConfirm, actorEmail, nil)
}

// Dispute: the lender rejects a repayment claim; the loan returns to
// active and keeps accruing from its original repayment date.
func (u *Usecase) Dispute(ctx context.Context, loanID, actorEmail string) (*LoanDTO, error) {
	return u.transition(ctx, loanID, domain.ActionDispute, actorEmail, nil)
}

func (u *Usecase) transition(ctx context.Context, loanID string, action domain.Action, actorEmail string, mutate func(l *domain.Loan, now time.Time)) (*LoanDTO, error) {
	actorEmail = normalizeEmail(actorEmail)
	if actorEmail == "" {
		return nil, fmt.Errorf("%w: acting email is required", domain.ErrInvalidInput)
	}

	now := u.now()
	updated, err := u.repo.UpdateTx(ctx, loanID, func(l *domain.Loan) error {
		if err := domain.Transition(l, action, actorEmail, now); err != nil {
			return err
		}
		if mutate != nil {
			mutate(l, now)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(updated, now), nil
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
