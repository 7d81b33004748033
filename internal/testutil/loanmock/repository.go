package loanmock

import (
	"context"
	"errors"

	domain "github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only wire the funcs a test needs; the rest return not-implemented.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByParticipantFn    func(ctx context.Context, email string) ([]domain.Loan, error)
	ListActiveByBorrowerFn func(ctx context.Context, borrowerEmail string) ([]domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	UpdateTxFn             func(ctx context.Context, loanID string, fn func(l *domain.Loan) error) (*domain.Loan, error)
}

var errNotImplemented = errors.New("not implemented")

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errNotImplemented
}

func (m *Repo) ListByParticipant(ctx context.Context, email string) ([]domain.Loan, error) {
	if m.ListByParticipantFn != nil {
		return m.ListByParticipantFn(ctx, email)
	}
	return nil, errNotImplemented
}

func (m *Repo) ListActiveByBorrower(ctx context.Context, borrowerEmail string) ([]domain.Loan, error) {
	if m.ListActiveByBorrowerFn != nil {
		return m.ListActiveByBorrowerFn(ctx, borrowerEmail)
	}
	return nil, errNotImplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

// UpdateTx defaults to loading via GetByLoanIDFn, applying fn, then SaveFn.
// That mirrors the real repository closely enough for usecase tests.
func (m *Repo) UpdateTx(ctx context.Context, loanID string, fn func(l *domain.Loan) error) (*domain.Loan, error) {
	if m.UpdateTxFn != nil {
		return m.UpdateTxFn(ctx, loanID, fn)
	}
	l, err := m.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if err := fn(l); err != nil {
		return nil, err
	}
	if err := m.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}
