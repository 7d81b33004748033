package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// ListByParticipant returns loans where email is either party, newest first.
	ListByParticipant(ctx context.Context, email string) ([]Loan, error)
	// ListActiveByBorrower feeds the reminder engine.
	ListActiveByBorrower(ctx context.Context, borrowerEmail string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
	// UpdateTx locks the loan row, passes it to fn, and saves it when fn
	// returns nil. Used for status transitions.
	UpdateTx(ctx context.Context, loanID string, fn func(l *Loan) error) (*Loan, error)
}
