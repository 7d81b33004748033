package mysql

import (
	"context"

	loanDomain "github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByParticipant(ctx context.Context, email string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("lender_email = ? OR borrower_email = ?", email, email).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListActiveByBorrower(ctx context.Context, borrowerEmail string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("borrower_email = ? AND status = ?", borrowerEmail, loanDomain.StatusActive).
		Order("repayment_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

// UpdateTx locks the loan row up-front so concurrent transitions cannot
// interleave, then saves whatever fn left on the record.
func (r *LoanRepository) UpdateTx(ctx context.Context, loanID string, fn func(l *loanDomain.Loan) error) (*loanDomain.Loan, error) {
	var out *loanDomain.Loan
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var l loanDomain.Loan
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("loan_id = ?", loanID).First(&l).Error; err != nil {
			return err
		}
		if err := fn(&l); err != nil {
			return err
		}
		if err := tx.Save(&l).Error; err != nil {
			return err
		}
		out = &l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
