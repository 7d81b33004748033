package loan

import (
	"time"

	domain "github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"
)

type CreateLoanInput struct {
	LenderName       string    `json:"lender_name"`
	LenderEmail      string    `json:"lender_email"`
	BorrowerName     string    `json:"borrower_name"`
	BorrowerEmail    string    `json:"borrower_email"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	LoanDate         time.Time `json:"loan_date"`
	RepaymentDate    time.Time `json:"repayment_date"`
	LateInterestRate float64   `json:"late_interest_rate"`
	City             string    `json:"city"`
	Country          string    `json:"country"`
	LenderSignature  string    `json:"lender_signature"`
}

// LoanDTO carries the stored record plus the due amounts derived at read
// time. Calculation is recomputed on every read because it depends on the
// reference time.
type LoanDTO struct {
	LoanID           string                   `json:"loan_id"`
	LenderName       string                   `json:"lender_name"`
	LenderEmail      string                   `json:"lender_email"`
	BorrowerName     string                   `json:"borrower_name"`
	BorrowerEmail    string                   `json:"borrower_email"`
	Amount           float64                  `json:"amount"`
	Currency         string                   `json:"currency"`
	LoanDate         time.Time                `json:"loan_date"`
	RepaymentDate    time.Time                `json:"repayment_date"`
	LateInterestRate float64                  `json:"late_interest_rate"`
	Status           string                   `json:"status"`
	ContractText     string                   `json:"contract_text,omitempty"`
	City             string                   `json:"city"`
	Country          string                   `json:"country"`
	SignedDate       *time.Time               `json:"signed_date,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	Calculation      domain.CalculationResult `json:"calculation"`
}

func toDTO(l *domain.Loan, now time.Time) *LoanDTO {
	return &LoanDTO{
		LoanID:           l.LoanID,
		LenderName:       l.LenderName,
		LenderEmail:      l.LenderEmail,
		BorrowerName:     l.BorrowerName,
		BorrowerEmail:    l.BorrowerEmail,
		Amount:           l.Amount,
		Currency:         l.Currency,
		LoanDate:         l.LoanDate,
		RepaymentDate:    l.RepaymentDate,
		LateInterestRate: l.LateInterestRate,
		Status:           string(l.Status),
		ContractText:     l.ContractText,
		City:             l.City,
		Country:          l.Country,
		SignedDate:       l.SignedDate,
		CreatedAt:        l.CreatedAt,
		Calculation:      domain.ComputeDue(l.Amount, l.RepaymentDate, l.Status, l.LateInterestRate, now),
	}
}
