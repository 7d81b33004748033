package loan

import (
	"math"
	"time"
)

// CalculationResult is derived from a loan and a reference time. It is never
// persisted: "now" is part of its input, so it is recomputed on every read.
type CalculationResult struct {
	DaysLate       int     `json:"days_late"`
	DaysRemaining  int     `json:"days_remaining"`
	InterestAmount float64 `json:"interest_amount"`
	TotalDue       float64 `json:"total_due"`
	IsOverdue      bool    `json:"is_overdue"`
	DailyCost      float64 `json:"daily_cost"`
}

// daysPerYear is the fixed accrual basis: simple non-compounding daily
// interest over a 365-day year, no leap-year adjustment.
const daysPerYear = 365

// ComputeDue computes the outstanding balance, lateness and accrued late
// interest of a loan as of now. Pure and deterministic given now; callers
// inject the clock.
//
// Both dates are truncated to midnight before differencing, so lateness
// flips exactly at day boundaries rather than at the creation time-of-day.
// A paid loan owes its principal and nothing more, even if it was once
// overdue.
func ComputeDue(amount float64, repaymentDate time.Time, status Status, annualRate float64, now time.Time) CalculationResult {
	dailyCost := amount * (annualRate / 100) / daysPerYear

	if status == StatusPaid {
		return CalculationResult{TotalDue: amount, DailyCost: dailyCost}
	}

	today := dateOnly(now)
	due := dateOnly(repaymentDate)
	diffDays := int(math.Ceil(today.Sub(due).Hours() / 24))

	res := CalculationResult{DailyCost: dailyCost, TotalDue: amount}
	if diffDays > 0 {
		res.IsOverdue = true
		res.DaysLate = diffDays
		res.InterestAmount = dailyCost * float64(diffDays)
		res.TotalDue = amount + res.InterestAmount
	} else {
		res.DaysRemaining = -diffDays
	}
	return res
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
