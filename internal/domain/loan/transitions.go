package loan

import "time"

// Action is a lifecycle operation requested by one of the two parties.
type Action string

const (
	// ActionSign: the addressed borrower countersigns the contract.
	ActionSign Action = "sign"
	// ActionClaim: the borrower asserts the loan has been repaid.
	ActionClaim Action = "claim"
	// ActionConfirm: the lender acknowledges repayment and settles the loan.
	ActionConfirm Action = "confirm"
	// ActionDispute: the lender rejects a repayment claim; the loan resumes
	// accruing from its original repayment date.
	ActionDispute Action = "dispute"
)

type edge struct {
	from     Status
	to       Status
	byLender bool
}

// Mutation rights differ per party: borrowers sign and claim, lenders
// confirm and dispute. "paid" is terminal.
var transitions = map[Action][]edge{
	ActionSign:  {{from: StatusPendingBorrower, to: StatusActive}},
	ActionClaim: {{from: StatusActive, to: StatusRepaymentPending}},
	ActionConfirm: {
		{from: StatusActive, to: StatusPaid, byLender: true},
		{from: StatusRepaymentPending, to: StatusPaid, byLender: true},
	},
	ActionDispute: {{from: StatusRepaymentPending, to: StatusActive, byLender: true}},
}

// Transition applies action to l on behalf of actorEmail, mutating status
// in place. The loan is left unchanged on any violation: ErrNotAuthorized
// when the actor is not the party allowed to perform the action,
// ErrTransitionViolation when the edge does not exist from the current
// status.
func Transition(l *Loan, action Action, actorEmail string, now time.Time) error {
	edges, ok := transitions[action]
	if !ok {
		return ErrTransitionViolation
	}

	for _, e := range edges {
		if e.from != l.Status {
			continue
		}
		if e.byLender {
			if actorEmail != l.LenderEmail {
				return ErrNotAuthorized
			}
		} else if actorEmail != l.BorrowerEmail {
			return ErrNotAuthorized
		}
		l.Status = e.to
		l.StatusUpdatedAt = now.UTC()
		return nil
	}
	return ErrTransitionViolation
}
