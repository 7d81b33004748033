// Package reminder decides when a borrower must be reminded about an
// active loan. It is invoked on demand (session start, loan refresh) rather
// than from a scheduler, so it relies entirely on a cooldown-based dedup
// policy to stay idempotent across repeated runs.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainLoan "github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"
	"github.com/ChristianKamdemLab/ckmoney/internal/domain/notification"
	"github.com/ChristianKamdemLab/ckmoney/pkg/id"
)

// cooldown suppresses a repeat trigger of the same rule for the same loan.
// The trigger conditions are stable for a full calendar day, so three days
// comfortably covers page-load/poll re-invocations without masking the next
// legitimate trigger (the closest pair of rules is seven days apart).
const cooldown = 72 * time.Hour

const (
	titleJ7     = "Rappel J-7"
	titleLast   = "Dernier jour"
	titleLate   = "Retard activé"
	titleWeekly = "Point sur votre prêt"
)

// Mailer is an optional delivery channel: each persisted reminder is also
// sent to the borrower's mailbox, best-effort.
type Mailer interface {
	Send(to, subject, body string) error
}

type Engine struct {
	notifs notification.Repository
	mailer Mailer
	log    *slog.Logger
}

func NewEngine(notifs notification.Repository, mailer Mailer, log *slog.Logger) *Engine {
	return &Engine{notifs: notifs, mailer: mailer, log: log}
}

// Evaluate runs every rule against every active loan borrowed by userEmail
// and persists one notification per fired rule. A persistence failure for
// one notification is logged and skipped; the pass continues, and the next
// evaluation naturally retries because no cooldown record exists. Returns
// the notifications that were actually persisted.
func (e *Engine) Evaluate(ctx context.Context, loans []domainLoan.Loan, userEmail string, now time.Time) []notification.Notification {
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))

	existing, err := e.notifs.ListByUserID(ctx, userEmail)
	if err != nil {
		// Without the dedup baseline any rule could double-fire, so skip
		// this pass entirely rather than spam.
		e.log.Error("reminder pass aborted: cannot load existing notifications",
			"component", "reminder", "user", userEmail, "error", err)
		return nil
	}

	hasRecent := func(loanID, titlePart string) bool {
		for _, n := range existing {
			if n.LoanID == loanID && strings.Contains(n.Title, titlePart) && now.Sub(n.Date) < cooldown {
				return true
			}
		}
		return false
	}

	var created []notification.Notification
	for i := range loans {
		l := &loans[i]
		// The engine reminds borrowers, not lenders.
		if l.Status != domainLoan.StatusActive || !strings.EqualFold(l.BorrowerEmail, userEmail) {
			continue
		}

		calc := domainLoan.ComputeDue(l.Amount, l.RepaymentDate, l.Status, l.LateInterestRate, now)

		for _, r := range rulesFor(l, calc) {
			if hasRecent(l.LoanID, r.title) {
				continue
			}
			n := notification.Notification{
				NotificationID: id.NewID32(),
				UserID:         userEmail,
				LoanID:         l.LoanID,
				Type:           r.severity,
				Title:          r.title,
				Message:        r.message,
				Date:           now,
			}
			if err := e.notifs.Create(ctx, &n); err != nil {
				e.log.Error("reminder write failed",
					"component", "reminder", "loan_id", l.LoanID, "rule", r.title, "error", err)
				continue
			}
			e.deliver(l.BorrowerEmail, &n)
			created = append(created, n)
		}
	}
	return created
}

type firedRule struct {
	title    string
	severity notification.Severity
	message  string
}

// rulesFor evaluates all four reminder rules independently. Their trigger
// conditions are mutually exclusive by construction of the day arithmetic,
// so at most one fires per loan per pass.
func rulesFor(l *domainLoan.Loan, calc domainLoan.CalculationResult) []firedRule {
	var out []firedRule

	if calc.DaysRemaining == 7 {
		out = append(out, firedRule{
			title:    titleJ7,
			severity: notification.SeverityInfo,
			message: fmt.Sprintf("📅 Rappel : Votre remboursement de %v %s est prévu dans 7 jours. Pensez à préparer votre virement !",
				l.Amount, l.Currency),
		})
	}
	if calc.DaysRemaining == 1 {
		out = append(out, firedRule{
			title:    titleLast,
			severity: notification.SeverityWarning,
			message: fmt.Sprintf("⚠️ Dernier jour ! Votre remboursement est dû demain. Après cette date, la clause de retard de %v%% s'appliquera.",
				l.LateInterestRate),
		})
	}
	if calc.DaysLate == 1 {
		out = append(out, firedRule{
			title:    titleLate,
			severity: notification.SeverityDanger,
			message: fmt.Sprintf("🚨 Échéance dépassée. La clause de retard est activée. Des intérêts de %.2f %s s'ajouteront désormais chaque jour.",
				calc.DailyCost, l.Currency),
		})
	}
	if calc.DaysLate > 1 && calc.DaysLate%7 == 0 {
		out = append(out, firedRule{
			title:    titleWeekly,
			severity: notification.SeverityDanger,
			message: fmt.Sprintf("📉 Point sur votre prêt : Avec le retard (%d jours), vous devez actuellement un total de %.2f %s à %s.",
				calc.DaysLate, calc.TotalDue, l.Currency, l.LenderName),
		})
	}
	return out
}

func (e *Engine) deliver(to string, n *notification.Notification) {
	if e.mailer == nil {
		return
	}
	if err := e.mailer.Send(to, n.Title, n.Message); err != nil {
		e.log.Warn("reminder mail not delivered",
			"component", "reminder", "loan_id", n.LoanID, "rule", n.Title, "error", err)
	}
}
