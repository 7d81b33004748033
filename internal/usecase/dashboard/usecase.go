package dashboard

import (
	"context"

	domain "github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"
	"github.com/ChristianKamdemLab/ckmoney/internal/rates"

	"golang.org/x/sync/errgroup"
)

// Totals is the portfolio-level view in the reporting currency. It sums
// nominal principal, not accrued interest: outstanding/recovered reflect
// what was lent, not what is owed with penalties. Estimated is set when
// any bucket was converted through the static fallback table.
type Totals struct {
	Outstanding float64 `json:"outstanding"`
	Recovered   float64 `json:"recovered"`
	Currency    string  `json:"currency"`
	Estimated   bool    `json:"estimated"`
}

type Usecase struct {
	converter rates.Converter
}

func NewUsecase(converter rates.Converter) *Usecase {
	return &Usecase{converter: converter}
}

func activeStatus(s domain.Status) bool {
	return s == domain.StatusActive || s == domain.StatusRepaymentPending
}

type bucket struct {
	currency string
	active   float64
	paid     float64
}

type converted struct {
	outstanding float64
	recovered   float64
	estimated   bool
}

// Aggregate partitions loans by currency, converts each bucket to the
// reporting currency, and sums. Conversions for distinct currencies run
// concurrently; the totals are assembled only after every bucket has
// resolved, so callers never observe a partial figure. Loans still waiting
// for the borrower's signature count toward neither total.
func (u *Usecase) Aggregate(ctx context.Context, loans []domain.Loan) (Totals, error) {
	sums := make(map[string]*bucket)
	order := make([]string, 0)
	for i := range loans {
		l := &loans[i]
		b, ok := sums[l.Currency]
		if !ok {
			b = &bucket{currency: l.Currency}
			sums[l.Currency] = b
			order = append(order, l.Currency)
		}
		switch {
		case activeStatus(l.Status):
			b.active += l.Amount
		case l.Status == domain.StatusPaid:
			b.paid += l.Amount
		}
	}

	// One conversion per currency, each writing its own slot.
	results := make([]converted, len(order))
	g, gctx := errgroup.WithContext(ctx)
	for i, cur := range order {
		b := sums[cur]
		g.Go(func() error {
			var c converted
			if b.active > 0 {
				v, est := u.converter.Convert(gctx, b.active, b.currency)
				c.outstanding = v
				c.estimated = c.estimated || est
			}
			if b.paid > 0 {
				v, est := u.converter.Convert(gctx, b.paid, b.currency)
				c.recovered = v
				c.estimated = c.estimated || est
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Totals{}, err
	}

	out := Totals{Currency: u.converter.ReportingCurrency()}
	for _, c := range results {
		out.Outstanding += c.outstanding
		out.Recovered += c.recovered
		out.Estimated = out.Estimated || c.estimated
	}
	return out, nil
}
