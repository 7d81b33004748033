package rates

import (
	"context"
	"log/slog"
	"strings"
)

// Converter turns an arbitrary-currency sum into the reporting currency.
// Implementations never fail past this boundary: the dashboard must stay
// available when the rate service is down, so degraded conversions return
// a best-effort value with estimated=true instead of an error.
type Converter interface {
	Convert(ctx context.Context, amount float64, from string) (value float64, estimated bool)
	ReportingCurrency() string
}

// fallbackRates are approximate, not live. Used whenever the lookup fails.
var fallbackRates = map[string]float64{
	"USD": 0.92,
	"XAF": 0.0015,
	"CAD": 0.68,
	"CHF": 1.04,
	"GBP": 1.17,
}

// Normalizer converts through the live lookup and degrades to the static
// table, then to identity, rather than propagate lookup failures.
type Normalizer struct {
	client    *Client
	reporting string
	log       *slog.Logger
}

func NewNormalizer(client *Client, reportingCurrency string, log *slog.Logger) *Normalizer {
	if reportingCurrency == "" {
		reportingCurrency = "EUR"
	}
	return &Normalizer{client: client, reporting: strings.ToUpper(reportingCurrency), log: log}
}

func (n *Normalizer) ReportingCurrency() string { return n.reporting }

func (n *Normalizer) Convert(ctx context.Context, amount float64, from string) (float64, bool) {
	from = strings.ToUpper(strings.TrimSpace(from))
	if from == n.reporting {
		return amount, false
	}

	if n.client != nil {
		v, err := n.client.Latest(ctx, amount, from, n.reporting)
		if err == nil {
			return v, false
		}
		n.log.Warn("rate lookup failed, using static table",
			"component", "rates", "from", from, "to", n.reporting, "error", err)
	}

	if rate, ok := fallbackRates[from]; ok {
		return amount * rate, true
	}
	// Unknown code: identity is the last resort, flagged as estimated.
	n.log.Warn("no fallback rate, assuming parity",
		"component", "rates", "from", from, "to", n.reporting)
	return amount, true
}
