package dashboard

import (
	"context"
	"math"
	"strings"
	"sync"
	"testing"

	domain "github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"
)

// fakeConverter mimics the normalizer: EUR is identity, a fixed table
// covers the rest, unknown codes degrade to parity with estimated=true.
type fakeConverter struct {
	mu    sync.Mutex
	calls int
	rates map[string]float64
}

func newFakeConverter() *fakeConverter {
	return &fakeConverter{rates: map[string]float64{"USD": 0.92, "XAF": 0.0015}}
}

func (f *fakeConverter) ReportingCurrency() string { return "EUR" }

func (f *fakeConverter) Convert(ctx context.Context, amount float64, from string) (float64, bool) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	from = strings.ToUpper(from)
	if from == "EUR" {
		return amount, false
	}
	if r, ok := f.rates[from]; ok {
		return amount * r, true
	}
	return amount, true
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAggregate_Empty(t *testing.T) {
	uc := NewUsecase(newFakeConverter())
	got, err := uc.Aggregate(context.Background(), nil)
	if err != nil {
		t.Fatalf("Aggregate err: %v", err)
	}
	if got.Outstanding != 0 || got.Recovered != 0 {
		t.Fatalf("empty portfolio: %+v", got)
	}
	if got.Currency != "EUR" {
		t.Fatalf("currency = %s", got.Currency)
	}
}

func TestAggregate_MixedCurrencies(t *testing.T) {
	uc := NewUsecase(newFakeConverter())
	loans := []domain.Loan{
		{Amount: 1000, Currency: "EUR", Status: domain.StatusActive},
		{Amount: 500, Currency: "USD", Status: domain.StatusPaid},
	}
	got, err := uc.Aggregate(context.Background(), loans)
	if err != nil {
		t.Fatalf("Aggregate err: %v", err)
	}
	if !almostEqual(got.Outstanding, 1000) {
		t.Fatalf("outstanding = %v, want 1000", got.Outstanding)
	}
	if !almostEqual(got.Recovered, 460) {
		t.Fatalf("recovered = %v, want 460 (USD fallback rate 0.92)", got.Recovered)
	}
	if !got.Estimated {
		t.Fatal("USD went through the fallback table, totals must be flagged estimated")
	}
}

func TestAggregate_RepaymentPendingCountsAsOutstanding(t *testing.T) {
	uc := NewUsecase(newFakeConverter())
	loans := []domain.Loan{
		{Amount: 300, Currency: "EUR", Status: domain.StatusActive},
		{Amount: 200, Currency: "EUR", Status: domain.StatusRepaymentPending},
		{Amount: 50, Currency: "EUR", Status: domain.StatusPendingBorrower}, // unsigned, excluded
	}
	got, err := uc.Aggregate(context.Background(), loans)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got.Outstanding, 500) {
		t.Fatalf("outstanding = %v, want 500", got.Outstanding)
	}
	if got.Recovered != 0 {
		t.Fatalf("recovered = %v, want 0", got.Recovered)
	}
	if got.Estimated {
		t.Fatal("pure EUR portfolio must not be estimated")
	}
}

func TestAggregate_UsesNominalAmountNotTotalDue(t *testing.T) {
	// Heavily overdue loan with a steep rate: the portfolio still reports
	// principal only.
	uc := NewUsecase(newFakeConverter())
	loans := []domain.Loan{
		{Amount: 1000, Currency: "EUR", Status: domain.StatusActive, LateInterestRate: 50},
	}
	got, err := uc.Aggregate(context.Background(), loans)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got.Outstanding, 1000) {
		t.Fatalf("outstanding = %v, want nominal 1000", got.Outstanding)
	}
}

func TestAggregate_OneConversionPerCurrencySide(t *testing.T) {
	fc := newFakeConverter()
	uc := NewUsecase(fc)
	loans := []domain.Loan{
		{Amount: 100, Currency: "USD", Status: domain.StatusActive},
		{Amount: 200, Currency: "USD", Status: domain.StatusActive},
		{Amount: 300, Currency: "USD", Status: domain.StatusPaid},
		{Amount: 400, Currency: "EUR", Status: domain.StatusActive},
	}
	got, err := uc.Aggregate(context.Background(), loans)
	if err != nil {
		t.Fatal(err)
	}
	// USD active bucket (300) + USD paid bucket (300) + EUR active (400)
	if fc.calls != 3 {
		t.Fatalf("converter calls = %d, want 3 (buckets, not loans)", fc.calls)
	}
	if !almostEqual(got.Outstanding, 300*0.92+400) {
		t.Fatalf("outstanding = %v", got.Outstanding)
	}
	if !almostEqual(got.Recovered, 300*0.92) {
		t.Fatalf("recovered = %v", got.Recovered)
	}
}

func TestAggregate_UnknownCurrencyBucketFlagged(t *testing.T) {
	uc := NewUsecase(newFakeConverter())
	loans := []domain.Loan{
		{Amount: 100, Currency: "ZZZ", Status: domain.StatusActive},
	}
	got, err := uc.Aggregate(context.Background(), loans)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got.Outstanding, 100) || !got.Estimated {
		t.Fatalf("unknown currency must degrade to parity and be flagged: %+v", got)
	}
}
