package drip

import (
	"testing"

	"github.com/etnz/drip/date"
	"github.com/shopspring/decimal"
)

// day is a helper for test to create a date from a const.
func day(s string) date.Date { return date.MustParse(s) }

// newTestSnapshot returns a snapshot with the given balances, buckets left as is.
func newTestSnapshot(bank, cash, allowance, mainSavings string) *Snapshot {
	s := NewSnapshot()
	s.Bank = D(bank)
	s.CashReserve = D(cash)
	s.DailyAllowance = D(allowance)
	s.MainSavings = D(mainSavings)
	return s
}

func assertAmount(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(D(want)) {
		t.Errorf("%s = %s, want %s", what, got, want)
	}
}

func assertReconciled(t *testing.T, s *Snapshot) {
	t.Helper()
	if s.NeedsReconciliation() {
		t.Errorf("snapshot needs reconciliation: actual funds %s, total buckets %s", s.ActualFunds(), s.TotalBuckets())
	}
}
