package drip

import (
	"errors"
	"testing"
)

func TestRemainingDailyAllowance(t *testing.T) {
	on := day("2025-10-20")
	s := newTestSnapshot("500", "100", "30", "0")
	assertAmount(t, "no expense", s.RemainingDailyAllowance(on), "30")

	s.AddExpense(D(12), "cash lunch", on, SourceCash, false)
	s.AddExpense(D(8), "concept", on, SourceSavingsConcept, false)
	assertAmount(t, "non bank expenses", s.RemainingDailyAllowance(on), "30")

	s.AddExpense(D(40), "dinner", on, SourceBank, false)
	assertAmount(t, "overspent", s.RemainingDailyAllowance(on), "-10")
	assertAmount(t, "other day", s.RemainingDailyAllowance(on.Add(1)), "30")
}

func TestSetDailyAllowance(t *testing.T) {
	on := day("2025-10-30")
	s := newTestSnapshot("500", "0", "30", "0")
	s.AddExpense(D(10), "a", day("2025-10-01"), SourceBank, false)
	s.AddExpense(D(10), "b", day("2025-10-02"), SourceBank, false)

	if err := s.SetDailyAllowance(D(50), on); err != nil {
		t.Fatal(err)
	}
	for _, e := range s.DailyLogs {
		assertAmount(t, "AllowanceDiff "+e.Date.String(), e.AllowanceDiff, "40")
	}
	assertAmount(t, "SetAsideAllowances", s.SetAsideAllowances, "100")
	assertReconciled(t, s)

	if err := s.SetDailyAllowance(D(-1), on); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("SetDailyAllowance(-1) error = %v, want ErrNegativeAmount", err)
	}
}

func TestRemainingDaysInMonth(t *testing.T) {
	testCases := []struct {
		on   string
		want int
	}{
		{"2025-10-31", 1},
		{"2025-10-01", 31},
		{"2025-10-20", 12},
		{"2025-02-01", 28},
		{"2024-02-01", 29},
	}
	for _, tc := range testCases {
		if got := RemainingDaysInMonth(day(tc.on)); got != tc.want {
			t.Errorf("RemainingDaysInMonth(%s) = %d, want %d", tc.on, got, tc.want)
		}
	}
}
