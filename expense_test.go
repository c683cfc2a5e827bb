package drip

import (
	"errors"
	"testing"
)

func TestDeleteExpense(t *testing.T) {
	on := day("2025-10-20")
	s := newTestSnapshot("500", "100", "50", "0")
	coffee, _ := s.AddExpense(D(10), "coffee", on, SourceBank, false)
	bread, _ := s.AddExpense(D(4), "bread", on, SourceCash, false)

	s.DeleteExpense(on, coffee, on)
	assertAmount(t, "Bank", s.Bank, "500")
	assertAmount(t, "CashReserve", s.CashReserve, "96")
	assertAmount(t, "RemainingDailyAllowance", s.RemainingDailyAllowance(on), "50")
	e, _ := s.FindDailyLog(on)
	assertAmount(t, "AllowanceDiff", e.AllowanceDiff, "50")
	assertReconciled(t, s)

	s.DeleteExpense(on, bread, on)
	assertAmount(t, "CashReserve", s.CashReserve, "100")
	if _, ok := s.FindDailyLog(on); ok {
		t.Errorf("empty day was kept")
	}
}

func TestDeleteExpense_Unknown(t *testing.T) {
	on := day("2025-10-20")
	s := newTestSnapshot("500", "100", "50", "0")
	id, _ := s.AddExpense(D(10), "coffee", on, SourceBank, false)

	s.DeleteExpense(on.Add(1), id, on)
	s.DeleteExpense(on, NewID(), on)
	assertAmount(t, "Bank", s.Bank, "490")
	if len(s.DailyLogs) != 1 || len(s.DailyLogs[0].Items) != 1 {
		t.Errorf("unexpected daily logs %+v", s.DailyLogs)
	}
}

func TestEditExpense(t *testing.T) {
	on := day("2025-10-20")
	testCases := []struct {
		name          string
		amount        string
		source        ExpenseSource
		wantBank      string
		wantCash      string
		wantRemaining string
	}{
		{"unchanged", "10", SourceBank, "490", "100", "40"},
		{"amount", "25", SourceBank, "475", "100", "25"},
		{"bank to cash", "10", SourceCash, "500", "90", "50"},
		{"bank to savings concept", "10", SourceSavingsConcept, "490", "100", "50"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSnapshot("500", "100", "50", "0")
			id, _ := s.AddExpense(D(10), "coffee", on, SourceBank, false)
			if err := s.EditExpense(on, id, D(tc.amount), "edited", tc.source, on); err != nil {
				t.Fatal(err)
			}
			assertAmount(t, "Bank", s.Bank, tc.wantBank)
			assertAmount(t, "CashReserve", s.CashReserve, tc.wantCash)
			assertAmount(t, "RemainingDailyAllowance", s.RemainingDailyAllowance(on), tc.wantRemaining)
			assertReconciled(t, s)
		})
	}
}

func TestEditExpense_RejectsNonPositive(t *testing.T) {
	on := day("2025-10-20")
	s := newTestSnapshot("500", "100", "50", "0")
	id, _ := s.AddExpense(D(10), "coffee", on, SourceBank, false)
	if err := s.EditExpense(on, id, D(0), "free", SourceBank, on); !errors.Is(err, ErrNonPositiveAmount) {
		t.Errorf("EditExpense(0) error = %v, want ErrNonPositiveAmount", err)
	}
	assertAmount(t, "Bank", s.Bank, "490")
}
