package drip

import (
	"errors"
	"testing"
)

func TestDeleteAdjustmentLog(t *testing.T) {
	on := day("2025-10-31")
	s := newTestSnapshot("100", "50", "10", "0")
	s.RecalculateBuckets(on)
	id, _ := s.ApplyCorrection(D(-20), "fee", Cash, on)
	assertAmount(t, "CashReserve", s.CashReserve, "30")

	s.DeleteAdjustmentLog(id, on)
	assertAmount(t, "CashReserve", s.CashReserve, "50")
	assertAmount(t, "MainSavings", s.MainSavings, "140")
	assertReconciled(t, s)
	if len(s.AdjustmentLogs) != 0 {
		t.Errorf("got %d adjustments, want none", len(s.AdjustmentLogs))
	}
}

func TestDeleteAdjustmentLog_UnknownAccount(t *testing.T) {
	on := day("2025-10-31")
	s := newTestSnapshot("100", "50", "10", "0")
	var unknown Account
	if err := unknown.UnmarshalJSON([]byte(`"Wallet"`)); err != nil {
		t.Fatal(err)
	}
	id := NewID()
	s.AdjustmentLogs = append(s.AdjustmentLogs, AdjustmentLogEntry{ID: id, Amount: D(7), ToAccount: unknown})

	s.DeleteAdjustmentLog(id, on)
	assertAmount(t, "Bank", s.Bank, "100")
	assertAmount(t, "CashReserve", s.CashReserve, "50")
	if len(s.AdjustmentLogs) != 0 {
		t.Errorf("got %d adjustments, want none", len(s.AdjustmentLogs))
	}
}

func TestEditAdjustmentLog(t *testing.T) {
	on := day("2025-10-31")
	testCases := []struct {
		name     string
		amount   string
		to       Account
		wantBank string
		wantCash string
	}{
		{"unchanged", "-20", Bank, "80", "50"},
		{"amount", "15", Bank, "115", "50"},
		{"account", "-20", Cash, "100", "30"},
		{"main savings", "3", MainSavings, "100", "50"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSnapshot("100", "50", "10", "0")
			s.RecalculateBuckets(on)
			id, _ := s.ApplyCorrection(D(-20), "fee", Bank, on)
			if err := s.EditAdjustmentLog(id, D(tc.amount), "edited", tc.to, on); err != nil {
				t.Fatal(err)
			}
			assertAmount(t, "Bank", s.Bank, tc.wantBank)
			assertAmount(t, "CashReserve", s.CashReserve, tc.wantCash)
			assertReconciled(t, s)
			if got := s.AdjustmentLogs[0]; got.ToAccount != tc.to || got.Description != "edited" {
				t.Errorf("unexpected adjustment %+v", got)
			}
		})
	}
}

func TestEditAdjustmentLog_InvalidAccount(t *testing.T) {
	on := day("2025-10-31")
	s := newTestSnapshot("100", "50", "10", "0")
	id, _ := s.ApplyCorrection(D(-20), "fee", Bank, on)
	before := s.Clone()

	err := s.EditAdjustmentLog(id, D(1), "edited", Bucket("Vacation"), on)
	if !errors.Is(err, ErrInvalidAccount) {
		t.Fatalf("EditAdjustmentLog() error = %v, want ErrInvalidAccount", err)
	}
	assertAmount(t, "Bank", s.Bank, before.Bank.String())
	if s.AdjustmentLogs[0].Description != "fee" {
		t.Errorf("adjustment changed on error: %+v", s.AdjustmentLogs[0])
	}
}
