package drip

import (
	"fmt"
	"slices"

	"github.com/etnz/drip/date"
	"github.com/shopspring/decimal"
)

func (s *Snapshot) adjustmentIndex(id ID) int {
	return slices.IndexFunc(s.AdjustmentLogs, func(e AdjustmentLogEntry) bool { return e.ID == id })
}

// DeleteAdjustmentLog reverses an adjustment on the account it was applied
// to, removes its log entry and recalculates buckets as of on. Adjustments
// to accounts other than Bank, Cash or MainSavings have nothing to reverse.
// Unknown identities are ignored.
func (s *Snapshot) DeleteAdjustmentLog(id ID, on date.Date) {
	i := s.adjustmentIndex(id)
	if i < 0 {
		return
	}
	old := s.AdjustmentLogs[i]
	s.debit(old.ToAccount, old.Amount)
	s.AdjustmentLogs = slices.Delete(s.AdjustmentLogs, i, i+1)
	s.RecalculateBuckets(on)
}

// EditAdjustmentLog reverses an adjustment, applies the new amount to the new
// account, updates the log entry and recalculates buckets as of on.
// Unknown identities are ignored.
func (s *Snapshot) EditAdjustmentLog(id ID, amount decimal.Decimal, description string, to Account, on date.Date) error {
	i := s.adjustmentIndex(id)
	if i < 0 {
		return nil
	}
	switch to {
	case Bank, Cash, MainSavings:
	default:
		return fmt.Errorf("cannot adjust %v: %w", to, ErrInvalidAccount)
	}
	entry := &s.AdjustmentLogs[i]
	s.debit(entry.ToAccount, entry.Amount)
	s.credit(to, amount)
	entry.Amount, entry.Description, entry.ToAccount = amount, description, to
	s.RecalculateBuckets(on)
	return nil
}
