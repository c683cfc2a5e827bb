package drip

import (
	"fmt"

	"github.com/etnz/drip/date"
	"github.com/shopspring/decimal"
)

// RemainingDaysInMonth counts the days from on to the end of its month, both included.
func RemainingDaysInMonth(on date.Date) int { return on.DaysLeftInMonth() }

// RecalculateBuckets recomputes the derived buckets as of the reference day.
//
// The allowances bucket covers the remaining days of the month, the monthly
// bucket holds the active unpaid earmarks, and main savings takes whatever is
// left of actual funds. Main savings may go negative when the other buckets
// exceed actual funds. Calling it twice has no further effect.
func (s *Snapshot) RecalculateBuckets(on date.Date) {
	s.SetAsideAllowances = s.DailyAllowance.Mul(decimal.NewFromInt(int64(RemainingDaysInMonth(on))))
	s.SetAsideMonthly = sum(s.MonthlyEarmarks, MonthlyEarmark.reserved)
	used := s.SetAsideAllowances.Add(s.SetAsideMonthly).Add(s.CustomBucketsTotal())
	s.MainSavings = s.ActualFunds().Sub(used)
}

func positive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrNonPositiveAmount, amount)
	}
	return nil
}

func nonNegative(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w, got %s", ErrNegativeAmount, amount)
	}
	return nil
}

// AddExpense pays amount from source and logs it on its day.
//
// Bank and savings concept expenses debit the bank, cash expenses debit the
// cash reserve. When fromSavings is set, main savings is debited as well
// before buckets are recalculated as of on. It returns the new item identity.
func (s *Snapshot) AddExpense(amount decimal.Decimal, description string, on date.Date, source ExpenseSource, fromSavings bool) (ID, error) {
	if err := positive(amount); err != nil {
		return ID{}, fmt.Errorf("cannot add expense %q: %w", description, err)
	}
	s.debit(source.account(), amount)

	item := DailyLogItem{ID: NewID(), Description: description, Amount: amount, Source: source}
	if i := s.dailyLogIndex(on); i >= 0 {
		s.DailyLogs[i].Items = append(s.DailyLogs[i].Items, item)
	} else {
		s.DailyLogs = append(s.DailyLogs, DailyLogEntry{ID: NewID(), Date: on, Items: []DailyLogItem{item}})
	}
	s.RecalculateAllowanceDiff(on)

	if fromSavings {
		s.MainSavings = s.MainSavings.Sub(amount)
	}
	s.RecalculateBuckets(on)
	return item.ID, nil
}

// AddIncome credits the bank. When asSavings is set, main savings is credited
// as well before buckets are recalculated as of on.
func (s *Snapshot) AddIncome(amount decimal.Decimal, description string, on date.Date, asSavings bool) error {
	if err := positive(amount); err != nil {
		return fmt.Errorf("cannot add income %q: %w", description, err)
	}
	s.Bank = s.Bank.Add(amount)
	if asSavings {
		s.MainSavings = s.MainSavings.Add(amount)
	}
	s.RecalculateBuckets(on)
	return nil
}

// ApplyCorrection adds a signed amount to the bank or the cash reserve, logs
// it as an adjustment and recalculates buckets: the difference ends in main savings.
func (s *Snapshot) ApplyCorrection(amount decimal.Decimal, description string, to Account, on date.Date) (ID, error) {
	if to != Bank && to != Cash {
		return ID{}, fmt.Errorf("cannot correct %v: %w", to, ErrInvalidAccount)
	}
	s.credit(to, amount)
	entry := AdjustmentLogEntry{
		ID:          NewID(),
		Date:        on,
		Description: description,
		Amount:      amount,
		FromAccount: FromCorrection,
		ToAccount:   to,
	}
	s.AdjustmentLogs = append(s.AdjustmentLogs, entry)
	s.RecalculateBuckets(on)
	return entry.ID, nil
}

// AutoFixReconciliation moves the whole reconciliation delta into main
// savings and logs it, so that total buckets equal actual funds again.
// It does nothing when no reconciliation is needed, and reports whether it acted.
func (s *Snapshot) AutoFixReconciliation(description string, on date.Date) bool {
	if !s.NeedsReconciliation() {
		return false
	}
	delta := s.ReconciliationDelta()
	s.MainSavings = s.MainSavings.Add(delta)
	s.AdjustmentLogs = append(s.AdjustmentLogs, AdjustmentLogEntry{
		ID:          NewID(),
		Date:        on,
		Description: description,
		Amount:      delta,
		FromAccount: FromReconciliation,
		ToAccount:   MainSavings,
	})
	return true
}
