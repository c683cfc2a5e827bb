package drip

import (
	"fmt"

	"github.com/etnz/drip/date"
	"github.com/shopspring/decimal"
)

// RemainingDailyAllowance is what is left of the daily allowance on that day.
// Only bank-sourced expenses count against it.
func (s *Snapshot) RemainingDailyAllowance(on date.Date) decimal.Decimal {
	e, ok := s.FindDailyLog(on)
	if !ok {
		return s.DailyAllowance
	}
	return s.DailyAllowance.Sub(e.bankSpending())
}

// RecalculateAllowanceDiff refreshes the cached allowance difference of that day, if logged.
func (s *Snapshot) RecalculateAllowanceDiff(on date.Date) {
	if i := s.dailyLogIndex(on); i >= 0 {
		s.DailyLogs[i].AllowanceDiff = s.DailyAllowance.Sub(s.DailyLogs[i].bankSpending())
	}
}

// RecalculateAllAllowanceDiffs refreshes the cached allowance difference of every day.
func (s *Snapshot) RecalculateAllAllowanceDiffs() {
	for i := range s.DailyLogs {
		s.DailyLogs[i].AllowanceDiff = s.DailyAllowance.Sub(s.DailyLogs[i].bankSpending())
	}
}

// SetDailyAllowance changes the daily allowance, then refreshes every day's
// allowance difference and recalculates buckets as of on.
func (s *Snapshot) SetDailyAllowance(amount decimal.Decimal, on date.Date) error {
	if err := nonNegative(amount); err != nil {
		return fmt.Errorf("cannot set daily allowance: %w", err)
	}
	s.DailyAllowance = amount
	s.RecalculateAllAllowanceDiffs()
	s.RecalculateBuckets(on)
	return nil
}
