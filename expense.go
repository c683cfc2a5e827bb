package drip

import (
	"fmt"
	"slices"

	"github.com/etnz/drip/date"
	"github.com/shopspring/decimal"
)

// findItem locates an expense by its day and identity.
func (s *Snapshot) findItem(day date.Date, id ID) (logIndex, itemIndex int, ok bool) {
	logIndex = s.dailyLogIndex(day)
	if logIndex < 0 {
		return -1, -1, false
	}
	itemIndex = slices.IndexFunc(s.DailyLogs[logIndex].Items, func(it DailyLogItem) bool { return it.ID == id })
	return logIndex, itemIndex, itemIndex >= 0
}

// DeleteExpense refunds an expense to the account it was paid from and
// removes it. A day left without expenses is removed altogether. Buckets are
// recalculated as of on. Unknown days or identities are ignored.
func (s *Snapshot) DeleteExpense(day date.Date, id ID, on date.Date) {
	li, ii, ok := s.findItem(day, id)
	if !ok {
		return
	}
	item := s.DailyLogs[li].Items[ii]
	s.credit(item.Source.account(), item.Amount)

	s.DailyLogs[li].Items = slices.Delete(s.DailyLogs[li].Items, ii, ii+1)
	if len(s.DailyLogs[li].Items) == 0 {
		s.DailyLogs = slices.Delete(s.DailyLogs, li, li+1)
	} else {
		s.RecalculateAllowanceDiff(day)
	}
	s.RecalculateBuckets(on)
}

// EditExpense replaces an expense. The old amount is refunded to its
// source's account and the new amount is paid from the new source's account,
// so changing the source moves money between bank and cash. Buckets are
// recalculated as of on. Unknown days or identities are ignored.
func (s *Snapshot) EditExpense(day date.Date, id ID, amount decimal.Decimal, description string, source ExpenseSource, on date.Date) error {
	li, ii, ok := s.findItem(day, id)
	if !ok {
		return nil
	}
	if err := positive(amount); err != nil {
		return fmt.Errorf("cannot edit expense %q: %w", description, err)
	}
	item := &s.DailyLogs[li].Items[ii]
	s.credit(item.Source.account(), item.Amount)
	s.debit(source.account(), amount)
	item.Amount, item.Description, item.Source = amount, description, source

	s.RecalculateAllowanceDiff(day)
	s.RecalculateBuckets(on)
	return nil
}
