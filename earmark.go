package drip

import (
	"fmt"
	"slices"

	"github.com/etnz/drip/date"
	"github.com/shopspring/decimal"
)

// AddMonthlyEarmark appends an active, unpaid earmark and recalculates buckets as of on.
func (s *Snapshot) AddMonthlyEarmark(name string, amount decimal.Decimal, notes, sourceTag string, on date.Date) (ID, error) {
	if err := nonNegative(amount); err != nil {
		return ID{}, fmt.Errorf("cannot add earmark %q: %w", name, err)
	}
	e := MonthlyEarmark{
		ID:        NewID(),
		Name:      name,
		Amount:    amount,
		Notes:     notes,
		SourceTag: sourceTag,
		IsActive:  true,
	}
	s.MonthlyEarmarks = append(s.MonthlyEarmarks, e)
	s.RecalculateBuckets(on)
	return e.ID, nil
}

// RemoveMonthlyEarmark removes an earmark and reallocates its amount.
//
// MainSavings and Allowances both credit main savings. A Bucket target
// credits the first custom bucket with that name and fails with
// ErrUnknownBucket, leaving s untouched, when there is none. Buckets are
// recalculated as of on. Unknown identities are ignored.
func (s *Snapshot) RemoveMonthlyEarmark(id ID, reallocateTo Account, on date.Date) error {
	i := s.earmarkIndex(id)
	if i < 0 {
		return nil
	}
	bucket := -1
	switch reallocateTo.kind {
	case mainSavingsAccount, allowancesAccount:
	case bucketAccount:
		bucket = slices.IndexFunc(s.CustomBuckets, func(b CustomBucket) bool { return b.Name == reallocateTo.name })
		if bucket < 0 {
			return fmt.Errorf("cannot reallocate earmark to %q: %w", reallocateTo.name, ErrUnknownBucket)
		}
	default:
		return fmt.Errorf("cannot reallocate earmark to %v: %w", reallocateTo, ErrInvalidAccount)
	}

	amount := s.MonthlyEarmarks[i].Amount
	s.MonthlyEarmarks = slices.Delete(s.MonthlyEarmarks, i, i+1)
	if bucket >= 0 {
		s.CustomBuckets[bucket].Amount = s.CustomBuckets[bucket].Amount.Add(amount)
	} else {
		s.MainSavings = s.MainSavings.Add(amount)
	}
	s.RecalculateBuckets(on)
	return nil
}

// MarkMonthlyEarmarkPaid marks an earmark paid on that day and pays the
// actual amount from paidFrom. Whatever was earmarked but not spent goes to
// main savings, an overspend comes out of it. Buckets are recalculated as of
// on. Unknown identities are ignored.
func (s *Snapshot) MarkMonthlyEarmarkPaid(id ID, actualAmountPaid decimal.Decimal, paidFrom ExpenseSource, on date.Date) error {
	i := s.earmarkIndex(id)
	if i < 0 {
		return nil
	}
	if err := nonNegative(actualAmountPaid); err != nil {
		return fmt.Errorf("cannot pay earmark %q: %w", s.MonthlyEarmarks[i].Name, err)
	}
	e := &s.MonthlyEarmarks[i]
	e.IsPaid = true
	e.PaidOn = on

	s.debit(paidFrom.account(), actualAmountPaid)
	s.MainSavings = s.MainSavings.Add(e.Amount.Sub(actualAmountPaid))
	s.RecalculateBuckets(on)
	return nil
}

// AddCustomBucket appends a custom bucket and recalculates buckets as of on.
func (s *Snapshot) AddCustomBucket(name string, amount decimal.Decimal, on date.Date) (ID, error) {
	if err := nonNegative(amount); err != nil {
		return ID{}, fmt.Errorf("cannot add bucket %q: %w", name, err)
	}
	b := CustomBucket{ID: NewID(), Name: name, Amount: amount}
	s.CustomBuckets = append(s.CustomBuckets, b)
	s.RecalculateBuckets(on)
	return b.ID, nil
}

// RemoveCustomBucket removes a custom bucket and recalculates buckets as of
// on. Its amount is not moved anywhere explicitly: main savings absorbs it
// as the remainder.
func (s *Snapshot) RemoveCustomBucket(id ID, on date.Date) {
	s.CustomBuckets = slices.DeleteFunc(s.CustomBuckets, func(b CustomBucket) bool { return b.ID == id })
	s.RecalculateBuckets(on)
}
