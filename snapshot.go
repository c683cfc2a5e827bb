package drip

import (
	"slices"

	"github.com/etnz/drip/date"
	"github.com/shopspring/decimal"
)

// Snapshot is the whole state of the ledger at one point in time.
//
// SetAsideAllowances, SetAsideMonthly, MainSavings and each day's
// AllowanceDiff are stored, not computed on read. Every operation that changes
// what they derive from recomputes them before returning.
type Snapshot struct {
	Bank               decimal.Decimal
	CashReserve        decimal.Decimal
	DailyAllowance     decimal.Decimal
	SetAsideAllowances decimal.Decimal
	SetAsideMonthly    decimal.Decimal
	MonthlyEarmarks    []MonthlyEarmark
	CustomBuckets      []CustomBucket
	MainSavings        decimal.Decimal
	DailyLogs          []DailyLogEntry
	CashReserveLogs    []CashReserveLogEntry
	AdjustmentLogs     []AdjustmentLogEntry
}

// NewSnapshot returns the default, empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		DailyAllowance:  DefaultDailyAllowance,
		MonthlyEarmarks: []MonthlyEarmark{},
		CustomBuckets:   []CustomBucket{},
		DailyLogs:       []DailyLogEntry{},
		CashReserveLogs: []CashReserveLogEntry{},
		AdjustmentLogs:  []AdjustmentLogEntry{},
	}
}

// Clone returns a deep copy of s.
func (s *Snapshot) Clone() *Snapshot {
	c := *s
	c.MonthlyEarmarks = slices.Clone(s.MonthlyEarmarks)
	c.CustomBuckets = slices.Clone(s.CustomBuckets)
	c.CashReserveLogs = slices.Clone(s.CashReserveLogs)
	c.AdjustmentLogs = slices.Clone(s.AdjustmentLogs)
	c.DailyLogs = make([]DailyLogEntry, len(s.DailyLogs))
	for i, e := range s.DailyLogs {
		e.Items = slices.Clone(e.Items)
		c.DailyLogs[i] = e
	}
	return &c
}

// ActualFunds is the money physically held: bank plus cash.
func (s *Snapshot) ActualFunds() decimal.Decimal { return s.Bank.Add(s.CashReserve) }

// CustomBucketsTotal sums the custom buckets.
func (s *Snapshot) CustomBucketsTotal() decimal.Decimal {
	return sum(s.CustomBuckets, func(b CustomBucket) decimal.Decimal { return b.Amount })
}

// TotalBuckets is the sum of every allocation, main savings included.
func (s *Snapshot) TotalBuckets() decimal.Decimal {
	return s.SetAsideAllowances.Add(s.SetAsideMonthly).Add(s.CustomBucketsTotal()).Add(s.MainSavings)
}

// ReconciliationDelta is actual funds minus total buckets.
func (s *Snapshot) ReconciliationDelta() decimal.Decimal {
	return s.ActualFunds().Sub(s.TotalBuckets())
}

// NeedsReconciliation reports whether buckets and funds differ by a cent or more.
func (s *Snapshot) NeedsReconciliation() bool {
	return s.ReconciliationDelta().Abs().GreaterThanOrEqual(ReconciliationThreshold)
}

// FindDailyLog returns the log entry of that day, if any.
func (s *Snapshot) FindDailyLog(on date.Date) (DailyLogEntry, bool) {
	if i := s.dailyLogIndex(on); i >= 0 {
		return s.DailyLogs[i], true
	}
	return DailyLogEntry{}, false
}

// MonthlyEarmark returns the earmark with that identity, if any.
func (s *Snapshot) MonthlyEarmark(id ID) (MonthlyEarmark, bool) {
	if i := s.earmarkIndex(id); i >= 0 {
		return s.MonthlyEarmarks[i], true
	}
	return MonthlyEarmark{}, false
}

// CustomBucket returns the custom bucket with that identity, if any.
func (s *Snapshot) CustomBucket(id ID) (CustomBucket, bool) {
	i := slices.IndexFunc(s.CustomBuckets, func(b CustomBucket) bool { return b.ID == id })
	if i < 0 {
		return CustomBucket{}, false
	}
	return s.CustomBuckets[i], true
}

// dailyLogIndex finds the entry of a calendar day, or -1.
func (s *Snapshot) dailyLogIndex(on date.Date) int {
	return slices.IndexFunc(s.DailyLogs, func(e DailyLogEntry) bool { return e.Date == on })
}

func (s *Snapshot) earmarkIndex(id ID) int {
	return slices.IndexFunc(s.MonthlyEarmarks, func(e MonthlyEarmark) bool { return e.ID == id })
}

// credit adds amount to a physical account or to main savings. Any other
// account is left untouched and credit reports false.
func (s *Snapshot) credit(a Account, amount decimal.Decimal) bool {
	switch a.kind {
	case bankAccount:
		s.Bank = s.Bank.Add(amount)
	case cashAccount:
		s.CashReserve = s.CashReserve.Add(amount)
	case mainSavingsAccount:
		s.MainSavings = s.MainSavings.Add(amount)
	default:
		return false
	}
	return true
}

// debit is credit of the opposite amount.
func (s *Snapshot) debit(a Account, amount decimal.Decimal) bool { return s.credit(a, amount.Neg()) }
