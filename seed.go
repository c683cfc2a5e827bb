package drip

import "github.com/etnz/drip/date"

// BaselineSeed returns a realistic starting snapshot as of 2025-10-20: a few
// recurring subscriptions (one already paid), a day of spending, and a cash
// reserve funded from the bank. Buckets are reconciled as of that day.
func BaselineSeed() *Snapshot {
	on := date.New(2025, 10, 20)
	s := NewSnapshot()
	s.Bank = D("2543.28")
	s.CashReserve = D("3500.00")
	s.DailyAllowance = D("88.41")
	s.MonthlyEarmarks = []MonthlyEarmark{
		{ID: NewID(), Name: "Spotify", Amount: D("41.83"), IsActive: true},
		{ID: NewID(), Name: "ChatGPT", Amount: D("308.25"), IsActive: true},
		{ID: NewID(), Name: "Misc", Amount: D("80.28"), IsActive: true},
		{ID: NewID(), Name: "Claude Max", Amount: D("1460.74"), Notes: "Paid on Oct 14", IsActive: true, IsPaid: true, PaidOn: date.New(2025, 10, 14)},
	}
	s.DailyLogs = []DailyLogEntry{{
		ID:   NewID(),
		Date: on,
		Items: []DailyLogItem{
			{ID: NewID(), Description: "Daily spending", Amount: D("88.41"), Source: SourceBank},
		},
	}}
	s.CashReserveLogs = []CashReserveLogEntry{
		{ID: NewID(), Date: on, Description: "Cash reserve deposit", Amount: D("3500.00"), Type: Deposit},
	}
	s.RecalculateAllAllowanceDiffs()
	s.RecalculateBuckets(on)
	return s
}
