package drip

import (
	"fmt"
	"slices"

	"github.com/etnz/drip/date"
	"github.com/shopspring/decimal"
)

// Transfers between bank and cash leave actual funds unchanged, none of them
// recalculates buckets.

// transfer moves amount from bank to cash for a withdraw, the other way for a deposit.
func (s *Snapshot) transfer(t TransferType, amount decimal.Decimal) {
	if t == Deposit {
		amount = amount.Neg()
	}
	s.Bank = s.Bank.Sub(amount)
	s.CashReserve = s.CashReserve.Add(amount)
}

func (s *Snapshot) logTransfer(t TransferType, amount decimal.Decimal, description string, on date.Date) (ID, error) {
	if err := positive(amount); err != nil {
		return ID{}, fmt.Errorf("cannot %s %q: %w", t, description, err)
	}
	s.transfer(t, amount)
	entry := CashReserveLogEntry{ID: NewID(), Date: on, Description: description, Amount: amount, Type: t}
	s.CashReserveLogs = append(s.CashReserveLogs, entry)
	return entry.ID, nil
}

// WithdrawCash moves amount from the bank to the cash reserve and logs it.
func (s *Snapshot) WithdrawCash(amount decimal.Decimal, description string, on date.Date) (ID, error) {
	return s.logTransfer(Withdraw, amount, description, on)
}

// DepositCash moves amount from the cash reserve to the bank and logs it.
func (s *Snapshot) DepositCash(amount decimal.Decimal, description string, on date.Date) (ID, error) {
	return s.logTransfer(Deposit, amount, description, on)
}

func (s *Snapshot) cashLogIndex(id ID) int {
	return slices.IndexFunc(s.CashReserveLogs, func(e CashReserveLogEntry) bool { return e.ID == id })
}

// DeleteCashReserveLog reverses a logged transfer and removes its log entry.
// Unknown identities are ignored.
func (s *Snapshot) DeleteCashReserveLog(id ID) {
	i := s.cashLogIndex(id)
	if i < 0 {
		return
	}
	old := s.CashReserveLogs[i]
	s.transfer(old.Type, old.Amount.Neg())
	s.CashReserveLogs = slices.Delete(s.CashReserveLogs, i, i+1)
}

// EditCashReserveLog reverses a logged transfer, applies the new one in its
// place and updates the log entry. Unknown identities are ignored.
func (s *Snapshot) EditCashReserveLog(id ID, amount decimal.Decimal, description string, t TransferType) error {
	i := s.cashLogIndex(id)
	if i < 0 {
		return nil
	}
	if err := positive(amount); err != nil {
		return fmt.Errorf("cannot edit transfer %q: %w", description, err)
	}
	entry := &s.CashReserveLogs[i]
	s.transfer(entry.Type, entry.Amount.Neg())
	s.transfer(t, amount)
	entry.Amount, entry.Description, entry.Type = amount, description, t
	return nil
}
