package drip

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/drip/date"
	"github.com/shopspring/decimal"
)

// ExpenseSource tells which account an expense is paid from.
type ExpenseSource int

const (
	// SourceBank debits the bank account.
	SourceBank ExpenseSource = iota
	// SourceCash debits the cash reserve.
	SourceCash
	// SourceSavingsConcept debits the bank account physically, but is meant
	// to be counted against savings.
	SourceSavingsConcept
)

func (s ExpenseSource) String() string {
	switch s {
	case SourceBank:
		return "Bank"
	case SourceCash:
		return "Cash"
	case SourceSavingsConcept:
		return "SavingsConcept"
	default:
		return fmt.Sprintf("ExpenseSource(%d)", int(s))
	}
}

// ParseExpenseSource parses "bank", "cash" or "savings" in any case.
// The stored form "SavingsConcept" is accepted too.
func ParseExpenseSource(s string) (ExpenseSource, error) {
	switch strings.ToLower(s) {
	case "bank":
		return SourceBank, nil
	case "cash":
		return SourceCash, nil
	case "savingsconcept", "savings", "savings-concept":
		return SourceSavingsConcept, nil
	}
	return SourceBank, fmt.Errorf("unknown expense source %q", s)
}

// account returns the physical account debited by an expense from s.
func (s ExpenseSource) account() Account {
	if s == SourceCash {
		return Cash
	}
	return Bank
}

func (s ExpenseSource) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *ExpenseSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParseExpenseSource(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// TransferType is the direction of a bank/cash transfer.
type TransferType int

const (
	// Withdraw moves money from the bank to the cash reserve.
	Withdraw TransferType = iota
	// Deposit moves money from the cash reserve to the bank.
	Deposit
)

func (t TransferType) String() string {
	if t == Deposit {
		return "deposit"
	}
	return "withdraw"
}

// ParseTransferType parses "withdraw" or "deposit".
func ParseTransferType(s string) (TransferType, error) {
	switch s {
	case "withdraw":
		return Withdraw, nil
	case "deposit":
		return Deposit, nil
	}
	return Withdraw, fmt.Errorf("unknown transfer type %q", s)
}

func (t TransferType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *TransferType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParseTransferType(str)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MonthlyEarmark is a recurring monthly obligation.
// It is set aside while active and unpaid.
type MonthlyEarmark struct {
	ID        ID
	Name      string
	Amount    decimal.Decimal
	Notes     string
	SourceTag string
	IsActive  bool
	IsPaid    bool
	PaidOn    date.Date // zero until paid
}

// reserved returns the amount this earmark holds in the monthly bucket.
func (e MonthlyEarmark) reserved() decimal.Decimal {
	if e.IsActive && !e.IsPaid {
		return e.Amount
	}
	return decimal.Zero
}

// CustomBucket is a user-named savings goal.
type CustomBucket struct {
	ID     ID
	Name   string
	Amount decimal.Decimal
}

// DailyLogItem is one expense of a day.
type DailyLogItem struct {
	ID          ID
	Description string
	Amount      decimal.Decimal
	Source      ExpenseSource
}

// DailyLogEntry groups the expenses of one calendar day.
type DailyLogEntry struct {
	ID    ID
	Date  date.Date
	Items []DailyLogItem
	// AllowanceDiff caches the daily allowance minus that day's bank spending.
	AllowanceDiff decimal.Decimal
}

// bankSpending sums the amounts of bank-sourced items. Cash and savings
// concept items never count against the daily allowance.
func (e DailyLogEntry) bankSpending() decimal.Decimal {
	total := decimal.Zero
	for _, it := range e.Items {
		if it.Source == SourceBank {
			total = total.Add(it.Amount)
		}
	}
	return total
}

// CashReserveLogEntry records one transfer between bank and cash.
// Amount is always positive, the direction is in Type.
type CashReserveLogEntry struct {
	ID          ID
	Date        date.Date
	Description string
	Amount      decimal.Decimal
	Type        TransferType
}

// AdjustmentLogEntry records one manual correction or reconciliation.
type AdjustmentLogEntry struct {
	ID          ID
	Date        date.Date
	Description string
	Amount      decimal.Decimal // signed
	FromAccount string          // informational only
	ToAccount   Account
}

// Adjustment origins written in AdjustmentLogEntry.FromAccount.
const (
	FromCorrection     = "Correction"
	FromReconciliation = "Reconciliation"
)
