package drip

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/drip/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The JSON form is versionless: every field added after the first release
// has a default when it is missing from older data.

// orNewID returns id, or a fresh identity for records saved without one.
func orNewID(id *ID) ID {
	if id == nil {
		return NewID()
	}
	return *id
}

func (e MonthlyEarmark) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("name", e.Name)
	w.Append("amount", e.Amount)
	w.Optional("notes", e.Notes)
	w.Optional("sourceTag", e.SourceTag)
	w.Append("isActive", e.IsActive)
	w.Append("isPaid", e.IsPaid)
	w.Optional("paidOn", e.PaidOn)
	return w.MarshalJSON()
}

// UnmarshalJSON defaults isActive to true, and isPaid to whether a payment
// day is recorded.
func (e *MonthlyEarmark) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID        *ID             `json:"id"`
		Name      string          `json:"name"`
		Amount    decimal.Decimal `json:"amount"`
		Notes     string          `json:"notes"`
		SourceTag string          `json:"sourceTag"`
		IsActive  *bool           `json:"isActive"`
		IsPaid    *bool           `json:"isPaid"`
		PaidOn    *date.Date      `json:"paidOn"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*e = MonthlyEarmark{
		ID:        orNewID(temp.ID),
		Name:      temp.Name,
		Amount:    temp.Amount,
		Notes:     temp.Notes,
		SourceTag: temp.SourceTag,
		IsActive:  temp.IsActive == nil || *temp.IsActive,
		IsPaid:    temp.PaidOn != nil,
	}
	if temp.IsPaid != nil {
		e.IsPaid = *temp.IsPaid
	}
	if temp.PaidOn != nil {
		e.PaidOn = *temp.PaidOn
	}
	return nil
}

func (b CustomBucket) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", b.ID)
	w.Append("name", b.Name)
	w.Append("amount", b.Amount)
	return w.MarshalJSON()
}

func (b *CustomBucket) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID     *ID             `json:"id"`
		Name   string          `json:"name"`
		Amount decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*b = CustomBucket{ID: orNewID(temp.ID), Name: temp.Name, Amount: temp.Amount}
	return nil
}

func (it DailyLogItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", it.ID)
	w.Append("description", it.Description)
	w.Append("amount", it.Amount)
	w.Append("source", it.Source)
	return w.MarshalJSON()
}

// UnmarshalJSON defaults the source to the bank.
func (it *DailyLogItem) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          *ID             `json:"id"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		Source      ExpenseSource   `json:"source"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*it = DailyLogItem{ID: orNewID(temp.ID), Description: temp.Description, Amount: temp.Amount, Source: temp.Source}
	return nil
}

func (e DailyLogEntry) MarshalJSON() ([]byte, error) {
	items := e.Items
	if items == nil {
		items = []DailyLogItem{}
	}
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("items", items)
	w.Append("allowanceDiff", e.AllowanceDiff)
	return w.MarshalJSON()
}

// dailyLogEntryJSON keeps track of a missing allowanceDiff, it is recomputed
// once the snapshot's allowance is known.
type dailyLogEntryJSON struct {
	ID            *ID              `json:"id"`
	Date          date.Date        `json:"date"`
	Items         []DailyLogItem   `json:"items"`
	AllowanceDiff *decimal.Decimal `json:"allowanceDiff"`
}

func (j dailyLogEntryJSON) entry() DailyLogEntry {
	e := DailyLogEntry{ID: orNewID(j.ID), Date: j.Date, Items: j.Items}
	if e.Items == nil {
		e.Items = []DailyLogItem{}
	}
	if j.AllowanceDiff != nil {
		e.AllowanceDiff = *j.AllowanceDiff
	}
	return e
}

func (e *DailyLogEntry) UnmarshalJSON(data []byte) error {
	var temp dailyLogEntryJSON
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*e = temp.entry()
	return nil
}

func (e CashReserveLogEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("description", e.Description)
	w.Append("amount", e.Amount)
	w.Append("type", e.Type)
	return w.MarshalJSON()
}

func (e *CashReserveLogEntry) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          *ID             `json:"id"`
		Date        date.Date       `json:"date"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		Type        TransferType    `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*e = CashReserveLogEntry{ID: orNewID(temp.ID), Date: temp.Date, Description: temp.Description, Amount: temp.Amount, Type: temp.Type}
	return nil
}

func (e AdjustmentLogEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("description", e.Description)
	w.Append("amount", e.Amount)
	w.Optional("fromAccount", e.FromAccount)
	w.Append("toAccount", e.ToAccount)
	return w.MarshalJSON()
}

func (e *AdjustmentLogEntry) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          *ID             `json:"id"`
		Date        date.Date       `json:"date"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		FromAccount string          `json:"fromAccount"`
		ToAccount   Account         `json:"toAccount"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*e = AdjustmentLogEntry{
		ID:          orNewID(temp.ID),
		Date:        temp.Date,
		Description: temp.Description,
		Amount:      temp.Amount,
		FromAccount: temp.FromAccount,
		ToAccount:   temp.ToAccount,
	}
	return nil
}

// nonNil returns an empty slice in place of nil so lists always encode as [].
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("bank", s.Bank)
	w.Append("cashReserve", s.CashReserve)
	w.Append("dailyAllowance", s.DailyAllowance)
	w.Append("setAsideAllowances", s.SetAsideAllowances)
	w.Append("setAsideMonthly", s.SetAsideMonthly)
	w.Append("monthlyEarmarks", nonNil(s.MonthlyEarmarks))
	w.Append("customBuckets", nonNil(s.CustomBuckets))
	w.Append("mainSavings", s.MainSavings)
	w.Append("dailyLogs", nonNil(s.DailyLogs))
	w.Append("cashReserveLogs", nonNil(s.CashReserveLogs))
	w.Append("adjustmentLogs", nonNil(s.AdjustmentLogs))
	return w.MarshalJSON()
}

// UnmarshalJSON defaults the daily allowance to DefaultDailyAllowance and
// recomputes the allowance difference of days saved without one.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var temp struct {
		Bank               decimal.Decimal       `json:"bank"`
		CashReserve        decimal.Decimal       `json:"cashReserve"`
		DailyAllowance     *decimal.Decimal      `json:"dailyAllowance"`
		SetAsideAllowances decimal.Decimal       `json:"setAsideAllowances"`
		SetAsideMonthly    decimal.Decimal       `json:"setAsideMonthly"`
		MonthlyEarmarks    []MonthlyEarmark      `json:"monthlyEarmarks"`
		CustomBuckets      []CustomBucket        `json:"customBuckets"`
		MainSavings        decimal.Decimal       `json:"mainSavings"`
		DailyLogs          []dailyLogEntryJSON   `json:"dailyLogs"`
		CashReserveLogs    []CashReserveLogEntry `json:"cashReserveLogs"`
		AdjustmentLogs     []AdjustmentLogEntry  `json:"adjustmentLogs"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*s = Snapshot{
		Bank:               temp.Bank,
		CashReserve:        temp.CashReserve,
		DailyAllowance:     DefaultDailyAllowance,
		SetAsideAllowances: temp.SetAsideAllowances,
		SetAsideMonthly:    temp.SetAsideMonthly,
		MonthlyEarmarks:    nonNil(temp.MonthlyEarmarks),
		CustomBuckets:      nonNil(temp.CustomBuckets),
		MainSavings:        temp.MainSavings,
		DailyLogs:          make([]DailyLogEntry, 0, len(temp.DailyLogs)),
		CashReserveLogs:    nonNil(temp.CashReserveLogs),
		AdjustmentLogs:     nonNil(temp.AdjustmentLogs),
	}
	if temp.DailyAllowance != nil {
		s.DailyAllowance = *temp.DailyAllowance
	}
	for _, j := range temp.DailyLogs {
		e := j.entry()
		if j.AllowanceDiff == nil {
			e.AllowanceDiff = s.DailyAllowance.Sub(e.bankSpending())
		}
		s.DailyLogs = append(s.DailyLogs, e)
	}
	return nil
}

// EncodeSnapshot writes s as a single JSON document followed by a newline.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot written by EncodeSnapshot.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	s := NewSnapshot()
	if err := json.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return s, nil
}
