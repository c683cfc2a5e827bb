package renderer

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/etnz/drip"
	"github.com/etnz/drip/date"
	md "github.com/nao1215/markdown"
)

// LogsMarkdown renders the expenses, transfers and adjustments logged within r.
// Sections with nothing logged are left out.
func LogsMarkdown(s *drip.Snapshot, r date.Range, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Logs %s", r))

	logs := slices.Clone(s.DailyLogs)
	slices.SortStableFunc(logs, func(a, b drip.DailyLogEntry) int { return compareDates(a.Date, b.Date) })
	expenses := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Date", "Description", "Source", "Amount", "Id"},
	}
	for _, e := range logs {
		if !r.Contains(e.Date) {
			continue
		}
		for _, it := range e.Items {
			expenses.Rows = append(expenses.Rows, []string{e.Date.String(), it.Description, it.Source.String(), M(it.Amount, currency).String(), it.ID.String()})
		}
		expenses.Rows = append(expenses.Rows, []string{"", md.Italic("left of allowance"), "", M(e.AllowanceDiff, currency).SignedString(), ""})
	}

	transfers := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Date", "Description", "Type", "Amount", "Id"},
	}
	for _, e := range s.CashReserveLogs {
		if r.Contains(e.Date) {
			transfers.Rows = append(transfers.Rows, []string{e.Date.String(), e.Description, e.Type.String(), M(e.Amount, currency).String(), e.ID.String()})
		}
	}

	adjustments := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Date", "Description", "From", "To", "Amount", "Id"},
	}
	for _, e := range s.AdjustmentLogs {
		if r.Contains(e.Date) {
			adjustments.Rows = append(adjustments.Rows, []string{e.Date.String(), e.Description, e.FromAccount, e.ToAccount.String(), M(e.Amount, currency).SignedString(), e.ID.String()})
		}
	}

	sections := []struct {
		title string
		table md.TableSet
	}{
		{"Expenses", expenses},
		{"Cash Transfers", transfers},
		{"Adjustments", adjustments},
	}
	empty := true
	for _, sec := range sections {
		if len(sec.table.Rows) == 0 {
			continue
		}
		empty = false
		doc.H2(sec.title)
		doc.Table(sec.table)
	}
	if empty {
		doc.PlainText("Nothing logged in this period.")
	}
	return doc.String()
}

func compareDates(a, b date.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
