package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/drip"
	"github.com/etnz/drip/date"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// StatusMarkdown renders where the money is and how it is allocated on that day.
func StatusMarkdown(s *drip.Snapshot, on date.Date, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	m := func(v decimal.Decimal) string { return M(v, currency).String() }

	doc.H1(fmt.Sprintf("Drip on %s", on))

	remaining := s.RemainingDailyAllowance(on)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Left to spend today"), md.Bold(m(remaining))},
		Rows: [][]string{
			{"Daily allowance", m(s.DailyAllowance)},
		},
	})

	doc.H2("Funds")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Account", "Balance"},
		Rows: [][]string{
			{"Bank", m(s.Bank)},
			{"Cash reserve", m(s.CashReserve)},
			{md.Bold("Actual funds"), md.Bold(m(s.ActualFunds()))},
		},
	})

	doc.H2("Buckets")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Bucket", "Amount"},
		Rows: [][]string{
			{fmt.Sprintf("Allowances (%d days)", drip.RemainingDaysInMonth(on)), m(s.SetAsideAllowances)},
			{"Monthly earmarks", m(s.SetAsideMonthly)},
			{"Custom buckets", m(s.CustomBucketsTotal())},
			{"Main savings", m(s.MainSavings)},
			{md.Bold("Total"), md.Bold(m(s.TotalBuckets()))},
		},
	})
	if s.NeedsReconciliation() {
		doc.PlainText(fmt.Sprintf("%s buckets are off by %s, run `dripctl reconcile`.",
			md.Bold("Needs reconciliation:"), M(s.ReconciliationDelta(), currency).SignedString()))
	}

	if len(s.MonthlyEarmarks) > 0 {
		doc.H2("Monthly Earmarks")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Name", "Amount", "Status", "Id"},
		}
		for _, e := range s.MonthlyEarmarks {
			table.Rows = append(table.Rows, []string{e.Name, m(e.Amount), earmarkStatus(e), e.ID.String()})
		}
		doc.Table(table)
	}

	if len(s.CustomBuckets) > 0 {
		doc.H2("Custom Buckets")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Name", "Amount", "Id"},
		}
		for _, b := range s.CustomBuckets {
			table.Rows = append(table.Rows, []string{b.Name, m(b.Amount), b.ID.String()})
		}
		doc.Table(table)
	}

	return doc.String()
}

func earmarkStatus(e drip.MonthlyEarmark) string {
	switch {
	case !e.IsActive:
		return "inactive"
	case e.IsPaid && !e.PaidOn.IsZero():
		return "paid on " + e.PaidOn.String()
	case e.IsPaid:
		return "paid"
	default:
		return "due"
	}
}
