package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/etnz/drip"
	"github.com/etnz/drip/date"
	"github.com/google/subcommands"
)

func TestGeneratePeriods(t *testing.T) {
	tests := []struct {
		name        string
		start, end  date.Date
		wantMonthly int
		wantYearly  int
	}{
		{"nothing logged", date.Date{}, date.New(2025, 10, 20), 0, 0},
		{"single day", date.New(2025, 8, 15), date.New(2025, 8, 15), 1, 1},
		{"cross-year boundary", date.New(2024, 12, 15), date.New(2025, 1, 15), 2, 2},
		{"full year", date.New(2023, 1, 1), date.New(2023, 12, 31), 12, 1},
		{"start after end", date.New(2025, 2, 1), date.New(2025, 1, 1), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var monthly, yearly int
			for _, r := range generatePeriods(tt.start, tt.end) {
				switch r.Name() {
				case "monthly":
					monthly++
				case "yearly":
					yearly++
				default:
					t.Errorf("unexpected period %v", r)
				}
			}
			if monthly != tt.wantMonthly {
				t.Errorf("generatePeriods() got %d monthly ranges, want %d", monthly, tt.wantMonthly)
			}
			if yearly != tt.wantYearly {
				t.Errorf("generatePeriods() got %d yearly ranges, want %d", yearly, tt.wantYearly)
			}
		})
	}
}

func TestRenderFrontMatter(t *testing.T) {
	task := reportTask{Report: "logs", Period: date.NewRange(date.New(2025, 10, 20), date.Monthly)}
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"basic template", "---\ntitle: {{.Report}} for {{.Period.Identifier}}\n---", "---\ntitle: logs for 2025-10\n---"},
		{"api", "{{.Period.From}} {{.Period.To}} {{.Period.Name}}", "2025-10-01 2025-10-31 monthly"},
		{"empty template", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := template.Must(template.New("fm").Parse(tt.template))
			got, err := renderFrontMatter(tpl, task)
			if err != nil {
				t.Fatalf("renderFrontMatter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("renderFrontMatter() = %q, want %q", got, tt.want)
			}
		})
	}

	bad := template.Must(template.New("fm").Parse("{{.Missing}}"))
	if _, err := renderFrontMatter(bad, task); err == nil {
		t.Error("renderFrontMatter() with an unknown field should fail")
	}
}

func TestOldestLog(t *testing.T) {
	s := drip.NewSnapshot()
	if got := oldestLog(s); !got.IsZero() {
		t.Errorf("oldestLog() of an empty ledger = %v, want zero", got)
	}
	if _, err := s.AddExpense(drip.D(5), "tea", date.New(2025, 10, 3), drip.SourceBank, false); err != nil {
		t.Fatal(err)
	}
	if _, err := s.WithdrawCash(drip.D(50), "atm", date.New(2025, 9, 28)); err != nil {
		t.Fatal(err)
	}
	if got, want := oldestLog(s), date.New(2025, 9, 28); got != want {
		t.Errorf("oldestLog() = %v, want %v", got, want)
	}
}

func TestExportCmd(t *testing.T) {
	useTempStore(t)
	ctx := testContext()
	mutate(ctx, func(s *drip.Snapshot) error {
		_, err := s.AddExpense(drip.D(12), "lunch", date.New(2025, 10, 2), drip.SourceBank, false)
		return err
	})

	out := t.TempDir()
	c := &exportCmd{outputDir: out}
	if got := c.Execute(ctx, flag.NewFlagSet("export", flag.ContinueOnError)); got != subcommands.ExitSuccess {
		t.Fatalf("export = %v, want success", got)
	}
	data, err := os.ReadFile(filepath.Join(out, "logs", "monthly", "2025-10.md"))
	if err != nil {
		t.Fatalf("monthly report missing: %v", err)
	}
	if !strings.Contains(string(data), "lunch") {
		t.Errorf("monthly report does not list the expense:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(out, "logs", "yearly", "2025.md")); err != nil {
		t.Errorf("yearly report missing: %v", err)
	}
}
