package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/etnz/drip"
	"github.com/etnz/drip/date"
	"github.com/etnz/drip/logger"
	"github.com/etnz/drip/renderer"
	"github.com/google/subcommands"
)

type reportTask struct {
	Period date.Range
	Report string
}

type exportCmd struct {
	outputDir      string
	frontMatterTpl string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the logs of every month and year as markdown files" }
func (*exportCmd) Usage() string {
	return `dripctl export [-o <dir>] [-frontmatter <file>]

  Writes a logs report for every month and every year since the first log,
  in a tree like <dir>/logs/monthly/2025-10.md. The front matter template
  receives .Report and .Period.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger.FromContext(ctx)
	var frontMatterTpl *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatterTpl, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	s, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	start := oldestLog(s)
	if start.IsZero() {
		fmt.Println("Nothing logged, nothing to export.")
		return subcommands.ExitSuccess
	}

	for _, period := range generatePeriods(start, today()) {
		task := reportTask{Period: period, Report: "logs"}
		md := renderer.LogsMarkdown(s, period, *currency)
		if frontMatterTpl != nil {
			fm, err := renderFrontMatter(frontMatterTpl, task)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to render front matter for %s: %v\n", period.Identifier(), err)
				continue
			}
			md = fm + "\n" + md
		}

		filePath := path.Join(task.Report, period.Name(), period.Identifier()+".md")
		fullPath := filepath.Join(c.outputDir, filePath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output directory for file %s: %v\n", filePath, err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(fullPath, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write file %s: %v\n", filePath, err)
			return subcommands.ExitFailure
		}
		log.Info("generated report", "report", task.Report, "period", period.Identifier())
	}
	return subcommands.ExitSuccess
}

// oldestLog is the first day anything was logged, zero when nothing was.
func oldestLog(s *drip.Snapshot) date.Date {
	var oldest date.Date
	visit := func(d date.Date) {
		if oldest.IsZero() || d.Before(oldest) {
			oldest = d
		}
	}
	for _, e := range s.DailyLogs {
		visit(e.Date)
	}
	for _, e := range s.CashReserveLogs {
		visit(e.Date)
	}
	for _, e := range s.AdjustmentLogs {
		visit(e.Date)
	}
	return oldest
}

// generatePeriods lists the months and years from start to end, both included.
func generatePeriods(start, end date.Date) []date.Range {
	if start.IsZero() || start.After(end) {
		return nil
	}
	var ranges []date.Range
	for _, p := range []date.Period{date.Monthly, date.Yearly} {
		for r := date.NewRange(start, p); !r.From.After(end); r = date.NewRange(r.To.Add(1), p) {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

func renderFrontMatter(tpl *template.Template, task reportTask) (string, error) {
	var fmBuffer bytes.Buffer
	if err := tpl.Execute(&fmBuffer, task); err != nil {
		return "", err
	}
	return fmBuffer.String(), nil
}
