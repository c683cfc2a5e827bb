package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/drip/date"
	"github.com/etnz/drip/renderer"
	"github.com/google/subcommands"
)

type logsCmd struct {
	date   string
	period string
}

func (*logsCmd) Name() string     { return "logs" }
func (*logsCmd) Synopsis() string { return "list expenses, transfers and adjustments of a period" }
func (*logsCmd) Usage() string {
	return `dripctl logs [-p day|week|month|year] [-d <day>]

  Lists everything logged in the period containing the day, with the
  identities used by the edit and delete commands.
`
}

func (c *logsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "a day within the period, defaults to today")
	f.StringVar(&c.period, "p", "month", "period: day, week, month or year")
}

func (c *logsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		return usageError(err)
	}
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		return usageError(err)
	}
	s, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LogsMarkdown(s, date.NewRange(on, p), *currency))
	return subcommands.ExitSuccess
}
