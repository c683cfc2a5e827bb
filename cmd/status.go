package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/drip/renderer"
	"github.com/google/subcommands"
)

type statusCmd struct {
	date string
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show funds, buckets and what is left to spend" }
func (*statusCmd) Usage() string {
	return `dripctl status [-d <day>]
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "reference day, defaults to today")
}

func (c *statusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		return usageError(err)
	}
	s, err := loadSnapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StatusMarkdown(s, on, *currency))
	return subcommands.ExitSuccess
}
