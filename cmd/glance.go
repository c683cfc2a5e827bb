package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/drip/date"
	"github.com/etnz/drip/glance"
	"github.com/etnz/drip/renderer"
	"github.com/google/subcommands"
)

type glanceCmd struct {
	date  string
	watch bool
}

func (*glanceCmd) Name() string     { return "glance" }
func (*glanceCmd) Synopsis() string { return "show what widgets see in the shared directory" }
func (*glanceCmd) Usage() string {
	return `dripctl -shared <dir> glance [-d <day>] [-w]

  Reads the snapshot last published in the shared directory, the way a home
  screen widget does. With -w it refreshes until interrupted.
`
}

func (c *glanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "day to show, defaults to today")
	f.BoolVar(&c.watch, "w", false, fmt.Sprintf("refresh every %v", glance.RefreshInterval))
}

func (c *glanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if *sharedDir == "" {
		return usageError(fmt.Errorf("-shared or %s is required", EnvSharedDir))
	}
	r := glance.Reader{Root: *sharedDir}
	if !c.watch {
		on, err := parseDay(c.date)
		if err != nil {
			return usageError(err)
		}
		printMarkdown(renderer.GlanceMarkdown(r.Read(ctx, on), *currency))
		return subcommands.ExitSuccess
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	day := today
	if c.date != "" {
		on, err := parseDay(c.date)
		if err != nil {
			return usageError(err)
		}
		day = func() date.Date { return on }
	}
	glance.Watch(ctx, r, day, glance.RefreshInterval, func(v glance.View) {
		printMarkdown(renderer.GlanceMarkdown(v, *currency))
	})
	return subcommands.ExitSuccess
}
