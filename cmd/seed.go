package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/drip"
	"github.com/google/subcommands"
)

type seedCmd struct {
	force bool
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "replace the ledger with a realistic sample" }
func (*seedCmd) Usage() string {
	return `dripctl seed [-force]

  Writes a sample ledger to try dripctl out. It refuses to overwrite a
  ledger that already holds logs unless -force is given.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "overwrite a ledger that is not empty")
}

func (c *seedCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(ctx, func(s *drip.Snapshot) error {
		if !c.force && !isEmpty(s) {
			return fmt.Errorf("the ledger is not empty, use -force to replace it")
		}
		*s = *drip.BaselineSeed()
		fmt.Fprintln(os.Stderr, "Seeded the ledger.")
		return nil
	})
}

func isEmpty(s *drip.Snapshot) bool {
	return len(s.DailyLogs) == 0 && len(s.CashReserveLogs) == 0 && len(s.AdjustmentLogs) == 0 &&
		len(s.MonthlyEarmarks) == 0 && len(s.CustomBuckets) == 0
}
