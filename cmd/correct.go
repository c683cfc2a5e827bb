package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/drip"
	"github.com/google/subcommands"
)

// parseTarget parses the account a correction applies to.
func parseTarget(s string) (drip.Account, error) {
	switch s {
	case "bank":
		return drip.Bank, nil
	case "cash":
		return drip.Cash, nil
	case "savings":
		return drip.MainSavings, nil
	}
	return drip.Account{}, fmt.Errorf("unknown account %q, want bank, cash or savings", s)
}

type correctCmd struct {
	date        string
	amount      string
	description string
	to          string
}

func (*correctCmd) Name() string     { return "correct" }
func (*correctCmd) Synopsis() string { return "apply a signed correction to an account" }
func (*correctCmd) Usage() string {
	return `dripctl correct -a <signed amount> [-to bank|cash] [-m <description>] [-d <day>]

  Adds a signed amount to an account, for instance after checking the bank
  statement. The correction is logged with the adjustments.
`
}

func (c *correctCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "day of the correction, defaults to today")
	f.StringVar(&c.amount, "a", "", "signed amount")
	f.StringVar(&c.description, "m", "Manual correction", "description")
	f.StringVar(&c.to, "to", "bank", "account to correct: bank or cash")
}

func (c *correctCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		return usageError(err)
	}
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		return usageError(err)
	}
	to, err := parseTarget(c.to)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		_, err := s.ApplyCorrection(amount, c.description, to, on)
		return err
	})
}

type reconcileCmd struct {
	description string
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "move the reconciliation difference into main savings" }
func (*reconcileCmd) Usage() string {
	return `dripctl reconcile [-m <description>]

  When buckets and actual funds disagree by a cent or more, the whole
  difference goes to main savings and is logged.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "m", "Auto reconciliation", "description")
}

func (c *reconcileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := today()
	return mutate(ctx, func(s *drip.Snapshot) error {
		delta := s.ReconciliationDelta()
		if !s.AutoFixReconciliation(c.description, on) {
			fmt.Println("Already reconciled.")
			return nil
		}
		fmt.Printf("Moved %s into main savings.\n", signed(delta))
		return nil
	})
}

type editAdjustmentCmd struct {
	id          string
	amount      string
	description string
	to          string
}

func (*editAdjustmentCmd) Name() string     { return "edit-adjustment" }
func (*editAdjustmentCmd) Synopsis() string { return "change a logged correction" }
func (*editAdjustmentCmd) Usage() string {
	return `dripctl edit-adjustment -id <id> -a <signed amount> [-to bank|cash|savings] [-m <description>]
`
}

func (c *editAdjustmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "identity of the adjustment, see dripctl logs")
	f.StringVar(&c.amount, "a", "", "new signed amount")
	f.StringVar(&c.description, "m", "", "new description")
	f.StringVar(&c.to, "to", "bank", "new account: bank, cash or savings")
}

func (c *editAdjustmentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		return usageError(err)
	}
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		return usageError(err)
	}
	to, err := parseTarget(c.to)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		return s.EditAdjustmentLog(id, amount, c.description, to, today())
	})
}

type deleteAdjustmentCmd struct {
	id string
}

func (*deleteAdjustmentCmd) Name() string     { return "delete-adjustment" }
func (*deleteAdjustmentCmd) Synopsis() string { return "delete a logged adjustment and reverse it" }
func (*deleteAdjustmentCmd) Usage() string {
	return `dripctl delete-adjustment -id <id>
`
}

func (c *deleteAdjustmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "identity of the adjustment, see dripctl logs")
}

func (c *deleteAdjustmentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		s.DeleteAdjustmentLog(id, today())
		return nil
	})
}

type recalcCmd struct{}

func (*recalcCmd) Name() string     { return "recalc" }
func (*recalcCmd) Synopsis() string { return "recompute cached buckets and allowance differences" }
func (*recalcCmd) Usage() string {
	return `dripctl recalc
`
}

func (*recalcCmd) SetFlags(f *flag.FlagSet) {}

func (*recalcCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return mutate(ctx, func(s *drip.Snapshot) error {
		s.RecalculateAllAllowanceDiffs()
		s.RecalculateBuckets(today())
		return nil
	})
}
