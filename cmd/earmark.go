package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/drip"
	"github.com/google/subcommands"
)

type addEarmarkCmd struct {
	name   string
	amount string
	notes  string
	tag    string
}

func (*addEarmarkCmd) Name() string     { return "add-earmark" }
func (*addEarmarkCmd) Synopsis() string { return "set money aside for a monthly obligation" }
func (*addEarmarkCmd) Usage() string {
	return `dripctl add-earmark -n <name> -a <amount> [-notes <notes>] [-tag <tag>]

  Earmarks are recurring monthly obligations, like subscriptions or rent.
  Active and unpaid earmarks make up the monthly bucket.
`
}

func (c *addEarmarkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "name of the earmark")
	f.StringVar(&c.amount, "a", "", "monthly amount")
	f.StringVar(&c.notes, "notes", "", "free notes")
	f.StringVar(&c.tag, "tag", "", "where the money usually comes from")
}

func (c *addEarmarkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return usageError(fmt.Errorf("-n is required"))
	}
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		id, err := s.AddMonthlyEarmark(c.name, amount, c.notes, c.tag, today())
		if err != nil {
			return err
		}
		fmt.Printf("Added earmark %q %s\n", c.name, id)
		return nil
	})
}

type payEarmarkCmd struct {
	id     string
	amount string
	from   string
}

func (*payEarmarkCmd) Name() string     { return "pay-earmark" }
func (*payEarmarkCmd) Synopsis() string { return "mark a monthly earmark paid" }
func (*payEarmarkCmd) Usage() string {
	return `dripctl pay-earmark -id <id> -a <amount paid> [-from bank|cash|savings]

  Pays the earmark with the actual amount. What was earmarked but not spent
  goes to main savings, an overspend is taken from it.
`
}

func (c *payEarmarkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "identity of the earmark, see dripctl status")
	f.StringVar(&c.amount, "a", "", "actual amount paid")
	f.StringVar(&c.from, "from", "bank", "where the money came from: bank, cash or savings")
}

func (c *payEarmarkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		return usageError(err)
	}
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		return usageError(err)
	}
	from, err := drip.ParseExpenseSource(c.from)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		if _, ok := s.MonthlyEarmark(id); !ok {
			return fmt.Errorf("no earmark %s", id)
		}
		return s.MarkMonthlyEarmarkPaid(id, amount, from, today())
	})
}

type removeEarmarkCmd struct {
	id string
	to string
}

func (*removeEarmarkCmd) Name() string     { return "remove-earmark" }
func (*removeEarmarkCmd) Synopsis() string { return "remove a monthly earmark and reallocate it" }
func (*removeEarmarkCmd) Usage() string {
	return `dripctl remove-earmark -id <id> [-to savings|Bucket:<name>]
`
}

func (c *removeEarmarkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "identity of the earmark, see dripctl status")
	f.StringVar(&c.to, "to", "savings", "where the earmarked amount goes: savings or Bucket:<name>")
}

func (c *removeEarmarkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		return usageError(err)
	}
	to, err := drip.ParseAccount(c.to)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		return s.RemoveMonthlyEarmark(id, to, today())
	})
}
