package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/drip"
	"github.com/google/subcommands"
)

// transferCmd moves money between the bank and the cash reserve, in the
// direction given by typ.
type transferCmd struct {
	typ         drip.TransferType
	date        string
	amount      string
	description string
}

func (c *transferCmd) Name() string { return c.typ.String() }
func (c *transferCmd) Synopsis() string {
	if c.typ == drip.Deposit {
		return "move cash back to the bank"
	}
	return "take cash out of the bank"
}
func (c *transferCmd) Usage() string {
	return fmt.Sprintf(`dripctl %s -a <amount> [-m <description>] [-d <day>]

  Logs a transfer between the bank and the cash reserve. Actual funds do not
  change, so no bucket does either.
`, c.typ)
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "day of the transfer, defaults to today")
	f.StringVar(&c.amount, "a", "", "amount transferred, positive")
	f.StringVar(&c.description, "m", "", "description")
}

func (c *transferCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		return usageError(err)
	}
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		var id drip.ID
		var err error
		if c.typ == drip.Deposit {
			id, err = s.DepositCash(amount, c.description, on)
		} else {
			id, err = s.WithdrawCash(amount, c.description, on)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Logged %s %s, cash reserve is now %s\n", c.typ, id, money(s.CashReserve))
		return nil
	})
}

type editTransferCmd struct {
	id          string
	amount      string
	description string
	typ         string
}

func (*editTransferCmd) Name() string     { return "edit-transfer" }
func (*editTransferCmd) Synopsis() string { return "change a logged cash transfer" }
func (*editTransferCmd) Usage() string {
	return `dripctl edit-transfer -id <id> -a <amount> [-m <description>] [-t withdraw|deposit]
`
}

func (c *editTransferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "identity of the transfer, see dripctl logs")
	f.StringVar(&c.amount, "a", "", "new amount, positive")
	f.StringVar(&c.description, "m", "", "new description")
	f.StringVar(&c.typ, "t", "withdraw", "new direction: withdraw or deposit")
}

func (c *editTransferCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		return usageError(err)
	}
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		return usageError(err)
	}
	typ, err := drip.ParseTransferType(c.typ)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		return s.EditCashReserveLog(id, amount, c.description, typ)
	})
}

type deleteTransferCmd struct {
	id string
}

func (*deleteTransferCmd) Name() string     { return "delete-transfer" }
func (*deleteTransferCmd) Synopsis() string { return "delete a logged cash transfer and reverse it" }
func (*deleteTransferCmd) Usage() string {
	return `dripctl delete-transfer -id <id>
`
}

func (c *deleteTransferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "identity of the transfer, see dripctl logs")
}

func (c *deleteTransferCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		s.DeleteCashReserveLog(id)
		return nil
	})
}
