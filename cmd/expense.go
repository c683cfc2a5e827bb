package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/drip"
	"github.com/google/subcommands"
)

type expenseCmd struct {
	date        string
	amount      string
	description string
	source      string
	fromSavings bool
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "log an expense" }
func (*expenseCmd) Usage() string {
	return `dripctl expense -a <amount> [-m <description>] [-s bank|cash|savings] [-from-savings] [-d <day>]

  Logs an expense on a day. Bank expenses count against the daily allowance,
  cash and savings expenses do not.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "day of the expense (YYYY-MM-DD or -Nd), defaults to today")
	f.StringVar(&c.amount, "a", "", "amount spent, positive")
	f.StringVar(&c.description, "m", "", "description")
	f.StringVar(&c.source, "s", "bank", "source of the money: bank, cash or savings")
	f.BoolVar(&c.fromSavings, "from-savings", false, "also take it out of main savings")
}

func (c *expenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		return usageError(err)
	}
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		return usageError(err)
	}
	source, err := drip.ParseExpenseSource(c.source)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		id, err := s.AddExpense(amount, c.description, on, source, c.fromSavings)
		if err != nil {
			return err
		}
		fmt.Printf("Logged expense %s, %s left to spend on %s\n", id, money(s.RemainingDailyAllowance(on)), on)
		return nil
	})
}

type editExpenseCmd struct {
	day         string
	id          string
	amount      string
	description string
	source      string
}

func (*editExpenseCmd) Name() string     { return "edit-expense" }
func (*editExpenseCmd) Synopsis() string { return "change a logged expense" }
func (*editExpenseCmd) Usage() string {
	return `dripctl edit-expense -day <day> -id <id> -a <amount> [-m <description>] [-s bank|cash|savings]

  Replaces a logged expense. The old amount goes back to its source and the
  new amount is paid from the new source.
`
}

func (c *editExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "day", "", "day the expense was logged on")
	f.StringVar(&c.id, "id", "", "identity of the expense, see dripctl logs")
	f.StringVar(&c.amount, "a", "", "new amount, positive")
	f.StringVar(&c.description, "m", "", "new description")
	f.StringVar(&c.source, "s", "bank", "new source: bank, cash or savings")
}

func (c *editExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.day)
	if err != nil {
		return usageError(err)
	}
	id, err := parseID("id", c.id)
	if err != nil {
		return usageError(err)
	}
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		return usageError(err)
	}
	source, err := drip.ParseExpenseSource(c.source)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		return s.EditExpense(day, id, amount, c.description, source, today())
	})
}

type deleteExpenseCmd struct {
	day string
	id  string
}

func (*deleteExpenseCmd) Name() string     { return "delete-expense" }
func (*deleteExpenseCmd) Synopsis() string { return "delete a logged expense and refund it" }
func (*deleteExpenseCmd) Usage() string {
	return `dripctl delete-expense -day <day> -id <id>
`
}

func (c *deleteExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "day", "", "day the expense was logged on")
	f.StringVar(&c.id, "id", "", "identity of the expense, see dripctl logs")
}

func (c *deleteExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.day)
	if err != nil {
		return usageError(err)
	}
	id, err := parseID("id", c.id)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		s.DeleteExpense(day, id, today())
		return nil
	})
}

type incomeCmd struct {
	date        string
	amount      string
	description string
	asSavings   bool
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "credit the bank" }
func (*incomeCmd) Usage() string {
	return `dripctl income -a <amount> [-m <description>] [-as-savings] [-d <day>]
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "day of the income, defaults to today")
	f.StringVar(&c.amount, "a", "", "amount received, positive")
	f.StringVar(&c.description, "m", "", "description")
	f.BoolVar(&c.asSavings, "as-savings", false, "also credit main savings")
}

func (c *incomeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.date)
	if err != nil {
		return usageError(err)
	}
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		return s.AddIncome(amount, c.description, on, c.asSavings)
	})
}

type allowanceCmd struct {
	amount string
}

func (*allowanceCmd) Name() string     { return "allowance" }
func (*allowanceCmd) Synopsis() string { return "change the daily allowance" }
func (*allowanceCmd) Usage() string {
	return `dripctl allowance -a <amount>

  Sets the daily allowance. Every logged day and the allowances bucket are
  recomputed with the new value.
`
}

func (c *allowanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "new daily allowance")
}

func (c *allowanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		return s.SetDailyAllowance(amount, today())
	})
}
