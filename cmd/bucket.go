package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/drip"
	"github.com/google/subcommands"
)

type addBucketCmd struct {
	name   string
	amount string
}

func (*addBucketCmd) Name() string     { return "add-bucket" }
func (*addBucketCmd) Synopsis() string { return "create a named savings goal" }
func (*addBucketCmd) Usage() string {
	return `dripctl add-bucket -n <name> [-a <amount>]

  The amount of a custom bucket is taken from main savings.
`
}

func (c *addBucketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "name of the bucket")
	f.StringVar(&c.amount, "a", "0", "amount set aside")
}

func (c *addBucketCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return usageError(fmt.Errorf("-n is required"))
	}
	amount, err := parseAmount("a", c.amount)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		id, err := s.AddCustomBucket(c.name, amount, today())
		if err != nil {
			return err
		}
		fmt.Printf("Added bucket %q %s\n", c.name, id)
		return nil
	})
}

type removeBucketCmd struct {
	id string
}

func (*removeBucketCmd) Name() string     { return "remove-bucket" }
func (*removeBucketCmd) Synopsis() string { return "remove a custom bucket, its amount returns to main savings" }
func (*removeBucketCmd) Usage() string {
	return `dripctl remove-bucket -id <id>
`
}

func (c *removeBucketCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "identity of the bucket, see dripctl status")
}

func (c *removeBucketCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID("id", c.id)
	if err != nil {
		return usageError(err)
	}
	return mutate(ctx, func(s *drip.Snapshot) error {
		s.RemoveCustomBucket(id, today())
		return nil
	})
}
