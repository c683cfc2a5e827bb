package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/drip/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string {
	return "explain buckets, reconciliation, storage or glance"
}
func (*topicCmd) Usage() string {
	return `dripctl topic [<topic>...]

Show the documentation of drip topics, "*" shows them all:

  buckets         how actual funds split into allowances, earmarks, custom buckets and main savings
  reconciliation  corrections, reconcile and editing past logs
  storage         DRIP_STORE locations and how duplicate copies are merged
  glance          publishing to DRIP_SHARED_DIR, the glance command and serve

Without a topic, the list of topics is shown.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
