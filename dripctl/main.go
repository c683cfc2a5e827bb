// Command dripctl keeps a personal daily allowance ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/drip/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("dripctl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if flag.NArg() > 0 && !isRegistered(commander, flag.Arg(0)) {
		if ok, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(cmd.NewContext(context.Background()))))
}

func isRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
