package cmd

import (
	"flag"

	"github.com/etnz/drip/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors suggests values for flags sharing a name across commands.
var flagPredictors = map[string]complete.Predictor{
	"s":    predict.Set{"bank", "cash", "savings"},
	"from": predict.Set{"bank", "cash", "savings"},
	"to":   predict.Set{"bank", "cash", "savings", "MainSavings", "Bucket:"},
	"t":    predict.Set{"withdraw", "deposit"},
	"p":    predict.Set{"day", "week", "month", "year"},
	"d":    predict.Set{"0d", "-1d", "-2d"},
	"day":  predict.Set{"0d", "-1d", "-2d"},
}

// Completion describes dripctl for shell completion: global flags, every
// subcommand and its flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagsOf(flag.CommandLine),
	}
	for _, e := range Commands {
		fs := flag.NewFlagSet(e.Command.Name(), flag.ContinueOnError)
		e.Command.SetFlags(fs)
		sub := &complete.Command{Flags: flagsOf(fs)}
		if e.Command.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(append(topics, "*"))
		}
		root.Sub[e.Command.Name()] = sub
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(commandNames())}
	return root
}

func flagsOf(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

func commandNames() []string {
	names := make([]string, 0, len(Commands))
	for _, e := range Commands {
		names = append(names, e.Command.Name())
	}
	return names
}
