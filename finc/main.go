// finc is a command line financial calculator: rates, time value of money,
// loans and investment appraisal.
//
// Run 'finc topic' for the documentation.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finmath/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	completion(name).Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line for shell completion. Install it
// with COMP_INSTALL=1 finc.
func completion(name string) *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"config":    predict.Or(predict.Files("*.yaml"), predict.Files("*.yml"), predict.Files("*.toml")),
			"currency":  predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"markdown":  predict.Nothing,
		},
	}
	for _, c := range cmd.Commands() {
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			switch f.Name {
			case "file":
				sub.Flags[f.Name] = predict.Files("*")
			default:
				sub.Flags[f.Name] = predict.Something
			}
		})
		root.Sub[c.Name()] = sub
	}
	return root
}
