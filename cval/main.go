// Command cval is a calculator for commodity values.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/commodity/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Self-completing binary: when invoked by the shell for completion
	// this call prints candidates and exits.
	completion().Complete("cval")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	commander.Register(commander.CommandsCommand(), "documentation")
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.Configure(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitFailure))
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// completion mirrors the registered commands and their flags.
func completion() *complete.Command {
	topics := predict.Set{"readme", "amounts", "balances", "precision", "commodities", "*"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"debug": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"eval": {Flags: map[string]complete.Predictor{
				"full":  predict.Nothing,
				"exact": predict.Nothing,
			}},
			"sum": {
				Flags: map[string]complete.Predictor{
					"p":     predict.Something,
					"full":  predict.Nothing,
					"exact": predict.Nothing,
				},
				Args: predict.Files("*.json"),
			},
			"fmt": {Flags: map[string]complete.Predictor{
				"full": predict.Nothing,
				"json": predict.Nothing,
			}},
			"commodities": {Flags: map[string]complete.Predictor{
				"iso": predict.Something,
			}},
			"topic": {Args: topics},
		},
	}
}
