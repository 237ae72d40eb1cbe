package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/finstat/finstat/cmd"
)

// completion describes the CLI for shell completion. Calling Complete early
// makes `fst` answer completion requests and exit before any flag parsing.
func completion() {
	fileFlags := map[string]complete.Predictor{
		"accounts-file": predict.Files("*.hjson"),
	}
	reportFlags := map[string]complete.Predictor{
		"currency":  predict.Set{"USD", "EUR", "GBP", "INR", "CNY"},
		"scale":     predict.Something,
		"quarterly": predict.Nothing,
	}
	rateFlags := map[string]complete.Predictor{
		"corporate-tax":    predict.Something,
		"gross-profit-tax": predict.Something,
		"revenue-tax":      predict.Something,
		"w":                predict.Nothing,
	}
	merge := func(ms ...map[string]complete.Predictor) map[string]complete.Predictor {
		out := make(map[string]complete.Predictor)
		for _, m := range ms {
			for k, v := range m {
				out[k] = v
			}
		}
		return out
	}
	c := &complete.Command{
		Flags: fileFlags,
		Sub: map[string]*complete.Command{
			"table":      {Flags: reportFlags},
			"commonsize": {Flags: reportFlags},
			"check":      {},
			"cashflow":   {Flags: merge(reportFlags, rateFlags)},
			"tax":        {Flags: merge(reportFlags, rateFlags)},
			"fmt":        {},
			"topic":      {Args: predict.Set{"readme", "accounts", "statements", "cashflow", "*"}},
		},
	}
	c.Complete("fst")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
