package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/yihsuan/ozpocket/cmd"
)

// completion describes the command tree for shell completion. It runs
// before flag parsing and exits when invoked by the shell.
func completion() {
	cashFlags := map[string]complete.Predictor{
		"c": predict.Set{"AUD", "TWD", "USD"},
		"d": predict.Something,
	}
	complete.Complete("ozp", &complete.Command{
		Sub: map[string]*complete.Command{
			"income":   {Flags: cashFlags},
			"expense":  {Flags: cashFlags},
			"invest":   {Flags: cashFlags},
			"exchange": {Flags: map[string]complete.Predictor{
				"amount":  predict.Something,
				"from":    predict.Set{"AUD", "TWD", "USD"},
				"to":      predict.Set{"AUD", "TWD", "USD"},
				"preview": predict.Nothing,
			}},
			"delete":   {Args: predict.Something},
			"tx":       {Flags: map[string]complete.Predictor{"head": predict.Something, "tail": predict.Something}},
			"summary":  {Flags: map[string]complete.Predictor{"refresh": predict.Nothing}},
			"holdings": {},
			"watch":    {Flags: map[string]complete.Predictor{"interval": predict.Something}},
			"export":   {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"workday":  {Flags: map[string]complete.Predictor{"undo": predict.Nothing, "log": predict.Nothing}},
			"rates":    {Flags: map[string]complete.Predictor{"refresh": predict.Nothing}},
			"settings": {Flags: map[string]complete.Predictor{"dark": predict.Set{"on", "off"}, "weekly-budget": predict.Something}},
			"backup":   {},
			"restore":  {Args: predict.Files("*.json")},
			"reset":    {Flags: map[string]complete.Predictor{"f": predict.Nothing}},
			"topic":    {Args: predict.Set{"readme", "exchange", "visa", "backup", "rates"}},
			"help":     {},
		},
		Flags: map[string]complete.Predictor{
			"snapshot-file": predict.Files("*.json"),
			"rate-url":      predict.Something,
		},
	})
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
