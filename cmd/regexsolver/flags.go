package main

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
)

// Options holds the parsed command-line flags.
//
// Grounded on projectdiscovery-alterx's internal/runner.Options +
// ParseFlags: a flat struct filled by goflags groups.
type Options struct {
	RulesFile     string
	Generate      int
	MaxStates     int
	MaxTerms      int
	TimeoutSecond int
	Verbose       bool
}

func parseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Combine regular expressions algebraically from a rule file.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.RulesFile, "rules", "r", "", "YAML rule file naming patterns and the operation to combine them with"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.IntVarP(&opts.Generate, "generate", "g", 0, "generate this many sample strings from the result instead of printing its pattern"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
	)

	flagSet.CreateGroup("limits", "Limits",
		flagSet.IntVar(&opts.MaxStates, "max-states", 8192, "maximum automaton states an operation may build"),
		flagSet.IntVar(&opts.MaxTerms, "max-terms", 50, "maximum operands a single operation may combine"),
		flagSet.IntVar(&opts.TimeoutSecond, "timeout", 0, "abort an operation after this many seconds (0 disables the timeout)"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	if opts.RulesFile == "" {
		gologger.Fatal().Msgf("regexsolver: -rules is required")
	}

	return opts
}
