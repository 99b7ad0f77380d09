// Command regexsolver combines regular expressions algebraically from a
// YAML rule file, printing either the resulting pattern or sample
// strings it matches.
//
// Grounded on projectdiscovery-alterx's cmd/alterx/main.go: a thin
// main() delegating flag parsing and logging to gologger, with the
// actual work done by a library package (here, engine).
package main

import (
	"context"
	"time"

	"github.com/RegexSolver/regexsolver/config"
	"github.com/RegexSolver/regexsolver/engine"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

func main() {
	opts := parseFlags()
	if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	rules, err := loadRuleFile(opts.RulesFile)
	if err != nil {
		gologger.Fatal().Msgf("failed to read rule file %v: %v", opts.RulesFile, err)
	}
	if err := rules.validate(); err != nil {
		gologger.Fatal().Msgf("invalid rule file %v: %v", opts.RulesFile, err)
	}

	profile := config.ExecutionProfile{MaxStates: opts.MaxStates, MaxTerms: opts.MaxTerms}
	if opts.TimeoutSecond > 0 {
		profile = profile.WithTimeout(time.Duration(opts.TimeoutSecond) * time.Second)
	}
	ctx := config.WithProfile(context.Background(), profile)

	result, err := runOperation(ctx, rules)
	if err != nil {
		gologger.Fatal().Msgf("operation %v failed: %v", rules.Operation, err)
	}

	if opts.Generate > 0 {
		strings, err := result.GenerateStrings(ctx, opts.Generate)
		if err != nil {
			gologger.Fatal().Msgf("failed to generate strings: %v", err)
		}
		for _, s := range strings {
			gologger.Print().Msgf("%s", s)
		}
		return
	}

	switch result.Kind {
	case engine.KindRegex:
		gologger.Print().Msgf("%s", result.Regex.String())
	default:
		details, err := result.GetDetails()
		if err != nil {
			gologger.Fatal().Msgf("failed to inspect result: %v", err)
		}
		gologger.Info().Msgf("result has no compact regex form (cardinality=%v)", details.Cardinality)
	}
}

// runOperation builds a Term per named pattern referenced by rules and
// combines them with the requested operation.
func runOperation(ctx context.Context, rules *RuleFile) (engine.Term, error) {
	terms := make([]engine.Term, len(rules.Operands))
	for i, name := range rules.Operands {
		term, err := engine.FromRegex(rules.Patterns[name])
		if err != nil {
			return engine.Term{}, err
		}
		terms[i] = term
	}

	head, rest := terms[0], terms[1:]
	switch rules.Operation {
	case "union":
		return head.Union(ctx, rest)
	case "intersection":
		return head.Intersection(ctx, rest)
	case "subtraction":
		return head.Subtraction(ctx, terms[1])
	default:
		panic("regexsolver: unreachable, validate already checked Operation")
	}
}
