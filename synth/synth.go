package synth

import (
	"context"

	"github.com/RegexSolver/regexsolver/analyze"
	"github.com/RegexSolver/regexsolver/automaton"
	"github.com/RegexSolver/regexsolver/config"
	"github.com/RegexSolver/regexsolver/generate"
	"github.com/RegexSolver/regexsolver/rast"
	"github.com/coregx/ahocorasick"
)

// ToRegex attempts to synthesize a rast.Regex equivalent to a by state
// elimination. It returns (nil, nil) — not an error — when no regex
// could be found: the shape-recognition walk gave up, or the candidate
// it built turned out not to be equivalent to a. Callers are expected to
// fall back to keeping a in automaton form.
//
// Grounded on FastAutomaton::to_regex.
func ToRegex(ctx context.Context, a *automaton.NFA) (*rast.Regex, error) {
	if a.IsEmpty() {
		return rast.NewEmpty(), nil
	}

	profile := config.ProfileFrom(ctx)
	if err := profile.CheckTimeout(); err != nil {
		return nil, err
	}

	graph, err := newStateEliminationFrom(a)
	if err != nil {
		return nil, err
	}
	if graph == nil {
		return rast.NewEmpty(), nil
	}

	regex, err := graph.convertToRegex(ctx)
	if err != nil {
		return nil, err
	}
	if regex == nil {
		return nil, nil
	}

	candidate, err := regex.ToAutomaton(ctx)
	if err != nil {
		return nil, nil
	}

	if ok, fastCheckRan := quickRejectByLiterals(ctx, a, regex, candidate); fastCheckRan && !ok {
		return nil, nil
	}

	equivalent, err := analyze.IsEquivalent(ctx, a, candidate)
	if err != nil {
		return nil, err
	}
	if !equivalent {
		return nil, nil
	}
	return regex, nil
}

// quickRejectByLiterals is a cheap pre-check run before the full
// equivalence test: when the candidate regex is an alternation with
// enough literal branches to be worth batching, it builds an
// Aho-Corasick automaton over those literals and checks that every
// sample string generate.Strings can pull from a contains at least one
// branch's literal. ran is false when the shape doesn't apply (too few
// literals, or any non-literal branch), in which case the caller must
// not trust ok and should go straight to the full equivalence check.
func quickRejectByLiterals(ctx context.Context, a *automaton.NFA, regex *rast.Regex, candidate *automaton.NFA) (ok, ran bool) {
	const minLiteralBranches = 8

	literals, isPureLiteralAlternation := extractLiteralBranches(regex)
	if !isPureLiteralAlternation || len(literals) < minLiteralBranches {
		return false, false
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	matcher, err := builder.Build()
	if err != nil {
		return false, false
	}

	samples, err := generate.Strings(ctx, a, 64)
	if err != nil {
		return false, false
	}
	for s := range samples {
		if !matcher.IsMatch([]byte(s)) {
			return false, true
		}
	}
	return true, true
}

// extractLiteralBranches returns the literal strings an alternation's
// branches spell out, and whether every branch was a plain literal
// (single-rune-per-position concat, no repetition or character class
// wider than one code point).
func extractLiteralBranches(r *rast.Regex) ([]string, bool) {
	if r.Kind != rast.KindAlternation {
		return nil, false
	}
	out := make([]string, 0, len(r.Elems))
	for _, elem := range r.Elems {
		lit, ok := literalString(elem)
		if !ok {
			return nil, false
		}
		out = append(out, lit)
	}
	return out, true
}

func literalString(r *rast.Regex) (string, bool) {
	switch r.Kind {
	case rast.KindCharacter:
		if len(r.Range) != 1 || r.Range[0].Lo != r.Range[0].Hi {
			return "", false
		}
		return string(r.Range[0].Lo), true
	case rast.KindConcat:
		var b []rune
		for _, e := range r.Elems {
			s, ok := literalString(e)
			if !ok {
				return "", false
			}
			b = append(b, []rune(s)...)
		}
		return string(b), true
	default:
		return "", false
	}
}
