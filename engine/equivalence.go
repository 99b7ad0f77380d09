package engine

import (
	"context"
	"sort"

	"github.com/RegexSolver/regexsolver/analyze"
	"github.com/RegexSolver/regexsolver/generate"
)

// GenerateStrings returns up to count strings matched by t.
//
// Example:
//
//	term, _ := engine.FromRegex("(abc|de){2}")
//	strings, _ := term.GenerateStrings(ctx, 3) // ["abcde", "deabc", "dede"]
func (t Term) GenerateStrings(ctx context.Context, count int) ([]string, error) {
	a, err := t.getAutomaton(ctx)
	if err != nil {
		return nil, err
	}
	set, err := generate.Strings(ctx, a, count)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

// AreEquivalent reports whether t and that match exactly the same set of
// strings.
//
// Example:
//
//	a, _ := engine.FromRegex("(abc|de)")
//	b, _ := engine.FromRegex("(abc|de)*")
//	equivalent, _ := a.AreEquivalent(ctx, b) // false
func (t Term) AreEquivalent(ctx context.Context, that Term) (bool, error) {
	if Equal(t, that) {
		return true, nil
	}

	a, err := t.getAutomaton(ctx)
	if err != nil {
		return false, err
	}
	b, err := that.getAutomaton(ctx)
	if err != nil {
		return false, err
	}
	return analyze.IsEquivalent(ctx, a, b)
}

// IsSubsetOf reports whether every string t matches is also matched by
// that.
//
// Example:
//
//	a, _ := engine.FromRegex("de")
//	b, _ := engine.FromRegex("(abc|de)")
//	subset, _ := a.IsSubsetOf(ctx, b) // true
func (t Term) IsSubsetOf(ctx context.Context, that Term) (bool, error) {
	if Equal(t, that) {
		return true, nil
	}

	a, err := t.getAutomaton(ctx)
	if err != nil {
		return false, err
	}
	b, err := that.getAutomaton(ctx)
	if err != nil {
		return false, err
	}
	return analyze.IsSubsetOf(ctx, a, b)
}
