// Package engine implements Term, the algebra facade that lets a caller
// combine regular expressions and automata interchangeably: every
// operation lowers its operands to automaton form only when it actually
// needs to, and tries to lift the result back to a regex before handing
// it back.
//
// Grounded on original_source/src/lib.rs's Term/Details, styled after
// the teacher's root regex.go facade (Compile/MustCompile + method set).
package engine

import (
	"context"

	"github.com/RegexSolver/regexsolver/algebra"
	"github.com/RegexSolver/regexsolver/automaton"
	"github.com/RegexSolver/regexsolver/config"
	"github.com/RegexSolver/regexsolver/rast"
	"github.com/RegexSolver/regexsolver/rserr"
	"github.com/RegexSolver/regexsolver/synth"
)

// TermKind discriminates the two representations a Term may hold.
type TermKind int

const (
	KindRegex TermKind = iota
	KindAutomaton
)

// Term is either a regex AST or an automaton, manipulated through the
// same set of algebraic operations regardless of which form it's in.
//
// The zero value is not a valid Term; construct one with FromRegex or
// FromAutomaton.
type Term struct {
	Kind      TermKind
	Regex     *rast.Regex
	Automaton *automaton.NFA
}

// FromRegex parses pattern and wraps it as a regex-form Term.
//
// Example:
//
//	term, err := engine.FromRegex(".*abc.*")
func FromRegex(pattern string) (Term, error) {
	r, err := rast.New(pattern)
	if err != nil {
		return Term{}, err
	}
	return Term{Kind: KindRegex, Regex: r}, nil
}

// FromAutomaton wraps a as an automaton-form Term.
func FromAutomaton(a *automaton.NFA) Term {
	return Term{Kind: KindAutomaton, Automaton: a}
}

// Equal reports whether a and b hold the same representation and value.
// It is a cheap structural shortcut, not a semantic-equivalence check —
// see AreEquivalent for that. Only the regex/regex case is compared
// structurally; any pairing involving an automaton-form term falls
// through to false so callers proceed to the full equivalence check
// instead of risking a false negative from an un-normalized automaton.
func Equal(a, b Term) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindRegex {
		return rast.Equal(a.Regex, b.Regex)
	}
	return false
}

// checkNumberOfTerms mirrors Term::check_number_of_terms: terms plus the
// receiver itself must not exceed the profile's MaxTerms.
func checkNumberOfTerms(ctx context.Context, terms []Term) error {
	profile := config.ProfileFrom(ctx)
	numberOfTerms := len(terms) + 1
	if numberOfTerms > profile.MaxTerms {
		return &rserr.TooMuchTermsError{Max: profile.MaxTerms, Got: numberOfTerms}
	}
	return nil
}

// getAutomaton lowers t to automaton form, building one from the regex
// AST when t is regex-form.
func (t Term) getAutomaton(ctx context.Context) (*automaton.NFA, error) {
	switch t.Kind {
	case KindRegex:
		return t.Regex.ToAutomaton(ctx)
	default:
		return t.Automaton, nil
	}
}

// fromAutomaton attempts to synthesize a back to a regex, falling back
// to the automaton form when no regex is found.
func fromAutomaton(ctx context.Context, a *automaton.NFA) (Term, error) {
	regex, err := synth.ToRegex(ctx, a)
	if err != nil {
		return Term{}, err
	}
	if regex != nil {
		return Term{Kind: KindRegex, Regex: regex}, nil
	}
	return Term{Kind: KindAutomaton, Automaton: a}, nil
}

// determinizeSubtrahend returns a determinized view of subtrahend,
// skipping the work entirely when it is already deterministic, and
// preferring to intersect first when minuend is acyclic but subtrahend
// is not — the same cost tradeoff as the original's Cow<FastAutomaton>.
func determinizeSubtrahend(ctx context.Context, minuend, subtrahend *automaton.NFA) (*automaton.NFA, error) {
	if subtrahend.IsDeterministic() {
		return subtrahend, nil
	}
	if !minuend.IsCyclic() && subtrahend.IsCyclic() {
		narrowed, err := algebra.Intersect(minuend, subtrahend)
		if err != nil {
			return nil, err
		}
		return algebra.Determinize(ctx, narrowed)
	}
	return algebra.Determinize(ctx, subtrahend)
}
