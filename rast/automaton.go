package rast

import (
	"context"

	"github.com/RegexSolver/regexsolver/algebra"
	"github.com/RegexSolver/regexsolver/automaton"
	"github.com/RegexSolver/regexsolver/config"
)

// ToAutomaton lowers r into an automaton.NFA, refusing to build one past
// the profile's state budget.
//
// Grounded on RegularExpression::to_automaton.
func (r *Regex) ToAutomaton(ctx context.Context) (*automaton.NFA, error) {
	profile := config.ProfileFrom(ctx)
	if err := profile.CheckStates(r.NumberOfStates()); err != nil {
		return nil, err
	}
	if err := profile.CheckTimeout(); err != nil {
		return nil, err
	}
	return r.toAutomaton(ctx)
}

func (r *Regex) toAutomaton(ctx context.Context) (*automaton.NFA, error) {
	switch r.Kind {
	case KindCharacter:
		return automaton.FromRange(r.Range)
	case KindRepetition:
		sub, err := r.Sub.toAutomaton(ctx)
		if err != nil {
			return nil, err
		}
		return algebra.Repeat(sub, r.Min, r.Max)
	case KindConcat:
		parts := make([]*automaton.NFA, len(r.Elems))
		for i, e := range r.Elems {
			part, err := e.toAutomaton(ctx)
			if err != nil {
				return nil, err
			}
			parts[i] = part
		}
		return algebra.Concatenate(parts)
	case KindAlternation:
		parts := make([]*automaton.NFA, len(r.Elems))
		for i, e := range r.Elems {
			part, err := e.toAutomaton(ctx)
			if err != nil {
				return nil, err
			}
			parts[i] = part
		}
		return algebra.Alternation(parts)
	}
	panic("rast: unknown kind")
}
