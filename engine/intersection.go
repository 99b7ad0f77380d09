package engine

import (
	"context"

	"github.com/RegexSolver/regexsolver/algebra"
	"github.com/RegexSolver/regexsolver/rast"
)

// Intersection computes the intersection of t and terms. Unlike Union,
// there is no regex-level intersection operation to stay in, so every
// operand is lowered to automaton form immediately.
//
// Example:
//
//	a, _ := engine.FromRegex("(abc|de){2}")
//	b, _ := engine.FromRegex("de.*")
//	c, _ := engine.FromRegex(".*abc")
//	inter, _ := a.Intersection(ctx, []engine.Term{b, c}) // deabc
func (t Term) Intersection(ctx context.Context, terms []Term) (Term, error) {
	if err := checkNumberOfTerms(ctx, terms); err != nil {
		return Term{}, err
	}

	returnAutomaton, err := t.getAutomaton(ctx)
	if err != nil {
		return Term{}, err
	}

	for _, term := range terms {
		operand, err := term.getAutomaton(ctx)
		if err != nil {
			return Term{}, err
		}
		returnAutomaton, err = algebra.Intersect(returnAutomaton, operand)
		if err != nil {
			return Term{}, err
		}
		if returnAutomaton.IsEmpty() {
			return Term{Kind: KindRegex, Regex: rast.NewEmpty()}, nil
		}
	}

	return fromAutomaton(ctx, returnAutomaton)
}
