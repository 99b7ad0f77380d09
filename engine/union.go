package engine

import (
	"context"

	"github.com/RegexSolver/regexsolver/algebra"
	"github.com/RegexSolver/regexsolver/automaton"
	"github.com/RegexSolver/regexsolver/rast"
)

// Union computes the union of t and terms, returning the regex form when
// every operand stayed in regex form and no automaton construction was
// needed, or the result of synth.ToRegex over the combined automaton
// otherwise.
//
// Example:
//
//	a, _ := engine.FromRegex("abc")
//	b, _ := engine.FromRegex("de")
//	c, _ := engine.FromRegex("fghi")
//	union, _ := a.Union(ctx, []engine.Term{b, c}) // (abc|de|fghi)
func (t Term) Union(ctx context.Context, terms []Term) (Term, error) {
	if err := checkNumberOfTerms(ctx, terms); err != nil {
		return Term{}, err
	}

	returnRegex := rast.NewEmpty()
	var returnAutomaton *automaton.NFA

	switch t.Kind {
	case KindRegex:
		returnRegex = t.Regex
	default:
		returnAutomaton = t.Automaton
	}

	for _, operand := range terms {
		switch operand.Kind {
		case KindRegex:
			returnRegex = returnRegex.Union(operand.Regex)
			if returnRegex.IsTotal() {
				return Term{Kind: KindRegex, Regex: rast.NewTotal()}, nil
			}
		default:
			if returnAutomaton == nil {
				returnAutomaton = operand.Automaton
			} else {
				combined, err := algebra.Union(returnAutomaton, operand.Automaton)
				if err != nil {
					return Term{}, err
				}
				returnAutomaton = combined
			}
			if returnAutomaton.IsTotal() {
				return Term{Kind: KindRegex, Regex: rast.NewTotal()}, nil
			}
		}
	}

	if returnAutomaton == nil {
		return Term{Kind: KindRegex, Regex: returnRegex}, nil
	}

	if !returnRegex.IsEmpty() {
		regexAutomaton, err := returnRegex.ToAutomaton(ctx)
		if err != nil {
			return Term{}, err
		}
		combined, err := algebra.Union(returnAutomaton, regexAutomaton)
		if err != nil {
			return Term{}, err
		}
		returnAutomaton = combined
	}

	return fromAutomaton(ctx, returnAutomaton)
}
