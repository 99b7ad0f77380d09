package engine

import (
	"context"

	"github.com/RegexSolver/regexsolver/algebra"
)

// Subtraction computes t minus subtrahend: every string t matches except
// those subtrahend also matches.
//
// Example:
//
//	a, _ := engine.FromRegex("(abc|de)")
//	b, _ := engine.FromRegex("de")
//	sub, _ := a.Subtraction(ctx, b) // abc
func (t Term) Subtraction(ctx context.Context, subtrahend Term) (Term, error) {
	minuendAutomaton, err := t.getAutomaton(ctx)
	if err != nil {
		return Term{}, err
	}
	subtrahendAutomaton, err := subtrahend.getAutomaton(ctx)
	if err != nil {
		return Term{}, err
	}
	subtrahendAutomaton, err = determinizeSubtrahend(ctx, minuendAutomaton, subtrahendAutomaton)
	if err != nil {
		return Term{}, err
	}

	returnAutomaton, err := algebra.Subtract(minuendAutomaton, subtrahendAutomaton)
	if err != nil {
		return Term{}, err
	}

	return fromAutomaton(ctx, returnAutomaton)
}

// Difference is an alias for Subtraction.
func (t Term) Difference(ctx context.Context, subtrahend Term) (Term, error) {
	return t.Subtraction(ctx, subtrahend)
}
