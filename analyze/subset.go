package analyze

import (
	"context"

	"github.com/RegexSolver/regexsolver/algebra"
	"github.com/RegexSolver/regexsolver/automaton"
)

// IsSubsetOf reports whether every string a accepts is also accepted by
// other.
//
// Grounded on FastAutomaton::is_subset_of: a has no intersection with
// other's complement.
func IsSubsetOf(ctx context.Context, a, other *automaton.NFA) (bool, error) {
	if a.IsEmpty() || other.IsTotal() {
		return true, nil
	}
	if other.IsEmpty() || a.IsTotal() {
		return false, nil
	}

	otherDet, err := algebra.Determinize(ctx, other)
	if err != nil {
		return false, err
	}
	otherComplement, err := algebra.Complement(otherDet)
	if err != nil {
		return false, err
	}
	has, err := algebra.HasIntersection(a, otherComplement)
	if err != nil {
		return false, err
	}
	return !has, nil
}
