package analyze

import (
	"context"

	"github.com/RegexSolver/regexsolver/algebra"
	"github.com/RegexSolver/regexsolver/automaton"
)

// IsEquivalent reports whether a and b accept exactly the same language.
//
// Grounded on FastAutomaton::is_equivalent_of: neither side's complement
// may intersect the other.
func IsEquivalent(ctx context.Context, a, b *automaton.NFA) (bool, error) {
	if a.IsEmpty() != b.IsEmpty() && a.IsTotal() != b.IsTotal() {
		return false, nil
	}

	bDet, err := algebra.Determinize(ctx, b)
	if err != nil {
		return false, err
	}
	bComplement, err := algebra.Complement(bDet)
	if err != nil {
		return false, err
	}
	if has, err := algebra.HasIntersection(a, bComplement); err != nil {
		return false, err
	} else if has {
		return false, nil
	}

	aDet, err := algebra.Determinize(ctx, a)
	if err != nil {
		return false, err
	}
	aComplement, err := algebra.Complement(aDet)
	if err != nil {
		return false, err
	}
	has, err := algebra.HasIntersection(aComplement, b)
	if err != nil {
		return false, err
	}
	return !has, nil
}
