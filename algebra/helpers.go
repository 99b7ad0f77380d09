package algebra

import (
	"github.com/RegexSolver/regexsolver/automaton"
	"github.com/RegexSolver/regexsolver/charset"
)

// newConditionProjector builds the projector from src's spanning set onto
// dst, a small convenience wrapper used by every binary operation after
// it has merged the two operands' spanning sets.
func newConditionProjector(src *automaton.NFA, dst *charset.SpanningSet) *charset.Projector {
	return charset.NewProjector(src.SpanningSet(), dst)
}
