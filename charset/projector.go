package charset

import "github.com/RegexSolver/regexsolver/rserr"

// Projector projects Conditions built against one SpanningSet onto a
// finer SpanningSet that refines it (typically the merge of two
// automata's spanning sets before an algebraic op combines them).
//
// Grounded on ConditionConverter (condition/converter.rs): a precomputed
// equivalence map from each atom of "from" to the (possibly several)
// atoms of "to" it was split into.
type Projector struct {
	from, to        *SpanningSet
	equivalenceMap  [][]int // index: from-atom index (rest-first); value: to-atom indexes
}

// NewProjector builds a Projector from "from" to "to". It does not verify
// that "to" actually refines "from"; if it does not, Convert's results
// are meaningless but never panic.
func NewProjector(from, to *SpanningSet) *Projector {
	toAtoms := to.AtomsWithRest()
	fromAtoms := from.AtomsWithRest()

	remaining := make(map[int]bool, len(toAtoms))
	for i := range toAtoms {
		remaining[i] = true
	}

	eq := make([][]int, len(fromAtoms))
	for i, fa := range fromAtoms {
		var idxs []int
		for j := range toAtoms {
			if !remaining[j] {
				continue
			}
			ta := toAtoms[j]
			if fa.Equal(ta) || fa.HasIntersection(ta) {
				idxs = append(idxs, j)
			}
		}
		for _, j := range idxs {
			delete(remaining, j)
		}
		eq[i] = idxs
	}

	return &Projector{from: from, to: to, equivalenceMap: eq}
}

// From returns the source spanning set.
func (p *Projector) From() *SpanningSet { return p.from }

// To returns the destination spanning set.
func (p *Projector) To() *SpanningSet { return p.to }

// Convert projects condition (defined over p.From()) onto p.To().
func (p *Projector) Convert(condition Condition) (Condition, error) {
	out := ConditionEmpty(p.to)
	for fromIndex, toIndexes := range p.equivalenceMap {
		has, err := condition.Get(fromIndex)
		if err != nil {
			return Condition{}, &rserr.ConditionIndexOutOfBoundError{}
		}
		if has {
			for _, toIndex := range toIndexes {
				out.Set(toIndex, true)
			}
		}
	}
	return out, nil
}
