// Package analyze implements read-only queries over automaton.NFA that go
// beyond the cheap checks already living on NFA itself: reachability,
// cardinality, length bounds, equivalence and subset testing.
//
// Grounded on original_source/src/fast_automaton/analyze/*.rs.
package analyze

import (
	"math"

	"github.com/RegexSolver/regexsolver/automaton"
)

// CardinalityKind distinguishes the three shapes a language's size can
// take, matching the corpus's Cardinality<U> enum.
type CardinalityKind int

const (
	CardinalityInteger CardinalityKind = iota
	CardinalityInfinite
	CardinalityBigInteger
)

// Cardinality is the number of strings an automaton's language contains:
// an exact count, "infinite", or "too large to represent exactly".
type Cardinality struct {
	Kind  CardinalityKind
	Value uint32 // meaningful only when Kind == CardinalityInteger
}

func integerCardinality(v uint32) Cardinality {
	return Cardinality{Kind: CardinalityInteger, Value: v}
}

func infiniteCardinality() Cardinality { return Cardinality{Kind: CardinalityInfinite} }

func bigIntegerCardinality() Cardinality { return Cardinality{Kind: CardinalityBigInteger} }

// GetCardinality computes a's cardinality. known is false when a is
// non-deterministic — the caller must Determinize first, mirroring the
// corpus returning None in that case instead of silently determinizing.
//
// Grounded on FastAutomaton::get_cardinality: a topological-order DP over
// distances from the start state, multiplying by each edge condition's
// cardinality and saturating to BigInteger on overflow.
func GetCardinality(a *automaton.NFA) (card Cardinality, known bool, err error) {
	if a.IsEmpty() {
		return integerCardinality(0), true, nil
	}
	if a.IsCyclic() || a.IsTotal() {
		return infiniteCardinality(), true, nil
	}
	if !a.IsDeterministic() {
		return Cardinality{}, false, nil
	}

	order, acyclic := topologicalOrder(a)
	if !acyclic {
		return infiniteCardinality(), true, nil
	}

	distances := map[automaton.StateID]uint32{a.Start(): 1}
	for _, s := range order {
		cur := distances[s]
		for _, e := range a.Edges(s) {
			rng, err := e.Condition.ToRange(a.SpanningSet())
			if err != nil {
				return Cardinality{}, false, err
			}
			mul, ok := checkedMulU32(cur, rng.Cardinality())
			if !ok {
				return bigIntegerCardinality(), true, nil
			}
			sum, ok := checkedAddU32(distances[e.To], mul)
			if !ok {
				return bigIntegerCardinality(), true, nil
			}
			distances[e.To] = sum
		}
	}

	var total uint32
	for _, acc := range a.AcceptStates() {
		d, ok := distances[acc]
		if !ok {
			continue
		}
		sum, ok := checkedAddU32(total, d)
		if !ok {
			return bigIntegerCardinality(), true, nil
		}
		total = sum
	}
	return integerCardinality(total), true, nil
}

func checkedMulU32(a uint32, b uint64) (uint32, bool) {
	result := uint64(a) * b
	if result > math.MaxUint32 {
		return 0, false
	}
	return uint32(result), true
}

func checkedAddU32(a, b uint32) (uint32, bool) {
	sum := uint64(a) + uint64(b)
	if sum > math.MaxUint32 {
		return 0, false
	}
	return uint32(sum), true
}

// topologicalOrder Kahn-sorts a's live states by edge order. acyclic is
// false when a cycle makes no full ordering possible.
func topologicalOrder(a *automaton.NFA) (order []automaton.StateID, acyclic bool) {
	states := a.StateIDs()
	inDegree := make(map[automaton.StateID]int, len(states))
	for _, s := range states {
		inDegree[s] = 0
	}
	for _, s := range states {
		for _, e := range a.Edges(s) {
			inDegree[e.To]++
		}
	}

	var queue []automaton.StateID
	for _, s := range states {
		if inDegree[s] == 0 {
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		order = append(order, s)
		for _, e := range a.Edges(s) {
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	return order, len(order) == len(states)
}
