package algebra

import (
	"github.com/RegexSolver/regexsolver/automaton"
	"github.com/RegexSolver/regexsolver/charset"
)

// pairKey identifies a worklist entry by the (self, other) state pair it
// was built from.
type pairKey struct {
	self, other automaton.StateID
}

// Intersect returns the automaton accepting exactly the strings both a and
// b accept.
//
// Grounded on FastAutomaton::intersection: a worklist of (self_state,
// other_state) pairs, each producing one new state; edges are built by
// projecting both sides' transitions onto the merged spanning set and
// pairwise intersecting their conditions. Finishes with
// RemoveDeadTransitions, matching the original pruning states that
// turned out unreachable once both sides stopped agreeing on a path
// forward.
func Intersect(a, b *automaton.NFA) (*automaton.NFA, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return automaton.NewEmpty(), nil
	}
	if a.IsTotal() {
		return b.Clone(), nil
	}
	if b.IsTotal() {
		return a.Clone(), nil
	}

	newSpanning := a.SpanningSet().Merge(b.SpanningSet())
	projA := charset.NewProjector(a.SpanningSet(), newSpanning)
	projB := charset.NewProjector(b.SpanningSet(), newSpanning)

	out := automaton.NewEmpty()
	if err := out.ApplyNewSpanningSet(newSpanning); err != nil {
		return nil, err
	}

	newStates := map[pairKey]automaton.StateID{}
	initialKey := pairKey{a.Start(), b.Start()}
	newStates[initialKey] = out.Start()

	type item struct {
		mapped      automaton.StateID
		self, other automaton.StateID
	}
	worklist := []item{{out.Start(), a.Start(), b.Start()}}

	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]

		if a.IsAccept(p.self) && b.IsAccept(p.other) {
			out.Accept(p.mapped)
		}

		for _, e1 := range a.Edges(p.self) {
			cond1, err := projA.Convert(e1.Condition)
			if err != nil {
				return nil, err
			}
			for _, e2 := range b.Edges(p.other) {
				cond2, err := projB.Convert(e2.Condition)
				if err != nil {
					return nil, err
				}
				inter := cond1.Intersection(cond2)
				if inter.IsEmpty() {
					continue
				}
				k := pairKey{e1.To, e2.To}
				mapped, ok := newStates[k]
				if !ok {
					mapped = out.NewState()
					newStates[k] = mapped
					worklist = append(worklist, item{mapped, e1.To, e2.To})
				}
				out.AddTransition(p.mapped, mapped, inter)
			}
		}
	}

	out.RemoveDeadTransitions()
	return out, nil
}

// HasIntersection reports whether a and b accept a common string, without
// materializing the intersection automaton.
//
// Grounded on FastAutomaton::has_intersection: same worklist as Intersect,
// short-circuiting true as soon as a pair of accepting states is reached.
func HasIntersection(a, b *automaton.NFA) (bool, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return false, nil
	}
	if a.IsTotal() || b.IsTotal() {
		return true, nil
	}

	newSpanning := a.SpanningSet().Merge(b.SpanningSet())
	projA := charset.NewProjector(a.SpanningSet(), newSpanning)
	projB := charset.NewProjector(b.SpanningSet(), newSpanning)

	type item struct {
		self, other automaton.StateID
	}
	seen := map[pairKey]bool{{a.Start(), b.Start()}: true}
	worklist := []item{{a.Start(), b.Start()}}

	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]

		if a.IsAccept(p.self) && b.IsAccept(p.other) {
			return true, nil
		}

		for _, e1 := range a.Edges(p.self) {
			cond1, err := projA.Convert(e1.Condition)
			if err != nil {
				return false, err
			}
			for _, e2 := range b.Edges(p.other) {
				cond2, err := projB.Convert(e2.Condition)
				if err != nil {
					return false, err
				}
				if !cond1.HasIntersection(cond2) {
					continue
				}
				k := pairKey{e1.To, e2.To}
				if seen[k] {
					continue
				}
				seen[k] = true
				worklist = append(worklist, item{e1.To, e2.To})
			}
		}
	}
	return false, nil
}
