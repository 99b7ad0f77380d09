package algebra

import (
	"github.com/RegexSolver/regexsolver/automaton"
	"github.com/RegexSolver/regexsolver/charset"
	"github.com/RegexSolver/regexsolver/rserr"
)

// Totalize returns a deterministic automaton equivalent to a, with a
// single crash state so that every live state has an outgoing transition
// covering every remaining code point. a must already be deterministic.
//
// Grounded on FastAutomaton::totalize: one pass collects, per state, the
// complement of its outgoing conditions; states with a non-empty
// complement get a transition to a fresh crash state on it. The crash
// state is created before that pass, so it gets a self-loop on every code
// point. The spanning set is then recomputed over every condition (old and
// newly added) and every edge reprojected onto it. If the crash state's
// only incoming edge is its own self-loop, no other state needs it and it
// is dropped again.
func Totalize(a *automaton.NFA) (*automaton.NFA, error) {
	if !a.IsDeterministic() {
		return nil, &rserr.AutomatonShouldBeDeterministicError{}
	}

	out := a.Clone()
	oldSpanning := out.SpanningSet()
	crash := out.NewState()
	states := out.StateIDs()

	type pendingEdge struct {
		from automaton.StateID
		cond charset.Condition
	}

	var ranges []charset.RangeSet
	var toCrash []pendingEdge

	for _, s := range states {
		union := charset.ConditionEmpty(oldSpanning)
		for _, e := range out.Edges(s) {
			union = union.Union(e.Condition)
			r, err := e.Condition.ToRange(oldSpanning)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, r)
		}
		comp := union.Complement()
		if !comp.IsEmpty() {
			toCrash = append(toCrash, pendingEdge{from: s, cond: comp})
		}
	}

	for _, p := range toCrash {
		out.AddTransition(p.from, crash, p.cond)
		r, err := p.cond.ToRange(oldSpanning)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}

	newSpanning := charset.ComputeSpanningSet(ranges)
	if err := out.ApplyNewSpanningSet(newSpanning); err != nil {
		return nil, err
	}

	if out.InDegree(crash) == 1 {
		out.RemoveState(crash)
	}
	return out, nil
}

// Complement returns the automaton accepting exactly the strings a does
// not. a must already be deterministic.
//
// Grounded on FastAutomaton::complement: totalize, then invert the accept
// set.
func Complement(a *automaton.NFA) (*automaton.NFA, error) {
	out, err := Totalize(a)
	if err != nil {
		return nil, err
	}
	wasAccept := map[automaton.StateID]bool{}
	for _, s := range out.AcceptStates() {
		wasAccept[s] = true
	}
	for _, s := range out.StateIDs() {
		if wasAccept[s] {
			out.Unaccept(s)
		} else {
			out.Accept(s)
		}
	}
	return out, nil
}

// Subtract returns the automaton accepting the strings a accepts that b
// does not. b must already be deterministic.
//
// Grounded on FastAutomaton::subtraction: complement b, then intersect
// with a.
func Subtract(a, b *automaton.NFA) (*automaton.NFA, error) {
	comp, err := Complement(b)
	if err != nil {
		return nil, err
	}
	return Intersect(a, comp)
}
