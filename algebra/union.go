// Package algebra implements the algebraic operations over automaton.NFA:
// union, concatenation, repetition, determinization, intersection,
// complement and subtraction.
//
// Grounded on original_source/src/fast_automaton/operation/*.rs, ported
// state-for-state with the same start/accept merge discipline.
package algebra

import (
	"github.com/RegexSolver/regexsolver/automaton"
	"github.com/RegexSolver/regexsolver/charset"
)

// Union returns the automaton accepting the union of a's and b's
// languages. Neither input is modified.
func Union(a, b *automaton.NFA) (*automaton.NFA, error) {
	out := a.Clone()
	if err := alternate(out, b); err != nil {
		return nil, err
	}
	return out, nil
}

// Alternation returns the automaton accepting the union of every
// automaton's language.
func Alternation(automatons []*automaton.NFA) (*automaton.NFA, error) {
	if len(automatons) == 1 {
		return automatons[0].Clone(), nil
	}
	out := automaton.NewEmpty()
	for _, a := range automatons {
		if err := alternate(out, a); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// alternate merges other's language into self in place.
//
// Important invariant carried from the corpus: the start states can't be
// merged if either has incoming edges, and an accept state can't be
// merged with another if it has outgoing edges.
func alternate(self, other *automaton.NFA) error {
	if other.IsEmpty() || self.IsTotal() {
		return nil
	}
	if other.IsTotal() {
		self.ApplyModel(automaton.NewTotal())
		return nil
	}
	if self.IsEmpty() {
		self.ApplyModel(other)
		return nil
	}

	newSpanning := self.SpanningSet().Merge(other.SpanningSet())
	if err := self.ApplyNewSpanningSet(newSpanning); err != nil {
		return err
	}
	proj := charset.NewProjector(other.SpanningSet(), newSpanning)

	newStates := map[automaton.StateID]automaton.StateID{}

	incomplete, err := prepareStartStates(self, other, newStates, newSpanning, proj)
	if err != nil {
		return err
	}
	prepareAcceptStates(self, other, newStates, incomplete)

	for _, fromState := range other.StateIDs() {
		newFrom := mapState(self, newStates, fromState)
		for _, e := range other.Edges(fromState) {
			newCond, err := proj.Convert(e.Condition)
			if err != nil {
				return err
			}
			newTo := mapState(self, newStates, e.To)
			self.AddTransition(newFrom, newTo, newCond)
		}
	}

	if other.IsCyclic() {
		self.SetCyclic(true)
	}
	return nil
}

func mapState(self *automaton.NFA, newStates map[automaton.StateID]automaton.StateID, s automaton.StateID) automaton.StateID {
	if mapped, ok := newStates[s]; ok {
		return mapped
	}
	fresh := self.NewState()
	newStates[s] = fresh
	return fresh
}

// prepareStartStates merges self's and other's start states, or creates
// fresh ones, following the in-degree-zero merge rule. Returns the set of
// states in self still "incomplete" (awaiting edges from the general copy
// loop) so prepareAcceptStates doesn't double-treat them as sinks.
func prepareStartStates(
	self, other *automaton.NFA,
	newStates map[automaton.StateID]automaton.StateID,
	newSpanning *charset.SpanningSet,
	proj *charset.Projector,
) (map[automaton.StateID]bool, error) {
	incomplete := map[automaton.StateID]bool{}

	selfStart := self.Start()
	otherStart := other.Start()

	if self.InDegree(selfStart) == 0 && other.InDegree(otherStart) == 0 {
		newStates[otherStart] = selfStart
		incomplete[selfStart] = true
		return incomplete, nil
	}

	if self.InDegree(selfStart) != 0 {
		fresh := self.NewState()
		if self.IsAccept(selfStart) {
			self.Accept(fresh)
		}
		for _, e := range self.Edges(selfStart) {
			self.AddTransition(fresh, e.To, e.Condition)
		}
		self.SetStart(fresh)
	}

	if other.InDegree(otherStart) != 0 {
		fresh := self.NewState()
		if other.IsAccept(otherStart) {
			self.Accept(fresh)
			self.Accept(self.Start())
		}
		newStates[otherStart] = fresh
		incomplete[fresh] = true

		for _, e := range other.Edges(otherStart) {
			cond, err := proj.Convert(e.Condition)
			if err != nil {
				return nil, err
			}
			_, existed := newStates[e.To]
			to := mapState(self, newStates, e.To)
			if !existed {
				incomplete[to] = true
			}
			self.AddTransition(self.Start(), to, cond)
		}
	} else {
		newStates[otherStart] = self.Start()
		incomplete[self.Start()] = true
	}

	return incomplete, nil
}

// prepareAcceptStates consolidates self's dangling accept states (those
// with no outgoing edges, i.e. sinks) into one, then maps other's accept
// states onto it (sinks) or fresh accept states (non-sinks).
func prepareAcceptStates(
	self, other *automaton.NFA,
	newStates map[automaton.StateID]automaton.StateID,
	incomplete map[automaton.StateID]bool,
) {
	var sinks []automaton.StateID
	for _, s := range self.AcceptStates() {
		if self.OutDegree(s) == 0 && !incomplete[s] {
			sinks = append(sinks, s)
		}
	}

	var sink automaton.StateID
	switch len(sinks) {
	case 1:
		sink = sinks[0]
	default:
		if len(sinks) > 1 {
			sink = self.NewState()
			self.Accept(sink)
			for _, s := range sinks {
				for _, e := range self.InTransitions(s) {
					self.AddTransition(e.To, sink, e.Condition)
				}
				self.RemoveState(s)
			}
		} else {
			sink = self.NewState()
			self.Accept(sink)
		}
	}

	for _, s := range other.AcceptStates() {
		if mapped, ok := newStates[s]; ok {
			self.Accept(mapped)
		} else if other.OutDegree(s) == 0 {
			newStates[s] = sink
		} else {
			fresh := self.NewState()
			self.Accept(fresh)
			newStates[s] = fresh
		}
	}
}
