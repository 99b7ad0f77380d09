package algebra

import "github.com/RegexSolver/regexsolver/automaton"

// Concatenate returns the automaton accepting the concatenation of every
// automaton's language, in order.
func Concatenate(automatons []*automaton.NFA) (*automaton.NFA, error) {
	if len(automatons) == 1 {
		return automatons[0].Clone(), nil
	}
	out := automaton.NewEmptyString()
	if len(automatons) == 0 {
		return out, nil
	}
	for _, a := range automatons {
		if err := concat(out, a); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// concat appends other's language onto self in place.
//
// Grounded on FastAutomaton::concat. other's start state fans out to every
// one of self's (pre-concat) accept states: self's accept states are
// replaced by new-state-mapped copies of other's reachable states, with
// other.start mapping to the whole set of self's former accept states
// whenever they can be merged (no incoming edges on other's start OR no
// outgoing edges on any of self's accept states); otherwise an
// epsilon bridge connects them instead. If either side accepts nothing,
// so does the result.
func concat(self, other *automaton.NFA) error {
	if self.IsEmpty() || other.IsEmpty() {
		self.ApplyModel(automaton.NewEmpty())
		return nil
	}

	newSpanning := self.SpanningSet().Merge(other.SpanningSet())
	if err := self.ApplyNewSpanningSet(newSpanning); err != nil {
		return err
	}
	proj := newConditionProjector(other, newSpanning)

	newStates := map[automaton.StateID][]automaton.StateID{}

	notMergeable := other.InDegree(other.Start()) > 0 && anyHasOutgoing(self, self.AcceptStates())

	acceptStates := append([]automaton.StateID(nil), self.AcceptStates()...)
	for _, s := range acceptStates {
		self.Unaccept(s)
	}

	otherStartAccepts := other.IsAccept(other.Start())
	if otherStartAccepts {
		for _, s := range acceptStates {
			self.Accept(s)
		}
	}

	if notMergeable {
		fresh, existed := ensureSingle(self, newStates, other.Start())
		if otherStartAccepts {
			self.Accept(fresh)
		}
		_ = existed
	}

	for _, fromState := range other.StateIDs() {
		newFroms := mapStates(self, other, newStates, acceptStates, fromState)
		for _, e := range other.Edges(fromState) {
			newTos := mapStates(self, other, newStates, acceptStates, e.To)
			cond, err := proj.Convert(e.Condition)
			if err != nil {
				return err
			}
			for _, from := range newFroms {
				for _, to := range newTos {
					self.AddTransition(from, to, cond)
				}
			}
		}
	}

	if notMergeable {
		if otherStartMapped, ok := newStates[other.Start()]; ok {
			for _, a := range acceptStates {
				for _, s := range otherStartMapped {
					self.AddEpsilon(a, s)
				}
			}
		}
	}

	if other.IsCyclic() {
		self.SetCyclic(true)
	}
	return nil
}

func anyHasOutgoing(n *automaton.NFA, states []automaton.StateID) bool {
	for _, s := range states {
		if n.OutDegree(s) > 0 {
			return true
		}
	}
	return false
}

func ensureSingle(self *automaton.NFA, newStates map[automaton.StateID][]automaton.StateID, s automaton.StateID) (automaton.StateID, bool) {
	if mapped, ok := newStates[s]; ok && len(mapped) > 0 {
		return mapped[0], true
	}
	fresh := self.NewState()
	newStates[s] = []automaton.StateID{fresh}
	return fresh, false
}

// mapStates resolves state s (a state of "other") to its image(s) in
// self: other.Start() maps to the full set of self's former accept
// states (the concatenation point), everything else maps to exactly one
// fresh (or already-created) state.
func mapStates(
	self, other *automaton.NFA,
	newStates map[automaton.StateID][]automaton.StateID,
	acceptStates []automaton.StateID,
	s automaton.StateID,
) []automaton.StateID {
	if mapped, ok := newStates[s]; ok {
		return mapped
	}
	if s == other.Start() {
		newStates[s] = acceptStates
		return acceptStates
	}
	fresh := self.NewState()
	if other.IsAccept(s) {
		self.Accept(fresh)
	}
	newStates[s] = []automaton.StateID{fresh}
	return []automaton.StateID{fresh}
}
