package synth

import (
	"github.com/RegexSolver/regexsolver/automaton"
)

// newStateEliminationFrom copies every live state of a and its edges into a
// fresh working graph: weight edges carry a.Edges' conditions converted
// back to charset.RangeSet, and a single accept state is synthesized
// (joined to the original accept states by epsilon) when a has more than
// one.
//
// Grounded on StateEliminationAutomaton::new.
func newStateEliminationFrom(a *automaton.NFA) (*stateEliminationAutomaton, error) {
	if a.IsEmpty() {
		return nil, nil
	}

	g := newStateEliminationAutomaton()
	statesMap := map[automaton.StateID]int{}

	stateOf := func(s automaton.StateID) int {
		if ns, ok := statesMap[s]; ok {
			return ns
		}
		ns := g.newState()
		statesMap[s] = ns
		return ns
	}

	for _, from := range a.StateIDs() {
		newFrom := stateOf(from)
		for _, e := range a.Edges(from) {
			newTo := stateOf(e.To)
			rng, err := e.Condition.ToRange(a.SpanningSet())
			if err != nil {
				return nil, err
			}
			g.addTransitionTo(newFrom, newTo, weightTransition(rng))
		}
	}

	g.startState = statesMap[a.Start()]

	accepts := a.AcceptStates()
	if len(accepts) == 1 {
		g.acceptState = statesMap[accepts[0]]
	} else {
		g.acceptState = g.newState()
		for _, acc := range accepts {
			g.addTransitionTo(statesMap[acc], g.acceptState, epsilonTransition())
		}
	}

	if err := g.identifyAndApplyComponents(); err != nil {
		return nil, err
	}
	return g, nil
}
