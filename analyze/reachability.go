package analyze

import "github.com/RegexSolver/regexsolver/automaton"

// ReachableStates returns the states of a from which an accepting state
// can still be reached — the "live" states, computed backward from the
// accept set.
//
// Grounded on FastAutomaton::get_reacheable_states. The walk itself
// lives on automaton.NFA (it needs no analyze-level context, and
// algebra.Intersect needs to call it without analyze creating an import
// cycle back through algebra); this is the public-facing home for it
// alongside the rest of this package's analysis queries.
func ReachableStates(a *automaton.NFA) map[automaton.StateID]bool {
	return a.ReachableStates()
}
