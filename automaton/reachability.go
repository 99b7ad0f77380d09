package automaton

import "github.com/RegexSolver/regexsolver/internal/sparse"

// ReachableStates returns the live states of n from which an accepting
// state can still be reached, computed backward from the accept set.
// Visited-tracking uses the teacher's sparse.SparseSet (internal/sparse),
// sized to n's state arena, rather than a map — the same O(1)
// membership/insert shape the teacher built it for in NFA simulation.
//
// Grounded on FastAutomaton::get_reacheable_states.
func (n *NFA) ReachableStates() map[StateID]bool {
	predecessors := map[StateID][]StateID{}
	for _, s := range n.StateIDs() {
		for _, e := range n.Edges(s) {
			if e.Condition.IsEmpty() {
				continue
			}
			predecessors[e.To] = append(predecessors[e.To], s)
		}
	}

	live := sparse.NewSparseSet(uint32(n.Capacity()))
	var worklist []StateID
	for _, acc := range n.AcceptStates() {
		live.Insert(uint32(acc))
		worklist = append(worklist, acc)
	}

	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]
		for _, pred := range predecessors[s] {
			if !live.Contains(uint32(pred)) {
				live.Insert(uint32(pred))
				worklist = append(worklist, pred)
			}
		}
	}

	out := make(map[StateID]bool, live.Size())
	for _, v := range live.Values() {
		out[StateID(v)] = true
	}
	return out
}

// RemoveDeadTransitions prunes every state that cannot reach an accept
// state, or empties n outright when it already accepts nothing.
//
// Grounded on FastAutomaton::remove_dead_transitions.
func (n *NFA) RemoveDeadTransitions() {
	if n.IsEmpty() {
		n.ApplyModel(NewEmpty())
		return
	}
	reachable := n.ReachableStates()
	var dead []StateID
	for _, s := range n.StateIDs() {
		if !reachable[s] {
			dead = append(dead, s)
		}
	}
	n.RemoveStates(dead)
}
