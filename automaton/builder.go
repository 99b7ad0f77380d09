package automaton

import "github.com/RegexSolver/regexsolver/charset"

// NewState allocates a fresh state, reusing the lowest removed slot when
// one is available.
func (n *NFA) NewState() StateID {
	if len(n.removed) > 0 {
		lowest := InvalidState
		for s := range n.removed {
			if s < lowest {
				lowest = s
			}
		}
		delete(n.removed, lowest)
		return lowest
	}
	n.out = append(n.out, nil)
	n.in = append(n.in, nil)
	return StateID(len(n.out) - 1)
}

// Accept marks s as an accepting state.
func (n *NFA) Accept(s StateID) {
	n.assertStateExists(s)
	n.accept[s] = true
}

// Unaccept clears s's accepting status.
func (n *NFA) Unaccept(s StateID) {
	delete(n.accept, s)
}

func addInEdge(list []StateID, from StateID) []StateID {
	for _, s := range list {
		if s == from {
			return list
		}
	}
	return append(list, from)
}

func removeInEdge(list []StateID, from StateID) []StateID {
	for i, s := range list {
		if s == from {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// SetStart moves the start state to s. Used by operations (union,
// concatenation) that must relocate the start state to make room for a
// merge.
func (n *NFA) SetStart(s StateID) {
	n.assertStateExists(s)
	n.start = s
}

// AddTransition adds (or merges into an existing) edge from -> to labeled
// with cond. A no-op if cond is empty.
//
// Grounded on add_transition_to: maintains the conservative determinism
// flag by checking whether cond overlaps any other outgoing edge from
// "from" that targets a different state.
func (n *NFA) AddTransition(from, to StateID, cond charset.Condition) {
	n.assertStateExists(from)
	if from != to {
		n.assertStateExists(to)
	}
	if cond.IsEmpty() {
		return
	}

	if n.deterministic {
		det := true
		for _, e := range n.out[from] {
			if e.To == to {
				continue
			}
			if e.Condition.HasIntersection(cond) {
				det = false
				break
			}
		}
		n.deterministic = det
	}
	if from == to {
		n.cyclic = true
	}

	n.in[to] = addInEdge(n.in[to], from)

	for i := range n.out[from] {
		if n.out[from][i].To == to {
			n.out[from][i].Condition = n.out[from][i].Condition.Union(cond)
			return
		}
	}
	n.out[from] = append(n.out[from], Edge{To: to, Condition: cond})
}

// AddEpsilon adds an epsilon transition from -> to without ever
// materializing a literal epsilon edge: it copies to's outgoing edges
// onto from, and propagates to's acceptance onto from.
//
// Grounded on add_epsilon.
func (n *NFA) AddEpsilon(from, to StateID) {
	if from == to {
		return
	}
	n.assertStateExists(from)
	n.assertStateExists(to)

	if n.accept[to] {
		n.accept[from] = true
	}

	for _, e := range append([]Edge(nil), n.out[to]...) {
		n.AddTransition(from, e.To, e.Condition)
	}
}

// RemoveState deletes state s. Panics if s is the start state, mirroring
// the corpus's invariant that the start state can never be removed out
// from under an in-progress construction.
//
// Grounded on remove_state, including the trailing-slot-truncation reclaim
// optimization: if s happens to be the last slot in the arena, it (and any
// now-trailing previously-removed slots) are truncated away instead of
// being kept as tombstones.
func (n *NFA) RemoveState(s StateID) {
	n.assertStateExists(s)
	if s == n.start {
		panic("automaton: cannot remove the start state")
	}

	delete(n.accept, s)

	for _, from := range n.in[s] {
		n.out[from] = removeEdgesTo(n.out[from], s)
	}
	for _, e := range n.out[s] {
		n.in[e.To] = removeInEdge(n.in[e.To], s)
	}
	n.out[s] = nil
	n.in[s] = nil

	if int(s) == len(n.out)-1 {
		n.out = n.out[:s]
		n.in = n.in[:s]
		cur := s
		for cur > 0 && n.removed[cur-1] {
			cur--
			delete(n.removed, cur)
			n.out = n.out[:cur]
			n.in = n.in[:cur]
		}
	} else {
		n.removed[s] = true
	}
}

func removeEdgesTo(edges []Edge, to StateID) []Edge {
	out := edges[:0]
	for _, e := range edges {
		if e.To != to {
			out = append(out, e)
		}
	}
	return out
}

// RemoveStates deletes every state in states, in one batch.
func (n *NFA) RemoveStates(states []StateID) {
	// Remove from the highest ID down so trailing-slot reclaim collapses
	// contiguous runs instead of fragmenting into tombstones.
	sorted := append([]StateID(nil), states...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] == n.start {
			continue
		}
		n.RemoveState(sorted[i])
	}
}

// ApplyNewSpanningSet reprojects every edge condition from the
// automaton's current spanning set onto newSet.
func (n *NFA) ApplyNewSpanningSet(newSet *charset.SpanningSet) error {
	proj := charset.NewProjector(n.spanning, newSet)
	for s := range n.out {
		for i, e := range n.out[s] {
			converted, err := proj.Convert(e.Condition)
			if err != nil {
				return err
			}
			n.out[s][i].Condition = converted
		}
	}
	n.spanning = newSet
	return nil
}

// Clone returns a deep, independent copy of n.
func (n *NFA) Clone() *NFA {
	out := make([][]Edge, len(n.out))
	for i, edges := range n.out {
		out[i] = append([]Edge(nil), edges...)
	}
	in := make([][]StateID, len(n.in))
	for i, ins := range n.in {
		in[i] = append([]StateID(nil), ins...)
	}
	accept := make(map[StateID]bool, len(n.accept))
	for s := range n.accept {
		accept[s] = true
	}
	removed := make(map[StateID]bool, len(n.removed))
	for s := range n.removed {
		removed[s] = true
	}
	return &NFA{
		out:           out,
		in:            in,
		start:         n.start,
		accept:        accept,
		removed:       removed,
		spanning:      n.spanning,
		deterministic: n.deterministic,
		cyclic:        n.cyclic,
	}
}
