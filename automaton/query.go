package automaton

// OutDegree returns the number of distinct outgoing edges of s.
func (n *NFA) OutDegree(s StateID) int { return len(n.out[s]) }

// InDegree returns the number of distinct states with an edge into s.
func (n *NFA) InDegree(s StateID) int { return len(n.in[s]) }

// InTransitions returns, for each state with an edge into s, that state
// paired with the condition labeling the edge.
func (n *NFA) InTransitions(s StateID) []Edge {
	out := make([]Edge, 0, len(n.in[s]))
	for _, from := range n.in[s] {
		for _, e := range n.out[from] {
			if e.To == s {
				out = append(out, Edge{To: from, Condition: e.Condition})
				break
			}
		}
	}
	return out
}

// IsEmpty reports whether the automaton accepts no strings.
func (n *NFA) IsEmpty() bool { return len(n.accept) == 0 }

// IsTotal reports whether the start state accepts and has a self-loop on
// the total condition — the automaton accepts every string over every
// code point.
func (n *NFA) IsTotal() bool {
	if !n.accept[n.start] {
		return false
	}
	for _, e := range n.out[n.start] {
		if e.To == n.start && e.Condition.IsTotal() {
			return true
		}
	}
	return false
}

// ApplyModel replaces n's contents with a copy of model's.
func (n *NFA) ApplyModel(model *NFA) {
	clone := model.Clone()
	*n = *clone
}
