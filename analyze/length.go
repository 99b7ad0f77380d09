package analyze

import "github.com/RegexSolver/regexsolver/automaton"

// GetLength returns the shortest and longest accepted string lengths. Both
// are nil when a is empty; max is nil when a's language is unbounded
// (including when a is total).
//
// Grounded on FastAutomaton::get_length: a length-ordered BFS for the
// minimum (first acceptance wins) and a DFS for the maximum that gives up
// (nil) the moment a path revisits a state, since that means an unbounded
// walk exists.
func GetLength(a *automaton.NFA) (min, max *uint32) {
	if a.IsEmpty() {
		return nil, nil
	}
	if a.IsTotal() {
		zero := uint32(0)
		return &zero, nil
	}

	type minItem struct {
		state  automaton.StateID
		length uint32
		seen   map[automaton.StateID]bool
	}

	isInfinite := false
	worklist := []minItem{{a.Start(), 0, map[automaton.StateID]bool{}}}
	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		if min != nil && item.length > *min {
			continue
		}
		if a.IsAccept(item.state) && (min == nil || item.length < *min) {
			l := item.length
			min = &l
		}
		seen := cloneSeen(item.seen)
		seen[item.state] = true

		for _, e := range a.Edges(item.state) {
			if e.To == item.state || seen[e.To] {
				isInfinite = true
				continue
			}
			worklist = append(worklist, minItem{e.To, item.length + 1, seen})
		}
	}

	if isInfinite || min == nil {
		return min, nil
	}

	type maxItem struct {
		state  automaton.StateID
		length uint32
		seen   map[automaton.StateID]bool
	}

	stack := []maxItem{{a.Start(), 0, map[automaton.StateID]bool{}}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if a.IsAccept(item.state) && (max == nil || item.length > *max) {
			l := item.length
			max = &l
		}
		seen := cloneSeen(item.seen)
		seen[item.state] = true

		for _, e := range a.Edges(item.state) {
			if e.To == item.state || seen[e.To] {
				return min, nil
			}
			stack = append(stack, maxItem{e.To, item.length + 1, seen})
		}
	}

	return min, max
}

func cloneSeen(seen map[automaton.StateID]bool) map[automaton.StateID]bool {
	out := make(map[automaton.StateID]bool, len(seen)+1)
	for s := range seen {
		out[s] = true
	}
	return out
}
