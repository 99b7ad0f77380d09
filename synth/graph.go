// Package synth converts an automaton.NFA back into a rast.Regex by state
// elimination: build a working graph over the automaton's states, carve
// out strongly-connected components into nested sub-graphs so the
// remainder is a DAG, walk that DAG topologically accumulating
// concat/union, and recursively resolve each nested component by
// recognizing one of two shapes (A*B as a dot-star, or A*B via a
// self-loop split) before falling back to "no regex found" — not an
// error, a legitimate synthesis miss the caller falls back from.
//
// Grounded on original_source/src/fast_automaton/convert/to_regex/mod.rs,
// transform.rs, and to_regex_2/builder/{mod,scc}.rs — the two generations
// of this algorithm in the corpus, combined into one package since the
// later generation's Tarjan/subgraph builder (to_regex_2/builder) and the
// original's shape-recognition walk (to_regex/transform.rs) are two
// halves of the same synthesizer in the original implementation.
package synth

import (
	"sort"

	"github.com/RegexSolver/regexsolver/charset"
)

// transitionKind tags what a graph edge carries: a nested sub-automaton
// standing in for a collapsed cycle, a plain character condition, or a
// bare epsilon move.
type transitionKind int

const (
	transitionGraph transitionKind = iota
	transitionWeight
	transitionEpsilon
)

// graphTransition is the Go union for the corpus's GraphTransition<T>
// enum: Go has no sum types, so a tag selects which field is meaningful.
type graphTransition struct {
	kind  transitionKind
	graph *stateEliminationAutomaton
	rng   charset.RangeSet
}

func weightTransition(r charset.RangeSet) graphTransition {
	return graphTransition{kind: transitionWeight, rng: r}
}

func epsilonTransition() graphTransition { return graphTransition{kind: transitionEpsilon} }

func graphTransitionOf(g *stateEliminationAutomaton) graphTransition {
	return graphTransition{kind: transitionGraph, graph: g}
}

func (t graphTransition) isEmptyString() bool { return t.kind == transitionEpsilon }

func (t graphTransition) weight() (charset.RangeSet, bool) {
	if t.kind == transitionWeight {
		return t.rng, true
	}
	return nil, false
}

// stateEliminationAutomaton is the working graph state elimination runs
// over: a state arena with epsilon/weight/nested-graph edges, plus the
// bookkeeping (reverse edges, tombstoned states, a cyclic flag) the
// elimination passes need.
//
// Grounded on StateEliminationAutomaton<Range>.
type stateEliminationAutomaton struct {
	startState    int
	acceptState   int
	transitions   []map[int]graphTransition
	transitionsIn map[int]map[int]bool
	removedStates map[int]bool
	cyclic        bool
}

func newStateEliminationAutomaton() *stateEliminationAutomaton {
	return &stateEliminationAutomaton{
		transitionsIn: map[int]map[int]bool{},
		removedStates: map[int]bool{},
	}
}

func (a *stateEliminationAutomaton) newState() int {
	for s := range a.removedStates {
		delete(a.removedStates, s)
		a.transitionsIn[s] = map[int]bool{}
		return s
	}
	a.transitions = append(a.transitions, map[int]graphTransition{})
	idx := len(a.transitions) - 1
	a.transitionsIn[idx] = map[int]bool{}
	return idx
}

func (a *stateEliminationAutomaton) hasState(s int) bool {
	return s < len(a.transitions) && !a.removedStates[s]
}

func (a *stateEliminationAutomaton) assertStateExists(s int) {
	if !a.hasState(s) {
		panic("synth: state does not exist")
	}
}

func (a *stateEliminationAutomaton) addTransitionTo(from, to int, t graphTransition) {
	a.assertStateExists(from)
	if from != to {
		a.assertStateExists(to)
	}
	if a.transitionsIn[to] == nil {
		a.transitionsIn[to] = map[int]bool{}
	}
	a.transitionsIn[to][from] = true

	if existing, ok := a.transitions[from][to]; ok {
		if existing.kind == transitionWeight && t.kind == transitionWeight {
			a.transitions[from][to] = weightTransition(existing.rng.Union(t.rng))
		} else {
			panic("synth: cannot add transition")
		}
		return
	}
	a.transitions[from][to] = t
}

func (a *stateEliminationAutomaton) removeState(s int) {
	a.assertStateExists(s)
	if a.startState == s || a.acceptState == s {
		panic("synth: cannot remove a state still used as start or accept state")
	}
	delete(a.transitionsIn, s)
	if len(a.transitions)-1 == s {
		a.transitions = a.transitions[:s]
		cur := s - 1
		for cur >= 0 && a.removedStates[cur] {
			a.transitions = a.transitions[:cur]
			delete(a.removedStates, cur)
			cur--
		}
	} else {
		a.transitions[s] = map[int]graphTransition{}
		a.removedStates[s] = true
	}
	for _, m := range a.transitions {
		delete(m, s)
	}
	for _, set := range a.transitionsIn {
		delete(set, s)
	}
}

func (a *stateEliminationAutomaton) removeTransition(from, to int) {
	a.assertStateExists(from)
	if from != to {
		a.assertStateExists(to)
	}
	if set, ok := a.transitionsIn[to]; ok {
		delete(set, from)
	}
	delete(a.transitions[from], to)
}

func (a *stateEliminationAutomaton) getTransition(from, to int) (graphTransition, bool) {
	if from >= len(a.transitions) {
		return graphTransition{}, false
	}
	t, ok := a.transitions[from][to]
	return t, ok
}

// statesIter returns live state IDs in ascending order, for deterministic
// traversal (the corpus iterates a HashMap, so its own order is
// unspecified; fixing ours doesn't change correctness).
func (a *stateEliminationAutomaton) statesIter() []int {
	var out []int
	for s := 0; s < len(a.transitions); s++ {
		if !a.removedStates[s] {
			out = append(out, s)
		}
	}
	return out
}

type transitionEntry struct {
	state int
	t     graphTransition
}

func (a *stateEliminationAutomaton) transitionsFromState(from int) []transitionEntry {
	var out []transitionEntry
	for to, t := range a.transitions[from] {
		if a.removedStates[to] {
			continue
		}
		out = append(out, transitionEntry{to, t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].state < out[j].state })
	return out
}

func (a *stateEliminationAutomaton) transitionsFromStateVec(from int) []int {
	entries := a.transitionsFromState(from)
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.state
	}
	return out
}

func (a *stateEliminationAutomaton) inTransitionsVec(to int) []transitionEntry {
	var out []transitionEntry
	froms := make([]int, 0, len(a.transitionsIn[to]))
	for from := range a.transitionsIn[to] {
		froms = append(froms, from)
	}
	sort.Ints(froms)
	for _, from := range froms {
		for _, e := range a.transitionsFromState(from) {
			if e.state == to {
				out = append(out, transitionEntry{from, e.t})
			}
		}
	}
	return out
}

// statesTopoVec Kahn-sorts the live states. ok is false if a cycle
// remains, meaning the caller called this on a graph that should have
// been acyclic.
func (a *stateEliminationAutomaton) statesTopoVec() (order []int, ok bool) {
	if a.cyclic {
		return nil, false
	}
	inDegree := map[int]int{}
	for to, parents := range a.transitionsIn {
		inDegree[to] = len(parents)
	}

	var worklist []int
	for _, s := range a.statesIter() {
		if inDegree[s] == 0 {
			worklist = append(worklist, s)
		}
	}

	total := a.getNumberOfStates()
	order = make([]int, 0, total)
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]
		order = append(order, s)

		if s < len(a.transitions) {
			for to := range a.transitions[s] {
				if d, present := inDegree[to]; present {
					d--
					inDegree[to] = d
					if d == 0 {
						worklist = append(worklist, to)
					}
				}
			}
		}
	}

	return order, len(order) == total
}

func (a *stateEliminationAutomaton) getNumberOfStates() int {
	return len(a.transitions) - len(a.removedStates)
}
