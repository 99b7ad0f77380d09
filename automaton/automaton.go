// Package automaton implements the NFA used throughout the algebra: a
// state arena whose edges are labeled with charset.Condition bit vectors
// instead of raw byte ranges.
//
// Grounded on the teacher's nfa package (StateID/StateKind/StateIter
// idiom, nfa/nfa.go) re-purposed to the symbolic-condition edges and the
// edit primitives of original_source/src/fast_automaton/builder.rs.
package automaton

import (
	"fmt"
	"sort"

	"github.com/RegexSolver/regexsolver/charset"
)

// StateID uniquely identifies an NFA state.
type StateID uint32

// InvalidState is returned where no valid state exists.
const InvalidState StateID = 0xFFFFFFFF

// Edge is an outgoing transition: take it on any code point selected by
// Condition, land on To.
type Edge struct {
	To        StateID
	Condition charset.Condition
}

// NFA is a non-deterministic finite automaton over Unicode code points,
// with edges labeled by conditions over a shared charset.SpanningSet.
type NFA struct {
	out      [][]Edge        // out[s] = outgoing edges of state s, one per target, in insertion order
	in       [][]StateID     // in[s] = states with an edge into s (dedup, unordered)
	start    StateID
	accept   map[StateID]bool
	removed  map[StateID]bool
	spanning *charset.SpanningSet

	deterministic bool
	cyclic        bool
}

// NewEmpty returns the automaton accepting no strings at all.
func NewEmpty() *NFA {
	return &NFA{
		out:           [][]Edge{{}},
		in:            [][]StateID{nil},
		start:         0,
		accept:        map[StateID]bool{},
		removed:       map[StateID]bool{},
		spanning:      charset.NewEmptySpanningSet(),
		deterministic: true,
		cyclic:        false,
	}
}

// NewEmptyString returns the automaton accepting only the empty string.
func NewEmptyString() *NFA {
	n := NewEmpty()
	n.Accept(n.start)
	return n
}

// NewTotal returns the automaton accepting every string over every code
// point (a single accepting state with a self-loop on the total
// condition).
func NewTotal() *NFA {
	n := NewEmpty()
	n.spanning = charset.NewTotalSpanningSet()
	n.Accept(n.start)
	n.AddTransition(0, 0, charset.ConditionTotal(n.spanning))
	return n
}

// FromRange returns the automaton accepting exactly the single-character
// strings whose code point lies in r.
func FromRange(r charset.RangeSet) (*NFA, error) {
	n := NewEmpty()
	if r.IsEmpty() {
		return n, nil
	}
	target := n.NewState()
	spanning := charset.ComputeSpanningSet([]charset.RangeSet{r})
	cond, err := charset.ConditionFromRange(r, spanning)
	if err != nil {
		return nil, err
	}
	n.spanning = spanning
	n.AddTransition(0, target, cond)
	n.Accept(target)
	return n, nil
}

// Start returns the start state.
func (n *NFA) Start() StateID { return n.start }

// SpanningSet returns the automaton's alphabet partition.
func (n *NFA) SpanningSet() *charset.SpanningSet { return n.spanning }

// IsAccept reports whether s is an accepting state.
func (n *NFA) IsAccept(s StateID) bool { return n.accept[s] }

// IsDeterministic reports the monotone, conservatively-maintained
// determinism flag.
func (n *NFA) IsDeterministic() bool { return n.deterministic }

// IsCyclic reports the monotone, conservatively-maintained cyclicity
// flag.
func (n *NFA) IsCyclic() bool { return n.cyclic }

// SetCyclic forcibly marks the automaton cyclic; used by operations
// (Repeat's unbounded case) that know a back-edge was introduced even
// though no single AddTransition call could detect the whole cycle.
func (n *NFA) SetCyclic(v bool) { n.cyclic = v }

// NumStates returns the number of live (non-removed) states.
func (n *NFA) NumStates() int {
	return len(n.out) - len(n.removed)
}

// capacity returns the size of the dense state arena, including removed
// slots that have not yet been reclaimed.
func (n *NFA) capacity() int { return len(n.out) }

// Capacity is capacity exported for callers outside the package that
// need an upper bound on live StateIDs, such as a sparse.SparseSet sized
// to the arena.
func (n *NFA) Capacity() int { return n.capacity() }

// StateIDs returns the live state IDs in ascending order.
func (n *NFA) StateIDs() []StateID {
	out := make([]StateID, 0, n.NumStates())
	for i := 0; i < len(n.out); i++ {
		s := StateID(i)
		if !n.removed[s] {
			out = append(out, s)
		}
	}
	return out
}

// Edges returns the outgoing edges of s.
func (n *NFA) Edges(s StateID) []Edge { return n.out[s] }

// EdgesInto returns the states with an edge into s.
func (n *NFA) EdgesInto(s StateID) []StateID { return n.in[s] }

// AcceptStates returns the accepting states in ascending order.
func (n *NFA) AcceptStates() []StateID {
	out := make([]StateID, 0, len(n.accept))
	for s := range n.accept {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String renders a short debug summary, matching the teacher's terse
// Stringer convention.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, deterministic: %v, cyclic: %v}",
		n.NumStates(), n.start, n.deterministic, n.cyclic)
}

func (n *NFA) assertStateExists(s StateID) {
	if int(s) >= len(n.out) || n.removed[s] {
		panic(fmt.Sprintf("automaton: state %d does not exist", s))
	}
}
