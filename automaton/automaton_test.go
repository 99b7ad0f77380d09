package automaton

import (
	"testing"

	"github.com/RegexSolver/regexsolver/charset"
)

func TestNewEmptyAndTotal(t *testing.T) {
	e := NewEmpty()
	if !e.IsEmpty() {
		t.Fatal("NewEmpty should be empty")
	}
	tot := NewTotal()
	if !tot.IsTotal() {
		t.Fatal("NewTotal should be total")
	}
}

func TestFromRangeAndTransitions(t *testing.T) {
	a, err := FromRange(charset.FromRange('a', 'z'))
	if err != nil {
		t.Fatal(err)
	}
	if a.IsEmpty() {
		t.Fatal("should accept at least one string")
	}
	if a.OutDegree(a.Start()) != 1 {
		t.Fatalf("expected one outgoing edge from start, got %d", a.OutDegree(a.Start()))
	}
}

func TestAddTransitionMergesConditions(t *testing.T) {
	n := NewEmpty()
	s := n.NewState()
	set := charset.ComputeSpanningSet([]charset.RangeSet{charset.FromRange('a', 'm')})
	n.spanning = set
	c1, err := charset.ConditionFromRange(charset.FromRange('a', 'm'), set)
	if err != nil {
		t.Fatal(err)
	}
	n.AddTransition(n.Start(), s, c1)
	n.AddTransition(n.Start(), s, c1.Complement())
	if n.OutDegree(n.Start()) != 1 {
		t.Fatalf("expected a single merged edge, got %d", n.OutDegree(n.Start()))
	}
	if !n.Edges(n.Start())[0].Condition.IsTotal() {
		t.Fatal("the merged edge should carry the union of both conditions")
	}
}

func TestAddEpsilonCopiesEdgesAndAcceptance(t *testing.T) {
	n := NewEmpty()
	mid := n.NewState()
	tgt := n.NewState()
	n.spanning = charset.NewTotalSpanningSet()
	n.AddTransition(mid, tgt, charset.ConditionTotal(n.spanning))
	n.Accept(tgt)

	n.AddEpsilon(n.Start(), mid)

	if n.OutDegree(n.Start()) != 1 {
		t.Fatalf("epsilon should have copied mid's outgoing edge, got %d edges", n.OutDegree(n.Start()))
	}
	for _, e := range n.Edges(n.Start()) {
		if e.To != tgt {
			t.Fatalf("expected copied edge to target %d, got %d", tgt, e.To)
		}
	}
}

func TestRemoveStateTrailingReclaim(t *testing.T) {
	n := NewEmpty()
	s1 := n.NewState()
	before := n.capacity()
	n.RemoveState(s1)
	if n.capacity() != before-1 {
		t.Fatalf("removing the trailing state should shrink the arena, capacity=%d want=%d", n.capacity(), before-1)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	n := NewEmpty()
	s := n.NewState()
	n.Accept(s)
	clone := n.Clone()
	clone.Unaccept(s)
	if !n.IsAccept(s) {
		t.Fatal("mutating the clone should not affect the original")
	}
}

func TestApplyNewSpanningSet(t *testing.T) {
	a, err := FromRange(charset.FromRange('a', 'm'))
	if err != nil {
		t.Fatal(err)
	}
	wider := charset.ComputeSpanningSet([]charset.RangeSet{
		charset.FromRange('a', 'm'),
		charset.FromRange('g', 'z'),
	})
	if err := a.ApplyNewSpanningSet(wider); err != nil {
		t.Fatal(err)
	}
	if a.SpanningSet() != wider {
		t.Fatal("spanning set should be replaced")
	}
}
