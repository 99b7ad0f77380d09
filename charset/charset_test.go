package charset

import "testing"

func TestRangeSetUnionIntersectionDifference(t *testing.T) {
	a := FromRange('a', 'm')
	b := FromRange('g', 'z')

	u := a.Union(b)
	if !u.Equal(FromRange('a', 'z')) {
		t.Fatalf("union = %v, want a-z", u)
	}

	i := a.Intersection(b)
	if !i.Equal(FromRange('g', 'm')) {
		t.Fatalf("intersection = %v, want g-m", i)
	}

	d := a.Difference(b)
	if !d.Equal(FromRange('a', 'f')) {
		t.Fatalf("difference = %v, want a-f", d)
	}
}

func TestRangeSetComplement(t *testing.T) {
	a := FromRange('a', 'z')
	c := a.Complement()
	if c.HasIntersection(a) {
		t.Fatal("complement should not intersect original")
	}
	if !c.Union(a).IsTotal() {
		t.Fatal("set union complement should be total")
	}
}

func TestComputeSpanningSetDisjoint(t *testing.T) {
	ranges := []RangeSet{
		FromRange('a', 'm'),
		FromRange('g', 'z'),
		Single('5'),
	}
	ss := ComputeSpanningSet(ranges)

	for i := 0; i < ss.NumAtoms(); i++ {
		for j := i + 1; j < ss.NumAtoms(); j++ {
			if ss.Atom(i).HasIntersection(ss.Atom(j)) {
				t.Fatalf("atoms %d and %d overlap: %v vs %v", i, j, ss.Atom(i), ss.Atom(j))
			}
		}
	}

	total := Empty()
	for _, a := range ss.Atoms() {
		total = total.Union(a)
	}
	total = total.Union(ss.Rest())
	if !total.IsTotal() {
		t.Fatal("atoms plus rest should cover every code point")
	}
}

func TestConditionRoundTrip(t *testing.T) {
	ss := ComputeSpanningSet([]RangeSet{FromRange('a', 'm'), FromRange('g', 'z')})

	r := FromRange('a', 'm')
	cond, err := ConditionFromRange(r, ss)
	if err != nil {
		t.Fatal(err)
	}
	back, err := cond.ToRange(ss)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(r) {
		t.Fatalf("round trip = %v, want %v", back, r)
	}
}

func TestConditionOps(t *testing.T) {
	ss := ComputeSpanningSet([]RangeSet{FromRange('a', 'm'), FromRange('g', 'z')})

	empty := ConditionEmpty(ss)
	total := ConditionTotal(ss)
	if !empty.IsEmpty() || empty.IsTotal() {
		t.Fatal("empty condition misclassified")
	}
	if !total.IsTotal() || total.IsEmpty() {
		t.Fatal("total condition misclassified")
	}
	if !empty.Union(total).IsTotal() {
		t.Fatal("empty union total should be total")
	}
	if !total.Complement().IsEmpty() {
		t.Fatal("complement of total should be empty")
	}
}

func TestProjector(t *testing.T) {
	from := ComputeSpanningSet([]RangeSet{FromRange(0, 2), FromRange(4, 6), Single(9)})
	to := ComputeSpanningSet([]RangeSet{FromRange(0, 1), Single(2), FromRange(4, 6), Single(9), FromRange(0x20, 0x22)})

	p := NewProjector(from, to)

	empty := ConditionEmpty(from)
	converted, err := p.Convert(empty)
	if err != nil {
		t.Fatal(err)
	}
	if !converted.IsEmpty() {
		t.Fatal("projecting empty should stay empty")
	}

	total := ConditionTotal(from)
	converted, err = p.Convert(total)
	if err != nil {
		t.Fatal(err)
	}
	if !converted.IsTotal() {
		t.Fatal("projecting total should stay total")
	}

	r := FromRange(0, 2)
	cond, err := ConditionFromRange(r, from)
	if err != nil {
		t.Fatal(err)
	}
	converted, err = p.Convert(cond)
	if err != nil {
		t.Fatal(err)
	}
	back, err := converted.ToRange(to)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(r) {
		t.Fatalf("projected range = %v, want %v", back, r)
	}
}
