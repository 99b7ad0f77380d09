package algebra

import (
	"context"
	"testing"

	"github.com/RegexSolver/regexsolver/automaton"
	"github.com/RegexSolver/regexsolver/charset"
)

func literal(s string) *automaton.NFA {
	var parts []*automaton.NFA
	for _, r := range s {
		a, err := automaton.FromRange(charset.Single(r))
		if err != nil {
			panic(err)
		}
		parts = append(parts, a)
	}
	out, err := Concatenate(parts)
	if err != nil {
		panic(err)
	}
	return out
}

// accepts runs a over s with subset-style NFA simulation, good enough for
// tests that never build huge automatons.
func accepts(a *automaton.NFA, s string) bool {
	current := map[automaton.StateID]bool{a.Start(): true}
	for _, r := range s {
		next := map[automaton.StateID]bool{}
		for st := range current {
			for _, e := range a.Edges(st) {
				if e.Condition.HasCharacter(r, a.SpanningSet()) {
					next[e.To] = true
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		current = next
	}
	for st := range current {
		if a.IsAccept(st) {
			return true
		}
	}
	return false
}

func TestUnion(t *testing.T) {
	u, err := Union(literal("cat"), literal("dog"))
	if err != nil {
		t.Fatal(err)
	}
	if !accepts(u, "cat") || !accepts(u, "dog") {
		t.Fatal("union should accept both operands")
	}
	if accepts(u, "cow") {
		t.Fatal("union should not accept unrelated string")
	}
}

func TestConcatenate(t *testing.T) {
	c, err := Concatenate([]*automaton.NFA{literal("foo"), literal("bar")})
	if err != nil {
		t.Fatal(err)
	}
	if !accepts(c, "foobar") {
		t.Fatal("concatenation should accept the joined string")
	}
	if accepts(c, "foo") || accepts(c, "bar") {
		t.Fatal("concatenation should not accept either half alone")
	}
}

func TestRepeatBounded(t *testing.T) {
	two := uint32(2)
	r, err := Repeat(literal("ab"), 1, &two)
	if err != nil {
		t.Fatal(err)
	}
	if accepts(r, "") {
		t.Fatal("min=1 should reject empty string")
	}
	if !accepts(r, "ab") || !accepts(r, "abab") {
		t.Fatal("should accept 1 or 2 repetitions")
	}
	if accepts(r, "ababab") {
		t.Fatal("should reject 3 repetitions past max")
	}
}

func TestRepeatUnbounded(t *testing.T) {
	r, err := Repeat(literal("x"), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !accepts(r, "") || !accepts(r, "x") || !accepts(r, "xxxxx") {
		t.Fatal("star should accept any number of x, including zero")
	}
	if accepts(r, "xy") {
		t.Fatal("star should not accept a foreign character")
	}
}

func TestDeterminize(t *testing.T) {
	u, err := Union(literal("ab"), literal("ac"))
	if err != nil {
		t.Fatal(err)
	}
	d, err := Determinize(context.Background(), u)
	if err != nil {
		t.Fatal(err)
	}
	if !d.IsDeterministic() {
		t.Fatal("result should be deterministic")
	}
	if !accepts(d, "ab") || !accepts(d, "ac") {
		t.Fatal("determinized automaton should still accept both originals")
	}
	if accepts(d, "ad") {
		t.Fatal("determinized automaton should not accept a new string")
	}
}

func TestIntersect(t *testing.T) {
	a, err := Union(literal("cat"), literal("dog"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Union(literal("dog"), literal("cow"))
	if err != nil {
		t.Fatal(err)
	}
	i, err := Intersect(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !accepts(i, "dog") {
		t.Fatal("intersection should accept the common string")
	}
	if accepts(i, "cat") || accepts(i, "cow") {
		t.Fatal("intersection should reject strings only one side accepts")
	}
}

func TestHasIntersection(t *testing.T) {
	a := literal("cat")
	b := literal("dog")
	has, err := HasIntersection(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Fatal("disjoint literals should not intersect")
	}

	c, err := Union(literal("cat"), literal("dog"))
	if err != nil {
		t.Fatal(err)
	}
	has, err = HasIntersection(a, c)
	if err != nil {
		t.Fatal(err)
	}
	if !has {
		t.Fatal("cat should intersect a union that includes cat")
	}
}

func TestComplementAndSubtract(t *testing.T) {
	ctx := context.Background()
	u, err := Union(literal("cat"), literal("dog"))
	if err != nil {
		t.Fatal(err)
	}
	det, err := Determinize(ctx, u)
	if err != nil {
		t.Fatal(err)
	}
	det, err = Totalize(det)
	if err != nil {
		t.Fatal(err)
	}

	comp, err := Complement(det)
	if err != nil {
		t.Fatal(err)
	}
	if accepts(comp, "cat") || accepts(comp, "dog") {
		t.Fatal("complement should reject what the original accepts")
	}
	if !accepts(comp, "cow") {
		t.Fatal("complement should accept a string the original rejects")
	}

	detB, err := Determinize(ctx, literal("dog"))
	if err != nil {
		t.Fatal(err)
	}
	sub, err := Subtract(u, detB)
	if err != nil {
		t.Fatal(err)
	}
	if !accepts(sub, "cat") {
		t.Fatal("subtraction should keep cat")
	}
	if accepts(sub, "dog") {
		t.Fatal("subtraction should remove dog")
	}
}
