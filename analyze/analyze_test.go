package analyze

import (
	"context"
	"testing"

	"github.com/RegexSolver/regexsolver/algebra"
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
	out, err := algebra.Concatenate(parts)
	if err != nil {
		panic(err)
	}
	return out
}

func TestGetCardinalityFinite(t *testing.T) {
	ctx := context.Background()
	u, err := algebra.Union(literal("ab"), literal("ac"))
	if err != nil {
		t.Fatal(err)
	}
	det, err := algebra.Determinize(ctx, u)
	if err != nil {
		t.Fatal(err)
	}
	card, known, err := GetCardinality(det)
	if err != nil {
		t.Fatal(err)
	}
	if !known {
		t.Fatal("deterministic automaton should yield a known cardinality")
	}
	if card.Kind != CardinalityInteger || card.Value != 2 {
		t.Fatalf("expected Integer(2), got %+v", card)
	}
}

func TestGetCardinalityInfinite(t *testing.T) {
	star, err := algebra.Repeat(literal("x"), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	card, known, err := GetCardinality(star)
	if err != nil {
		t.Fatal(err)
	}
	if !known || card.Kind != CardinalityInfinite {
		t.Fatalf("star should be infinite, got %+v known=%v", card, known)
	}
}

func TestGetLength(t *testing.T) {
	u, err := algebra.Union(literal("ab"), literal("abcd"))
	if err != nil {
		t.Fatal(err)
	}
	min, max := GetLength(u)
	if min == nil || *min != 2 {
		t.Fatalf("expected min length 2, got %v", min)
	}
	if max == nil || *max != 4 {
		t.Fatalf("expected max length 4, got %v", max)
	}
}

func TestIsEquivalent(t *testing.T) {
	ctx := context.Background()
	a := literal("cd")
	b := literal("cd")
	eq, err := IsEquivalent(ctx, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Fatal("identical literals should be equivalent")
	}

	c := literal("ce")
	eq, err = IsEquivalent(ctx, a, c)
	if err != nil {
		t.Fatal(err)
	}
	if eq {
		t.Fatal("different literals should not be equivalent")
	}
}

func TestIsSubsetOf(t *testing.T) {
	ctx := context.Background()
	abc, err := algebra.Union(literal("abc"), literal("def"))
	if err != nil {
		t.Fatal(err)
	}
	wide, err := algebra.Union(abc, literal("xyz"))
	if err != nil {
		t.Fatal(err)
	}
	ok, err := IsSubsetOf(ctx, abc, wide)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("abc should be a subset of abc|def|xyz")
	}
	ok, err = IsSubsetOf(ctx, wide, abc)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("the wider automaton should not be a subset of the narrower one")
	}
}
