package generate

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

func TestStringsLiteral(t *testing.T) {
	a := literal("cat")
	got, err := Strings(context.Background(), a, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got["cat"] {
		t.Fatalf("expected exactly {\"cat\"}, got %v", got)
	}
}

func TestStringsUnionRespectsCount(t *testing.T) {
	digits, err := automaton.FromRange(charset.FromRange('0', '9'))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Strings(context.Background(), digits, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected exactly 3 strings, got %d: %v", len(got), got)
	}
	for s := range got {
		if !MatchString(digits, s) {
			t.Fatalf("generated string %q should match the automaton", s)
		}
	}
}

func TestStringsEmptyAutomaton(t *testing.T) {
	got, err := Strings(context.Background(), automaton.NewEmpty(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no strings from the empty automaton, got %v", got)
	}
}

func TestMatchString(t *testing.T) {
	a := literal("dog")
	if !MatchString(a, "dog") {
		t.Fatal("should match dog")
	}
	if MatchString(a, "cat") {
		t.Fatal("should not match cat")
	}
}
