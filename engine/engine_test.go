package engine

import (
	"context"
	"testing"
)

func mustTerm(t *testing.T, pattern string) Term {
	t.Helper()
	term, err := FromRegex(pattern)
	if err != nil {
		t.Fatalf("FromRegex(%q): %v", pattern, err)
	}
	return term
}

func TestIntersectionOfDisjointLiterals(t *testing.T) {
	a := mustTerm(t, "a")
	b := mustTerm(t, "b")

	if _, err := a.Intersection(context.Background(), []Term{b}); err != nil {
		t.Fatalf("Intersection: %v", err)
	}
}

func TestSubtractionStarMinusEmptyString(t *testing.T) {
	a := mustTerm(t, "a*")
	empty := mustTerm(t, "")

	result, err := a.Subtraction(context.Background(), empty)
	if err != nil {
		t.Fatalf("Subtraction: %v", err)
	}
	want := mustTerm(t, "a+")
	if !Equal(result, want) {
		t.Fatalf("got %+v, want %+v", result, want)
	}
}

func TestSubtractionStarMinusTripleStar(t *testing.T) {
	a := mustTerm(t, "x*")
	b := mustTerm(t, "(xxx)*")

	result, err := a.Subtraction(context.Background(), b)
	if err != nil {
		t.Fatalf("Subtraction: %v", err)
	}
	want := mustTerm(t, "(xxx)*(x|xx)")
	equivalent, err := result.AreEquivalent(context.Background(), want)
	if err != nil {
		t.Fatalf("AreEquivalent: %v", err)
	}
	if !equivalent {
		t.Fatalf("got %+v, want equivalent to %+v", result, want)
	}
}

func TestIntersectionDisjointStars(t *testing.T) {
	a := mustTerm(t, "a*")
	b := mustTerm(t, "b*")

	result, err := a.Intersection(context.Background(), []Term{b})
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	want := mustTerm(t, "")
	if !Equal(result, want) {
		t.Fatalf("got %+v, want %+v", result, want)
	}
}

func TestIntersectionStarAndTripleStar(t *testing.T) {
	a := mustTerm(t, "x*")
	b := mustTerm(t, "(xxx)*")

	result, err := a.Intersection(context.Background(), []Term{b})
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	want := mustTerm(t, "(x{3})*")
	equivalent, err := result.AreEquivalent(context.Background(), want)
	if err != nil {
		t.Fatalf("AreEquivalent: %v", err)
	}
	if !equivalent {
		t.Fatalf("got %+v, want equivalent to %+v", result, want)
	}
}

func TestGenerateStrings(t *testing.T) {
	term := mustTerm(t, "(abc|de){2}")

	strings, err := term.GenerateStrings(context.Background(), 3)
	if err != nil {
		t.Fatalf("GenerateStrings: %v", err)
	}
	if len(strings) != 3 {
		t.Fatalf("got %d strings, want 3: %v", len(strings), strings)
	}
}

func TestUnionOfRegexTerms(t *testing.T) {
	a := mustTerm(t, "abc")
	b := mustTerm(t, "de")
	c := mustTerm(t, "fghi")

	union, err := a.Union(context.Background(), []Term{b, c})
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if union.Kind != KindRegex {
		t.Fatalf("expected regex-form result, got %+v", union)
	}
	if union.Regex.String() != "(abc|de|fghi)" {
		t.Fatalf("got %q", union.Regex.String())
	}
}
