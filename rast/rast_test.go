package rast

import (
	"context"
	"testing"

	"github.com/RegexSolver/regexsolver/analyze"
	"github.com/RegexSolver/regexsolver/charset"
)

func char(lo, hi rune) *Regex { return NewCharacter(charset.FromRange(lo, hi)) }
func lit(r rune) *Regex       { return NewCharacter(charset.Single(r)) }

func assertString(t *testing.T, r *Regex, want string) {
	t.Helper()
	if got := r.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestConcatMerge(t *testing.T) {
	a := lit('a')
	result := a.Concat(a, true)
	if result.Kind != KindRepetition || result.Min != 2 {
		t.Fatalf("expected a{2}-style repetition, got %v", result)
	}
}

func TestConcatEmptyIdentity(t *testing.T) {
	a := lit('a')
	if !Equal(a.Concat(NewEmptyString(), true), a) {
		t.Fatalf("concat with empty string should be identity")
	}
	if !NewEmpty().Concat(a, true).IsEmpty() {
		t.Fatalf("concat with empty language should stay empty")
	}
}

func TestRepeatFusion(t *testing.T) {
	a := lit('a')
	star := a.Repeat(0, nil)
	plus := a.Repeat(1, nil)
	if !Equal(a.Concat(star, true), plus) {
		t.Fatalf("a followed by a* should fuse into a+")
	}
}

func TestRepeatOfRepetitionSmallRatioFolds(t *testing.T) {
	two := uint32(2)
	four := uint32(4)
	a := lit('a')
	inner := a.Repeat(0, &two)
	outer := inner.Repeat(0, &four)
	if outer.Kind != KindRepetition || outer.Sub.Kind == KindRepetition {
		t.Fatalf("expected fold into a single repetition over the literal, got %v", outer)
	}
}

func TestUnionEmptyIdentity(t *testing.T) {
	a := lit('a')
	if !Equal(a.Union(NewEmpty()), a) {
		t.Fatalf("union with empty language should be identity")
	}
	if !Equal(a.Union(a), a) {
		t.Fatalf("union with self should be identity")
	}
}

func TestUnionCharacters(t *testing.T) {
	a := lit('a')
	b := lit('b')
	u := a.Union(b)
	if u.Kind != KindCharacter {
		t.Fatalf("union of two characters should merge into one character class, got %v", u.Kind)
	}
}

func TestUnionOptional(t *testing.T) {
	a := lit('a')
	u := a.Union(NewEmptyString())
	if u.Kind != KindRepetition || u.Min != 0 {
		t.Fatalf("union with empty string should produce an optional repetition, got %v", u)
	}
}

func TestGetCommonAffixPrefix(t *testing.T) {
	ab := lit('a').Concat(lit('b'), true)
	ac := lit('a').Concat(lit('c'), true)
	prefix, self, other, suffix := ab.GetCommonAffixes(ac)
	if prefix == nil || !Equal(prefix, lit('a')) {
		t.Fatalf("expected common prefix 'a', got %v", prefix)
	}
	if suffix != nil {
		t.Fatalf("expected no common suffix, got %v", suffix)
	}
	if !Equal(self, lit('b')) || !Equal(other, lit('c')) {
		t.Fatalf("expected remainders b and c, got %v / %v", self, other)
	}
}

func TestSimplifyFoldsNestedRepetition(t *testing.T) {
	two := uint32(2)
	three := uint32(3)
	a := lit('a')
	nested := NewRepetition(NewRepetition(a, 2, &two), 3, &three)
	simplified := nested.Simplify()
	if simplified.Kind != KindRepetition || simplified.Sub.Kind == KindRepetition {
		t.Fatalf("expected folded repetition, got %v", simplified)
	}
	if simplified.Min != 6 {
		t.Fatalf("expected min 6, got %d", simplified.Min)
	}
}

func TestGetLength(t *testing.T) {
	ab := lit('a').Concat(lit('b'), true)
	min, max := ab.GetLength()
	if min == nil || max == nil || *min != 2 || *max != 2 {
		t.Fatalf("expected exact length 2, got min=%v max=%v", min, max)
	}

	star := lit('a').Repeat(0, nil)
	min, max = star.GetLength()
	if min == nil || *min != 0 || max != nil {
		t.Fatalf("expected unbounded max for a*, got min=%v max=%v", min, max)
	}
}

func TestGetCardinality(t *testing.T) {
	abc := char('a', 'c')
	card := abc.GetCardinality()
	if card.Kind != analyze.CardinalityInteger || card.Value != 3 {
		t.Fatalf("expected cardinality 3, got %+v", card)
	}

	star := lit('a').Repeat(0, nil)
	if star.GetCardinality().Kind != analyze.CardinalityInfinite {
		t.Fatalf("expected infinite cardinality for a*")
	}
}

func TestNumberOfStatesMatchesBuiltAutomaton(t *testing.T) {
	r, err := New("ab|cd")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	nfa, err := r.ToAutomaton(context.Background())
	if err != nil {
		t.Fatalf("ToAutomaton: %v", err)
	}
	want := r.NumberOfStates()
	got := len(nfa.StateIDs())
	if got != want {
		t.Fatalf("NumberOfStates() = %d, built automaton has %d states", want, got)
	}
}

func TestNewEmptyAndEmptyString(t *testing.T) {
	empty, err := New("[]")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !empty.IsEmpty() {
		t.Fatalf("expected empty language")
	}

	emptyStr, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !emptyStr.IsEmptyString() {
		t.Fatalf("expected empty string")
	}
}

func TestNewLiteralConcat(t *testing.T) {
	r, err := New("abc")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	assertString(t, r, "abc")
}

func TestNewStarPlusQuest(t *testing.T) {
	r, err := New("a*")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Kind != KindRepetition || r.Min != 0 || r.Max != nil {
		t.Fatalf("expected unbounded repetition from a*, got %v", r)
	}

	r, err = New("a+")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Kind != KindRepetition || r.Min != 1 || r.Max != nil {
		t.Fatalf("expected min-1 repetition from a+, got %v", r)
	}
}

func TestNewCharClass(t *testing.T) {
	r, err := New("[a-c]")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Kind != KindCharacter {
		t.Fatalf("expected character node, got %v", r.Kind)
	}
	if r.Range.Cardinality() != 3 {
		t.Fatalf("expected 3 code points, got %d", r.Range.Cardinality())
	}
}

func TestNewAlternation(t *testing.T) {
	r, err := New("ab|cd")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Kind != KindAlternation {
		t.Fatalf("expected alternation, got %v", r.Kind)
	}
}
