package synth

import (
	"context"
	"testing"

	"github.com/RegexSolver/regexsolver/rast"
)

// roundTrip parses pattern, builds its automaton and synthesizes a regex
// back from that automaton. ToRegex returns a regex only after checking
// that it is equivalent to the automaton, so a non-nil result is the
// round-trip check.
func roundTrip(t *testing.T, pattern string) *rast.Regex {
	t.Helper()
	r, err := rast.New(pattern)
	if err != nil {
		t.Fatalf("rast.New(%q): %v", pattern, err)
	}
	a, err := r.ToAutomaton(context.Background())
	if err != nil {
		t.Fatalf("ToAutomaton(%q): %v", pattern, err)
	}
	out, err := ToRegex(context.Background(), a)
	if err != nil {
		t.Fatalf("ToRegex(%q): %v", pattern, err)
	}
	if out == nil {
		t.Fatalf("ToRegex(%q) found no equivalent regex", pattern)
	}
	return out
}

func TestToRegexLiteral(t *testing.T) {
	roundTrip(t, "abc")
}

func TestToRegexAlternation(t *testing.T) {
	roundTrip(t, "ab|cd")
}

func TestToRegexStar(t *testing.T) {
	roundTrip(t, "a*bc*")
}

func TestToRegexNestedRepetition(t *testing.T) {
	roundTrip(t, "(abc|fg){2}")
}

func TestToRegexDotStarShape(t *testing.T) {
	roundTrip(t, ".*abc")
}

func TestToRegexSelfLoopShape(t *testing.T) {
	roundTrip(t, "a(bcfe|bcdg|mkv)*")
}

func TestToRegexEmptyAutomaton(t *testing.T) {
	empty, err := rast.New("[]")
	if err != nil {
		t.Fatalf("rast.New: %v", err)
	}
	a, err := empty.ToAutomaton(context.Background())
	if err != nil {
		t.Fatalf("ToAutomaton: %v", err)
	}
	out, err := ToRegex(context.Background(), a)
	if err != nil {
		t.Fatalf("ToRegex: %v", err)
	}
	if out == nil || !out.IsEmpty() {
		t.Fatalf("expected empty regex, got %v", out)
	}
}
