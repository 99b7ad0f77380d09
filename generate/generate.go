// Package generate produces sample strings belonging to an automaton's
// language, for use by callers that want concrete examples of what a
// pattern matches (test fixtures, fuzzers, documentation).
//
// Grounded on original_source/src/fast_automaton/generate.rs.
package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/RegexSolver/regexsolver/automaton"
	"github.com/RegexSolver/regexsolver/charset"
	"github.com/RegexSolver/regexsolver/config"
	"github.com/RegexSolver/regexsolver/simd"
)

// Strings returns up to number distinct strings accepted by a.
//
// Grounded on FastAutomaton::generate_strings: a BFS over (path-of-ranges,
// state) pairs; every time an accepting state is reached, walkOdometer
// draws strings from the path's ranges, one character per position. All
// positions advance by one character per string; a position that runs out
// restarts from its first character, and the walk ends when the last
// position runs out. The full cross product of the ranges is not
// enumerated.
func Strings(ctx context.Context, a *automaton.NFA, number int) (map[string]bool, error) {
	if a.IsEmpty() {
		return map[string]bool{}, nil
	}
	profile := config.ProfileFrom(ctx)

	strings_ := make(map[string]bool, min(number, 1000))
	rangesCache := map[string]charset.RangeSet{}
	visited := map[string]bool{}

	type workItem struct {
		ranges []charset.RangeSet
		state  automaton.StateID
	}
	worklist := []workItem{{nil, a.Start()}}

	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		if a.IsAccept(item.state) {
			if len(item.ranges) == 0 {
				strings_[""] = true
			} else if err := walkOdometer(profile, item.ranges, strings_, number); err != nil {
				return nil, err
			}
			if len(strings_) == number {
				break
			}
		}

		for _, e := range a.Edges(item.state) {
			if err := profile.CheckTimeout(); err != nil {
				return nil, err
			}
			key := e.Condition.String()
			rng, ok := rangesCache[key]
			if !ok {
				r, err := e.Condition.ToRange(a.SpanningSet())
				if err != nil {
					return nil, err
				}
				rangesCache[key] = r
				rng = r
			}
			if rng.IsEmpty() {
				continue
			}
			newRanges := append(append([]charset.RangeSet(nil), item.ranges...), rng)
			vkey := pathKey(newRanges, e.To)
			if !visited[vkey] {
				visited[vkey] = true
				worklist = append(worklist, workItem{newRanges, e.To})
			}
		}
	}

	return strings_, nil
}

// walkOdometer appends strings drawn from ranges (all positions advancing
// together, as described on Strings) into out, stopping once out has
// number entries or the last position's range is exhausted.
func walkOdometer(profile config.ExecutionProfile, ranges []charset.RangeSet, out map[string]bool, number int) error {
	iters := make([]*charset.RangeIter, len(ranges))
	for i, r := range ranges {
		iters[i] = r.Iterator()
	}

	for len(out) < number {
		if err := profile.CheckTimeout(); err != nil {
			return err
		}
		var buf []rune
		end := false
		for i := range ranges {
			if c, ok := iters[i].Next(); ok {
				buf = append(buf, c)
			} else {
				iters[i].Reset()
				if i+1 < len(ranges) {
					c2, _ := iters[i].Next()
					buf = append(buf, c2)
				} else {
					end = true
					break
				}
			}
		}
		if end {
			break
		}
		out[string(buf)] = true
	}
	return nil
}

// MatchString reports whether a accepts s, simulating every live NFA
// state in parallel. Used to sanity-check generated samples without
// requiring a is deterministic.
//
// ASCII input (the common case for generated samples) never needs UTF-8
// decoding, so it is scanned byte-by-byte directly; simd.IsASCII is the
// same fast scan the teacher package uses to pick its own ASCII
// fast path.
func MatchString(a *automaton.NFA, s string) bool {
	data := []byte(s)
	if simd.IsASCII(data) {
		return matchRunes(a, asciiRunes(data))
	}
	return matchRunes(a, []rune(s))
}

func asciiRunes(data []byte) []rune {
	out := make([]rune, len(data))
	for i, b := range data {
		out[i] = rune(b)
	}
	return out
}

func matchRunes(a *automaton.NFA, runes []rune) bool {
	current := map[automaton.StateID]bool{a.Start(): true}
	for _, r := range runes {
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

func pathKey(ranges []charset.RangeSet, state automaton.StateID) string {
	var b strings.Builder
	for _, r := range ranges {
		b.WriteString(r.String())
		b.WriteByte('|')
	}
	fmt.Fprintf(&b, "#%d", state)
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
