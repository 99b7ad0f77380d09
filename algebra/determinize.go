package algebra

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/RegexSolver/regexsolver/automaton"
	"github.com/RegexSolver/regexsolver/charset"
	"github.com/RegexSolver/regexsolver/config"
)

// Determinize returns a deterministic automaton equivalent to a, via
// subset construction over a's spanning set atoms.
//
// Grounded on FastAutomaton::determinize: a worklist of state-ID subsets,
// interned by a hash of their sorted contents, one outgoing edge built
// per atom ("base") of the spanning set.
func Determinize(ctx context.Context, a *automaton.NFA) (*automaton.NFA, error) {
	if a.IsDeterministic() {
		return a.Clone(), nil
	}
	profile := config.ProfileFrom(ctx)

	bases := charset.AtomConditions(a.SpanningSet())

	out := automaton.NewEmpty()
	out.ApplyNewSpanningSet(a.SpanningSet())

	type item struct {
		states []automaton.StateID
		mapped automaton.StateID
	}

	seen := map[string]automaton.StateID{}
	initial := []automaton.StateID{a.Start()}
	seen[subsetKey(initial)] = out.Start()

	worklist := []item{{states: initial, mapped: out.Start()}}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		if err := profile.CheckTimeout(); err != nil {
			return nil, err
		}

		for _, s := range cur.states {
			if a.IsAccept(s) {
				out.Accept(cur.mapped)
				break
			}
		}

		for _, base := range bases {
			var toAdd []automaton.StateID
			for _, from := range cur.states {
				for _, e := range a.Edges(from) {
					if e.Condition.HasIntersection(base) {
						toAdd = insertSorted(toAdd, e.To)
					}
				}
			}
			if len(toAdd) == 0 {
				continue
			}
			key := subsetKey(toAdd)
			q, ok := seen[key]
			if !ok {
				q = out.NewState()
				seen[key] = q
				worklist = append(worklist, item{states: toAdd, mapped: q})
			}
			out.AddTransition(cur.mapped, q, base)
		}
	}

	return out, nil
}

func insertSorted(list []automaton.StateID, s automaton.StateID) []automaton.StateID {
	i := sort.Search(len(list), func(i int) bool { return list[i] >= s })
	if i < len(list) && list[i] == s {
		return list
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = s
	return list
}

func subsetKey(states []automaton.StateID) string {
	var b strings.Builder
	for _, s := range states {
		b.WriteString(strconv.FormatUint(uint64(s), 10))
		b.WriteByte(',')
	}
	return b.String()
}
