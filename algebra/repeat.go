package algebra

import "github.com/RegexSolver/regexsolver/automaton"

// Repeat returns the automaton accepting a's language repeated between
// min and max times (max == nil means unbounded, i.e. Kleene star/plus
// shape). a is not modified.
//
// Grounded on FastAutomaton::repeat, including every shape:
//   - max < min: the empty language.
//   - min == 0 with incoming edges into the start state: a fresh start
//     state is inserted (epsilon-bridged to the old one) so the "skip
//     entirely" path doesn't alias an aliased start.
//   - min <= 1 && max == 1: a plain optional, no cloning needed.
//   - unbounded max: the last copy's accept state(s) loop back to its own
//     start (self-loop shape) when they cleanly can, otherwise every
//     accept state gets a copy of the start's outgoing edges instead.
//   - bounded max: min-1 forced copies, then (max-min) optional copies
//     whose accept states all remain accepting.
func Repeat(a *automaton.NFA, min uint32, max *uint32) (*automaton.NFA, error) {
	out := a.Clone()

	if max != nil && min > *max {
		out.ApplyModel(automaton.NewEmpty())
		return out, nil
	}

	toRepeat := out.Clone()

	if min == 0 && out.InDegree(out.Start()) != 0 {
		fresh := out.NewState()
		out.AddEpsilon(fresh, out.Start())
		out.SetStart(fresh)

		if max == nil {
			for _, acc := range out.AcceptStates() {
				out.AddEpsilon(acc, out.Start())
			}
			out.Accept(out.Start())
			return out, nil
		}
	}

	if max != nil && min <= 1 && *max == 1 {
		if min == 0 {
			out.Accept(out.Start())
		}
		return out, nil
	}

	forced := 0
	if min > 0 {
		forced = int(min) - 1
	}
	for i := 0; i < forced; i++ {
		if err := concat(out, toRepeat); err != nil {
			return nil, err
		}
	}

	if max == nil {
		tail := toRepeat.Clone()
		acceptList := tail.AcceptStates()

		if len(acceptList) == 1 && tail.OutDegree(acceptList[0]) == 0 && tail.InDegree(tail.Start()) == 0 {
			accept := acceptList[0]
			tail.AddEpsilon(accept, tail.Start())
			oldStart := tail.Start()
			tail.SetStart(accept)
			tail.RemoveState(oldStart)
		} else {
			startEdges := append([]automaton.Edge(nil), tail.Edges(tail.Start())...)
			for _, acc := range tail.AcceptStates() {
				for _, e := range startEdges {
					tail.AddTransition(acc, e.To, e.Condition)
				}
			}
			tail.Accept(tail.Start())
		}
		tail.SetCyclic(true)

		if min == 0 {
			out.ApplyModel(tail)
		} else if err := concat(out, tail); err != nil {
			return nil, err
		}
		return out, nil
	}

	var endStates []automaton.StateID
	endStates = append(endStates, out.AcceptStates()...)
	lower := min
	if lower < 1 {
		lower = 1
	}
	for i := lower; i < *max; i++ {
		if err := concat(out, toRepeat); err != nil {
			return nil, err
		}
		endStates = append(endStates, out.AcceptStates()...)
	}
	for _, s := range endStates {
		out.Accept(s)
	}
	if min == 0 {
		out.Accept(out.Start())
	}
	return out, nil
}
