package synth

import (
	"context"

	"github.com/RegexSolver/regexsolver/charset"
	"github.com/RegexSolver/regexsolver/config"
	"github.com/RegexSolver/regexsolver/rast"
)

// convertToRegex walks a, which must already be a DAG (identify and
// apply components collapses every cycle into a nested transitionGraph
// edge), accumulating a regex per state in topological order: the regex
// reaching a state is the union, over every incoming edge, of the
// predecessor's regex concatenated with that edge's own regex. Returns
// nil (not an error) when a nested component can't be resolved to a
// regex — a legitimate "no regex found" outcome the caller falls back
// from.
//
// Grounded on StateEliminationAutomaton::convert_to_regex.
func (a *stateEliminationAutomaton) convertToRegex(ctx context.Context) (*rast.Regex, error) {
	if a.cyclic {
		return a.convertGraphToRegex(ctx)
	}
	profile := config.ProfileFrom(ctx)
	if err := profile.CheckTimeout(); err != nil {
		return nil, err
	}

	order, ok := a.statesTopoVec()
	if !ok {
		return nil, nil
	}

	regexMap := map[int]*rast.Regex{a.startState: rast.NewEmptyString()}

	for _, from := range order {
		current, ok := regexMap[from]
		if !ok {
			current = rast.NewEmptyString()
		}
		if from >= len(a.transitions) {
			continue
		}
		for _, e := range a.transitionsFromState(from) {
			var transitionRegex *rast.Regex
			switch e.t.kind {
			case transitionGraph:
				sub, err := e.t.graph.convertGraphToRegex(ctx)
				if err != nil {
					return nil, err
				}
				if sub == nil {
					return nil, nil
				}
				transitionRegex = sub
			case transitionWeight:
				transitionRegex = rast.NewCharacter(e.t.rng)
			default:
				transitionRegex = rast.NewEmptyString()
			}

			newRegex := current.Concat(transitionRegex, true)
			if existing, ok := regexMap[e.state]; ok {
				regexMap[e.state] = newRegex.Union(existing).Simplify()
			} else {
				regexMap[e.state] = newRegex
			}
		}
	}

	return regexMap[a.acceptState], nil
}

func (a *stateEliminationAutomaton) convertGraphToRegex(ctx context.Context) (*rast.Regex, error) {
	profile := config.ProfileFrom(ctx)
	if err := profile.CheckTimeout(); err != nil {
		return nil, err
	}
	if regex, err := a.convertShapeDotStar(ctx); err != nil {
		return nil, err
	} else if regex != nil {
		return regex, nil
	}
	if regex, err := a.convertShapeSelfLoop(ctx); err != nil {
		return nil, err
	} else if regex != nil {
		return regex, nil
	}
	return nil, nil
}

// convertShapeDotStar recognizes the A*B shape: every edge into the start
// state carries the same (or a contained) condition as the start state's
// own self-loop, so the whole cycle collapses into one "dot" character
// class repeated freely before the rest of the graph (B).
//
// Grounded on convert_shape_dot_star.
func (a *stateEliminationAutomaton) convertShapeDotStar(ctx context.Context) (*rast.Regex, error) {
	if a.getNumberOfStates() < 2 {
		return nil, nil
	}

	selfT, ok := a.getTransition(a.startState, a.startState)
	if !ok {
		return nil, nil
	}
	dotValue, ok := selfT.weight()
	if !ok {
		return nil, nil
	}

	for _, s := range a.statesIter() {
		if s == a.startState {
			continue
		}
		t, hasEdge := a.getTransition(s, a.startState)
		var w charset.RangeSet
		if hasEdge {
			var isWeight bool
			w, isWeight = t.weight()
			if !isWeight {
				return nil, nil
			}
		} else if s == a.acceptState {
			continue
		} else {
			return nil, nil
		}
		if !containsAll(dotValue, w) {
			return nil, nil
		}
	}

	graph := cloneStateEliminationAutomaton(a)

	for _, in := range graph.inTransitionsVec(graph.startState) {
		w, ok := in.t.weight()
		if !ok {
			return nil, nil
		}
		dotValue = dotValue.Union(w)
		graph.removeTransition(in.state, graph.startState)
	}

	worklist := []int{graph.startState}
	seen := map[int]bool{a.startState: true}

	for len(worklist) > 0 {
		from := worklist[0]
		worklist = worklist[1:]
		for _, to := range graph.transitionsFromStateVec(from) {
			t, ok := graph.getTransition(from, to)
			if !ok {
				return nil, nil
			}
			w, isWeight := t.weight()
			if !isWeight {
				continue
			}
			dotValue = dotValue.Union(w)
			if seen[to] {
				if graph.acceptState != to || to == from {
					graph.removeTransition(from, to)
				}
			} else {
				seen[to] = true
				worklist = append(worklist, to)
			}
		}
	}

	graph.addTransitionTo(a.startState, a.startState, weightTransition(dotValue))

	if err := graph.identifyAndApplyComponents(); err != nil {
		return nil, err
	}
	return graph.convertToRegex(ctx)
}

// convertShapeSelfLoop recognizes the A*B shape via a different split:
// peel every edge into the start state off into a side automaton (A),
// solve what's left with the start state's in-edges simply removed (B),
// and recompose as A* . B.
//
// Grounded on convert_shape_self_loop.
func (a *stateEliminationAutomaton) convertShapeSelfLoop(ctx context.Context) (*rast.Regex, error) {
	aGraph := cloneStateEliminationAutomaton(a)
	aGraph.acceptState = aGraph.newState()

	for _, in := range aGraph.inTransitionsVec(a.startState) {
		aGraph.removeTransition(in.state, a.startState)
		aGraph.addTransitionTo(in.state, aGraph.acceptState, in.t)
	}

	if err := aGraph.identifyAndApplyComponents(); err != nil {
		return nil, err
	}
	aPart, err := aGraph.convertToRegex(ctx)
	if err != nil {
		return nil, err
	}
	if aPart == nil {
		return nil, nil
	}

	bGraph := cloneStateEliminationAutomaton(a)
	for _, in := range bGraph.inTransitionsVec(a.startState) {
		bGraph.removeTransition(in.state, a.startState)
	}

	if err := bGraph.identifyAndApplyComponents(); err != nil {
		return nil, err
	}
	bPart, err := bGraph.convertToRegex(ctx)
	if err != nil {
		return nil, err
	}
	if bPart == nil {
		return nil, nil
	}

	return aPart.Repeat(0, nil).Concat(bPart, true), nil
}

func containsAll(outer, inner charset.RangeSet) bool {
	return inner.Difference(outer).IsEmpty()
}
