package synth

// identifyAndApplyComponents runs Tarjan's algorithm over the live
// states, then collapses every strongly-connected component of size > 1
// (plus any singleton with a self-loop) into a single nested
// stateEliminationAutomaton edge, leaving a DAG behind.
//
// Grounded on StateEliminationAutomaton::identify_and_apply_components.
func (a *stateEliminationAutomaton) identifyAndApplyComponents() error {
	n := len(a.transitions)
	indices := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range indices {
		indices[i] = -1
		lowlink[i] = -1
	}
	var stack []int
	index := 0
	var components [][]int

	var strongconnect func(v int)
	strongconnect = func(v int) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		if v < len(a.transitions) {
			for w := range a.transitions[v] {
				if indices[w] == -1 {
					strongconnect(w)
					if lowlink[w] < lowlink[v] {
						lowlink[v] = lowlink[w]
					}
				} else if onStack[w] {
					if indices[w] < lowlink[v] {
						lowlink[v] = indices[w]
					}
				}
			}
		}

		if lowlink[v] == indices[v] {
			var component []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				component = append(component, w)
				if w == v {
					break
				}
			}
			components = append(components, component)
		}
	}

	for _, s := range a.statesIter() {
		if indices[s] == -1 {
			strongconnect(s)
		}
	}

	var toBuild [][]int
	for _, states := range components {
		first := states[0]
		selfLoop := a.transitionsIn[first] != nil && a.transitionsIn[first][first]
		if len(states) == 1 && !selfLoop {
			continue
		}
		toBuild = append(toBuild, states)
	}

	for _, component := range toBuild {
		if err := a.buildComponent(component); err != nil {
			return err
		}
	}

	a.cyclic = false
	return nil
}

// buildComponent extracts states (one SCC) into a fresh nested
// stateEliminationAutomaton, rewiring every edge that crosses the
// component boundary through new states in the outer graph, then
// replaces the whole component with a single transitionGraph edge per
// (external-entry, external-exit) pair.
//
// Grounded on StateEliminationAutomaton::build_component.
func (a *stateEliminationAutomaton) buildComponent(states []int) error {
	stateSet := map[int]bool{}
	for _, s := range states {
		stateSet[s] = true
	}

	type inEdge struct {
		from int
		t    graphTransition
	}
	startStates := map[int][]inEdge{}  // new inner state -> edges from outside
	acceptStates := map[int][]inEdge{} // outer target state -> edges from inside (keyed by inner-new from)

	inner := newStateEliminationAutomaton()
	inner.cyclic = true

	statesMap := map[int]int{}
	innerOf := func(s int) int {
		if ns, ok := statesMap[s]; ok {
			return ns
		}
		ns := inner.newState()
		statesMap[s] = ns
		return ns
	}

	for _, from := range states {
		if from == a.acceptState {
			a.acceptState = a.newState()
			a.addTransitionTo(from, a.acceptState, epsilonTransition())
		}
		if from == a.startState {
			a.startState = a.newState()
			a.addTransitionTo(a.startState, from, epsilonTransition())
		}

		fromNew := innerOf(from)

		for _, e := range a.transitionsFromState(from) {
			if !stateSet[e.state] {
				acceptStates[e.state] = append(acceptStates[e.state], inEdge{fromNew, e.t})
				continue
			}
			toNew := innerOf(e.state)
			inner.addTransitionTo(fromNew, toNew, e.t)
		}

		for _, in := range a.inTransitionsVec(from) {
			if !stateSet[in.state] {
				startStates[fromNew] = append(startStates[fromNew], inEdge{in.state, in.t})
			}
		}
	}

	for _, s := range states {
		a.removeState(s)
	}

	for startNew, parents := range startStates {
		for _, p := range parents {
			newParent := p.from
			if !p.t.isEmptyString() {
				newParent = a.newState()
				a.addTransitionTo(p.from, newParent, p.t)
			}
			for target, accepts := range acceptStates {
				newAutomaton := cloneStateEliminationAutomaton(inner)

				var targetState int
				if len(accepts) > 1 {
					newAutomaton.acceptState = newAutomaton.newState()
					for _, acc := range accepts {
						newAutomaton.addTransitionTo(acc.from, newAutomaton.acceptState, acc.t)
					}
					targetState = target
				} else {
					acc := accepts[0]
					newAutomaton.acceptState = acc.from
					if !acc.t.isEmptyString() {
						newTarget := a.newState()
						a.addTransitionTo(newTarget, target, acc.t)
						targetState = newTarget
					} else {
						targetState = target
					}
				}

				newAutomaton.startState = startNew
				a.addTransitionTo(newParent, targetState, graphTransitionOf(newAutomaton))
			}
		}
	}

	return nil
}

// cloneStateEliminationAutomaton deep-copies g: every extracted component
// may be wired to several (parent, target) pairs around its boundary, and
// each wiring needs its own independent copy since start/accept state IDs
// differ per wiring.
func cloneStateEliminationAutomaton(g *stateEliminationAutomaton) *stateEliminationAutomaton {
	out := &stateEliminationAutomaton{
		startState:    g.startState,
		acceptState:   g.acceptState,
		cyclic:        g.cyclic,
		transitions:   make([]map[int]graphTransition, len(g.transitions)),
		transitionsIn: make(map[int]map[int]bool, len(g.transitionsIn)),
		removedStates: make(map[int]bool, len(g.removedStates)),
	}
	for i, m := range g.transitions {
		nm := make(map[int]graphTransition, len(m))
		for k, v := range m {
			nm[k] = v
		}
		out.transitions[i] = nm
	}
	for k, v := range g.transitionsIn {
		nv := make(map[int]bool, len(v))
		for x := range v {
			nv[x] = true
		}
		out.transitionsIn[k] = nv
	}
	for k, v := range g.removedStates {
		out.removedStates[k] = v
	}
	return out
}
