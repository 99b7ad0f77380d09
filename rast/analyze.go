package rast

import (
	"math"

	"github.com/RegexSolver/regexsolver/analyze"
)

// GetLength returns r's minimum and maximum matched-string length. Both
// are nil when r matches nothing; max alone is nil when r matches strings
// of unbounded length.
//
// Grounded on RegularExpression::get_length.
func (r *Regex) GetLength() (min, max *uint32) {
	switch r.Kind {
	case KindCharacter:
		if r.Range.IsEmpty() {
			return nil, nil
		}
		one := uint32(1)
		return &one, &one
	case KindRepetition:
		subMin, subMax := r.Sub.GetLength()
		if subMin != nil {
			newMin := r.Min * (*subMin)
			var newMax *uint32
			if subMax != nil && r.Max != nil {
				m := (*r.Max) * (*subMax)
				newMax = &m
			}
			return &newMin, newMax
		}
		if r.Min == 0 {
			zero := uint32(0)
			return &zero, &zero
		}
		return nil, nil
	case KindConcat:
		var newMin uint32
		newMaxVal := uint32(0)
		maxKnown := true
		for _, e := range r.Elems {
			elemMin, elemMax := e.GetLength()
			if elemMin == nil {
				return nil, nil
			}
			newMin += *elemMin
			if maxKnown {
				if elemMax != nil {
					newMaxVal += *elemMax
				} else {
					maxKnown = false
				}
			}
		}
		if maxKnown {
			return &newMin, &newMaxVal
		}
		return &newMin, nil
	case KindAlternation:
		if len(r.Elems) == 0 {
			return nil, nil
		}
		newMin := uint32(math.MaxUint32)
		newMaxVal := uint32(0)
		maxKnown := true
		for _, e := range r.Elems {
			elemMin, elemMax := e.GetLength()
			if elemMin == nil {
				return nil, nil
			}
			newMin = minU32(newMin, *elemMin)
			if maxKnown {
				if elemMax != nil {
					newMaxVal = maxU32(newMaxVal, *elemMax)
				} else {
					maxKnown = false
				}
			}
		}
		if maxKnown {
			return &newMin, &newMaxVal
		}
		return &newMin, nil
	}
	panic("rast: unknown kind")
}

// GetCardinality returns the number of distinct strings r matches,
// reusing the analyze package's Cardinality shape (integer, infinite,
// or too large to represent exactly).
//
// Grounded on RegularExpression::get_cardinality.
func (r *Regex) GetCardinality() analyze.Cardinality {
	if r.IsEmpty() {
		return analyze.Cardinality{Kind: analyze.CardinalityInteger, Value: 0}
	}
	if r.IsTotal() {
		return analyze.Cardinality{Kind: analyze.CardinalityInfinite}
	}
	switch r.Kind {
	case KindCharacter:
		return analyze.Cardinality{Kind: analyze.CardinalityInteger, Value: uint32(r.Range.Cardinality())}
	case KindRepetition:
		if r.Max == nil {
			return analyze.Cardinality{Kind: analyze.CardinalityInfinite}
		}
		sub := r.Sub.GetCardinality()
		if sub.Kind != analyze.CardinalityInteger {
			return sub
		}
		var total uint32
		for i := r.Min; i <= *r.Max; i++ {
			pow, ok := checkedPowU32(sub.Value, i)
			if !ok {
				return analyze.Cardinality{Kind: analyze.CardinalityBigInteger}
			}
			sum, ok := checkedAddU32r(total, pow)
			if !ok {
				return analyze.Cardinality{Kind: analyze.CardinalityBigInteger}
			}
			total = sum
			if i == math.MaxUint32 {
				break
			}
		}
		return analyze.Cardinality{Kind: analyze.CardinalityInteger, Value: total}
	case KindConcat:
		total := uint32(1)
		for _, e := range r.Elems {
			c := e.GetCardinality()
			if c.Kind != analyze.CardinalityInteger {
				return c
			}
			mul, ok := checkedMulU32r(total, c.Value)
			if !ok {
				return analyze.Cardinality{Kind: analyze.CardinalityBigInteger}
			}
			total = mul
		}
		return analyze.Cardinality{Kind: analyze.CardinalityInteger, Value: total}
	case KindAlternation:
		var total uint32
		for _, e := range r.Elems {
			c := e.GetCardinality()
			if c.Kind != analyze.CardinalityInteger {
				return c
			}
			sum, ok := checkedAddU32r(total, c.Value)
			if !ok {
				return analyze.Cardinality{Kind: analyze.CardinalityBigInteger}
			}
			total = sum
		}
		return analyze.Cardinality{Kind: analyze.CardinalityInteger, Value: total}
	}
	panic("rast: unknown kind")
}

func checkedPowU32(base, exp uint32) (uint32, bool) {
	result := uint64(1)
	b := uint64(base)
	for i := uint32(0); i < exp; i++ {
		result *= b
		if result > math.MaxUint32 {
			return 0, false
		}
	}
	return uint32(result), true
}

func checkedMulU32r(a, b uint32) (uint32, bool) {
	result := uint64(a) * uint64(b)
	if result > math.MaxUint32 {
		return 0, false
	}
	return uint32(result), true
}

func checkedAddU32r(a, b uint32) (uint32, bool) {
	sum := uint64(a) + uint64(b)
	if sum > math.MaxUint32 {
		return 0, false
	}
	return uint32(sum), true
}

// stateMeta tracks, for one abstract NFA state, whether it has any
// incoming or outgoing edges — enough information to decide whether two
// states can be merged when composing automaton shapes algebraically.
type stateMeta struct {
	hasIncoming bool
	hasOutgoing bool
}

// nfaMeta is an abstract, edge-free sketch of the NFA r.ToAutomaton would
// build: just enough bookkeeping (start/accept mergeability, a running
// state count) to predict its size without actually constructing it.
type nfaMeta struct {
	start     stateMeta
	accepted  []stateMeta
	numStates int
}

func newNFAMeta() nfaMeta {
	return nfaMeta{start: stateMeta{false, true}, accepted: []stateMeta{{true, false}}, numStates: 2}
}

func newEmptyStringNFAMeta() nfaMeta {
	return nfaMeta{start: stateMeta{false, false}, accepted: []stateMeta{{false, false}}, numStates: 1}
}

func newEmptyNFAMeta() nfaMeta {
	return nfaMeta{start: stateMeta{false, false}, numStates: 1}
}

func anyOutgoing(states []stateMeta) bool {
	for _, s := range states {
		if s.hasOutgoing {
			return true
		}
	}
	return false
}

func (m nfaMeta) concat(o nfaMeta) nfaMeta {
	notMergeable := o.start.hasIncoming && anyOutgoing(m.accepted)
	if notMergeable {
		return nfaMeta{start: m.start, accepted: o.accepted, numStates: m.numStates + o.numStates}
	}
	return nfaMeta{start: m.start, accepted: o.accepted, numStates: m.numStates + o.numStates - 1}
}

func (m nfaMeta) repeat(min uint32, max *uint32) nfaMeta {
	startNotMergeable := m.start.hasIncoming
	acceptedNotMergeable := anyOutgoing(m.accepted)
	startOrAcceptNotMergeable := startNotMergeable || acceptedNotMergeable

	returnStart := m.start
	returnAccepted := append([]stateMeta(nil), m.accepted...)

	if max == nil {
		for i := range returnAccepted {
			returnAccepted[i].hasOutgoing = true
		}
	}

	if min == 0 && !startOrAcceptNotMergeable {
		returnStart.hasIncoming = true
		returnAccepted = append(returnAccepted, returnStart)
		if max == nil {
			return nfaMeta{start: returnStart, accepted: returnAccepted, numStates: m.numStates - 1}
		}
	}

	if min == 0 {
		returnAccepted = append(returnAccepted, returnStart)
	}

	var numStates int
	if max != nil {
		mult := m.numStates - 1
		if startNotMergeable && (acceptedNotMergeable || min == 0) {
			mult = m.numStates
		}
		numStates = int(*max)*mult + 1
	} else {
		mult := m.numStates - 1
		if startNotMergeable {
			mult = m.numStates
		}
		lower := min
		if lower < 1 {
			lower = 1
		}
		numStates = int(lower)*mult + 1
	}

	return nfaMeta{start: returnStart, accepted: returnAccepted, numStates: numStates}
}

func (m nfaMeta) alternate(o nfaMeta) nfaMeta {
	selfStartNotMergeable := m.start.hasIncoming
	selfAcceptedNotMergeable := anyOutgoing(m.accepted)
	otherStartNotMergeable := o.start.hasIncoming
	otherAcceptedNotMergeable := anyOutgoing(o.accepted)

	returnStart := stateMeta{hasIncoming: false, hasOutgoing: true}
	var returnAccepted []stateMeta
	numStates := m.numStates + o.numStates

	if !selfStartNotMergeable && !otherStartNotMergeable {
		numStates--
	}

	if !selfAcceptedNotMergeable && !otherAcceptedNotMergeable {
		numStates--
		returnAccepted = append(returnAccepted, stateMeta{hasIncoming: true, hasOutgoing: false})
	} else {
		returnAccepted = append(returnAccepted, m.accepted...)
		returnAccepted = append(returnAccepted, o.accepted...)
	}

	return nfaMeta{start: returnStart, accepted: returnAccepted, numStates: numStates}
}

// NumberOfStates predicts how many states r.ToAutomaton would build,
// without building it — used to reject a pattern before it grows past
// the configured state budget.
//
// Grounded on RegularExpression::get_number_of_states_in_nfa.
func (r *Regex) NumberOfStates() int {
	return r.evaluateNFAMeta().numStates
}

func (r *Regex) evaluateNFAMeta() nfaMeta {
	switch r.Kind {
	case KindCharacter:
		return newNFAMeta()
	case KindRepetition:
		return r.Sub.evaluateNFAMeta().repeat(r.Min, r.Max)
	case KindConcat:
		if len(r.Elems) == 0 {
			return newEmptyStringNFAMeta()
		}
		meta := r.Elems[0].evaluateNFAMeta()
		for _, e := range r.Elems[1:] {
			meta = meta.concat(e.evaluateNFAMeta())
		}
		return meta
	case KindAlternation:
		if len(r.Elems) == 0 {
			return newEmptyNFAMeta()
		}
		meta := r.Elems[0].evaluateNFAMeta()
		for _, e := range r.Elems[1:] {
			meta = meta.alternate(e.evaluateNFAMeta())
		}
		return meta
	}
	panic("rast: unknown kind")
}
