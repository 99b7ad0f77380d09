package engine

import (
	"github.com/RegexSolver/regexsolver/analyze"
)

// Details summarizes the shape of a Term's language without requiring
// the caller to pick apart its representation.
type Details struct {
	// Cardinality is nil when the term is automaton-form and
	// non-deterministic — the engine does not determinize just to
	// answer a details query, mirroring FastAutomaton::get_cardinality
	// returning None in that case.
	Cardinality *analyze.Cardinality
	MinLength   *uint32
	MaxLength   *uint32
	Empty       bool
	Total       bool
}

// GetDetails computes t's Details.
//
// Example:
//
//	term, _ := engine.FromRegex("(abc|de)")
//	details, _ := term.GetDetails()
//	// details.Cardinality == &analyze.Cardinality{Kind: analyze.CardinalityInteger, Value: 2}
func (t Term) GetDetails() (Details, error) {
	switch t.Kind {
	case KindRegex:
		card := t.Regex.GetCardinality()
		min, max := t.Regex.GetLength()
		return Details{
			Cardinality: &card,
			MinLength:   min,
			MaxLength:   max,
			Empty:       t.Regex.IsEmpty(),
			Total:       t.Regex.IsTotal(),
		}, nil
	default:
		var cardPtr *analyze.Cardinality
		if card, known, err := analyze.GetCardinality(t.Automaton); err != nil {
			return Details{}, err
		} else if known {
			cardPtr = &card
		}
		min, max := analyze.GetLength(t.Automaton)
		return Details{
			Cardinality: cardPtr,
			MinLength:   min,
			MaxLength:   max,
			Empty:       t.Automaton.IsEmpty(),
			Total:       t.Automaton.IsTotal(),
		}, nil
	}
}
