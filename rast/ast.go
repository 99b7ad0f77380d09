// Package rast implements the regular-expression AST algebra: construction
// from surface syntax, structural union/concat/repeat fusion, common-affix
// factoring, simplification and lowering to automaton.NFA.
//
// Grounded on original_source/src/regex/*.rs: RegularExpression's four
// variants (Character/Repetition/Concat/Alternation) are ported to a single
// tagged struct, since Go has no sum types, with Kind selecting which
// fields are meaningful.
package rast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RegexSolver/regexsolver/charset"
)

// Kind distinguishes the four shapes a Regex node can take.
type Kind int

const (
	KindCharacter Kind = iota
	KindRepetition
	KindConcat
	KindAlternation
)

// Regex is a node in the regex AST. Which fields are meaningful depends on
// Kind:
//   - KindCharacter: Range
//   - KindRepetition: Sub, Min, Max (Max == nil means unbounded)
//   - KindConcat, KindAlternation: Elems, in order
//
// Nodes are treated as immutable once built: every algebra operation
// returns a new node instead of mutating an existing one, so subtrees are
// freely shared between results.
type Regex struct {
	Kind  Kind
	Range charset.RangeSet

	Sub *Regex
	Min uint32
	Max *uint32

	Elems []*Regex
}

// NewCharacter builds a leaf node matching exactly the code points in r.
func NewCharacter(r charset.RangeSet) *Regex {
	return &Regex{Kind: KindCharacter, Range: r}
}

// NewRepetition builds a node matching sub repeated between min and max
// times. max == nil means unbounded.
func NewRepetition(sub *Regex, min uint32, max *uint32) *Regex {
	return &Regex{Kind: KindRepetition, Sub: sub, Min: min, Max: max}
}

// NewConcat builds a node matching every element in order.
func NewConcat(elems []*Regex) *Regex {
	return &Regex{Kind: KindConcat, Elems: elems}
}

// NewAlternation builds a node matching any one of elems.
func NewAlternation(elems []*Regex) *Regex {
	return &Regex{Kind: KindAlternation, Elems: elems}
}

// NewEmpty returns the regex matching no strings at all.
func NewEmpty() *Regex { return NewCharacter(charset.Empty()) }

// NewEmptyString returns the regex matching only the empty string.
func NewEmptyString() *Regex { return NewConcat(nil) }

// NewTotal returns the regex matching every string over every code point.
func NewTotal() *Regex {
	return NewRepetition(NewCharacter(charset.Total()), 0, nil)
}

// IsEmpty reports whether r matches no strings.
func (r *Regex) IsEmpty() bool {
	switch r.Kind {
	case KindAlternation:
		return len(r.Elems) == 0
	case KindCharacter:
		return r.Range.IsEmpty()
	default:
		return false
	}
}

// IsEmptyString reports whether r matches only the empty string.
func (r *Regex) IsEmptyString() bool {
	return r.Kind == KindConcat && len(r.Elems) == 0
}

// IsTotal reports whether r matches every string over every code point.
func (r *Regex) IsTotal() bool {
	if r.Kind != KindRepetition || r.Min != 0 || r.Max != nil {
		return false
	}
	return r.Sub.Kind == KindCharacter && r.Sub.Range.IsTotal()
}

// String renders r as regex surface syntax, parenthesizing only where
// required to preserve meaning on re-parse.
func (r *Regex) String() string {
	switch r.Kind {
	case KindCharacter:
		if r.Range.IsEmpty() {
			return "[]"
		}
		return rangeToRegexSyntax(r.Range)
	case KindRepetition:
		inner := r.Sub.String()
		var mult string
		switch {
		case r.Min == 0 && r.Max == nil:
			mult = "*"
		case r.Min == 1 && r.Max == nil:
			mult = "+"
		case r.Min == 0 && r.Max != nil && *r.Max == 1:
			mult = "?"
		case r.Max != nil:
			if *r.Max == r.Min {
				mult = fmt.Sprintf("{%d}", *r.Max)
			} else {
				mult = fmt.Sprintf("{%d,%d}", r.Min, *r.Max)
			}
		default:
			mult = fmt.Sprintf("{%d,}", r.Min)
		}
		if r.Sub.Kind == KindRepetition || r.Sub.Kind == KindConcat {
			return fmt.Sprintf("(%s)%s", inner, mult)
		}
		return inner + mult
	case KindConcat:
		var b strings.Builder
		for _, e := range r.Elems {
			b.WriteString(e.String())
		}
		return b.String()
	case KindAlternation:
		if len(r.Elems) == 0 {
			return "[]"
		}
		parts := make([]string, len(r.Elems))
		for i, e := range r.Elems {
			parts[i] = e.String()
		}
		joined := strings.Join(parts, "|")
		if len(r.Elems) == 1 {
			return joined
		}
		return "(" + joined + ")"
	}
	panic("rast: unknown kind")
}

// Equal reports whether a and b describe the same regex tree.
func Equal(a, b *Regex) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindCharacter:
		return a.Range.Equal(b.Range)
	case KindRepetition:
		if a.Min != b.Min || !equalMaxPtr(a.Max, b.Max) {
			return false
		}
		return Equal(a.Sub, b.Sub)
	case KindConcat, KindAlternation:
		if len(a.Elems) != len(b.Elems) {
			return false
		}
		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}
		return true
	}
	panic("rast: unknown kind")
}

func equalMaxPtr(a, b *uint32) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}

// Compare imposes a total order over regex trees, used to sort and
// deduplicate the operand sets built up by the union-fusion algebra
// (a Go substitute for the corpus's derived Ord plus BTreeSet dedup).
// Ordering is by Kind first (Character < Repetition < Concat <
// Alternation, matching declaration order), then structurally.
func Compare(a, b *Regex) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	switch a.Kind {
	case KindCharacter:
		return compareRangeSet(a.Range, b.Range)
	case KindRepetition:
		if c := Compare(a.Sub, b.Sub); c != 0 {
			return c
		}
		if a.Min != b.Min {
			if a.Min < b.Min {
				return -1
			}
			return 1
		}
		return compareMaxPtr(a.Max, b.Max)
	case KindConcat, KindAlternation:
		for i := 0; i < len(a.Elems) && i < len(b.Elems); i++ {
			if c := Compare(a.Elems[i], b.Elems[i]); c != 0 {
				return c
			}
		}
		return len(a.Elems) - len(b.Elems)
	}
	panic("rast: unknown kind")
}

func compareMaxPtr(a, b *uint32) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if *a == *b {
		return 0
	}
	if *a < *b {
		return -1
	}
	return 1
}

func compareRangeSet(a, b charset.RangeSet) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Lo != b[i].Lo {
			if a[i].Lo < b[i].Lo {
				return -1
			}
			return 1
		}
		if a[i].Hi != b[i].Hi {
			if a[i].Hi < b[i].Hi {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

// sortUnstable orders elems by Compare in place.
func sortUnstable(elems []*Regex) {
	sort.Slice(elems, func(i, j int) bool { return Compare(elems[i], elems[j]) < 0 })
}

// sortUnique orders elems by Compare and removes structural duplicates,
// mirroring collecting into a BTreeSet<RegularExpression>.
func sortUnique(elems []*Regex) []*Regex {
	sortUnstable(elems)
	out := elems[:0:0]
	for i, e := range elems {
		if i == 0 || Compare(out[len(out)-1], e) != 0 {
			out = append(out, e)
		}
	}
	return out
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// rangeToRegexSyntax renders r as a character class or a single escaped
// literal. Not ported from the corpus (which delegates to the external
// regex_charclass crate's Display, outside this pack) — a direct,
// idiomatic re-derivation of the same surface syntax.
func rangeToRegexSyntax(r charset.RangeSet) string {
	if r.IsTotal() {
		return "."
	}
	if len(r) == 1 && r[0].Lo == r[0].Hi {
		return escapeChar(r[0].Lo)
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, rg := range r {
		if rg.Lo == rg.Hi {
			b.WriteString(escapeInClass(rg.Lo))
		} else {
			b.WriteString(escapeInClass(rg.Lo))
			b.WriteByte('-')
			b.WriteString(escapeInClass(rg.Hi))
		}
	}
	b.WriteByte(']')
	return b.String()
}

const regexMetaChars = `.^$*+?()[]{}|\`

func escapeChar(c rune) string {
	if strings.ContainsRune(regexMetaChars, c) {
		return "\\" + string(c)
	}
	return string(c)
}

func escapeInClass(c rune) string {
	switch c {
	case ']', '^', '-', '\\':
		return "\\" + string(c)
	default:
		return string(c)
	}
}
