package charset

import (
	"math/bits"
	"strings"

	"github.com/RegexSolver/regexsolver/internal/conv"
	"github.com/RegexSolver/regexsolver/rserr"
)

// Condition is a fixed-width bit vector over a SpanningSet's atoms (rest
// atom first, when present), used to label automaton edges compactly.
//
// Grounded on the corpus's FastBitVec-backed Condition: word-packed
// []uint64 storage, same bit ops (union/intersection/complement).
type Condition struct {
	bits []uint64
	n    int
}

func newCondition(n int, set bool) Condition {
	nwords := n / 64
	if n%64 != 0 {
		nwords++
	}
	words := make([]uint64, nwords)
	if set {
		for i := range words {
			words[i] = ^uint64(0)
		}
	}
	c := Condition{bits: words, n: n}
	c.maskLastWord()
	return c
}

func (c *Condition) maskLastWord() {
	extra := c.n % 64
	if extra == 0 || len(c.bits) == 0 {
		return
	}
	mask := uint64(1)<<uint(extra) - 1
	c.bits[len(c.bits)-1] &= mask
}

// ConditionEmpty returns the all-false Condition sized for set. Named
// apart from RangeSet's Empty() — same package, same name, two
// signatures is not valid Go.
func ConditionEmpty(set *SpanningSet) Condition {
	return newCondition(len(set.AtomsWithRest()), false)
}

// ConditionTotal returns the all-true Condition sized for set. Named
// apart from RangeSet's Total() for the same reason as ConditionEmpty.
func ConditionTotal(set *SpanningSet) Condition {
	return newCondition(len(set.AtomsWithRest()), true)
}

// Len returns the number of atoms the condition is defined over.
func (c Condition) Len() int { return c.n }

// Get reports whether the atom at index i is selected.
func (c Condition) Get(i int) (bool, error) {
	if i < 0 || i >= c.n {
		return false, &rserr.ConditionIndexOutOfBoundError{}
	}
	w, b := i/64, uint(i%64)
	return c.bits[w]&(1<<b) != 0, nil
}

// Set selects or clears the atom at index i.
func (c *Condition) Set(i int, v bool) {
	w, b := i/64, uint(i%64)
	if v {
		c.bits[w] |= 1 << b
	} else {
		c.bits[w] &^= 1 << b
	}
}

// Clone returns an independent copy.
func (c Condition) Clone() Condition {
	words := make([]uint64, len(c.bits))
	copy(words, c.bits)
	return Condition{bits: words, n: c.n}
}

// Union returns the bitwise OR of c and o.
func (c Condition) Union(o Condition) Condition {
	out := c.Clone()
	for i := range out.bits {
		out.bits[i] |= o.bits[i]
	}
	return out
}

// Intersection returns the bitwise AND of c and o.
func (c Condition) Intersection(o Condition) Condition {
	out := c.Clone()
	for i := range out.bits {
		out.bits[i] &= o.bits[i]
	}
	return out
}

// Difference returns the atoms in c that are not in o.
func (c Condition) Difference(o Condition) Condition {
	out := c.Clone()
	for i := range out.bits {
		out.bits[i] &^= o.bits[i]
	}
	return out
}

// Complement returns the bitwise NOT of c.
func (c Condition) Complement() Condition {
	out := c.Clone()
	for i := range out.bits {
		out.bits[i] = ^out.bits[i]
	}
	out.maskLastWord()
	return out
}

// HasIntersection reports whether c and o share a set atom.
func (c Condition) HasIntersection(o Condition) bool {
	for i := range c.bits {
		if c.bits[i]&o.bits[i] != 0 {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no atom is selected.
func (c Condition) IsEmpty() bool {
	for _, w := range c.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsTotal reports whether every atom is selected.
func (c Condition) IsTotal() bool {
	full := newCondition(c.n, true)
	for i := range c.bits {
		if c.bits[i] != full.bits[i] {
			return false
		}
	}
	return true
}

// Cardinality returns the number of selected atoms.
func (c Condition) Cardinality() uint32 {
	var n int
	for _, w := range c.bits {
		n += bits.OnesCount64(w)
	}
	return conv.IntToUint32(n)
}

// AtomConditions returns one singleton Condition per atom of set (rest
// atom first, when present) — the per-base worklist keys used by
// determinization.
func AtomConditions(set *SpanningSet) []Condition {
	n := len(set.AtomsWithRest())
	out := make([]Condition, n)
	for i := 0; i < n; i++ {
		c := newCondition(n, false)
		c.Set(i, true)
		out[i] = c
	}
	return out
}

// ConditionFromRange builds the Condition selecting every atom (and
// rest, if applicable) of set that r fully contains. Returns
// *rserr.ConditionInvalidRangeError if no such atom exists, mirroring
// contains_all's requirement that r be expressible as a union of set's
// atoms exactly — a partial overlap would otherwise silently widen the
// condition beyond what r actually selects.
func ConditionFromRange(r RangeSet, set *SpanningSet) (Condition, error) {
	atoms := set.AtomsWithRest()
	if r.IsEmpty() {
		return newCondition(len(atoms), false), nil
	}
	if r.IsTotal() {
		return newCondition(len(atoms), true), nil
	}

	c := newCondition(len(atoms), false)
	any := false
	for i, a := range atoms {
		if r.ContainsAll(a) {
			c.Set(i, true)
			any = true
		}
	}
	if !any {
		return Condition{}, &rserr.ConditionInvalidRangeError{}
	}
	return c, nil
}

// HasCharacter reports whether r is selected by c under set.
func (c Condition) HasCharacter(r rune, set *SpanningSet) bool {
	atoms := set.AtomsWithRest()
	for i, a := range atoms {
		if a.Contains(r) {
			ok, _ := c.Get(i)
			return ok
		}
	}
	return false
}

// ToRange converts c back to a RangeSet under set. Returns an error if c's
// width does not match set.
func (c Condition) ToRange(set *SpanningSet) (RangeSet, error) {
	atoms := set.AtomsWithRest()
	if len(atoms) != c.n {
		return nil, &rserr.ConditionIndexOutOfBoundError{}
	}
	var out RangeSet
	for i, a := range atoms {
		if ok, err := c.Get(i); err != nil {
			return nil, err
		} else if ok {
			out = out.Union(a)
		}
	}
	return out, nil
}

// String renders the condition as a string of '0'/'1' characters, one per
// atom, matching the corpus's FastBitVec Display impl.
func (c Condition) String() string {
	var b strings.Builder
	for i := 0; i < c.n; i++ {
		v, _ := c.Get(i)
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Equal reports whether c and o select the same atoms.
func (c Condition) Equal(o Condition) bool {
	if c.n != o.n {
		return false
	}
	for i := range c.bits {
		if c.bits[i] != o.bits[i] {
			return false
		}
	}
	return true
}
