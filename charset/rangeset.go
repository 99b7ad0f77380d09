// Package charset implements the alphabet abstraction the automaton and
// regex packages are built on: disjoint code-point ranges, the spanning
// set that partitions them into atoms, and the condition bit vector used
// to label automaton edges compactly.
package charset

import (
	"fmt"
	"sort"
	"strings"
)

// MaxRune is the largest code point ranges may span.
const MaxRune = 0x10FFFF

// Range is an inclusive code-point interval [Lo, Hi].
type Range struct {
	Lo, Hi rune
}

// NewRange builds a Range, panicking if lo > hi.
func NewRange(lo, hi rune) Range {
	if lo > hi {
		panic("charset: invalid range: lo > hi")
	}
	return Range{Lo: lo, Hi: hi}
}

func (r Range) isEmpty() bool { return r.Lo > r.Hi }

func (r Range) hasIntersection(o Range) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

func (r Range) intersect(o Range) (Range, bool) {
	lo, hi := r.Lo, r.Hi
	if o.Lo > lo {
		lo = o.Lo
	}
	if o.Hi < hi {
		hi = o.Hi
	}
	if lo > hi {
		return Range{}, false
	}
	return Range{lo, hi}, true
}

// RangeSet is a sorted, disjoint, non-adjacent set of Ranges — the Go
// equivalent of the corpus's RangeSet<Char>.
type RangeSet []Range

// Single builds a RangeSet containing exactly one code point.
func Single(r rune) RangeSet { return RangeSet{{r, r}} }

// FromRange builds a RangeSet from a single inclusive interval.
func FromRange(lo, hi rune) RangeSet {
	if lo > hi {
		return RangeSet{}
	}
	return RangeSet{{lo, hi}}
}

// Total returns the RangeSet spanning every valid code point.
func Total() RangeSet { return RangeSet{{0, MaxRune}} }

// Empty returns the empty RangeSet.
func Empty() RangeSet { return RangeSet{} }

// IsEmpty reports whether the set contains no code points.
func (s RangeSet) IsEmpty() bool { return len(s) == 0 }

// IsTotal reports whether the set spans every valid code point.
func (s RangeSet) IsTotal() bool {
	return len(s) == 1 && s[0].Lo == 0 && s[0].Hi == MaxRune
}

// normalize sorts and merges adjacent/overlapping ranges in place order.
func normalize(rs []Range) RangeSet {
	if len(rs) == 0 {
		return RangeSet{}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Lo < rs[j].Lo })
	out := make(RangeSet, 0, len(rs))
	cur := rs[0]
	for _, r := range rs[1:] {
		if r.isEmpty() {
			continue
		}
		if r.Lo <= cur.Hi+1 {
			if r.Hi > cur.Hi {
				cur.Hi = r.Hi
			}
			continue
		}
		out = append(out, cur)
		cur = r
	}
	out = append(out, cur)
	return out
}

// Union returns the set union of s and o.
func (s RangeSet) Union(o RangeSet) RangeSet {
	merged := make([]Range, 0, len(s)+len(o))
	merged = append(merged, s...)
	merged = append(merged, o...)
	return normalize(merged)
}

// Intersection returns the set intersection of s and o.
func (s RangeSet) Intersection(o RangeSet) RangeSet {
	var out RangeSet
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		if r, ok := s[i].intersect(o[j]); ok {
			out = append(out, r)
		}
		if s[i].Hi < o[j].Hi {
			i++
		} else {
			j++
		}
	}
	return out
}

// Difference returns the code points in s that are not in o.
func (s RangeSet) Difference(o RangeSet) RangeSet {
	if len(o) == 0 {
		return append(RangeSet{}, s...)
	}
	var out RangeSet
	for _, r := range s {
		lo := r.Lo
		for _, h := range o {
			if h.Hi < lo || h.Lo > r.Hi {
				continue
			}
			if h.Lo > lo {
				out = append(out, Range{lo, h.Lo - 1})
			}
			if h.Hi+1 > lo {
				lo = h.Hi + 1
			}
			if lo > r.Hi {
				break
			}
		}
		if lo <= r.Hi {
			out = append(out, Range{lo, r.Hi})
		}
	}
	return out
}

// Complement returns the code points not in s.
func (s RangeSet) Complement() RangeSet {
	return Total().Difference(s)
}

// HasIntersection reports whether s and o share any code point.
func (s RangeSet) HasIntersection(o RangeSet) bool {
	i, j := 0, 0
	for i < len(s) && j < len(o) {
		if s[i].hasIntersection(o[j]) {
			return true
		}
		if s[i].Hi < o[j].Hi {
			i++
		} else {
			j++
		}
	}
	return false
}

// Contains reports whether r is a member of s.
func (s RangeSet) Contains(r rune) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i].Hi >= r })
	return i < len(s) && s[i].Lo <= r
}

// ContainsAll reports whether every code point of o is also in s.
func (s RangeSet) ContainsAll(o RangeSet) bool {
	return o.Difference(s).IsEmpty()
}

// Equal reports whether s and o contain exactly the same code points.
func (s RangeSet) Equal(o RangeSet) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Cardinality returns the number of distinct code points s spans.
func (s RangeSet) Cardinality() uint64 {
	var n uint64
	for _, r := range s {
		n += uint64(r.Hi-r.Lo) + 1
	}
	return n
}

// key is a canonical string used to dedup/hash RangeSets, since Go slices
// are not comparable or hashable directly.
func (s RangeSet) key() string {
	var b strings.Builder
	for _, r := range s {
		fmt.Fprintf(&b, "%x-%x;", r.Lo, r.Hi)
	}
	return b.String()
}

// String renders the set as a sequence of "lo-hi" pairs, matching the
// teacher's style of cheap debug Stringers.
func (s RangeSet) String() string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		if r.Lo == r.Hi {
			fmt.Fprintf(&b, "U+%04X", r.Lo)
		} else {
			fmt.Fprintf(&b, "U+%04X-U+%04X", r.Lo, r.Hi)
		}
	}
	return b.String()
}
