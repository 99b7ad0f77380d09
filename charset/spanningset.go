package charset

// SpanningSet partitions a collection of RangeSets into disjoint atoms
// plus an implicit "rest" atom covering every code point none of the
// input ranges mentioned.
//
// Grounded on the fixpoint atom-splitting algorithm in the corpus's
// spanning_set component: repeatedly pick two overlapping atoms, replace
// them with their intersection and the two differences, until no pair
// overlaps.
type SpanningSet struct {
	atoms []RangeSet
	rest  RangeSet
}

// NewEmptySpanningSet returns a SpanningSet with no explicit atoms — every
// code point falls in "rest".
func NewEmptySpanningSet() *SpanningSet {
	return &SpanningSet{atoms: nil, rest: Total()}
}

// NewTotalSpanningSet returns a SpanningSet with a single atom spanning
// every code point.
func NewTotalSpanningSet() *SpanningSet {
	return &SpanningSet{atoms: []RangeSet{Total()}, rest: Empty()}
}

// NumAtoms returns the number of explicit spanning atoms (excluding rest).
func (s *SpanningSet) NumAtoms() int { return len(s.atoms) }

// Atom returns the i-th explicit atom.
func (s *SpanningSet) Atom(i int) RangeSet { return s.atoms[i] }

// Atoms returns the explicit atoms in order.
func (s *SpanningSet) Atoms() []RangeSet { return s.atoms }

// Rest returns the implicit "everything else" atom.
func (s *SpanningSet) Rest() RangeSet { return s.rest }

// HasRest reports whether the rest atom is non-empty.
func (s *SpanningSet) HasRest() bool { return !s.rest.IsEmpty() }

// AtomsWithRest returns all atoms, with the rest atom first when non-empty
// — mirrors get_spanning_ranges_with_rest.
func (s *SpanningSet) AtomsWithRest() []RangeSet {
	if s.rest.IsEmpty() {
		out := make([]RangeSet, len(s.atoms))
		copy(out, s.atoms)
		return out
	}
	out := make([]RangeSet, 0, len(s.atoms)+1)
	out = append(out, s.rest)
	out = append(out, s.atoms...)
	return out
}

// Equal reports whether s and other have the same atom sequence and
// rest atom — atoms are already sorted+deduped by ComputeSpanningSet, so
// no further canonicalization is needed here.
func (s *SpanningSet) Equal(other *SpanningSet) bool {
	if len(s.atoms) != len(other.atoms) {
		return false
	}
	for i := range s.atoms {
		if !s.atoms[i].Equal(other.atoms[i]) {
			return false
		}
	}
	return s.rest.Equal(other.rest)
}

// Merge combines s with other, returning the finer spanning set that
// refines both.
func (s *SpanningSet) Merge(other *SpanningSet) *SpanningSet {
	ranges := make([]RangeSet, 0, len(s.atoms)+len(other.atoms))
	ranges = append(ranges, s.atoms...)
	ranges = append(ranges, other.atoms...)
	return ComputeSpanningSet(ranges)
}

// ComputeSpanningSet builds the spanning set that refines every RangeSet
// in ranges into disjoint atoms.
func ComputeSpanningSet(ranges []RangeSet) *SpanningSet {
	dedup := make(map[string]RangeSet, len(ranges))
	for _, r := range ranges {
		if r.IsEmpty() {
			continue
		}
		dedup[r.key()] = r
	}
	work := make([]RangeSet, 0, len(dedup))
	for _, r := range dedup {
		work = append(work, r)
	}

	changed := true
	for changed {
		changed = false
		next := make(map[string]RangeSet, len(work))
		for len(work) > 0 {
			set := work[len(work)-1]
			work = work[:len(work)-1]

			idx := -1
			for i, other := range work {
				if !set.Equal(other) && set.HasIntersection(other) {
					idx = i
					break
				}
			}
			if idx >= 0 {
				other := work[idx]
				work[idx] = work[len(work)-1]
				work = work[:len(work)-1]

				inter := set.Intersection(other)
				if !inter.IsEmpty() {
					next[inter.key()] = inter
				}
				if diff := set.Difference(other); !diff.IsEmpty() {
					next[diff.key()] = diff
				}
				if diff := other.Difference(set); !diff.IsEmpty() {
					next[diff.key()] = diff
				}
				changed = true
			} else if !set.IsEmpty() {
				next[set.key()] = set
			}
		}
		work = work[:0]
		for _, r := range next {
			work = append(work, r)
		}
	}

	atoms := make([]RangeSet, 0, len(work))
	atoms = append(atoms, work...)
	total := Empty()
	for _, a := range atoms {
		total = total.Union(a)
	}
	sortAtoms(atoms)
	return &SpanningSet{atoms: atoms, rest: total.Complement()}
}

func sortAtoms(atoms []RangeSet) {
	// Sort atoms by their first range's lower bound for stable, readable
	// output; order has no semantic meaning otherwise.
	for i := 1; i < len(atoms); i++ {
		j := i
		for j > 0 && lessAtom(atoms[j], atoms[j-1]) {
			atoms[j], atoms[j-1] = atoms[j-1], atoms[j]
			j--
		}
	}
}

func lessAtom(a, b RangeSet) bool {
	if len(a) == 0 {
		return true
	}
	if len(b) == 0 {
		return false
	}
	return a[0].Lo < b[0].Lo
}

// AtomIndexOf returns the index of the atom containing r, or -1 if r
// falls in rest or is not covered at all (should not happen for a
// correctly computed spanning set over a total alphabet).
func (s *SpanningSet) AtomIndexOf(r rune) int {
	for i, a := range s.atoms {
		if a.Contains(r) {
			return i
		}
	}
	return -1
}
