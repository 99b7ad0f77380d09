package rast

// GetCommonAffixes peels first a common prefix, then (from what's left) a
// common suffix, off r and other. prefix/suffix are nil when no common
// affix could be factored out on that side.
//
// Grounded on RegularExpression::get_common_affixes.
func (r *Regex) GetCommonAffixes(other *Regex) (prefix, selfRegex, otherRegex, suffix *Regex) {
	prefix, selfRegex, otherRegex = r.GetCommonAffix(other, true)
	suffix, selfRegex, otherRegex = selfRegex.GetCommonAffix(otherRegex, false)
	return
}

// GetCommonAffix factors the shared leading (isPrefix true) or trailing
// (isPrefix false) sub-expression out of r and other, returning it plus
// what remains of each side once it's removed.
//
// Grounded on RegularExpression::get_common_affix.
func (r *Regex) GetCommonAffix(other *Regex, isPrefix bool) (affix, selfRegex, otherRegex *Regex) {
	if r.IsEmpty() || other.IsEmpty() {
		return nil, r, other
	}
	if Equal(r, other) {
		return r, NewEmptyString(), NewEmptyString()
	}

	switch {
	case r.Kind == KindConcat:
		affix, selfRegex, otherRegex = opaffixConcatAndOther(r, other, isPrefix)
	case other.Kind == KindConcat:
		affix, otherRegex, selfRegex = opaffixConcatAndOther(other, r, isPrefix)
	case r.Kind == KindCharacter && other.Kind == KindRepetition:
		affix, selfRegex, otherRegex = opaffixCharacterAndRepetition(r, other)
	case r.Kind == KindRepetition && other.Kind == KindCharacter:
		affix, otherRegex, selfRegex = opaffixCharacterAndRepetition(other, r)
	case r.Kind == KindRepetition && other.Kind == KindRepetition:
		affix, selfRegex, otherRegex = opaffixRepetitionAndRepetition(r, other)
	case r.Kind == KindAlternation && other.Kind == KindAlternation:
		affix, selfRegex, otherRegex = opaffixAlternationAndAlternation(r, other)
	default:
		affix, selfRegex, otherRegex = nil, r, other
	}
	return
}

func opaffixCharacterAndRepetition(thisChar, thatRep *Regex) (*Regex, *Regex, *Regex) {
	if Equal(thisChar, thatRep.Sub) && thatRep.Min == 1 {
		var newMax *uint32
		if thatRep.Max != nil {
			m := *thatRep.Max - 1
			newMax = &m
		}
		return thisChar, NewEmptyString(), NewRepetition(thatRep.Sub, 0, newMax)
	}
	return nil, thisChar, thatRep
}

func opaffixRepetitionAndRepetition(thisRep, thatRep *Regex) (*Regex, *Regex, *Regex) {
	if !Equal(thisRep.Sub, thatRep.Sub) {
		return nil, thisRep, thatRep
	}

	prefixMin := minU32(thisRep.Min, thatRep.Min)
	var prefixMax *uint32
	if thisRep.Min == thatRep.Min {
		switch {
		case thisRep.Max != nil && thatRep.Max != nil:
			m := minU32(*thisRep.Max, *thatRep.Max)
			prefixMax = &m
		case thisRep.Max != nil || thatRep.Max != nil:
			m := prefixMin
			prefixMax = &m
		default:
			prefixMax = nil
		}
	} else {
		m := prefixMin
		prefixMax = &m
	}

	if prefixMin == 0 {
		return nil, thisRep, thatRep
	}

	if prefixMax == nil {
		return thisRep.Sub, NewEmptyString(), NewEmptyString()
	}

	var selfMax *uint32
	if thisRep.Max != nil {
		m := *thisRep.Max - *prefixMax
		selfMax = &m
	}
	var otherMax *uint32
	if thatRep.Max != nil {
		m := *thatRep.Max - *prefixMax
		otherMax = &m
	}

	affix := thisRep.Sub.Repeat(prefixMin, prefixMax)
	selfRegex := thisRep.Sub.Repeat(thisRep.Min-prefixMin, selfMax)
	otherRegex := thisRep.Sub.Repeat(thatRep.Min-prefixMin, otherMax)
	return affix, selfRegex, otherRegex
}

// opaffixConcatAndOther walks thisConcat's elements from the chosen end,
// repeatedly peeling a common affix off each element against what's left
// of other, until an element doesn't fully collapse into the affix (or
// other itself has been exhausted).
func opaffixConcatAndOther(thisConcat, thatOther *Regex, isPrefix bool) (*Regex, *Regex, *Regex) {
	elems := thisConcat.Elems
	otherTemp := thatOther
	newCommonAffix := NewEmptyString()
	newSelfConcat := NewEmptyString()
	c := 0

	indices := make([]int, len(elems))
	for i := range elems {
		if isPrefix {
			indices[i] = i
		} else {
			indices[i] = len(elems) - 1 - i
		}
	}

	for _, idx := range indices {
		c++
		elem := elems[idx]

		var affixTemp, elemTemp *Regex
		affixTemp, elemTemp, otherTemp = elem.GetCommonAffix(otherTemp, isPrefix)

		if affixTemp != nil {
			newCommonAffix = newCommonAffix.Concat(affixTemp, isPrefix)
		}

		if !elemTemp.IsEmptyString() || otherTemp.IsEmptyString() {
			newSelfConcat = newSelfConcat.Concat(elemTemp, isPrefix)
			break
		}
	}

	if !newCommonAffix.IsEmptyString() {
		var tail []int
		if isPrefix {
			for i := c; i < len(elems); i++ {
				tail = append(tail, i)
			}
		} else {
			for i := len(elems) - c - 1; i >= 0; i-- {
				tail = append(tail, i)
			}
		}
		for _, i := range tail {
			newSelfConcat = newSelfConcat.Concat(elems[i], isPrefix)
		}
		return newCommonAffix, newSelfConcat, otherTemp
	}
	return nil, thisConcat, thatOther
}

func opaffixAlternationAndAlternation(thisAlt, thatAlt *Regex) (*Regex, *Regex, *Regex) {
	a := sortUnique(append([]*Regex(nil), thisAlt.Elems...))
	b := sortUnique(append([]*Regex(nil), thatAlt.Elems...))
	if equalElemSets(a, b) {
		return thisAlt, NewEmptyString(), NewEmptyString()
	}
	return nil, thisAlt, thatAlt
}

func equalElemSets(a, b []*Regex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
