package rast

// Union returns the regex matching r's or other's language, dispatching
// on the shapes of both operands to fuse them into something shorter
// than a bare two-element Alternation wherever possible.
//
// Grounded on RegularExpression::union's full dispatch matrix.
func (r *Regex) Union(other *Regex) *Regex {
	if r.IsTotal() || other.IsTotal() {
		return NewTotal()
	}
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() || Equal(r, other) {
		return r
	}
	if other.IsEmptyString() {
		one := uint32(1)
		return r.Repeat(0, &one)
	}
	if r.IsEmptyString() {
		one := uint32(1)
		return other.Repeat(0, &one)
	}

	switch {
	case r.Kind == KindCharacter && other.Kind == KindCharacter:
		return NewCharacter(r.Range.Union(other.Range))
	case r.Kind == KindCharacter && other.Kind == KindRepetition:
		return opunionCharacterAndRepetition(r, other)
	case r.Kind == KindCharacter && other.Kind == KindConcat:
		return opunionCharacterAndConcat(r, other)
	case r.Kind == KindCharacter && other.Kind == KindAlternation:
		return opunionCharacterAndAlternation(r, other)
	case r.Kind == KindRepetition && other.Kind == KindCharacter:
		return opunionCharacterAndRepetition(other, r)
	case r.Kind == KindRepetition && other.Kind == KindRepetition:
		return opunionRepetitionAndRepetition(r, other)
	case r.Kind == KindRepetition && other.Kind == KindConcat:
		return opunionConcatAndRepetition(other, r)
	case r.Kind == KindRepetition && other.Kind == KindAlternation:
		return opunionRepetitionAndAlternation(r, other)
	case r.Kind == KindConcat && other.Kind == KindCharacter:
		return opunionCharacterAndConcat(other, r)
	case r.Kind == KindConcat && other.Kind == KindRepetition:
		return opunionConcatAndRepetition(r, other)
	case r.Kind == KindConcat && other.Kind == KindConcat:
		return opunionCommonAffixes(r, other)
	case r.Kind == KindConcat && other.Kind == KindAlternation:
		return opunionConcatAndAlternation(r, other)
	case r.Kind == KindAlternation && other.Kind == KindCharacter:
		return opunionCharacterAndAlternation(other, r)
	case r.Kind == KindAlternation && other.Kind == KindRepetition:
		return opunionRepetitionAndAlternation(other, r)
	case r.Kind == KindAlternation && other.Kind == KindConcat:
		return opunionConcatAndAlternation(other, r)
	default: // both KindAlternation
		result := other
		for _, elem := range r.Elems {
			result = result.Union(elem)
		}
		return result
	}
}

func opunionCharacterAndRepetition(thisChar, thatRep *Regex) *Regex {
	if Equal(thisChar, thatRep.Sub) && thatRep.Min <= 2 {
		newMin := minU32(1, thatRep.Min)
		return NewRepetition(thatRep.Sub, newMin, thatRep.Max)
	}
	elems := []*Regex{thisChar, thatRep}
	sortUnstable(elems)
	return NewAlternation(elems)
}

// opunionCommonAffixes peels any common prefix/suffix off self and other,
// unions what's left (or makes it optional, if one side reduces to the
// empty string), then reattaches the peeled affixes around the result.
func opunionCommonAffixes(this, that *Regex) *Regex {
	prefix, selfR, otherR, suffix := this.GetCommonAffixes(that)

	regex := NewEmptyString()
	if prefix != nil {
		regex = regex.Concat(prefix, true)
	}

	var fromAlternate *Regex
	switch {
	case !selfR.IsEmptyString() && !otherR.IsEmptyString():
		if prefix == nil && suffix == nil {
			elems := []*Regex{selfR, otherR}
			sortUnstable(elems)
			fromAlternate = NewAlternation(elems)
		} else {
			fromAlternate = selfR.Union(otherR)
		}
	case !selfR.IsEmptyString():
		one := uint32(1)
		fromAlternate = NewRepetition(selfR, 0, &one)
	case !otherR.IsEmptyString():
		one := uint32(1)
		fromAlternate = NewRepetition(otherR, 0, &one)
	default:
		fromAlternate = NewEmptyString()
	}

	regex = regex.Concat(fromAlternate, true)
	if suffix != nil {
		regex = regex.Concat(suffix, true)
	}
	return regex
}

func opunionCharacterAndAlternation(thisChar, thatAlt *Regex) *Regex {
	var set []*Regex
	had := false
	for _, elem := range thatAlt.Elems {
		switch elem.Kind {
		case KindCharacter:
			set = append(set, NewCharacter(thisChar.Range.Union(elem.Range)))
			had = true
		case KindRepetition:
			rep := opunionCharacterAndRepetition(thisChar, elem)
			if rep.Kind == KindRepetition {
				set = append(set, rep)
				had = true
			} else {
				set = append(set, elem)
			}
		default:
			set = append(set, elem)
		}
	}
	if !had {
		set = append(set, thisChar)
	}
	return NewAlternation(sortUnique(set))
}

func opunionCharacterAndConcat(thisChar, thatConcat *Regex) *Regex {
	elems := thatConcat.Elems
	if len(elems) == 1 && Equal(elems[0], thisChar) {
		return thisChar
	}
	return opunionCommonAffixes(thisChar, thatConcat)
}

func opunionConcatAndRepetition(thisConcat, thatRep *Regex) *Regex {
	if Equal(thisConcat, thatRep.Sub) && thatRep.Min <= 2 {
		newMin := minU32(1, thatRep.Min)
		return NewRepetition(thatRep.Sub, newMin, thatRep.Max)
	}
	return opunionCommonAffixes(thisConcat, thatRep)
}

func opunionConcatAndAlternation(thisConcat, thatAlt *Regex) *Regex {
	var set []*Regex
	had := false
	for _, elem := range thatAlt.Elems {
		if elem.Kind == KindRepetition {
			rep := opunionConcatAndRepetition(thisConcat, elem)
			if rep.Kind == KindRepetition {
				set = append(set, rep)
				had = true
			} else {
				set = append(set, elem)
			}
		} else {
			set = append(set, elem)
		}
	}
	if !had {
		set = append(set, thisConcat)
	}
	return NewAlternation(sortUnique(set))
}

func opunionRepetitionAndRepetition(thisRep, thatRep *Regex) *Regex {
	if Equal(thisRep.Sub, thatRep.Sub) {
		if thisRep.Max != nil && thatRep.Max != nil {
			tmax, omax := *thisRep.Max, *thatRep.Max
			if (thisRep.Min <= omax && thatRep.Min <= tmax) || tmax+1 == thatRep.Min || omax+1 == thisRep.Min {
				mn := minU32(thisRep.Min, thatRep.Min)
				mx := maxU32(tmax, omax)
				return NewRepetition(thisRep.Sub, mn, &mx)
			}
		} else {
			mn := minU32(thisRep.Min, thatRep.Min)
			return NewRepetition(thisRep.Sub, mn, nil)
		}
	}

	elems := []*Regex{thisRep, thatRep}
	sortUnstable(elems)
	return NewAlternation(elems)
}

func opunionRepetitionAndAlternation(thisRep, thatAlt *Regex) *Regex {
	if Equal(thatAlt, thisRep.Sub) && thisRep.Min <= 2 {
		newMin := minU32(1, thisRep.Min)
		return NewRepetition(thisRep.Sub, newMin, thisRep.Max)
	}

	var set []*Regex
	had := false
	for _, elem := range thatAlt.Elems {
		switch elem.Kind {
		case KindRepetition:
			rep := opunionRepetitionAndRepetition(thisRep, elem)
			if rep.Kind == KindRepetition {
				set = append(set, rep)
				had = true
			} else {
				set = append(set, elem)
			}
		case KindCharacter:
			rep := opunionCharacterAndRepetition(elem, thisRep)
			if rep.Kind == KindRepetition {
				set = append(set, rep)
				had = true
			} else {
				set = append(set, elem)
			}
		case KindConcat:
			rep := opunionConcatAndRepetition(elem, thisRep)
			if rep.Kind == KindRepetition {
				set = append(set, rep)
				had = true
			} else {
				set = append(set, elem)
			}
		default:
			set = append(set, elem)
		}
	}
	if !had {
		set = append(set, thisRep)
	}
	return NewAlternation(sortUnique(set))
}
