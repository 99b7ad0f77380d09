package rast

import "github.com/RegexSolver/regexsolver/charset"

// Concat returns the regex matching r's language followed by other's,
// fusing adjacent repetitions of the same sub-expression instead of
// growing an ever-longer Concat list.
//
// Grounded on RegularExpression::concat. appendBack controls which side of
// an existing Concat the new operand is merged into — true appends other
// onto the back of r (or r onto the back of other's first element),
// false prepends the other way around.
func (r *Regex) Concat(other *Regex, appendBack bool) *Regex {
	if r.IsEmpty() || other.IsEmpty() {
		return NewEmpty()
	}
	if r.IsEmptyString() {
		return other
	}
	if other.IsEmptyString() {
		return r
	}

	switch {
	case r.Kind == KindConcat && other.Kind == KindConcat:
		if appendBack {
			return opconcatConcatAndConcat(r, other)
		}
		return opconcatConcatAndConcat(other, r)
	case r.Kind == KindConcat:
		if appendBack {
			return opconcatConcatAndOther(r, other)
		}
		return opconcatOtherAndConcat(other, r)
	case other.Kind == KindConcat:
		if appendBack {
			return opconcatOtherAndConcat(r, other)
		}
		return opconcatConcatAndOther(other, r)
	default:
		if appendBack {
			return opconcatOtherAndOther(r, other)
		}
		return opconcatOtherAndOther(other, r)
	}
}

func opconcatOtherAndOther(this, that *Regex) *Regex {
	if merged := concatCanBeMerged(this, that); merged != nil {
		return merged
	}
	return NewConcat([]*Regex{this, that})
}

func opconcatOtherAndConcat(this, that *Regex) *Regex {
	elems := that.Elems
	if len(elems) == 0 {
		return this
	}
	if merged := concatCanBeMerged(this, that); merged != nil {
		return merged
	}

	newElems := append([]*Regex(nil), elems...)
	if merged := concatCanBeMerged(this, newElems[0]); merged != nil {
		newElems[0] = merged
	} else {
		newElems = append([]*Regex{this}, newElems...)
	}
	if len(newElems) == 1 {
		return newElems[0]
	}
	return NewConcat(newElems)
}

func opconcatConcatAndOther(this, that *Regex) *Regex {
	elems := this.Elems
	if len(elems) == 0 {
		return that
	}
	if merged := concatCanBeMerged(this, that); merged != nil {
		return merged
	}

	newElems := append([]*Regex(nil), elems...)
	last := len(newElems) - 1
	if merged := concatCanBeMerged(newElems[last], that); merged != nil {
		newElems[last] = merged
	} else {
		newElems = append(newElems, that)
	}
	if len(newElems) == 1 {
		return newElems[0]
	}
	return NewConcat(newElems)
}

func opconcatConcatAndConcat(this, that *Regex) *Regex {
	thisElems, thatElems := this.Elems, that.Elems
	if len(thisElems) == 0 {
		return NewConcat(thatElems)
	}
	if len(thatElems) == 0 {
		return NewConcat(thisElems)
	}
	if merged := concatCanBeMerged(this, that); merged != nil {
		return merged
	}

	newElems := append([]*Regex(nil), thisElems...)
	last := len(newElems) - 1
	if merged := concatCanBeMerged(newElems[last], thatElems[0]); merged != nil {
		newElems[last] = merged
		newElems = append(newElems, thatElems[1:]...)
	} else {
		newElems = append(newElems, thatElems...)
	}
	if len(newElems) == 1 {
		return newElems[0]
	}
	return NewConcat(newElems)
}

// concatCanBeMerged returns the fused node for this followed by that, or
// nil if they don't fuse into anything shorter than a two-element Concat.
//
// Grounded on opconcat_can_be_merged: an unbounded repetition of a
// character class absorbs a trailing zero-minimum repetition of a class it
// already covers; two identical nodes
// collapse into a {2} repetition (or sum their bounds if both are already
// repetitions of the same sub-expression); and a repetition recurses into
// its own sub-expression looking for a partial merge, folding the
// remaining count back in (the "- 1" terms: one repeated copy of the
// fused node already accounts for one of the two original min/max units).
func concatCanBeMerged(this, that *Regex) *Regex {
	if this.Kind == KindRepetition && that.Kind == KindRepetition {
		if this.Sub.Kind == KindCharacter && that.Sub.Kind == KindCharacter {
			if containsAll(this.Sub.Range, that.Sub.Range) && that.Min == 0 && this.Max == nil {
				return this
			}
		}
	}

	if Equal(this, that) {
		if this.Kind == KindRepetition && that.Kind == KindRepetition {
			newMin := this.Min + that.Min
			var newMax *uint32
			if this.Max != nil && that.Max != nil {
				m := *this.Max + *that.Max
				newMax = &m
			}
			return NewRepetition(this.Sub, newMin, newMax)
		}
		two := uint32(2)
		return NewRepetition(this, 2, &two)
	} else if this.Kind == KindRepetition {
		merged := concatCanBeMerged(this.Sub, that)
		if merged != nil && merged.Kind == KindRepetition {
			newMin := this.Min + merged.Min - 1
			var newMax *uint32
			if this.Max != nil && merged.Max != nil {
				m := *this.Max + *merged.Max - 1
				newMax = &m
			}
			return NewRepetition(merged.Sub, newMin, newMax)
		}
		return nil
	} else if that.Kind == KindRepetition {
		merged := concatCanBeMerged(this, that.Sub)
		if merged != nil && merged.Kind == KindRepetition {
			newMin := merged.Min + that.Min - 1
			var newMax *uint32
			if merged.Max != nil && that.Max != nil {
				m := *merged.Max + *that.Max - 1
				newMax = &m
			}
			return NewRepetition(merged.Sub, newMin, newMax)
		}
		return nil
	}
	return nil
}

// containsAll reports whether every code point in inner also lies in outer.
func containsAll(outer, inner charset.RangeSet) bool {
	return inner.Difference(outer).IsEmpty()
}
