package rast

// Repeat returns the regex matching r repeated between min and max times
// (max == nil means unbounded).
//
// Grounded on RegularExpression::repeat. A repetition of a repetition
// folds into a single node whenever doing so wouldn't inflate the
// automaton much more than keeping them nested would: the corpus's ratio
// heuristic (max-1)/(max-min) compared against max(2, min) decides that
// trade-off for the bounded/bounded case; every other shape (inner
// unbounded, inner min<=1, outer max pinned to min) always folds, except
// an unbounded inner repetition with min above 1 under an outer min of 0,
// which stays nested because folding it would add strings.
func (r *Regex) Repeat(min uint32, max *uint32) *Regex {
	if r.IsTotal() {
		return NewTotal()
	}
	if r.IsEmpty() {
		return NewEmpty()
	}
	if r.IsEmptyString() {
		return NewEmptyString()
	}
	if max != nil {
		if *max < min || *max == 0 {
			return NewEmptyString()
		}
		if min == 1 && *max == 1 {
			return r
		}
	}

	if r.Kind != KindRepetition {
		return NewRepetition(r, min, max)
	}

	oMin, oMax := r.Min, r.Max
	var newMax *uint32
	if max != nil && oMax != nil {
		m := (*max) * (*oMax)
		newMax = &m
	}

	if oMax == nil {
		if min == 0 && oMin > 1 {
			return NewRepetition(r, min, max)
		}
		return NewRepetition(r.Sub, min*oMin, newMax)
	}

	if oMin <= 1 || (max != nil && *max == min) {
		return NewRepetition(r.Sub, min*oMin, newMax)
	}
	if oMin == *oMax && oMin > 1 {
		return NewRepetition(r, min, max)
	}

	ratio := (float64(*oMax) - 1) / (float64(*oMax) - float64(oMin))
	threshold := min
	if threshold < 2 {
		threshold = 2
	}
	if ratio > float64(threshold) {
		return NewRepetition(r, min, max)
	}
	return NewRepetition(r.Sub, min*oMin, newMax)
}
