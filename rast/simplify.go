package rast

// Simplify recursively rebuilds r through the Concat/Union/Repeat fusion
// algebra, folding sub-expressions built independently (e.g. by NewConcat,
// NewAlternation or NewRepetition, which never fuse) into their canonical
// shortest form.
//
// Grounded on RegularExpression::simplify.
func (r *Regex) Simplify() *Regex {
	switch r.Kind {
	case KindCharacter:
		return r
	case KindRepetition:
		sub := r.Sub.Simplify()
		if sub.Kind == KindRepetition {
			var newMax *uint32
			if r.Max != nil && sub.Max != nil {
				m := (*r.Max) * (*sub.Max)
				newMax = &m
			}
			return NewRepetition(sub.Sub, r.Min*sub.Min, newMax)
		}
		return NewRepetition(sub, r.Min, r.Max)
	case KindConcat:
		regex := NewEmptyString()
		for _, e := range r.Elems {
			regex = regex.Concat(e.Simplify(), true)
		}
		return regex
	case KindAlternation:
		regex := NewEmpty()
		for _, e := range r.Elems {
			regex = regex.Union(e.Simplify())
		}
		return regex
	}
	panic("rast: unknown kind")
}
