package rast

import (
	"regexp/syntax"
	"unicode"

	"github.com/RegexSolver/regexsolver/charset"
	"github.com/RegexSolver/regexsolver/rserr"
)

// New parses pattern as a surface regular expression and returns its AST.
//
// Grounded on RegularExpression::new. The corpus strips its own flag
// syntax before handing the pattern to regex-syntax; Go's regexp/syntax
// parses inline flags like (?i) natively, so that preprocessing step has
// no equivalent here.
func New(pattern string) (*Regex, error) {
	if pattern == "" {
		return NewEmptyString(), nil
	}
	if pattern == "[]" {
		return NewEmpty(), nil
	}
	re, err := syntax.Parse(pattern, syntax.Perl|syntax.DotNL)
	if err != nil {
		return nil, &rserr.RegexSyntaxError{Detail: err.Error()}
	}
	return FromSyntax(re)
}

// FromSyntax converts a parsed regexp/syntax.Regexp into a Regex, folding
// Concat/Alternate/Star/Plus/Quest/Repeat nodes through the same
// Concat/Union/Repeat algebra used everywhere else, so a freshly parsed
// pattern comes out already partly fused.
//
// Grounded on RegularExpression::from_hir.
func FromSyntax(re *syntax.Regexp) (*Regex, error) {
	switch re.Op {
	case syntax.OpNoMatch:
		return NewEmpty(), nil
	case syntax.OpEmptyMatch:
		return NewEmptyString(), nil
	case syntax.OpLiteral:
		regex := NewEmptyString()
		for _, r := range re.Rune {
			rng := literalRange(r, re.Flags&syntax.FoldCase != 0)
			regex = regex.Concat(NewCharacter(rng), true)
		}
		return regex, nil
	case syntax.OpCharClass:
		var set charset.RangeSet
		for i := 0; i+1 < len(re.Rune); i += 2 {
			set = set.Union(charset.FromRange(re.Rune[i], re.Rune[i+1]))
		}
		return NewCharacter(set), nil
	case syntax.OpAnyCharNotNL:
		return NewCharacter(charset.Total().Difference(charset.Single('\n'))), nil
	case syntax.OpAnyChar:
		return NewCharacter(charset.Total()), nil
	case syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return NewEmptyString(), nil
	case syntax.OpCapture:
		return FromSyntax(re.Sub[0])
	case syntax.OpStar:
		sub, err := FromSyntax(re.Sub[0])
		if err != nil {
			return nil, err
		}
		return sub.Repeat(0, nil), nil
	case syntax.OpPlus:
		sub, err := FromSyntax(re.Sub[0])
		if err != nil {
			return nil, err
		}
		return sub.Repeat(1, nil), nil
	case syntax.OpQuest:
		sub, err := FromSyntax(re.Sub[0])
		if err != nil {
			return nil, err
		}
		one := uint32(1)
		return sub.Repeat(0, &one), nil
	case syntax.OpRepeat:
		sub, err := FromSyntax(re.Sub[0])
		if err != nil {
			return nil, err
		}
		min := uint32(re.Min)
		if re.Max < 0 {
			return sub.Repeat(min, nil), nil
		}
		max := uint32(re.Max)
		return sub.Repeat(min, &max), nil
	case syntax.OpConcat:
		regex := NewEmptyString()
		for _, sub := range re.Sub {
			part, err := FromSyntax(sub)
			if err != nil {
				return nil, err
			}
			regex = regex.Concat(part, true)
		}
		return regex, nil
	case syntax.OpAlternate:
		regex := NewEmpty()
		for _, sub := range re.Sub {
			part, err := FromSyntax(sub)
			if err != nil {
				return nil, err
			}
			regex = regex.Union(part)
		}
		return regex, nil
	}
	return nil, &rserr.RegexSyntaxError{Detail: "unsupported regex construct"}
}

// literalRange builds the RangeSet matching r, expanded to its full
// case-folding orbit when fold is set.
func literalRange(r rune, fold bool) charset.RangeSet {
	if !fold {
		return charset.Single(r)
	}
	set := charset.Single(r)
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		set = set.Union(charset.Single(f))
	}
	return set
}
