// Package prog compiles patterns into a flat, immutable atom sequence.
//
// A compiled pattern is a single owned byte block: a run of fixed-width atom
// records terminated by a Term record, followed by the contents of every
// bracket expression in the pattern. Quantifier atoms are not nested into
// the atom they repeat; they follow it in the sequence and the matcher reads
// them as one-token lookahead.
//
// Supported syntax:
//
//	.          any byte
//	? * +      zero-or-one, zero-or-more, one-or-more of the preceding atom
//	^ $        start and end of text
//	[...]      bracket expression (ranges a-z, literal bytes, \ escapes)
//	( )        capturing group, numbered left to right from 1
//	\w \s \d   word, whitespace and digit classes
//	\x         literal x for any other byte x
package prog

import "strconv"

// Kind identifies the instruction an atom encodes.
type Kind uint8

// Atom kinds. Term must stay zero: a zeroed record decodes as the end of the
// sequence.
const (
	Term Kind = iota
	Lit
	Dot
	Question
	Star
	Plus
	Begin
	End
	Bracket
	GroupOpen
	GroupClose
)

var kindNames = [...]string{
	Term:       "Term",
	Lit:        "Lit",
	Dot:        "Dot",
	Question:   "Question",
	Star:       "Star",
	Plus:       "Plus",
	Begin:      "Begin",
	End:        "End",
	Bracket:    "Bracket",
	GroupOpen:  "GroupOpen",
	GroupClose: "GroupClose",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsQuantifier reports whether k repeats the atom preceding it.
func (k Kind) IsQuantifier() bool {
	return k == Question || k == Star || k == Plus
}

// Atom is the decoded view of one compiled instruction.
//
// Ch is set for Lit. Class is set for Bracket and aliases the class buffer
// of the owning Prog; it must not be modified. Group is the 1-based ordinal
// of the group a GroupOpen or GroupClose belongs to (0 for a stray close).
type Atom struct {
	Kind  Kind
	Ch    byte
	Group int
	Class []byte
}

// String returns a short human-readable form of the atom.
func (a Atom) String() string {
	switch a.Kind {
	case Lit:
		return "Lit " + strconv.QuoteRuneToASCII(rune(a.Ch))
	case Bracket:
		return "Bracket [" + string(a.Class) + "]"
	case GroupOpen, GroupClose:
		return a.Kind.String() + " " + strconv.Itoa(a.Group)
	default:
		return a.Kind.String()
	}
}
