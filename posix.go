package regexlight

import "errors"

// Compilation flags accepted by Regcomp. The engine has a single syntax and
// a single matching mode, so the flags are accepted and ignored.
const (
	RegExtended = 1 << iota
	RegIcase
	RegNosub
	RegNewline
)

// Execution flags accepted by Regexec and ignored.
const (
	RegNotbol = 1 << iota
	RegNoteol
)

// ErrNoMatch is returned by Regexec when the text does not match.
var ErrNoMatch = errors.New("regexlight: no match")

// Regmatch is the span of one match slot. So and Eo are -1 for a slot
// whose group did not participate in the match.
type Regmatch struct {
	So int // start offset
	Eo int // end offset, exclusive
}

// Regcomp compiles pattern in the compile/execute/free style. The flags
// argument is accepted for source compatibility and ignored; patterns are
// always compiled the same way.
//
// Example:
//
//	re, err := regexlight.Regcomp(`a(b*)c`, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer re.Regfree()
//	m, err := re.Regexec("xabbc", 2, 0)
//	// m = [{1 5} {2 4}]
func Regcomp(pattern string, _ int) (*Regex, error) {
	return Compile(pattern)
}

// Regexec matches text and fills nmatch slots: slot 0 is the whole match,
// slot i the span of group i, and every other slot is {-1, -1}. It returns
// ErrNoMatch when there is no match. With nmatch <= 0 it only reports
// whether the text matches. The eflags argument is ignored.
func (r *Regex) Regexec(text string, nmatch int, _ int) ([]Regmatch, error) {
	spans, ok := r.engine.Exec([]byte(text), nmatch)
	if !ok {
		return nil, ErrNoMatch
	}
	if len(spans) == 0 {
		return nil, nil
	}
	out := make([]Regmatch, len(spans))
	for i, sp := range spans {
		out[i] = Regmatch{So: sp.Start, Eo: sp.End}
	}
	return out, nil
}

// Regfree releases the compiled pattern. It is Free under its POSIX name.
func (r *Regex) Regfree() {
	r.Free()
}
