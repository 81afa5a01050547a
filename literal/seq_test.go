package literal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seqOf(strs ...string) *Seq {
	lits := make([]Literal, len(strs))
	for i, s := range strs {
		lits[i] = NewLiteral([]byte(s), false)
	}
	return NewSeq(lits...)
}

func TestSeqMinimize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, nil},
		{"single", []string{"foo"}, []string{"foo"}},
		{"contained", []string{"foo", "xfoo", "bar"}, []string{"xfoo", "bar"}},
		{"duplicates", []string{"ab", "ab"}, []string{"ab"}},
		{"disjoint keep order", []string{"cd", "ab"}, []string{"cd", "ab"}},
		{"middle substring", []string{"ell", "hello"}, []string{"hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seqOf(tt.in...)
			s.Minimize()
			if diff := cmp.Diff(tt.want, s.Strings()); diff != "" {
				t.Errorf("Minimize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSeqBasics(t *testing.T) {
	var nilSeq *Seq
	if !nilSeq.IsEmpty() || nilSeq.Len() != 0 {
		t.Error("nil Seq should be empty")
	}

	s := seqOf("abc", "de")
	if string(s.Get(0).Bytes) != "abc" {
		t.Errorf("Get(0) = %q, want abc", s.Get(0).Bytes)
	}

	s.Truncate(1)
	if s.Len() != 1 {
		t.Errorf("Truncate(1): Len = %d", s.Len())
	}
	s.Truncate(5)
	if s.Len() != 1 {
		t.Errorf("Truncate(5) grew the sequence to %d", s.Len())
	}

	if got := NewLiteral([]byte("test"), true).String(); got != "literal{test, complete=true}" {
		t.Errorf("String() = %q", got)
	}
}
