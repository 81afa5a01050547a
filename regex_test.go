package regexlight

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/coregx/regexlight/prog"
)

// referenceCases is the behavioural baseline every build must keep.
var referenceCases = []struct {
	pattern string
	text    string
	want    bool
}{
	{"a?", "c", true},
	{"ab?c", "cb", false},
	{"ab?", "a", true},
	{"ab?", "abc", true},
	{"ab?c", "abc", true},
	{"a?b?c?", "abc", true},
	{"a?b?c?", "bc", true},
	{"a?b?c?", "c", true},
	{"a?b?c?", "ac", true},
	{"a?b?c?", "a", true},
	{"a?b?c?", "ab", true},
	{"a?b?c?", "", true},
	{"a.?c", "abc", true},
	{"a.?c", "ac", true},
	{"ab", "abc", true},
	{"ab", "zabc", true},
	{"ab", "zab", true},
	{"^ab", "abc", true},
	{"^ab", "jc", false},
	{"a$", "abca", true},
	{"a*", "bd", true},
	{"a*", "bad", true},
	{"a*", "baad", true},
	{"a*", "baaaaaad", true},
	{"^a$", "a", true},
	{"^a$", "aa", false},
	{"^a$", "ab", false},
	{"^a$", "ba", false},
	{"ab*$", "abb", true},
	{"^ab*c$", "abc", true},
	{"^ab*c$", "abbbbbbc", true},
	{".", "a", true},
	{"..", "a", false},
	{".*", "aaaaaa", true},
	{"", "", true},
}

func TestReferenceCases(t *testing.T) {
	for _, tt := range referenceCases {
		re := MustCompile(tt.pattern)
		if got := re.MatchString(tt.text); got != tt.want {
			t.Errorf("/%s/ on %q: MatchString = %v, want %v", tt.pattern, tt.text, got, tt.want)
		}
		if got := re.Match([]byte(tt.text)); got != tt.want {
			t.Errorf("/%s/ on %q: Match = %v, want %v", tt.pattern, tt.text, got, tt.want)
		}
	}
}

// TestCompile checks that syntax is never rejected and capacity limits are.
func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr error
	}{
		{"literal", "hello", nil},
		{"classes", `\w+\s\d`, nil},
		{"unclosed group", "(ab", nil},
		{"stray close", "a)b", nil},
		{"unterminated bracket", "[abc", nil},
		{"trailing backslash", `a\`, nil},
		{"63 groups", strings.Repeat("(a)", prog.MaxGroups), nil},
		{"64 groups", strings.Repeat("(a)", prog.MaxGroups+1), prog.ErrTooManyGroups},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Compile() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if re.String() != tt.pattern {
				t.Errorf("String() = %q, want %q", re.String(), tt.pattern)
			}
		})
	}
}

func TestMustCompile(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustCompile() did not panic on too many groups")
		}
		msg, ok := r.(string)
		if !ok || !strings.HasPrefix(msg, "regexlight: Compile(`") {
			t.Errorf("panic value = %v", r)
		}
	}()

	MustCompile(strings.Repeat("()", prog.MaxGroups+1))
}

func TestFind(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    string
		loc     []int
	}{
		{`\d+`, "age: 42 years", "42", []int{5, 7}},
		{`\w+@\w+\.com`, "mail bob@example.com now", "bob@example.com", []int{5, 20}},
		{"hello", "say hello", "hello", []int{4, 9}},
		{"a*", "baaad", "", []int{0, 0}},
		{"a$", "zaza", "a", []int{3, 4}},
		{"^b", "ab", "", nil},
		{"[0-9]+x", "123y", "", nil},
		{`a\s+b`, "a \t\f\r\nb", "a \t\f\r\nb", []int{0, 7}},
		{`\s`, "a\vb", "", nil},
	}

	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		if got := re.FindString(tt.input); got != tt.want {
			t.Errorf("/%s/.FindString(%q) = %q, want %q", tt.pattern, tt.input, got, tt.want)
		}
		if diff := cmp.Diff(tt.loc, re.FindStringIndex(tt.input)); diff != "" {
			t.Errorf("/%s/.FindStringIndex(%q) mismatch (-want +got):\n%s", tt.pattern, tt.input, diff)
		}
		got := re.Find([]byte(tt.input))
		if (got == nil) != (tt.loc == nil) || string(got) != tt.want {
			t.Errorf("/%s/.Find(%q) = %q, want %q", tt.pattern, tt.input, got, tt.want)
		}
	}
}

func TestFindSubmatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		loc     []int
		strs    []string
	}{
		{"star inside group", "a(b*)c", "xabbc", []int{1, 5, 2, 4}, []string{"abbc", "bb"}},
		{"last repetition", "(ab)+c", "abababc", []int{0, 7, 4, 6}, []string{"abababc", "ab"}},
		{"email", `(\w+)@(\w+)\.com`, "mail bob@example.com",
			[]int{5, 20, 5, 8, 9, 16}, []string{"bob@example.com", "bob", "example"}},
		{"optional group absent", "a(b)?c", "ac", []int{0, 2, -1, -1}, []string{"ac", ""}},
		{"nested", "(a(b)c)", "zabc", []int{1, 4, 1, 4, 2, 3}, []string{"abc", "abc", "b"}},
		{"no groups", "b+", "abbc", []int{1, 3}, []string{"bb"}},
		{"no match", "(ab)+c", "ababx", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			if diff := cmp.Diff(tt.loc, re.FindStringSubmatchIndex(tt.input)); diff != "" {
				t.Errorf("FindStringSubmatchIndex mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.strs, re.FindStringSubmatch(tt.input)); diff != "" {
				t.Errorf("FindStringSubmatch mismatch (-want +got):\n%s", diff)
			}
		})
	}

	re := MustCompile("a(b)?c")
	m := re.FindSubmatch([]byte("ac"))
	if len(m) != 2 || string(m[0]) != "ac" || m[1] != nil {
		t.Errorf("FindSubmatch = %q, want [ac <nil>]", m)
	}
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		n       int
		want    [][]int
	}{
		{`\d+`, "1 22 333", -1, [][]int{{0, 1}, {2, 4}, {5, 8}}},
		{`\d+`, "1 22 333", 2, [][]int{{0, 1}, {2, 4}}},
		{`\d+`, "1 22 333", 0, nil},
		{"a*", "baaad", -1, [][]int{{0, 0}, {1, 4}, {5, 5}}},
		{"^a", "aaa", -1, [][]int{{0, 1}}},
		{"ab", "ababab", -1, [][]int{{0, 2}, {2, 4}, {4, 6}}},
		{"x", "abc", -1, nil},
		{"", "ab", -1, [][]int{{0, 0}, {1, 1}, {2, 2}}},
	}

	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		got := re.FindAllStringIndex(tt.input, tt.n)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("/%s/.FindAllStringIndex(%q, %d) mismatch (-want +got):\n%s",
				tt.pattern, tt.input, tt.n, diff)
		}
		if c := re.Count([]byte(tt.input), tt.n); c != len(tt.want) {
			t.Errorf("/%s/.Count(%q, %d) = %d, want %d", tt.pattern, tt.input, tt.n, c, len(tt.want))
		}
	}

	re := MustCompile(`\w+`)
	if diff := cmp.Diff([]string{"hello", "world", "test"}, re.FindAllString("hello world test", -1)); diff != "" {
		t.Errorf("FindAllString mismatch (-want +got):\n%s", diff)
	}
	all := re.FindAll([]byte("a bc"), -1)
	if len(all) != 2 || string(all[0]) != "a" || string(all[1]) != "bc" {
		t.Errorf("FindAll = %q", all)
	}
}

func TestReplaceAllLiteral(t *testing.T) {
	tests := []struct {
		pattern string
		src     string
		repl    string
		want    string
	}{
		{`\d+`, "age: 42", "XX", "age: XX"},
		{"a*", "baaad", "-", "-b-d-"},
		{"(ab)+", "xababy ab", "$1", "x$1y $1"},
		{"z", "abc", "-", "abc"},
	}
	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		if got := re.ReplaceAllLiteralString(tt.src, tt.repl); got != tt.want {
			t.Errorf("/%s/.ReplaceAllLiteralString(%q, %q) = %q, want %q",
				tt.pattern, tt.src, tt.repl, got, tt.want)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		pattern string
		s       string
		n       int
		want    []string
	}{
		{",", "a,b,c", -1, []string{"a", "b", "c"}},
		{",", "a,b,c", 2, []string{"a", "b,c"}},
		{",", "a,b,", -1, []string{"a", "b", ""}},
		{",", "abc", -1, []string{"abc"}},
		{",", "", -1, []string{""}},
		{"x*", "abc", -1, []string{"a", "b", "c"}},
		{",", "a,b", 0, nil},
	}
	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		if diff := cmp.Diff(tt.want, re.Split(tt.s, tt.n)); diff != "" {
			t.Errorf("/%s/.Split(%q, %d) mismatch (-want +got):\n%s", tt.pattern, tt.s, tt.n, diff)
		}
	}
}

func TestQuoteMeta(t *testing.T) {
	if got := QuoteMeta("1+1=2?"); got != `1\+1=2\?` {
		t.Errorf("QuoteMeta = %q", got)
	}
	if got := QuoteMeta("plain"); got != "plain" {
		t.Errorf("QuoteMeta(plain) = %q", got)
	}

	for _, s := range []string{`a.b*c`, `[x]^$`, `(g)\`, `q?+`} {
		re := MustCompile(QuoteMeta(s))
		loc := re.FindStringIndex("<<" + s + ">>")
		if diff := cmp.Diff([]int{2, 2 + len(s)}, loc); diff != "" {
			t.Errorf("QuoteMeta(%q) does not match itself (-want +got):\n%s", s, diff)
		}
	}
}

func TestNumSubexp(t *testing.T) {
	for pattern, want := range map[string]int{
		"abc":       0,
		"(a)(b)":    2,
		"((a)b)+":   2,
		"(ab":       1,
		`\(a\)`:     0,
		"[(]":       0,
		"(a(b(c)))": 3,
	} {
		if got := MustCompile(pattern).NumSubexp(); got != want {
			t.Errorf("NumSubexp(%q) = %d, want %d", pattern, got, want)
		}
	}
}

func TestCompileWithConfig(t *testing.T) {
	alloc := prog.NewCountingAllocator(prog.NewBucketAllocator(64, 4096))
	config := DefaultConfig()
	config.Allocator = alloc

	re, err := CompileWithConfig("a(b*)c", config)
	if err != nil {
		t.Fatal(err)
	}
	if !re.MatchString("abbc") {
		t.Error("no match")
	}
	if alloc.LiveBytes() == 0 {
		t.Error("pattern memory did not come from the configured allocator")
	}

	re.Free()
	if alloc.LiveBytes() != 0 {
		t.Errorf("LiveBytes after Free = %d", alloc.LiveBytes())
	}
	// a freed pattern behaves as the empty pattern
	if diff := cmp.Diff([]int{0, 0}, re.FindStringIndex("xyz")); diff != "" {
		t.Errorf("freed FindStringIndex mismatch (-want +got):\n%s", diff)
	}

	config.MaxLiterals = -1
	if _, err := CompileWithConfig("a", config); err == nil {
		t.Error("invalid config accepted")
	}
}

func TestRegexConcurrent(t *testing.T) {
	re := MustCompile(`(\w+)@(\w+)\.com`)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				m := re.FindStringSubmatch("mail bob@example.com")
				if len(m) != 3 || m[1] != "bob" || m[2] != "example" {
					t.Errorf("FindStringSubmatch = %q", m)
					return
				}
			}
		}()
	}
	wg.Wait()

	if got := re.Stats().Searches; got != 800 {
		t.Errorf("Searches = %d, want 800", got)
	}
}
