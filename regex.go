// Package regexlight provides a small backtracking regular expression engine
// with per-group capture spans.
//
// Supported syntax:
//
//	c        literal byte
//	.        any byte
//	^  $     start and end of text
//	? * +    zero-or-one, zero-or-more, one-or-more of the preceding atom or group
//	[...]    bracket expression: ranges a-z, escapes \], literal bytes
//	\w \s \d word, whitespace and digit classes
//	\c       literal c for any other byte
//	( )      capturing group
//
// Alternation, backreferences, counted repetition and Unicode classes are not
// supported; those bytes match themselves. Malformed patterns are accepted:
// an unterminated bracket expression runs to the end of the pattern, an
// unclosed group runs to the end of its enclosing sequence and a stray ')'
// matches the empty string.
//
// Basic usage:
//
//	re, err := regexlight.Compile(`(\w+)@(\w+)\.com`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := re.FindStringSubmatch("mail bob@example.com")
//	fmt.Println(m[1], m[2]) // bob example
//
// Matching semantics: the leftmost start offset wins. Quantifiers are greedy
// and give back input only until the rest of the pattern matches; a group
// body that matched is not re-entered to find a shorter alternative. A
// quantified group reports the span of its last repetition.
//
// Limitations:
//   - Nested quantified groups such as ((a*)*)* can take exponential time
//   - Groups nested deeper than 10 fail to match
//   - At most 63 groups per pattern
//
// Memory for compiled patterns comes from a prog.Allocator set in the
// configuration, and Free hands it back.
package regexlight

import (
	"strings"

	"github.com/coregx/regexlight/backtrack"
	"github.com/coregx/regexlight/meta"
)

// Regex represents a compiled regular expression.
//
// A Regex is safe to use concurrently from multiple goroutines, except for
// Free.
//
// Example:
//
//	re := regexlight.MustCompile(`hello`)
//	if re.Match([]byte("hello world")) {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Regexp is an alias for Regex, so code written against the stdlib type
// name keeps compiling.
type Regexp = Regex

// Compile compiles a regular expression pattern.
//
// Compile only fails when the pattern exceeds a capacity limit (too many
// groups, an oversized bracket expression); syntax is never rejected.
//
// Example:
//
//	re, err := regexlight.Compile(`[0-9]+-[0-9]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile compiles a regular expression pattern and panics if it fails.
//
// Example:
//
//	var emailRegex = regexlight.MustCompile(`[a-z]+@[a-z]+\.[a-z]+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexlight: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := regexlight.DefaultConfig()
//	config.Allocator = prog.NewBucketAllocator(64, 4096)
//	re, err := regexlight.CompileWithConfig("a(b*)c", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// QuoteMeta returns a string that escapes all metacharacters inside the
// argument text; the returned string is a pattern matching the literal text.
//
// Example:
//
//	escaped := regexlight.QuoteMeta("1+1=2?")
//	// escaped = `1\+1=2\?`
func QuoteMeta(s string) string {
	const special = `\.+*?()[]^$`

	n := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(special, s[i]) >= 0 {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// NumSubexp returns the number of parenthesized groups in the pattern.
func (r *Regex) NumSubexp() int {
	return r.engine.NumSubexp()
}

// Stats returns the engine's execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// Free releases the memory of the compiled pattern to the configured
// allocator. Afterwards the Regex matches as the empty pattern. Free must
// not be called while another goroutine is using r.
func (r *Regex) Free() {
	r.engine.Free()
}

// Match reports whether the byte slice b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether the string s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Find returns a slice holding the text of the leftmost match in b.
// Returns nil if no match is found.
//
// Example:
//
//	re := regexlight.MustCompile(`\d+`)
//	match := re.Find([]byte("age: 42"))
//	println(string(match)) // "42"
func (r *Regex) Find(b []byte) []byte {
	start, end, ok := r.engine.FindIndices(b)
	if !ok {
		return nil
	}
	return b[start:end:end]
}

// FindString returns a string holding the text of the leftmost match in s.
// Returns empty string if no match is found.
func (r *Regex) FindString(s string) string {
	start, end, ok := r.engine.FindIndices([]byte(s))
	if !ok {
		return ""
	}
	return s[start:end]
}

// FindIndex returns a two-element slice of integers defining the location of
// the leftmost match in b. The match is at b[loc[0]:loc[1]].
// Returns nil if no match is found.
func (r *Regex) FindIndex(b []byte) []int {
	start, end, ok := r.engine.FindIndices(b)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex returns a two-element slice of integers defining the
// location of the leftmost match in s.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindSubmatchIndex returns index pairs for the leftmost match and its
// groups: loc[2*i:2*i+2] is the span of group i, -1 for groups that did not
// participate. Returns nil if no match is found.
//
// Example:
//
//	re := regexlight.MustCompile(`(ab)+c`)
//	loc := re.FindSubmatchIndex([]byte("abababc"))
//	// loc = [0 7 4 6], the group reports its last repetition
func (r *Regex) FindSubmatchIndex(b []byte) []int {
	spans, ok := r.engine.Exec(b, r.NumSubexp()+1)
	if !ok {
		return nil
	}
	return flatten(spans)
}

// FindStringSubmatchIndex is like FindSubmatchIndex for a string.
func (r *Regex) FindStringSubmatchIndex(s string) []int {
	return r.FindSubmatchIndex([]byte(s))
}

// FindSubmatch returns the text of the leftmost match and of each group.
// Groups that did not participate are nil. Returns nil if no match is found.
func (r *Regex) FindSubmatch(b []byte) [][]byte {
	loc := r.FindSubmatchIndex(b)
	if loc == nil {
		return nil
	}
	out := make([][]byte, len(loc)/2)
	for i := range out {
		if s, e := loc[2*i], loc[2*i+1]; s >= 0 {
			out[i] = b[s:e:e]
		}
	}
	return out
}

// FindStringSubmatch returns the text of the leftmost match and of each
// group. Groups that did not participate are empty strings.
//
// Example:
//
//	re := regexlight.MustCompile(`a(b*)c`)
//	m := re.FindStringSubmatch("xabbc")
//	// m = ["abbc" "bb"]
func (r *Regex) FindStringSubmatch(s string) []string {
	loc := r.FindSubmatchIndex([]byte(s))
	if loc == nil {
		return nil
	}
	out := make([]string, len(loc)/2)
	for i := range out {
		if st, e := loc[2*i], loc[2*i+1]; st >= 0 {
			out[i] = s[st:e]
		}
	}
	return out
}

// FindAllIndex returns the index pairs of all successive non-overlapping
// matches in b. If n >= 0, it returns at most n matches.
//
// An empty match directly after the previous match is skipped, as in the
// standard library.
//
// Example:
//
//	re := regexlight.MustCompile(`\d+`)
//	indices := re.FindAllIndex([]byte("1 22 333"), -1)
//	// indices = [[0 1] [2 4] [5 8]]
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	if n == 0 {
		return nil
	}

	var indices [][]int
	pos, prevEnd := 0, -1
	for pos <= len(b) && (n < 0 || len(indices) < n) {
		start, end, ok := r.engine.FindIndicesAt(b, pos)
		if !ok {
			break
		}
		if end > start || start != prevEnd {
			indices = append(indices, []int{start, end})
			prevEnd = end
		}
		if end > start {
			pos = end
		} else {
			pos = start + 1
		}
	}
	return indices
}

// FindAllStringIndex is like FindAllIndex for a string.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	return r.FindAllIndex([]byte(s), n)
}

// FindAll returns the text of all successive non-overlapping matches in b.
// If n >= 0, it returns at most n matches.
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	indices := r.FindAllIndex(b, n)
	if indices == nil {
		return nil
	}
	out := make([][]byte, len(indices))
	for i, loc := range indices {
		out[i] = b[loc[0]:loc[1]:loc[1]]
	}
	return out
}

// FindAllString returns the text of all successive non-overlapping matches
// in s. If n >= 0, it returns at most n matches.
//
// Example:
//
//	re := regexlight.MustCompile(`\w+`)
//	words := re.FindAllString("hello world test", -1)
//	// words = ["hello" "world" "test"]
func (r *Regex) FindAllString(s string, n int) []string {
	indices := r.FindAllIndex([]byte(s), n)
	if indices == nil {
		return nil
	}
	out := make([]string, len(indices))
	for i, loc := range indices {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// Count returns the number of non-overlapping matches in b.
// If n >= 0, counts at most n matches.
func (r *Regex) Count(b []byte, n int) int {
	return len(r.FindAllIndex(b, n))
}

// ReplaceAllLiteral returns a copy of src, replacing matches of the pattern
// with the replacement bytes repl. The replacement is substituted directly.
//
// Example:
//
//	re := regexlight.MustCompile(`\d+`)
//	result := re.ReplaceAllLiteral([]byte("age: 42"), []byte("XX"))
//	// result = []byte("age: XX")
func (r *Regex) ReplaceAllLiteral(src, repl []byte) []byte {
	indices := r.FindAllIndex(src, -1)
	result := make([]byte, 0, len(src)+len(indices)*len(repl))
	lastEnd := 0
	for _, loc := range indices {
		result = append(result, src[lastEnd:loc[0]]...)
		result = append(result, repl...)
		lastEnd = loc[1]
	}
	return append(result, src[lastEnd:]...)
}

// ReplaceAllLiteralString returns a copy of src, replacing matches of the
// pattern with the replacement string repl.
func (r *Regex) ReplaceAllLiteralString(src, repl string) string {
	return string(r.ReplaceAllLiteral([]byte(src), []byte(repl)))
}

// Split slices s into substrings separated by the matches of the pattern.
//
//	n > 0: at most n substrings; the last substring will be the unsplit remainder.
//	n == 0: the result is nil (zero substrings)
//	n < 0: all substrings
//
// Example:
//
//	re := regexlight.MustCompile(`,`)
//	parts := re.Split("a,b,c", 2)
//	// parts = ["a" "b,c"]
func (r *Regex) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}

	if len(r.pattern) > 0 && len(s) == 0 {
		return []string{""}
	}

	indices := r.FindAllStringIndex(s, -1)
	result := make([]string, 0, len(indices)+1)
	beg, end := 0, 0
	for _, loc := range indices {
		if n > 0 && len(result) == n-1 {
			break
		}
		end = loc[0]
		if loc[1] != 0 {
			result = append(result, s[beg:end])
		}
		beg = loc[1]
	}
	if end != len(s) {
		result = append(result, s[beg:])
	}
	return result
}

func flatten(spans []backtrack.Span) []int {
	loc := make([]int, 2*len(spans))
	for i, sp := range spans {
		loc[2*i], loc[2*i+1] = sp.Start, sp.End
	}
	return loc
}
