package regexlight_test

import (
	"errors"
	"fmt"

	"github.com/coregx/regexlight"
	"github.com/coregx/regexlight/prog"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := regexlight.Compile(`\d+`)
	if err != nil {
		panic(err)
	}

	fmt.Println(re.Match([]byte("hello 123")))
	// Output: true
}

// ExampleMustCompile demonstrates panic-on-error compilation.
func ExampleMustCompile() {
	re := regexlight.MustCompile(`hello`)
	fmt.Println(re.MatchString("hello world"))
	// Output: true
}

// ExampleRegex_Find demonstrates finding the first match.
func ExampleRegex_Find() {
	re := regexlight.MustCompile(`\d+`)
	match := re.Find([]byte("age: 42 years"))
	fmt.Println(string(match))
	// Output: 42
}

// ExampleRegex_FindIndex demonstrates finding match positions.
func ExampleRegex_FindIndex() {
	re := regexlight.MustCompile(`\d+`)
	loc := re.FindIndex([]byte("age: 42"))
	fmt.Printf("Match at [%d:%d]\n", loc[0], loc[1])
	// Output: Match at [5:7]
}

// ExampleRegex_FindStringSubmatch shows that a repeated group reports its
// last repetition.
func ExampleRegex_FindStringSubmatch() {
	re := regexlight.MustCompile(`(ab)+c`)
	fmt.Println(re.FindStringSubmatch("abababc"))
	fmt.Println(re.FindStringSubmatchIndex("abababc"))
	// Output:
	// [abababc ab]
	// [0 7 4 6]
}

// ExampleRegex_FindAllString demonstrates finding all string matches.
func ExampleRegex_FindAllString() {
	re := regexlight.MustCompile(`\w+`)
	words := re.FindAllString("hello world test", -1)
	fmt.Println(words)
	// Output: [hello world test]
}

// ExampleRegex_ReplaceAllLiteralString replaces every match.
func ExampleRegex_ReplaceAllLiteralString() {
	re := regexlight.MustCompile(`[0-9]+`)
	fmt.Println(re.ReplaceAllLiteralString("call 555 1234", "N"))
	// Output: call N N
}

// ExampleCompileWithConfig draws pattern memory from a bucketed allocator.
func ExampleCompileWithConfig() {
	alloc := prog.NewCountingAllocator(prog.NewBucketAllocator(64, 4096))
	config := regexlight.DefaultConfig()
	config.Allocator = alloc

	re, err := regexlight.CompileWithConfig(`a(b*)c`, config)
	if err != nil {
		panic(err)
	}
	fmt.Println(re.FindStringSubmatch("xabbc"))

	re.Free()
	fmt.Println(alloc.LiveBytes())
	// Output:
	// [abbc bb]
	// 0
}

// ExampleRegcomp uses the compile/execute/free calls.
func ExampleRegcomp() {
	re, err := regexlight.Regcomp(`a(b*)c`, regexlight.RegExtended)
	if err != nil {
		panic(err)
	}
	defer re.Regfree()

	m, err := re.Regexec("xabbc", 3, 0)
	fmt.Println(m, err)

	_, err = re.Regexec("xyz", 3, 0)
	fmt.Println(errors.Is(err, regexlight.ErrNoMatch))
	// Output:
	// [{1 5} {2 4} {-1 -1}] <nil>
	// true
}
