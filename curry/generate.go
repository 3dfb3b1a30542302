//go:build ignore

// This program generates curry_gen.go, the Curry/Uncurry/CurryE/UncurryE
// families for arities 4 to 8. Arities 0 to 3 are written by hand in
// curry.go, which also serves as the model for the generated code.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const maxArity = 8

var numbers = map[int]string{
	4: "four",
	5: "five",
	6: "six",
	7: "seven",
	8: "eight",
}

func main() {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by generate.go; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package curry\n")
	for n := 4; n <= maxArity; n++ {
		genCurry(&buf, n)
	}
	for n := 4; n <= maxArity; n++ {
		genUncurry(&buf, n)
	}
	for n := 4; n <= maxArity; n++ {
		genCurryE(&buf, n)
	}
	for n := 4; n <= maxArity; n++ {
		genUncurryE(&buf, n)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated source: %v", err)
	}
	if err := os.WriteFile("curry_gen.go", src, 0o666); err != nil {
		log.Fatal(err)
	}
}

func genCurry(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, `
// Curry%d converts a function of %s arguments into a chain of %s
// unary stages.
func Curry%d[%s, R any](f func(%s) R) %s {
	return func(a0 A0) %s {
		return Curry%d(func(%s) R {
			return f(%s)
		})
	}
}
`,
		n, numbers[n], numbers[n],
		n, typeParams(n), argTypes(0, n), chain(0, n, "R"),
		chain(1, n, "R"),
		n-1, params(1, n),
		args(0, n),
	)
}

func genUncurry(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, `
// Uncurry%d converts a chain of %s unary stages back into a
// function of %s arguments.
func Uncurry%d[%s, R any](f %s) func(%s) R {
	return func(%s) R {
		return %s
	}
}
`,
		n, numbers[n], numbers[n],
		n, typeParams(n), chain(0, n, "R"), argTypes(0, n),
		params(0, n),
		applyChain(n),
	)
}

func genCurryE(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, `
// CurryE%d is like Curry%d for functions returning (R, error).
func CurryE%d[%s, R any](f func(%s) (R, error)) %s {
	return func(a0 A0) %s {
		return CurryE%d(func(%s) (R, error) {
			return f(%s)
		})
	}
}
`,
		n, n,
		n, typeParams(n), argTypes(0, n), chain(0, n, "(R, error)"),
		chain(1, n, "(R, error)"),
		n-1, params(1, n),
		args(0, n),
	)
}

func genUncurryE(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, `
// UncurryE%d is the inverse of CurryE%d.
func UncurryE%d[%s, R any](f %s) func(%s) (R, error) {
	return func(%s) (R, error) {
		return %s
	}
}
`,
		n, n,
		n, typeParams(n), chain(0, n, "(R, error)"), argTypes(0, n),
		params(0, n),
		applyChain(n),
	)
}

// typeParams returns "A0, A1, ..., A(n-1)".
func typeParams(n int) string {
	return argTypes(0, n)
}

// argTypes returns "Ai, ..., A(n-1)".
func argTypes(i, n int) string {
	var parts []string
	for ; i < n; i++ {
		parts = append(parts, fmt.Sprintf("A%d", i))
	}
	return strings.Join(parts, ", ")
}

// chain returns "func(Ai) func(A(i+1)) ... func(A(n-1)) ret".
func chain(i, n int, ret string) string {
	var b strings.Builder
	for ; i < n; i++ {
		fmt.Fprintf(&b, "func(A%d) ", i)
	}
	b.WriteString(ret)
	return b.String()
}

// params returns "ai Ai, ..., a(n-1) A(n-1)".
func params(i, n int) string {
	var parts []string
	for ; i < n; i++ {
		parts = append(parts, fmt.Sprintf("a%d A%d", i, i))
	}
	return strings.Join(parts, ", ")
}

// args returns "ai, ..., a(n-1)".
func args(i, n int) string {
	var parts []string
	for ; i < n; i++ {
		parts = append(parts, fmt.Sprintf("a%d", i))
	}
	return strings.Join(parts, ", ")
}

// applyChain returns "f(a0)(a1)...(a(n-1))".
func applyChain(n int) string {
	var b strings.Builder
	b.WriteString("f")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "(a%d)", i)
	}
	return b.String()
}
