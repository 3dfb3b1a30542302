// Package curry converts functions that accept multiple arguments into
// chains of functions that each accept a single argument, and back again.
//
// CurryN converts a function of N arguments into a chain of N unary
// stages. Each stage closes over the arguments supplied so far; applying
// the last stage calls the original function:
//
//	add := func(a, b, c int) int { return a + b + c }
//	curry.Curry3(add)(1)(2)(3) // 6
//
// UncurryN is the exact inverse. Because a curried chain's result type
// can itself be a chain, UncurryK applied to a prefix or suffix of a
// longer chain yields a stage that accepts K arguments at once, so any
// grouping of argument supply is expressible:
//
//	c := curry.Curry3(add)
//	curry.Uncurry2(c)(1, 2)(3)    // first two together, then the third
//	curry.Uncurry2(c(1))(2, 3)    // the first, then the last two together
//
// The names in this package follow the scheme of the arity families
// elsewhere in this module:
//
//	Curry[0-8], Uncurry[0-8]      plain result
//	CurryE[1-8], UncurryE[1-8]    (R, error) result
//	Tupled[2-4], Untupled[2-4]    arguments grouped in a tuple.Tn value
//
// Arities 0 through 3 are written by hand; the rest are generated (see
// generate.go). Above arity 8 there is no typed entry point: use the
// anycurry package, which trades static types for unbounded arity.
//
// Every stage is an independent closure over immutable captured values.
// Applying one intermediate stage twice with different arguments yields
// two independent chains; nothing is shared or cached between them, so
// the package is safe for concurrent use wherever the wrapped function
// is.
package curry

//go:generate go run generate.go
