// Package tuple provides generic struct types that hold a fixed
// number of values.
//
// Tuples let a group of positional arguments travel as a single
// value. See the curry package for converting between functions
// that accept multiple arguments and functions that accept one
// tuple argument.
package tuple

// T2 holds two values.
type T2[A, B any] struct {
	V0 A
	V1 B
}

// MkT2 returns a T2 holding the given values.
func MkT2[A, B any](v0 A, v1 B) T2[A, B] {
	return T2[A, B]{v0, v1}
}

// Values returns the held values in order.
func (t T2[A, B]) Values() (A, B) {
	return t.V0, t.V1
}

// T3 holds three values.
type T3[A, B, C any] struct {
	V0 A
	V1 B
	V2 C
}

// MkT3 returns a T3 holding the given values.
func MkT3[A, B, C any](v0 A, v1 B, v2 C) T3[A, B, C] {
	return T3[A, B, C]{v0, v1, v2}
}

// Values returns the held values in order.
func (t T3[A, B, C]) Values() (A, B, C) {
	return t.V0, t.V1, t.V2
}

// T4 holds four values.
type T4[A, B, C, D any] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// MkT4 returns a T4 holding the given values.
func MkT4[A, B, C, D any](v0 A, v1 B, v2 C, v3 D) T4[A, B, C, D] {
	return T4[A, B, C, D]{v0, v1, v2, v3}
}

// Values returns the held values in order.
func (t T4[A, B, C, D]) Values() (A, B, C, D) {
	return t.V0, t.V1, t.V2, t.V3
}
