package curry

import "github.com/currygo/fn/tuple"

// Tupled2 converts a two-argument function into one that accepts both
// arguments as a single tuple value.
func Tupled2[A0, A1, R any](f func(A0, A1) R) func(tuple.T2[A0, A1]) R {
	return func(t tuple.T2[A0, A1]) R {
		return f(t.Values())
	}
}

// Tupled3 converts a three-argument function into one that accepts its
// arguments as a single tuple value.
func Tupled3[A0, A1, A2, R any](f func(A0, A1, A2) R) func(tuple.T3[A0, A1, A2]) R {
	return func(t tuple.T3[A0, A1, A2]) R {
		return f(t.Values())
	}
}

// Tupled4 converts a four-argument function into one that accepts its
// arguments as a single tuple value.
func Tupled4[A0, A1, A2, A3, R any](f func(A0, A1, A2, A3) R) func(tuple.T4[A0, A1, A2, A3]) R {
	return func(t tuple.T4[A0, A1, A2, A3]) R {
		return f(t.Values())
	}
}

// Untupled2 is the inverse of Tupled2.
func Untupled2[A0, A1, R any](f func(tuple.T2[A0, A1]) R) func(A0, A1) R {
	return func(a0 A0, a1 A1) R {
		return f(tuple.MkT2(a0, a1))
	}
}

// Untupled3 is the inverse of Tupled3.
func Untupled3[A0, A1, A2, R any](f func(tuple.T3[A0, A1, A2]) R) func(A0, A1, A2) R {
	return func(a0 A0, a1 A1, a2 A2) R {
		return f(tuple.MkT3(a0, a1, a2))
	}
}

// Untupled4 is the inverse of Tupled4.
func Untupled4[A0, A1, A2, A3, R any](f func(tuple.T4[A0, A1, A2, A3]) R) func(A0, A1, A2, A3) R {
	return func(a0 A0, a1 A1, a2 A2, a3 A3) R {
		return f(tuple.MkT4(a0, a1, a2, a3))
	}
}
