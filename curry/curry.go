package curry

// Curry0 is the arity-0 boundary of the CurryN family: a function of no
// arguments is its own curried form, and calling it invokes f
// immediately.
func Curry0[R any](f func() R) func() R {
	return f
}

// Curry1 is the arity-1 boundary of the CurryN family: a one-argument
// function is already a unary stage.
func Curry1[A0, R any](f func(A0) R) func(A0) R {
	return f
}

// Curry2 converts a two-argument function into a chain of two unary
// stages.
func Curry2[A0, A1, R any](f func(A0, A1) R) func(A0) func(A1) R {
	return func(a0 A0) func(A1) R {
		return func(a1 A1) R {
			return f(a0, a1)
		}
	}
}

// Curry3 converts a three-argument function into a chain of three unary
// stages.
func Curry3[A0, A1, A2, R any](f func(A0, A1, A2) R) func(A0) func(A1) func(A2) R {
	return func(a0 A0) func(A1) func(A2) R {
		return Curry2(func(a1 A1, a2 A2) R {
			return f(a0, a1, a2)
		})
	}
}

// Uncurry0 is the inverse of Curry0.
func Uncurry0[R any](f func() R) func() R {
	return f
}

// Uncurry1 is the inverse of Curry1.
func Uncurry1[A0, R any](f func(A0) R) func(A0) R {
	return f
}

// Uncurry2 converts a chain of two unary stages back into a
// two-argument function.
func Uncurry2[A0, A1, R any](f func(A0) func(A1) R) func(A0, A1) R {
	return func(a0 A0, a1 A1) R {
		return f(a0)(a1)
	}
}

// Uncurry3 converts a chain of three unary stages back into a
// three-argument function.
func Uncurry3[A0, A1, A2, R any](f func(A0) func(A1) func(A2) R) func(A0, A1, A2) R {
	return func(a0 A0, a1 A1, a2 A2) R {
		return f(a0)(a1)(a2)
	}
}

// CurryE1 is the arity-1 boundary of the CurryE family, for functions
// returning (R, error).
func CurryE1[A0, R any](f func(A0) (R, error)) func(A0) (R, error) {
	return f
}

// CurryE2 is like Curry2 for functions returning (R, error). The error
// surfaces only when the final stage runs f; the transformation itself
// cannot fail.
func CurryE2[A0, A1, R any](f func(A0, A1) (R, error)) func(A0) func(A1) (R, error) {
	return func(a0 A0) func(A1) (R, error) {
		return func(a1 A1) (R, error) {
			return f(a0, a1)
		}
	}
}

// CurryE3 is like Curry3 for functions returning (R, error).
func CurryE3[A0, A1, A2, R any](f func(A0, A1, A2) (R, error)) func(A0) func(A1) func(A2) (R, error) {
	return func(a0 A0) func(A1) func(A2) (R, error) {
		return CurryE2(func(a1 A1, a2 A2) (R, error) {
			return f(a0, a1, a2)
		})
	}
}

// UncurryE1 is the inverse of CurryE1.
func UncurryE1[A0, R any](f func(A0) (R, error)) func(A0) (R, error) {
	return f
}

// UncurryE2 is the inverse of CurryE2.
func UncurryE2[A0, A1, R any](f func(A0) func(A1) (R, error)) func(A0, A1) (R, error) {
	return func(a0 A0, a1 A1) (R, error) {
		return f(a0)(a1)
	}
}

// UncurryE3 is the inverse of CurryE3.
func UncurryE3[A0, A1, A2, R any](f func(A0) func(A1) func(A2) (R, error)) func(A0, A1, A2) (R, error) {
	return func(a0 A0, a1 A1, a2 A2) (R, error) {
		return f(a0)(a1)(a2)
	}
}
