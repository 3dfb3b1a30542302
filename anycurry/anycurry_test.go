package anycurry

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func add3(a, b, c int) int {
	return a + b + c
}

// apply feeds each group of arguments to the chain in turn, asserting
// intermediate results back to Stage.
func apply(s Stage, groups ...[]any) any {
	v := any(s)
	for _, g := range groups {
		v = v.(Stage)(g...)
	}
	return v
}

var groupingTests = []struct {
	groups [][]any
}{
	{groups: [][]any{{1}, {2}, {3}}},
	{groups: [][]any{{1, 2}, {3}}},
	{groups: [][]any{{1}, {2, 3}}},
	{groups: [][]any{{1, 2, 3}}},
}

func TestGroupedSupply(t *testing.T) {
	for _, test := range groupingTests {
		t.Run("", func(t *testing.T) {
			got := apply(MustFunc(add3), test.groups...)
			if got != 6 {
				t.Fatalf("got %v want 6", got)
			}
		})
	}
}

func TestArityZero(t *testing.T) {
	answer := MustFunc(func() int { return 42 })
	qt.Assert(t, qt.Equals(answer(), any(42)))
	// Arguments to a nullary function are discarded.
	qt.Assert(t, qt.Equals(answer(1, 2), any(42)))
}

func TestVariadicReceivesExtras(t *testing.T) {
	sum := func(first int, rest ...int) int {
		for _, n := range rest {
			first += n
		}
		return first
	}
	// The variadic slot does not count towards arity, but everything
	// accumulated is forwarded when the function runs.
	qt.Assert(t, qt.Equals(MustFunc(sum)(1), any(1)))
	qt.Assert(t, qt.Equals(MustFunc(sum)(1, 2, 3, 999), any(1005)))
}

func TestExtrasDiscardedByPositionalCall(t *testing.T) {
	qt.Assert(t, qt.Equals(MustFunc(add3)(1, 2, 3, 999), any(6)))
}

func TestZeroArgumentCallIsNoOp(t *testing.T) {
	s := MustFunc(add3)(1).(Stage)
	same := s().(Stage)
	qt.Assert(t, qt.Equals(same(2, 3), any(6)))
}

func TestStageIndependence(t *testing.T) {
	partial := MustFunc(add3)(1).(Stage)
	qt.Assert(t, qt.Equals(partial(2, 3), any(6)))
	qt.Assert(t, qt.Equals(partial(10, 20), any(31)))
	qt.Assert(t, qt.Equals(partial(2, 3), any(6)))
}

func TestHighArity(t *testing.T) {
	sum9 := func(a, b, c, d, e, f, g, h, i int) int {
		return a + b + c + d + e + f + g + h + i
	}
	got := apply(MustFunc(sum9), []any{1, 2, 3}, []any{4, 5, 6}, []any{7, 8}, []any{9})
	qt.Assert(t, qt.Equals(got, any(45)))
}

func TestNotAFunction(t *testing.T) {
	_, err := Func(42)
	qt.Assert(t, qt.ErrorMatches(err, `anycurry: cannot curry value of type int: not a function`))

	var fn func(int) int
	_, err = Func(fn)
	qt.Assert(t, qt.ErrorMatches(err, `anycurry: cannot curry nil function`))

	qt.Assert(t, qt.PanicMatches(func() {
		MustFunc("not a function")
	}, `anycurry: cannot curry value of type string: not a function`))
}

func TestSourcePanicPropagates(t *testing.T) {
	boom := func(a, b int) int {
		panic("boom")
	}
	qt.Assert(t, qt.PanicMatches(func() {
		MustFunc(boom)(1).(Stage)(2)
	}, `boom`))
}

func TestMultipleResults(t *testing.T) {
	divmod := func(a, b int) (int, int) {
		return a / b, a % b
	}
	qt.Assert(t, qt.DeepEquals(MustFunc(divmod)(7, 2), any([]any{3, 1})))
}

func TestNoResults(t *testing.T) {
	var called bool
	note := func(string) {
		called = true
	}
	qt.Assert(t, qt.IsNil(MustFunc(note)("x")))
	qt.Assert(t, qt.IsTrue(called))
}

func TestNilArgument(t *testing.T) {
	isNil := func(p *int) bool {
		return p == nil
	}
	qt.Assert(t, qt.Equals(MustFunc(isNil)(nil), any(true)))
}
