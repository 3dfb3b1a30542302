// Package anycurry implements currying for functions whose signature
// is not known at compile time, or whose arity exceeds the typed
// family in the curry package.
//
// Func inspects a function's declared parameter count once, at
// transformation time, and returns the root [Stage] of a curried
// chain. A stage may be called with any number of arguments at a time;
// once enough have accumulated the wrapped function runs:
//
//	add := func(a, b, c int) int { return a + b + c }
//	f := anycurry.MustFunc(add)
//	f(1, 2, 3)                                    // 6
//	f(1).(anycurry.Stage)(2).(anycurry.Stage)(3)  // 6
//	f(1, 2).(anycurry.Stage)(3)                   // 6
//
// The price of the unbounded arity is the any-typed surface: argument
// and result types are checked only when the wrapped function finally
// runs, and intermediate results must be asserted back to [Stage]. For
// functions of up to eight arguments prefer the curry package, which
// keeps every stage fully typed.
package anycurry

import (
	"fmt"
	"reflect"
)

// A Stage is one link in a curried chain. Calling a stage appends the
// supplied arguments to the arguments accumulated along its own call
// path and then either:
//
//   - runs the wrapped function, if the accumulated count has reached
//     its arity, returning the function's result: nil for a function
//     with no results, the single value for one result, and a []any
//     for several;
//   - or returns a new independent Stage holding the combined
//     arguments.
//
// When the function runs, a variadic function receives the entire
// accumulated sequence, extra trailing arguments included; a
// non-variadic function receives exactly its declared parameters and
// any excess is discarded, as in an ordinary positional call.
//
// Calling a stage with no arguments before its arity is reached is a
// no-op returning the same stage.
//
// Two stages never share accumulated state: calling one intermediate
// stage twice with different arguments produces two chains that cannot
// contaminate each other.
type Stage func(args ...any) any

// Func returns the root Stage of a curried chain over fn, which must
// be a non-nil function. The arity is fn's declared parameter count; a
// variadic slot does not count towards it, so the curried form of
// func(a int, rest ...int) has arity one.
//
// Func itself never calls fn. Anything fn does when it finally runs,
// including panicking, surfaces unwrapped at the final stage call.
func Func(fn any) (Stage, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("anycurry: cannot curry value of type %T: not a function", fn)
	}
	if fv.IsNil() {
		return nil, fmt.Errorf("anycurry: cannot curry nil function")
	}
	arity := fv.Type().NumIn()
	if fv.Type().IsVariadic() {
		arity--
	}
	return stage(fv, arity, nil), nil
}

// MustFunc is like Func but panics if fn cannot be curried. It is
// intended for function literals and other values known to be valid.
func MustFunc(fn any) Stage {
	s, err := Func(fn)
	if err != nil {
		panic(err)
	}
	return s
}

func stage(fv reflect.Value, arity int, acc []any) Stage {
	var s Stage
	s = func(args ...any) any {
		// Build a fresh sequence: appending to acc in place could
		// share a backing array between sibling stages.
		merged := make([]any, 0, len(acc)+len(args))
		merged = append(merged, acc...)
		merged = append(merged, args...)
		if len(merged) >= arity {
			return call(fv, merged)
		}
		if len(args) == 0 {
			return s
		}
		return stage(fv, arity, merged)
	}
	return s
}

// call invokes fv with the accumulated arguments and unwraps the
// results.
func call(fv reflect.Value, args []any) any {
	ft := fv.Type()
	if n := ft.NumIn(); !ft.IsVariadic() && len(args) > n {
		args = args[:n]
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(argType(ft, i))
		} else {
			in[i] = reflect.ValueOf(a)
		}
	}
	out := fv.Call(in)
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		rs := make([]any, len(out))
		for i, v := range out {
			rs[i] = v.Interface()
		}
		return rs
	}
}

// argType returns the type of the i'th positional parameter,
// accounting for the variadic slot.
func argType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}
