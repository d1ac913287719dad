package actor

import "reflect"

// DynValue is a type-erased carrier for a heterogeneous tuple of values
// Its type identity is the ordered list of reflect.Types of the
// values it was built from; no numeric widening or subtyping is performed
// when matching against a handler's declared parameter shape.
type DynValue struct {
	types []reflect.Type
	vals  []any
}

// newDynValue wraps vals as a tuple-shaped DynValue, recording each
// element's concrete runtime type as its identity.
func newDynValue(vals ...any) DynValue {
	d := DynValue{
		types: make([]reflect.Type, len(vals)),
		vals:  make([]any, len(vals)),
	}
	for i, v := range vals {
		d.types[i] = reflect.TypeOf(v)
		d.vals[i] = v
	}
	return d
}

// Arity returns the number of elements in the tuple.
func (d DynValue) Arity() int {
	return len(d.vals)
}

// convertsTo reports whether d's element types exactly match shape, in
// order. An empty shape matches only an empty tuple (a Send with no values).
func (d DynValue) convertsTo(shape []reflect.Type) bool {
	if len(shape) != len(d.types) {
		return false
	}
	for i, t := range shape {
		if d.types[i] != t {
			return false
		}
	}
	return true
}

// at returns the i'th tuple element. Precondition: convertsTo already
// confirmed the shape this element belongs to.
func (d DynValue) at(i int) any {
	return d.vals[i]
}

// Get extracts the i'th element as T. It panics if the stored type at i does
// not match T exactly — callers that went through a matched Handler never
// hit this, since the handler's shape was already verified by convertsTo.
func Get[T any](d DynValue, i int) T {
	return d.vals[i].(T)
}
