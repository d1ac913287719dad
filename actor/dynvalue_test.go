package actor

import (
	"reflect"
	"testing"
)

type pairXY struct{ X, Y int }

func TestDynValueConvertsToExactShapeOnly(t *testing.T) {
	d := newDynValue(42, 86)

	intInt := []reflect.Type{typeOf[int](), typeOf[int]()}
	int64Int := []reflect.Type{typeOf[int64](), typeOf[int]()}

	if !d.convertsTo(intInt) {
		t.Fatalf("want (int,int) to match its own shape")
	}
	if d.convertsTo(int64Int) {
		t.Fatalf("(int,int) must not match (int64,int) — no numeric widening across tuple shapes")
	}
}

func TestDynValueSingleTupleStruct(t *testing.T) {
	d := newDynValue(pairXY{X: 42, Y: 86})
	if d.Arity() != 1 {
		t.Fatalf("want arity 1, got %d", d.Arity())
	}
	got := Get[pairXY](d, 0)
	if got.X != 42 || got.Y != 86 {
		t.Fatalf("want {42 86}, got %+v", got)
	}
}

func TestWildcardHandlerMatchesAnyShape(t *testing.T) {
	d := newDynValue("hello", "there")
	var seen DynValue
	hs := []Handler{OnAny(func(v DynValue) { seen = v })}
	if !tryMatch(d, hs) {
		t.Fatalf("wildcard handler should consume any message")
	}
	if seen.Arity() != 2 {
		t.Fatalf("wildcard should receive the original DynValue, arity 2, got %d", seen.Arity())
	}
}
