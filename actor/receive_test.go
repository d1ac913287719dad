package actor

import (
	"testing"
	"time"
)

func newTestCtx() *Ctx {
	return &Ctx{
		self:   newHandle(newMailbox(nil)),
		links:  make(map[Handle]bool),
		logger: defaultLogger,
	}
}

// FIFO delivery from a single producer.
func TestFIFOFromSingleProducer(t *testing.T) {
	c := newTestCtx()
	_ = Send(c.self, "a")
	_ = Send(c.self, "b")

	var order []string
	_ = c.Receive(On1[string](func(s string) { order = append(order, s) }))
	_ = c.Receive(On1[string](func(s string) { order = append(order, s) }))

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("want [a b], got %v", order)
	}
}

// Selective receive defers unmatched messages and preserves their order
// for later receives.
func TestSelectiveReceivePreservesUnmatched(t *testing.T) {
	c := newTestCtx()
	_ = Send(c.self, "tag1", 1)
	_ = Send(c.self, "tag2", 2)
	_ = Send(c.self, "tag1", 3)

	var got2 int
	var gotTag string
	if err := c.Receive(On2If[string, int](func(tag string, n int) bool {
		if tag != "tag2" {
			return false // defer it for a later receive
		}
		gotTag, got2 = tag, n
		return true
	})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTag != "tag2" {
		t.Fatalf("want tag2 first, got %s", gotTag)
	}
	if got2 != 2 {
		t.Fatalf("want 2, got %d", got2)
	}

	var firsts []int
	h := On2[string, int](func(tag string, n int) {
		if tag != "tag1" {
			t.Fatalf("want tag1, got %s", tag)
		}
		firsts = append(firsts, n)
	})
	_ = c.Receive(h)
	_ = c.Receive(h)

	if len(firsts) != 2 || firsts[0] != 1 || firsts[1] != 3 {
		t.Fatalf("want [1 3], got %v", firsts)
	}
}

// The wildcard handler matches anything.
func TestWildcardConsumesFirstMessageRegardlessOfType(t *testing.T) {
	c := newTestCtx()
	_ = Send(c.self, 12345)

	var got DynValue
	err := c.Receive(OnAny(func(d DynValue) { got = d }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Get[int](got, 0) != 12345 {
		t.Fatalf("want 12345, got %v", got)
	}
}

// Tuple shape discrimination: an (int64,int) handler must not match an
// (int,int) message.
func TestTupleShapeDiscrimination(t *testing.T) {
	c := newTestCtx()
	_ = Send(c.self, 42, 86)

	matchedWrong := false
	matchedRight := false
	err := c.Receive(
		On2[int64, int](func(int64, int) { matchedWrong = true }),
		On2[int, int](func(a, b int) {
			matchedRight = a == 42 && b == 86
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matchedWrong {
		t.Fatalf("(int64,int) handler must not match an (int,int) message")
	}
	if !matchedRight {
		t.Fatalf("(int,int) handler should have matched and extracted 42,86")
	}
}

func TestTupleSentAsSingleStructMatchesSingleParamHandler(t *testing.T) {
	c := newTestCtx()
	_ = Send(c.self, pairXY{X: 42, Y: 86})

	var got pairXY
	err := c.Receive(On1[pairXY](func(p pairXY) { got = p }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.X != 42 || got.Y != 86 {
		t.Fatalf("want {42 86}, got %+v", got)
	}
}

// A timed receive with no match returns false within budget and leaves
// the mailbox untouched.
func TestReceiveTimeoutNoMatch(t *testing.T) {
	c := newTestCtx()
	_ = Send(c.self, "unrelated")

	start := time.Now()
	consumed, err := c.ReceiveTimeout(30*time.Millisecond, On1[int](func(int) {}))
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if consumed {
		t.Fatalf("want no match")
	}
	if elapsed < 30*time.Millisecond {
		t.Fatalf("returned before the deadline: %v", elapsed)
	}

	// mailbox untouched: the pending string is still there for a
	// differently-shaped receive.
	var got string
	_ = c.Receive(On1[string](func(s string) { got = s }))
	if got != "unrelated" {
		t.Fatalf("want message still present, got %q", got)
	}
}

func TestReceiveTimeoutConsumesWhenMatched(t *testing.T) {
	c := newTestCtx()
	_ = Send(c.self, 7)

	consumed, err := c.ReceiveTimeout(50*time.Millisecond, On1[int](func(n int) {
		if n != 7 {
			t.Fatalf("want 7, got %d", n)
		}
	}))
	if err != nil || !consumed {
		t.Fatalf("want consumed=true err=nil, got %v %v", consumed, err)
	}
}

func TestReceiveOnlyMismatch(t *testing.T) {
	c := newTestCtx()
	_ = Send(c.self, "not an int")

	_, err := ReceiveOnly[int](c)
	if _, ok := err.(*MessageMismatchError); !ok {
		t.Fatalf("want MessageMismatchError, got %v", err)
	}
}

func TestReceiveOnlyFloodInOrder(t *testing.T) {
	c := newTestCtx()
	const n = 2000
	for i := 0; i < n; i++ {
		_ = Send(c.self, i)
	}
	for i := 0; i < n; i++ {
		v, err := ReceiveOnly[int](c)
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
		if v != i {
			t.Fatalf("want %d, got %d", i, v)
		}
	}
}
