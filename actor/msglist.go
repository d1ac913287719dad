package actor

import "github.com/gammazero/deque"

// msgList is the mailbox FIFO: O(1) push and in-place cursor removal over
// a deque of envelopes; splice moves nodes one at a time, so it is linear in
// the donor's length. Selective receive only needs front-advance plus
// deferral, both expressible on two deques, so it is backed by
// gammazero/deque rather than a hand-rolled intrusive list.
type msgList struct {
	d deque.Deque[*envelope]
}

func (l *msgList) empty() bool {
	return l.d.Len() == 0
}

func (l *msgList) len() int {
	return l.d.Len()
}

// popFront removes and returns the front node, or (nil, false) if empty.
func (l *msgList) popFront() (*envelope, bool) {
	if l.empty() {
		return nil, false
	}
	return l.d.PopFront(), true
}

// push appends v to the tail. O(1) amortized.
func (l *msgList) push(v *envelope) {
	l.d.PushBack(v)
}

// spliceFrom moves every node of other onto the tail of l, in order,
// leaving other empty.
func (l *msgList) spliceFrom(other *msgList) {
	for !other.empty() {
		l.d.PushBack(other.d.PopFront())
	}
}

// cursor walks l from the front, offering front-advance and O(1)
// remove-at-cursor. It is a single-pass, single-owner view: only one cursor
// may be active on a list at a time (the receive loop never nests cursors
// over the same list).
type cursor struct {
	list    *msgList
	skipped deque.Deque[*envelope] // nodes walked past and retained, in order
}

func (l *msgList) newCursor() *cursor {
	return &cursor{list: l}
}

// next returns the next unvisited node without removing it, or (nil, false)
// once the list is exhausted. Call advance() or removeHere() after
// inspecting it before calling next again.
func (c *cursor) next() (*envelope, bool) {
	if c.list.empty() {
		return nil, false
	}
	return c.list.d.Front(), true
}

// removeHere drops the node last returned by next from the list entirely
// (it is not retained in skipped).
func (c *cursor) removeHere() {
	c.list.d.PopFront()
}

// advance retains the node last returned by next — it moves from the list
// into the cursor's skipped set, preserving its original position relative
// to the other skipped nodes — and moves the cursor past it.
func (c *cursor) advance() {
	c.skipped.PushBack(c.list.d.PopFront())
}

// finish restores every retained (advanced, not removed) node to the front
// of the list, in original order, undoing the effect of advance calls. Call
// once the scan pass is complete, whether or not a message was consumed.
func (c *cursor) finish() {
	for c.skipped.Len() > 0 {
		c.list.d.PushFront(c.skipped.PopBack())
	}
}
