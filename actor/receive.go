package actor

import (
	"errors"
	"time"
)

// errTimedOut is an internal sentinel: receiveInternal returns it when a
// deadline elapsed with nothing consumed. ReceiveTimeout translates it to
// (false, nil); it never escapes this package.
var errTimedOut = errors.New("actor: receive deadline elapsed")

// controlResult is what onControl reports about a control envelope: whether
// the receive loop should remove it from its list or keep it.
type controlResult uint8

const (
	ctrlConsumed controlResult = iota
	ctrlKeep
)

// onControl implements the control-message handling table for the one
// control kind this package defines, LinkDead.
func (c *Ctx) onControl(e *envelope) (controlResult, error) {
	switch e.ctrl {
	case ctrlLinkDead:
		who := e.who
		if c.hasOwner && who.Equal(c.owner) {
			c.ownerDead = true
			return ctrlKeep, nil
		}
		if bidirectional, ok := c.links[who]; ok {
			delete(c.links, who)
			if bidirectional {
				return ctrlConsumed, &LinkTerminatedError{Who: who}
			}
			return ctrlKeep, nil
		}
		return ctrlConsumed, nil
	default:
		return ctrlConsumed, nil
	}
}

// scanOnce walks list front to back, dispatching
// control envelopes to onControl and user envelopes to tryMatch. It returns
// as soon as a user message is consumed, or once the whole list has been
// walked with nothing to consume. Either way list is left holding every
// envelope that was not removed, in original relative order.
func scanOnce(c *Ctx, list *msgList, hs []Handler) (consumed bool, err error) {
	cur := list.newCursor()
	for {
		e, ok := cur.next()
		if !ok {
			break
		}

		if e.kind == kindControl {
			res, cerr := c.onControl(e)
			if cerr != nil {
				cur.removeHere()
				cur.finish()
				return false, cerr
			}
			if res == ctrlConsumed {
				cur.removeHere()
			} else {
				cur.advance()
			}
			continue
		}

		if tryMatch(e.payload, hs) {
			cur.removeHere()
			cur.finish()
			return true, nil
		}
		cur.advance()
	}
	cur.finish()
	return false, nil
}

// receiveInternal is the full receive loop, shared by Receive and
// ReceiveTimeout (deadline nil means block indefinitely) and by
// ReceiveOnly.
func (c *Ctx) receiveInternal(deadline *time.Time, hs []Handler) error {
	if consumed, err := scanOnce(c, &c.local, hs); err != nil {
		return err
	} else if consumed {
		c.self.mbox.notifyConsumed()
		return nil
	}

	m := c.self.mbox
	for {
		m.mu.Lock()
		for m.shared.empty() {
			if c.ownerDead {
				who := c.owner
				c.hasOwner = false
				c.ownerDead = false
				m.mu.Unlock()
				return &OwnerTerminatedError{Who: who}
			}
			if deadline != nil && !time.Now().Before(*deadline) {
				m.mu.Unlock()
				return errTimedOut
			}
			m.waitSharedLocked(deadline)
		}
		batch := &msgList{}
		batch.spliceFrom(&m.shared)
		m.mu.Unlock()

		consumed, err := scanOnce(c, batch, hs)
		c.local.spliceFrom(batch)
		if err != nil {
			return err
		}
		if consumed {
			m.notifyConsumed()
			return nil
		}
	}
}

// waitSharedLocked blocks on m.cond until signaled, or until deadline
// elapses if one is set. Must be called with m.mu held; returns with it
// held again. Go's sync.Cond has no wait-with-timeout, so a deadline is
// implemented with a one-shot timer that broadcasts m.cond when it fires.
func (m *mailbox) waitSharedLocked(deadline *time.Time) {
	if deadline == nil {
		m.cond.Wait()
		return
	}
	remaining := time.Until(*deadline)
	if remaining <= 0 {
		return
	}
	timer := time.AfterFunc(remaining, func() {
		m.mu.Lock()
		m.cond.Broadcast()
		m.mu.Unlock()
	})
	m.cond.Wait()
	timer.Stop()
}

// Receive blocks until a message matching one of hs is found, dispatches it,
// and returns. It may also return OwnerTerminatedError or
// LinkTerminatedError surfaced by the supervision runtime.
func (c *Ctx) Receive(hs ...Handler) error {
	return c.receiveInternal(nil, hs)
}

// ReceiveTimeout behaves like Receive but gives up after d with no match,
// returning (false, nil). A match returns (true, nil); a supervision error
// returns (false, err) exactly as Receive would raise it.
func (c *Ctx) ReceiveTimeout(d time.Duration, hs ...Handler) (bool, error) {
	deadline := time.Now().Add(d)
	err := c.receiveInternal(&deadline, hs)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errTimedOut):
		return false, nil
	default:
		return false, err
	}
}

// ReceiveOnly blocks for exactly one message of tuple shape T, returning it.
// If the next message has any other shape, the wildcard fallback consumes
// it (it is removed from the mailbox) and MessageMismatchError is returned.
func ReceiveOnly[T any](c *Ctx) (T, error) {
	var out T
	var mismatch bool
	hs := []Handler{
		On1[T](func(v T) { out = v }),
		OnAny(func(DynValue) { mismatch = true }),
	}
	err := c.receiveInternal(nil, hs)
	if err != nil {
		return out, err
	}
	if mismatch {
		return out, &MessageMismatchError{}
	}
	return out, nil
}
