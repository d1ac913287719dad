package actor

import "github.com/google/uuid"

// Handle is an opaque identifier bound to exactly one mailbox. Handles are
// cheap to copy and compare: two Handles are equal iff they refer to the
// same mailbox, regardless of how each was obtained.
type Handle struct {
	mbox *mailbox
	id   uuid.UUID
}

// zero reports whether h is the zero Handle, i.e. does not refer to any
// mailbox. Used internally to represent "no owner".
func (h Handle) zero() bool {
	return h.mbox == nil
}

// Equal reports whether h and o refer to the same mailbox.
func (h Handle) Equal(o Handle) bool {
	return h.mbox == o.mbox
}

// ID returns the debug UUID assigned to h's mailbox at creation time. It has
// no bearing on equality or routing; it exists for logs and the actorctl CLI.
func (h Handle) ID() uuid.UUID {
	return h.id
}

// String renders h's debug UUID, or "<nil>" for the zero Handle.
func (h Handle) String() string {
	if h.zero() {
		return "<nil>"
	}
	return h.id.String()
}

func newHandle(m *mailbox) Handle {
	return Handle{mbox: m, id: uuid.New()}
}
