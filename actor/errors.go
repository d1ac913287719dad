package actor

import "fmt"

// OwnerTerminatedError is raised from a blocking Receive once the consumer's
// owner has exited and no message currently satisfies any handler. The
// actor's owner is cleared before this is raised, so a later Receive will
// not raise it again for the same owner.
type OwnerTerminatedError struct {
	Who Handle
}

func (e *OwnerTerminatedError) Error() string {
	return fmt.Sprintf("actor: owner %s terminated", e.Who)
}

// LinkTerminatedError is raised synchronously from the Receive call that
// observes a LinkDead control message from a true (bidirectional) link
// The peer is removed from the actor's link set before this is
// raised.
type LinkTerminatedError struct {
	Who Handle
}

func (e *LinkTerminatedError) Error() string {
	return fmt.Sprintf("actor: linked peer %s terminated", e.Who)
}

// MessageMismatchError is raised by ReceiveOnly when the next message in the
// mailbox does not carry the expected tuple shape.
type MessageMismatchError struct{}

func (e *MessageMismatchError) Error() string {
	return "actor: message did not match expected shape"
}

// SendFullError is raised by Send when dest's mailbox has a Fail capacity
// policy and is at or over its configured limit.
type SendFullError struct {
	Dest Handle
}

func (e *SendFullError) Error() string {
	return fmt.Sprintf("actor: mailbox %s is full", e.Dest)
}
