package actor

// Ctx is an actor's private state: its own handle, its optional owner, and
// its link set. It is passed explicitly to every spawned body rather than
// kept in goroutine-local storage — Go has no such storage, and an explicit
// context is the idiomatic analogue (the same shape context.Context already
// uses throughout the ecosystem).
type Ctx struct {
	self  Handle
	owner Handle
	links map[Handle]bool

	hasOwner  bool
	ownerDead bool

	local  msgList
	logger Logger
}

// Self returns the current actor's own handle.
func (c *Ctx) Self() Handle {
	return c.self
}

// Links returns a snapshot of the current actor's link set. Mutating the
// returned slice has no effect on c.
func (c *Ctx) Links() []Handle {
	out := make([]Handle, 0, len(c.links))
	for h := range c.links {
		out = append(out, h)
	}
	return out
}

// Unlink removes h from the current actor's link set, if present. After
// this call c no longer synthesizes a LinkDead toward h on exit, and a
// LinkDead from h no longer raises LinkTerminated in c. h's own link set is
// not changed, so h still synthesizes a LinkDead toward c when it exits.
func (c *Ctx) Unlink(h Handle) {
	delete(c.links, h)
}
