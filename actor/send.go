package actor

// Send wraps vals as a tuple and enqueues it on dest's mailbox.
// Sending to the zero Handle or to a closed mailbox is a silent no-op. A
// single value is still wrapped as a 1-tuple, so Receive(On1[T](...))
// matches Send(h, t).
func Send(dest Handle, vals ...any) error {
	if dest.zero() {
		return nil
	}
	return dest.mbox.put(userEnvelope(vals...), dest)
}

// Broadcast sends the same tuple to every handle in dests, stopping at the
// first error (e.g. a SendFullError from a PolicyFail mailbox).
func Broadcast(dests []Handle, vals ...any) error {
	for _, d := range dests {
		if err := Send(d, vals...); err != nil {
			return err
		}
	}
	return nil
}

// SetCapacity installs limit/policy on h's mailbox. Safe to call
// concurrently with sends to h; any sender currently blocked under a prior
// policy is woken to re-evaluate against the new one.
func SetCapacity(h Handle, limit int, policy CapacityPolicy) {
	if h.zero() {
		return
	}
	h.mbox.setCapacity(limit, policy)
}
