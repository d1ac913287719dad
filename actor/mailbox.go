package actor

import (
	"context"
	"sync"
)

// CapacityPolicyKind selects what Send does once a mailbox's shared queue
// is at its configured limit.
type CapacityPolicyKind uint8

const (
	// PolicyBlock makes Send wait until a consume frees room.
	PolicyBlock CapacityPolicyKind = iota
	// PolicyFail makes Send return a SendFullError immediately.
	PolicyFail
	// PolicyDrop makes Send silently discard the new message.
	PolicyDrop
	// PolicyCallback calls Callback(dest); true discards the message,
	// false falls through to PolicyBlock behavior.
	PolicyCallback
)

// CapacityPolicy configures the behavior of Send against a bounded mailbox.
type CapacityPolicy struct {
	Kind     CapacityPolicyKind
	Callback func(Handle) bool
}

type capacityConfig struct {
	limit  int
	policy CapacityPolicy
}

// mailbox is an actor's receive buffer: a producer-visible shared list
// guarded by mu/cond, and an open flag. The consumer-private local list
// lives on the owning actor's Ctx, not here — it belongs to the consuming
// actor alone and needs no locking.
type mailbox struct {
	mu    sync.Mutex
	cond  *sync.Cond // signaled on put and on close
	space *sync.Cond // signaled after a successful consume, for PolicyBlock waiters

	shared   msgList
	open     bool
	capacity *capacityConfig

	logger Logger
}

func newMailbox(logger Logger) *mailbox {
	if logger == nil {
		logger = defaultLogger
	}
	m := &mailbox{open: true, logger: logger}
	m.cond = sync.NewCond(&m.mu)
	m.space = sync.NewCond(&m.mu)
	return m
}

// put enqueues e onto the shared list, applying the capacity policy if one
// is configured. dest is used only to label a SendFullError or to call a
// PolicyCallback. Sends to a closed mailbox are silent no-ops.
func (m *mailbox) put(e *envelope, dest Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return nil
	}

	if m.capacity != nil {
		for m.shared.len() >= m.capacity.limit {
			switch m.capacity.policy.Kind {
			case PolicyFail:
				m.logger.Warn(context.Background(), "actor: send rejected, mailbox full", "dest", dest.String())
				return &SendFullError{Dest: dest}
			case PolicyDrop:
				m.logger.Warn(context.Background(), "actor: message dropped, mailbox full", "dest", dest.String())
				return nil
			case PolicyCallback:
				if m.capacity.policy.Callback(dest) {
					m.logger.Warn(context.Background(), "actor: message discarded by capacity callback", "dest", dest.String())
					return nil
				}
				m.space.Wait()
			default: // PolicyBlock
				m.space.Wait()
			}
			if !m.open {
				return nil
			}
		}
	}

	m.shared.push(e)
	m.cond.Signal()
	return nil
}

// putControl enqueues a control envelope directly, bypassing the capacity
// policy: supervision signals must never be dropped or blocked behind a
// full user-message queue. Still a silent no-op on a closed mailbox.
func (m *mailbox) putControl(e *envelope) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return
	}
	m.shared.push(e)
	m.cond.Signal()
}

// close marks the mailbox shut and returns whatever remained in the shared
// list at that instant, for teardown to merge with the actor's local list.
// Idempotent: closing an already-closed mailbox returns an empty list and
// does nothing else.
func (m *mailbox) close() *msgList {
	m.mu.Lock()
	defer m.mu.Unlock()

	batch := &msgList{}
	if !m.open {
		return batch
	}

	m.open = false
	batch.spliceFrom(&m.shared)
	m.cond.Broadcast()
	m.space.Broadcast()
	return batch
}

// setCapacity installs or replaces the capacity policy. Broadcasting on
// space lets any sender currently blocked under the old policy re-evaluate
// against the new one.
func (m *mailbox) setCapacity(limit int, policy CapacityPolicy) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.capacity = &capacityConfig{limit: limit, policy: policy}
	m.space.Broadcast()
}

// notifyConsumed wakes any PolicyBlock (or fallen-through PolicyCallback)
// senders after a successful consume.
func (m *mailbox) notifyConsumed() {
	m.mu.Lock()
	m.space.Broadcast()
	m.mu.Unlock()
}
