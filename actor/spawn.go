package actor

import "context"

// bodyWorker adapts an actor body to the engine's Worker interface. It runs
// the whole body to completion in a single DoWork call, then runs teardown,
// then reports WorkerEnd so New's driving goroutine exits.
type bodyWorker struct {
	ctx  *Ctx
	body func(*Ctx)
}

func (w bodyWorker) DoWork(Context) WorkerStatus {
	defer teardown(w.ctx)
	runBody(w.ctx, w.body)
	return WorkerEnd
}

// runBody recovers a panicking body and treats it the same as a body that
// returned normally: teardown still runs and still synthesizes LinkDead to
// owner and links. Grounded on FergusInLondon-go-supervise's ActorWorker,
// which recovers a panicking actor and still runs its Terminate hook.
func runBody(c *Ctx, body func(*Ctx)) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error(context.Background(), "actor body panicked",
				"self", c.self.String(), "panic", r)
		}
	}()
	body(c)
}

// teardown closes the mailbox, strips links to peers that already told us
// they died, then notifies the remaining links and owner.
func teardown(c *Ctx) {
	batch := c.self.mbox.close()

	merged := &msgList{}
	merged.spliceFrom(&c.local)
	merged.spliceFrom(batch)
	for {
		e, ok := merged.popFront()
		if !ok {
			break
		}
		if e.kind == kindControl && e.ctrl == ctrlLinkDead {
			delete(c.links, e.who)
		}
	}

	for h := range c.links {
		h.mbox.putControl(linkDeadEnvelope(c.self))
	}
	if c.hasOwner {
		c.owner.mbox.putControl(linkDeadEnvelope(c.self))
	}
}

func spawnInternal(parent *Ctx, linked bool, logger Logger, body func(*Ctx)) Handle {
	child := &Ctx{
		links:  make(map[Handle]bool),
		logger: logger,
	}
	child.self = newHandle(newMailbox(logger))

	if parent != nil {
		if linked {
			parent.links[child.self] = true
			child.links[parent.self] = true
		} else {
			parent.links[child.self] = false
			child.owner = parent.self
			child.hasOwner = true
		}
	}

	New(bodyWorker{ctx: child, body: body}).Start()
	return child.self
}

// Spawn starts body as a new owned child of c: a fresh mailbox and handle,
// registered in c's links as owned-only (synthesize-on-exit, no
// LinkTerminated raised toward c), with its owner set to c.
func (c *Ctx) Spawn(body func(*Ctx)) Handle {
	return spawnInternal(c, false, c.logger, body)
}

// SpawnLinked starts body as a new child symmetrically linked to c: both
// sides synthesize LinkDead toward each other on exit, and both raise
// LinkTerminated on receiving the peer's.
func (c *Ctx) SpawnLinked(body func(*Ctx)) Handle {
	return spawnInternal(c, true, c.logger, body)
}

// rootOptions configures a top-level Spawn call, one with no owner and no
// links to establish.
type rootOptions struct {
	logger Logger
}

// RootOption configures Spawn.
type RootOption func(*rootOptions)

// WithLogger overrides the Logger a root actor (and every descendant it
// spawns) uses for panic/capacity diagnostics.
func WithLogger(l Logger) RootOption {
	return func(o *rootOptions) { o.logger = l }
}

// Spawn starts body as a new top-level actor with no owner and no links.
// Use this to enter the actor graph from a non-actor goroutine (main, a
// test, the actorctl CLI); use (*Ctx).Spawn/(*Ctx).SpawnLinked from within
// a running actor.
func Spawn(body func(*Ctx), opt ...RootOption) Handle {
	o := rootOptions{logger: defaultLogger}
	for _, fn := range opt {
		fn(&o)
	}
	return spawnInternal(nil, false, o.logger, body)
}

// SpawnMany starts n independent top-level actors all running body,
// returning their handles in start order.
func SpawnMany(n int, body func(*Ctx), opt ...RootOption) []Handle {
	hs := make([]Handle, n)
	for i := range hs {
		hs[i] = Spawn(body, opt...)
	}
	return hs
}
