// Package actor implements an in-process actor-style messaging core:
// actors exchange heterogeneous typed messages through per-actor mailboxes,
// with termination events propagated across owner (parent/child) and link
// (symmetric) relationships.
//
// A program enters the actor graph with Spawn, which starts a body running
// with its own *Ctx. From inside that body, Ctx.Spawn and Ctx.SpawnLinked
// start children wired into the supervision graph, Send delivers messages
// to any Handle, and Ctx.Receive/Ctx.ReceiveTimeout/ReceiveOnly perform
// selective, pattern-matched receive against the current actor's mailbox.
package actor
