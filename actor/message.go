package actor

// envelopeKind discriminates the tagged union a message is: either a user
// payload or a control signal synthesized by the supervision runtime.
type envelopeKind uint8

const (
	kindUser envelopeKind = iota
	kindControl
)

// controlKind enumerates the control signals a mailbox can carry. Only
// LinkDead is synthesized today.
type controlKind uint8

const (
	ctrlLinkDead controlKind = iota
)

// envelope is a mailbox message: {type, payload}. For kindUser, payload
// holds the sent tuple. For kindControl, who identifies the terminated
// party the control signal concerns.
type envelope struct {
	kind envelopeKind

	payload DynValue // kindUser

	ctrl controlKind // kindControl
	who  Handle      // kindControl
}

func userEnvelope(vals ...any) *envelope {
	return &envelope{kind: kindUser, payload: newDynValue(vals...)}
}

func linkDeadEnvelope(who Handle) *envelope {
	return &envelope{kind: kindControl, ctrl: ctrlLinkDead, who: who}
}
