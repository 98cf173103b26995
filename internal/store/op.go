package store

import "fmt"

// OpKind names a mutating store operation.
type OpKind string

const (
	OpToggleRead  OpKind = "toggle_read"
	OpMarkAllRead OpKind = "mark_all_read"
)

// OpState is the lifecycle of one optimistic operation:
// Idle -> Pending(snapshot) -> Committed | RolledBack(snapshot).
type OpState int

const (
	OpIdle OpState = iota
	OpPending
	OpCommitted
	OpRolledBack
)

func (s OpState) String() string {
	switch s {
	case OpIdle:
		return "idle"
	case OpPending:
		return "pending"
	case OpCommitted:
		return "committed"
	case OpRolledBack:
		return "rolled_back"
	default:
		return fmt.Sprintf("OpState(%d)", int(s))
	}
}

// Op is the settled record of a ToggleRead or MarkAllRead call.
//
// Snapshot holds the isRead value each touched notification had when the
// operation was invoked; it is what a rollback restores. An Op that never
// left Idle touched nothing and issued no remote request.
type Op struct {
	Kind     OpKind
	State    OpState
	Snapshot map[string]bool
	Err      error

	// seq identifies this op's entries in the store's pending-write stacks.
	seq uint64
}

func (o *Op) begin(snapshot map[string]bool, seq uint64) {
	o.State = OpPending
	o.Snapshot = snapshot
	o.seq = seq
}

func (o *Op) commit() {
	o.State = OpCommitted
}

func (o *Op) rollBack(err error) {
	o.State = OpRolledBack
	o.Err = err
}

// Touched returns the number of notifications the operation changed optimistically.
func (o Op) Touched() int { return len(o.Snapshot) }
