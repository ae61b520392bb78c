package eevdf

// nodeState tracks a Node's position in the lifecycle spec'd by the queue's
// state machine: Detached -> Queued -> Current -> (Queued | Detached).
type nodeState uint8

const (
	stateDetached nodeState = iota
	stateQueued
	stateCurrent
)

type color bool

const (
	red   color = true
	black color = false
)

// Node is a thread handle. The caller owns the storage; a Queue borrows a
// Node's tree-linkage and virtual-time fields for as long as it is Queued or
// Current. A Node must not be mutated by the caller (besides via Queue
// operations) while it is attached to a queue, and must not be attached to
// more than one queue at a time.
type Node struct {
	// Weight proxies scheduling priority: heavier nodes receive a larger
	// share of CPU. Must be positive.
	Weight uint32

	// TimeSlice is the physical-time amount of CPU this node wants per
	// eligibility window. Must be positive.
	TimeSlice int64

	// VRuntime is the node's accumulated virtual runtime.
	VRuntime int64

	// VDeadline is VRuntime + TimeSlice/Weight, recomputed on every
	// enqueue. It is the key the timeline tree orders nodes by.
	VDeadline int64

	// MinVRuntime is the minimum VRuntime over the subtree rooted at this
	// node while it is part of the timeline tree. Maintained entirely by
	// the tree operations; callers must not read or write it directly.
	MinVRuntime int64

	left, right, parent *Node
	clr                 color

	state nodeState
	queue *Queue
}

// NewNode returns a detached Node with the given weight and time slice.
func NewNode(weight uint32, timeSlice int64) *Node {
	return &Node{Weight: weight, TimeSlice: timeSlice}
}

// Detached reports whether the node is currently unowned by any queue.
func (n *Node) Detached() bool { return n.state == stateDetached }

// Running reports whether the node is the one last returned by Schedule on
// its owning queue.
func (n *Node) Running() bool { return n.state == stateCurrent }

// Owner returns the queue n is attached to, or nil if it is detached. Useful
// for callers maintaining one queue per CPU to guard against scheduling a
// node that was never added (or was migrated away) from a given queue.
func (n *Node) Owner() *Queue { return n.queue }

// Lag is weight * (vtime - vruntime): positive when the node is
// under-served (eligible), negative when it has over-run its fair share.
// vtime is the caller-supplied current virtual clock, normally q.VTime for
// the node's owning queue.
func (n *Node) Lag(vtime int64) int64 {
	return int64(n.Weight) * (vtime - n.VRuntime)
}

func (n *Node) setDeadline() {
	n.VDeadline = n.VRuntime + n.TimeSlice/int64(n.Weight)
}

func (n *Node) eligible(vtime int64) bool {
	return n.VRuntime <= vtime
}
