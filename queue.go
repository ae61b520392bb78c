package eevdf

// ============================================================================
// Virtual-time accountant and public operations
// ============================================================================

// Queue is an EEVDF run queue: a global virtual clock plus a timeline of
// weighted Nodes ordered by virtual deadline. The zero value is a valid,
// empty queue (VTime and all counters start at zero, matching spec's
// "zeroed memory acceptable" contract for queue_init).
//
// A Queue is single-threaded and non-reentrant: the caller must serialize
// all operations on a given Queue. No method here suspends, blocks, or
// performs I/O; every call completes in O(log N) work where N is the
// number of queued nodes.
type Queue struct {
	// VTime is the global virtual clock.
	VTime int64

	// TotalWeight is the sum of weights of every node currently owned by
	// the queue, including Current if one is running.
	TotalWeight uint32

	// TotalNodes is the count of nodes owned by the queue (Queued plus
	// Current), used as the "anything runnable" gate.
	TotalNodes uint32

	root     *Node
	leftmost *Node

	// Current is the node returned by the most recent Schedule call, or
	// nil if none has run yet or the last one was removed. It is not
	// present in the timeline tree while set.
	Current *Node
}

// NewQueue returns an empty, ready-to-use queue. Equivalent to new(Queue).
func NewQueue() *Queue {
	return &Queue{}
}

// Add attaches a detached node to the queue with zero lag: its virtual
// runtime is set to the queue's current virtual time, so it neither gains
// credit for time it didn't wait nor owes debt for time it hasn't run
// (spec invariant I1 is preserved without touching any other node).
//
// n must be detached, with a positive Weight and TimeSlice; violating
// either is a contract error (see assertf). Outside debug builds, Add
// ignores a node that is not detached.
func (q *Queue) Add(n *Node) {
	assertf(n.state == stateDetached, "add called on a node that is not detached")
	assertf(n.Weight > 0, "node weight must be positive")
	assertf(n.TimeSlice > 0, "node time slice must be positive")

	if n.state != stateDetached {
		return
	}

	n.VRuntime = q.VTime
	n.setDeadline()
	n.queue = q
	n.state = stateQueued

	q.insert(n)
	q.TotalNodes++
	q.TotalWeight += n.Weight
}

// Schedule advances the virtual clock by dt (elapsed physical time since
// the previous Schedule call), accounts the outgoing Current node, and
// selects the next node to run.
//
// If the queue is empty, Schedule returns (nil, false) and leaves VTime
// unchanged — the caller must not call Schedule again until Add has been
// called. If the outgoing Current node is removed and was the last node,
// Schedule also returns (nil, false), after VTime has advanced for the
// elapsed tick. Otherwise it returns the newly Current node and true.
//
// If requeueCurr is true, the outgoing Current node is reinserted into the
// timeline (suitable for preemption/yield); if false, it is removed from
// the queue entirely, with virtual-time compensation so the remaining
// nodes' lags still sum to zero (suitable for thread exit).
func (q *Queue) Schedule(dt int64, requeueCurr bool) (*Node, bool) {
	assertf(dt >= 0, "dt must be non-negative")

	if q.TotalNodes == 0 {
		return nil, false
	}

	q.VTime += dt / int64(q.TotalWeight)

	if cur := q.Current; cur != nil {
		assertf(cur.queue == q && cur.state == stateCurrent, "current node is not running on this queue")
		cur.VRuntime += dt / int64(cur.Weight)
		q.Current = nil

		if requeueCurr {
			cur.setDeadline()
			cur.state = stateQueued
			q.insert(cur)
		} else {
			q.removeWithWarp(cur)
			cur.state = stateDetached
			cur.queue = nil
		}
	}

	if q.TotalNodes == 0 {
		// The node we just removed was the last one in the queue: there
		// is nothing left to select. VTime has already advanced for the
		// tick that just elapsed; it now pauses until the next Add.
		return nil, false
	}

	next := q.selectNode()
	q.erase(next)
	next.state = stateCurrent
	q.Current = next

	return next, true
}

// removeWithWarp drops n from the queue's accounting and warps VTime so the
// remaining nodes' lags still sum to zero (spec §4.5). n must already be
// outside the timeline tree (it is always called with the Current node,
// which invariant I5 keeps detached from the tree while running).
//
//	V' = V + w_n * (V - v_n) / W'
//
// total_weight must be decremented before the division (the order is part
// of the contract, not an implementation detail): dividing by the
// pre-decrement weight would warp by too little and leave a residual lag.
func (q *Queue) removeWithWarp(n *Node) {
	assertf(n.state != stateDetached, "remove called on a detached node")
	q.TotalNodes--
	q.TotalWeight -= n.Weight

	if q.TotalWeight == 0 {
		// n was the last node; the clock is about to pause, so there is
		// nothing left to warp relative to.
		return
	}

	lag := n.Lag(q.VTime)
	q.VTime += lag / int64(q.TotalWeight)
}
