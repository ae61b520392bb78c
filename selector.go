package eevdf

// selectNode returns the eligible node (VRuntime <= VTime) with the
// smallest VDeadline. Callers must only invoke this when the timeline is
// non-empty and invariant I1 holds (lags sum to zero), which guarantees at
// least one eligible node exists.
//
// Grounded on original_source/src/eevdf.c's pick_node: a fast-path check of
// the cached leftmost deadline, falling back to a pruned descent that uses
// MinVRuntime to skip subtrees with no eligible node.
func (q *Queue) selectNode() *Node {
	assertf(q.root != nil, "selectNode called on an empty timeline")

	if q.leftmost.eligible(q.VTime) {
		return q.leftmost
	}

	// Slow path: the loop invariant is that n's subtree contains at least
	// one eligible node. Descend left while the left subtree can supply
	// one; otherwise n itself must be eligible, or the right subtree
	// (which then must exist) holds the answer.
	n := q.root
	for {
		if n.left != nil && n.left.MinVRuntime <= q.VTime {
			n = n.left

			continue
		}

		if n.eligible(q.VTime) {
			return n
		}

		n = n.right
	}
}
