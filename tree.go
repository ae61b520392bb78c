package eevdf

// ============================================================================
// Augmented red-black tree (timeline)
// ============================================================================
//
// The tree is keyed by Node.VDeadline and augmented with Node.MinVRuntime,
// the minimum VRuntime across the node's subtree (spec invariant I2). Every
// structural mutation (insert, erase, rotation) must leave every ancestor's
// MinVRuntime correctly recomputed; bubbleMin does that bottom-up, stopping
// at the first ancestor whose recomputed value already matches (fixed-point
// termination, matching the derivation in original_source/src/eevdf.c's
// update_min_vruntime).
//
// Ties in VDeadline are resolved arbitrarily by always descending left on
// equality, so a newly inserted node with an equal deadline becomes the
// left-most of the group; callers must never depend on inter-tie ordering.

func nodeColor(n *Node) color {
	if n == nil {
		return black
	}

	return n.clr
}

func minVRuntimeOf(n *Node) int64 {
	if n == nil {
		return maxVTime
	}

	return n.MinVRuntime
}

const maxVTime = int64(1<<63 - 1)

// bubbleMin recomputes n.MinVRuntime from its live children and, if the
// value changed, continues up through n.parent. Stops as soon as a
// recomputed ancestor's value equals what it already held.
func (q *Queue) bubbleMin(n *Node) {
	for n != nil {
		newMin := n.VRuntime
		if l := minVRuntimeOf(n.left); l < newMin {
			newMin = l
		}
		if r := minVRuntimeOf(n.right); r < newMin {
			newMin = r
		}

		if newMin == n.MinVRuntime {
			return
		}

		n.MinVRuntime = newMin
		n = n.parent
	}
}

func (q *Queue) rotateLeft(x *Node) {
	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent
	if x.parent == nil {
		q.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}

	y.left = x
	x.parent = y

	q.bubbleMin(x)
	q.bubbleMin(y)
}

func (q *Queue) rotateRight(x *Node) {
	y := x.left
	x.left = y.right

	if y.right != nil {
		y.right.parent = x
	}

	y.parent = x.parent
	if x.parent == nil {
		q.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}

	y.right = x
	x.parent = y

	q.bubbleMin(x)
	q.bubbleMin(y)
}

// insert places n into the timeline, ordered by VDeadline, and restores the
// red-black and augmentation invariants.
func (q *Queue) insert(n *Node) {
	n.left, n.right, n.parent = nil, nil, nil
	n.clr = red
	n.MinVRuntime = n.VRuntime

	if q.root == nil {
		q.root = n
		n.clr = black
		q.leftmost = n

		return
	}

	cur := q.root

	var parent *Node

	goLeft := false

	for cur != nil {
		parent = cur
		if n.VDeadline <= cur.VDeadline {
			goLeft = true
			cur = cur.left
		} else {
			goLeft = false
			cur = cur.right
		}
	}

	n.parent = parent
	if goLeft {
		parent.left = n
	} else {
		parent.right = n
	}

	q.bubbleMin(parent)
	q.fixInsert(n)
	q.refreshLeftmost()
}

func (q *Queue) fixInsert(n *Node) {
	for n.parent != nil && n.parent.clr == red {
		gp := n.parent.parent

		if n.parent == gp.left {
			uncle := gp.right
			if nodeColor(uncle) == red {
				n.parent.clr = black
				uncle.clr = black
				gp.clr = red
				n = gp
			} else {
				if n == n.parent.right {
					n = n.parent
					q.rotateLeft(n)
				}

				n.parent.clr = black
				gp.clr = red
				q.rotateRight(gp)
			}
		} else {
			uncle := gp.left
			if nodeColor(uncle) == red {
				n.parent.clr = black
				uncle.clr = black
				gp.clr = red
				n = gp
			} else {
				if n == n.parent.left {
					n = n.parent
					q.rotateRight(n)
				}

				n.parent.clr = black
				gp.clr = red
				q.rotateLeft(gp)
			}
		}
	}

	q.root.clr = black
}

func (q *Queue) transplant(u, v *Node) {
	switch {
	case u.parent == nil:
		q.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

func (q *Queue) minimum(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}

	return n
}

// erase removes z from the timeline, preserving red-black balance and the
// MinVRuntime augmentation. It does not touch z's state or owning-queue
// back-reference — callers decide whether the erased node becomes Current
// or Detached.
func (q *Queue) erase(z *Node) {
	var y, x, xParent *Node

	yOriginalColor := z.clr

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		q.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		q.transplant(z, z.left)
	default:
		y = q.minimum(z.right)
		yOriginalColor = y.clr
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			q.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		q.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.clr = z.clr
		y.MinVRuntime = z.MinVRuntime
	}

	z.left, z.right, z.parent = nil, nil, nil

	if y != nil {
		q.bubbleMin(y)
	}

	if xParent != nil {
		q.bubbleMin(xParent)
	}

	if yOriginalColor == black {
		q.fixDelete(x, xParent)
	}

	q.refreshLeftmost()
}

func (q *Queue) fixDelete(x, xParent *Node) {
	for x != q.root && nodeColor(x) == black {
		if x == xParent.left {
			w := xParent.right
			if nodeColor(w) == red {
				w.clr = black
				xParent.clr = red
				q.rotateLeft(xParent)
				w = xParent.right
			}

			if nodeColor(w.left) == black && nodeColor(w.right) == black {
				w.clr = red
				x = xParent
				xParent = x.parent
			} else {
				if nodeColor(w.right) == black {
					if w.left != nil {
						w.left.clr = black
					}

					w.clr = red
					q.rotateRight(w)
					w = xParent.right
				}

				w.clr = xParent.clr
				xParent.clr = black

				if w.right != nil {
					w.right.clr = black
				}

				q.rotateLeft(xParent)
				x = q.root
				xParent = nil
			}
		} else {
			w := xParent.left
			if nodeColor(w) == red {
				w.clr = black
				xParent.clr = red
				q.rotateRight(xParent)
				w = xParent.left
			}

			if nodeColor(w.right) == black && nodeColor(w.left) == black {
				w.clr = red
				x = xParent
				xParent = x.parent
			} else {
				if nodeColor(w.left) == black {
					if w.right != nil {
						w.right.clr = black
					}

					w.clr = red
					q.rotateLeft(w)
					w = xParent.left
				}

				w.clr = xParent.clr
				xParent.clr = black

				if w.left != nil {
					w.left.clr = black
				}

				q.rotateRight(xParent)
				x = q.root
				xParent = nil
			}
		}
	}

	if x != nil {
		x.clr = black
	}
}

func (q *Queue) refreshLeftmost() {
	if q.root == nil {
		q.leftmost = nil

		return
	}

	n := q.root
	for n.left != nil {
		n = n.left
	}

	q.leftmost = n
}
