package eevdf

import (
	"math/rand"
	"testing"
)

// blackHeight walks every root-to-nil path and fails if two paths disagree
// on black-node count, or if a red node has a red child — the two
// properties a correct red-black tree must maintain alongside the
// MinVRuntime augmentation checked elsewhere.
func blackHeight(t *testing.T, n *Node, blacksSoFar int, want *int) int {
	t.Helper()

	if n == nil {
		if *want == -1 {
			*want = blacksSoFar
		} else if *want != blacksSoFar {
			t.Fatalf("unequal black height: got %d, want %d", blacksSoFar, *want)
		}

		return blacksSoFar
	}

	if n.clr == red {
		if nodeColor(n.left) == red || nodeColor(n.right) == red {
			t.Fatalf("red node %d has a red child", n.VDeadline)
		}
	}

	next := blacksSoFar
	if n.clr == black {
		next++
	}

	blackHeight(t, n.left, next, want)
	blackHeight(t, n.right, next, want)

	return next
}

func checkRedBlack(t *testing.T, q *Queue) {
	t.Helper()

	if q.root != nil && q.root.clr != black {
		t.Fatalf("root is not black")
	}

	want := -1
	blackHeight(t, q.root, 0, &want)
	checkAugmentation(t, q.root)
	checkOrdering(t, q)
}

func TestTreeRandomizedInsertErase(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	q := NewQueue()

	var live []*Node

	for round := 0; round < 400; round++ {
		if len(live) == 0 || rng.Intn(2) == 0 {
			n := NewNode(uint32(1+rng.Intn(8)), int64(1+rng.Intn(50)))
			n.VRuntime = int64(rng.Intn(1000))
			n.setDeadline()
			q.insert(n)
			live = append(live, n)
		} else {
			idx := rng.Intn(len(live))
			victim := live[idx]
			q.erase(victim)
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		}

		checkRedBlack(t, q)

		var nodes []*Node
		inOrder(q.root, &nodes)

		if len(nodes) != len(live) {
			t.Fatalf("tree has %d nodes, expected %d", len(nodes), len(live))
		}
	}
}

func TestTreeLeftmostCacheTracksTrueMinimum(t *testing.T) {
	rng := rand.New(rand.NewSource(999))

	q := NewQueue()

	var live []*Node

	for round := 0; round < 200; round++ {
		if len(live) == 0 || rng.Intn(3) != 0 {
			n := NewNode(1, int64(1+rng.Intn(100)))
			n.VRuntime = int64(rng.Intn(500))
			n.setDeadline()
			q.insert(n)
			live = append(live, n)
		} else {
			idx := rng.Intn(len(live))
			victim := live[idx]
			q.erase(victim)
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
		}

		var nodes []*Node
		inOrder(q.root, &nodes)

		if len(nodes) == 0 {
			if q.leftmost != nil {
				t.Fatalf("leftmost should be nil on empty tree")
			}

			continue
		}

		min := nodes[0]
		for _, n := range nodes {
			if n.VDeadline < min.VDeadline {
				min = n
			}
		}

		if q.leftmost.VDeadline != min.VDeadline {
			t.Fatalf("leftmost cache deadline = %d, want %d", q.leftmost.VDeadline, min.VDeadline)
		}
	}
}

func TestTreeTieBreakDoesNotPanic(t *testing.T) {
	q := NewQueue()

	for i := 0; i < 20; i++ {
		n := NewNode(1, 10)
		n.VRuntime = 0
		n.setDeadline() // every node gets the same deadline
		q.insert(n)
	}

	checkRedBlack(t, q)
}
