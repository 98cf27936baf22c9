package Trees

// A node in the LinkedBST. l and r exclusively own their subtrees; there's
// no parent link, operations that need the parent track it while descending.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// height of the subtree rooting at n counted in nodes, 0 for nil.
// Time: O(n); Space: O(D)
func height[T any](n *node[T]) int {
	type frame struct {
		n *node[T]
		d int
	}
	h := 0
	for st := []frame{{n, 1}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.n == nil {
			continue
		}
		h = max(h, f.d)
		st = append(st, frame{f.n.l, f.d + 1}, frame{f.n.r, f.d + 1})
	}
	return h
}

// count the nodes of the subtree rooting at n.
// Time: O(n); Space: O(D)
func count[T any](n *node[T]) uint {
	var c uint
	for st := []*node[T]{n}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if cur != nil {
			c++
			st = append(st, cur.l, cur.r)
		}
	}
	return c
}

// build a tree of minimal height from the sorted slice s by taking the middle
// element as the root of each subtree. Recursive.
// Time: O(n)
func build[T any](s []T) *node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	return &node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
}

// liftMaxInLeft replaces top.v with the maximum value in top's left subtree and
// unlinks the node that held it. top.l must not be nil.
// Time: O(D); Space: O(1)
func liftMaxInLeft[T any](top *node[T]) {
	p, cur := top, top.l
	for cur.r != nil {
		p, cur = cur, cur.r
	}
	top.v = cur.v
	if p == top {
		top.l = cur.l
	} else {
		p.r = cur.l
	}
}
