package Trees

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// LinkedBST is a binary search tree of linked nodes that never balances itself.
// Values less than a node go to its left subtree, values greater than or equal
// to it go to its right subtree, so repeated values are kept; Find, Replace
// and Remove act on the first one met from the root.
// The height of the tree depends on the insertion order and is only reduced
// by an explicit call to Rebalance. The zero value is an empty tree.
// LinkedBST isn't safe for concurrent use.
type LinkedBST[T constraints.Ordered] struct {
	root *node[T]
	sz   uint
}

// New returns an empty LinkedBST.
func New[T constraints.Ordered]() *LinkedBST[T] {
	return new(LinkedBST[T])
}

// From returns a LinkedBST holding vs, added one at a time in the given order.
func From[T constraints.Ordered](vs ...T) *LinkedBST[T] {
	u := New[T]()
	for _, v := range vs {
		u.Add(v)
	}
	return u
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Size() uint {
	return u.sz
}

// Empty reports whether the tree holds no value.
func (u *LinkedBST[T]) Empty() bool {
	return u.root == nil
}

// Add [Tree.Add]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Add(v T) {
	u.sz++
	n := &node[T]{v: v}
	if u.root == nil {
		u.root = n
		return
	}
	for cur := u.root; ; {
		if v < cur.v {
			if cur.l == nil {
				cur.l = n
				return
			}
			cur = cur.l
		} else {
			if cur.r == nil {
				cur.r = n
				return
			}
			cur = cur.r
		}
	}
}

// Remove [Tree.Remove]
// The descent keeps track of the parent of the current node and the side it
// hangs from, the root is handled by a nil parent. A node with both children
// takes the maximum of its left subtree; otherwise its only child (or nil)
// takes its place. The tree isn't modified if v is absent.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Remove(v T) (T, error) {
	var p *node[T]
	left := true
	cur := u.root
	for cur != nil && cur.v != v {
		p = cur
		if cur.v > v {
			left, cur = true, cur.l
		} else {
			left, cur = false, cur.r
		}
	}
	if cur == nil {
		return *new(T), &NotFoundError[T]{v}
	}
	removed := cur.v
	if cur.l != nil && cur.r != nil {
		liftMaxInLeft(cur)
	} else {
		child := cur.l
		if child == nil {
			child = cur.r
		}
		if p == nil {
			u.root = child
		} else if left {
			p.l = child
		} else {
			p.r = child
		}
	}
	u.sz--
	return removed, nil
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Find(v T) (T, bool) {
	for cur := u.root; cur != nil; {
		if v == cur.v {
			return cur.v, true
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Has(v T) bool {
	_, ok := u.Find(v)
	return ok
}

// Replace [Tree.Replace]
// nv is written in place without moving the node. If nv doesn't order the same
// way as v relative to the rest of the tree, the tree becomes corrupt;
// Rebalance restores the ordering.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Replace(v, nv T) (T, bool) {
	for cur := u.root; cur != nil; {
		if cur.v == v {
			old := cur.v
			cur.v = nv
			return old, true
		} else if cur.v > v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Clear [Tree.Clear]
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

func successor[T constraints.Ordered](n *node[T], v T) (T, bool) {
	if n == nil {
		return *new(T), false
	}
	if n.v > v {
		if s, ok := successor(n.l, v); ok {
			return s, true
		}
		return n.v, true
	}
	return successor(n.r, v)
}

func predecessor[T constraints.Ordered](n *node[T], v T) (T, bool) {
	if n == nil {
		return *new(T), false
	}
	if n.v < v {
		if s, ok := predecessor(n.r, v); ok {
			return s, true
		}
		return n.v, true
	}
	return predecessor(n.l, v)
}

// Successor [Tree.Successor]. Recursive.
// v doesn't need to be in the tree.
// Time: O(D)
func (u *LinkedBST[T]) Successor(v T) (T, bool) {
	return successor(u.root, v)
}

// Predecessor [Tree.Predecessor]. Recursive.
// v doesn't need to be in the tree.
// Time: O(D)
func (u *LinkedBST[T]) Predecessor(v T) (T, bool) {
	return predecessor(u.root, v)
}

// RangeFind [Tree.RangeFind]
// Every node is visited once using a stack, the matches are sorted afterwards.
// Time: O(n+k*log(k)); Space: O(D+k)
func (u *LinkedBST[T]) RangeFind(low, high T) []T {
	var ans []T
	for st := []*node[T]{u.root}; len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if cur == nil {
			continue
		}
		if low <= cur.v && cur.v <= high {
			ans = append(ans, cur.v)
		}
		st = append(st, cur.l, cur.r)
	}
	slices.Sort(ans)
	return ans
}

// Height [Tree.Height]
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Height() int {
	return height(u.root) - 1
}

// IsBalanced [Tree.IsBalanced]
// The tree is balanced when Height() < 2*log2(2*(n+1))-1, where n is counted
// from the nodes rather than taken from Size().
// Time: O(n)
func (u *LinkedBST[T]) IsBalanced() bool {
	n := count(u.root)
	return float64(u.Height()) < 2*math.Log2(float64(2*(n+1)))-1
}

// Rebalance [Tree.Rebalance]. Recursive.
// The values are taken in order, sorted, and rebuilt into a tree whose
// subtree roots are the middle elements.
// Time: O(n*log(n)); Space: O(n)
func (u *LinkedBST[T]) Rebalance() {
	vs := u.Slice()
	slices.Sort(vs)
	u.Clear()
	u.root, u.sz = build(vs), uint(len(vs))
}

// Slice returns the values of the tree in-order.
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) Slice() []T {
	vs := make([]T, 0, u.sz)
	for v := range u.InOrder() {
		vs = append(vs, v)
	}
	return vs
}

// Corrupt [Tree.Corrupt]
// Remove may lift a repeated value above its copies in the left subtree, so
// values equal to a node are accepted on both sides.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Corrupt() bool {
	type frame struct {
		n      *node[T]
		lo, hi *T // lo<=v<=hi, nil is unbounded.
	}
	var n uint
	for st := []frame{{n: u.root}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.n == nil {
			continue
		}
		if (f.lo != nil && f.n.v < *f.lo) || (f.hi != nil && f.n.v > *f.hi) {
			return true
		}
		n++
		st = append(st, frame{f.n.l, f.lo, &f.n.v}, frame{f.n.r, &f.n.v, f.hi})
	}
	return n != u.sz
}

// String draws the tree rotated 90 degrees counterclockwise, one value per
// line indented by its depth. Recursive.
func (u *LinkedBST[T]) String() string {
	var sb strings.Builder
	var draw func(*node[T], int)
	draw = func(n *node[T], d int) {
		if n != nil {
			draw(n.r, d+1)
			sb.WriteString(strings.Repeat("| ", d))
			fmt.Fprintln(&sb, n.v)
			draw(n.l, d+1)
		}
	}
	draw(u.root, 0)
	return sb.String()
}

var _ Tree[int] = (*LinkedBST[int])(nil)
