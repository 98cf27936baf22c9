package Trees

import (
	"iter"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// All [Tree.All]
// The node itself comes first, then its left subtree, then its right subtree.
// It uses an explicit stack so the depth of the tree isn't bounded by the call stack.
// All and LevelOrder keep the nodes in gods containers, which hold them as
// interface values; InOrder and PostOrder need to peek at the top of the
// stack and use a typed slice instead.
// The returned sequence can be ranged over more than once.
// Time: O(1) per value; Space: O(D)
func (u *LinkedBST[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		st := linkedliststack.New()
		st.Push(u.root)
		for !st.Empty() {
			top, _ := st.Pop()
			cur := top.(*node[T])
			if !yield(cur.v) {
				return
			}
			if cur.r != nil {
				st.Push(cur.r)
			}
			if cur.l != nil {
				st.Push(cur.l)
			}
		}
	}
}

// PreOrder is the same as All.
func (u *LinkedBST[T]) PreOrder() iter.Seq[T] {
	return u.All()
}

// InOrder [Tree.InOrder]
// Time: amortized O(1) per value; Space: O(D)
func (u *LinkedBST[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		var st []*node[T]
		for cur := u.root; cur != nil || len(st) > 0; {
			for ; cur != nil; cur = cur.l {
				st = append(st, cur)
			}
			cur, st = st[len(st)-1], st[:len(st)-1]
			if !yield(cur.v) {
				return
			}
			cur = cur.r
		}
	}
}

// PostOrder yields the left subtree, then the right subtree, then the node itself.
// Time: amortized O(1) per value; Space: O(D)
func (u *LinkedBST[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		var st []*node[T]
		var last *node[T]
		for cur := u.root; cur != nil || len(st) > 0; {
			if cur != nil {
				st = append(st, cur)
				cur = cur.l
				continue
			}
			top := st[len(st)-1]
			if top.r != nil && top.r != last {
				cur = top.r
				continue
			}
			if !yield(top.v) {
				return
			}
			last, st = top, st[:len(st)-1]
		}
	}
}

// LevelOrder yields the values breadth first, each level from left to right.
// Time: O(1) per value; Space: O(w) where w is the widest level.
func (u *LinkedBST[T]) LevelOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		q := linkedlistqueue.New()
		q.Enqueue(u.root)
		for !q.Empty() {
			front, _ := q.Dequeue()
			cur := front.(*node[T])
			if !yield(cur.v) {
				return
			}
			if cur.l != nil {
				q.Enqueue(cur.l)
			}
			if cur.r != nil {
				q.Enqueue(cur.r)
			}
		}
	}
}
