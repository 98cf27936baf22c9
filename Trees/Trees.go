package Trees

import (
	"errors"
	"fmt"
	"iter"
)

// Tree represents an ordered container of values that act as their own keys.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Add v to the Tree. Repeated values are allowed.
	Add(v T)
	//Remove the first v found in the Tree. Returns a *NotFoundError if v isn't in the Tree.
	Remove(v T) (T, error)
	//Find returns the stored value equal to v.
	Find(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Replace overwrites the stored value equal to v by nv and returns the old value.
	Replace(v, nv T) (T, bool)
	//Clear removes every element.
	Clear()
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//RangeFind returns the elements x with low<=x<=high in ascending order.
	RangeFind(low, high T) []T
	//Height is the number of edges on the longest root to leaf path, -1 for an empty tree.
	Height() int
	//IsBalanced reports whether the height is within the bound for the number of elements.
	IsBalanced() bool
	//Rebalance rebuilds the tree with minimal height.
	Rebalance()
	//Size of the tree.
	Size() uint
	//All yields the elements in pre-order. The tree must not be modified
	//during the iteration.
	All() iter.Seq[T]
	//InOrder yields the elements in ascending order. The tree must not be
	//modified during the iteration.
	InOrder() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering or the size doesn't match the nodes.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

// ErrNotFound is matched by every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("item not in tree")

// NotFoundError is returned when removing an item that isn't in the tree.
type NotFoundError[T any] struct {
	Item T
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("%v: %v", ErrNotFound, e.Item)
}

func (e *NotFoundError[T]) Is(target error) bool {
	return target == ErrNotFound
}
