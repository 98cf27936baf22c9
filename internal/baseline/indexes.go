package baseline

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/ordered-tree/Trees"
)

// BTree indexes the words in a https://github.com/google/btree B-tree.
type BTree struct {
	t *btree.BTreeG[string]
}

// NewBTree returns an empty BTree whose nodes have the given degree.
func NewBTree(degree int) *BTree {
	return &BTree{btree.NewG[string](degree, func(a, b string) bool { return a < b })}
}

func (u *BTree) Name() string { return "btree" }

func (u *BTree) Load(words []string) {
	u.t.Clear(false)
	for _, w := range words {
		u.t.ReplaceOrInsert(w)
	}
}

func (u *BTree) Has(w string) bool { return u.t.Has(w) }

func (u *BTree) Len() int { return u.t.Len() }

type llrbWord string

func (w llrbWord) Less(than llrb.Item) bool {
	return w < than.(llrbWord)
}

// LLRB indexes the words in a https://github.com/petar/GoLLRB left-leaning red-black tree.
type LLRB struct {
	t *llrb.LLRB
}

func (u *LLRB) Name() string { return "llrb" }

func (u *LLRB) Load(words []string) {
	u.t = llrb.New()
	for _, w := range words {
		u.t.ReplaceOrInsert(llrbWord(w))
	}
}

func (u *LLRB) Has(w string) bool {
	return u.t != nil && u.t.Has(llrbWord(w))
}

func (u *LLRB) Len() int {
	if u.t == nil {
		return 0
	}
	return u.t.Len()
}

// HaxMap indexes the words in a https://github.com/alphadose/haxmap hash map.
type HaxMap struct {
	m *haxmap.Map[string, struct{}]
}

func (u *HaxMap) Name() string { return "haxmap" }

func (u *HaxMap) Load(words []string) {
	u.m = haxmap.New[string, struct{}]()
	for _, w := range words {
		u.m.Set(w, struct{}{})
	}
}

func (u *HaxMap) Has(w string) bool {
	if u.m == nil {
		return false
	}
	_, ok := u.m.Get(w)
	return ok
}

func (u *HaxMap) Len() int {
	if u.m == nil {
		return 0
	}
	return int(u.m.Len())
}

// HashMap indexes the words in a https://github.com/cornelk/hashmap hash map.
type HashMap struct {
	m *hashmap.Map[string, struct{}]
}

func (u *HashMap) Name() string { return "hashmap" }

func (u *HashMap) Load(words []string) {
	u.m = hashmap.New[string, struct{}]()
	for _, w := range words {
		u.m.Set(w, struct{}{})
	}
}

func (u *HashMap) Has(w string) bool {
	if u.m == nil {
		return false
	}
	_, ok := u.m.Get(w)
	return ok
}

func (u *HashMap) Len() int {
	if u.m == nil {
		return 0
	}
	return u.m.Len()
}

// BST indexes the words in a rebalanced Trees.LinkedBST. Repeated words are
// kept, so Len counts them.
type BST struct {
	t *Trees.LinkedBST[string]
}

func NewBST() *BST {
	return &BST{Trees.New[string]()}
}

func (u *BST) Name() string { return "bst" }

func (u *BST) Load(words []string) {
	u.t.Clear()
	for _, w := range words {
		u.t.Add(w)
	}
	u.t.Rebalance()
}

func (u *BST) Has(w string) bool { return u.t.Has(w) }

func (u *BST) Len() int { return int(u.t.Size()) }
