package bst

import "golang.org/x/exp/constraints"

// Number is the set of key types a Tree can hold. Keys need to be ordered
// for the search invariant and summable for the aggregate queries.
type Number interface {
	constraints.Integer | constraints.Float
}

// Node is a single key in the tree. A Node owns its children; there are no
// parent pointers.
type Node[K Number] struct {
	Key   K
	Left  *Node[K]
	Right *Node[K]
}

// Tree is an unbalanced binary search tree. Every key in a node's Left
// subtree is strictly less than the node's Key, and every key in its Right
// subtree is strictly greater. The zero value is an empty tree.
type Tree[K Number] struct {
	Root *Node[K]
}

// New returns an empty tree.
func New[K Number]() *Tree[K] {
	return &Tree[K]{}
}

// NewFromKeys returns a tree built by inserting keys in order.
func NewFromKeys[K Number](keys ...K) *Tree[K] {
	tr := New[K]()
	tr.InsertAll(keys...)
	return tr
}

// Insert adds key as a new leaf. It returns false, leaving the tree
// untouched, if the key is already present.
func (tr *Tree[K]) Insert(key K) bool {
	if tr.Root == nil {
		tr.Root = &Node[K]{Key: key}
		return true
	}
	nd := tr.Root
	for {
		switch {
		case key < nd.Key:
			if nd.Left == nil {
				nd.Left = &Node[K]{Key: key}
				return true
			}
			nd = nd.Left
		case key > nd.Key:
			if nd.Right == nil {
				nd.Right = &Node[K]{Key: key}
				return true
			}
			nd = nd.Right
		default:
			return false
		}
	}
}

// InsertAll inserts each key in order and returns how many were new.
func (tr *Tree[K]) InsertAll(keys ...K) int {
	n := 0
	for _, k := range keys {
		if tr.Insert(k) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the tree has no nodes.
func (tr *Tree[K]) IsEmpty() bool {
	return tr == nil || tr.Root == nil
}
