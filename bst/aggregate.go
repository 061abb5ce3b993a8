package bst

// Statistics is a one-pass summary of a tree. Min and Max are nil for an
// empty tree.
type Statistics[K Number] struct {
	Sum     K
	Count   int
	Average float64
	Min     *K
	Max     *K
}

// Sum returns the total of all keys, or 0 for an empty tree. It recurses
// pre-order; see SumIterative for deep trees.
func (tr *Tree[K]) Sum() K {
	if tr == nil {
		return 0
	}
	return sumRecursive(tr.Root)
}

func sumRecursive[K Number](nd *Node[K]) K {
	if nd == nil {
		return 0
	}
	return nd.Key + sumRecursive(nd.Left) + sumRecursive(nd.Right)
}

// SumIterative sums with an explicit pre-order stack.
func (tr *Tree[K]) SumIterative() K {
	var total K
	tr.WalkPreOrder(func(nd *Node[K]) {
		total += nd.Key
	})
	return total
}

// SumPostOrder sums in post-order.
func (tr *Tree[K]) SumPostOrder() K {
	var total K
	tr.WalkPostOrder(func(nd *Node[K]) {
		total += nd.Key
	})
	return total
}

// SumLevelOrder sums breadth first.
func (tr *Tree[K]) SumLevelOrder() K {
	var total K
	tr.WalkLevelOrder(func(nd *Node[K]) {
		total += nd.Key
	})
	return total
}

// Count returns the number of nodes.
func (tr *Tree[K]) Count() int {
	n := 0
	tr.WalkPreOrder(func(*Node[K]) {
		n++
	})
	return n
}

// Average returns Sum/Count, or 0 for an empty tree.
func (tr *Tree[K]) Average() float64 {
	n := tr.Count()
	if n == 0 {
		return 0
	}
	return float64(tr.SumIterative()) / float64(n)
}

// Statistics computes sum, count, average and both extremes in a single
// walk.
func (tr *Tree[K]) Statistics() Statistics[K] {
	var st Statistics[K]
	tr.WalkPreOrder(func(nd *Node[K]) {
		st.Sum += nd.Key
		st.Count++
		if st.Min == nil || nd.Key < *st.Min {
			k := nd.Key
			st.Min = &k
		}
		if st.Max == nil || nd.Key > *st.Max {
			k := nd.Key
			st.Max = &k
		}
	})
	if st.Count > 0 {
		st.Average = float64(st.Sum) / float64(st.Count)
	}
	return st
}
