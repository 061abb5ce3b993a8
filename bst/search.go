package bst

// Min returns the smallest key in the tree, or false if the tree is empty.
func (tr *Tree[K]) Min() (K, bool) {
	var zero K
	if tr.IsEmpty() {
		return zero, false
	}
	nd := tr.Root
	for nd.Left != nil {
		nd = nd.Left
	}
	return nd.Key, true
}

// Max returns the largest key in the tree, or false if the tree is empty.
func (tr *Tree[K]) Max() (K, bool) {
	var zero K
	if tr.IsEmpty() {
		return zero, false
	}
	nd := tr.Root
	for nd.Right != nil {
		nd = nd.Right
	}
	return nd.Key, true
}

// MinRecursive is Min written as a tail call down the left spine.
func (tr *Tree[K]) MinRecursive() (K, bool) {
	if tr == nil {
		var zero K
		return zero, false
	}
	return minRecursive(tr.Root)
}

func minRecursive[K Number](nd *Node[K]) (K, bool) {
	if nd == nil {
		var zero K
		return zero, false
	}
	if nd.Left == nil {
		return nd.Key, true
	}
	return minRecursive(nd.Left)
}

// MaxRecursive is Max written as a tail call down the right spine.
func (tr *Tree[K]) MaxRecursive() (K, bool) {
	if tr == nil {
		var zero K
		return zero, false
	}
	return maxRecursive(tr.Root)
}

func maxRecursive[K Number](nd *Node[K]) (K, bool) {
	if nd == nil {
		var zero K
		return zero, false
	}
	if nd.Right == nil {
		return nd.Key, true
	}
	return maxRecursive(nd.Right)
}

// MinMax returns both extremes with a single emptiness check.
func (tr *Tree[K]) MinMax() (min, max K, ok bool) {
	min, ok = tr.Min()
	if !ok {
		return min, max, false
	}
	max, _ = tr.Max()
	return min, max, true
}

// Search does binary-search on a given key and returns the Node with the key.
func (tr *Tree[K]) Search(key K) *Node[K] {
	if tr == nil {
		return nil
	}
	nd := tr.Root
	for nd != nil {
		switch {
		case nd.Key < key:
			nd = nd.Right
		case key < nd.Key:
			nd = nd.Left
		default:
			return nd
		}
	}
	return nil
}

// SearchParent returns the parent of the Node holding key. It returns nil
// when the key is at the root or not in the tree.
func (tr *Tree[K]) SearchParent(key K) *Node[K] {
	if tr == nil {
		return nil
	}
	var parent *Node[K]
	nd := tr.Root
	for nd != nil {
		switch {
		case nd.Key < key:
			parent = nd
			nd = nd.Right
		case key < nd.Key:
			parent = nd
			nd = nd.Left
		default:
			return parent
		}
	}
	return nil
}

// SearchRange returns, in ascending order, the nodes whose keys lie strictly
// between min and max.
func (tr *Tree[K]) SearchRange(min, max K) []*Node[K] {
	if tr.IsEmpty() {
		return nil
	}
	var ret []*Node[K]
	var stack []*Node[K]
	nd := tr.Root
	for nd != nil || len(stack) > 0 {
		for nd != nil {
			stack = append(stack, nd)
			// the left subtree only holds smaller keys
			if min < nd.Key {
				nd = nd.Left
			} else {
				nd = nil
			}
		}
		nd = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if min < nd.Key && nd.Key < max {
			ret = append(ret, nd)
		}
		if nd.Key < max {
			nd = nd.Right
		} else {
			nd = nil
		}
	}
	return ret
}
