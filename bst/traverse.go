package bst

// The walkers below keep their own stack or queue instead of recursing, so
// a tree built from sorted input (height == size) cannot exhaust the
// goroutine stack.

// WalkInOrder visits nodes in ascending key order.
func (tr *Tree[K]) WalkInOrder(fn func(*Node[K])) {
	if tr.IsEmpty() {
		return
	}
	var stack []*Node[K]
	nd := tr.Root
	for nd != nil || len(stack) > 0 {
		for nd != nil {
			stack = append(stack, nd)
			nd = nd.Left
		}
		nd = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(nd)
		nd = nd.Right
	}
}

// WalkPreOrder visits a node before its left and then right subtree.
func (tr *Tree[K]) WalkPreOrder(fn func(*Node[K])) {
	if tr.IsEmpty() {
		return
	}
	stack := []*Node[K]{tr.Root}
	for len(stack) > 0 {
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(nd)
		// right first so left is popped first
		if nd.Right != nil {
			stack = append(stack, nd.Right)
		}
		if nd.Left != nil {
			stack = append(stack, nd.Left)
		}
	}
}

// WalkPostOrder visits both subtrees of a node before the node itself.
func (tr *Tree[K]) WalkPostOrder(fn func(*Node[K])) {
	if tr.IsEmpty() {
		return
	}
	var stack []*Node[K]
	var last *Node[K]
	nd := tr.Root
	for nd != nil || len(stack) > 0 {
		if nd != nil {
			stack = append(stack, nd)
			nd = nd.Left
			continue
		}
		top := stack[len(stack)-1]
		if top.Right != nil && top.Right != last {
			nd = top.Right
			continue
		}
		fn(top)
		last = top
		stack = stack[:len(stack)-1]
	}
}

// WalkLevelOrder visits nodes breadth first, left to right within a level.
func (tr *Tree[K]) WalkLevelOrder(fn func(*Node[K])) {
	if tr.IsEmpty() {
		return
	}
	queue := []*Node[K]{tr.Root}
	for len(queue) > 0 {
		nd := queue[0]
		queue[0] = nil
		queue = queue[1:]
		fn(nd)
		if nd.Left != nil {
			queue = append(queue, nd.Left)
		}
		if nd.Right != nil {
			queue = append(queue, nd.Right)
		}
	}
}

// InOrder returns all keys in ascending order. The slice is built fresh on
// every call.
func (tr *Tree[K]) InOrder() []K {
	var ret []K
	tr.WalkInOrder(func(nd *Node[K]) {
		ret = append(ret, nd.Key)
	})
	return ret
}

// InOrderRecursive is the textbook recursive form of InOrder.
func (tr *Tree[K]) InOrderRecursive() []K {
	if tr == nil {
		return nil
	}
	return tr.Root.appendInOrder(nil)
}

func (nd *Node[K]) appendInOrder(ret []K) []K {
	if nd == nil {
		return ret
	}
	ret = nd.Left.appendInOrder(ret)
	ret = append(ret, nd.Key)
	ret = nd.Right.appendInOrder(ret)
	return ret
}

// Height is the number of levels in the tree; 0 when empty.
func (tr *Tree[K]) Height() int {
	if tr.IsEmpty() {
		return 0
	}
	h := 0
	level := []*Node[K]{tr.Root}
	for len(level) > 0 {
		h++
		var next []*Node[K]
		for _, nd := range level {
			if nd.Left != nil {
				next = append(next, nd.Left)
			}
			if nd.Right != nil {
				next = append(next, nd.Right)
			}
		}
		level = next
	}
	return h
}
