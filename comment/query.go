package comment

import "sort"

type frame struct {
	c     *Comment
	depth int
}

// walk visits c and every comment below it in pre-order, replies in the
// order they were added. depth is 0 for c itself. It uses an explicit stack
// so that a long reply chain cannot overflow the goroutine stack.
func (c *Comment) walk(fn func(c *Comment, depth int)) {
	stack := []frame{{c: c}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(f.c, f.depth)
		for i := len(f.c.replies) - 1; i >= 0; i-- {
			stack = append(stack, frame{c: f.c.replies[i], depth: f.depth + 1})
		}
	}
}

func (c *Comment) contains(target *Comment) bool {
	found := false
	c.walk(func(x *Comment, _ int) {
		if x == target {
			found = true
		}
	})
	return found
}

// CountReplies returns the number of comments below c, at any depth.
// Deleted comments are counted.
func (c *Comment) CountReplies() int {
	n := 0
	c.walk(func(*Comment, int) {
		n++
	})
	return n - 1
}

// CountRepliesRecursive is CountReplies without the explicit stack.
func (c *Comment) CountRepliesRecursive() int {
	total := len(c.replies)
	for _, r := range c.replies {
		total += r.CountRepliesRecursive()
	}
	return total
}

// MaxDepth returns the number of levels in the thread rooted at c. A comment
// without replies has depth 1.
func (c *Comment) MaxDepth() int {
	max := 0
	c.walk(func(_ *Comment, depth int) {
		if depth+1 > max {
			max = depth + 1
		}
	})
	return max
}

// MaxDepthRecursive is MaxDepth without the explicit stack.
func (c *Comment) MaxDepthRecursive() int {
	if len(c.replies) == 0 {
		return 1
	}
	max := 0
	for _, r := range c.replies {
		if d := r.MaxDepthRecursive(); d > max {
			max = d
		}
	}
	return 1 + max
}

// CollectAuthors returns the set of authors of live comments in the thread.
func (c *Comment) CollectAuthors() map[string]struct{} {
	ret := make(map[string]struct{})
	c.walk(func(x *Comment, _ int) {
		if !x.deleted {
			ret[x.author] = struct{}{}
		}
	})
	return ret
}

// Authors is CollectAuthors as a sorted slice.
func (c *Comment) Authors() []string {
	set := c.CollectAuthors()
	ret := make([]string, 0, len(set))
	for a := range set {
		ret = append(ret, a)
	}
	sort.Strings(ret)
	return ret
}

// FindByAuthor returns the live comments written by author, in pre-order.
func (c *Comment) FindByAuthor(author string) []*Comment {
	var ret []*Comment
	c.walk(func(x *Comment, _ int) {
		if !x.deleted && x.author == author {
			ret = append(ret, x)
		}
	})
	return ret
}
