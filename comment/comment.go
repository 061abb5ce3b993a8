// Package comment models a discussion thread: each Comment owns an ordered
// list of replies, and deleting a comment only tombstones it so the replies
// below it stay reachable.
package comment

// DeletedText replaces the text of a tombstoned comment.
const DeletedText = "Цей коментар було видалено."

// Comment is one node of a thread. The zero value is not useful; use New.
type Comment struct {
	text    string
	author  string
	replies []*Comment
	deleted bool
}

// New returns a live comment with no replies.
func New(text, author string) *Comment {
	return &Comment{text: text, author: author}
}

func (c *Comment) Text() string {
	return c.text
}

// Author is kept even after the comment is deleted, but deleted comments are
// skipped by CollectAuthors and FindByAuthor.
func (c *Comment) Author() string {
	return c.author
}

func (c *Comment) IsDeleted() bool {
	return c.deleted
}

// Replies returns the direct replies in the order they were added. The
// slice is a copy; the comments are not.
func (c *Comment) Replies() []*Comment {
	ret := make([]*Comment, len(c.replies))
	copy(ret, c.replies)
	return ret
}

// AddReply appends reply to c's replies. reply must not be c or already
// contain c below it, since that would make the thread a cycle.
func (c *Comment) AddReply(reply *Comment) error {
	if reply == nil {
		return NewTypeMismatchError("reply is nil, not a comment")
	}
	if reply == c {
		return NewTypeMismatchError("a comment cannot reply to itself")
	}
	if reply.contains(c) {
		return NewTypeMismatchError("reply already contains the comment it would answer")
	}
	c.replies = append(c.replies, reply)
	return nil
}

// Remove tombstones the comment: the text becomes DeletedText and the
// comment is marked deleted. The author and all replies are left in place.
// Removing twice is a no-op.
func (c *Comment) Remove() {
	c.text = DeletedText
	c.deleted = true
}

// Tombstone is an alias for Remove.
func (c *Comment) Tombstone() {
	c.Remove()
}
