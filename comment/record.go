package comment

import "fmt"

// Record is the exchange form of a thread. Replies is an empty list, never
// nil, for a comment without replies.
type Record struct {
	Text      string   `codec:"text" json:"text"`
	Author    string   `codec:"author" json:"author"`
	IsDeleted bool     `codec:"is_deleted" json:"is_deleted"`
	Replies   []Record `codec:"replies" json:"replies"`
}

// Serialize converts the thread rooted at c into a Record.
func (c *Comment) Serialize() Record {
	r := Record{
		Text:      c.text,
		Author:    c.author,
		IsDeleted: c.deleted,
		Replies:   make([]Record, 0, len(c.replies)),
	}
	for _, reply := range c.replies {
		r.Replies = append(r.Replies, reply.Serialize())
	}
	return r
}

// Deserialize rebuilds a thread from a Record, tombstones included.
func Deserialize(r Record) *Comment {
	c := &Comment{
		text:    r.Text,
		author:  r.Author,
		deleted: r.IsDeleted,
		replies: make([]*Comment, 0, len(r.Replies)),
	}
	for _, rr := range r.Replies {
		c.replies = append(c.replies, Deserialize(rr))
	}
	return c
}

// ToMap converts the thread into nested map[string]interface{} values with
// the keys text, author, is_deleted and replies.
func (c *Comment) ToMap() map[string]interface{} {
	replies := make([]interface{}, 0, len(c.replies))
	for _, r := range c.replies {
		replies = append(replies, r.ToMap())
	}
	return map[string]interface{}{
		"text":       c.text,
		"author":     c.author,
		"is_deleted": c.deleted,
		"replies":    replies,
	}
}

// FromMap rebuilds a thread from the output of ToMap or from any decoded
// document of the same shape. text and author are required; is_deleted
// defaults to false and replies to an empty list.
func FromMap(m map[string]interface{}) (*Comment, error) {
	return fromMap(m, "", 1, DefaultMaxDecodeDepth)
}

func fieldPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func stringField(m map[string]interface{}, path, field string) (string, error) {
	v, ok := m[field]
	if !ok || v == nil {
		return "", NewMalformedInputError(fieldPath(path, field), "missing required field")
	}
	s, ok := v.(string)
	if !ok {
		return "", NewTypeMismatchError(fmt.Sprintf("%s is %T, not a string", fieldPath(path, field), v))
	}
	return s, nil
}

func fromMap(m map[string]interface{}, path string, depth, maxDepth int) (*Comment, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDecodeDepth
	}
	if depth > maxDepth {
		return nil, NewMalformedInputError(path, fmt.Sprintf("thread nests deeper than %d levels", maxDepth))
	}
	text, err := stringField(m, path, "text")
	if err != nil {
		return nil, err
	}
	author, err := stringField(m, path, "author")
	if err != nil {
		return nil, err
	}
	c := New(text, author)

	if v, ok := m["is_deleted"]; ok && v != nil {
		deleted, ok := v.(bool)
		if !ok {
			return nil, NewTypeMismatchError(fmt.Sprintf("%s is %T, not a boolean", fieldPath(path, "is_deleted"), v))
		}
		c.deleted = deleted
	}

	v, ok := m["replies"]
	if !ok || v == nil {
		return c, nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, NewTypeMismatchError(fmt.Sprintf("%s is %T, not a list", fieldPath(path, "replies"), v))
	}
	for i, item := range list {
		itemPath := fmt.Sprintf("%s[%d]", fieldPath(path, "replies"), i)
		rm, ok := item.(map[string]interface{})
		if !ok {
			return nil, NewTypeMismatchError(fmt.Sprintf("%s is %T, not a comment", itemPath, item))
		}
		reply, err := fromMap(rm, itemPath, depth+1, maxDepth)
		if err != nil {
			return nil, err
		}
		if err := c.AddReply(reply); err != nil {
			return nil, err
		}
	}
	return c, nil
}
