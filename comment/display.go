package comment

import (
	"fmt"
	"io"
	"strings"
)

// Line returns how c itself is shown: the tombstone text for a deleted
// comment, "author: text" otherwise.
func (c *Comment) Line() string {
	if c.deleted {
		return c.text
	}
	return fmt.Sprintf("%s: %s", c.author, c.text)
}

// Display writes the thread rooted at c to w, one comment per line, each
// level of nesting indented by one more cfg.Indent.
func (c *Comment) Display(w io.Writer, cfg Config) error {
	var err error
	c.walk(func(x *Comment, depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat(cfg.Indent, depth), x.Line())
	})
	return err
}

// Render is Display into a string.
func (c *Comment) Render(cfg Config) string {
	var sb strings.Builder
	// strings.Builder never fails a write
	_ = c.Display(&sb, cfg)
	return sb.String()
}
