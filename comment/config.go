package comment

import (
	"fmt"
	"strings"
)

// Config controls how threads are rendered and how much nesting Decode
// accepts from untrusted input.
type Config struct {
	// Indent is written once per level of nesting by Display.
	Indent string

	// MaxDecodeDepth is the deepest thread Decode and FromMap will accept.
	// A lone comment has depth 1. Zero means DefaultMaxDecodeDepth.
	MaxDecodeDepth int
}

const (
	DefaultIndent         = "    "
	DefaultMaxDecodeDepth = 10000
)

func DefaultConfig() Config {
	return Config{Indent: DefaultIndent, MaxDecodeDepth: DefaultMaxDecodeDepth}
}

// NewConfig validates and returns a Config.
func NewConfig(indent string, maxDecodeDepth int) (Config, error) {
	if strings.ContainsAny(indent, "\r\n") {
		return Config{}, NewInvalidConfigError("indent cannot contain a line break")
	}
	if maxDecodeDepth < 1 {
		return Config{}, NewInvalidConfigError(fmt.Sprintf("maxDecodeDepth must be at least 1, got %d", maxDecodeDepth))
	}
	return Config{Indent: indent, MaxDecodeDepth: maxDecodeDepth}, nil
}
