package logger

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type BaseLogger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type ContextInterface interface {
	BaseLogger
	Ctx() context.Context
	UpdateContextToLoggerContext(context.Context) ContextInterface
}

type Logger interface {
	BaseLogger
	// CDebugf logs a message at debug level, with a context and
	// formatting args.
	CDebugf(ctx context.Context, format string, args ...interface{})
	// CInfof logs a message at info level, with a context and formatting args.
	CInfof(ctx context.Context, format string, args ...interface{})
	CWarningf(ctx context.Context, format string, args ...interface{})
	CErrorf(ctx context.Context, format string, args ...interface{})

	// Returns a logger that is like the current one, except with
	// more logging depth added on.
	CloneWithAddedDepth(depth int) Logger
	// Configure sets the style, debug level, and filename of the
	// logger. An empty filename keeps writing to stderr.
	Configure(style string, debug bool, filename string) error
}

// Context pairs a context.Context with the Logger that should be used for
// everything done on its behalf.
type Context struct {
	ctx context.Context
	Logger
}

func NewContext(c context.Context, l Logger) Context {
	return Context{ctx: c, Logger: l}
}

var _ ContextInterface = Context{}

func (c Context) Ctx() context.Context {
	return c.ctx
}

func (c Context) UpdateContextToLoggerContext(ctx context.Context) ContextInterface {
	return NewContext(ctx, c.Logger)
}

func (c Context) Debug(format string, arg ...interface{}) {
	c.Logger.CloneWithAddedDepth(1).CDebugf(c.ctx, format, arg...)
}

func (c Context) Info(format string, arg ...interface{}) {
	c.Logger.CloneWithAddedDepth(1).CInfof(c.ctx, format, arg...)
}

func (c Context) Warning(format string, arg ...interface{}) {
	c.Logger.CloneWithAddedDepth(1).CWarningf(c.ctx, format, arg...)
}

func (c Context) Error(format string, arg ...interface{}) {
	c.Logger.CloneWithAddedDepth(1).CErrorf(c.ctx, format, arg...)
}

type tagsKey struct{}

// WithTag returns a copy of ctx carrying key=value. Context-aware log calls
// prefix their message with every tag on the context.
func WithTag(ctx context.Context, key, value string) context.Context {
	old, _ := ctx.Value(tagsKey{}).(map[string]string)
	tags := make(map[string]string, len(old)+1)
	for k, v := range old {
		tags[k] = v
	}
	tags[key] = value
	return context.WithValue(ctx, tagsKey{}, tags)
}

func prepareString(ctx context.Context, fmts string) string {
	if ctx == nil {
		return fmts
	}
	tags, ok := ctx.Value(tagsKey{}).(map[string]string)
	if !ok || len(tags) == 0 {
		return fmts
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%s", k, tags[k])
	}
	// tag values must not be read as format verbs
	prefix := strings.ReplaceAll(strings.Join(parts, " "), "%", "%%")
	return "[" + prefix + "] " + fmts
}

type Null struct{}

func NewNull() *Null {
	return &Null{}
}

// Verify Null fully implements the Logger interface.
var _ Logger = (*Null)(nil)

func (l *Null) Debug(format string, args ...interface{})                      {}
func (l *Null) Info(format string, args ...interface{})                       {}
func (l *Null) Warning(format string, args ...interface{})                    {}
func (l *Null) Error(format string, args ...interface{})                      {}
func (l *Null) CDebugf(ctx context.Context, fmt string, arg ...interface{})   {}
func (l *Null) CInfof(ctx context.Context, fmt string, arg ...interface{})    {}
func (l *Null) CWarningf(ctx context.Context, fmt string, arg ...interface{}) {}
func (l *Null) CErrorf(ctx context.Context, fmt string, arg ...interface{})   {}
func (l *Null) Configure(style string, debug bool, filename string) error     { return nil }

func (l *Null) CloneWithAddedDepth(depth int) Logger { return l }
