package logger

import (
	"context"
	"fmt"
	"testing"
)

// TestLogger routes log output through testing.TB so it only shows up for
// failing or verbose tests.
type TestLogger struct {
	tb testing.TB
}

var _ Logger = (*TestLogger)(nil)

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (t *TestLogger) log(ctx context.Context, level string, fmts string, arg ...interface{}) {
	t.tb.Helper()
	t.tb.Logf("[%s] %s", level, fmt.Sprintf(prepareString(ctx, fmts), arg...))
}

func (t *TestLogger) Debug(fmts string, arg ...interface{}) {
	t.tb.Helper()
	t.log(context.TODO(), "DEBU", fmts, arg...)
}

func (t *TestLogger) Info(fmts string, arg ...interface{}) {
	t.tb.Helper()
	t.log(context.TODO(), "INFO", fmts, arg...)
}

func (t *TestLogger) Warning(fmts string, arg ...interface{}) {
	t.tb.Helper()
	t.log(context.TODO(), "WARN", fmts, arg...)
}

func (t *TestLogger) Error(fmts string, arg ...interface{}) {
	t.tb.Helper()
	t.log(context.TODO(), "ERRO", fmts, arg...)
}

func (t *TestLogger) CDebugf(ctx context.Context, fmts string, arg ...interface{}) {
	t.tb.Helper()
	t.log(ctx, "DEBU", fmts, arg...)
}

func (t *TestLogger) CInfof(ctx context.Context, fmts string, arg ...interface{}) {
	t.tb.Helper()
	t.log(ctx, "INFO", fmts, arg...)
}

func (t *TestLogger) CWarningf(ctx context.Context, fmts string, arg ...interface{}) {
	t.tb.Helper()
	t.log(ctx, "WARN", fmts, arg...)
}

func (t *TestLogger) CErrorf(ctx context.Context, fmts string, arg ...interface{}) {
	t.tb.Helper()
	t.log(ctx, "ERRO", fmts, arg...)
}

func (t *TestLogger) CloneWithAddedDepth(depth int) Logger { return t }

func (t *TestLogger) Configure(style string, debug bool, filename string) error { return nil }
