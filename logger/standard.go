package logger

import (
	"context"
	"io"
	"os"
	"sync"

	logging "github.com/keybase/go-logging"
	"github.com/pkg/errors"
)

const (
	fancyFormat = "%{color}%{time:15:04:05.000000} ▶ [%{level:.4s} %{module} %{shortfile}] %{id:03x}%{color:reset} %{message}"
	plainFormat = "[%{level:.4s}] %{id:03x} %{message}"
	fileFormat  = "%{time:2006-01-02T15:04:05.000000Z07:00} ▶ [%{level:.4s} %{module} %{shortfile}] %{id:03x} %{message}"
)

// Standard is a Logger backed by go-logging.
type Standard struct {
	internal *logging.Logger
	module   string

	configureMutex sync.Mutex
	out            io.Closer
}

var _ Logger = (*Standard)(nil)

// New creates a new Standard logger for module. Output goes wherever
// go-logging currently points until Configure is called.
func New(module string) *Standard {
	return NewWithCallDepth(module, 0)
}

// NewWithCallDepth is like New but skips extraCallDepth additional frames
// when reporting the caller's file and line.
func NewWithCallDepth(module string, extraCallDepth int) *Standard {
	log := logging.MustGetLogger(module)
	log.ExtraCalldepth = 1 + extraCallDepth
	return &Standard{internal: log, module: module}
}

// setBackend points go-logging at w. The backend and formatter are global
// to go-logging; only the level is per module.
func (log *Standard) setBackend(w io.Writer, format string, level logging.Level) {
	logging.SetBackend(logging.NewLogBackend(w, "", 0))
	logging.SetFormatter(logging.MustStringFormatter(format))
	logging.SetLevel(level, log.module)
}

func (log *Standard) Debug(fmt string, arg ...interface{}) {
	if log.internal.IsEnabledFor(logging.DEBUG) {
		log.internal.Debugf(fmt, arg...)
	}
}

func (log *Standard) Info(fmt string, arg ...interface{}) {
	if log.internal.IsEnabledFor(logging.INFO) {
		log.internal.Infof(fmt, arg...)
	}
}

func (log *Standard) Warning(fmt string, arg ...interface{}) {
	if log.internal.IsEnabledFor(logging.WARNING) {
		log.internal.Warningf(fmt, arg...)
	}
}

func (log *Standard) Error(fmt string, arg ...interface{}) {
	if log.internal.IsEnabledFor(logging.ERROR) {
		log.internal.Errorf(fmt, arg...)
	}
}

func (log *Standard) CDebugf(ctx context.Context, fmt string, arg ...interface{}) {
	if log.internal.IsEnabledFor(logging.DEBUG) {
		log.internal.Debugf(prepareString(ctx, fmt), arg...)
	}
}

func (log *Standard) CInfof(ctx context.Context, fmt string, arg ...interface{}) {
	if log.internal.IsEnabledFor(logging.INFO) {
		log.internal.Infof(prepareString(ctx, fmt), arg...)
	}
}

func (log *Standard) CWarningf(ctx context.Context, fmt string, arg ...interface{}) {
	if log.internal.IsEnabledFor(logging.WARNING) {
		log.internal.Warningf(prepareString(ctx, fmt), arg...)
	}
}

func (log *Standard) CErrorf(ctx context.Context, fmt string, arg ...interface{}) {
	if log.internal.IsEnabledFor(logging.ERROR) {
		log.internal.Errorf(prepareString(ctx, fmt), arg...)
	}
}

func (log *Standard) CloneWithAddedDepth(depth int) Logger {
	internal := *log.internal
	internal.ExtraCalldepth += depth
	return &Standard{internal: &internal, module: log.module}
}

// Configure picks the output style ("fancy", "plain" or "file"), the level
// (debug or info) and the destination. An empty filename means stderr.
func (log *Standard) Configure(style string, debug bool, filename string) error {
	log.configureMutex.Lock()
	defer log.configureMutex.Unlock()

	level := logging.INFO
	if debug {
		level = logging.DEBUG
	}

	var format string
	switch style {
	case "fancy":
		format = fancyFormat
	case "plain", "":
		format = plainFormat
	case "file":
		format = fileFormat
	default:
		return errors.Errorf("unknown log style %q", style)
	}

	var w io.Writer = os.Stderr
	if filename != "" {
		f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return errors.Wrapf(err, "opening log file %s", filename)
		}
		if log.out != nil {
			log.out.Close()
		}
		log.out = f
		w = f
	}
	log.setBackend(w, format, level)
	return nil
}
