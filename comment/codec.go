package comment

import (
	"fmt"
	"reflect"

	"github.com/arborhw/arbor/logger"
	"github.com/arborhw/arbor/msgpack"
	"github.com/keybase/go-codec/codec"
	"github.com/pkg/errors"
)

// Format names a wire encoding of a Record.
type Format int

const (
	FormatJSON Format = iota + 1
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	default:
		return 0, errors.Errorf("unknown format %q", s)
	}
}

func jsonHandle() *codec.JsonHandle {
	var jh codec.JsonHandle
	jh.Canonical = true
	jh.MapType = reflect.TypeOf(map[string]interface{}(nil))
	return &jh
}

// Encode serializes the thread rooted at c. Map keys are written in sorted
// order so equal threads encode to equal bytes.
func (c *Comment) Encode(f Format) ([]byte, error) {
	rec := c.Serialize()
	switch f {
	case FormatMsgpack:
		enc, err := msgpack.EncodeCanonical(rec)
		return enc, errors.Wrap(err, "msgpack encoding thread")
	case FormatJSON:
		var enc []byte
		err := codec.NewEncoderBytes(&enc, jsonHandle()).Encode(rec)
		return enc, errors.Wrap(err, "json encoding thread")
	default:
		return nil, errors.Errorf("cannot encode to %v", f)
	}
}

func (c *Comment) EncodeMsgpack() ([]byte, error) {
	return c.Encode(FormatMsgpack)
}

func (c *Comment) EncodeJSON() ([]byte, error) {
	return c.Encode(FormatJSON)
}

// Decode parses data as a thread. The document is decoded schema-less and
// then validated field by field, so a missing field is reported as a
// MalformedInputError and a field of the wrong type as a TypeMismatchError
// (use errors.Cause to get at them). A cfg.MaxDecodeDepth of zero, as in
// the zero Config, means DefaultMaxDecodeDepth.
func Decode(ctx logger.ContextInterface, cfg Config, data []byte, f Format) (*Comment, error) {
	var raw interface{}
	var err error
	switch f {
	case FormatMsgpack:
		err = msgpack.Decode(&raw, data)
	case FormatJSON:
		err = codec.NewDecoderBytes(data, jsonHandle()).Decode(&raw)
	default:
		return nil, errors.Errorf("cannot decode from %v", f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%v decoding thread", f)
	}

	m, ok := raw.(map[string]interface{})
	if !ok {
		err := NewTypeMismatchError(fmt.Sprintf("thread root is %T, not a comment", raw))
		ctx.Warning("rejecting %v thread: %v", f, err)
		return nil, errors.WithStack(err)
	}
	c, err := fromMap(m, "", 1, cfg.MaxDecodeDepth)
	if err != nil {
		ctx.Warning("rejecting %v thread: %v", f, err)
		return nil, errors.WithStack(err)
	}
	ctx.Debug("decoded %v thread: %d replies, depth %d", f, c.CountReplies(), c.MaxDepth())
	return c, nil
}
