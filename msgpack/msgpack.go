// Package msgpack wraps go-codec with the handle settings used for every
// msgpack payload in this module.
package msgpack

import (
	"reflect"

	"github.com/keybase/go-codec/codec"
)

func codecHandle() *codec.MsgpackHandle {
	var mh codec.MsgpackHandle
	mh.WriteExt = true
	mh.RawToString = true
	mh.MapType = reflect.TypeOf(map[string]interface{}(nil))
	return &mh
}

// EncodeCanonical encodes src with map keys sorted, so equal values always
// produce equal bytes.
func EncodeCanonical(src interface{}) (dst []byte, err error) {
	ch := codecHandle()
	ch.Canonical = true
	err = codec.NewEncoderBytes(&dst, ch).Encode(src)
	return dst, err
}

func Encode(src interface{}) (dst []byte, err error) {
	err = codec.NewEncoderBytes(&dst, codecHandle()).Encode(src)
	return dst, err
}

// Decode decodes src into dst. Schema-less maps decode as
// map[string]interface{} and raw strings as string.
func Decode(dst interface{}, src []byte) error {
	return codec.NewDecoderBytes(src, codecHandle()).Decode(dst)
}
