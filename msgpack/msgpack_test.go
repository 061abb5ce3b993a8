package msgpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type pair struct {
	Name  string `codec:"name"`
	Count int    `codec:"count"`
}

func TestRoundTripStruct(t *testing.T) {
	enc, err := EncodeCanonical(pair{Name: "alfa", Count: 3})
	require.NoError(t, err)

	var p pair
	require.NoError(t, Decode(&p, enc))
	require.Equal(t, pair{Name: "alfa", Count: 3}, p)
}

func TestCanonicalIsStable(t *testing.T) {
	m1 := map[string]interface{}{"b": 1, "a": "x", "c": []interface{}{true}}
	m2 := map[string]interface{}{"c": []interface{}{true}, "a": "x", "b": 1}
	for i := 0; i < 10; i++ {
		e1, err := EncodeCanonical(m1)
		require.NoError(t, err)
		e2, err := EncodeCanonical(m2)
		require.NoError(t, err)
		require.Equal(t, e1, e2)
	}
}

func TestDecodeSchemaless(t *testing.T) {
	enc, err := Encode(map[string]interface{}{"text": "hi", "replies": []interface{}{}})
	require.NoError(t, err)

	var out interface{}
	require.NoError(t, Decode(&out, enc))
	m, ok := out.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "hi", m["text"])
	require.Len(t, m["replies"], 0)
}
