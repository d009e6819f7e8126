package keplergl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type optHolder struct {
	A Opt[string]  `json:"a,omitzero"`
	B Opt[float64] `json:"b,omitzero"`
	C Opt[[]int]   `json:"c,omitzero"`
}

func TestOptStates(t *testing.T) {
	var h optHolder
	require.NoError(t, json.Unmarshal([]byte(`{"a": null, "b": 2.5}`), &h))

	assert.True(t, h.A.IsNull())
	assert.False(t, h.A.IsSet())
	assert.Equal(t, "x", h.A.Or("x"))

	v, ok := h.B.Get()
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	assert.True(t, h.C.IsZero())
	assert.False(t, h.C.IsNull())

	b, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": null, "b": 2.5}`, string(b))
}

func TestOptConstructors(t *testing.T) {
	b, err := json.Marshal(optHolder{A: Some("s"), B: Null[float64](), C: Some([]int{})})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "s", "b": null, "c": []}`, string(b))

	b, err = json.Marshal(optHolder{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))
}

func TestOptTypeMismatch(t *testing.T) {
	var h optHolder
	assert.Error(t, json.Unmarshal([]byte(`{"b": "nope"}`), &h))
}
