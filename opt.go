package keplergl

import (
	"bytes"
	"encoding/json"
)

type optState uint8

const (
	absent optState = iota
	null
	present
)

// Opt is a document member that may be missing, explicitly null or set.
// Tag fields with `json:",omitzero"` so missing members stay missing.
type Opt[T any] struct {
	v     T
	state optState
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, state: present}
}

func Null[T any]() Opt[T] {
	return Opt[T]{state: null}
}

// Get returns the value and whether it is set.
func (o Opt[T]) Get() (T, bool) {
	return o.v, o.state == present
}

// Or returns the value or def when it is missing or null.
func (o Opt[T]) Or(def T) T {
	if o.state == present {
		return o.v
	}
	return def
}

func (o Opt[T]) IsSet() bool  { return o.state == present }
func (o Opt[T]) IsNull() bool { return o.state == null }

// IsZero reports a missing member. Used by omitzero and yaml omitempty.
func (o Opt[T]) IsZero() bool { return o.state == absent }

var nullLiteral = []byte("null")

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if o.state != present {
		return nullLiteral, nil
	}
	return marshal(o.v)
}

func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	var zero T
	if bytes.Equal(bytes.TrimSpace(b), nullLiteral) {
		o.v, o.state = zero, null
		return nil
	}
	v := zero
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.v, o.state = v, present
	return nil
}
