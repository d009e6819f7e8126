package keplergl

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// layout remembers which members a decoded object had. Records built in
// code have a nil layout and encode with the usual omitempty/omitzero
// rules.
type layout struct {
	present map[string]bool
	null    map[string]bool
}

type recordField struct {
	index     int
	name      string
	omitEmpty bool
	omitZero  bool
}

var recordFieldCache sync.Map // reflect.Type -> []recordField

// recordFields lists the exported json members of a struct type.
func recordFields(t reflect.Type) []recordField {
	if f, ok := recordFieldCache.Load(t); ok {
		return f.([]recordField)
	}
	var fields []recordField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		tag := strings.Split(sf.Tag.Get("json"), ",")
		if tag[0] == "-" {
			continue
		}
		f := recordField{index: i, name: tag[0]}
		if f.name == "" {
			f.name = sf.Name
		}
		for _, opt := range tag[1:] {
			switch opt {
			case "omitempty":
				f.omitEmpty = true
			case "omitzero":
				f.omitZero = true
			}
		}
		fields = append(fields, f)
	}
	recordFieldCache.Store(t, fields)
	return fields
}

func isNullJSON(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), nullLiteral)
}

type zeroer interface{ IsZero() bool }

func isZero(v reflect.Value) bool {
	if z, ok := v.Interface().(zeroer); ok {
		return z.IsZero()
	}
	return v.IsZero()
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}

// omit reports whether member f with value v is left out. A decoded record
// writes the members it was decoded with plus those set since.
func (l layout) omit(f recordField, v reflect.Value) bool {
	switch {
	case l.present == nil:
		return (f.omitEmpty && isEmpty(v)) || (f.omitZero && isZero(v))
	case !l.present[f.name]:
		return isZero(v)
	default:
		_, opt := v.Interface().(zeroer)
		return opt && isZero(v)
	}
}

// marshal encodes v without escaping HTML characters.
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// decodeRecord decodes the object b into fields, a pointer to a method-less
// copy of the record type, and records its layout and unknown members.
// null leaves the record untouched.
func decodeRecord(b []byte, fields interface{}, lay *layout, extra *map[string]json.RawMessage) error {
	if isNullJSON(b) {
		return nil
	}
	if err := json.Unmarshal(b, fields); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}

	known := map[string]bool{}
	for _, f := range recordFields(reflect.TypeOf(fields).Elem()) {
		known[f.name] = true
	}
	l := layout{present: make(map[string]bool, len(all))}
	var ex map[string]json.RawMessage
	for k, raw := range all {
		if !known[k] {
			if ex == nil {
				ex = make(map[string]json.RawMessage)
			}
			ex[k] = raw
			continue
		}
		l.present[k] = true
		if isNullJSON(raw) {
			if l.null == nil {
				l.null = make(map[string]bool)
			}
			l.null[k] = true
		}
	}
	*lay, *extra = l, ex
	return nil
}

// encodeRecord writes the struct v as an object: known members in field
// order, then the unknown ones in key order.
func encodeRecord(v reflect.Value, lay layout, extra map[string]json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	write := func(name string, raw []byte) error {
		if n > 0 {
			buf.WriteByte(',')
		}
		n++
		kb, err := marshal(name)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(raw)
		return nil
	}

	for _, f := range recordFields(v.Type()) {
		fv := v.Field(f.index)
		if lay.null[f.name] && isZero(fv) {
			if err := write(f.name, nullLiteral); err != nil {
				return nil, err
			}
			continue
		}
		if lay.omit(f, fv) {
			continue
		}
		raw, err := marshal(fv.Interface())
		if err != nil {
			return nil, err
		}
		if err := write(f.name, raw); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := write(k, extra[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
