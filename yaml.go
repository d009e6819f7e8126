package keplergl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// YAML documents go through the JSON codec: they are converted to a JSON
// tree first so null members and unknown keys behave the same in both
// formats.

// ParseYAML decodes a YAML document.
func ParseYAML(r io.Reader) (*Document, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var root yaml.MapSlice
	if err := yaml.Unmarshal(input, &root); err != nil {
		return nil, fmt.Errorf("decoding map config: %w", err)
	}
	tree, err := yamlToJSON(root)
	if err != nil {
		return nil, fmt.Errorf("decoding map config: %w", err)
	}
	b, err := json.Marshal(tree)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(b))
}

// EncodeYAML writes d as YAML, members in the same order as the JSON form.
func (d *Document) EncodeYAML(w io.Writer) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	tree, err := jsonToYAML(dec)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func yamlToJSON(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case yaml.MapSlice:
		m := make(map[string]interface{}, len(v))
		for _, item := range v {
			val, err := yamlToJSON(item.Value)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprint(item.Key)] = val
		}
		return m, nil
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, item := range v {
			val, err := yamlToJSON(item)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprint(k)] = val
		}
		return m, nil
	case []interface{}:
		l := make([]interface{}, len(v))
		for i := range v {
			val, err := yamlToJSON(v[i])
			if err != nil {
				return nil, err
			}
			l[i] = val
		}
		return l, nil
	case nil, string, bool, int, int64, uint64, float64:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported YAML value %v (%T)", v, v)
	}
}

func jsonToYAML(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := yaml.MapSlice{}
			for dec.More() {
				k, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := jsonToYAML(dec)
				if err != nil {
					return nil, err
				}
				m = append(m, yaml.MapItem{Key: k, Value: v})
			}
			_, err := dec.Token()
			return m, err
		case '[':
			l := []interface{}{}
			for dec.More() {
				v, err := jsonToYAML(dec)
				if err != nil {
					return nil, err
				}
				l = append(l, v)
			}
			_, err := dec.Token()
			return l, err
		}
		return nil, fmt.Errorf("unexpected %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		return t.Float64()
	default:
		return t, nil
	}
}
