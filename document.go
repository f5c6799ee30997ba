package fakeskema

import (
	"bytes"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is an ordered mapping from field name to generated value. Values
// are nil, scalars, nested *Document or []any. A Document is not modified
// after the interpreter returns it.
type Document struct {
	keys   []string
	values map[string]any
}

func newDocument(n int) *Document {
	return &Document{keys: make([]string, 0, n), values: make(map[string]any, n)}
}

func (d *Document) set(key string, v any) {
	if _, dup := d.values[key]; !dup {
		d.keys = append(d.keys, key)
	}
	d.values[key] = v
}

// Len returns the number of fields.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns field names in declaration order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.keys...)
}

// Get returns the value of a field and whether it exists.
func (d *Document) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Range calls fn for each field in order until fn returns false.
func (d *Document) Range(fn func(key string, v any) bool) {
	if d == nil {
		return
	}
	for _, k := range d.keys {
		if !fn(k, d.values[k]) {
			return
		}
	}
}

// Map converts the document into plain map[string]any values recursively.
// Field order is lost.
func (d *Document) Map() map[string]any {
	if d == nil {
		return nil
	}
	out := make(map[string]any, len(d.keys))
	for _, k := range d.keys {
		out[k] = plain(d.values[k])
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case *Document:
		return t.Map()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = plain(t[i])
		}
		return out
	}
	return v
}

// MarshalJSON encodes the document as a JSON object in field order.
func (d *Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the document as a YAML mapping in field order.
func (d *Document) MarshalYAML() (any, error) {
	if d == nil {
		return nil, nil
	}
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range d.keys {
		kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		vn := &yaml.Node{}
		if err := vn.Encode(d.values[k]); err != nil {
			return nil, err
		}
		m.Content = append(m.Content, kn, vn)
	}
	return m, nil
}
