package schemaio

import "fmt"

// object is a decoded mapping that remembers key order. Both the JSON and
// the YAML readers produce object, []any and scalars (string, bool, int64,
// float64, nil).
type object struct {
	keys   []string
	values map[string]any
}

func newObject(n int) *object {
	return &object{keys: make([]string, 0, n), values: make(map[string]any, n)}
}

func (o *object) set(k string, v any) {
	if _, ok := o.values[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.values[k] = v
}

func (o *object) get(k string) (any, bool) {
	v, ok := o.values[k]
	return v, ok
}

// DuplicateKeyError reports a key declared twice in one mapping. Line and
// column are zero when the reader cannot tell (JSON).
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("duplicate key %q", e.Key)
	}
	return fmt.Sprintf("duplicate key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// plain converts ordered values into map[string]any trees.
func plain(v any) any {
	switch t := v.(type) {
	case *object:
		m := make(map[string]any, len(t.keys))
		for _, k := range t.keys {
			m[k] = plain(t.values[k])
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = plain(t[i])
		}
		return out
	}
	return v
}
