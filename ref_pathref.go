package fakeskema

import (
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way while the interpreter
// descends into a schema.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code string, kv ...any) Issue
}

// RootPath returns the empty path ("/").
func RootPath() PathRef { return &pathRef{parts: nil} }

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Issue builds an Issue at this path from alternating key/value params.
func (p *pathRef) Issue(code string, kv ...any) Issue {
	var m map[string]any
	if len(kv) >= 2 {
		m = make(map[string]any, len(kv)/2)
	}
	for i := 0; i+1 < len(kv); i += 2 {
		k, _ := kv[i].(string)
		m[k] = kv[i+1]
	}
	return IssueAt(p, code, m)
}
