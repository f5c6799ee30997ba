package dsl

import (
	"fmt"

	fakeskema "github.com/reoring/fakeskema"
)

type objectBuilder struct {
	fields []fakeskema.Field
	index  map[string]int
	err    error
}

type fieldStep struct {
	b *objectBuilder
	i int
}

// Object creates a builder for an object node.
func Object() *objectBuilder { return &objectBuilder{index: map[string]int{}} }

// Schema creates a builder for a root schema. It shares the object builder;
// finish it with BuildSchema or MustBuildSchema.
func Schema() *objectBuilder { return Object() }

// Field appends a field. Redeclaring a name is reported by Build.
func (b *objectBuilder) Field(name string, n fakeskema.Node) *fieldStep {
	if _, dup := b.index[name]; dup && b.err == nil {
		b.err = fmt.Errorf("dsl: duplicate field %q", name)
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, fakeskema.Field{Name: name, Node: n})
	return &fieldStep{b: b, i: len(b.fields) - 1}
}

// Nullable marks the current field nullable; an optional percentage
// overrides the interpreter default.
func (f *fieldStep) Nullable(pct ...float64) *objectBuilder {
	f.b.fields[f.i].Node = Nullable(f.b.fields[f.i].Node, pct...)
	return f.b
}

func (f *fieldStep) Field(name string, n fakeskema.Node) *fieldStep { return f.b.Field(name, n) }
func (f *fieldStep) Build() (fakeskema.Node, error)                  { return f.b.Build() }
func (f *fieldStep) MustBuild() fakeskema.Node                       { return f.b.MustBuild() }
func (f *fieldStep) BuildSchema() (fakeskema.Schema, error)          { return f.b.BuildSchema() }
func (f *fieldStep) MustBuildSchema() fakeskema.Schema               { return f.b.MustBuildSchema() }

// Build returns an object node holding the declared fields.
func (b *objectBuilder) Build() (fakeskema.Node, error) {
	if b.err != nil {
		return fakeskema.Node{}, b.err
	}
	props := append([]fakeskema.Field(nil), b.fields...)
	return fakeskema.Node{Type: fakeskema.KindObject, Options: fakeskema.ObjectOptions{Properties: props}}, nil
}

// MustBuild panics on error.
func (b *objectBuilder) MustBuild() fakeskema.Node {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}

// BuildSchema returns the declared fields as a root schema.
func (b *objectBuilder) BuildSchema() (fakeskema.Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	return append(fakeskema.Schema(nil), b.fields...), nil
}

// MustBuildSchema panics on error.
func (b *objectBuilder) MustBuildSchema() fakeskema.Schema {
	s, err := b.BuildSchema()
	if err != nil {
		panic(err)
	}
	return s
}
