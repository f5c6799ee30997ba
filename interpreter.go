package fakeskema

import "log/slog"

// Interpreter holds one document generated from a schema. The whole schema
// is walked by New; Document only reads the cached result.
type Interpreter struct {
	doc *Document
}

// New walks schema and returns an Interpreter holding the generated document.
//
// defaultNullablePercentage applies to nullable nodes that carry no non-zero
// NullablePercentage of their own. refs may be nil. The walk stops at the
// first failure and the returned error is Issues.
func New(schema Schema, defaultNullablePercentage float64, refs References, opts ...Option) (*Interpreter, error) {
	cfg := newConfig(opts)
	if refs == nil {
		refs = References{}
	}
	w := &walker{
		refs:       refs,
		gen:        cfg.gen,
		rand:       cfg.rand,
		defaultPct: defaultNullablePercentage,
	}
	doc, err := w.fields(schema, RootPath())
	if err != nil {
		cfg.log.Debug("fakeskema: walk failed", slog.String("err", err.Error()))
		return nil, err
	}
	cfg.log.Debug("fakeskema: document generated",
		slog.Int("fields", doc.Len()),
		slog.Int("nodes", w.nodes),
		slog.Int("nulls", w.nulls))
	return &Interpreter{doc: doc}, nil
}

// Document returns the generated document. Every call returns the same value.
func (in *Interpreter) Document() *Document { return in.doc }

// Generate is a shorthand for New(...).Document().
func Generate(schema Schema, defaultNullablePercentage float64, refs References, opts ...Option) (*Document, error) {
	in, err := New(schema, defaultNullablePercentage, refs, opts...)
	if err != nil {
		return nil, err
	}
	return in.Document(), nil
}
