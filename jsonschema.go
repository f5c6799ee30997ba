package fakeskema

import (
	"regexp"

	js "github.com/reoring/fakeskema/jsonschema"
)

// JSONSchema describes the documents the interpreter can produce for s.
// Options and references are checked the same way as during generation and
// fail with the same issue codes. Errors raised by the Generator itself (for
// example a number range with min above max) are not predicted.
func (s Schema) JSONSchema(defaultNullablePercentage float64, refs References) (*js.Schema, error) {
	if refs == nil {
		refs = References{}
	}
	pr := projector{w: &walker{refs: refs}, defaultPct: defaultNullablePercentage}
	root, err := pr.object(s, RootPath())
	if err != nil {
		return nil, err
	}
	root.Schema = js.Draft
	return root, nil
}

type projector struct {
	w          *walker
	defaultPct float64
}

func (pr projector) object(fs []Field, p PathRef) (*js.Schema, error) {
	out := &js.Schema{
		Type:                 "object",
		Properties:           make(map[string]*js.Schema, len(fs)),
		AdditionalProperties: false,
	}
	for _, f := range fs {
		sub, err := pr.node(f.Node, p.Field(f.Name))
		if err != nil {
			return nil, err
		}
		out.Properties[f.Name] = sub
		// Every declared field is emitted, null or not.
		out.Required = append(out.Required, f.Name)
	}
	return out, nil
}

func (pr projector) node(n Node, p PathRef) (*js.Schema, error) {
	s, err := pr.kind(n, p)
	if err != nil {
		return nil, err
	}
	if pr.mayBeNull(n) {
		return js.OrNull(s), nil
	}
	return s, nil
}

func (pr projector) mayBeNull(n Node) bool {
	if n.NullablePercentage != nil && *n.NullablePercentage != 0 {
		return *n.NullablePercentage > 0
	}
	return n.Nullable && pr.defaultPct > 0
}

func (pr projector) kind(n Node, p PathRef) (*js.Schema, error) {
	switch n.Type {
	case KindBoolean:
		return &js.Schema{Type: "boolean"}, nil
	case KindURL:
		return &js.Schema{Type: "string", Format: "uri"}, nil
	case KindISOTimestamp:
		if _, _, err := pr.w.timeRange(n.Options, p); err != nil {
			return nil, err
		}
		return &js.Schema{Type: "string", Format: "date-time"}, nil
	case KindDelimitedString:
		if _, err := pr.w.partGroups(n.Options, p); err != nil {
			return nil, err
		}
		return &js.Schema{Type: "string"}, nil
	case KindFormatString:
		return pr.format(n.Options, p)
	case KindText:
		lo, hi, err := pr.w.bounds(n.Options, p)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "string", MinLength: toIntPtr(lo), MaxLength: toIntPtr(hi)}, nil
	case KindNumericString:
		if _, _, err := pr.w.bounds(n.Options, p); err != nil {
			return nil, err
		}
		return &js.Schema{Type: "string", Pattern: "^-?[0-9]+$"}, nil
	case KindNumber:
		lo, hi, err := pr.w.bounds(n.Options, p)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "integer", Minimum: lo, Maximum: hi}, nil
	case KindFile:
		ext, err := pr.w.extension(n.Options, p)
		if err != nil {
			return nil, err
		}
		out := &js.Schema{Type: "string"}
		if ext != "" {
			out.Pattern = regexp.QuoteMeta("."+ext) + "$"
		}
		return out, nil
	case KindEnum:
		return pr.enum(n.Options, p)
	case KindObject:
		opts, _ := optionsAs[ObjectOptions](n.Options)
		return pr.object(opts.Properties, p)
	case KindArray:
		return pr.array(n.Options, p)
	default:
		return nil, fail(p, CodeInvalidType, "type", string(n.Type))
	}
}

func (pr projector) enum(o Options, p PathRef) (*js.Schema, error) {
	seq, err := pr.w.enumCandidates(o, p)
	if err != nil {
		return nil, err
	}
	return &js.Schema{Enum: append([]any(nil), seq...)}, nil
}

// format projects every argument so their errors surface; the result is a
// plain string.
func (pr projector) format(o Options, p PathRef) (*js.Schema, error) {
	opts, err := formatOptions(o, p)
	if err != nil {
		return nil, err
	}
	for i, a := range opts.Args {
		if _, err := pr.node(a, p.Index(i)); err != nil {
			return nil, err
		}
	}
	return &js.Schema{Type: "string"}, nil
}

func (pr projector) array(o Options, p PathRef) (*js.Schema, error) {
	opts, ok := optionsAs[ArrayOptions](o)
	if !ok || opts.Element == nil {
		return nil, fail(p, CodeArraySchemaMissing)
	}
	minN, maxN, err := pr.w.arrayRange(opts, p)
	if err != nil {
		return nil, err
	}
	// Element nullability is not applied during generation either.
	items, err := pr.kind(*opts.Element, p.Index(0))
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: items, MinItems: toIntPtr(&minN), MaxItems: toIntPtr(&maxN)}, nil
}
