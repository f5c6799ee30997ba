package fakeskema

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// walker carries the read-only context of one walk. refs is never written.
type walker struct {
	refs       References
	gen        Generator
	rand       RandomSource
	defaultPct float64

	nodes int
	nulls int
}

func fail(p PathRef, code string, kv ...any) error {
	return Issues{p.Issue(code, kv...)}
}

func invalidOptions(p PathRef, format string, a ...any) error {
	return fail(p, CodeInvalidOptions, "reason", fmt.Sprintf(format, a...))
}

func generatorFailed(p PathRef, err error) error {
	it := p.Issue(CodeGeneratorFailed, "reason", err.Error())
	it.Cause = fmt.Errorf("%w: %w", ErrGeneratorFailed, err)
	return Issues{it}
}

// fields resolves named nodes in order into a new document.
func (w *walker) fields(fs []Field, p PathRef) (*Document, error) {
	doc := newDocument(len(fs))
	for _, f := range fs {
		v, err := w.resolve(f.Node, p.Field(f.Name))
		if err != nil {
			return nil, err
		}
		doc.set(f.Name, v)
	}
	return doc, nil
}

// resolve applies the nullability draw, then dispatches on the node type.
func (w *walker) resolve(n Node, p PathRef) (any, error) {
	if w.drawNull(n) {
		w.nulls++
		return nil, nil
	}
	return w.dispatch(n, p)
}

// drawNull reports whether n resolves to null. A zero NullablePercentage is
// the same as an absent one.
func (w *walker) drawNull(n Node) bool {
	override := n.NullablePercentage != nil && *n.NullablePercentage != 0
	if !n.Nullable && !override {
		return false
	}
	pct := w.defaultPct
	if override {
		pct = *n.NullablePercentage
	}
	return w.rand.Float64() < pct
}

func (w *walker) dispatch(n Node, p PathRef) (any, error) {
	w.nodes++
	switch n.Type {
	case KindBoolean:
		return w.gen.Boolean(), nil
	case KindEnum:
		return w.enum(n.Options, p)
	case KindISOTimestamp:
		return w.timestamp(n.Options, p)
	case KindObject:
		return w.object(n.Options, p)
	case KindDelimitedString:
		return w.delimited(n.Options, p)
	case KindText:
		return w.text(n.Options, p)
	case KindNumericString:
		return w.numericString(n.Options, p)
	case KindNumber:
		return w.number(n.Options, p)
	case KindURL:
		return w.gen.URL(), nil
	case KindFile:
		return w.file(n.Options, p)
	case KindArray:
		return w.array(n.Options, p)
	case KindFormatString:
		return w.format(n.Options, p)
	default:
		return nil, fail(p, CodeInvalidType, "type", string(n.Type))
	}
}

// optionsAs unwraps a payload given by value or by pointer.
func optionsAs[T Options](o Options) (T, bool) {
	switch t := any(o).(type) {
	case T:
		return t, true
	case *T:
		if t != nil {
			return *t, true
		}
	}
	var zero T
	return zero, false
}

// deref resolves v when it is a reference expression and returns it
// unchanged otherwise.
func (w *walker) deref(v any, p PathRef) (any, error) {
	key, ok := RefKey(v)
	if !ok {
		return v, nil
	}
	rv, found := w.refs.lookup(key)
	if !found {
		return nil, fail(p, CodeReferenceKeyInvalid, "key", key)
	}
	return rv, nil
}

func (w *walker) object(o Options, p PathRef) (any, error) {
	opts, _ := optionsAs[ObjectOptions](o)
	return w.fields(opts.Properties, p)
}

func (w *walker) array(o Options, p PathRef) (any, error) {
	opts, ok := optionsAs[ArrayOptions](o)
	if !ok || opts.Element == nil {
		return nil, fail(p, CodeArraySchemaMissing)
	}
	minN, maxN, err := w.arrayRange(opts, p)
	if err != nil {
		return nil, err
	}
	count := int(math.Floor(w.rand.Float64()*float64(maxN-minN+1) + float64(minN)))
	out := make([]any, 0, count)
	for i := 0; i < count; i++ {
		// The element's own nullability is not applied; nested nodes keep theirs.
		v, err := w.dispatch(*opts.Element, p.Index(i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// arrayRange resolves the length bounds of an array. A missing min is 0 and
// a missing max equals min.
func (w *walker) arrayRange(opts ArrayOptions, p PathRef) (minN, maxN int64, err error) {
	lo, err := w.intBound(opts.Min, "min", p)
	if err != nil {
		return 0, 0, err
	}
	hi, err := w.intBound(opts.Max, "max", p)
	if err != nil {
		return 0, 0, err
	}
	if lo != nil {
		minN = *lo
	}
	maxN = minN
	if hi != nil {
		maxN = *hi
	}
	if minN < 0 || maxN < minN {
		return 0, 0, invalidOptions(p, "array bounds [%d, %d]", minN, maxN)
	}
	return minN, maxN, nil
}

func (w *walker) enum(o Options, p PathRef) (any, error) {
	candidates, err := w.enumCandidates(o, p)
	if err != nil {
		return nil, err
	}
	v, err := w.gen.Enum(candidates)
	if err != nil {
		return nil, generatorFailed(p, err)
	}
	return v, nil
}

func (w *walker) enumCandidates(o Options, p PathRef) ([]any, error) {
	opts, ok := optionsAs[EnumOptions](o)
	if !ok {
		return nil, invalidOptions(p, "enum requires options")
	}
	var candidates []any
	if key, isRef := RefKey(opts.Values); isRef {
		rv, err := w.deref(opts.Values, p)
		if err != nil {
			return nil, err
		}
		seq, ok := asSequence(rv)
		if !ok {
			return nil, fail(p, CodeReferencedValueMustBeArray, "key", key)
		}
		candidates = seq
	} else {
		seq, ok := asSequence(opts.Values)
		if !ok {
			return nil, invalidOptions(p, "enum options must be a list or a reference")
		}
		candidates = seq
	}
	if len(candidates) == 0 {
		return nil, invalidOptions(p, "enum has no candidates")
	}
	return candidates, nil
}

func (w *walker) delimited(o Options, p PathRef) (any, error) {
	groups, err := w.partGroups(o, p)
	if err != nil {
		return nil, err
	}
	opts, _ := optionsAs[DelimitedOptions](o)
	s, err := w.gen.DelimitedString(opts.Delimiter, groups...)
	if err != nil {
		return nil, generatorFailed(p, err)
	}
	return s, nil
}

// partGroups turns delimited-string parts into candidate groups: lists stay
// groups, references are resolved and literals become one-element groups.
func (w *walker) partGroups(o Options, p PathRef) ([][]any, error) {
	opts, ok := optionsAs[DelimitedOptions](o)
	if !ok {
		return nil, invalidOptions(p, "delimited-string requires delimiter and arrayOfOptions")
	}
	groups := make([][]any, 0, len(opts.Parts))
	for _, part := range opts.Parts {
		if seq, ok := asSequence(part); ok {
			groups = append(groups, seq)
			continue
		}
		if _, isRef := RefKey(part); isRef {
			rv, err := w.deref(part, p)
			if err != nil {
				return nil, err
			}
			if seq, ok := asSequence(rv); ok {
				groups = append(groups, seq)
			} else {
				groups = append(groups, []any{rv})
			}
			continue
		}
		groups = append(groups, []any{part})
	}
	return groups, nil
}

func (w *walker) format(o Options, p PathRef) (any, error) {
	opts, err := formatOptions(o, p)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	rest := opts.Format
	for i, a := range opts.Args {
		v, err := w.resolve(a, p.Index(i))
		if err != nil {
			return nil, err
		}
		at := strings.Index(rest, "{}")
		b.WriteString(rest[:at])
		b.WriteString(formatScalar(v))
		rest = rest[at+2:]
	}
	b.WriteString(rest)
	return b.String(), nil
}

// formatOptions checks a format-string payload before any argument is
// generated: composite arguments are rejected and placeholders must match
// the argument count.
func formatOptions(o Options, p PathRef) (FormatOptions, error) {
	opts, ok := optionsAs[FormatOptions](o)
	if !ok {
		return opts, invalidOptions(p, "format-string requires string and properties")
	}
	for i, a := range opts.Args {
		if a.Type == KindObject || a.Type == KindArray {
			return opts, fail(p.Index(i), CodeUnsupportedFormatArg, "type", string(a.Type))
		}
	}
	if n := strings.Count(opts.Format, "{}"); n != len(opts.Args) {
		return opts, invalidOptions(p, "format has %d placeholders for %d properties", n, len(opts.Args))
	}
	return opts, nil
}

func (w *walker) timestamp(o Options, p PathRef) (any, error) {
	from, to, err := w.timeRange(o, p)
	if err != nil {
		return nil, err
	}
	s, err := w.gen.ISOTimestamp(from, to)
	if err != nil {
		return nil, generatorFailed(p, err)
	}
	return s, nil
}

func (w *walker) text(o Options, p PathRef) (any, error) {
	lo, hi, err := w.bounds(o, p)
	if err != nil {
		return nil, err
	}
	s, err := w.gen.Text(toIntPtr(lo), toIntPtr(hi))
	if err != nil {
		return nil, generatorFailed(p, err)
	}
	return s, nil
}

func (w *walker) numericString(o Options, p PathRef) (any, error) {
	lo, hi, err := w.bounds(o, p)
	if err != nil {
		return nil, err
	}
	s, err := w.gen.NumericString(lo, hi)
	if err != nil {
		return nil, generatorFailed(p, err)
	}
	return s, nil
}

func (w *walker) number(o Options, p PathRef) (any, error) {
	lo, hi, err := w.bounds(o, p)
	if err != nil {
		return nil, err
	}
	n, err := w.gen.Number(lo, hi)
	if err != nil {
		return nil, generatorFailed(p, err)
	}
	return n, nil
}

func (w *walker) file(o Options, p PathRef) (any, error) {
	ext, err := w.extension(o, p)
	if err != nil {
		return nil, err
	}
	return w.gen.File(ext), nil
}

// extension resolves a file extension without its leading dot. Empty means
// the generator picks one.
func (w *walker) extension(o Options, p PathRef) (string, error) {
	opts, _ := optionsAs[FileOptions](o)
	v, err := w.deref(opts.Extension, p)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimPrefix(t, "."), nil
	}
	return "", invalidOptions(p, "extension must be a string")
}

func (w *walker) timeRange(o Options, p PathRef) (from, to *time.Time, err error) {
	opts, _ := optionsAs[TimestampOptions](o)
	if from, err = w.timeBound(opts.From, "dateFrom", p); err != nil {
		return nil, nil, err
	}
	if to, err = w.timeBound(opts.To, "dateTo", p); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func (w *walker) bounds(o Options, p PathRef) (lo, hi *int64, err error) {
	opts, _ := optionsAs[BoundsOptions](o)
	if lo, err = w.intBound(opts.Min, "min", p); err != nil {
		return nil, nil, err
	}
	if hi, err = w.intBound(opts.Max, "max", p); err != nil {
		return nil, nil, err
	}
	return lo, hi, nil
}

func (w *walker) intBound(v any, name string, p PathRef) (*int64, error) {
	rv, err := w.deref(v, p)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, nil
	}
	n, ok := asInt64(rv)
	if !ok {
		return nil, invalidOptions(p, "%s must be a number", name)
	}
	return &n, nil
}

func (w *walker) timeBound(v any, name string, p PathRef) (*time.Time, error) {
	rv, err := w.deref(v, p)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, nil
	}
	ts, ok := asTime(rv)
	if !ok {
		return nil, invalidOptions(p, "%s must be a timestamp", name)
	}
	return &ts, nil
}

func toIntPtr(v *int64) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
