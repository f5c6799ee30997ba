package fakeskema

// Kind is the type tag of a schema node. Tags outside the known set are kept
// as-is and rejected with CodeInvalidType when the walk reaches them.
type Kind string

const (
	KindBoolean         Kind = "boolean"
	KindEnum            Kind = "enum"
	KindISOTimestamp    Kind = "iso-timestamp"
	KindObject          Kind = "object"
	KindDelimitedString Kind = "delimited-string"
	KindText            Kind = "text"
	KindNumericString   Kind = "numeric-string"
	KindURL             Kind = "url"
	KindArray           Kind = "array"
	KindNumber          Kind = "number"
	KindFile            Kind = "file"
	KindFormatString    Kind = "format-string"
)

// Schema is the root of a schema tree: named fields in declaration order.
type Schema []Field

// Field binds a name to a node.
type Field struct {
	Name string
	Node
}

// Node describes how one value is generated.
type Node struct {
	Type     Kind
	Nullable bool
	// NullablePercentage overrides the interpreter default when present and
	// non-zero. A non-zero value also makes the node nullable on its own.
	NullablePercentage *float64
	Options            Options
}

// Options is the kind-specific payload of a Node.
type Options interface{ isOptions() }

// ObjectOptions lists the properties of an object node.
type ObjectOptions struct {
	Properties []Field
}

// ArrayOptions configures an array node. Min and Max are integers or
// reference expressions; a missing Max defaults to Min.
type ArrayOptions struct {
	Element *Node
	Min     any
	Max     any
}

// DelimitedOptions configures a delimited-string node. Each part is a literal,
// a []any group of candidates, or a reference expression.
type DelimitedOptions struct {
	Delimiter string
	Parts     []any
}

// EnumOptions holds enum candidates: a []any or a reference expression that
// must resolve to a sequence.
type EnumOptions struct {
	Values any
}

// TimestampOptions bounds an iso-timestamp node. Each bound is nil, a
// time.Time, an RFC 3339 or YYYY-MM-DD string, or a reference expression.
type TimestampOptions struct {
	From any
	To   any
}

// BoundsOptions carries min/max for text (length in characters),
// numeric-string and number (inclusive value range). nil means generator default.
type BoundsOptions struct {
	Min any
	Max any
}

// FileOptions configures a file node.
type FileOptions struct {
	Extension any
}

// FormatOptions configures a format-string node: each "{}" in Format is
// replaced by the value generated for the matching Args entry.
type FormatOptions struct {
	Format string
	Args   []Node
}

func (ObjectOptions) isOptions()    {}
func (ArrayOptions) isOptions()     {}
func (DelimitedOptions) isOptions() {}
func (EnumOptions) isOptions()      {}
func (TimestampOptions) isOptions() {}
func (BoundsOptions) isOptions()    {}
func (FileOptions) isOptions()      {}
func (FormatOptions) isOptions()    {}
