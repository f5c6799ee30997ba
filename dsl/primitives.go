package dsl

import (
	fakeskema "github.com/reoring/fakeskema"
)

// Ref returns the reference expression for key ("#ref.<key>").
func Ref(key string) string { return fakeskema.Ref(key) }

// Bool returns a boolean node.
func Bool() fakeskema.Node { return fakeskema.Node{Type: fakeskema.KindBoolean} }

// URL returns a url node.
func URL() fakeskema.Node { return fakeskema.Node{Type: fakeskema.KindURL} }

// Enum returns an enum node picking one of values.
func Enum(values ...any) fakeskema.Node {
	return fakeskema.Node{Type: fakeskema.KindEnum, Options: fakeskema.EnumOptions{Values: values}}
}

// EnumRef returns an enum node whose candidates come from the reference key.
func EnumRef(key string) fakeskema.Node {
	return fakeskema.Node{Type: fakeskema.KindEnum, Options: fakeskema.EnumOptions{Values: Ref(key)}}
}

// Timestamp returns an iso-timestamp node. Bounds may be nil, time.Time,
// strings or reference expressions.
func Timestamp(from, to any) fakeskema.Node {
	return fakeskema.Node{Type: fakeskema.KindISOTimestamp, Options: fakeskema.TimestampOptions{From: from, To: to}}
}

// Text returns a text node with a length range.
func Text(min, max any) fakeskema.Node {
	return fakeskema.Node{Type: fakeskema.KindText, Options: fakeskema.BoundsOptions{Min: min, Max: max}}
}

// NumericString returns a numeric-string node with a value range.
func NumericString(min, max any) fakeskema.Node {
	return fakeskema.Node{Type: fakeskema.KindNumericString, Options: fakeskema.BoundsOptions{Min: min, Max: max}}
}

// Number returns a number node with a value range.
func Number(min, max any) fakeskema.Node {
	return fakeskema.Node{Type: fakeskema.KindNumber, Options: fakeskema.BoundsOptions{Min: min, Max: max}}
}

// File returns a file node; extension may be empty.
func File(extension any) fakeskema.Node {
	return fakeskema.Node{Type: fakeskema.KindFile, Options: fakeskema.FileOptions{Extension: extension}}
}

// Array returns an array node of elem with a length range.
func Array(elem fakeskema.Node, min, max any) fakeskema.Node {
	e := elem
	return fakeskema.Node{Type: fakeskema.KindArray, Options: fakeskema.ArrayOptions{Element: &e, Min: min, Max: max}}
}

// Delimited returns a delimited-string node. Parts are literals, []any
// groups or reference expressions.
func Delimited(delimiter string, parts ...any) fakeskema.Node {
	return fakeskema.Node{Type: fakeskema.KindDelimitedString, Options: fakeskema.DelimitedOptions{Delimiter: delimiter, Parts: parts}}
}

// Format returns a format-string node filling each "{}" with one arg.
func Format(format string, args ...fakeskema.Node) fakeskema.Node {
	return fakeskema.Node{Type: fakeskema.KindFormatString, Options: fakeskema.FormatOptions{Format: format, Args: args}}
}

// Nullable returns a copy of n marked nullable. With pct, the first value
// becomes the node's own percentage.
func Nullable(n fakeskema.Node, pct ...float64) fakeskema.Node {
	n.Nullable = true
	if len(pct) > 0 {
		p := pct[0]
		n.NullablePercentage = &p
	}
	return n
}
