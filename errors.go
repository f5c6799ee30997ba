package fakeskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeReferenceKeyInvalid        = "reference_key_invalid"
	CodeReferencedValueMustBeArray = "referenced_value_must_be_array"
	CodeInvalidType                = "invalid_type"
	CodeArraySchemaMissing         = "array_schema_missing"
	CodeInvalidOptions             = "invalid_options"
	CodeUnsupportedFormatArg       = "unsupported_format_arg"
	CodeGeneratorFailed            = "generator_failed"
)

// Sentinel causes attached to issues; match them with errors.Is.
var (
	ErrReferenceKeyInvalid        = errors.New("fakeskema: reference key invalid")
	ErrReferencedValueMustBeArray = errors.New("fakeskema: referenced value must be an array")
	ErrInvalidType                = errors.New("fakeskema: invalid type")
	ErrArraySchemaMissing         = errors.New("fakeskema: array schema not provided")
	ErrInvalidOptions             = errors.New("fakeskema: invalid options")
	ErrUnsupportedFormatArg       = errors.New("fakeskema: unsupported format-string argument")
	ErrGeneratorFailed            = errors.New("fakeskema: generator failed")
)

var codeCauses = map[string]error{
	CodeReferenceKeyInvalid:        ErrReferenceKeyInvalid,
	CodeReferencedValueMustBeArray: ErrReferencedValueMustBeArray,
	CodeInvalidType:                ErrInvalidType,
	CodeArraySchemaMissing:         ErrArraySchemaMissing,
	CodeInvalidOptions:             ErrInvalidOptions,
	CodeUnsupportedFormatArg:       ErrUnsupportedFormatArg,
	CodeGeneratorFailed:            ErrGeneratorFailed,
}

// Issue represents a single generation failure.
type Issue struct {
	Path    string // JSON Pointer of the failing node (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Sentinel for Code, or the generator's error.
	// Params carries structured parameters (e.g., {"key":"users"}) for i18n
	// and diagnostics.
	Params map[string]any
}

// Unwrap exposes Cause to errors.Is / errors.As.
func (it Issue) Unwrap() error { return it.Cause }

// Issues is a collection of generation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path: invalid type "bogus"
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap returns the causes of all issues so errors.Is can match sentinels.
func (iss Issues) Unwrap() []error {
	out := make([]error, 0, len(iss))
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
