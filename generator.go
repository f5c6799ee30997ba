package fakeskema

import (
	"time"

	"github.com/reoring/fakeskema/faker"
)

// Generator produces leaf values. Bounds passed as nil mean "generator
// default". Implementations must not retain the slices they receive.
type Generator interface {
	Boolean() bool
	// Enum picks one of candidates.
	Enum(candidates []any) (any, error)
	// ISOTimestamp returns an RFC 3339 UTC timestamp within [from, to].
	ISOTimestamp(from, to *time.Time) (string, error)
	// DelimitedString picks one literal per group and joins them with delimiter.
	DelimitedString(delimiter string, groups ...[]any) (string, error)
	// Text returns free text whose length in characters lies in [min, max].
	Text(min, max *int) (string, error)
	// NumericString returns the decimal form of an integer in [min, max].
	NumericString(min, max *int64) (string, error)
	// Number returns an integer in [min, max].
	Number(min, max *int64) (int64, error)
	URL() string
	// File returns a file name; an empty extension lets the generator pick one.
	File(extension string) string
}

var _ Generator = (*faker.Faker)(nil)

func defaultGenerator(r RandomSource) Generator { return faker.New(r) }
