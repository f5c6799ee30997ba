// Package faker is the default leaf value generator of fakeskema. Every draw
// goes through the RandomSource passed to New, so a seeded source gives
// reproducible values.
package faker

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RandomSource is the subset of *math/rand.Rand used by Faker.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
	Int63n(n int64) int64
}

// Defaults applied when a bound is nil.
const (
	DefaultTextMin   = 10
	DefaultTextMax   = 120
	DefaultNumberMin = 0
	DefaultNumberMax = 1_000_000
	DefaultSpan      = 10 * 365 * 24 * time.Hour
)

var (
	ErrNoCandidates = errors.New("faker: no candidates")
	ErrBadRange     = errors.New("faker: min greater than max")
)

// Faker generates random leaf values.
type Faker struct {
	r   RandomSource
	now func() time.Time
}

// Option customizes a Faker.
type Option func(*Faker)

// WithClock sets the clock used for the default timestamp window
// ([now-DefaultSpan, now]).
func WithClock(now func() time.Time) Option {
	return func(f *Faker) {
		if now != nil {
			f.now = now
		}
	}
}

// New returns a Faker drawing from r.
func New(r RandomSource, opts ...Option) *Faker {
	f := &Faker{r: r, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Faker) Boolean() bool { return f.r.Intn(2) == 1 }

func (f *Faker) Enum(candidates []any) (any, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	return candidates[f.r.Intn(len(candidates))], nil
}

func (f *Faker) DelimitedString(delimiter string, groups ...[]any) (string, error) {
	parts := make([]string, 0, len(groups))
	for i, g := range groups {
		v, err := f.Enum(g)
		if err != nil {
			return "", fmt.Errorf("group %d: %w", i, err)
		}
		parts = append(parts, render(v))
	}
	return strings.Join(parts, delimiter), nil
}

// ISOTimestamp returns a millisecond-precision UTC timestamp
// (2006-01-02T15:04:05.000Z).
func (f *Faker) ISOTimestamp(from, to *time.Time) (string, error) {
	var lo, hi time.Time
	switch {
	case from != nil && to != nil:
		lo, hi = *from, *to
	case from != nil:
		lo, hi = *from, from.Add(DefaultSpan)
	case to != nil:
		lo, hi = to.Add(-DefaultSpan), *to
	default:
		hi = f.now()
		lo = hi.Add(-DefaultSpan)
	}
	if hi.Before(lo) {
		return "", ErrBadRange
	}
	loMs, hiMs := lo.UnixMilli(), hi.UnixMilli()
	ms := loMs + f.r.Int63n(hiMs-loMs+1)
	return time.UnixMilli(ms).UTC().Format("2006-01-02T15:04:05.000Z"), nil
}

func (f *Faker) NumericString(min, max *int64) (string, error) {
	n, err := f.Number(min, max)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

func (f *Faker) Number(min, max *int64) (int64, error) {
	lo, hi := int64(DefaultNumberMin), int64(DefaultNumberMax)
	if min != nil {
		lo = *min
		if max == nil && hi < lo {
			hi = lo + DefaultNumberMax
		}
	}
	if max != nil {
		hi = *max
		if min == nil && lo > hi {
			lo = hi - DefaultNumberMax
		}
	}
	return f.between(lo, hi)
}

func (f *Faker) between(lo, hi int64) (int64, error) {
	if hi < lo {
		return 0, ErrBadRange
	}
	span := uint64(hi) - uint64(lo)
	if span < math.MaxInt64 {
		return lo + f.r.Int63n(int64(span)+1), nil
	}
	// span+1 does not fit Int63n: build 64 bits from two 32-bit draws and
	// reject values past span.
	for {
		v := uint64(f.r.Int63n(1<<32))<<32 | uint64(f.r.Int63n(1<<32))
		if v <= span {
			return int64(uint64(lo) + v), nil
		}
	}
}

// Text returns lorem-style words whose total length lies in [min, max].
func (f *Faker) Text(min, max *int) (string, error) {
	lo, hi := DefaultTextMin, DefaultTextMax
	if min != nil {
		lo = *min
		if max == nil && hi < lo {
			hi = lo
		}
	}
	if max != nil {
		hi = *max
		if min == nil && lo > hi {
			lo = hi
		}
	}
	if lo < 0 {
		lo = 0
	}
	if hi < lo {
		return "", ErrBadRange
	}
	n, err := f.between(int64(lo), int64(hi))
	if err != nil {
		return "", err
	}
	return f.words(int(n)), nil
}

// words builds exactly n characters that neither start nor end with a space.
func (f *Faker) words(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n + 16)
	for b.Len() < n {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(loremWords[f.r.Intn(len(loremWords))])
	}
	s := []byte(b.String()[:n])
	if s[n-1] == ' ' {
		s[n-1] = 'a'
	}
	return string(s)
}

func (f *Faker) URL() string {
	host := loremWords[f.r.Intn(len(loremWords))]
	tld := topLevelDomains[f.r.Intn(len(topLevelDomains))]
	path := loremWords[f.r.Intn(len(loremWords))]
	return "https://www." + host + "." + tld + "/" + path
}

// File returns "<uuid>.<extension>". The UUID bytes come from the Faker's
// random source.
func (f *Faker) File(extension string) string {
	if extension == "" {
		extension = fileExtensions[f.r.Intn(len(fileExtensions))]
	}
	id, err := uuid.NewRandomFromReader(randReader{f.r})
	if err != nil {
		id = uuid.Nil
	}
	return id.String() + "." + extension
}

type randReader struct{ r RandomSource }

func (rr randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rr.r.Intn(256))
	}
	return len(p), nil
}

func render(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
}

var topLevelDomains = []string{"com", "net", "org", "io", "dev"}

var fileExtensions = []string{"txt", "pdf", "png", "jpg", "csv", "json", "mp4"}
