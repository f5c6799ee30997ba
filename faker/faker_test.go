package faker_test

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/reoring/fakeskema/faker"
)

func newFaker(seed int64) *faker.Faker {
	clock := func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return faker.New(rand.New(rand.NewSource(seed)), faker.WithClock(clock))
}

func i64(v int64) *int64 { return &v }
func iptr(v int) *int    { return &v }

func TestEnum_PicksCandidate(t *testing.T) {
	f := newFaker(1)
	cands := []any{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		v, err := f.Enum(cands)
		if err != nil {
			t.Fatalf("enum: %v", err)
		}
		s, _ := v.(string)
		if s != "a" && s != "b" && s != "c" {
			t.Fatalf("unexpected pick %v", v)
		}
	}
	if _, err := f.Enum(nil); !errors.Is(err, faker.ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestDelimitedString_SingleCandidateGroups(t *testing.T) {
	got, err := newFaker(2).DelimitedString("_", []any{"apple"}, []any{"pear"}, []any{3})
	if err != nil {
		t.Fatalf("delimited: %v", err)
	}
	if got != "apple_pear_3" {
		t.Fatalf("got %q", got)
	}
}

func TestNumber_Bounds(t *testing.T) {
	f := newFaker(3)
	cases := []struct {
		name     string
		min, max *int64
		lo, hi   int64
	}{
		{"fixed", i64(1), i64(1), 1, 1},
		{"range", i64(-5), i64(5), -5, 5},
		{"defaults", nil, nil, faker.DefaultNumberMin, faker.DefaultNumberMax},
		{"min only", i64(2_000_000), nil, 2_000_000, 2_000_000 + faker.DefaultNumberMax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				n, err := f.Number(tc.min, tc.max)
				if err != nil {
					t.Fatalf("number: %v", err)
				}
				if n < tc.lo || n > tc.hi {
					t.Fatalf("%d out of [%d,%d]", n, tc.lo, tc.hi)
				}
			}
		})
	}
	if _, err := f.Number(i64(5), i64(1)); !errors.Is(err, faker.ErrBadRange) {
		t.Fatalf("expected ErrBadRange, got %v", err)
	}
}

// scriptedSource replays Int63n results in order.
type scriptedSource struct{ vals []int64 }

func (s *scriptedSource) Float64() float64 { return 0 }
func (s *scriptedSource) Intn(int) int     { return 0 }
func (s *scriptedSource) Int63n(n int64) int64 {
	v := s.vals[0]
	s.vals = s.vals[1:]
	if v >= n {
		panic("scripted value out of range")
	}
	return v
}

func TestNumber_WideRanges(t *testing.T) {
	f := newFaker(4)
	var neg, nonNeg int
	for i := 0; i < 200; i++ {
		n, err := f.Number(i64(math.MinInt64), i64(math.MaxInt64))
		if err != nil {
			t.Fatalf("number: %v", err)
		}
		if n < 0 {
			neg++
		} else {
			nonNeg++
		}
	}
	if neg == 0 || nonNeg == 0 {
		t.Fatalf("full range draws are one-sided: neg=%d nonNeg=%d", neg, nonNeg)
	}

	top := &scriptedSource{vals: []int64{1<<32 - 1, 1<<32 - 1}}
	n, err := faker.New(top).Number(i64(math.MinInt64), i64(math.MaxInt64))
	if err != nil || n != math.MaxInt64 {
		t.Fatalf("full range top draw = %d, %v", n, err)
	}

	// A span of exactly MaxInt64 must reach hi; the first draw is past the
	// span and rejected.
	src := &scriptedSource{vals: []int64{1<<32 - 1, 1<<32 - 1, 1<<31 - 1, 1<<32 - 1}}
	n, err = faker.New(src).Number(i64(0), i64(math.MaxInt64))
	if err != nil || n != math.MaxInt64 {
		t.Fatalf("span MaxInt64 top draw = %d, %v", n, err)
	}
}

func TestNumericString_IsDecimal(t *testing.T) {
	s, err := newFaker(4).NumericString(i64(10), i64(99))
	if err != nil {
		t.Fatalf("numeric string: %v", err)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 10 || n > 99 {
		t.Fatalf("unexpected numeric string %q", s)
	}
}

func TestText_Length(t *testing.T) {
	f := newFaker(5)
	for _, n := range []int{0, 1, 7, 40} {
		s, err := f.Text(iptr(n), iptr(n))
		if err != nil {
			t.Fatalf("text: %v", err)
		}
		if len(s) != n {
			t.Fatalf("len=%d want %d (%q)", len(s), n, s)
		}
		if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
			t.Fatalf("text should not start or end with a space: %q", s)
		}
	}
}

func TestISOTimestamp_Window(t *testing.T) {
	f := newFaker(6)
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	s, err := f.ISOTimestamp(&from, &to)
	if err != nil {
		t.Fatalf("timestamp: %v", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("not RFC3339: %q", s)
	}
	if ts.Before(from) || ts.After(to) {
		t.Fatalf("%s outside window", s)
	}
	if !strings.HasSuffix(s, "Z") || len(s) != len("2006-01-02T15:04:05.000Z") {
		t.Fatalf("unexpected layout %q", s)
	}
	if _, err := f.ISOTimestamp(&to, &from); !errors.Is(err, faker.ErrBadRange) {
		t.Fatalf("expected ErrBadRange, got %v", err)
	}
}

func TestFile_ExtensionAndDeterminism(t *testing.T) {
	a := newFaker(7).File("mp4")
	b := newFaker(7).File("mp4")
	if !strings.HasSuffix(a, ".mp4") {
		t.Fatalf("missing extension: %q", a)
	}
	if a != b {
		t.Fatalf("same seed should give same file name: %q vs %q", a, b)
	}
	if got := newFaker(8).File(""); !strings.Contains(got, ".") {
		t.Fatalf("default extension missing: %q", got)
	}
}

func TestURL_Shape(t *testing.T) {
	u := newFaker(9).URL()
	if !strings.HasPrefix(u, "https://www.") {
		t.Fatalf("unexpected url %q", u)
	}
}
