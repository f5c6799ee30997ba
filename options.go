package fakeskema

import (
	"log/slog"
	"math/rand"
	"time"
)

// RandomSource drives every random draw of the interpreter (nullability,
// array length) and, by default, of the generator. *math/rand.Rand
// satisfies it.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
	Int63n(n int64) int64
}

// Option configures an Interpreter.
type Option func(*config)

type config struct {
	rand RandomSource
	gen  Generator
	log  *slog.Logger
}

// WithRand sets the random source. nil values are ignored.
func WithRand(r RandomSource) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithSeed uses a math/rand source seeded with seed, making output reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rand = rand.New(rand.NewSource(seed)) }
}

// WithGenerator overrides the leaf value generator. nil values are ignored.
func WithGenerator(g Generator) Option {
	return func(c *config) {
		if g != nil {
			c.gen = g
		}
	}
}

// WithLogger sets the logger used for debug output of the walk.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.gen == nil {
		c.gen = defaultGenerator(c.rand)
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	return c
}
