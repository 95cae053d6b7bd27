package slug

import (
	"errors"
	"math/rand/v2"
	"strings"
)

// Generator validation errors.
var (
	// ErrEmptyAlphabet is returned when the alphabet has no characters.
	ErrEmptyAlphabet = errors.New("slug alphabet must not be empty")

	// ErrInvalidLengthRange is returned when the length bounds are not
	// positive or the minimum exceeds the maximum.
	ErrInvalidLengthRange = errors.New("slug length range must satisfy 0 < min <= max")
)

// Generator produces random slugs from a fixed alphabet.
// Each call to Next picks a length uniformly within [minLen, maxLen]
// and fills it with characters drawn uniformly from the alphabet.
//
// Design decision: the random source is injectable so tests can seed it
// for reproducible output. Generator is not safe for concurrent use;
// the explorer loop is single-threaded so it does not need to be.
type Generator struct {
	// alphabet is the character set slugs are drawn from.
	// Stored as runes so profiles with non-ASCII alphabets draw
	// whole characters, not bytes.
	alphabet []rune

	// minLen and maxLen bound the slug length, inclusive.
	minLen int
	maxLen int

	// rnd is the random source. Defaults to a ChaCha8-seeded source
	// from math/rand/v2.
	rnd *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source.
// Tests use this with a fixed seed for deterministic output.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		g.rnd = rand.New(src)
	}
}

// New creates a Generator for the given alphabet and length range.
// Both bounds are inclusive; min == max produces fixed-length slugs.
func New(alphabet string, minLen, maxLen int, opts ...Option) (*Generator, error) {
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}
	if minLen <= 0 || maxLen < minLen {
		return nil, ErrInvalidLengthRange
	}

	g := &Generator{
		alphabet: []rune(alphabet),
		minLen:   minLen,
		maxLen:   maxLen,
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Next returns a fresh random slug.
func (g *Generator) Next() string {
	length := g.minLen
	if g.maxLen > g.minLen {
		length += g.rnd.IntN(g.maxLen - g.minLen + 1)
	}

	var sb strings.Builder
	sb.Grow(length)
	for range length {
		sb.WriteRune(g.alphabet[g.rnd.IntN(len(g.alphabet))])
	}
	return sb.String()
}
