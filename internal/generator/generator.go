// Package generator produces random passwords from a configurable alphabet and
// classifies the strength of a generator configuration.
//
// The generator is not cryptographically secure. It samples from math/rand/v2
// and must not be used for secrets that require unpredictability guarantees.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	letterChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "[]{}~@*=+-_`^*!#$%&"

	MinLength     = 6
	MaxLength     = 100
	DefaultLength = 8
)

var (
	ErrEmptyAlphabet   = errors.New("alphabet must not be empty")
	ErrIndexOutOfRange = errors.New("index source returned an out of range index")
)

// Config describes a single generation or classification request.
// Length is expected to already be clamped to [MinLength, MaxLength].
type Config struct {
	Length         int
	IncludeDigits  bool
	IncludeSymbols bool
}

// DefaultConfig returns the configuration the widget starts with.
func DefaultConfig() Config {
	return Config{Length: DefaultLength}
}

// ClampLength bounds n to [MinLength, MaxLength], the range of the length slider.
func ClampLength(n int) int {
	return min(max(n, MinLength), MaxLength)
}

// IndexSource yields indexes in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type IndexSource interface {
	IntN(n int) int
}

// IndexSourceFunc adapts a plain function to IndexSource.
type IndexSourceFunc func(n int) int

func (f IndexSourceFunc) IntN(n int) int { return f(n) }

// DefaultSource draws from the auto-seeded math/rand/v2 generator, which is
// safe for concurrent use.
var DefaultSource IndexSource = IndexSourceFunc(rand.IntN)

// Generator samples passwords using an IndexSource.
type Generator struct {
	src IndexSource
}

// New creates a Generator. A nil src falls back to DefaultSource.
func New(src IndexSource) *Generator {
	if src == nil {
		src = DefaultSource
	}
	return &Generator{src: src}
}

var defaultGenerator = New(nil)

// Generate creates a password using the default source.
func Generate(cfg Config) (string, error) {
	return defaultGenerator.Generate(cfg)
}

// BuildAlphabet returns the letters, followed by digits and symbols when
// enabled. The result is rebuilt on every call.
func BuildAlphabet(cfg Config) string {
	alphabet := letterChars
	if cfg.IncludeDigits {
		alphabet += digitChars
	}
	if cfg.IncludeSymbols {
		alphabet += symbolChars
	}
	return alphabet
}

// Generate returns cfg.Length characters drawn independently and uniformly,
// with replacement, from the alphabet implied by cfg. Lengths of zero or less
// produce an empty string.
func (g *Generator) Generate(cfg Config) (string, error) {
	return g.Sample(BuildAlphabet(cfg), cfg.Length)
}

// Sample draws n characters from alphabet.
func (g *Generator) Sample(alphabet string, n int) (string, error) {
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}
	if n <= 0 {
		return "", nil
	}

	result := make([]byte, n)
	for i := range result {
		idx := g.src.IntN(len(alphabet))
		if idx < 0 || idx >= len(alphabet) {
			return "", fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, idx, len(alphabet))
		}
		result[i] = alphabet[idx]
	}

	return string(result), nil
}
