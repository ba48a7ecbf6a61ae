package service

import (
	"errors"

	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"github.com/vaultpass/passgen/internal/generator"
	"github.com/vaultpass/passgen/internal/model"
)

const MaxCount = 50

var (
	ErrLengthOutOfRange = errors.New("password length must be between 6 and 100")
	ErrCountOutOfRange  = errors.New("count must be between 1 and 50")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen *generator.Generator
}

// NewGeneratorService creates a new GeneratorService. A nil generator uses the
// default random source.
func NewGeneratorService(gen *generator.Generator) *GeneratorService {
	if gen == nil {
		gen = generator.New(nil)
	}
	return &GeneratorService{gen: gen}
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg, err := configFromRequest(req.Length, req.Numbers, req.Symbols)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxCount {
		return model.GenerateResponse{}, ErrCountOutOfRange
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := s.gen.Generate(cfg)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, pw)
	}

	estimate := Estimate(passwords[0])

	return model.GenerateResponse{
		Passwords: passwords,
		Length:    cfg.Length,
		Strength:  generator.Classify(cfg),
		Score:     estimate.Score,
		Entropy:   estimate.Entropy,
	}, nil
}

// Classify returns the strength label for the requested configuration.
func (s *GeneratorService) Classify(req model.StrengthRequest) (model.StrengthResponse, error) {
	cfg, err := configFromRequest(req.Length, req.Numbers, req.Symbols)
	if err != nil {
		return model.StrengthResponse{}, err
	}
	return model.StrengthResponse{Strength: generator.Classify(cfg)}, nil
}

// PasswordEstimate is an advisory zxcvbn estimate of a concrete password.
type PasswordEstimate struct {
	Score   int
	Entropy float64
}

// Estimate scores password with zxcvbn. It complements the configuration
// based label and never replaces it.
func Estimate(password string) PasswordEstimate {
	if password == "" {
		return PasswordEstimate{}
	}
	m := zxcvbn.PasswordStrength(password, nil)
	return PasswordEstimate{Score: m.Score, Entropy: m.Entropy}
}

// configFromRequest applies the default length and validates the range.
func configFromRequest(length int, numbers, symbols bool) (generator.Config, error) {
	if length == 0 {
		length = generator.DefaultLength
	}
	if length < generator.MinLength || length > generator.MaxLength {
		return generator.Config{}, ErrLengthOutOfRange
	}
	return generator.Config{
		Length:         length,
		IncludeDigits:  numbers,
		IncludeSymbols: symbols,
	}, nil
}
