package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"shipping/internal/core/domain/model/kernel"
)

// MaxGenerationAttempts caps the collision-check loop. At the code widths in
// use the collision probability is negligible, so hitting the cap indicates a
// broken randomness source or a near-full code space.
const MaxGenerationAttempts = 1000

// ErrCodeSpaceExhausted is returned when no collision-free code was found
// within MaxGenerationAttempts draws.
var ErrCodeSpaceExhausted = errors.New("code generation attempts exhausted")

// RandSource yields random integers for code suffixes. It matches the
// math/rand/v2 top-level IntN contract; tests substitute a deterministic
// sequence.
type RandSource interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// RandSourceFunc adapts a plain function to the RandSource interface.
type RandSourceFunc func(n int) int

// IntN implements RandSource.
func (f RandSourceFunc) IntN(n int) int {
	return f(n)
}

// CodeExistenceChecker reports whether a candidate code is already taken.
// It is a best-effort pre-check only; the persistence layer's uniqueness
// constraint remains the final authority under concurrent generation.
type CodeExistenceChecker interface {
	Exists(ctx context.Context, code string) (bool, error)
}

// CodeExistenceCheckerFunc adapts a plain function to the
// CodeExistenceChecker interface.
type CodeExistenceCheckerFunc func(ctx context.Context, code string) (bool, error)

// Exists implements CodeExistenceChecker.
func (f CodeExistenceCheckerFunc) Exists(ctx context.Context, code string) (bool, error) {
	return f(ctx, code)
}

// CodeGenerator is a domain service that issues human-readable codes for
// quotes and shipments: a fixed prefix followed by a zero-padded random
// numeric suffix. Each draw is checked against existing records and redrawn
// on collision.
//
// Example usage:
//
//	generator := services.NewCodeGenerator(nil)
//	checker := services.CodeExistenceCheckerFunc(repo.ExistsByCode)
//
//	code, err := generator.GenerateQuoteCode(ctx, checker)
//	if errors.Is(err, services.ErrCodeSpaceExhausted) {
//	    // Randomness source is broken or the code space is near full
//	}
type CodeGenerator struct {
	rand RandSource
}

// NewCodeGenerator creates a CodeGenerator. A nil rand falls back to the
// math/rand/v2 global source.
func NewCodeGenerator(rand RandSource) CodeGenerator {
	if rand == nil {
		rand = RandSourceFunc(randIntN)
	}
	return CodeGenerator{rand: rand}
}

// GenerateQuoteCode issues a quote code unused at the time of checking.
func (g CodeGenerator) GenerateQuoteCode(
	ctx context.Context, checker CodeExistenceChecker,
) (kernel.QuoteCode, error) {
	value, err := g.generate(ctx, checker, kernel.QuoteCodePrefix, kernel.QuoteCodeDigits)
	if err != nil {
		return kernel.QuoteCode{}, err
	}
	return kernel.NewQuoteCode(value)
}

// GenerateTrackingCode issues a tracking code unused at the time of checking.
func (g CodeGenerator) GenerateTrackingCode(
	ctx context.Context, checker CodeExistenceChecker,
) (kernel.TrackingCode, error) {
	value, err := g.generate(ctx, checker, kernel.TrackingCodePrefix, kernel.TrackingCodeDigits)
	if err != nil {
		return kernel.TrackingCode{}, err
	}
	return kernel.NewTrackingCode(value)
}

func (g CodeGenerator) generate(
	ctx context.Context, checker CodeExistenceChecker, prefix string, digits int,
) (string, error) {
	bound := 1
	for range digits {
		bound *= 10
	}

	for range MaxGenerationAttempts {
		candidate := fmt.Sprintf("%s%0*d", prefix, digits, g.rand.IntN(bound))

		exists, err := checker.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", ErrCodeSpaceExhausted
}

func randIntN(n int) int {
	return rand.IntN(n)
}
