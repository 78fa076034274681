package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	Depth int

	// Divide prints the count below every root move
	Divide bool

	// Workers is the number of goroutines used by a divide
	Workers int

	// Reference repeats the count with an independent move generator
	Reference bool
}

// NewPerftConfig creates a PerftConfig with one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   1,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 {
		return fmt.Errorf("perft depth must be at least 1 (%d): %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers must be at least 1 (%d): %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
