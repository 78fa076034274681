// Package config provides run configuration for the chess and perft
// commands.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Verbosity levels for LogFile diagnostics.
const (
	Silent     = 0
	Summary    = 1
	Commentary = 2
)

// Config holds all program configuration.
type Config struct {
	White PlayerConfig
	Black PlayerConfig

	// StartFEN is the position the game or perft run starts from.
	StartFEN string

	// MaxPlies stops the game after this many moves (0 = no limit).
	MaxPlies int

	// Games is the number of games played from StartFEN.
	Games int

	Verbosity   int // 0=nothing, 1=summary, 2=per-move commentary
	ClearScreen bool

	Output OutputConfig
	Perft  PerftConfig

	// Streams
	Input      io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values: an interactive White,
// a depth 3 computer Black, the initial position and no ply limit.
func NewConfig() *Config {
	return &Config{
		White:       PlayerConfig{Kind: Human},
		Black:       PlayerConfig{Kind: Computer, Depth: DefaultAIDepth},
		StartFEN:    engine.InitialFEN,
		Games:       1,
		Verbosity:   Summary,
		ClearScreen: true,
		Output:      *NewOutputConfig(),
		Perft:       *NewPerftConfig(),
		Input:       os.Stdin,
		OutputFile:  os.Stdout,
		LogFile:     os.Stderr,
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.MaxPlies < 0 {
		return fmt.Errorf("max plies must not be negative (%d): %w", c.MaxPlies, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity must be between %d and %d (%d): %w",
			Silent, Commentary, c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1 (%d): %w", c.Games, errors.ErrInvalidConfig)
	}
	start, err := engine.NewBoardStateFromFEN(c.StartFEN)
	if err != nil {
		return fmt.Errorf("start position: %w", err)
	}
	if err := validateStart(start); err != nil {
		return err
	}
	return c.Perft.Validate()
}

// validateStart rejects positions the rules cannot be played from: each side
// needs exactly one king, and the side that just moved cannot be in check.
func validateStart(s *engine.BoardState) error {
	if !s.HasKings() {
		return fmt.Errorf("start position needs one king of each colour: %w", errors.ErrInvalidFEN)
	}
	if waiting := s.Player().Opposite(); s.IsInCheck(waiting) {
		return fmt.Errorf("start position has %v in check with %v to move: %w",
			waiting, s.Player(), errors.ErrInvalidFEN)
	}
	return nil
}

// Logf writes a diagnostic to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
