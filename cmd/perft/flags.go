// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

var (
	startFEN  = flag.String("fen", engine.InitialFEN, "Position to count from, in FEN")
	depth     = flag.Int("depth", 1, "Number of plies to count")
	divide    = flag.Bool("divide", false, "Print the count below every root move")
	workers   = flag.Int("workers", 0, "Number of worker goroutines for -divide (0 = auto-detect based on CPU cores)")
	reference = flag.Bool("reference", false, "Repeat the count with an independent move generator and compare")

	// Logging
	quiet = flag.Bool("s", false, "Silent mode (no timing summary)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	applyPerftFlags(cfg)

	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// applyPerftFlags configures the count.
func applyPerftFlags(cfg *config.Config) {
	n := *workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	cfg.Perft = config.PerftConfig{
		Depth:     *depth,
		Divide:    *divide,
		Workers:   n,
		Reference: *reference,
	}
}
