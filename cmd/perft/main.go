// perft counts the legal move tree below a position, optionally per root
// move, and can check the count against an independent move generator.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/perft"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run counts the tree described by cfg and writes the result to
// cfg.OutputFile. Timing goes to the log at Summary verbosity.
func run(cfg *config.Config) error {
	s, err := engine.NewBoardStateFromFEN(cfg.StartFEN)
	if err != nil {
		return err
	}
	out := cfg.OutputFile
	depth := cfg.Perft.Depth

	start := time.Now()
	var nodes uint64
	if cfg.Perft.Divide {
		counts, err := perft.Divide(s, depth, cfg.Perft.Workers)
		if err != nil {
			return err
		}
		for _, c := range counts {
			fmt.Fprintf(out, "%v: %d\n", c.Move, c.Nodes)
		}
		fmt.Fprintln(out)
		nodes = perft.Total(counts)
	} else {
		nodes = perft.Count(s, depth)
	}
	elapsed := time.Since(start)

	fmt.Fprintf(out, "Nodes searched: %d\n", nodes)
	cfg.Logf(config.Summary, "depth %d: %d nodes in %v (%.0f nodes/s)\n",
		depth, nodes, elapsed.Round(time.Millisecond), nodesPerSecond(nodes, elapsed))

	if !cfg.Perft.Reference {
		return nil
	}
	want := perft.Reference(s, depth)
	fmt.Fprintf(out, "Reference: %d\n", want)
	if want != nodes {
		return fmt.Errorf("count %d differs from reference count %d", nodes, want)
	}
	return nil
}

func nodesPerSecond(nodes uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(nodes) / elapsed.Seconds()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Count the legal move tree below a chess position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPromotions are always to a queen; -reference counts the same way.\n")
}
