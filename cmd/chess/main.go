// chess plays a game between two players, each either a person at the
// terminal or the alpha-beta search, and optionally exports it as PGN or JSON.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/output"
	"github.com/lgbarn/chess-core-go/internal/player"
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
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// run plays cfg.Games games as configured and exports them. date fills the
// Date tag.
func run(cfg *config.Config, date time.Time) (err error) {
	start, err := engine.NewBoardStateFromFEN(cfg.StartFEN)
	if err != nil {
		return err
	}
	white, black := newPlayers(cfg)

	writers, closeWriters, err := openWriters(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeWriters(); err == nil {
			err = closeErr
		}
	}()

	for round := 1; round <= cfg.Games; round++ {
		state := start.Clone()
		outcome, err := player.Play(state, white, black, cfg.MaxPlies)
		if err != nil {
			return errors.Wrapf(err, "game %d", round)
		}
		cfg.Logf(config.Summary, "Game %d over: %v after %d plies, %s\n",
			round, outcome.Termination, outcome.Plies, outcome.Result())

		game := output.NewGame(start, state)
		tagGame(game, cfg, outcome, date, round)
		for _, w := range writers {
			if err := w.WriteGame(game); err != nil {
				return err
			}
		}
	}
	return nil
}

// newPlayers builds both players. Two interactive sides share one CLIPlayer
// so they read from the same buffered input.
func newPlayers(cfg *config.Config) (white, black player.Player) {
	var human *player.CLIPlayer
	build := func(pc config.PlayerConfig) player.Player {
		if pc.Kind == config.Human {
			if human == nil {
				human = player.NewCLIPlayer(cfg.Input, cfg.OutputFile, cfg.ClearScreen)
			}
			return human
		}
		ai := player.NewAIPlayer(pc.Depth)
		ai.Log = cfg.LogFile
		ai.Verbosity = cfg.Verbosity
		return ai
	}
	return build(cfg.White), build(cfg.Black)
}

// tagGame fills the PGN tags from the configuration and the outcome.
func tagGame(game *output.Game, cfg *config.Config, outcome player.Outcome, date time.Time, round int) {
	game.Tags["Event"] = cfg.Output.Event
	game.Tags["Site"] = cfg.Output.Site
	game.Tags["Date"] = date.Format("2006.01.02")
	game.Tags["Round"] = fmt.Sprintf("%d", round)
	game.Tags["White"] = cfg.White.String()
	game.Tags["Black"] = cfg.Black.String()
	game.Tags["Result"] = outcome.Result()
	game.Tags["Termination"] = outcome.Termination.String()
	game.Tags["PlyCount"] = fmt.Sprintf("%d", len(game.Moves))
}

// openWriters opens the PGN file and the JSON stream the configuration asks
// for. The returned func closes the writers and then the PGN file.
func openWriters(cfg *config.Config) ([]output.GameWriter, func() error, error) {
	var writers []output.GameWriter
	var file *os.File

	if cfg.Output.PGNFile != "" {
		f, err := os.Create(cfg.Output.PGNFile)
		if err != nil {
			return nil, nil, fmt.Errorf("creating PGN file %s: %w", cfg.Output.PGNFile, err)
		}
		file = f
		writers = append(writers, output.NewPGNWriter(file, cfg))
	}
	if cfg.Output.JSONFormat {
		writers = append(writers, output.NewGameWriter(cfg.OutputFile, cfg))
	}

	closeAll := func() error {
		var firstErr error
		for _, w := range writers {
			if err := w.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		if file != nil {
			if err := file.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}
	return writers, closeAll, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess at the terminal or between two search players.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPlayers (-white/-w, -black/-b):\n")
	fmt.Fprintf(os.Stderr, "  cli      Enter moves at the terminal\n")
	fmt.Fprintf(os.Stderr, "  ai<N>    Alpha-beta search at depth N\n")
	fmt.Fprintf(os.Stderr, "  Unrecognised tokens select ai%d.\n", config.DefaultAIDepth)
}
