// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

var (
	// Players
	whitePlayer = flag.String("white", "cli", "White player: cli or ai<depth>")
	blackPlayer = flag.String("black", "ai3", "Black player: cli or ai<depth>")

	// Game options
	startFEN = flag.String("fen", engine.InitialFEN, "Start position in FEN")
	maxPlies = flag.Int("maxplies", 0, "Stop the game after N plies (0 = no limit)")
	noClear  = flag.Bool("noclear", false, "Don't clear the screen before showing the board")
	games    = flag.Int("games", 1, "Number of games to play from the start position")

	// Output options
	pgnFile    = flag.String("pgn", "", "Write the finished games to this PGN file")
	jsonOutput = flag.Bool("json", false, "Write the finished games to stdout as JSON")
	lineLength = flag.Int("linelength", 80, "Maximum PGN movetext line length")
	event      = flag.String("event", "Casual game", "PGN Event tag")
	site       = flag.String("site", "?", "PGN Site tag")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", config.Summary, "Diagnostics: 0=none, 1=summary, 2=per-move search commentary")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

func init() {
	flag.StringVar(whitePlayer, "w", "cli", "Shorthand for -white")
	flag.StringVar(blackPlayer, "b", "ai3", "Shorthand for -black")
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPlayerFlags(cfg)
	applyGameFlags(cfg)
	applyOutputFlags(cfg)

	cfg.Verbosity = *verbosity
}

// applyPlayerFlags parses the player tokens.
func applyPlayerFlags(cfg *config.Config) {
	cfg.White = config.ParsePlayerToken(*whitePlayer)
	cfg.Black = config.ParsePlayerToken(*blackPlayer)
}

// applyGameFlags configures the start position and game length.
func applyGameFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.MaxPlies = *maxPlies
	cfg.Games = *games
	cfg.ClearScreen = !*noClear
}

// applyOutputFlags configures game export.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.PGNFile = *pgnFile
	cfg.Output.JSONFormat = *jsonOutput
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.Event = *event
	cfg.Output.Site = *site
}
