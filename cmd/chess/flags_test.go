package main

import (
	"flag"
	"testing"

	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

// saveRestoreBool is a helper to save and defer-restore a bool flag pointer.
// Usage: defer saveRestoreBool(noClear, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyPlayerFlags
// ---------------------------------------------------------------------------

func TestApplyPlayerFlags(t *testing.T) {
	tests := []struct {
		name      string
		white     string
		black     string
		wantWhite config.PlayerConfig
		wantBlack config.PlayerConfig
	}{
		{
			name: "defaults", white: "cli", black: "ai3",
			wantWhite: config.PlayerConfig{Kind: config.Human},
			wantBlack: config.PlayerConfig{Kind: config.Computer, Depth: 3},
		},
		{
			name: "two computers", white: "ai1", black: "ai4",
			wantWhite: config.PlayerConfig{Kind: config.Computer, Depth: 1},
			wantBlack: config.PlayerConfig{Kind: config.Computer, Depth: 4},
		},
		{
			name: "unknown token", white: "stockfish", black: "CLI",
			wantWhite: config.PlayerConfig{Kind: config.Computer, Depth: config.DefaultAIDepth},
			wantBlack: config.PlayerConfig{Kind: config.Human},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(whitePlayer, tt.white)()
			defer saveRestoreString(blackPlayer, tt.black)()
			cfg := config.NewConfig()
			applyPlayerFlags(cfg)
			testutil.AssertEqual(t, cfg.White, tt.wantWhite)
			testutil.AssertEqual(t, cfg.Black, tt.wantBlack)
		})
	}
}

func TestShorthandFlagsShareValue(t *testing.T) {
	defer saveRestoreString(whitePlayer, "cli")()
	defer saveRestoreString(blackPlayer, "ai3")()

	if err := flag.Set("w", "ai2"); err != nil {
		t.Fatalf("setting -w: %v", err)
	}
	if err := flag.Set("b", "cli"); err != nil {
		t.Fatalf("setting -b: %v", err)
	}
	testutil.AssertEqual(t, *whitePlayer, "ai2")
	testutil.AssertEqual(t, *blackPlayer, "cli")
}

// ---------------------------------------------------------------------------
// applyGameFlags
// ---------------------------------------------------------------------------

func TestApplyGameFlags(t *testing.T) {
	defer saveRestoreString(startFEN, testutil.EndgameFEN)()
	defer saveRestoreInt(maxPlies, 40)()
	defer saveRestoreBool(noClear, true)()
	defer saveRestoreInt(games, 4)()

	cfg := config.NewConfig()
	applyGameFlags(cfg)

	testutil.AssertEqual(t, cfg.StartFEN, testutil.EndgameFEN)
	testutil.AssertEqual(t, cfg.MaxPlies, 40)
	testutil.AssertEqual(t, cfg.Games, 4)
	testutil.AssertFalse(t, cfg.ClearScreen, "ClearScreen with -noclear")
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	tests := []struct {
		name       string
		lineLength int
		want       uint
	}{
		{"custom line length", 60, 60},
		{"zero keeps default", 0, 80},
		{"negative keeps default", -5, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(pgnFile, "out.pgn")()
			defer saveRestoreBool(jsonOutput, true)()
			defer saveRestoreInt(lineLength, tt.lineLength)()
			defer saveRestoreString(event, "Club match")()
			defer saveRestoreString(site, "Home")()

			cfg := config.NewConfig()
			applyOutputFlags(cfg)

			testutil.AssertEqual(t, cfg.Output, config.OutputConfig{
				PGNFile:       "out.pgn",
				JSONFormat:    true,
				MaxLineLength: tt.want,
				Event:         "Club match",
				Site:          "Home",
			})
		})
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	defer saveRestoreInt(verbosity, config.Commentary)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	testutil.AssertEqual(t, cfg.Verbosity, config.Commentary)
	testutil.AssertNoError(t, cfg.Validate())
}
