package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

// playGame plays moves from fen and returns the exported game.
func playGame(t *testing.T, fen, moves string) *Game {
	t.Helper()
	start, err := engine.NewBoardStateFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardStateFromFEN(%q) error: %v", fen, err)
	}
	final := start.Clone()
	for _, m := range testutil.Mvs(moves) {
		if _, err := final.TryMove(m); err != nil {
			t.Fatalf("TryMove(%v) error: %v", m, err)
		}
	}
	return NewGame(start, final)
}

func pgnText(t *testing.T, game *Game, maxLineLength int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := OutputGame(game, &buf, maxLineLength); err != nil {
		t.Fatalf("OutputGame() error: %v", err)
	}
	return buf.String()
}

func TestNewGame(t *testing.T) {
	game := playGame(t, engine.InitialFEN, "e2e4 e7e5")

	testutil.AssertEqual(t, len(game.Moves), 2)
	testutil.AssertEqual(t, game.StartFEN, engine.InitialFEN)
	testutil.AssertEqual(t, game.StartPlayer, chess.White)
	testutil.AssertEqual(t, game.Result(), "*")
	testutil.AssertEqual(t, game.FinalFEN, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	if _, ok := game.Tags["FEN"]; ok {
		t.Error("FEN tag set for a game from the initial position")
	}

	setup := playGame(t, testutil.CastlingFEN, "")
	testutil.AssertEqual(t, setup.Tags["SetUp"], "1")
	testutil.AssertEqual(t, setup.Tags["FEN"], testutil.CastlingFEN)
}

func TestOutputGame_Movetext(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves string
		want  string
	}{
		{"fool's mate", engine.InitialFEN, "f2f3 e7e5 g2g4 d8h4", "1. f3 e5 2. g4 Qh4# *"},
		{"black starts", "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1", "d7d5 e5d6", "1... d5 2. exd6 *"},
		{"castling", testutil.CastlingFEN, "e1g1 e8c8", "1. O-O O-O-O *"},
		{"promotion", "8/1P5k/8/8/8/8/8/4K3 w - - 0 1", "b7b8", "1. b8=Q *"},
		{"no moves", engine.InitialFEN, "", "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := pgnText(t, playGame(t, tt.fen, tt.moves), 80)
			parts := strings.SplitN(text, "\n\n", 2)
			if len(parts) != 2 {
				t.Fatalf("OutputGame() = %q, want tags and movetext", text)
			}
			testutil.AssertEqual(t, parts[1], tt.want+"\n\n")
		})
	}
}

func TestOutputGame_Tags(t *testing.T) {
	game := playGame(t, testutil.CastlingFEN, "e1g1")
	game.Tags["White"] = `Player "One"`
	game.Tags["Result"] = "1-0"
	game.Tags["Termination"] = "checkmate"

	text := pgnText(t, game, 80)
	wantTags := []string{
		`[Event "?"]`,
		`[Site "?"]`,
		`[Date "?"]`,
		`[Round "?"]`,
		`[White "Player \"One\""]`,
		`[Black "?"]`,
		`[Result "1-0"]`,
		`[FEN "` + testutil.CastlingFEN + `"]`,
		`[SetUp "1"]`,
		`[Termination "checkmate"]`,
	}
	testutil.AssertEqual(t, strings.Split(text, "\n")[:len(wantTags)], wantTags)
	testutil.AssertContains(t, text, "1. O-O 1-0\n")
}

func TestOutputGame_LineLength(t *testing.T) {
	moves := "g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1 f6g8 g1f3 g8f6 f3g1 f6g8"
	text := pgnText(t, playGame(t, engine.InitialFEN, moves), 20)
	movetext := strings.SplitN(text, "\n\n", 2)[1]

	lines := strings.Split(strings.TrimSpace(movetext), "\n")
	if len(lines) < 2 {
		t.Fatalf("movetext not wrapped: %q", movetext)
	}
	for _, line := range lines {
		if len(line) > 20 {
			t.Errorf("line %q longer than 20", line)
		}
	}
}

func TestOutputGame_RejectsIllegalRecord(t *testing.T) {
	game := playGame(t, engine.InitialFEN, "")
	game.Moves = []chess.MoveRecord{chess.NewQuietRecord(testutil.Mv("e2e5"), true)}

	err := OutputGame(game, &bytes.Buffer{}, 80)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestEscapeTagValue(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`a "quote"`, `a \"quote\"`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		if got := escapeTagValue(tt.in); got != tt.want {
			t.Errorf("escapeTagValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGameToJSON(t *testing.T) {
	game := playGame(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1", "d7d5 e5d6")
	game.Tags["Termination"] = "ply limit"

	jg := GameToJSON(game)
	testutil.AssertEqual(t, jg.PlyCount, 2)
	testutil.AssertEqual(t, jg.Result, "*")
	testutil.AssertEqual(t, jg.Termination, "ply limit")
	testutil.AssertEqual(t, jg.InitialFEN, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	testutil.AssertEqual(t, jg.FinalFEN, game.FinalFEN)

	want := []JSONMove{
		{Ply: 1, Color: "black", UCI: "d7d5", From: "d7", To: "d5", Kind: "quiet"},
		{Ply: 2, MoveNumber: 2, Color: "white", UCI: "e5d6", From: "e5", To: "d6", Kind: "capture", Captured: "pawn"},
	}
	testutil.AssertEqual(t, jg.Moves, want)
}

func TestGameToJSON_SpecialMoves(t *testing.T) {
	castle := GameToJSON(playGame(t, testutil.CastlingFEN, "e1c1"))
	testutil.AssertEqual(t, castle.Moves[0].Kind, "castle")
	testutil.AssertEqual(t, castle.Moves[0].Rook, "a1d1")

	promotion := GameToJSON(playGame(t, "r3k3/1P6/8/8/8/8/8/4K3 w - - 0 1", "b7a8"))
	testutil.AssertEqual(t, promotion.Moves[0].UCI, "b7a8q")
	testutil.AssertEqual(t, promotion.Moves[0].Promotion, "queen")
	testutil.AssertEqual(t, promotion.Moves[0].Captured, "rook")
}

// TestPGNWriter_WriteGame verifies PGN writer outputs correct format
func TestPGNWriter_WriteGame(t *testing.T) {
	game := playGame(t, engine.InitialFEN, "e2e4 e7e5 g1f3")
	game.Tags["White"] = "ai3"

	var buf bytes.Buffer
	writer := NewPGNWriter(&buf, config.NewConfig())
	if err := writer.WriteGame(game); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	output := buf.String()
	testutil.AssertContains(t, output, `[White "ai3"]`)
	testutil.AssertContains(t, output, "1. e4 e5 2. Nf3 *")
}

// TestJSONWriter_WriteGame verifies JSON writer outputs correct format
func TestJSONWriter_WriteGame(t *testing.T) {
	game := playGame(t, engine.InitialFEN, "e2e4")
	game.Tags["Black"] = "Spassky"

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, config.NewConfig())
	if err := writer.WriteGame(game); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("batch JSON writer wrote before Flush")
	}
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var decoded JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	testutil.AssertEqual(t, len(decoded.Games), 1)
	testutil.AssertEqual(t, decoded.Games[0].Tags["Black"], "Spassky")
	testutil.AssertEqual(t, decoded.Games[0].Moves[0].UCI, "e2e4")
}

// TestJSONWriter_SeveralGames verifies every buffered game lands in one document
func TestJSONWriter_SeveralGames(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.Games = 2
	writer := NewJSONWriter(&buf, cfg)
	for _, moves := range []string{"d2d4", "c2c4 e7e5"} {
		if err := writer.WriteGame(playGame(t, engine.InitialFEN, moves)); err != nil {
			t.Fatalf("WriteGame failed: %v", err)
		}
	}
	testutil.AssertNoError(t, writer.Close())

	var decoded JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	testutil.AssertEqual(t, len(decoded.Games), 2)
	testutil.AssertEqual(t, decoded.Games[0].Moves[0].UCI, "d2d4")
	testutil.AssertEqual(t, decoded.Games[1].PlyCount, 2)

	// A second Close has nothing left to write.
	buf.Reset()
	testutil.AssertNoError(t, writer.Close())
	testutil.AssertEqual(t, buf.Len(), 0)
}

// TestJSONWriter_Close verifies Close flushes pending games
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, config.NewConfig())
	if err := writer.WriteGame(playGame(t, engine.InitialFEN, "e2e4")); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected output after Close")
	}
}

// TestNewGameWriter verifies the writer follows the configured format
func TestNewGameWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	if _, ok := NewGameWriter(&buf, cfg).(*PGNWriter); !ok {
		t.Error("NewGameWriter() should return a PGN writer by default")
	}
	cfg.Output.JSONFormat = true
	if _, ok := NewGameWriter(&buf, cfg).(*JSONWriter); !ok {
		t.Error("NewGameWriter() should return a JSON writer when JSONFormat is set")
	}
}

// TestPGNWriter_FlushClose verifies Flush and Close don't error
func TestPGNWriter_FlushClose(t *testing.T) {
	var buf bytes.Buffer
	writer := NewPGNWriter(&buf, config.NewConfig())
	testutil.AssertNoError(t, writer.Flush())
	testutil.AssertNoError(t, writer.Close())
}
