// Package output exports played games as PGN and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	notnil "github.com/notnil/chess"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// SevenTagRoster lists the PGN tags every game carries, in output order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// Game is a finished or interrupted game ready for export.
type Game struct {
	Tags map[string]string

	StartFEN      string
	StartPlayer   chess.Colour
	StartFullmove int

	Moves    []chess.MoveRecord
	FinalFEN string
}

// NewGame builds a Game from the state the game started in and the state it
// ended in. The moves are the history final gained since start. Tags hold
// the seven tag roster with unknown values, plus SetUp and FEN when the game
// did not start from the initial position.
func NewGame(start, final *engine.BoardState) *Game {
	history := final.History()
	g := &Game{
		Tags:          make(map[string]string, len(SevenTagRoster)+2),
		StartFEN:      start.ToFEN(),
		StartPlayer:   start.Player(),
		StartFullmove: start.FullmoveNumber(),
		Moves:         history[start.Ply():],
		FinalFEN:      final.ToFEN(),
	}
	for _, tag := range SevenTagRoster {
		g.Tags[tag] = "?"
	}
	g.Tags["Result"] = "*"
	if g.StartFEN != engine.InitialFEN {
		g.Tags["SetUp"] = "1"
		g.Tags["FEN"] = g.StartFEN
	}
	return g
}

// Result returns the Result tag, or "*" when it is unset.
func (g *Game) Result() string {
	if result := g.Tags["Result"]; result != "" && result != "?" {
		return result
	}
	return "*"
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes game as PGN: the tags, a blank line, the movetext in
// SAN wrapped at maxLineLength, and a blank line.
func OutputGame(game *Game, w io.Writer, maxLineLength int) error {
	tokens, err := movetext(game)
	if err != nil {
		return err
	}

	outputTags(game, w)
	fmt.Fprintln(w)

	ow := NewOutputWriter(w, maxLineLength)
	for _, token := range tokens {
		ow.Write(token)
	}
	ow.Write(game.Result())
	ow.NewLine()
	fmt.Fprintln(w)
	return nil
}

// outputTags writes the seven tag roster first, then any other tags in
// name order.
func outputTags(game *Game, w io.Writer) {
	for _, tag := range SevenTagRoster {
		value := game.Tags[tag]
		if value == "" {
			value = "?"
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}

	extra := maps.Keys(game.Tags)
	slices.Sort(extra)
	for _, tag := range extra {
		if !slices.Contains(SevenTagRoster, tag) {
			fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(game.Tags[tag]))
		}
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// movetext replays the game with notnil/chess from its start position and
// returns move numbers and SAN moves as separate tokens.
func movetext(game *Game) ([]string, error) {
	fen, err := notnil.FEN(game.StartFEN)
	if err != nil {
		return nil, fmt.Errorf("start position %q: %w", game.StartFEN, err)
	}
	replay := notnil.NewGame(fen)

	number := game.StartFullmove
	if number < 1 {
		number = 1
	}
	tokens := make([]string, 0, len(game.Moves)*3/2+1)
	for i, record := range game.Moves {
		pos := replay.Position()
		white := pos.Turn() == notnil.White
		switch {
		case white:
			tokens = append(tokens, fmt.Sprintf("%d.", number))
		case i == 0:
			tokens = append(tokens, fmt.Sprintf("%d...", number))
		}

		m, err := findMove(pos, record.UCI())
		if err != nil {
			return nil, errors.Wrapf(err, "ply %d", i+1)
		}
		tokens = append(tokens, notnil.AlgebraicNotation{}.Encode(pos, m))
		if err := replay.Move(m); err != nil {
			return nil, errors.Wrapf(err, "ply %d", i+1)
		}
		if !white {
			number++
		}
	}
	return tokens, nil
}

// findMove returns the legal move of pos written as uci. Moves from
// ValidMoves carry the check and castling tags SAN encoding needs.
func findMove(pos *notnil.Position, uci string) (*notnil.Move, error) {
	for _, m := range pos.ValidMoves() {
		if m.String() == uci {
			return m, nil
		}
	}
	return nil, fmt.Errorf("move %s: %w", uci, errors.ErrIllegalMove)
}
