package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags        map[string]string `json:"tags"`
	Moves       []JSONMove        `json:"moves,omitempty"`
	Result      string            `json:"result,omitempty"`
	Termination string            `json:"termination,omitempty"`
	PlyCount    int               `json:"plyCount"`
	InitialFEN  string            `json:"initialFEN,omitempty"`
	FinalFEN    string            `json:"finalFEN,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Kind       string `json:"kind"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Rook       string `json:"rook,omitempty"` // castling rook move
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(games []*Game, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(games))
	for i, game := range games {
		jsonGames[i] = GameToJSON(game)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: jsonGames})
}

// GameToJSON converts a game to JSON format.
func GameToJSON(game *Game) *JSONGame {
	jg := &JSONGame{
		Tags:        copyTags(game.Tags),
		Result:      game.Result(),
		Termination: game.Tags["Termination"],
		PlyCount:    len(game.Moves),
		FinalFEN:    game.FinalFEN,
	}
	if game.Tags["SetUp"] == "1" {
		jg.InitialFEN = game.StartFEN
	}
	jg.Moves = convertMoveList(game)
	return jg
}

// copyTags copies game tags and ensures seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(SevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}

// convertMoveList converts the game's moves, numbering them from the start
// position.
func convertMoveList(game *Game) []JSONMove {
	result := make([]JSONMove, 0, len(game.Moves))

	moveNum := game.StartFullmove
	isWhite := game.StartPlayer == chess.White

	for i, record := range game.Moves {
		jm := convertSingleMove(record)
		jm.Ply = i + 1
		jm.Color = colorName(isWhite)
		if isWhite {
			jm.MoveNumber = moveNum
		}
		result = append(result, jm)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	return result
}

// convertSingleMove converts a single move record to JSON format.
func convertSingleMove(record chess.MoveRecord) JSONMove {
	jm := JSONMove{
		UCI:  record.UCI(),
		From: record.Move.From.String(),
		To:   record.Move.To.String(),
		Kind: record.Kind.String(),
	}
	if record.HasCaptured {
		jm.Captured = pieceTypeName(record.Captured.Kind)
	}
	switch record.Kind {
	case chess.PromotionMove:
		jm.Promotion = pieceTypeName(record.PromotedTo)
	case chess.CastleMove:
		jm.Rook = record.RookMove.String()
	}
	return jm
}

// colorName returns "white" or "black" based on the boolean.
func colorName(isWhite bool) string {
	if isWhite {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece kind as a lower-case word.
func pieceTypeName(k chess.PieceKind) string {
	return strings.ToLower(k.String())
}
