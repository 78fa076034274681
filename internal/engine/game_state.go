// Package engine provides chess move validation and board state manipulation.
package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// clocks holds the FEN move counters saved before each committed move.
type clocks struct {
	halfmove int
	fullmove int
}

// BoardState is the side to move, the board, the stack of committed moves
// and the en-passant target. It is mutated only through DoMove and UndoMove.
// A BoardState must not be shared between goroutines; use Clone.
type BoardState struct {
	currentPlayer chess.Colour
	board         chess.Board
	history       []chess.MoveRecord

	// en-passant target supplied at construction, used while history is empty
	startEnPassant    chess.Coordinate
	hasStartEnPassant bool

	enPassant    chess.Coordinate
	hasEnPassant bool

	halfmoveClock  int
	fullmoveNumber int
	savedClocks    []clocks
}

// NewBoardState returns the standard initial position with White to move.
func NewBoardState() *BoardState {
	return &BoardState{
		currentPlayer:  chess.White,
		board:          chess.NewInitialBoard(),
		fullmoveNumber: 1,
	}
}

// Player returns the colour to move.
func (s *BoardState) Player() chess.Colour {
	return s.currentPlayer
}

// Board returns a copy of the board.
func (s *BoardState) Board() chess.Board {
	return s.board
}

// PieceAt returns the piece at c and whether the square is occupied.
func (s *BoardState) PieceAt(c chess.Coordinate) (chess.Piece, bool) {
	return s.board.Get(c)
}

// History returns a copy of the committed moves, oldest first.
func (s *BoardState) History() []chess.MoveRecord {
	return slices.Clone(s.history)
}

// Ply returns the number of committed moves.
func (s *BoardState) Ply() int {
	return len(s.history)
}

// LastMove returns the most recently committed move, if any.
func (s *BoardState) LastMove() (chess.MoveRecord, bool) {
	if len(s.history) == 0 {
		return chess.MoveRecord{}, false
	}
	return s.history[len(s.history)-1], true
}

// EnPassantTarget returns the square behind a pawn that has just advanced
// two squares, if the last move was such an advance.
func (s *BoardState) EnPassantTarget() (chess.Coordinate, bool) {
	return s.enPassant, s.hasEnPassant
}

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (s *BoardState) HalfmoveClock() int {
	return s.halfmoveClock
}

// FullmoveNumber returns the FEN fullmove number.
func (s *BoardState) FullmoveNumber() int {
	return s.fullmoveNumber
}

// HasKings reports whether exactly one king of each colour is on the board.
func (s *BoardState) HasKings() bool {
	counts := map[chess.Colour]int{}
	for _, c := range chess.AllCoordinates() {
		if p, ok := s.board.Get(c); ok && p.Kind == chess.King {
			counts[p.Colour]++
		}
	}
	return counts[chess.White] == 1 && counts[chess.Black] == 1
}

// Clone returns a deep copy of the state.
func (s *BoardState) Clone() *BoardState {
	c := *s
	c.history = slices.Clone(s.history)
	c.savedClocks = slices.Clone(s.savedClocks)
	return &c
}
