package testutil

import (
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// Well-known test positions.
const (
	// KiwipeteFEN exercises castling, en-passant and promotion in perft.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// EndgameFEN is a sparse rook-and-pawn ending.
	EndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// CastlingFEN has both kings and all four rooks on their home squares.
	CastlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	// BackRankMateFEN is mate in one for White with Ra8.
	BackRankMateFEN = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"
)

// Sq parses an algebraic coordinate such as "e4". It panics on malformed
// input, which is a bug in the test itself.
func Sq(s string) chess.Coordinate {
	c, err := chess.ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Mv parses a move such as "e2e4". It panics on malformed input.
func Mv(s string) chess.Move {
	m, err := chess.ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Mvs parses a space-separated list of moves.
func Mvs(s string) []chess.Move {
	var moves []chess.Move
	for _, f := range strings.Fields(s) {
		moves = append(moves, Mv(f))
	}
	return moves
}

// StateOptions returns cmp options that compare values holding unexported
// fields, such as a board state, field by field. Pass a zero value of each
// struct type with unexported fields besides chess.Board.
func StateOptions(types ...interface{}) cmp.Options {
	return cmp.Options{
		cmp.AllowUnexported(append([]interface{}{chess.Board{}}, types...)...),
		cmpopts.EquateEmpty(),
	}
}
