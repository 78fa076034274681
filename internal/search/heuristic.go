// Package search implements the fixed-depth alpha-beta search used by the
// computer player.
package search

import (
	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

// Bounds of the evaluation scale. A win for White scores WinScore, a win
// for Black scores -WinScore.
const (
	WinScore  = 1.0
	DrawScore = 0.0

	// maxHeuristic keeps a static evaluation strictly inside the win bounds.
	maxHeuristic = 0.99
)

// rowFactor and columnFactor weight a piece by how central its square is.
var (
	rowFactor = [chess.BoardSize]float64{
		chess.Row8: 0.85, chess.Row7: 0.9, chess.Row6: 0.95, chess.Row5: 1.0,
		chess.Row4: 1.0, chess.Row3: 0.95, chess.Row2: 0.9, chess.Row1: 0.85,
	}
	columnFactor = [chess.BoardSize]float64{
		chess.ColA: 0.85, chess.ColB: 0.9, chess.ColC: 0.95, chess.ColD: 1.0,
		chess.ColE: 1.0, chess.ColF: 0.95, chess.ColG: 0.9, chess.ColH: 0.85,
	}
)

// Heuristic scores a position from White's point of view: the sum of the
// signed piece values, each weighted by its square's row and column factors,
// clamped to [-0.99, 0.99].
func Heuristic(s *engine.BoardState) float64 {
	board := s.Board()
	var total float64
	for _, c := range chess.AllCoordinates() {
		p, ok := board.Get(c)
		if !ok {
			continue
		}
		total += p.Value() * rowFactor[c.Row] * columnFactor[c.Column]
	}
	return clamp(total)
}

func clamp(v float64) float64 {
	switch {
	case v > maxHeuristic:
		return maxHeuristic
	case v < -maxHeuristic:
		return -maxHeuristic
	}
	return v
}
