package player

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/search"
)

// AIPlayer picks moves with a fixed-depth alpha-beta search.
type AIPlayer struct {
	Depth int

	// Log receives one line per move at Verbosity 2 or above.
	Log       io.Writer
	Verbosity int
}

// NewAIPlayer returns a silent AIPlayer searching at depth.
func NewAIPlayer(depth int) *AIPlayer {
	return &AIPlayer{Depth: depth, Log: io.Discard}
}

// GetMove searches s in place. The search undoes every move it makes, so s
// is unchanged on return.
func (p *AIPlayer) GetMove(s *engine.BoardState) (chess.Move, error) {
	result := search.Search(s, p.Depth)
	if !result.HasMove {
		return chess.Move{}, fmt.Errorf("%v to move: %w", s.Player(), errors.ErrNoMoves)
	}
	if p.Verbosity >= 2 && p.Log != nil {
		fmt.Fprintf(p.Log, "%v plays %v (value %+.4f, %d nodes, %d cutoffs)\n",
			s.Player(), result.Move, result.Value, result.Nodes, result.Cutoffs)
	}
	return result.Move, nil
}

// GetDisplay returns NoDisplay.
func (p *AIPlayer) GetDisplay() Display {
	return NoDisplay{}
}
