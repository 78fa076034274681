// Package perft counts the leaves of the legal move tree, sequentially or
// split over the root moves on a worker pool, and cross-checks the count
// against an independent bitboard move generator.
//
// The engine always promotes to a queen, so every count here treats a
// promotion as a single move.
package perft

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/worker"
)

// Count returns the number of move sequences of exactly depth plies from s.
// s is restored before Count returns.
func Count(s *engine.BoardState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	side := s.Player()
	moves := s.GetLegalMoves(side)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		record, err := s.GetMoveResult(m, side)
		if err != nil {
			panic(fmt.Sprintf("generated move %v rejected: %v", m, err))
		}
		s.DoMove(record)
		nodes += Count(s, depth-1)
		s.UndoMove()
	}
	return nodes
}

// MoveCount is the subtree size below one root move.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// Divide counts the subtree of every root move at depth-1 plies, using
// workers goroutines, each on its own copy of s. Results are in root move
// order.
func Divide(s *engine.BoardState, depth, workers int) ([]MoveCount, error) {
	if depth < 1 {
		return nil, fmt.Errorf("perft depth must be at least 1, got %d: %w", depth, errors.ErrInvalidConfig)
	}

	moves := s.GetLegalMoves(s.Player())
	pool := worker.NewPool(countSubtree,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		for i, m := range moves {
			pool.Submit(worker.WorkItem{State: s.Clone(), Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	counts := make([]MoveCount, len(moves))
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			pool.Stop()
			continue
		}
		counts[result.Index] = MoveCount{Move: result.Move, Nodes: result.Nodes}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return counts, nil
}

// Total sums the node counts of a divide.
func Total(counts []MoveCount) uint64 {
	var total uint64
	for _, c := range counts {
		total += c.Nodes
	}
	return total
}

func countSubtree(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, Move: item.Move}
	if _, err := item.State.TryMove(item.Move); err != nil {
		result.Error = errors.Wrapf(err, "root move %v", item.Move)
		return result
	}
	result.Nodes = Count(item.State, item.Depth)
	return result
}

// Reference counts the same tree as Count with dragontoothmg, starting from
// the FEN of s.
func Reference(s *engine.BoardState, depth int) uint64 {
	board := dragontoothmg.ParseFen(s.ToFEN())
	return referenceCount(&board, depth)
}

func referenceCount(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		if !queenOrNoPromotion(m.String()) {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		undo := b.Apply(m)
		nodes += referenceCount(b, depth-1)
		undo()
	}
	return nodes
}

// queenOrNoPromotion reports whether a UCI move is not an under-promotion.
func queenOrNoPromotion(uci string) bool {
	return len(uci) == 4 || uci[4] == 'q'
}
