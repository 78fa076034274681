package engine

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// DoMove commits record: it moves the piece or pieces, marks them as moved,
// pushes the record onto the history, passes the move to the other side and
// recomputes the en-passant target. record must come from GetMoveResult on
// the current position.
func (s *BoardState) DoMove(record chess.MoveRecord) {
	mover, ok := s.board.Get(record.Move.From)
	if !ok {
		panic(fmt.Sprintf("no piece to move for %v", record))
	}

	s.savedClocks = append(s.savedClocks, clocks{halfmove: s.halfmoveClock, fullmove: s.fullmoveNumber})

	switch record.Kind {
	case chess.QuietMove:
		s.movePiece(record.Move)

	case chess.CaptureMove:
		s.board.Clear(record.CapturedFrom)
		s.movePiece(record.Move)

	case chess.CastleMove:
		s.movePiece(record.Move)
		s.movePiece(record.RookMove)

	case chess.PromotionMove:
		s.board.Clear(record.Move.From)
		s.board.Set(record.Move.To, chess.Piece{Kind: record.PromotedTo, Colour: mover.Colour, HasMoved: true})
	}

	if mover.Kind == chess.Pawn || record.HasCaptured {
		s.halfmoveClock = 0
	} else {
		s.halfmoveClock++
	}
	if mover.Colour == chess.Black {
		s.fullmoveNumber++
	}

	s.history = append(s.history, record)
	s.currentPlayer = s.currentPlayer.Opposite()
	s.updateEnPassant()
}

// movePiece moves the piece at m.From to m.To and marks it as moved.
func (s *BoardState) movePiece(m chess.Move) {
	p, _ := s.board.Get(m.From)
	p.HasMoved = true
	s.board.Clear(m.From)
	s.board.Set(m.To, p)
}

// UndoMove reverts the most recent DoMove. It panics if no move has been made.
func (s *BoardState) UndoMove() {
	n := len(s.history)
	if n == 0 {
		panic("cannot undo moves, since none have been made")
	}
	record := s.history[n-1]
	s.history = s.history[:n-1]

	switch record.Kind {
	case chess.QuietMove:
		s.unmovePiece(record.Move, !record.FirstMove)

	case chess.CaptureMove:
		s.unmovePiece(record.Move, !record.FirstMove)
		s.board.Set(record.CapturedFrom, record.Captured)

	case chess.CastleMove:
		king, _ := s.board.Get(record.Move.To)
		rook, _ := s.board.Get(record.RookMove.To)
		s.board.Clear(record.Move.To)
		s.board.Clear(record.RookMove.To)
		king.HasMoved = false
		rook.HasMoved = false
		s.board.Set(record.Move.From, king)
		s.board.Set(record.RookMove.From, rook)

	case chess.PromotionMove:
		promoted, _ := s.board.Get(record.Move.To)
		s.board.Clear(record.Move.To)
		s.board.Set(record.Move.From, chess.Piece{Kind: chess.Pawn, Colour: promoted.Colour, HasMoved: !record.FirstMove})
		if record.HasCaptured {
			s.board.Set(record.Move.To, record.Captured)
		}
	}

	last := s.savedClocks[len(s.savedClocks)-1]
	s.savedClocks = s.savedClocks[:len(s.savedClocks)-1]
	s.halfmoveClock, s.fullmoveNumber = last.halfmove, last.fullmove

	s.currentPlayer = s.currentPlayer.Opposite()
	s.updateEnPassant()
}

// unmovePiece moves the piece at m.To back to m.From with the given moved flag.
func (s *BoardState) unmovePiece(m chess.Move, hasMoved bool) {
	p, _ := s.board.Get(m.To)
	p.HasMoved = hasMoved
	s.board.Clear(m.To)
	s.board.Set(m.From, p)
}

// updateEnPassant derives the en-passant target from the last committed
// move, falling back to the construction value when no move has been made.
func (s *BoardState) updateEnPassant() {
	if len(s.history) == 0 {
		s.enPassant, s.hasEnPassant = s.startEnPassant, s.hasStartEnPassant
		return
	}
	s.enPassant, s.hasEnPassant = chess.Coordinate{}, false

	last := s.history[len(s.history)-1]
	if last.Kind != chess.QuietMove {
		return
	}
	p, ok := s.board.Get(last.Move.To)
	if !ok || p.Kind != chess.Pawn {
		return
	}
	dRow, _ := last.Move.Delta()
	if chess.Abs(dRow) != 2 {
		return
	}
	s.enPassant, s.hasEnPassant = last.Move.From.Offset(chess.Signum(dRow), 0), true
}
