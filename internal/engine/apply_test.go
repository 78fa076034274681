package engine

import (
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

func TestDoMove_TogglesPlayerAndHistory(t *testing.T) {
	s := NewBoardState()
	record, err := s.GetMoveResult(testutil.Mv("e2e4"), chess.White)
	testutil.AssertNoError(t, err)

	s.DoMove(record)

	testutil.AssertEqual(t, s.Player(), chess.Black)
	testutil.AssertEqual(t, s.Ply(), 1)
	last, ok := s.LastMove()
	testutil.AssertTrue(t, ok, "LastMove() ok")
	testutil.AssertEqual(t, last, record)

	p, ok := s.PieceAt(testutil.Sq("e4"))
	if !ok || p.Kind != chess.Pawn || !p.HasMoved {
		t.Errorf("PieceAt(e4) = %+v, %v; want moved White Pawn", p, ok)
	}
	target, ok := s.EnPassantTarget()
	if !ok || target != testutil.Sq("e3") {
		t.Errorf("EnPassantTarget() = %v, %v; want e3", target, ok)
	}

	s.UndoMove()
	testutil.AssertEqual(t, s.Player(), chess.White)
	testutil.AssertEqual(t, s.Ply(), 0)
}

func TestEnPassantTarget_ClearedByOtherMoves(t *testing.T) {
	tests := []struct {
		name  string
		moves string
		want  string // empty when no target
	}{
		{"single push", "e2e3", ""},
		{"double push", "e2e4", "e3"},
		{"black double push", "e2e4 c7c5", "c6"},
		{"knight after double push", "e2e4 g8f6", ""},
		{"capture after double push", "e2e4 d7d5 e4d5", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBoardState()
			playMoves(t, s, tt.moves)
			target, ok := s.EnPassantTarget()
			if tt.want == "" {
				if ok {
					t.Errorf("EnPassantTarget() = %v, want none", target)
				}
				return
			}
			if !ok || target != testutil.Sq(tt.want) {
				t.Errorf("EnPassantTarget() = %v, %v; want %s", target, ok, tt.want)
			}
			if last, _ := s.LastMove(); last.Move.From.Row == chess.Row7 && target.Row != chess.Row6 {
				t.Errorf("black double push target on %v, want rank 6", target)
			}
		})
	}
}

func TestPromotion_DoUndo(t *testing.T) {
	s := mustFEN(t, "r3k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	before := s.Clone()

	record, err := s.TryMove(testutil.Mv("b7a8"))
	testutil.AssertNoError(t, err)
	if record.Kind != chess.PromotionMove || !record.HasCaptured {
		t.Fatalf("record = %+v, want promotion with capture", record)
	}
	testutil.AssertEqual(t, record.Captured, chess.Piece{Kind: chess.Rook, Colour: chess.Black, HasMoved: true})

	queen, ok := s.PieceAt(testutil.Sq("a8"))
	if !ok || queen.Kind != chess.Queen || queen.Colour != chess.White {
		t.Errorf("PieceAt(a8) = %+v, want White Queen", queen)
	}
	if _, ok := s.PieceAt(testutil.Sq("b7")); ok {
		t.Error("b7 still occupied after promotion")
	}
	testutil.AssertEqual(t, s.HalfmoveClock(), 0)

	s.UndoMove()
	testutil.AssertEqualOpts(t, s, before, testutil.StateOptions(BoardState{}, clocks{}))

	record, err = s.TryMove(testutil.Mv("b7b8"))
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, record.HasCaptured, "straight promotion HasCaptured")
	s.UndoMove()
	testutil.AssertEqualOpts(t, s, before, testutil.StateOptions(BoardState{}, clocks{}))
}

func TestUndoMove_RestoresCapturedPiece(t *testing.T) {
	s := NewBoardState()
	playMoves(t, s, "e2e4 d7d5")
	before := s.Clone()

	playMoves(t, s, "e4d5")
	if p, _ := s.PieceAt(testutil.Sq("d5")); p.Colour != chess.White {
		t.Fatalf("PieceAt(d5) = %v after capture", p)
	}

	s.UndoMove()
	testutil.AssertEqualOpts(t, s, before, testutil.StateOptions(BoardState{}, clocks{}))
}

func TestUndoMove_EmptyHistoryPanics(t *testing.T) {
	s := NewBoardState()
	defer func() {
		if recover() == nil {
			t.Error("UndoMove() on empty history did not panic")
		}
	}()
	s.UndoMove()
}

func TestDoUndo_SequenceRestoresState(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves string
	}{
		{"opening", InitialFEN, "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 e1g1 f8c5"},
		{"castles both sides", testutil.CastlingFEN, "e1c1 e8g8 d1d8 f8d8"},
		{"en passant", "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1", "d7d5 e5d6 e8d8 d6d7"},
		{"promotion race", "8/1P5k/8/8/8/8/6p1/4K3 w - - 0 1", "b7b8 g2g1 e1e2 h7g6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustFEN(t, tt.fen)
			before := s.Clone()
			moves := testutil.Mvs(tt.moves)

			var snapshots []*BoardState
			for _, m := range moves {
				snapshots = append(snapshots, s.Clone())
				if _, err := s.TryMove(m); err != nil {
					t.Fatalf("TryMove(%v) error: %v", m, err)
				}
			}

			for i := len(moves) - 1; i >= 0; i-- {
				s.UndoMove()
				testutil.AssertEqualOpts(t, s, snapshots[i], testutil.StateOptions(BoardState{}, clocks{}), "undo of %v", moves[i])
			}
			testutil.AssertEqualOpts(t, s, before, testutil.StateOptions(BoardState{}, clocks{}))
		})
	}
}

func TestClocks(t *testing.T) {
	s := NewBoardState()

	playMoves(t, s, "g1f3")
	testutil.AssertEqual(t, s.HalfmoveClock(), 1)
	testutil.AssertEqual(t, s.FullmoveNumber(), 1)

	playMoves(t, s, "g8f6")
	testutil.AssertEqual(t, s.HalfmoveClock(), 2)
	testutil.AssertEqual(t, s.FullmoveNumber(), 2)

	playMoves(t, s, "e2e4")
	testutil.AssertEqual(t, s.HalfmoveClock(), 0)

	s.UndoMove()
	testutil.AssertEqual(t, s.HalfmoveClock(), 2)
	s.UndoMove()
	testutil.AssertEqual(t, s.FullmoveNumber(), 1)
}

func TestClone_Independent(t *testing.T) {
	s := NewBoardState()
	c := s.Clone()

	playMoves(t, c, "e2e4")

	testutil.AssertEqual(t, s.Ply(), 0)
	testutil.AssertEqual(t, s.Player(), chess.White)
	if _, ok := s.PieceAt(testutil.Sq("e4")); ok {
		t.Error("move on clone changed the original board")
	}

	history := c.History()
	history[0] = chess.MoveRecord{}
	if last, _ := c.LastMove(); last.Move != testutil.Mv("e2e4") {
		t.Error("History() returned the internal slice")
	}
}
