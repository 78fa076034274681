package chess

import "unicode"

// RecordKind categorizes the physically distinct kinds of committed move.
type RecordKind int

const (
	QuietMove RecordKind = iota
	CaptureMove
	CastleMove
	PromotionMove
)

// String returns the name of the record kind.
func (k RecordKind) String() string {
	switch k {
	case QuietMove:
		return "quiet"
	case CaptureMove:
		return "capture"
	case CastleMove:
		return "castle"
	case PromotionMove:
		return "promotion"
	}
	return "unknown"
}

// MoveRecord describes a committed move with everything needed to undo it.
// Which fields are meaningful depends on Kind:
//
//	QuietMove:     Move, FirstMove
//	CaptureMove:   Move, Captured, CapturedFrom, FirstMove
//	CastleMove:    Move (the king move), RookMove
//	PromotionMove: Move, PromotedTo, Captured if HasCaptured, FirstMove
type MoveRecord struct {
	Kind RecordKind

	// Move is the requested move; for a castle it is the king's move.
	Move Move

	// RookMove is the rook's part of a castle.
	RookMove Move

	// Captured is the piece removed from the board.
	Captured    Piece
	HasCaptured bool

	// CapturedFrom differs from Move.To only for en-passant.
	CapturedFrom Coordinate

	// PromotedTo is the kind a promoting pawn becomes.
	PromotedTo PieceKind

	// FirstMove is true iff the moving piece had not moved before.
	FirstMove bool
}

// NewQuietRecord returns a non-capturing move record.
func NewQuietRecord(m Move, firstMove bool) MoveRecord {
	return MoveRecord{Kind: QuietMove, Move: m, FirstMove: firstMove}
}

// NewCaptureRecord returns a capture record. capturedFrom is m.To except for
// en-passant.
func NewCaptureRecord(m Move, captured Piece, capturedFrom Coordinate, firstMove bool) MoveRecord {
	return MoveRecord{
		Kind:         CaptureMove,
		Move:         m,
		Captured:     captured,
		HasCaptured:  true,
		CapturedFrom: capturedFrom,
		FirstMove:    firstMove,
	}
}

// NewCastleRecord returns a castle record. Both pieces are moving for the
// first time.
func NewCastleRecord(kingMove, rookMove Move) MoveRecord {
	return MoveRecord{Kind: CastleMove, Move: kingMove, RookMove: rookMove, FirstMove: true}
}

// NewPromotionRecord returns a promotion record; captured is nil for a
// straight advance.
func NewPromotionRecord(m Move, promotedTo PieceKind, captured *Piece, firstMove bool) MoveRecord {
	r := MoveRecord{Kind: PromotionMove, Move: m, PromotedTo: promotedTo, FirstMove: firstMove}
	if captured != nil {
		r.Captured = *captured
		r.HasCaptured = true
		r.CapturedFrom = m.To
	}
	return r
}

// IsEnPassant reports whether the record is an en-passant capture.
func (r MoveRecord) IsEnPassant() bool {
	return r.Kind == CaptureMove && r.CapturedFrom != r.Move.To
}

// UCI returns the move in UCI long algebraic notation. Castles are written
// as the king's move and promotions carry the lower-case piece letter.
func (r MoveRecord) UCI() string {
	s := r.Move.String()
	if r.Kind == PromotionMove {
		s += string(unicode.ToLower(rune(r.PromotedTo.Letter())))
	}
	return s
}

// String returns a short description, e.g. "e5d6 capture".
func (r MoveRecord) String() string {
	return r.UCI() + " " + r.Kind.String()
}
