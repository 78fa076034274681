package chess

// Square is the content of one board square.
type Square struct {
	Piece    Piece
	Occupied bool
}

// Board is a total mapping from coordinate to optional piece.
// The zero value is an empty board.
type Board struct {
	squares [BoardSize][BoardSize]Square
}

// NewInitialBoard returns the standard chess starting position with every
// piece unmoved.
func NewInitialBoard() Board {
	var b Board
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		column := ColumnIndex(col)
		b.Set(Coord(column, Row8), NewPiece(kind, Black))
		b.Set(Coord(column, Row7), NewPiece(Pawn, Black))
		b.Set(Coord(column, Row2), NewPiece(Pawn, White))
		b.Set(Coord(column, Row1), NewPiece(kind, White))
	}
	return b
}

// Get returns the piece at c and whether the square is occupied.
func (b *Board) Get(c Coordinate) (Piece, bool) {
	sq := b.squares[c.Row][c.Column]
	return sq.Piece, sq.Occupied
}

// IsEmpty reports whether no piece stands on c.
func (b *Board) IsEmpty(c Coordinate) bool {
	return !b.squares[c.Row][c.Column].Occupied
}

// Set places a piece at c, replacing whatever was there.
func (b *Board) Set(c Coordinate, p Piece) {
	b.squares[c.Row][c.Column] = Square{Piece: p, Occupied: true}
}

// Clear empties the square at c.
func (b *Board) Clear(c Coordinate) {
	b.squares[c.Row][c.Column] = Square{}
}

// Find returns the first coordinate, in board order, holding a piece of the
// given kind and colour.
func (b *Board) Find(kind PieceKind, colour Colour) (Coordinate, bool) {
	for _, row := range allRows {
		for _, column := range allColumns {
			sq := b.squares[row][column]
			if sq.Occupied && sq.Piece.Kind == kind && sq.Piece.Colour == colour {
				return Coord(column, row), true
			}
		}
	}
	return Coordinate{}, false
}

// HasNoPiecesBetween scans the squares strictly between m.From and m.To.
// It returns clear == true when all of them are empty; otherwise it reports
// the first occupied coordinate and the piece standing there.
func (b *Board) HasNoPiecesBetween(m Move) (blocker Coordinate, piece Piece, clear bool) {
	for _, c := range SquaresBetween(m) {
		if p, ok := b.Get(c); ok {
			return c, p, false
		}
	}
	return Coordinate{}, Piece{}, true
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, row := range allRows {
		for _, column := range allColumns {
			if b.squares[row][column].Occupied {
				n++
			}
		}
	}
	return n
}
