// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Sign returns +1 for White and -1 for Black.
func (c Colour) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

// RowIncrement returns the row index step that moves a piece of this colour
// towards the opposing home rank. Rows are numbered from rank 8 downwards,
// so White advances with -1.
func (c Colour) RowIncrement() int {
	return -c.Sign()
}

// HomeRow returns the row of the colour's back rank.
func (c Colour) HomeRow() RowIndex {
	if c == White {
		return Row1
	}
	return Row8
}

// PawnRow returns the row the colour's pawns start on.
func (c Colour) PawnRow() RowIndex {
	if c == White {
		return Row2
	}
	return Row7
}

// RowIndex is a board row. Index 0 is rank 8, index 7 is rank 1.
type RowIndex int

const (
	Row8 RowIndex = iota
	Row7
	Row6
	Row5
	Row4
	Row3
	Row2
	Row1
)

// ColumnIndex is a board file, A through H.
type ColumnIndex int

const (
	ColA ColumnIndex = iota
	ColB
	ColC
	ColD
	ColE
	ColF
	ColG
	ColH
)

// BoardSize is the number of rows and columns.
const BoardSize = 8

var (
	allRows    = [BoardSize]RowIndex{Row8, Row7, Row6, Row5, Row4, Row3, Row2, Row1}
	allColumns = [BoardSize]ColumnIndex{ColA, ColB, ColC, ColD, ColE, ColF, ColG, ColH}
)

// Rows returns every row in board order, rank 8 first.
func Rows() [BoardSize]RowIndex {
	return allRows
}

// Columns returns every column in board order, A first.
func Columns() [BoardSize]ColumnIndex {
	return allColumns
}

// Valid reports whether r is on the board.
func (r RowIndex) Valid() bool {
	return r >= Row8 && r <= Row1
}

// Rank returns the rank number (1-8) of the row.
func (r RowIndex) Rank() int {
	return BoardSize - int(r)
}

// String returns the rank digit of the row.
func (r RowIndex) String() string {
	return string(rune('0' + r.Rank()))
}

// Valid reports whether c is on the board.
func (c ColumnIndex) Valid() bool {
	return c >= ColA && c <= ColH
}

// Letter returns the lower-case file letter.
func (c ColumnIndex) Letter() byte {
	return byte('a' + c)
}

// String returns the upper-case file letter.
func (c ColumnIndex) String() string {
	return string(rune('A' + c))
}

// Coordinate is a square on the board.
type Coordinate struct {
	Row    RowIndex
	Column ColumnIndex
}

// Coord builds a coordinate from a column and a row.
func Coord(column ColumnIndex, row RowIndex) Coordinate {
	return Coordinate{Row: row, Column: column}
}

// Valid reports whether the coordinate lies on the board.
func (c Coordinate) Valid() bool {
	return c.Row.Valid() && c.Column.Valid()
}

// Offset returns the coordinate shifted by the given row and column deltas.
// The result may lie off the board.
func (c Coordinate) Offset(dRow, dColumn int) Coordinate {
	return Coordinate{Row: c.Row + RowIndex(dRow), Column: c.Column + ColumnIndex(dColumn)}
}

// String returns the coordinate in algebraic notation, e.g. "e4".
func (c Coordinate) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
	}
	return string([]byte{c.Column.Letter(), byte('0' + c.Row.Rank())})
}

// AllCoordinates returns all 64 squares, row by row from rank 8.
func AllCoordinates() []Coordinate {
	coords := make([]Coordinate, 0, BoardSize*BoardSize)
	for _, row := range allRows {
		for _, column := range allColumns {
			coords = append(coords, Coordinate{Row: row, Column: column})
		}
	}
	return coords
}

// Move is a request to move whatever stands on From to To.
type Move struct {
	From Coordinate
	To   Coordinate
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Delta returns the row and column differences To - From.
func (m Move) Delta() (dRow, dColumn int) {
	return int(m.To.Row) - int(m.From.Row), int(m.To.Column) - int(m.From.Column)
}
