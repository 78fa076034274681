package chess

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Signum returns the sign of x: -1, 0, or 1.
func Signum[T constraints.Signed](x T) T {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// IsStraight reports whether the move runs along a rank, a file or a diagonal.
func IsStraight(m Move) bool {
	dRow, dColumn := m.Delta()
	if dRow == 0 && dColumn == 0 {
		return false
	}
	return dRow == 0 || dColumn == 0 || Abs(dRow) == Abs(dColumn)
}

// SquaresBetween returns the squares strictly between m.From and m.To, in
// order from From towards To. Moves that are not along a rank, file or
// diagonal, and moves between adjacent squares, have no squares between.
func SquaresBetween(m Move) []Coordinate {
	if !IsStraight(m) {
		return nil
	}
	dRow, dColumn := m.Delta()
	stepRow, stepColumn := Signum(dRow), Signum(dColumn)
	steps := Abs(dRow)
	if Abs(dColumn) > steps {
		steps = Abs(dColumn)
	}
	if steps < 2 {
		return nil
	}

	between := make([]Coordinate, 0, steps-1)
	c := m.From
	for i := 1; i < steps; i++ {
		c = c.Offset(stepRow, stepColumn)
		between = append(between, c)
	}
	return between
}

// ParseCoordinate parses a two-character algebraic coordinate such as "e4".
// The file may be upper or lower case.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("coordinates must have exactly two characters, got %q: %w",
			s, errors.ErrInvalidCoordinate)
	}

	file := s[0]
	var column ColumnIndex
	switch {
	case file >= 'a' && file <= 'h':
		column = ColumnIndex(file - 'a')
	case file >= 'A' && file <= 'H':
		column = ColumnIndex(file - 'A')
	default:
		return Coordinate{}, fmt.Errorf("invalid column %c: %w", file, errors.ErrInvalidCoordinate)
	}

	rank := s[1]
	if rank < '1' || rank > '8' {
		return Coordinate{}, fmt.Errorf("invalid row %c: %w", rank, errors.ErrInvalidCoordinate)
	}
	return Coordinate{Row: RowIndex(BoardSize - int(rank-'0')), Column: column}, nil
}

// ParseMove parses a move written as two coordinates, e.g. "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("moves must have exactly four characters, got %q: %w",
			s, errors.ErrInvalidCoordinate)
	}
	from, err := ParseCoordinate(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseCoordinate(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
