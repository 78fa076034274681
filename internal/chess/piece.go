package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Pawn PieceKind = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the name of the piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single upper-case SAN letter of the piece kind.
func (k PieceKind) Letter() byte {
	letters := []byte{'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the unsigned material value used by the search heuristic.
func (k PieceKind) Value() float64 {
	switch k {
	case Pawn:
		return 0.01
	case Knight:
		return 0.03
	case Bishop:
		return 0.04
	case Rook:
		return 0.05
	case Queen:
		return 0.09
	}
	return 0
}

// Piece is a chess piece on the board.
type Piece struct {
	Kind   PieceKind
	Colour Colour
	// HasMoved is false until the piece makes its first move.
	HasMoved bool
}

// NewPiece returns an unmoved piece.
func NewPiece(kind PieceKind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// Value returns the signed material value: positive for White, negative for Black.
func (p Piece) Value() float64 {
	return float64(p.Colour.Sign()) * p.Kind.Value()
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// FENChar returns the FEN letter: upper case for White, lower case for Black.
func (p Piece) FENChar() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

var glyphs = map[Colour][]rune{
	White: {'♙', '♖', '♘', '♗', '♕', '♔'},
	Black: {'♟', '♜', '♞', '♝', '♛', '♚'},
}

// Glyph returns the Unicode chess symbol for the piece.
func (p Piece) Glyph() rune {
	return glyphs[p.Colour][p.Kind]
}

// kindFromLetter converts an upper-case SAN letter to a piece kind.
func kindFromLetter(c rune) (PieceKind, bool) {
	switch c {
	case 'P':
		return Pawn, true
	case 'R':
		return Rook, true
	case 'N':
		return Knight, true
	case 'B':
		return Bishop, true
	case 'Q':
		return Queen, true
	case 'K':
		return King, true
	}
	return 0, false
}

// PieceFromFENChar converts a FEN piece letter to an unmoved piece.
// Upper case is White, lower case is Black.
func PieceFromFENChar(c rune) (Piece, error) {
	colour := White
	if unicode.IsLower(c) {
		colour = Black
	}
	kind, ok := kindFromLetter(unicode.ToUpper(c))
	if !ok {
		return Piece{}, fmt.Errorf("invalid piece character %c: %w", c, errors.ErrInvalidPiece)
	}
	return NewPiece(kind, colour), nil
}

// PieceFromChar decodes a single board character. SAN letters and the
// Unicode chess glyphs denote pieces; '_', ' ', '◻' and '◼' denote an empty
// square, reported with ok == false.
func PieceFromChar(c rune) (p Piece, ok bool, err error) {
	switch c {
	case '_', ' ', '◻', '◼':
		return Piece{}, false, nil
	}
	for colour, set := range glyphs {
		for kind, g := range set {
			if g == c {
				return NewPiece(PieceKind(kind), colour), true, nil
			}
		}
	}
	p, err = PieceFromFENChar(c)
	if err != nil {
		return Piece{}, false, fmt.Errorf("invalid character for square %c: %w", c, errors.ErrInvalidPiece)
	}
	return p, true, nil
}
