package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// CastlingAvailability records, per colour and column, whether the rook
// that started on that column may still castle.
type CastlingAvailability [2][chess.BoardSize]bool

// Allows reports whether the colour's rook on column may castle.
func (a CastlingAvailability) Allows(colour chess.Colour, column chess.ColumnIndex) bool {
	return a[colour][column]
}

// Any reports whether colour may castle with any rook.
func (a CastlingAvailability) Any(colour chess.Colour) bool {
	for _, ok := range a[colour] {
		if ok {
			return true
		}
	}
	return false
}

// ParseCastlingAvailability decodes the FEN castling field. "-" means no
// castling. Standard mode accepts K, Q, k and q, where K/k name the H-file
// rook and Q/q the A-file rook. Shredder mode is chosen when the first
// character is a file letter; every character must then be a file letter,
// upper case for White and lower case for Black.
func ParseCastlingAvailability(field string) (CastlingAvailability, error) {
	var a CastlingAvailability
	if field == "" {
		return a, fmt.Errorf("castling availability must not be blank: %w", errors.ErrInvalidFEN)
	}
	if field == "-" {
		return a, nil
	}

	shredder := isFileLetter(rune(field[0]))
	seen := make(map[rune]bool)
	for _, c := range field {
		if seen[c] {
			return a, fmt.Errorf("repeated character in availability field %c: %w", c, errors.ErrInvalidFEN)
		}
		seen[c] = true

		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}

		var column chess.ColumnIndex
		switch {
		case shredder && isFileLetter(c):
			column = chess.ColumnIndex(unicode.ToLower(c) - 'a')
		case !shredder && (c == 'K' || c == 'k'):
			column = chess.ColH
		case !shredder && (c == 'Q' || c == 'q'):
			column = chess.ColA
		default:
			return a, fmt.Errorf("invalid character in availability field %c: %w", c, errors.ErrInvalidFEN)
		}
		a[colour][column] = true
	}
	return a, nil
}

func isFileLetter(c rune) bool {
	return (c >= 'a' && c <= 'h') || (c >= 'A' && c <= 'H')
}

// NewBoardStateFromFEN decodes a six-field FEN record. Each piece's
// HasMoved flag is reconstructed: a rook on its home rank is unmoved iff its
// file is flagged in the castling field; a king on its home rank is unmoved
// iff its colour has any castling flag; a pawn on its starting rank is
// unmoved; every other piece is assumed to have moved.
func NewBoardStateFromFEN(fen string) (*BoardState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("wrong number of fields in record (%d/6): %w", len(fields), errors.ErrInvalidFEN)
	}

	s := &BoardState{}

	switch fields[1] {
	case "w", "W":
		s.currentPlayer = chess.White
	case "b", "B":
		s.currentPlayer = chess.Black
	default:
		return nil, fmt.Errorf("next player must be 'b' or 'w' (not %s): %w", fields[1], errors.ErrInvalidFEN)
	}

	castling, err := ParseCastlingAvailability(fields[2])
	if err != nil {
		return nil, err
	}

	if err := parsePiecePositions(&s.board, fields[0], castling); err != nil {
		return nil, err
	}

	if fields[3] != "-" {
		ep, err := chess.ParseCoordinate(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant target %q: %w", fields[3], errors.ErrInvalidFEN)
		}
		if ep.Row != chess.Row3 && ep.Row != chess.Row6 {
			return nil, fmt.Errorf("en passant target %v must be on rank 3 or 6: %w", ep, errors.ErrInvalidFEN)
		}
		s.startEnPassant, s.hasStartEnPassant = ep, true
	}

	s.halfmoveClock = parseClock(fields[4], 0)
	s.fullmoveNumber = parseClock(fields[5], 1)
	if s.fullmoveNumber < 1 {
		s.fullmoveNumber = 1
	}

	s.updateEnPassant()
	return s, nil
}

// parseClock reads a FEN counter, falling back to def for anything that is
// not a non-negative number.
func parseClock(field string, def int) int {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// parsePiecePositions fills board from the FEN placement field.
func parsePiecePositions(board *chess.Board, placement string, castling CastlingAvailability) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("wrong number of rows (%d/8): %w", len(rows), errors.ErrInvalidFEN)
	}

	for i, text := range rows {
		row := chess.RowIndex(i)
		column := 0
		for _, c := range text {
			if c >= '1' && c <= '8' {
				column += int(c - '0')
				continue
			}
			p, err := chess.PieceFromFENChar(c)
			if err != nil {
				return fmt.Errorf("invalid character %c in row %v: %w", c, row, errors.ErrInvalidFEN)
			}
			if column >= chess.BoardSize {
				column++
				continue
			}
			coord := chess.Coord(chess.ColumnIndex(column), row)
			if p.Kind == chess.Pawn && (row == chess.Row1 || row == chess.Row8) {
				return fmt.Errorf("pawn on back rank at %v: %w", coord, errors.ErrInvalidFEN)
			}
			p.HasMoved = !startsUnmoved(p, coord, castling)
			board.Set(coord, p)
			column++
		}
		if column != chess.BoardSize {
			return fmt.Errorf("wrong number of pieces (%d/8) in row %v: %w", column, row, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// startsUnmoved decides whether a piece read from FEN has never moved.
func startsUnmoved(p chess.Piece, c chess.Coordinate, castling CastlingAvailability) bool {
	switch p.Kind {
	case chess.Pawn:
		return c.Row == p.Colour.PawnRow()
	case chess.Rook:
		return c.Row == p.Colour.HomeRow() && castling.Allows(p.Colour, c.Column)
	case chess.King:
		return c.Row == p.Colour.HomeRow() && castling.Any(p.Colour)
	}
	return false
}

// Castling returns the castling availability implied by the HasMoved flags:
// an unmoved rook on its home rank whose unmoved king shares that rank.
func (s *BoardState) Castling() CastlingAvailability {
	var a CastlingAvailability
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := colour.HomeRow()
		king, ok := s.board.Find(chess.King, colour)
		if !ok || king.Row != home {
			continue
		}
		if k, _ := s.board.Get(king); k.HasMoved {
			continue
		}
		for _, column := range chess.Columns() {
			p, ok := s.board.Get(chess.Coord(column, home))
			if ok && p.Kind == chess.Rook && p.Colour == colour && !p.HasMoved {
				a[colour][column] = true
			}
		}
	}
	return a
}

// String encodes the availability as a FEN castling field, using KQkq when
// every flagged rook is on the A or H file and Shredder letters otherwise.
func (a CastlingAvailability) String() string {
	standard := true
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for column := chess.ColB; column <= chess.ColG; column++ {
			if a[colour][column] {
				standard = false
			}
		}
	}

	var sb strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for column := chess.ColH; column >= chess.ColA; column-- {
			if !a[colour][column] {
				continue
			}
			var c rune
			switch {
			case !standard:
				c = rune(column.Letter())
			case column == chess.ColH:
				c = 'k'
			default:
				c = 'q'
			}
			if colour == chess.White {
				c = unicode.ToUpper(c)
			}
			sb.WriteRune(c)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// ToFEN encodes the state as a six-field FEN record.
func (s *BoardState) ToFEN() string {
	var sb strings.Builder
	for _, row := range chess.Rows() {
		if row != chess.Row8 {
			sb.WriteByte('/')
		}
		empty := 0
		for _, column := range chess.Columns() {
			p, ok := s.board.Get(chess.Coord(column, row))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.FENChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	side := "w"
	if s.currentPlayer == chess.Black {
		side = "b"
	}
	ep := "-"
	if c, ok := s.EnPassantTarget(); ok {
		ep = c.String()
	}
	return fmt.Sprintf("%s %s %s %s %d %d", sb.String(), side, s.Castling(), ep, s.halfmoveClock, s.fullmoveNumber)
}
