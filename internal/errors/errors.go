// Package errors provides sentinel errors and error types for the chess core.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidCoordinate indicates text that does not name a square.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidPiece indicates a character that does not name a piece.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoMoves indicates a player was asked to move with no legal move available.
	ErrNoMoves = errors.New("no legal moves")
)

// MoveError is a rejected move together with the human-readable reason.
// errors.Is(err, ErrIllegalMove) holds for every MoveError.
type MoveError struct {
	Move   string // The move in long algebraic form, e.g. "e2e4"
	Reason string // Why the move was rejected
}

// NewMoveError returns a MoveError for move with the given reason.
func NewMoveError(move fmt.Stringer, reason string) *MoveError {
	return &MoveError{Move: move.String(), Reason: reason}
}

// Error returns the move followed by the rejection reason.
func (e *MoveError) Error() string {
	if e.Move == "" {
		return e.Reason
	}
	return e.Move + ": " + e.Reason
}

// Unwrap returns ErrIllegalMove.
func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}

// GameError wraps errors with game context, including ply position, the
// side to move and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	Player   string // Colour of the player to move (if known)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.Player != "" {
		parts = append(parts, e.Player+" to move")
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	if len(parts) == 0 {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "game error"
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
