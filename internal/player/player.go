// Package player defines the players and displays driven by the game loop,
// with a terminal front-end and a computer player built on the search.
package player

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

// Display renders the game for one audience. Displays with the same
// UniqueID are treated as one display.
type Display interface {
	UniqueID() uint32
	DisplayBoard(s *engine.BoardState)
	DisplayCheckmate(winner chess.Colour)
}

// Player chooses moves for one side.
type Player interface {
	// GetMove returns the move to play from s. It may block, e.g. on user
	// input or a search. s must be left as it was found.
	GetMove(s *engine.BoardState) (chess.Move, error)
	GetDisplay() Display
}

// NoDisplayID is the id of NoDisplay.
const NoDisplayID uint32 = 0

// NoDisplay shows nothing. It is the display of players without a front-end.
type NoDisplay struct{}

// UniqueID returns NoDisplayID.
func (NoDisplay) UniqueID() uint32 { return NoDisplayID }

// DisplayBoard does nothing.
func (NoDisplay) DisplayBoard(*engine.BoardState) {}

// DisplayCheckmate does nothing.
func (NoDisplay) DisplayCheckmate(chess.Colour) {}

// Displays is a set of displays keyed by UniqueID.
type Displays struct {
	byID map[uint32]Display
}

// NewDisplays collects displays, keeping the first of each UniqueID.
func NewDisplays(displays ...Display) *Displays {
	d := &Displays{byID: make(map[uint32]Display, len(displays))}
	for _, display := range displays {
		if display == nil {
			continue
		}
		if _, ok := d.byID[display.UniqueID()]; !ok {
			d.byID[display.UniqueID()] = display
		}
	}
	return d
}

// Len returns the number of distinct displays.
func (d *Displays) Len() int {
	return len(d.byID)
}

// ordered returns the displays sorted by UniqueID.
func (d *Displays) ordered() []Display {
	ids := maps.Keys(d.byID)
	slices.Sort(ids)
	displays := make([]Display, 0, len(ids))
	for _, id := range ids {
		displays = append(displays, d.byID[id])
	}
	return displays
}

// DisplayBoard renders s on every display.
func (d *Displays) DisplayBoard(s *engine.BoardState) {
	for _, display := range d.ordered() {
		display.DisplayBoard(s)
	}
}

// DisplayCheckmate announces the winner on every display.
func (d *Displays) DisplayCheckmate(winner chess.Colour) {
	for _, display := range d.ordered() {
		display.DisplayCheckmate(winner)
	}
}
