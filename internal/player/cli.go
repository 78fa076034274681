package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
)

// CLIDisplayID is the id shared by every terminal display.
const CLIDisplayID uint32 = 1

const clearScreen = "\x1b[2J"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// CLIDisplay draws the board on a terminal.
type CLIDisplay struct {
	Out         io.Writer
	ClearScreen bool
}

// UniqueID returns CLIDisplayID, so two CLI players share one display.
func (d *CLIDisplay) UniqueID() uint32 {
	return CLIDisplayID
}

// DisplayBoard clears the screen if configured, then draws the board and
// names the side to move.
func (d *CLIDisplay) DisplayBoard(s *engine.BoardState) {
	if d.ClearScreen {
		fmt.Fprint(d.Out, clearScreen)
	}
	fmt.Fprintln(d.Out, RenderBoard(s))
	fmt.Fprintf(d.Out, "\n%v's move\n\n", s.Player())
}

// DisplayCheckmate announces the winner.
func (d *CLIDisplay) DisplayCheckmate(winner chess.Colour) {
	fmt.Fprintf(d.Out, "Checkmate!\n%v Wins\n", winner)
}

// squareGlyph returns the symbol for an empty square: a8 is light.
func squareGlyph(c chess.Coordinate) rune {
	if (int(c.Row)+int(c.Column))%2 == 0 {
		return '◻'
	}
	return '◼'
}

// RenderBoard draws the position with rank 8 at the top, files and ranks
// labelled, inside a bordered box.
func RenderBoard(s *engine.BoardState) string {
	board := s.Board()
	var sb strings.Builder

	sb.WriteString(" ")
	for _, column := range chess.Columns() {
		sb.WriteString(" " + column.String())
	}
	for _, row := range chess.Rows() {
		sb.WriteString("\n" + row.String())
		for _, column := range chess.Columns() {
			c := chess.Coord(column, row)
			glyph := squareGlyph(c)
			if p, ok := board.Get(c); ok {
				glyph = p.Glyph()
			}
			sb.WriteRune(' ')
			sb.WriteRune(glyph)
		}
	}

	title := titleStyle.Render(fmt.Sprintf("Ply %d", s.Ply()))
	return title + "\n" + boardStyle.Render(sb.String())
}

// CLIPlayer reads moves typed on a terminal as two coordinates.
type CLIPlayer struct {
	in      *bufio.Scanner
	out     io.Writer
	display *CLIDisplay
}

// NewCLIPlayer reads from in and writes prompts, errors and the board to out.
func NewCLIPlayer(in io.Reader, out io.Writer, clearScreen bool) *CLIPlayer {
	return &CLIPlayer{
		in:      bufio.NewScanner(in),
		out:     out,
		display: &CLIDisplay{Out: out, ClearScreen: clearScreen},
	}
}

// GetMove prompts for an origin until one with a legal move is given, then
// for a destination until the move is legal. It fails only when input ends
// or cannot be read.
func (p *CLIPlayer) GetMove(s *engine.BoardState) (chess.Move, error) {
	var from chess.Coordinate
	for {
		c, err := p.readCoordinate("Move from: ")
		if err != nil {
			return chess.Move{}, err
		}
		if len(s.GetLegalMovesFrom(c, s.Player())) > 0 {
			from = c
			break
		}
		fmt.Fprintf(p.out, "Error: No moves available from %v\n", c)
	}

	for {
		to, err := p.readCoordinate("Move to: ")
		if err != nil {
			return chess.Move{}, err
		}
		m := chess.Move{From: from, To: to}
		if _, err := s.ValidateMove(m); err != nil {
			fmt.Fprintf(p.out, "Error: %v\n", err)
			continue
		}
		return m, nil
	}
}

func (p *CLIPlayer) readCoordinate(prompt string) (chess.Coordinate, error) {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return chess.Coordinate{}, fmt.Errorf("reading move: %w", err)
			}
			return chess.Coordinate{}, fmt.Errorf("reading move: %w", io.EOF)
		}
		c, err := chess.ParseCoordinate(strings.TrimSpace(p.in.Text()))
		if err != nil {
			fmt.Fprintf(p.out, "Error: %v\n", err)
			continue
		}
		return c, nil
	}
}

// GetDisplay returns the terminal display.
func (p *CLIPlayer) GetDisplay() Display {
	return p.display
}
