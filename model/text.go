package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	charOccupied = '@'
	charEmpty    = '.'
	charRemoved  = 'x'

	gridPosOccupied = "██"
	gridPosEmpty    = "  "
	gridPosRemoved  = "░░"

	clearCmd = "clear"
)

// ParseError reports an invalid grid text: either an unexpected
// character or a line whose length differs from the first line.
// Line and Col are 1-based.
type ParseError struct {
	Line   int
	Col    int
	Char   rune
	Reason string
}

func (e *ParseError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("unexpected character %q at line %d, column %d", e.Char, e.Line, e.Col)
	}
	return fmt.Sprintf("%s at line %d", e.Reason, e.Line)
}

// Parse converts grid text to a Grid. Surrounding whitespace is trimmed
// from the block and from each line; every remaining character must be
// one of '@' (Occupied), '.' (Empty), 'x' (Removed), and all lines must
// have equal length. No partial grid is returned on error.
func Parse(text string) (*Grid, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.New("[Parse] empty grid text")
	}

	lines := strings.Split(trimmed, "\n")
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(strings.TrimSpace(line))
	}

	height := len(rows)
	width := len(rows[0])

	grid := NewGrid(width, height)
	for y, row := range rows {
		if len(row) != width {
			return nil, &ParseError{
				Line:   y + 1,
				Reason: fmt.Sprintf("line has %d characters, expected %d", len(row), width),
			}
		}
		for x, char := range row {
			switch char {
			case charOccupied:
				grid.cells[y][x] = Occupied
			case charEmpty:
				grid.cells[y][x] = Empty
			case charRemoved:
				grid.cells[y][x] = Removed
			default:
				return nil, &ParseError{Line: y + 1, Col: x + 1, Char: char}
			}
		}
	}

	return grid, nil
}

// Render converts a Grid back to its text form, one line per row,
// newline-joined with no trailing whitespace. Render(Parse(t)) == t for
// any valid, already-normalized input.
func Render(g *Grid) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y][x].Rune())
		}
	}
	return sb.String()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the grid to the terminal with block glyphs
func (r *TerminalRenderer) Display(g *Grid) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			switch g.cells[y][x] {
			case Occupied:
				fmt.Print(gridPosOccupied)
			case Removed:
				fmt.Print(gridPosRemoved)
			default:
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
