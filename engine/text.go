package engine

import (
	"fmt"
	"strings"
)

// Text grid format, used for test fixtures and terminal display:
// a border of "+" and 2*size dashes, then one line per row with a
// 2-character cell per column between "|" bars. An empty cell is two
// spaces; player 1's cells put the shape letter on the left, player 2's
// on the right. Games with more players are not representable here and
// need an out-of-band display.

// FormatGrid renders a grid in the text format. It fails for grids
// containing players other than 1 and 2.
func FormatGrid(grid [][]Cell) (string, error) {
	size := len(grid)
	border := "+" + strings.Repeat("-", size*2) + "+\n"

	var b strings.Builder
	b.WriteString(border)
	for _, row := range grid {
		b.WriteString("|")
		for _, cell := range row {
			switch cell.Player {
			case 0:
				b.WriteString("  ")
			case 1:
				b.WriteString(cell.Kind.String() + " ")
			case 2:
				b.WriteString(" " + cell.Kind.String())
			default:
				return "", fmt.Errorf("player %d is not representable in the text grid format", cell.Player)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String(), nil
}

// ParseGrid parses a text-format grid back into cells.
func ParseGrid(s string) ([][]Cell, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) < 3 {
		return nil, fmt.Errorf("grid text too short: %d lines", len(lines))
	}
	size := (len(lines[0]) - 2) / 2
	if len(lines) != size+2 {
		return nil, fmt.Errorf("grid text has %d rows, want %d", len(lines)-2, size)
	}

	grid := make([][]Cell, size)
	for r, line := range lines[1 : len(lines)-1] {
		if len(line) != size*2+2 || line[0] != '|' || line[len(line)-1] != '|' {
			return nil, fmt.Errorf("malformed grid row %d: %q", r, line)
		}
		grid[r] = make([]Cell, size)
		cells := line[1 : len(line)-1]
		for c := 0; c < size; c++ {
			pair := cells[c*2 : c*2+2]
			if strings.TrimSpace(pair) == "" {
				continue
			}
			player := 1
			letter := string(pair[0])
			if pair[0] == ' ' {
				player = 2
				letter = string(pair[1])
			}
			kind, ok := KindForLetter(letter)
			if !ok {
				return nil, fmt.Errorf("unknown shape letter %q at row %d col %d", letter, r, c)
			}
			grid[r][c] = Cell{Player: player, Kind: kind}
		}
	}
	return grid, nil
}
