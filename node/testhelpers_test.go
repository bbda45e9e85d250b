package node

import (
	"strings"
	"testing"
)

// blockFromGrid parses an 8-line grid of '.' (dead) and 'o' (alive) into a
// Block - test-only, since a public textual-fixture parser is out of
// scope (see DESIGN.md).
func blockFromGrid(t *testing.T, grid string) Block {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(grid), "\n")
	if len(lines) != BlockWidth {
		t.Fatalf("blockFromGrid: want %d rows, got %d", BlockWidth, len(lines))
	}
	var rows [8]byte
	for y, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != BlockWidth {
			t.Fatalf("blockFromGrid: row %d has %d cells, want %d", y, len(line), BlockWidth)
		}
		var row byte
		for x := 0; x < BlockWidth; x++ {
			row <<= 1
			if line[x] == 'o' {
				row |= 1
			} else if line[x] != '.' {
				t.Fatalf("blockFromGrid: invalid cell %q", line[x])
			}
		}
		rows[y] = row
	}
	return BlockFromRowsArray(rows)
}
