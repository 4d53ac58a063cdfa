package othello

import (
	"fmt"
	"strings"
)

// String renders the board for display: a column-letter header, then one
// row per line with its 1-based number and X/O/_ glyphs.
func (b *Board) String() string {
	n := int(b.size)
	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < n; x++ {
		if x > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('a' + byte(x))
	}
	for y := 0; y < n; y++ {
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, "%d ", y+1)
		for x := 0; x < n; x++ {
			sb.WriteString(b.At(x, y).String())
			if x < n-1 {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// Export serializes the game in the save-file format: the side to move on
// its own line, the grid, and (when the board is an unbroken game from the
// opening layout) the move history. A position loaded mid-game has no
// replayable history, so only its grid is written; the result always
// parses back to an equal board either way.
func (b *Board) Export() string {
	var sb strings.Builder
	sb.WriteString(b.current.String())
	sb.WriteByte('\n')
	n := int(b.size)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.At(x, y).String())
		}
		sb.WriteByte('\n')
	}
	if b.fromStart && len(b.history) > 0 {
		sb.WriteByte('\n')
		sb.WriteString(b.ExportHistory())
	}
	return sb.String()
}

// ExportHistory serializes the move history, one full turn per line:
// "<turn>. X <move>" plus " O <move>" when White has answered. Passes
// appear as the -1-1 sentinel.
func (b *Board) ExportHistory() string {
	var sb strings.Builder
	for i := 0; i < len(b.history); i += 2 {
		fmt.Fprintf(&sb, "%d. X %s", i/2+1, b.history[i].move)
		if i+1 < len(b.history) {
			fmt.Fprintf(&sb, " O %s", b.history[i+1].move)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
