package othello

import (
	"fmt"
	"strconv"
)

// Move is a 0-indexed board coordinate. The sentinel (-1, -1) records a
// pass: a turn on which the player had no legal move.
type Move struct {
	X int
	Y int
}

// Pass is the sentinel move recorded when a player cannot play.
var Pass = Move{X: -1, Y: -1}

// IsPass reports whether the move is the pass sentinel.
func (m Move) IsPass() bool { return m.X == -1 && m.Y == -1 }

// String renders the move in save-format algebraic notation: a column
// letter followed by a 1-based row number ("e4"), or "-1-1" for a pass.
func (m Move) String() string {
	if m.IsPass() {
		return "-1-1"
	}
	return fmt.Sprintf("%c%d", 'a'+byte(m.X), m.Y+1)
}

// ParseMove converts algebraic notation back into a Move. It only checks
// the shape of the token; board-range validation is left to the caller,
// which knows the board size.
func ParseMove(s string) (Move, error) {
	if s == "-1-1" {
		return Pass, nil
	}
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return Move{}, fmt.Errorf("malformed move %q", s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return Move{}, fmt.Errorf("malformed move %q", s)
	}
	return Move{X: int(s[0] - 'a'), Y: row - 1}, nil
}
