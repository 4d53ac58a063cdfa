package othello

import (
	"errors"
	"fmt"
)

// IllegalMoveError is returned by Play when the coordinate is not in the
// current player's legal-move set. Always recoverable: the caller can
// prompt again or pick another move.
type IllegalMoveError struct {
	X, Y   int
	Player Color
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("move %d:%d from player %s is illegal", e.X, e.Y, e.Player)
}

// CannotUndoError is returned by Pop on an empty history. Surfacing it from
// search code means push/pop symmetry is broken somewhere.
type CannotUndoError struct{}

func (e *CannotUndoError) Error() string {
	return "cannot pop from this board"
}

// IllegalBoardSizeError is returned when a size outside {6, 8, 10, 12} is
// converted to a BoardSize.
type IllegalBoardSizeError struct {
	Size int
}

func (e *IllegalBoardSizeError) Error() string {
	return fmt.Sprintf("illegal board size %d (want 6, 8, 10 or 12)", e.Size)
}

var (
	errOverlap = errors.New("black and white bitboards overlap")
	errBadSide = errors.New("side to move must be black or white")
)

// ParseError is returned by the save-file parser. Line is 1-based in the
// input text.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Msg, e.Line)
}
