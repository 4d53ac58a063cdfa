package othello

// Color identifies the contents of a board cell and, for Black and White,
// a player.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// Opposite returns the other player's color. Empty is its own opposite, so
// flipping perspective never needs a special case for vacant cells.
func (c Color) Opposite() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// String returns the save-format glyph for the color: "X" for Black, "O"
// for White and "_" for Empty.
func (c Color) String() string {
	switch c {
	case Black:
		return "X"
	case White:
		return "O"
	default:
		return "_"
	}
}

// colorFromGlyph maps a save-format cell token back to a Color.
func colorFromGlyph(s string) (Color, bool) {
	switch s {
	case "X":
		return Black, true
	case "O":
		return White, true
	case "_":
		return Empty, true
	default:
		return Empty, false
	}
}

// BoardSize is the side length of a board. Only the four sizes below are
// legal.
type BoardSize int

const (
	Size6  BoardSize = 6
	Size8  BoardSize = 8
	Size10 BoardSize = 10
	Size12 BoardSize = 12

	// MaxBoardSize bounds the per-size mask tables.
	MaxBoardSize = int(Size12)
)

var boardSizes = [4]BoardSize{Size6, Size8, Size10, Size12}

// NewBoardSize validates n and converts it to a BoardSize. Values outside
// {6, 8, 10, 12} yield an IllegalBoardSizeError.
func NewBoardSize(n int) (BoardSize, error) {
	for _, s := range boardSizes {
		if int(s) == n {
			return s, nil
		}
	}
	return 0, &IllegalBoardSizeError{Size: n}
}
