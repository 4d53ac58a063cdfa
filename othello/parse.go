package othello

import (
	"strconv"
	"strings"
)

// sourceLine is one line of save-file input with comments stripped and its
// 1-based position in the raw text, kept for error reporting.
type sourceLine struct {
	num  int
	text string
}

// Parse reads a board from the save-file text format.
//
// The format is line oriented: "#" starts a comment running to end of line
// and blank lines are ignored. The first meaningful line holds the side to
// move ("X" or "O"), followed by the grid, one row of space-separated
// X/O/_ cells per line. The row length fixes the board size and every row
// must match it. An optional history section follows, one full turn per
// line ("<n>. X <move> O <move>", passes as -1-1) with strictly sequential
// turn numbers. When a history is present the moves are replayed from a
// fresh board and the result must reproduce the grid exactly.
func Parse(raw string) (*Board, error) {
	var lines []sourceLine
	for i, line := range strings.Split(raw, "\n") {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, sourceLine{num: i + 1, text: line})
	}
	if len(lines) == 0 {
		return nil, &ParseError{Line: 1, Msg: "trying to parse an empty board"}
	}

	colorLine := lines[0].num
	toMove, ok := colorFromGlyph(strings.TrimSpace(lines[0].text))
	if !ok || toMove == Empty {
		return nil, &ParseError{Line: colorLine, Msg: "expected to find color"}
	}
	lines = lines[1:]
	if len(lines) == 0 {
		return nil, &ParseError{Line: colorLine, Msg: "reached end of file before finding a board"}
	}

	grid, rest, err := parseGrid(lines)
	if err != nil {
		return nil, err
	}
	if err := settle(grid, toMove); err != nil {
		return nil, err
	}

	if len(rest) == 0 {
		return grid.board, nil
	}
	replayed, err := replayHistory(grid.board.size, rest)
	if err != nil {
		return nil, err
	}
	if !replayed.Equal(grid.board) {
		return nil, &ParseError{Line: rest[len(rest)-1].num, Msg: "history does not reproduce the board"}
	}
	return replayed, nil
}

// gridState carries the parsed grid as a board plus the raw masks.
type gridState struct {
	board *Board
	black Bitboard
	white Bitboard
}

func settle(g *gridState, toMove Color) error {
	return g.board.SetPosition(g.black, g.white, toMove)
}

func parseGrid(lines []sourceLine) (*gridState, []sourceLine, error) {
	first := strings.Fields(lines[0].text)
	size, err := NewBoardSize(len(first))
	if err != nil {
		return nil, nil, &ParseError{Line: lines[0].num, Msg: "illegal board size value"}
	}
	if len(lines) < int(size) {
		last := lines[len(lines)-1]
		return nil, nil, &ParseError{Line: last.num, Msg: "reached end of file before finished parsing"}
	}

	g := &gridState{
		board: NewBoard(size),
		black: NewBitboard(size),
		white: NewBitboard(size),
	}
	for y := 0; y < int(size); y++ {
		line := lines[y]
		cells := strings.Fields(line.text)
		if len(cells) != int(size) {
			return nil, nil, &ParseError{
				Line: line.num,
				Msg:  "row of size " + strconv.Itoa(len(cells)) + " where it should have been " + strconv.Itoa(int(size)),
			}
		}
		for x, cell := range cells {
			c, ok := colorFromGlyph(cell)
			if !ok {
				return nil, nil, &ParseError{Line: line.num, Msg: "expected to find either a cell or a space, found " + cell}
			}
			switch c {
			case Black:
				g.black.Set(x, y, true)
			case White:
				g.white.Set(x, y, true)
			}
		}
	}
	return g, lines[int(size):], nil
}

// replayHistory rebuilds the game by playing the recorded moves on a fresh
// board. Auto-passes recorded by Play must show up in the file as -1-1
// moves, so the replay tracks them and consumes the matching token instead
// of playing it twice.
func replayHistory(size BoardSize, lines []sourceLine) (*Board, error) {
	board := NewBoard(size)
	pendingPass := false
	for _, line := range lines {
		fields := strings.Fields(line.text)
		if len(fields) != 3 && len(fields) != 5 {
			return nil, &ParseError{Line: line.num, Msg: "incorrect line format: " + strconv.Quote(line.text)}
		}
		turnTok, ok := strings.CutSuffix(fields[0], ".")
		if !ok {
			return nil, &ParseError{Line: line.num, Msg: "incorrect line format: " + strconv.Quote(line.text)}
		}
		turn, err := strconv.Atoi(turnTok)
		if err != nil {
			return nil, &ParseError{Line: line.num, Msg: "incorrect line format: " + strconv.Quote(line.text)}
		}
		if turn != board.TurnID() {
			return nil, &ParseError{Line: line.num, Msg: "incorrect turn number in history"}
		}
		if fields[1] != Black.String() {
			return nil, &ParseError{Line: line.num, Msg: "expected black move marker"}
		}
		if err := replayMove(board, fields[2], Black, &pendingPass, line.num); err != nil {
			return nil, err
		}
		if len(fields) == 5 {
			if fields[3] != White.String() {
				return nil, &ParseError{Line: line.num, Msg: "expected white move marker"}
			}
			if err := replayMove(board, fields[4], White, &pendingPass, line.num); err != nil {
				return nil, err
			}
		}
	}
	return board, nil
}

func replayMove(board *Board, token string, mover Color, pendingPass *bool, lineNum int) error {
	move, err := ParseMove(token)
	if err != nil {
		return &ParseError{Line: lineNum, Msg: err.Error()}
	}
	if !move.IsPass() {
		n := int(board.size)
		if move.X >= n || move.Y >= n {
			return &ParseError{Line: lineNum, Msg: mover.String() + " move " + token + " is off the board"}
		}
	}
	if *pendingPass {
		// Play already recorded this pass on the opponent's behalf; the
		// file token just has to agree with it.
		if !move.IsPass() {
			return &ParseError{Line: lineNum, Msg: "expected a pass for player " + mover.String()}
		}
		*pendingPass = false
		return nil
	}
	outcome, err := board.Play(move.X, move.Y)
	if err != nil {
		return &ParseError{Line: lineNum, Msg: mover.String() + " move " + token + " is illegal (" + err.Error() + ")"}
	}
	if outcome == Passed {
		*pendingPass = true
	}
	return nil
}
