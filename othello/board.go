package othello

// PlayOutcome classifies what a successful Play did to the game, so that
// drivers and search loops never need exception-style control flow to
// detect the end of the game.
type PlayOutcome uint8

const (
	// Continued: the move was applied and the opponent is to play.
	Continued PlayOutcome = iota
	// Passed: the move was applied, the opponent had no reply and a pass
	// was recorded for them; the mover is to play again.
	Passed
	// GameOver: after the move neither side has a legal move.
	GameOver
)

// undoRecord is one entry of the undo log: the bitboards before the move,
// the move itself and who made it. auto marks passes recorded by Play on
// the opponent's behalf; Pop treats them as part of the preceding move.
type undoRecord struct {
	black boardWords
	white boardWords
	move  Move
	mover Color
	auto  bool
}

// Board is a full Othello game state: one bitboard per color, the side to
// move and the undo log. All mutation goes through Play, Pop, Restart and
// SetPosition; nothing here is safe for concurrent use (see Clone).
type Board struct {
	size      BoardSize
	black     Bitboard
	white     Bitboard
	current   Color
	history   []undoRecord
	fromStart bool
	forced    bool
}

// NewBoard returns a board of the given size in the canonical opening
// layout: two diagonal pairs of discs around the center, Black to move.
func NewBoard(size BoardSize) *Board {
	b := &Board{size: size}
	b.reset()
	return b
}

func (b *Board) reset() {
	n := int(b.size)
	b.black = NewBitboard(b.size)
	b.white = NewBitboard(b.size)
	b.white.Set(n/2-1, n/2-1, true)
	b.white.Set(n/2, n/2, true)
	b.black.Set(n/2-1, n/2, true)
	b.black.Set(n/2, n/2-1, true)
	b.current = Black
	b.history = nil
	b.fromStart = true
	b.forced = false
}

// Restart puts the board back in the opening layout and clears the history.
func (b *Board) Restart() { b.reset() }

// Size returns the board's side length.
func (b *Board) Size() BoardSize { return b.size }

// CurrentPlayer returns the color to move next.
func (b *Board) CurrentPlayer() Color { return b.current }

// Discs returns a copy of the bitboard holding the given color's discs.
func (b *Board) Discs(c Color) Bitboard {
	if c == White {
		return b.white
	}
	if c == Black {
		return b.black
	}
	return NewBitboard(b.size)
}

// Popcount returns the number of discs of the given color on the board.
func (b *Board) Popcount(c Color) int { return b.Discs(c).Popcount() }

// At returns the color occupying the cell at (x, y), or Empty.
func (b *Board) At(x, y int) Color {
	if b.black.Get(x, y) {
		return Black
	}
	if b.white.Get(x, y) {
		return White
	}
	return Empty
}

// TurnID returns the 1-based turn number: one full turn is a Black entry
// and a White entry in the history.
func (b *Board) TurnID() int { return len(b.history)/2 + 1 }

// HistoryLen returns the number of recorded moves, passes included.
func (b *Board) HistoryLen() int { return len(b.history) }

// sides returns the mover's and opponent's disc boards for a color.
func (b *Board) sides(c Color) (p, o Bitboard) {
	if c == White {
		return b.white, b.black
	}
	return b.black, b.white
}

func (b *Board) emptyMask() Bitboard {
	return Bitboard{size: int(b.size), bits: b.black.bits.or(b.white.bits).xor(fullMasks[b.size])}
}

// LegalMoves computes the legal destinations for the given color with the
// directional line-cap algorithm: for each direction, extend runs of
// opponent discs that start next to one of the player's discs; an empty
// cell just past such a run is a legal move.
func (b *Board) LegalMoves(c Color) Bitboard {
	moves := NewBitboard(b.size)
	if c == Empty {
		return moves
	}
	p, o := b.sides(c)
	empty := b.emptyMask()
	for _, d := range directions {
		candidates := o.And(p.Shift(d))
		for !candidates.IsZero() {
			moves = moves.Or(empty.And(candidates.Shift(d)))
			candidates = o.And(candidates.Shift(d))
		}
	}
	return moves
}

// CaptureMask returns the discs that end up colored c when c plays at
// (x, y): the placed disc plus every bracketed run. It does not validate
// legality; callers must consult LegalMoves first, and the result for an
// illegal coordinate is meaningless.
func (b *Board) CaptureMask(x, y int, c Color) Bitboard {
	p, o := b.sides(c)
	pos := NewBitboard(b.size)
	pos.Set(x, y, true)
	capture := pos
	for _, d := range directions {
		run := pos
		ptr := pos
		for {
			ptr = ptr.Shift(d)
			if !ptr.And(o).IsZero() {
				run = run.Or(ptr)
				continue
			}
			if !ptr.And(p).IsZero() {
				// Run terminated on one of our discs: it flips.
				capture = capture.Or(run)
			}
			break
		}
	}
	return capture
}

func (b *Board) pushUndo(m Move, mover Color, auto bool) {
	b.history = append(b.history, undoRecord{
		black: b.black.bits,
		white: b.white.bits,
		move:  m,
		mover: mover,
		auto:  auto,
	})
}

// Play applies a move for the current player and flips the captured discs.
// The pass sentinel (-1, -1) records a pass; it is only legal when the
// current player has no move. After a move, if the opponent has no reply,
// Play records a pass for them and hands the turn back (outcome Passed).
// When neither side can move the outcome is GameOver. A board already in a
// game-over state is left untouched and reports GameOver.
func (b *Board) Play(x, y int) (PlayOutcome, error) {
	if b.IsGameOver() {
		return GameOver, nil
	}

	if x == -1 && y == -1 {
		if !b.LegalMoves(b.current).IsZero() {
			return 0, &IllegalMoveError{X: x, Y: y, Player: b.current}
		}
		b.pushUndo(Pass, b.current, false)
		b.current = b.current.Opposite()
		if b.LegalMoves(b.current).IsZero() {
			return GameOver, nil
		}
		return Continued, nil
	}

	n := int(b.size)
	if x < 0 || x >= n || y < 0 || y >= n || !b.LegalMoves(b.current).Get(x, y) {
		return 0, &IllegalMoveError{X: x, Y: y, Player: b.current}
	}

	capture := b.CaptureMask(x, y, b.current)
	b.pushUndo(Move{X: x, Y: y}, b.current, false)
	p, o := b.sides(b.current)
	p = p.Or(capture)
	o = o.AndNot(capture)
	if b.current == Black {
		b.black, b.white = p, o
	} else {
		b.white, b.black = p, o
	}
	b.current = b.current.Opposite()

	if !b.LegalMoves(b.current).IsZero() {
		return Continued, nil
	}
	// Opponent is stuck: record their pass and hand the turn back.
	b.pushUndo(Pass, b.current, true)
	b.current = b.current.Opposite()
	if b.LegalMoves(b.current).IsZero() {
		return GameOver, nil
	}
	return Passed, nil
}

// Pop undoes the most recent Play call, restoring the bitboards and side
// to move bit for bit. A pass recorded automatically by Play is undone
// together with the move that caused it, so Play and Pop are exact
// inverses. Returns CannotUndoError on an empty history.
func (b *Board) Pop() error {
	if len(b.history) == 0 {
		return &CannotUndoError{}
	}
	i := len(b.history) - 1
	for i > 0 && b.history[i].auto {
		i--
	}
	rec := b.history[i]
	b.history = b.history[:i]
	b.black.bits = rec.black
	b.white.bits = rec.white
	b.current = rec.mover
	return nil
}

// IsGameOver reports whether neither side has a legal move, or the game
// was ended externally with ForceGameOver.
func (b *Board) IsGameOver() bool {
	if b.forced {
		return true
	}
	return b.LegalMoves(b.current).IsZero() && b.LegalMoves(b.current.Opposite()).IsZero()
}

// ForceGameOver ends the game regardless of the position. Hook for outer
// layers that impose a clock on the game.
func (b *Board) ForceGameOver() { b.forced = true }

// Equal reports whether two boards hold the same position: same size, same
// discs and same side to move. History is not compared.
func (b *Board) Equal(o *Board) bool {
	return b.size == o.size &&
		b.black.bits == o.black.bits &&
		b.white.bits == o.white.bits &&
		b.current == o.current
}

// Clone returns an independent deep copy. Play/Pop on a board is strictly
// sequential; workers evaluating moves in parallel must each own a clone.
func (b *Board) Clone() *Board {
	c := *b
	c.history = append([]undoRecord(nil), b.history...)
	return &c
}

// SetPosition overwrites the discs and side to move, discarding the
// history. The two bitboards must have the board's size and must not
// overlap. Used to restore saved positions; a board set this way no longer
// carries a replayable history, so Export emits the grid alone.
func (b *Board) SetPosition(black, white Bitboard, toMove Color) error {
	if black.size != int(b.size) || white.size != int(b.size) {
		return &IllegalBoardSizeError{Size: black.size}
	}
	if !black.And(white).IsZero() {
		return errOverlap
	}
	if toMove != Black && toMove != White {
		return errBadSide
	}
	b.black = black
	b.white = white
	b.current = toMove
	b.history = nil
	b.fromStart = false
	b.forced = false
	return nil
}

// History returns the recorded moves in play order.
func (b *Board) History() []Move {
	moves := make([]Move, len(b.history))
	for i, rec := range b.history {
		moves[i] = rec.move
	}
	return moves
}
