// Package game drives one Othello session: a board plus a player per
// color. Drivers (CLI, websocket service) own a Controller and pump it;
// the core board and engine stay free of driver concerns.
package game

import (
	"fmt"

	"othello-engine/engine"
	"othello-engine/othello"
)

// Controller couples a board with its two players and relays moves
// between them.
type Controller struct {
	board    *othello.Board
	players  map[othello.Color]engine.Player
	postPlay func(othello.Move, othello.PlayOutcome)
}

// NewController builds a session over an existing board. Either player may
// be nil when that color is driven directly through Play (a remote or
// scripted mover).
func NewController(board *othello.Board, black, white engine.Player) *Controller {
	return &Controller{
		board: board,
		players: map[othello.Color]engine.Player{
			othello.Black: black,
			othello.White: white,
		},
	}
}

// SetPostPlay registers a callback invoked after every applied move, pass
// included. Drivers use it to refresh displays or broadcast state.
func (c *Controller) SetPostPlay(fn func(othello.Move, othello.PlayOutcome)) {
	c.postPlay = fn
}

// Board exposes the underlying board. Callers must respect the board's
// single-threaded contract.
func (c *Controller) Board() *othello.Board { return c.board }

// CurrentPlayer returns the color to move.
func (c *Controller) CurrentPlayer() othello.Color { return c.board.CurrentPlayer() }

// LegalMoves returns the legal-move bitboard for a color.
func (c *Controller) LegalMoves(color othello.Color) othello.Bitboard {
	return c.board.LegalMoves(color)
}

// Popcount returns the number of discs of the given color.
func (c *Controller) Popcount(color othello.Color) int { return c.board.Popcount(color) }

// IsGameOver reports whether the session has ended.
func (c *Controller) IsGameOver() bool { return c.board.IsGameOver() }

// TurnID returns the current 1-based turn number.
func (c *Controller) TurnID() int { return c.board.TurnID() }

// Play applies a move for the side to move and fires the post-play
// callback. The coordinate (-1, -1) records a pass.
func (c *Controller) Play(x, y int) (othello.PlayOutcome, error) {
	outcome, err := c.board.Play(x, y)
	if err != nil {
		return outcome, err
	}
	if c.postPlay != nil {
		c.postPlay(othello.Move{X: x, Y: y}, outcome)
	}
	return outcome, nil
}

// Step asks the current player for its next move and applies it. When the
// side to move has no legal move the pass is recorded without consulting
// the player.
func (c *Controller) Step() (othello.PlayOutcome, error) {
	mover := c.board.CurrentPlayer()
	if c.board.LegalMoves(mover).IsZero() {
		return c.Play(-1, -1)
	}
	player := c.players[mover]
	if player == nil {
		return 0, fmt.Errorf("game: no player attached for %s", mover)
	}
	move, err := player.NextMove(c.board)
	if err != nil {
		return 0, err
	}
	return c.Play(move.X, move.Y)
}

// Restart resets the board to the opening layout.
func (c *Controller) Restart() { c.board.Restart() }

// Export serializes the session in the save-file format.
func (c *Controller) Export() string { return c.board.Export() }

// ExportHistory serializes only the move history.
func (c *Controller) ExportHistory() string { return c.board.ExportHistory() }
