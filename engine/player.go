package engine

import (
	"errors"
	"math/rand"

	"othello-engine/othello"
)

// ErrNoMove is returned by a player asked to move in a position where its
// color has no legal move. Drivers should record a pass instead of asking.
var ErrNoMove = errors.New("engine: no legal move available")

// Player picks the next move for one color of a game. Implementations must
// not mutate the board.
type Player interface {
	NextMove(b *othello.Board) (othello.Move, error)
}

// AIPlayer picks moves with tree search. Algorithm and Heuristic are
// resolved from configuration once, when the player is built, so nothing
// is re-dispatched per node.
type AIPlayer struct {
	Color     othello.Color
	Depth     int
	Algorithm Algorithm
	Heuristic Heuristic
}

// NewAIPlayer builds an AI player from configuration tokens.
func NewAIPlayer(color othello.Color, depth int, algorithm, heuristic string) (*AIPlayer, error) {
	algo, err := ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	h, err := ParseHeuristic(heuristic)
	if err != nil {
		return nil, err
	}
	return &AIPlayer{Color: color, Depth: depth, Algorithm: algo, Heuristic: h}, nil
}

// NextMove runs the configured search from the current position.
func (p *AIPlayer) NextMove(b *othello.Board) (othello.Move, error) {
	if b.LegalMoves(b.CurrentPlayer()).IsZero() {
		return othello.Pass, ErrNoMove
	}
	return FindBestMove(b, p.Depth, p.Color, p.Algorithm, p.Heuristic), nil
}

// RandomPlayer picks uniformly among the legal moves. Rand may be nil, in
// which case the shared math/rand source is used; tests inject a seeded
// one for reproducibility.
type RandomPlayer struct {
	Rand *rand.Rand
}

// NextMove returns a random legal move for the side to move.
func (p *RandomPlayer) NextMove(b *othello.Board) (othello.Move, error) {
	moves := b.LegalMoves(b.CurrentPlayer()).Coordinates()
	if len(moves) == 0 {
		return othello.Pass, ErrNoMove
	}
	if p.Rand != nil {
		return moves[p.Rand.Intn(len(moves))], nil
	}
	return moves[rand.Intn(len(moves))], nil
}

// HumanPlayer defers to a driver-supplied callback (a CLI prompt or a
// queued move coming from a socket).
type HumanPlayer struct {
	Prompt func(b *othello.Board) (othello.Move, error)
}

// NextMove asks the driver for a move.
func (p *HumanPlayer) NextMove(b *othello.Board) (othello.Move, error) {
	if p.Prompt == nil {
		return othello.Pass, errors.New("engine: human player has no prompt attached")
	}
	return p.Prompt(b)
}
