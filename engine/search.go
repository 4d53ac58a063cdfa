package engine

import (
	"fmt"

	"othello-engine/othello"
)

// Infinity bounds every heuristic score; the initial alpha-beta window is
// (-Infinity, +Infinity).
const Infinity = 1 << 30

// nodesVisited counts positions evaluated since the last ResetNodes. The
// search walks a single board depth-first, so like the board itself the
// counter assumes one search at a time.
var nodesVisited uint64

// ResetNodes zeroes the visited-node counter.
func ResetNodes() { nodesVisited = 0 }

// NodesVisited returns the number of nodes visited since the last reset.
func NodesVisited() uint64 { return nodesVisited }

// mustPlay applies a move the caller has already proven legal. An error
// here means move enumeration is broken, which must surface loudly rather
// than be swallowed mid-search.
func mustPlay(b *othello.Board, x, y int) {
	if _, err := b.Play(x, y); err != nil {
		panic(fmt.Sprintf("engine: search played an illegal move: %v", err))
	}
}

// mustPop undoes a move played by mustPlay. An error means push/pop
// symmetry is broken.
func mustPop(b *othello.Board) {
	if err := b.Pop(); err != nil {
		panic(fmt.Sprintf("engine: search pop failed: %v", err))
	}
}

// Minimax walks the game tree depth plies deep and returns the heuristic
// value of the best reachable position for maxPlayer. The walk plays and
// pops moves on the shared board instead of cloning it, so the memory cost
// is one undo record per ply. A forced pass does not consume a ply: the
// pass is played so the turn advances, but the remaining depth is kept.
func Minimax(b *othello.Board, depth int, maxPlayer othello.Color, h Heuristic) int {
	nodesVisited++
	if depth == 0 || b.IsGameOver() {
		return h(b, maxPlayer)
	}

	moves := b.LegalMoves(b.CurrentPlayer()).Coordinates()
	if len(moves) == 0 {
		mustPlay(b, -1, -1)
		score := Minimax(b, depth, maxPlayer, h)
		mustPop(b)
		return score
	}

	if b.CurrentPlayer() == maxPlayer {
		best := -Infinity
		for _, m := range moves {
			mustPlay(b, m.X, m.Y)
			if score := Minimax(b, depth-1, maxPlayer, h); score > best {
				best = score
			}
			mustPop(b)
		}
		return best
	}

	best := Infinity
	for _, m := range moves {
		mustPlay(b, m.X, m.Y)
		if score := Minimax(b, depth-1, maxPlayer, h); score < best {
			best = score
		}
		mustPop(b)
	}
	return best
}

// Alphabeta is Minimax with alpha-beta pruning. It returns exactly the
// same value as Minimax for any position and depth; pruning only cuts the
// number of visited nodes.
func Alphabeta(b *othello.Board, depth, alpha, beta int, maxPlayer othello.Color, h Heuristic) int {
	nodesVisited++
	if depth == 0 || b.IsGameOver() {
		return h(b, maxPlayer)
	}

	moves := b.LegalMoves(b.CurrentPlayer()).Coordinates()
	if len(moves) == 0 {
		mustPlay(b, -1, -1)
		score := Alphabeta(b, depth, alpha, beta, maxPlayer, h)
		mustPop(b)
		return score
	}

	if b.CurrentPlayer() == maxPlayer {
		best := -Infinity
		for _, m := range moves {
			mustPlay(b, m.X, m.Y)
			if score := Alphabeta(b, depth-1, alpha, beta, maxPlayer, h); score > best {
				best = score
			}
			mustPop(b)
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, m := range moves {
		mustPlay(b, m.X, m.Y)
		if score := Alphabeta(b, depth-1, alpha, beta, maxPlayer, h); score < best {
			best = score
		}
		mustPop(b)
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// Algorithm selects the tree-search variant. Resolved once from
// configuration; never dispatched by string inside the search.
type Algorithm uint8

const (
	AlgorithmMinimax Algorithm = iota
	AlgorithmAlphabeta
)

// ParseAlgorithm maps a configuration token to an Algorithm. "ab" is the
// short form the CLI accepts for alpha-beta.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "minimax":
		return AlgorithmMinimax, nil
	case "alphabeta", "ab":
		return AlgorithmAlphabeta, nil
	default:
		return 0, fmt.Errorf("unknown search algorithm %q", name)
	}
}

func (a Algorithm) String() string {
	if a == AlgorithmAlphabeta {
		return "alphabeta"
	}
	return "minimax"
}

// FindBestMove evaluates every legal root move at depth-1 and returns the
// one with the best score for maxPlayer: the maximum when maxPlayer is to
// move, the minimum otherwise. Root moves are enumerated in ascending bit
// order and the first best score wins, so the result is deterministic.
// Returns the pass sentinel when depth is zero or the game is over. A
// position where the side to move must pass should be advanced with
// Play(-1, -1) by the caller, not searched.
func FindBestMove(b *othello.Board, depth int, maxPlayer othello.Color, algo Algorithm, h Heuristic) othello.Move {
	if depth == 0 || b.IsGameOver() {
		return othello.Pass
	}

	maximizing := b.CurrentPlayer() == maxPlayer
	best := othello.Pass
	var bestScore int
	for _, m := range b.LegalMoves(b.CurrentPlayer()).Coordinates() {
		mustPlay(b, m.X, m.Y)
		var score int
		if algo == AlgorithmMinimax {
			score = Minimax(b, depth-1, maxPlayer, h)
		} else {
			score = Alphabeta(b, depth-1, -Infinity, Infinity, maxPlayer, h)
		}
		mustPop(b)
		if best.IsPass() || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			best, bestScore = m, score
		}
	}
	return best
}
