package engine

import (
	"fmt"

	"othello-engine/othello"
)

// Heuristic scores a position from maxPlayer's point of view. Scores stay
// within (-Infinity, Infinity) so the alpha-beta window never saturates.
type Heuristic func(b *othello.Board, maxPlayer othello.Color) int

// normalizedDiff maps a (mine, theirs) pair onto [-100, 100]. Both zero
// means the feature says nothing about the position.
func normalizedDiff(mine, theirs int) int {
	if mine+theirs == 0 {
		return 0
	}
	return 100 * (mine - theirs) / (mine + theirs)
}

// CornersCaptured compares corner ownership. Corners can never be flipped
// back, so this is the strongest single positional signal.
func CornersCaptured(b *othello.Board, maxPlayer othello.Color) int {
	n := int(b.Size())
	corners := [4][2]int{{0, 0}, {n - 1, 0}, {0, n - 1}, {n - 1, n - 1}}
	mine, theirs := 0, 0
	for _, c := range corners {
		switch b.At(c[0], c[1]) {
		case maxPlayer:
			mine++
		case maxPlayer.Opposite():
			theirs++
		}
	}
	return normalizedDiff(mine, theirs)
}

// CoinParity compares raw disc counts. Weak early, decisive at the end.
func CoinParity(b *othello.Board, maxPlayer othello.Color) int {
	return normalizedDiff(b.Popcount(maxPlayer), b.Popcount(maxPlayer.Opposite()))
}

// Mobility compares how many legal moves each side has from this position.
func Mobility(b *othello.Board, maxPlayer othello.Color) int {
	mine := b.LegalMoves(maxPlayer).Popcount()
	theirs := b.LegalMoves(maxPlayer.Opposite()).Popcount()
	return normalizedDiff(mine, theirs)
}

// Feature weights for the combined evaluation.
const (
	weightCorners  = 10
	weightMobility = 4
	weightCoins    = 1
)

// AllInOne is the default evaluation: a weighted sum of the three
// features, dominated by corners.
func AllInOne(b *othello.Board, maxPlayer othello.Color) int {
	return weightCorners*CornersCaptured(b, maxPlayer) +
		weightMobility*Mobility(b, maxPlayer) +
		weightCoins*CoinParity(b, maxPlayer)
}

// ParseHeuristic resolves a configuration token to an evaluation function.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "corners_captured":
		return CornersCaptured, nil
	case "coin_parity":
		return CoinParity, nil
	case "mobility":
		return Mobility, nil
	case "all_in_one", "default", "":
		return AllInOne, nil
	}
	return nil, fmt.Errorf("unknown heuristic %q", name)
}
