package engine_test

import (
	"testing"

	"othello-engine/engine"
	"othello-engine/othello"
)

func positionWith(t *testing.T, blackCells, whiteCells []othello.Move, toMove othello.Color) *othello.Board {
	t.Helper()
	black := othello.NewBitboard(othello.Size8)
	for _, m := range blackCells {
		black.Set(m.X, m.Y, true)
	}
	white := othello.NewBitboard(othello.Size8)
	for _, m := range whiteCells {
		white.Set(m.X, m.Y, true)
	}
	b := othello.NewBoard(othello.Size8)
	if err := b.SetPosition(black, white, toMove); err != nil {
		t.Fatal(err)
	}
	return b
}

var corners8 = []othello.Move{{X: 0, Y: 0}, {X: 7, Y: 0}, {X: 0, Y: 7}, {X: 7, Y: 7}}

func TestCornersCaptured(t *testing.T) {
	opening := othello.NewBoard(othello.Size8)
	if got := engine.CornersCaptured(opening, othello.Black); got != 0 {
		t.Errorf("no corners held: score = %d, want 0", got)
	}

	allMine := positionWith(t, corners8, nil, othello.Black)
	if got := engine.CornersCaptured(allMine, othello.Black); got != 100 {
		t.Errorf("four own corners: score = %d, want 100", got)
	}
	if got := engine.CornersCaptured(allMine, othello.White); got != -100 {
		t.Errorf("four opponent corners: score = %d, want -100", got)
	}

	split := positionWith(t, corners8[:2], corners8[2:], othello.Black)
	if got := engine.CornersCaptured(split, othello.Black); got != 0 {
		t.Errorf("two corners each: score = %d, want 0", got)
	}
}

func TestCoinParity(t *testing.T) {
	opening := othello.NewBoard(othello.Size8)
	if got := engine.CoinParity(opening, othello.Black); got != 0 {
		t.Errorf("opening parity = %d, want 0", got)
	}
	if _, err := opening.Play(2, 3); err != nil {
		t.Fatal(err)
	}
	// 4 black discs against 1 white.
	if got := engine.CoinParity(opening, othello.Black); got != 60 {
		t.Errorf("parity after first move = %d, want 60", got)
	}
	if got := engine.CoinParity(opening, othello.White); got != -60 {
		t.Errorf("parity for the other side = %d, want -60", got)
	}
}

func TestMobility(t *testing.T) {
	opening := othello.NewBoard(othello.Size8)
	// Both sides open with four legal moves.
	if got := engine.Mobility(opening, othello.Black); got != 0 {
		t.Errorf("opening mobility = %d, want 0", got)
	}
	onlyBlackMoves := positionWith(t,
		[]othello.Move{{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0}},
		[]othello.Move{{X: 1, Y: 0}},
		othello.Black)
	if got := engine.Mobility(onlyBlackMoves, othello.Black); got != 100 {
		t.Errorf("one-sided mobility = %d, want 100", got)
	}
}

func TestHeuristicsStayBounded(t *testing.T) {
	b := othello.NewBoard(othello.Size8)
	hs := []struct {
		name  string
		h     engine.Heuristic
		bound int
	}{
		{"corners_captured", engine.CornersCaptured, 100},
		{"coin_parity", engine.CoinParity, 100},
		{"mobility", engine.Mobility, 100},
		{"all_in_one", engine.AllInOne, 1500},
	}
	for !b.IsGameOver() {
		for _, tc := range hs {
			for _, c := range []othello.Color{othello.Black, othello.White} {
				score := tc.h(b, c)
				if score < -tc.bound || score > tc.bound {
					t.Fatalf("%s out of range: %d", tc.name, score)
				}
			}
		}
		moves := b.LegalMoves(b.CurrentPlayer()).Coordinates()
		if len(moves) == 0 {
			if _, err := b.Play(-1, -1); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if _, err := b.Play(moves[len(moves)/2].X, moves[len(moves)/2].Y); err != nil {
			t.Fatal(err)
		}
	}
}

func TestParseHeuristic(t *testing.T) {
	for _, name := range []string{"corners_captured", "coin_parity", "mobility", "all_in_one", "default"} {
		if _, err := engine.ParseHeuristic(name); err != nil {
			t.Errorf("ParseHeuristic(%q): %v", name, err)
		}
	}
	if _, err := engine.ParseHeuristic("bogus"); err == nil {
		t.Error("ParseHeuristic accepted an unknown name")
	}
}
