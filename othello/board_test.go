package othello_test

import (
	"errors"
	"testing"

	"othello-engine/othello"
)

func coordSet(t *testing.T, bb othello.Bitboard) map[othello.Move]bool {
	t.Helper()
	set := make(map[othello.Move]bool)
	for _, m := range bb.Coordinates() {
		set[m] = true
	}
	return set
}

func TestOpeningLayout(t *testing.T) {
	for _, size := range []othello.BoardSize{othello.Size6, othello.Size8, othello.Size10, othello.Size12} {
		b := othello.NewBoard(size)
		n := int(size)
		if b.CurrentPlayer() != othello.Black {
			t.Errorf("size %d: opening mover = %s, want X", n, b.CurrentPlayer())
		}
		if b.Popcount(othello.Black) != 2 || b.Popcount(othello.White) != 2 {
			t.Errorf("size %d: opening counts X=%d O=%d", n, b.Popcount(othello.Black), b.Popcount(othello.White))
		}
		if b.At(n/2-1, n/2-1) != othello.White || b.At(n/2, n/2) != othello.White {
			t.Errorf("size %d: white discs misplaced", n)
		}
		if b.At(n/2-1, n/2) != othello.Black || b.At(n/2, n/2-1) != othello.Black {
			t.Errorf("size %d: black discs misplaced", n)
		}
	}
}

func TestOpeningLegalMoves(t *testing.T) {
	for _, size := range []othello.BoardSize{othello.Size6, othello.Size8, othello.Size10, othello.Size12} {
		b := othello.NewBoard(size)
		n := int(size)
		got := coordSet(t, b.LegalMoves(othello.Black))
		want := []othello.Move{
			{X: n/2 - 2, Y: n/2 - 1},
			{X: n/2 - 1, Y: n/2 - 2},
			{X: n / 2, Y: n/2 + 1},
			{X: n/2 + 1, Y: n / 2},
		}
		if len(got) != len(want) {
			t.Fatalf("size %d: %d legal moves, want %d", n, len(got), len(want))
		}
		for _, m := range want {
			if !got[m] {
				t.Errorf("size %d: expected %v to be legal", n, m)
			}
		}
	}
}

func TestOpeningLegalMovesWhite(t *testing.T) {
	b := othello.NewBoard(othello.Size8)
	got := coordSet(t, b.LegalMoves(othello.White))
	want := []othello.Move{{X: 2, Y: 4}, {X: 4, Y: 2}, {X: 3, Y: 5}, {X: 5, Y: 3}}
	if len(got) != len(want) {
		t.Fatalf("%d legal moves for O, want %d", len(got), len(want))
	}
	for _, m := range want {
		if !got[m] {
			t.Errorf("expected %v to be legal for O", m)
		}
	}
}

// Midgame position with multi-direction captures. The raw words were
// captured from a real game and verified by hand.
func complexBoard(t *testing.T) *othello.Board {
	t.Helper()
	black := othello.BitboardFromWords(othello.Size8,
		0b0000000000000000011110000100100001000100010010000111000000000000)
	white := othello.BitboardFromWords(othello.Size8,
		0b0000100000000100100000001000010010001000100001001000000011110000)
	b := othello.NewBoard(othello.Size8)
	if err := b.SetPosition(black, white, othello.White); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestCaptureMask(t *testing.T) {
	b := complexBoard(t)
	if !b.LegalMoves(othello.White).Get(4, 4) {
		t.Fatal("(4,4) should be legal for O")
	}
	got := b.CaptureMask(4, 4, othello.White)
	want := othello.BitboardFromWords(othello.Size8,
		0b0000000000000000000010000001100000000000000000000000000000000000)
	if !got.Equal(want) {
		t.Errorf("capture mask:\n%v\nwant\n%v", got, want)
	}
}

func TestPlayFlipsCapturedDiscs(t *testing.T) {
	b := othello.NewBoard(othello.Size8)
	outcome, err := b.Play(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != othello.Continued {
		t.Fatalf("outcome = %d, want Continued", outcome)
	}
	if b.CurrentPlayer() != othello.White {
		t.Fatalf("mover after X move = %s, want O", b.CurrentPlayer())
	}
	if b.Popcount(othello.Black) != 4 || b.Popcount(othello.White) != 1 {
		t.Fatalf("counts X=%d O=%d, want 4 and 1", b.Popcount(othello.Black), b.Popcount(othello.White))
	}
	if b.At(3, 3) != othello.Black {
		t.Errorf("flipped disc at (3,3) is %s, want X", b.At(3, 3))
	}
}

func TestPlayIllegalMove(t *testing.T) {
	b := othello.NewBoard(othello.Size8)
	before := b.Clone()
	_, err := b.Play(0, 0)
	var illegal *othello.IllegalMoveError
	if !errors.As(err, &illegal) {
		t.Fatalf("err = %v, want IllegalMoveError", err)
	}
	if illegal.Player != othello.Black {
		t.Errorf("error player = %s, want X", illegal.Player)
	}
	if !b.Equal(before) || b.HistoryLen() != 0 {
		t.Error("illegal move modified the board")
	}
}

func TestPlayOffBoard(t *testing.T) {
	b := othello.NewBoard(othello.Size8)
	for _, m := range []othello.Move{{X: -2, Y: 0}, {X: 8, Y: 0}, {X: 0, Y: 8}, {X: -1, Y: 3}} {
		var illegal *othello.IllegalMoveError
		if _, err := b.Play(m.X, m.Y); !errors.As(err, &illegal) {
			t.Errorf("Play(%d,%d) err = %v, want IllegalMoveError", m.X, m.Y, err)
		}
	}
}

func TestPassRejectedWhenMovesExist(t *testing.T) {
	b := othello.NewBoard(othello.Size8)
	var illegal *othello.IllegalMoveError
	if _, err := b.Play(-1, -1); !errors.As(err, &illegal) {
		t.Fatalf("pass with moves available: err = %v, want IllegalMoveError", err)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	b := othello.NewBoard(othello.Size8)
	var snapshots []*othello.Board

	// Drive a full game, always playing the first legal move.
	for !b.IsGameOver() {
		snapshots = append(snapshots, b.Clone())
		moves := b.LegalMoves(b.CurrentPlayer()).Coordinates()
		if len(moves) == 0 {
			if _, err := b.Play(-1, -1); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if _, err := b.Play(moves[0].X, moves[0].Y); err != nil {
			t.Fatal(err)
		}
	}

	for i := len(snapshots) - 1; i >= 0; i-- {
		if err := b.Pop(); err != nil {
			t.Fatalf("pop %d: %v", i, err)
		}
		if !b.Equal(snapshots[i]) {
			t.Fatalf("board after pop %d does not match snapshot", i)
		}
	}
	if b.HistoryLen() != 0 {
		t.Fatalf("history not empty after full unwind: %d", b.HistoryLen())
	}
	if !b.Equal(othello.NewBoard(othello.Size8)) {
		t.Fatal("board did not return to the opening layout")
	}
}

func TestDiscConservation(t *testing.T) {
	b := othello.NewBoard(othello.Size6)
	played := 0
	for !b.IsGameOver() {
		moves := b.LegalMoves(b.CurrentPlayer()).Coordinates()
		if len(moves) == 0 {
			if _, err := b.Play(-1, -1); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if _, err := b.Play(moves[0].X, moves[0].Y); err != nil {
			t.Fatal(err)
		}
		played++
		total := b.Popcount(othello.Black) + b.Popcount(othello.White)
		if total != 4+played {
			t.Fatalf("after %d moves total discs = %d, want %d", played, total, 4+played)
		}
		if total > 36 {
			t.Fatalf("more discs than cells: %d", total)
		}
	}
}

// A move that strands the opponent records an automatic pass, and one Pop
// must undo both together.
func TestAutoPassUndoneWithMove(t *testing.T) {
	black := othello.NewBitboard(othello.Size6)
	for _, m := range []othello.Move{{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 3}, {X: 5, Y: 3}} {
		black.Set(m.X, m.Y, true)
	}
	white := othello.NewBitboard(othello.Size6)
	white.Set(1, 0, true)
	white.Set(3, 3, true)

	b := othello.NewBoard(othello.Size6)
	if err := b.SetPosition(black, white, othello.Black); err != nil {
		t.Fatal(err)
	}
	before := b.Clone()

	outcome, err := b.Play(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != othello.Passed {
		t.Fatalf("outcome = %d, want Passed", outcome)
	}
	if b.CurrentPlayer() != othello.Black {
		t.Fatalf("after opponent pass mover = %s, want X", b.CurrentPlayer())
	}
	if b.HistoryLen() != 2 {
		t.Fatalf("history length = %d, want move plus recorded pass", b.HistoryLen())
	}

	if err := b.Pop(); err != nil {
		t.Fatal(err)
	}
	if !b.Equal(before) || b.HistoryLen() != 0 {
		t.Fatal("pop did not undo the move together with the recorded pass")
	}
}

func TestGameOverWhenNeitherSideCanMove(t *testing.T) {
	// One white disc on an edge run; capturing it empties O and ends the
	// game immediately.
	black := othello.NewBitboard(othello.Size6)
	black.Set(2, 0, true)
	white := othello.NewBitboard(othello.Size6)
	white.Set(1, 0, true)

	b := othello.NewBoard(othello.Size6)
	if err := b.SetPosition(black, white, othello.Black); err != nil {
		t.Fatal(err)
	}
	outcome, err := b.Play(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != othello.GameOver {
		t.Fatalf("outcome = %d, want GameOver", outcome)
	}
	if !b.IsGameOver() {
		t.Fatal("IsGameOver = false after final move")
	}
	// Play on a finished board is a no-op.
	before := b.Clone()
	if outcome, err := b.Play(3, 0); err != nil || outcome != othello.GameOver {
		t.Fatalf("Play after game over: outcome=%d err=%v", outcome, err)
	}
	if !b.Equal(before) {
		t.Fatal("Play after game over modified the board")
	}
}

func TestGameOverOnFullBoard(t *testing.T) {
	// Every cell black except one white corner: no empties, nobody moves.
	black := othello.NewBitboard(othello.Size6)
	white := othello.NewBitboard(othello.Size6)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			black.Set(x, y, true)
		}
	}
	black.Set(0, 0, false)
	white.Set(0, 0, true)

	b := othello.NewBoard(othello.Size6)
	if err := b.SetPosition(black, white, othello.Black); err != nil {
		t.Fatal(err)
	}
	if !b.IsGameOver() {
		t.Fatal("full board not reported as over")
	}
	if b.Popcount(othello.Black) != 35 || b.Popcount(othello.White) != 1 {
		t.Fatalf("counts X=%d O=%d, want 35 and 1", b.Popcount(othello.Black), b.Popcount(othello.White))
	}
}

func TestForceGameOver(t *testing.T) {
	b := othello.NewBoard(othello.Size8)
	b.ForceGameOver()
	if !b.IsGameOver() {
		t.Fatal("forced board not over")
	}
	if outcome, _ := b.Play(2, 3); outcome != othello.GameOver {
		t.Fatalf("Play on forced board outcome = %d, want GameOver", outcome)
	}
	b.Restart()
	if b.IsGameOver() {
		t.Fatal("Restart did not clear the forced flag")
	}
}

func TestPopEmptyHistory(t *testing.T) {
	b := othello.NewBoard(othello.Size8)
	var cannot *othello.CannotUndoError
	if err := b.Pop(); !errors.As(err, &cannot) {
		t.Fatalf("err = %v, want CannotUndoError", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := othello.NewBoard(othello.Size8)
	if _, err := b.Play(2, 3); err != nil {
		t.Fatal(err)
	}
	c := b.Clone()
	if _, err := c.Play(2, 2); err != nil {
		t.Fatal(err)
	}
	if b.Equal(c) {
		t.Fatal("playing on the clone changed the original")
	}
	if err := c.Pop(); err != nil {
		t.Fatal(err)
	}
	if !b.Equal(c) {
		t.Fatal("clone did not return to the shared position")
	}
	if b.HistoryLen() != 1 || c.HistoryLen() != 1 {
		t.Fatalf("history lengths diverged: %d vs %d", b.HistoryLen(), c.HistoryLen())
	}
}

func TestSetPositionRejectsOverlap(t *testing.T) {
	overlap := othello.NewBitboard(othello.Size8)
	overlap.Set(3, 3, true)
	b := othello.NewBoard(othello.Size8)
	if err := b.SetPosition(overlap, overlap, othello.Black); err == nil {
		t.Fatal("overlapping bitboards accepted")
	}
	wrong := othello.NewBitboard(othello.Size6)
	if err := b.SetPosition(wrong, othello.NewBitboard(othello.Size6), othello.Black); err == nil {
		t.Fatal("size mismatch accepted")
	}
}

func TestNewBoardSize(t *testing.T) {
	for _, n := range []int{6, 8, 10, 12} {
		if _, err := othello.NewBoardSize(n); err != nil {
			t.Errorf("size %d rejected: %v", n, err)
		}
	}
	for _, n := range []int{0, 4, 7, 9, 14, -8} {
		var illegal *othello.IllegalBoardSizeError
		if _, err := othello.NewBoardSize(n); !errors.As(err, &illegal) {
			t.Errorf("size %d: err = %v, want IllegalBoardSizeError", n, err)
		}
	}
}

func TestTurnID(t *testing.T) {
	b := othello.NewBoard(othello.Size8)
	if b.TurnID() != 1 {
		t.Fatalf("opening TurnID = %d, want 1", b.TurnID())
	}
	if _, err := b.Play(2, 3); err != nil {
		t.Fatal(err)
	}
	if b.TurnID() != 1 {
		t.Fatalf("TurnID after X move = %d, want 1", b.TurnID())
	}
	if _, err := b.Play(2, 2); err != nil {
		t.Fatal(err)
	}
	if b.TurnID() != 2 {
		t.Fatalf("TurnID after full turn = %d, want 2", b.TurnID())
	}
}
