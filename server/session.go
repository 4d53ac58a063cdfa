package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"othello-engine/engine"
	"othello-engine/game"
	"othello-engine/othello"
)

// Session is one live game: a controller, an optional AI opponent and the
// websocket hub for its spectators. The board is single threaded, so every
// access goes through mu.
type Session struct {
	ID      string
	Created time.Time

	mu   sync.Mutex
	ctrl *game.Controller
	ai   *engine.AIPlayer
	hub  *Hub
}

// StateDTO is the JSON projection of a session's game state.
type StateDTO struct {
	ID            string     `json:"id"`
	Size          int        `json:"size"`
	Board         [][]string `json:"board"`
	CurrentPlayer string     `json:"current_player"`
	Turn          int        `json:"turn"`
	BlackCount    int        `json:"black_count"`
	WhiteCount    int        `json:"white_count"`
	LegalMoves    []string   `json:"legal_moves"`
	GameOver      bool       `json:"game_over"`
}

// MoveDTO is one applied move in a session event.
type MoveDTO struct {
	Player  string `json:"player"`
	Move    string `json:"move"`
	Outcome string `json:"outcome"`
}

func newSession(board *othello.Board, ai *engine.AIPlayer) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Created: time.Now(),
		ctrl:    game.NewController(board, nil, nil),
		ai:      ai,
		hub:     NewHub(),
	}
}

func outcomeString(o othello.PlayOutcome) string {
	switch o {
	case othello.Passed:
		return "passed"
	case othello.GameOver:
		return "game_over"
	default:
		return "continued"
	}
}

// state builds the DTO for the current position. Caller holds mu.
func (s *Session) state() StateDTO {
	b := s.ctrl.Board()
	n := int(b.Size())
	grid := make([][]string, n)
	for y := 0; y < n; y++ {
		row := make([]string, n)
		for x := 0; x < n; x++ {
			row[x] = b.At(x, y).String()
		}
		grid[y] = row
	}
	legal := b.LegalMoves(b.CurrentPlayer()).Coordinates()
	moves := make([]string, len(legal))
	for i, m := range legal {
		moves[i] = m.String()
	}
	return StateDTO{
		ID:            s.ID,
		Size:          n,
		Board:         grid,
		CurrentPlayer: b.CurrentPlayer().String(),
		Turn:          b.TurnID(),
		BlackCount:    b.Popcount(othello.Black),
		WhiteCount:    b.Popcount(othello.White),
		LegalMoves:    moves,
		GameOver:      b.IsGameOver(),
	}
}

// play applies one human move and lets the AI answer until it is the
// human's turn again. Every applied move is broadcast. Caller holds mu.
func (s *Session) play(x, y int) ([]MoveDTO, error) {
	b := s.ctrl.Board()
	mover := b.CurrentPlayer()
	outcome, err := s.ctrl.Play(x, y)
	if err != nil {
		return nil, err
	}
	applied := []MoveDTO{{
		Player:  mover.String(),
		Move:    othello.Move{X: x, Y: y}.String(),
		Outcome: outcomeString(outcome),
	}}

	for s.ai != nil && !b.IsGameOver() && b.CurrentPlayer() == s.ai.Color {
		move, err := s.ai.NextMove(b)
		if err != nil {
			break
		}
		aiOutcome, err := s.ctrl.Play(move.X, move.Y)
		if err != nil {
			return applied, err
		}
		applied = append(applied, MoveDTO{
			Player:  s.ai.Color.String(),
			Move:    move.String(),
			Outcome: outcomeString(aiOutcome),
		})
	}

	s.hub.Broadcast("state", s.state())
	return applied, nil
}
