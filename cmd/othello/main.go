// Command othello plays Othello in the terminal. One or both colors can
// be driven by the engine, and games can be saved and resumed as text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"othello-engine/config"
	"othello-engine/engine"
	"othello-engine/game"
	"othello-engine/othello"
)

func main() {
	sizeFlag := flag.Int("size", 0, "board size: 6, 8, 10 or 12 (overrides config)")
	depthFlag := flag.Int("depth", 0, "engine search depth in plies (overrides config)")
	aiFlag := flag.String("ai", "O", "engine color: X, O, A (both) or none")
	modeFlag := flag.String("ai-mode", "", "search algorithm: minimax or alphabeta")
	heuristicFlag := flag.String("ai-heuristic", "", "evaluation: corners_captured, coin_parity, mobility or all_in_one")
	loadFlag := flag.String("load", "", "resume from a saved game file")
	configFlag := flag.String("config", "", "path to config file")
	debugFlag := flag.Bool("debug", false, "log search statistics")
	flag.Parse()

	cfg, err := config.Setup(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *sizeFlag != 0 {
		cfg.BoardSize = *sizeFlag
	}
	if *depthFlag != 0 {
		cfg.AIDepth = *depthFlag
	}
	if *modeFlag != "" {
		cfg.AIAlgorithm = *modeFlag
	}
	if *heuristicFlag != "" {
		cfg.AIHeuristic = *heuristicFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	logger := newLogger(cfg.Debug)
	defer logger.Sync()

	board, err := setupBoard(cfg.BoardSize, *loadFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ais, err := setupAIs(*aiFlag, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	run(board, ais, logger)
}

func newLogger(debug bool) *zap.SugaredLogger {
	if !debug {
		return zap.NewNop().Sugar()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func setupBoard(size int, loadPath string) (*othello.Board, error) {
	if loadPath != "" {
		raw, err := os.ReadFile(loadPath)
		if err != nil {
			return nil, err
		}
		return othello.Parse(string(raw))
	}
	n, err := othello.NewBoardSize(size)
	if err != nil {
		return nil, err
	}
	return othello.NewBoard(n), nil
}

// setupAIs resolves the -ai flag into per-color engine players.
func setupAIs(sel string, cfg config.Config) (map[othello.Color]*engine.AIPlayer, error) {
	colors := map[othello.Color]bool{}
	switch sel {
	case "X":
		colors[othello.Black] = true
	case "O":
		colors[othello.White] = true
	case "A":
		colors[othello.Black] = true
		colors[othello.White] = true
	case "none", "":
	default:
		return nil, fmt.Errorf("unknown -ai value %q (want X, O, A or none)", sel)
	}
	ais := make(map[othello.Color]*engine.AIPlayer)
	for color := range colors {
		ai, err := engine.NewAIPlayer(color, cfg.AIDepth, cfg.AIAlgorithm, cfg.AIHeuristic)
		if err != nil {
			return nil, err
		}
		ais[color] = ai
	}
	return ais, nil
}

func run(board *othello.Board, ais map[othello.Color]*engine.AIPlayer, logger *zap.SugaredLogger) {
	ctrl := game.NewController(board, nil, nil)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println(board)
	for !ctrl.IsGameOver() {
		mover := ctrl.CurrentPlayer()
		if ai, ok := ais[mover]; ok {
			playAI(ctrl, ai, logger)
			fmt.Println(board)
			continue
		}
		if ctrl.LegalMoves(mover).IsZero() {
			fmt.Printf("%s has no legal move and passes\n", mover)
			if _, err := ctrl.Play(-1, -1); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			continue
		}
		if !prompt(ctrl, scanner, mover) {
			return
		}
		fmt.Println(board)
	}
	report(board)
}

// prompt reads and executes one command for mover. It returns false when
// the session should end.
func prompt(ctrl *game.Controller, scanner *bufio.Scanner, mover othello.Color) bool {
	fmt.Printf("%s> ", mover)
	if !scanner.Scan() {
		return false
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "quit", "exit":
		return false
	case "undo":
		if err := ctrl.Board().Pop(); err != nil {
			fmt.Println(err)
		}
		return true
	case "save":
		if len(fields) < 2 {
			fmt.Println("usage: save FILE")
			return true
		}
		if err := os.WriteFile(fields[1], []byte(ctrl.Export()), 0o644); err != nil {
			fmt.Println(err)
		}
		return true
	case "moves":
		for _, m := range ctrl.LegalMoves(mover).Coordinates() {
			fmt.Printf("%s ", m)
		}
		fmt.Println()
		return true
	case "pass":
		if _, err := ctrl.Play(-1, -1); err != nil {
			fmt.Println(err)
		}
		return true
	case "help":
		fmt.Println("commands: <move like e4>, pass, moves, undo, save FILE, quit")
		return true
	}

	move, err := othello.ParseMove(fields[0])
	if err != nil {
		fmt.Println(err)
		return true
	}
	if _, err := ctrl.Play(move.X, move.Y); err != nil {
		fmt.Println(err)
	}
	return true
}

func playAI(ctrl *game.Controller, ai *engine.AIPlayer, logger *zap.SugaredLogger) {
	engine.ResetNodes()
	move, err := ai.NextMove(ctrl.Board())
	if err != nil {
		move = othello.Pass
	}
	logger.Debugw("engine move",
		"player", ai.Color.String(),
		"move", move.String(),
		"nodes", engine.NodesVisited(),
	)
	fmt.Printf("%s plays %s\n", ai.Color, move)
	if _, err := ctrl.Play(move.X, move.Y); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func report(board *othello.Board) {
	black := board.Popcount(othello.Black)
	white := board.Popcount(othello.White)
	fmt.Printf("game over: X %d, O %d\n", black, white)
	switch {
	case black > white:
		fmt.Println("X wins")
	case white > black:
		fmt.Println("O wins")
	default:
		fmt.Println("draw")
	}
}
