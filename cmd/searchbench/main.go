// Command searchbench measures raw search throughput: it runs the engine
// from the starting position (or a saved one) and reports nodes and time
// per run. Useful for comparing minimax against alpha-beta and for
// profiling evaluation changes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"othello-engine/engine"
	"othello-engine/othello"
)

func main() {
	sizeFlag := flag.Int("size", 8, "board size: 6, 8, 10 or 12")
	depthFlag := flag.Int("depth", 6, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	algoFlag := flag.String("algo", "alphabeta", "search algorithm: minimax or alphabeta")
	heuristicFlag := flag.String("heuristic", "all_in_one", "evaluation function")
	loadFlag := flag.String("load", "", "saved game to search (empty = starting position)")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	algo, err := engine.ParseAlgorithm(*algoFlag)
	if err != nil {
		log.Fatal(err)
	}
	h, err := engine.ParseHeuristic(*heuristicFlag)
	if err != nil {
		log.Fatal(err)
	}

	var cpuFile *os.File
	if *cpuProfile != "" {
		cpuFile, err = os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fmt.Printf("searchbench: size=%d depth=%d algo=%s repeat=%d\n",
		*sizeFlag, *depthFlag, algo, *repeatFlag)

	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		board, err := setupBoard(*sizeFlag, *loadFlag)
		if err != nil {
			log.Fatal(err)
		}

		engine.ResetNodes()
		iterStart := time.Now()
		best := engine.FindBestMove(board, *depthFlag, board.CurrentPlayer(), algo, h)
		elapsed := time.Since(iterStart)

		nodes := engine.NodesVisited()
		totalNodes += nodes
		nps := float64(nodes) / elapsed.Seconds()
		fmt.Printf("run %d: best=%s nodes=%d time=%s nps=%.0f\n",
			i+1, best, nodes, elapsed, nps)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total: nodes=%d time=%s nps=%.0f\n",
		totalNodes, totalElapsed, float64(totalNodes)/totalElapsed.Seconds())

	if *memProfile != "" {
		memFile, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer memFile.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(memFile); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
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
