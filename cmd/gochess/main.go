// Command gochess is a thin, UCI-shaped command loop around the
// engine core: it owns no search state of its own beyond the current
// board, and every line it prints is produced by the core or by
// package perft/search.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	chess "github.com/barakmich/gochess"
	"github.com/barakmich/gochess/perft"
	"github.com/barakmich/gochess/search"
)

func main() {
	logger := log.New(os.Stderr, "gochess: ", log.LstdFlags)
	board := chess.StartingPosition()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return
		case "position":
			if err := handlePosition(&board, fields[1:]); err != nil {
				logger.Println(err)
			}
		case "go":
			depth := 4
			if len(fields) >= 3 && fields[1] == "depth" {
				if d, err := strconv.Atoi(fields[2]); err == nil {
					depth = d
				}
			}
			result := search.Search(board, depth)
			if !result.Found {
				fmt.Println("bestmove (none)")
				continue
			}
			logger.Printf("depth %d score %d", depth, result.Score)
			fmt.Printf("bestmove %s\n", result.Move.String())
		case "perft":
			depth := 4
			if len(fields) >= 2 {
				if d, err := strconv.Atoi(fields[1]); err == nil {
					depth = d
				}
			}
			nodes := perftParallel(board, depth, logger)
			fmt.Printf("nodes %d\n", nodes)
		case "d":
			fmt.Println(boardDiagram(board))
		default:
			logger.Printf("unrecognized command: %s", fields[0])
		}
	}
}

func handlePosition(board **chess.Board, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("position: missing argument")
	}
	var b *chess.Board
	var rest []string
	switch args[0] {
	case "startpos":
		b = chess.StartingPosition()
		rest = args[1:]
	case "fen":
		fenFields := args[1:]
		moveIdx := len(fenFields)
		for i, f := range fenFields {
			if f == "moves" {
				moveIdx = i
				break
			}
		}
		var err error
		b, err = chess.FromFEN(strings.Join(fenFields[:moveIdx], " "))
		if err != nil {
			return err
		}
		if moveIdx < len(fenFields) {
			rest = fenFields[moveIdx:]
		}
	default:
		return fmt.Errorf("position: unrecognized subcommand %q", args[0])
	}
	if len(rest) > 0 && rest[0] == "moves" {
		for _, ms := range rest[1:] {
			m, err := chess.ParseLongAlgebraic(b, ms)
			if err != nil {
				return err
			}
			b.MakeMove(m)
		}
	}
	*board = b
	return nil
}

// perftParallel splits root moves across runtime.NumCPU() workers,
// each walking its own Board copy (built fresh from the parent's FEN)
// so no goroutine ever mutates a Board another goroutine can see.
func perftParallel(b *chess.Board, depth int, logger *log.Logger) uint64 {
	if depth <= 1 {
		return perft.Count(b, depth)
	}
	moves := chess.GenerateLegalMoves(b)
	fen := b.FEN()

	jobs := make(chan chess.Move, len(moves))
	for _, m := range moves {
		jobs <- m
	}
	close(jobs)

	var total uint64
	var mu sync.Mutex
	var wg sync.WaitGroup

	workers := runtime.NumCPU()
	if workers > len(moves) {
		workers = len(moves)
	}
	if workers < 1 {
		workers = 1
	}
	logger.Printf("perft depth %d across %d workers", depth, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker, err := chess.FromFEN(fen)
			if err != nil {
				logger.Println(err)
				return
			}
			for m := range jobs {
				worker.MakeMove(m)
				n := perft.Count(worker, depth-1)
				worker.UnmakeMove()
				mu.Lock()
				total += n
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return total
}

func boardDiagram(b *chess.Board) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		sb.WriteString(strconv.Itoa(r + 1))
		sb.WriteString(" ")
		for f := 0; f < 8; f++ {
			p := b.PieceAt(chess.NewSquare(chess.File(f), chess.Rank(r)))
			if p == chess.NoPiece {
				sb.WriteString(". ")
				continue
			}
			sb.WriteString(p.String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	sb.WriteString(b.FEN())
	return sb.String()
}
