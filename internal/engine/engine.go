// Package engine wraps a UCI chess engine (Stockfish) as the move oracle for
// the AI-assisted player. Search effort is capped by depth and move time; a
// failed search falls back to any legal move so play can continue, and
// callers never see the fallback as a distinct outcome.
package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/notnil/chess/uci"

	"chess-relay/internal/rules"
)

var (
	ErrNotInitialized = errors.New("engine not initialized")
	ErrNoMove         = errors.New("no legal moves in position")
)

type Engine struct {
	path     string
	depth    int
	moveTime time.Duration

	mu  sync.Mutex
	eng *uci.Engine
}

func New(path string, depth int, moveTime time.Duration) *Engine {
	return &Engine{path: path, depth: depth, moveTime: moveTime}
}

// Initialize starts the engine process and runs the UCI handshake. It is safe
// to call more than once; subsequent calls on a running engine are no-ops.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.eng != nil {
		return nil
	}
	eng, err := uci.New(e.path)
	if err != nil {
		return fmt.Errorf("start %s: %w", e.path, err)
	}
	if err := eng.Run(uci.CmdUCI, uci.CmdIsReady, uci.CmdUCINewGame); err != nil {
		eng.Close()
		return fmt.Errorf("uci handshake: %w", err)
	}
	e.eng = eng
	return nil
}

func (e *Engine) Initialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.eng != nil
}

func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.eng != nil {
		e.eng.Close()
		e.eng = nil
	}
}

// BestMove returns the engine's move for the given position as a UCI token.
func (e *Engine) BestMove(fen string) (string, error) {
	g, err := rules.GameFromFEN(fen)
	if err != nil {
		return "", fmt.Errorf("invalid position: %w", err)
	}
	moves := g.ValidMoves()
	if len(moves) == 0 {
		return "", ErrNoMove
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.eng == nil {
		return "", ErrNotInitialized
	}

	err = e.eng.Run(
		uci.CmdPosition{Position: g.Position()},
		uci.CmdGo{Depth: e.depth, MoveTime: e.moveTime},
	)
	if err != nil {
		log.Printf("engine search failed, falling back to a legal move: %v", err)
		return moves[0].String(), nil
	}
	best := e.eng.SearchResults().BestMove
	if best == nil {
		log.Printf("engine returned no best move, falling back to a legal move")
		return moves[0].String(), nil
	}
	return best.String(), nil
}
