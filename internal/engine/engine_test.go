package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestInitializeMissingBinary(t *testing.T) {
	e := New("/nonexistent/stockfish", 10, 100*time.Millisecond)
	err := e.Initialize()
	require.Error(t, err)
	assert.False(t, e.Initialized())
}

func TestBestMoveBeforeInitialize(t *testing.T) {
	e := New("stockfish", 10, 100*time.Millisecond)
	_, err := e.BestMove(startFEN)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestBestMoveInvalidPosition(t *testing.T) {
	e := New("stockfish", 10, 100*time.Millisecond)
	_, err := e.BestMove("this is not a fen")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotInitialized)
}

func TestBestMoveNoLegalMoves(t *testing.T) {
	e := New("stockfish", 10, 100*time.Millisecond)
	// Stalemate position: black to move, no legal moves.
	_, err := e.BestMove("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.ErrorIs(t, err, ErrNoMove)
}

func TestCloseWithoutInitialize(t *testing.T) {
	e := New("stockfish", 10, 100*time.Millisecond)
	e.Close()
	assert.False(t, e.Initialized())
}
