package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnOf(t *testing.T) {
	g := NewGame()
	assert.Equal(t, SideWhite, TurnOf(g))

	m, err := ParseUCI(g, "e2e4")
	require.NoError(t, err)
	require.NoError(t, g.Move(m))
	assert.Equal(t, SideBlack, TurnOf(g))
}

func TestParseUCIRejectsGarbage(t *testing.T) {
	g := NewGame()
	_, err := ParseUCI(g, "not-a-move")
	assert.Error(t, err)
}

func TestStatusOf(t *testing.T) {
	t.Run("fresh game is ongoing", func(t *testing.T) {
		assert.Equal(t, StatusOngoing, StatusOf(NewGame()))
	})

	t.Run("fools mate is checkmate", func(t *testing.T) {
		g := NewGame()
		for _, tok := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
			m, err := ParseUCI(g, tok)
			require.NoError(t, err)
			require.NoError(t, g.Move(m))
		}
		assert.Equal(t, StatusCheckmate, StatusOf(g))
	})

	t.Run("stalemate", func(t *testing.T) {
		// Black to move with no legal moves and no check.
		g, err := GameFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
		require.NoError(t, err)
		assert.Equal(t, StatusStalemate, StatusOf(g))
	})
}

func TestSideOfIndex(t *testing.T) {
	assert.Equal(t, SideWhite, SideOfIndex(0))
	assert.Equal(t, SideBlack, SideOfIndex(1))
}

func TestMoveFromHint(t *testing.T) {
	live := NewGame()

	// Build the hint by applying the intended move to a scratch game.
	scratch := NewGame()
	m, err := ParseUCI(scratch, "e2e4")
	require.NoError(t, err)
	require.NoError(t, scratch.Move(m))
	hint := scratch.FEN()

	tok, ok := MoveFromHint(live, hint)
	require.True(t, ok)
	assert.Equal(t, "e2e4", tok)

	// The live game must not have been mutated by the scratch applications.
	assert.Equal(t, SideWhite, TurnOf(live))

	_, ok = MoveFromHint(live, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 99 99")
	assert.False(t, ok)
}
