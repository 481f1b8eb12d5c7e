package room

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-relay/internal/rules"
)

type stubConn struct{ id string }

func (s *stubConn) Send(event string, data any) error { return nil }

func TestAddPlayerCapacity(t *testing.T) {
	r := New("r1")
	assert.True(t, r.AddPlayer("alice", &stubConn{id: "a"}))
	assert.True(t, r.AddPlayer("bob", &stubConn{id: "b"}))
	assert.False(t, r.AddPlayer("carol", &stubConn{id: "c"}))
	assert.Equal(t, 2, r.PlayerCount())
	assert.True(t, r.IsFull())
	assert.Equal(t, []string{"alice", "bob"}, r.PlayerNames())
}

func TestAddPlayerRejoinTransfersConn(t *testing.T) {
	r := New("r1")
	first := &stubConn{id: "first"}
	second := &stubConn{id: "second"}
	require.True(t, r.AddPlayer("alice", first))
	require.True(t, r.AddPlayer("alice", second))

	assert.Equal(t, 1, r.PlayerCount())
	conn, ok := r.ConnOf("alice")
	require.True(t, ok)
	assert.Same(t, second, conn)
}

func TestRemovePlayerIdempotent(t *testing.T) {
	r := New("r1")
	r.AddPlayer("alice", nil)
	r.RemovePlayer("alice")
	assert.Equal(t, 0, r.PlayerCount())
	r.RemovePlayer("alice")
	r.RemovePlayer("ghost")
	assert.Equal(t, 0, r.PlayerCount())
}

func TestOtherPlayer(t *testing.T) {
	r := New("r1")
	r.AddPlayer("alice", nil)

	_, ok := r.OtherPlayer("alice")
	assert.False(t, ok)

	r.AddPlayer("bob", nil)
	p, ok := r.OtherPlayer("alice")
	require.True(t, ok)
	assert.Equal(t, "bob", p.Name)
}

func TestSideOfFollowsJoinOrder(t *testing.T) {
	r := New("r1")
	r.AddPlayer("alice", nil)
	r.AddPlayer("bob", nil)

	side, ok := r.SideOf("alice")
	require.True(t, ok)
	assert.Equal(t, rules.SideWhite, side)

	side, ok = r.SideOf("bob")
	require.True(t, ok)
	assert.Equal(t, rules.SideBlack, side)

	_, ok = r.SideOf("ghost")
	assert.False(t, ok)
}

func TestMakeMoveCounters(t *testing.T) {
	r := New("r1")

	require.True(t, r.MakeMove("e2e4"))
	assert.Equal(t, 1, r.MoveCount())
	assert.Equal(t, []string{"e2e4"}, r.Moves())

	// Illegal move: no mutation.
	assert.False(t, r.MakeMove("e4e6"))
	assert.Equal(t, 1, r.MoveCount())
	assert.Len(t, r.Moves(), 1)

	// Unparseable token: no mutation.
	assert.False(t, r.MakeMove("xyzzy"))
	assert.Equal(t, 1, r.MoveCount())
	assert.Len(t, r.Moves(), 1)
}

func TestTurnAlternation(t *testing.T) {
	r := New("r1")
	for _, tok := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		before := r.Turn()
		require.True(t, r.MakeMove(tok), "move %s", tok)
		assert.NotEqual(t, before, r.Turn())
	}
}

func TestStatus(t *testing.T) {
	r := New("r1")
	assert.Equal(t, rules.StatusOngoing, r.Status())

	for _, tok := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		require.True(t, r.MakeMove(tok))
	}
	assert.Equal(t, rules.StatusCheckmate, r.Status())
}

func TestMoveFromHint(t *testing.T) {
	r := New("r1")

	scratch := rules.NewGame()
	m, err := rules.ParseUCI(scratch, "d2d4")
	require.NoError(t, err)
	require.NoError(t, scratch.Move(m))

	tok, ok := r.MoveFromHint(scratch.FEN())
	require.True(t, ok)
	assert.Equal(t, "d2d4", tok)
	// Hint resolution must not mutate the room.
	assert.Equal(t, 0, r.MoveCount())
}

func TestExportPGNRoundTrip(t *testing.T) {
	r := New("r1")
	for _, tok := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4"} {
		require.True(t, r.MakeMove(tok))
	}

	pgn := r.ExportPGN()
	assert.True(t, strings.Contains(pgn, `[Event "Room r1"]`))
	assert.True(t, strings.Contains(pgn, `[Site "Local"]`))

	// Replaying the exported move log from the initial position reproduces
	// the live position exactly.
	replay := rules.NewGame()
	for _, tok := range r.Moves() {
		m, err := rules.ParseUCI(replay, tok)
		require.NoError(t, err)
		require.NoError(t, replay.Move(m))
	}
	assert.Equal(t, r.FEN(), replay.FEN())
}
