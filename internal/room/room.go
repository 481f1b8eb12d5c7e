package room

import (
	"sync"
	"time"

	"github.com/notnil/chess"

	"chess-relay/internal/rules"
)

// Conn is the transport handle for a joined player. The room keeps a
// back-reference only; connection lifetime belongs to the transport layer.
type Conn interface {
	Send(event string, data any) error
}

// Player is one seat in a room. Join order assigns sides: index 0 is white.
type Player struct {
	Name string
	Conn Conn
}

// Room is one two-player game. All state is guarded by mu; MakeMove is the
// single mutation point for the position, move log, and move count.
type Room struct {
	mu        sync.Mutex
	id        string
	game      *chess.Game
	players   []Player
	moveLog   []string
	moveCount int
	createdAt time.Time
}

func New(id string) *Room {
	return &Room{
		id:        id,
		game:      rules.NewGame(),
		createdAt: time.Now(),
	}
}

func (r *Room) ID() string { return r.id }

func (r *Room) CreatedAt() time.Time { return r.createdAt }

// AddPlayer seats a player. A name already present re-joins successfully and
// takes over the stored connection handle (last bind wins); a third distinct
// name is rejected.
func (r *Room) AddPlayer(name string, conn Conn) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.players {
		if r.players[i].Name == name {
			r.players[i].Conn = conn
			return true
		}
	}
	if len(r.players) >= 2 {
		return false
	}
	r.players = append(r.players, Player{Name: name, Conn: conn})
	return true
}

// RemovePlayer unseats a player. Removing an absent name is a no-op.
func (r *Room) RemovePlayer(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.players {
		if r.players[i].Name == name {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return
		}
	}
}

func (r *Room) HasPlayer(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.players {
		if r.players[i].Name == name {
			return true
		}
	}
	return false
}

// ConnOf returns the connection handle stored for the named player.
func (r *Room) ConnOf(name string) (Conn, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.Name == name {
			return p.Conn, true
		}
	}
	return nil, false
}

// OtherPlayer returns the seated player other than name, if any.
func (r *Room) OtherPlayer(name string) (Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.Name != name {
			return p, true
		}
	}
	return Player{}, false
}

// Players returns a snapshot of the seats in join order.
func (r *Room) Players() []Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}

func (r *Room) PlayerNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.players))
	for i, p := range r.players {
		names[i] = p.Name
	}
	return names
}

func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

func (r *Room) IsFull() bool {
	return r.PlayerCount() >= 2
}

// SideOf reports the side the named player holds, derived from join order.
func (r *Room) SideOf(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.players {
		if p.Name == name {
			return rules.SideOfIndex(i), true
		}
	}
	return "", false
}

// MakeMove parses and applies a UCI move token. It returns false, with no
// mutation, when the token does not parse or the move is illegal.
func (r *Room) MakeMove(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, err := rules.ParseUCI(r.game, token)
	if err != nil {
		return false
	}
	if err := r.game.Move(m); err != nil {
		return false
	}
	r.moveLog = append(r.moveLog, token)
	r.moveCount++
	return true
}

// FEN is the canonical form of the current position.
func (r *Room) FEN() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.FEN()
}

func (r *Room) Turn() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rules.TurnOf(r.game)
}

func (r *Room) Status() rules.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rules.StatusOf(r.game)
}

func (r *Room) MoveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.moveCount
}

// Moves returns a copy of the applied move tokens in order.
func (r *Room) Moves() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.moveLog))
	copy(out, r.moveLog)
	return out
}

// MoveFromHint resolves a move token from a client-supplied FEN of the
// intended resulting position.
func (r *Room) MoveFromHint(fenHint string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rules.MoveFromHint(r.game, fenHint)
}

// ExportPGN replays the move log from the initial position into a PGN
// record. Every logged move is re-validated; replay stops at the first move
// the rules authority rejects rather than trusting the log.
func (r *Room) ExportPGN() string {
	r.mu.Lock()
	moves := make([]string, len(r.moveLog))
	copy(moves, r.moveLog)
	id := r.id
	r.mu.Unlock()

	g := rules.NewGame()
	g.AddTagPair("Event", "Room "+id)
	g.AddTagPair("Site", "Local")
	for _, token := range moves {
		m, err := rules.ParseUCI(g, token)
		if err != nil {
			break
		}
		if err := g.Move(m); err != nil {
			break
		}
	}
	return g.String()
}
