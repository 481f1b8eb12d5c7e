package ws

import (
	"log"
	"strings"
	"sync"

	"chess-relay/internal/config"
	"chess-relay/internal/room"
	"chess-relay/internal/rules"
)

// Oracle proposes a move for a position given in canonical (FEN) form.
type Oracle interface {
	BestMove(fen string) (string, error)
}

// roomLocks serializes event handling per room. A handler holds its room's
// lock end to end, oracle calls and broadcasts included, so no two events
// for the same session ever interleave. Entries live for the process
// lifetime, keyed by room id, so a re-created room reuses the same lock and
// can never race a handler for its evicted predecessor.
type roomLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *roomLocks) of(id string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	lk, ok := l.locks[id]
	if !ok {
		lk = &sync.Mutex{}
		l.locks[id] = lk
	}
	return lk
}

// Coordinator orchestrates game events: it owns turn enforcement, the
// reserved-identity auto-play loop, and event broadcasting. Rooms come from
// the registry, identities from the directory, and AI moves from the oracle.
type Coordinator struct {
	rooms  *room.Manager
	dir    *Directory
	oracle Oracle
	cfg    config.Config
	locks  roomLocks
}

func NewCoordinator(rooms *room.Manager, oracle Oracle, cfg config.Config) *Coordinator {
	return &Coordinator{
		rooms:  rooms,
		dir:    NewDirectory(),
		oracle: oracle,
		cfg:    cfg,
	}
}

func (c *Coordinator) HandleConnect(conn room.Conn) {
	// Nothing to do until the client joins a room.
}

// HandleJoin seats a player in a room, sends them a state snapshot, and, if
// the room just filled up, notifies the opponent and kicks off auto-play.
func (c *Coordinator) HandleJoin(conn room.Conn, p JoinPayload) {
	username := strings.TrimSpace(p.Username)
	roomID := strings.TrimSpace(p.RoomID)
	if roomID == "" {
		roomID = c.cfg.DefaultRoomID
	}
	if username == "" {
		c.sendError(conn, "Username is required")
		return
	}

	c.dir.Bind(username, conn)

	lk := c.locks.of(roomID)
	lk.Lock()
	defer lk.Unlock()

	r := c.rooms.GetOrCreate(roomID)
	if r.IsFull() && !r.HasPlayer(username) {
		c.sendError(conn, "Room is full")
		return
	}
	r.AddPlayer(username, conn)

	c.send(conn, EventGameState, GameStatePayload{
		FEN:     r.FEN(),
		Turn:    r.Turn(),
		Status:  string(r.Status()),
		Players: r.PlayerNames(),
		RoomID:  roomID,
	})

	if r.IsFull() {
		if other, ok := r.OtherPlayer(username); ok && other.Conn != nil {
			c.send(other.Conn, EventPlayerJoined, PlayerJoinedPayload{
				Username: username,
				Players:  r.PlayerNames(),
			})
		}
		c.autoPlay(r)
	}

	log.Printf("player %s joined room %s", username, roomID)
}

// HandleMove validates and applies a move event. For the reserved identity
// the client-supplied move is ignored and the oracle is consulted instead.
func (c *Coordinator) HandleMove(conn room.Conn, p MovePayload) {
	username, ok := c.dir.NameOf(conn)
	if !ok {
		c.sendError(conn, "Not authenticated")
		return
	}
	roomID := strings.TrimSpace(p.RoomID)
	if roomID == "" {
		roomID = c.cfg.DefaultRoomID
	}

	lk := c.locks.of(roomID)
	lk.Lock()
	defer lk.Unlock()

	r, ok := c.rooms.Get(roomID)
	if !ok {
		c.sendError(conn, "Room not found")
		return
	}
	if !r.HasPlayer(username) {
		c.sendError(conn, "Not in this room")
		return
	}
	if !r.IsFull() {
		c.sendError(conn, "Waiting for opponent")
		return
	}
	side, _ := r.SideOf(username)
	if side != r.Turn() {
		c.sendError(conn, "Not your turn")
		return
	}

	if strings.EqualFold(username, c.cfg.AIPlayerName) {
		token, err := c.oracle.BestMove(r.FEN())
		if err != nil {
			log.Printf("oracle failed for %s in room %s: %v", username, roomID, err)
			c.sendError(conn, "AI could not generate move")
			return
		}
		if !r.MakeMove(token) {
			c.sendError(conn, "Invalid AI move")
			return
		}
		log.Printf("AI move for %s: %s", username, token)
		c.broadcastMove(r, token, username)
		c.autoPlay(r)
		return
	}

	token := p.MoveUCI
	if token == "" && p.FEN != "" {
		// Hint resolution: recover the move from the position the client
		// says it reached. Explicit tokens remain the primary protocol.
		token, _ = r.MoveFromHint(p.FEN)
	}
	if token == "" {
		c.sendError(conn, "Move required")
		return
	}
	if !r.MakeMove(token) {
		c.sendError(conn, "Invalid move")
		return
	}
	log.Printf("move by %s: %s", username, token)
	c.broadcastMove(r, token, username)
	c.autoPlay(r)
}

// HandleDisconnect unbinds the connection and unseats its player. The room
// is evicted the instant its last player leaves.
func (c *Coordinator) HandleDisconnect(conn room.Conn) {
	username, ok := c.dir.Unbind(conn)
	if !ok {
		return
	}
	r, ok := c.rooms.FindByPlayer(username)
	if !ok {
		return
	}

	lk := c.locks.of(r.ID())
	lk.Lock()
	defer lk.Unlock()

	// The seat may belong to a newer connection by now (re-join with the
	// same name); only this connection's seat is released.
	if cur, ok := r.ConnOf(username); !ok || cur != conn {
		return
	}
	r.RemovePlayer(username)
	if other, ok := r.OtherPlayer(username); ok && other.Conn != nil {
		c.send(other.Conn, EventOpponentDisconnected, struct{}{})
	}
	if r.PlayerCount() == 0 {
		c.rooms.Remove(r.ID())
	}
	log.Printf("player %s left room %s", username, r.ID())
}

// autoPlay keeps issuing oracle moves while the reserved identity is seated
// and on turn. The loop ends through turn alternation, not an iteration cap.
func (c *Coordinator) autoPlay(r *room.Room) {
	for {
		if !r.IsFull() || r.Status() != rules.StatusOngoing {
			return
		}
		aiName, ok := c.reservedPlayer(r)
		if !ok {
			return
		}
		side, _ := r.SideOf(aiName)
		if side != r.Turn() {
			return
		}
		token, err := c.oracle.BestMove(r.FEN())
		if err != nil {
			log.Printf("auto-play oracle failed in room %s: %v", r.ID(), err)
			return
		}
		if !r.MakeMove(token) {
			log.Printf("auto-play move %s rejected in room %s", token, r.ID())
			return
		}
		log.Printf("auto AI move for %s: %s", aiName, token)
		c.broadcastMove(r, token, aiName)
	}
}

func (c *Coordinator) reservedPlayer(r *room.Room) (string, bool) {
	for _, name := range r.PlayerNames() {
		if strings.EqualFold(name, c.cfg.AIPlayerName) {
			return name, true
		}
	}
	return "", false
}

// broadcastMove sends the applied move and the refreshed game state to every
// player in the room, in that order per connection.
func (c *Coordinator) broadcastMove(r *room.Room, token, username string) {
	update := MoveUpdatePayload{
		FEN:      r.FEN(),
		MoveUCI:  token,
		Username: username,
	}
	state := GameStatePayload{
		FEN:    r.FEN(),
		Turn:   r.Turn(),
		Status: string(r.Status()),
	}
	for _, p := range r.Players() {
		if p.Conn == nil {
			continue
		}
		c.send(p.Conn, EventMoveUpdate, update)
		c.send(p.Conn, EventGameState, state)
	}
}

func (c *Coordinator) send(conn room.Conn, event string, data any) {
	if err := conn.Send(event, data); err != nil {
		log.Printf("failed to send %s event: %v", event, err)
	}
}

func (c *Coordinator) sendError(conn room.Conn, msg string) {
	c.send(conn, EventError, ErrorPayload{Message: msg})
}
