package ws

import "encoding/json"

// Inbound event names.
const (
	EventJoinRoom   = "join_room"
	EventPlayerMove = "player_move"
)

// Outbound event names.
const (
	EventError                = "error"
	EventGameState            = "game_state"
	EventPlayerJoined         = "player_joined"
	EventOpponentDisconnected = "opponent_disconnected"
	EventMoveUpdate           = "move_update"
)

// Envelope is the wire frame for every event in both directions.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// inboundMessage defers payload decoding until the event name is known.
type inboundMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type JoinPayload struct {
	Username string `json:"username"`
	RoomID   string `json:"room_id"`
}

type MovePayload struct {
	RoomID  string `json:"room_id"`
	MoveUCI string `json:"move_uci"`
	FEN     string `json:"fen"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type GameStatePayload struct {
	FEN     string   `json:"fen"`
	Turn    string   `json:"turn"`
	Status  string   `json:"status"`
	Players []string `json:"players,omitempty"`
	RoomID  string   `json:"room_id,omitempty"`
}

type PlayerJoinedPayload struct {
	Username string   `json:"username"`
	Players  []string `json:"players"`
}

type MoveUpdatePayload struct {
	FEN      string `json:"fen"`
	MoveUCI  string `json:"move_uci"`
	Username string `json:"username"`
}
