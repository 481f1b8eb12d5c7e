package http

type HealthResponse struct {
	Status            string `json:"status"`
	EngineInitialized bool   `json:"engine_initialized"`
	ActiveRooms       int    `json:"active_rooms"`
}

type RoomSummary struct {
	RoomID      string   `json:"room_id"`
	Players     []string `json:"players"`
	PlayerCount int      `json:"player_count"`
}

type RoomListResponse struct {
	Rooms []RoomSummary `json:"rooms"`
	Total int           `json:"total"`
}
