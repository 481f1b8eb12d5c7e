package http

import (
	"github.com/gin-gonic/gin"

	"chess-relay/internal/api/ws"
	"chess-relay/internal/engine"
	"chess-relay/internal/room"
)

func SetupRouter(rm *room.Manager, eng *engine.Engine, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for gameplay events
	r.GET("/ws", hub.HandleWS)

	r.GET("/", RootHandler())
	r.GET("/health", HealthHandler(rm, eng))
	r.GET("/api/rooms", ListRoomsHandler(rm))
	r.GET("/api/rooms/:id/pgn", ExportPGNHandler(rm))

	return r
}
