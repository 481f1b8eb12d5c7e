package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chess-relay/internal/engine"
	"chess-relay/internal/room"
)

func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Chess Game Server", "status": "running"})
	}
}

func HealthHandler(rm *room.Manager, eng *engine.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:            "healthy",
			EngineInitialized: eng.Initialized(),
			ActiveRooms:       rm.Count(),
		})
	}
}

// ListRoomsHandler returns joinable rooms: seated but not yet full.
func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		available := []RoomSummary{}
		for _, r := range rm.Rooms() {
			n := r.PlayerCount()
			if n > 0 && n < 2 {
				available = append(available, RoomSummary{
					RoomID:      r.ID(),
					Players:     r.PlayerNames(),
					PlayerCount: n,
				})
			}
		}
		c.JSON(http.StatusOK, RoomListResponse{Rooms: available, Total: len(available)})
	}
}

// ExportPGNHandler serves the room's game record rebuilt from its move log.
func ExportPGNHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := rm.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.String(http.StatusOK, r.ExportPGN())
	}
}
