package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// Hub upgrades HTTP requests to websocket connections and pumps their events
// into the coordinator. One read loop per connection; the coordinator runs
// each event to completion before the loop reads the next one.
type Hub struct {
	coordinator *Coordinator
}

func NewHub(coordinator *Coordinator) *Hub {
	return &Hub{coordinator: coordinator}
}

func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("failed to upgrade connection: %v", err)
		return
	}

	client := newClient(conn)
	go client.writePump()
	log.Printf("client connected: %s", client.ID())
	h.coordinator.HandleConnect(client)

	defer func() {
		h.coordinator.HandleDisconnect(client)
		client.close()
		log.Printf("client disconnected: %s", client.ID())
	}()

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read error from client %s: %v", client.ID(), err)
			}
			return
		}

		switch msg.Event {
		case EventJoinRoom:
			var p JoinPayload
			if err := json.Unmarshal(msg.Data, &p); err != nil {
				log.Printf("invalid %s payload from %s: %v", msg.Event, client.ID(), err)
				continue
			}
			h.coordinator.HandleJoin(client, p)
		case EventPlayerMove:
			var p MovePayload
			if err := json.Unmarshal(msg.Data, &p); err != nil {
				log.Printf("invalid %s payload from %s: %v", msg.Event, client.ID(), err)
				continue
			}
			h.coordinator.HandleMove(client, p)
		default:
			log.Printf("unknown event from %s: %q", client.ID(), msg.Event)
		}
	}
}
