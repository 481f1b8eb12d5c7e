package main

import (
	"log"

	httpapi "chess-relay/internal/api/http"
	"chess-relay/internal/api/ws"
	"chess-relay/internal/config"
	"chess-relay/internal/engine"
	"chess-relay/internal/room"
	"chess-relay/internal/store"
)

func main() {
	cfg := config.Load()

	eng := engine.New(cfg.StockfishPath, cfg.EngineDepth, cfg.EngineMoveTime)
	if err := eng.Initialize(); err != nil {
		log.Printf("warning: chess engine unavailable: %v", err)
		log.Printf("AI-assisted play disabled until a UCI engine is installed")
	} else {
		log.Printf("chess engine initialized: %s", cfg.StockfishPath)
		defer eng.Close()
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem)
	coord := ws.NewCoordinator(rm, eng, cfg)
	hub := ws.NewHub(coord)
	r := httpapi.SetupRouter(rm, eng, hub)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
