package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr string

	// UCI engine binding for the AI-assisted player.
	StockfishPath  string
	EngineDepth    int
	EngineMoveTime time.Duration

	// Display name (case-insensitive) whose moves are always engine-sourced.
	AIPlayerName string

	DefaultRoomID string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8000"),
		StockfishPath:  getenv("STOCKFISH_PATH", "stockfish"),
		EngineDepth:    getenvInt("ENGINE_DEPTH", 10),
		EngineMoveTime: time.Duration(getenvInt("ENGINE_MOVE_TIME_MS", 100)) * time.Millisecond,
		AIPlayerName:   getenv("AI_PLAYER_NAME", "raunak"),
		DefaultRoomID:  getenv("DEFAULT_ROOM_ID", "default"),
	}
}
