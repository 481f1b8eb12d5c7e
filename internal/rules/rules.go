// Package rules binds the relay to its rules authority. Everything the rest
// of the server knows about chess goes through here: move parsing, legality,
// terminal status, and the canonical FEN form of a position.
package rules

import (
	"github.com/notnil/chess"
)

// Status is the terminal state of a game as reported to clients.
type Status string

const (
	StatusOngoing              Status = "ongoing"
	StatusCheckmate            Status = "checkmate"
	StatusStalemate            Status = "stalemate"
	StatusInsufficientMaterial Status = "insufficient_material"
	StatusSeventyFiveMoves     Status = "seventyfive_moves"
	StatusFivefoldRepetition   Status = "fivefold_repetition"
	StatusVariantDraw          Status = "variant_draw"
)

const (
	SideWhite = "white"
	SideBlack = "black"
)

// NewGame returns a game at the standard initial position.
func NewGame() *chess.Game {
	return chess.NewGame(chess.UseNotation(chess.UCINotation{}))
}

// GameFromFEN returns a game rooted at the given position.
func GameFromFEN(fen string) (*chess.Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, err
	}
	return chess.NewGame(opt, chess.UseNotation(chess.UCINotation{})), nil
}

// ParseUCI decodes a UCI move token against the game's current position.
func ParseUCI(g *chess.Game, token string) (*chess.Move, error) {
	return chess.UCINotation{}.Decode(g.Position(), token)
}

// TurnOf reports the side to move.
func TurnOf(g *chess.Game) string {
	if g.Position().Turn() == chess.White {
		return SideWhite
	}
	return SideBlack
}

// SideOfIndex maps join order to a side: the first joiner plays white.
func SideOfIndex(i int) string {
	if i == 0 {
		return SideWhite
	}
	return SideBlack
}

// StatusOf evaluates the game's status. Checkmate and stalemate are derived
// fresh from the position and take priority; the automatic draw conditions
// (insufficient material, 75-move rule, fivefold repetition) come from the
// game record, which the library updates on every applied move.
func StatusOf(g *chess.Game) Status {
	switch g.Position().Status() {
	case chess.Checkmate:
		return StatusCheckmate
	case chess.Stalemate:
		return StatusStalemate
	}
	switch g.Method() {
	case chess.InsufficientMaterial:
		return StatusInsufficientMaterial
	case chess.SeventyFiveMoveRule:
		return StatusSeventyFiveMoves
	case chess.FivefoldRepetition:
		return StatusFivefoldRepetition
	}
	if g.Outcome() == chess.Draw {
		return StatusVariantDraw
	}
	return StatusOngoing
}

// MoveFromHint resolves a move by finding the legal move whose resulting
// position matches the given FEN exactly. This is a hint-resolution
// convenience for clients that send a position instead of a move token; it
// costs one scratch application per legal move.
func MoveFromHint(g *chess.Game, fenHint string) (string, bool) {
	for _, m := range g.ValidMoves() {
		if g.Position().Update(m).String() == fenHint {
			return m.String(), true
		}
	}
	return "", false
}
