package engine

import (
	"machikoro/game"

	"github.com/rs/zerolog"
)

// Result is the outcome of one match.
type Result struct {
	Seed      uint64
	Winner    int // -1 when the turn cap was hit first
	HasWinner bool
	Round     int // round in which the match ended
	Turns     int // turns played, extra turns included
	Players   []*game.Player
}

// WinningPlayer returns the winner's final ledger, or nil.
func (r Result) WinningPlayer() *game.Player {
	if !r.HasWinner {
		return nil
	}
	return r.Players[r.Winner]
}

type Option func(e *Engine)

// WithSeed fixes the game's deck order and dice.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.gameOptions = append(e.gameOptions, game.WithSeed(seed))
	}
}

// WithMaxTurns overrides the safety cap on turns played.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithLogger replaces the global logger, e.g. with zerolog.Nop() for
// throwaway playouts.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}
