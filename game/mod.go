package game

import "errors"

var (
	ErrInvalidDecision    = errors.New("invalid decision")
	ErrInvalidPlayerCount = errors.New("invalid number of players")
)

type StateHash uint64

// Strategy decides on behalf of one player. Every call receives the live
// game, which implementations must treat as read-only.
type Strategy interface {
	DecideDiceRoll(g *Game) DiceRoll
	DecidePurchase(g *Game) Purchase
	// DecideExchange is asked only when an exchange effect fires.
	DecideExchange(g *Game) Exchange
	// DecideGive is asked only when a give effect fires.
	DecideGive(g *Game) Give
}
