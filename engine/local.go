package engine

import (
	"fmt"

	"machikoro/game"
	"machikoro/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Engine drives one match, one strategy per seat.
type Engine struct {
	Game       *game.Game
	Strategies []game.Strategy

	gameOptions []game.Option
	maxTurns    int
	turns       int
	round       int // round of the last turn played
	log         zerolog.Logger
}

func newEngine(strategies []game.Strategy, options []Option) *Engine {
	e := &Engine{
		Strategies: strategies,
		maxTurns:   meta.MAX_TURNS,
		log:        log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// New seats one player per strategy. It fails with game.ErrInvalidPlayerCount
// before anything is played when the table size is out of range.
func New(strategies []game.Strategy, options ...Option) (*Engine, error) {
	e := newEngine(strategies, options)
	g, err := game.New(len(strategies), e.gameOptions...)
	if err != nil {
		return nil, err
	}
	e.Game = g
	return e, nil
}

// Resume drives an existing game from wherever it stands. WithSeed has no
// effect here.
func Resume(g *game.Game, strategies []game.Strategy, options ...Option) (*Engine, error) {
	if len(strategies) != len(g.Players) {
		return nil, fmt.Errorf("%w: %d strategies for %d players", game.ErrInvalidPlayerCount, len(strategies), len(g.Players))
	}
	e := newEngine(strategies, options)
	e.Game = g
	return e, nil
}

// Run plays turns until someone wins or the turn cap is reached.
func (e *Engine) Run() Result {
	e.log.Debug().Msgf("player %d is starting, seed %d", e.Game.CurrentPlayer, e.Game.Seed())

	for {
		if winner, ok := e.Game.Winner(); ok {
			e.log.Debug().Msgf("player %d won in round %d", winner, e.Round())
			break
		}
		if e.turns >= e.maxTurns {
			e.log.Warn().Uint64("seed", e.Game.Seed()).Msgf("stopped after %d turns without a winner", e.turns)
			break
		}
		e.PlayTurn()
	}
	return e.Result()
}

// PlayTurn plays the current player's turn and advances to the next one.
func (e *Engine) PlayTurn() {
	g := e.Game
	s := e.Strategies[g.CurrentPlayer]
	e.log.Debug().Object("game", g).Msgf("turn %d: player %d", e.turns, g.CurrentPlayer)

	if !g.IsBuyOnlyTurn() {
		roll := e.rollPhase(s)
		e.incomePhase(roll)
		if g.Current().Coins == 0 {
			g.GetCoinsFromBank(g.CurrentPlayer, 1)
		}
	}
	e.FinishTurn(s.DecidePurchase(g))
}

// FinishTurn runs the rest of the buy phase with decision as the current
// player's purchase, then advances the turn. A rejected decision buys
// nothing.
func (e *Engine) FinishTurn(decision game.Purchase) {
	g := e.Game
	built := e.buy(decision)
	if !g.IsBuyOnlyTurn() {
		for _, l := range g.ActiveFor(g.CurrentPlayer, game.HookTurnEnd) {
			g.OnTurnEnd(l, built)
		}
	}

	e.round = g.Round()
	g.AdvanceTurn()
	e.turns++
}

func (e *Engine) rollPhase(s game.Strategy) game.Roll {
	g := e.Game
	decision := s.DecideDiceRoll(g)
	if decision != game.RollOne && decision != game.RollTwo {
		e.log.Warn().Msgf("player %d asked for %d dice, rolling one", g.CurrentPlayer, decision)
		decision = game.RollOne
	}

	roll := g.RollDice(decision)
	e.log.Debug().Msgf("player %d rolled %d (%d dice)", g.CurrentPlayer, roll.Sum(), roll.Dice())

	for _, l := range g.ActiveFor(g.CurrentPlayer, game.HookDiceRoll) {
		if err := g.OnDiceRoll(l, roll, s); err != nil {
			e.log.Warn().Err(err).Msgf("player %d: %s gives nothing", g.CurrentPlayer, l)
		}
	}
	return roll
}

// incomePhase resolves every card the roll triggers from a snapshot taken
// before any effect runs.
func (e *Engine) incomePhase(roll game.Roll) {
	g := e.Game
	before := g.Current().Coins

	for _, a := range g.CollectActivations(roll.Sum()) {
		if err := g.ActivateCard(a.Card, a.Owner, e.Strategies[a.Owner]); err != nil {
			e.log.Warn().Err(err).Msgf("player %d: %s exchanges nothing", a.Owner, a.Card)
		}
	}

	received := g.Current().Coins > before
	for _, l := range g.ActiveFor(g.CurrentPlayer, game.HookAfterActivation) {
		g.OnAfterCardActivation(l, roll, received)
	}
}

func (e *Engine) buy(decision game.Purchase) bool {
	g := e.Game
	bought, err := g.Buy(decision)
	if err != nil {
		e.log.Warn().Err(err).Msgf("player %d buys nothing", g.CurrentPlayer)
		return false
	}
	if bought {
		e.log.Debug().Msgf("player %d bought %s", g.CurrentPlayer, decision)
	}
	return bought
}

// Turns is how many turns this engine has played.
func (e *Engine) Turns() int {
	return e.turns
}

// Round is the round the last played turn belonged to. Before any turn it
// is the game's current round.
func (e *Engine) Round() int {
	if e.turns == 0 {
		return e.Game.Round()
	}
	return e.round
}

// Result snapshots the match as it stands.
func (e *Engine) Result() Result {
	g := e.Game
	winner, ok := g.Winner()
	players := make([]*game.Player, len(g.Players))
	for i, p := range g.Players {
		players[i] = p.Copy()
	}
	return Result{
		Seed:      g.Seed(),
		Winner:    winner,
		HasWinner: ok,
		Round:     e.Round(),
		Turns:     e.turns,
		Players:   players,
	}
}
