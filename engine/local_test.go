package engine_test

import (
	"testing"

	"machikoro/agent"
	"machikoro/engine"
	"machikoro/game"

	"github.com/stretchr/testify/require"
)

// mockStrategy always makes the same decisions and remembers what it saw.
type mockStrategy struct {
	roll     game.DiceRoll
	purchase game.Purchase

	coinsAtPurchase []uint
}

func (m *mockStrategy) DecideDiceRoll(g *game.Game) game.DiceRoll { return m.roll }

func (m *mockStrategy) DecidePurchase(g *game.Game) game.Purchase {
	m.coinsAtPurchase = append(m.coinsAtPurchase, g.Current().Coins)
	return m.purchase
}

func (m *mockStrategy) DecideExchange(g *game.Game) game.Exchange { return game.Exchange{} }
func (m *mockStrategy) DecideGive(g *game.Game) game.Give         { return game.Give{} }

func newMocks(n int, roll game.DiceRoll) []game.Strategy {
	strategies := make([]game.Strategy, n)
	for i := range strategies {
		strategies[i] = &mockStrategy{roll: roll}
	}
	return strategies
}

func TestNew(t *testing.T) {
	t.Run("too few players", func(t *testing.T) {
		_, err := engine.New(newMocks(1, game.RollOne))
		require.ErrorIs(t, err, game.ErrInvalidPlayerCount)
	})

	t.Run("too many players", func(t *testing.T) {
		_, err := engine.New(newMocks(6, game.RollOne))
		require.ErrorIs(t, err, game.ErrInvalidPlayerCount)
	})

	t.Run("resume with a mismatched table", func(t *testing.T) {
		e, err := engine.New(newMocks(3, game.RollOne), engine.WithSeed(1))
		require.NoError(t, err)

		_, err = engine.Resume(e.Game, newMocks(2, game.RollOne))
		require.ErrorIs(t, err, game.ErrInvalidPlayerCount)
	})
}

func TestPlayTurn(t *testing.T) {
	t.Run("buy-only turn", func(t *testing.T) {
		e, err := engine.New(newMocks(2, game.RollTwo), engine.WithSeed(1))
		require.NoError(t, err)
		e.Game.Current().Coins = 0

		e.PlayTurn()

		p := e.Game.Players[0]
		require.Empty(t, p.Rolls, "Nobody rolls in the opening rounds")
		require.Equal(t, uint(0), p.Coins, "No grant in the opening rounds")
		require.Equal(t, 1, e.Game.CurrentPlayer)
	})

	t.Run("zero balance grant", func(t *testing.T) {
		for _, purchase := range []game.Purchase{{}, game.PurchaseCard(game.Mine), game.PurchaseLandmark(game.LaunchPad)} {
			s := &mockStrategy{roll: game.RollTwo, purchase: purchase}
			e, err := engine.New([]game.Strategy{s, &mockStrategy{roll: game.RollOne}}, engine.WithSeed(3))
			require.NoError(t, err)
			e.Game.Turn = 6
			e.Game.Current().Coins = 0

			e.PlayTurn()

			require.Equal(t, []uint{1}, s.coinsAtPurchase, "Player should hold exactly 1 coin when deciding")
			require.Len(t, e.Game.Players[0].Rolls, 1)
		}
	})

	t.Run("invalid purchase buys nothing", func(t *testing.T) {
		s := &mockStrategy{roll: game.RollOne, purchase: game.PurchaseLandmark(game.LaunchPad)}
		e, err := engine.New([]game.Strategy{s, &mockStrategy{roll: game.RollOne}}, engine.WithSeed(5))
		require.NoError(t, err)
		before := e.Game.Current().Coins

		require.NotPanics(t, e.PlayTurn)

		require.Empty(t, e.Game.Players[0].Landmarks)
		require.Equal(t, before, e.Game.Players[0].Coins)
		require.Equal(t, 1, e.Game.CurrentPlayer, "Turn should still advance")
	})

	t.Run("unknown card buys nothing", func(t *testing.T) {
		for _, c := range []game.Card{game.Card(99), game.Card(-3)} {
			s := &mockStrategy{roll: game.RollOne, purchase: game.PurchaseCard(c)}
			e, err := engine.New([]game.Strategy{s, &mockStrategy{roll: game.RollOne}}, engine.WithSeed(5))
			require.NoError(t, err)
			before := e.Game.Current().Coins

			require.NotPanics(t, e.PlayTurn)

			require.Empty(t, e.Game.Players[0].Cards)
			require.Equal(t, before, e.Game.Players[0].Coins)
			require.Equal(t, 1, e.Game.CurrentPlayer, "Turn should still advance")
		}
	})

	t.Run("invalid dice decision rolls one die", func(t *testing.T) {
		e, err := engine.New(newMocks(2, game.DiceRoll(7)), engine.WithSeed(5))
		require.NoError(t, err)
		e.Game.Turn = 6

		e.PlayTurn()

		require.Equal(t, 1, e.Game.Players[0].Rolls[0].Dice())
	})

	t.Run("airport pays when nothing is built", func(t *testing.T) {
		e, err := engine.New(newMocks(2, game.RollOne), engine.WithSeed(9))
		require.NoError(t, err)
		g := e.Game
		g.Turn = 6
		g.Current().Coins = 100
		for !g.Landmarks.Market().Contains(game.Airport) {
			g.Landmarks.Take(g.Landmarks.Market().Tags()[0])
		}
		require.NoError(t, g.BuyLandmark(game.Airport))
		before := g.Current().Coins

		e.PlayTurn()

		require.Equal(t, before+5, g.Players[0].Coins, "No cards, so the only income is the Airport")
	})
}

func TestRun(t *testing.T) {
	t.Run("same seeds, same match", func(t *testing.T) {
		play := func() engine.Result {
			strategies := []game.Strategy{agent.NewRandom(1), agent.NewGreedyBestCard(2), agent.NewLandmarkRush(3)}
			e, err := engine.New(strategies, engine.WithSeed(2024))
			require.NoError(t, err)
			return e.Run()
		}

		require.Equal(t, play(), play())
	})

	t.Run("landmark rush finishes", func(t *testing.T) {
		strategies := []game.Strategy{agent.NewLandmarkRush(1), agent.NewLandmarkRush(2)}
		e, err := engine.New(strategies, engine.WithSeed(11))
		require.NoError(t, err)

		result := e.Run()

		require.True(t, result.HasWinner)
		winner := result.WinningPlayer()
		won := len(winner.Landmarks) >= 3
		for _, o := range winner.Landmarks {
			won = won || o.Landmark == game.LaunchPad
		}
		require.True(t, won, "Winner should meet the win condition")
		require.Equal(t, e.Round(), result.Round)
	})

	t.Run("win on the last seat keeps its round", func(t *testing.T) {
		e, err := engine.New(newMocks(2, game.RollOne), engine.WithSeed(1))
		require.NoError(t, err)
		g := e.Game
		g.Turn = 7 // round 3, second seat
		g.CurrentPlayer = 1
		for _, l := range game.AllLandmarks() {
			if l != game.WinLandmark && len(g.Players[1].Landmarks) < 3 {
				g.Players[1].Landmarks = append(g.Players[1].Landmarks, game.OwnedLandmark{Landmark: l, Round: 3})
			}
		}

		e.FinishTurn(game.Purchase{})
		result := e.Run()

		require.True(t, result.HasWinner)
		require.Equal(t, 1, result.Winner)
		require.Equal(t, 3, result.Round, "Win happened during round 3")
		require.Equal(t, 4, g.Round(), "Game already advanced to the next round")
		require.Equal(t, 1, e.Turns())
	})

	t.Run("turn cap", func(t *testing.T) {
		e, err := engine.New(newMocks(3, game.RollOne), engine.WithSeed(1), engine.WithMaxTurns(50))
		require.NoError(t, err)

		result := e.Run()

		require.False(t, result.HasWinner, "Nobody ever buys")
		require.Equal(t, -1, result.Winner)
		require.Equal(t, 50, result.Turns)
		require.Equal(t, 50, e.Turns())
		require.Nil(t, result.WinningPlayer())
	})
}
