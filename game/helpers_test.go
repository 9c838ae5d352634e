package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, players int) *Game {
	t.Helper()
	g, err := New(players, WithSeed(42))
	require.NoError(t, err)
	return g
}

func setCoins(g *Game, coins ...uint) {
	for i, c := range coins {
		g.Players[i].Coins = c
	}
}

func totalCoins(g *Game) uint {
	var total uint
	for _, p := range g.Players {
		total += p.Coins
	}
	return total
}

func giveCards(g *Game, player int, cards ...Card) {
	for _, c := range cards {
		g.Players[player].Cards = append(g.Players[player].Cards, OwnedCard{Card: c})
	}
}

// build hands player landmarks without paying, caching infinite ones.
func build(g *Game, player int, landmarks ...Landmark) {
	for _, l := range landmarks {
		g.Players[player].Landmarks = append(g.Players[player].Landmarks, OwnedLandmark{Landmark: l})
		if l.Def().Kind == Infinite {
			g.active = append(g.active, l)
		}
	}
}

// mockStrategy answers every question with a fixed decision.
type mockStrategy struct {
	roll     DiceRoll
	purchase Purchase
	exchange Exchange
	give     Give

	exchanges int
	gives     int
}

func (m *mockStrategy) DecideDiceRoll(g *Game) DiceRoll { return m.roll }
func (m *mockStrategy) DecidePurchase(g *Game) Purchase { return m.purchase }

func (m *mockStrategy) DecideExchange(g *Game) Exchange {
	m.exchanges++
	return m.exchange
}

func (m *mockStrategy) DecideGive(g *Game) Give {
	m.gives++
	return m.give
}
