package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// faceUp replaces the piles so exactly the given tags are for sale.
func faceUp(g *Game, cards []Card, landmarks []Landmark) {
	var low, high []Card
	for _, c := range cards {
		if IsLow(c.Def()) {
			low = append(low, c)
		} else {
			high = append(high, c)
		}
	}
	g.LowCards = NewPile(low)
	g.HighCards = NewPile(high)
	g.Landmarks = NewPile(landmarks)
}

func TestBuyCard(t *testing.T) {
	t.Run("paying and refilling", func(t *testing.T) {
		g := newTestGame(t, 2)
		g.Turn = 4 // round 2
		c := g.HighCards.Market().Tags()[0]
		g.Current().Coins = 10

		require.NoError(t, g.BuyCard(c))

		require.Equal(t, 10-c.Def().Cost, g.Current().Coins)
		require.Equal(t, []OwnedCard{{Card: c, Round: 2}}, g.Current().Cards)
		require.Equal(t, 5, g.HighCards.Market().Len(), "Market should refill")
	})

	t.Run("not face up", func(t *testing.T) {
		g := newTestGame(t, 2)
		faceUp(g, []Card{Bakery}, nil)

		require.ErrorIs(t, g.BuyCard(Mine), ErrInvalidDecision)
		require.Equal(t, uint(5), g.Current().Coins)
	})

	t.Run("too expensive", func(t *testing.T) {
		g := newTestGame(t, 2)
		faceUp(g, []Card{Mine}, nil)
		g.Current().Coins = 3

		require.ErrorIs(t, g.BuyCard(Mine), ErrInvalidDecision)
		require.Empty(t, g.Current().Cards)
		require.True(t, g.HighCards.Market().Contains(Mine))
	})

	t.Run("unknown card", func(t *testing.T) {
		g := newTestGame(t, 2)
		g.Current().Coins = 100

		for _, c := range []Card{Card(99), Card(-3), numCards} {
			require.ErrorIs(t, g.BuyCard(c), ErrInvalidDecision)
		}
		require.Empty(t, g.Current().Cards)
		require.Equal(t, uint(100), g.Current().Coins)
	})
}

func TestBuyLandmark(t *testing.T) {
	t.Run("immediate fires at once", func(t *testing.T) {
		g := newTestGame(t, 3)
		faceUp(g, nil, []Landmark{FrenchRestaurant})
		setCoins(g, 10, 5, 1)

		require.NoError(t, g.BuyLandmark(FrenchRestaurant))

		require.Equal(t, uint(0+2+1), g.Players[0].Coins)
		require.Equal(t, uint(3), g.Players[1].Coins)
		require.Equal(t, uint(0), g.Players[2].Coins)
		require.Empty(t, g.ActiveLandmarks(), "Immediate landmarks are not cached")
	})

	t.Run("infinite joins the cache", func(t *testing.T) {
		g := newTestGame(t, 2)
		faceUp(g, nil, []Landmark{Temple, Airport})
		g.Current().Coins = 30

		require.NoError(t, g.BuyLandmark(Airport))
		require.NoError(t, g.BuyLandmark(Temple))

		require.Equal(t, []Landmark{Airport, Temple}, g.ActiveLandmarks())
		require.Equal(t, uint(30-12-16), g.Current().Coins, "Second landmark costs the next tier")
	})

	t.Run("radio tower", func(t *testing.T) {
		g := newTestGame(t, 2)
		faceUp(g, nil, []Landmark{RadioTower})
		g.Current().Coins = 12

		require.NoError(t, g.BuyLandmark(RadioTower))
		g.AdvanceTurn()

		require.Equal(t, 0, g.CurrentPlayer)
	})

	t.Run("not face up", func(t *testing.T) {
		g := newTestGame(t, 2)
		faceUp(g, nil, []Landmark{Temple})
		g.Current().Coins = 50

		require.ErrorIs(t, g.BuyLandmark(Park), ErrInvalidDecision)
	})

	t.Run("buy dispatch", func(t *testing.T) {
		g := newTestGame(t, 2)
		faceUp(g, []Card{Bakery}, []Landmark{Temple})

		bought, err := g.Buy(Purchase{})
		require.NoError(t, err)
		require.False(t, bought)

		bought, err = g.Buy(PurchaseCard(Bakery))
		require.NoError(t, err)
		require.True(t, bought)

		bought, err = g.Buy(PurchaseLandmark(Temple))
		require.ErrorIs(t, err, ErrInvalidDecision)
		require.False(t, bought)
	})
}

func TestLandmarkCost(t *testing.T) {
	t.Run("loan office needs the sole landmark-less player", func(t *testing.T) {
		g := newTestGame(t, 3)

		_, ok := g.LandmarkCost(0, LoanOffice)
		require.False(t, ok, "Nobody has a landmark yet")

		build(g, 1, Airport)
		build(g, 2, Temple)
		cost, ok := g.LandmarkCost(0, LoanOffice)
		require.True(t, ok)
		require.Equal(t, uint(10), cost)

		_, ok = g.LandmarkCost(1, LoanOffice)
		require.False(t, ok, "Players with a landmark may not build it")
	})

	t.Run("loan office discount", func(t *testing.T) {
		g := newTestGame(t, 2)
		build(g, 0, LoanOffice)

		cost, ok := g.LandmarkCost(0, Museum)
		require.True(t, ok)
		require.Equal(t, uint(16-2), cost)
	})

	t.Run("observatory discounts the launch pad only", func(t *testing.T) {
		g := newTestGame(t, 2)
		build(g, 0, Observatory)

		cost, _ := g.LandmarkCost(0, LaunchPad)
		require.Equal(t, uint(38-5), cost)
		cost, _ = g.LandmarkCost(0, Museum)
		require.Equal(t, uint(16), cost)
	})

	t.Run("owned or out of tiers", func(t *testing.T) {
		g := newTestGame(t, 2)
		build(g, 0, Airport, Temple, Forge)

		_, ok := g.LandmarkCost(0, Airport)
		require.False(t, ok)
		_, ok = g.LandmarkCost(0, Park)
		require.False(t, ok)
	})
}

func TestAffordable(t *testing.T) {
	g := newTestGame(t, 2)
	faceUp(g, []Card{Mine, Stadium, Bakery, Forest}, []Landmark{Park, FrenchRestaurant})
	g.Current().Coins = 10

	require.Equal(t, []Card{Forest, Bakery, Stadium, Mine}, g.AffordableCards(), "Low market first, each in reveal order")
	require.Equal(t, []Landmark{FrenchRestaurant}, g.AffordableLandmarks())

	g.Current().Coins = 2
	require.Equal(t, []Card{Bakery}, g.AffordableCards())
	require.Empty(t, g.AffordableLandmarks())
}

func TestActivationProbability(t *testing.T) {
	require.InDelta(t, 0.5*2.0/6+0.5*1.0/36, ActivationProbability(WheatField), 1e-9)
	require.InDelta(t, 0.5*3.0/36, ActivationProbability(Mine), 1e-9)
	require.InDelta(t, 0.5*1.0/6, ActivationProbability(SushiBar), 1e-9)
}

func TestExpectedGain(t *testing.T) {
	g := newTestGame(t, 4)

	require.Greater(t, g.ExpectedGain(Mine), 0.0)
	require.Equal(t, 0.0, g.ExpectedGain(BusinessCenter))
	require.Equal(t, 0.0, g.ExpectedGain(FlowerShop), "No Flower cards to pay for")

	giveCards(g, 0, FlowerGarden)
	require.Greater(t, g.ExpectedGain(FlowerShop), 0.0)
}
