package agent

import (
	"slices"

	"machikoro/game"
)

// Best cards first.
var preferredCards = []game.Card{game.ShoppingDistrict, game.Vineyard, game.FlowerGarden}

// GreedyBestCard buys the best affordable card from a fixed ranking and
// otherwise plays like Random.
type GreedyBestCard struct {
	*Random
}

func NewGreedyBestCard(seed uint64) *GreedyBestCard {
	return &GreedyBestCard{Random: NewRandom(seed)}
}

func (s *GreedyBestCard) DecidePurchase(g *game.Game) game.Purchase {
	affordable := g.AffordableCards()
	for _, c := range preferredCards {
		if slices.Contains(affordable, c) {
			return game.PurchaseCard(c)
		}
	}
	return s.Random.DecidePurchase(g)
}
