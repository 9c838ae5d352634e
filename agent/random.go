package agent

import (
	"machikoro/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among everything it is allowed to do.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) DecideDiceRoll(g *game.Game) game.DiceRoll {
	if r.rng.Intn(2) == 0 {
		return game.RollOne
	}
	return game.RollTwo
}

// DecidePurchase gives every affordable card, every affordable landmark and
// buying nothing the same chance.
func (r *Random) DecidePurchase(g *game.Game) game.Purchase {
	options := []game.Purchase{{}}
	for _, c := range g.AffordableCards() {
		options = append(options, game.PurchaseCard(c))
	}
	for _, l := range g.AffordableLandmarks() {
		options = append(options, game.PurchaseLandmark(l))
	}
	return options[r.rng.Intn(len(options))]
}

// DecideExchange picks one of its own cards or nothing, then any opponent card.
func (r *Random) DecideExchange(g *game.Game) game.Exchange {
	own := g.Current().Cards
	theirs := g.OpponentCards()
	if len(own) == 0 || len(theirs) == 0 {
		return game.Exchange{}
	}

	i := r.rng.Intn(len(own) + 1)
	if i == len(own) {
		return game.Exchange{}
	}
	target := theirs[r.rng.Intn(len(theirs))]
	return game.ExchangeCards(own[i].Card, target.Owner, target.Card)
}

func (r *Random) DecideGive(g *game.Game) game.Give {
	own := g.Current().Cards
	if len(own) == 0 {
		return game.Give{}
	}
	return game.GiveCard(own[r.rng.Intn(len(own))].Card)
}
