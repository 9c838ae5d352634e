package agent

import "machikoro/game"

// ExpectedValue builds a landmark whenever it can, otherwise buys the card
// with the best expected income per round. With nothing worth buying it
// saves its coins.
type ExpectedValue struct {
	*Random
}

func NewExpectedValue(seed uint64) *ExpectedValue {
	return &ExpectedValue{Random: NewRandom(seed)}
}

// DecideDiceRoll rolls two dice once the player owns a card only two dice
// can trigger.
func (s *ExpectedValue) DecideDiceRoll(g *game.Game) game.DiceRoll {
	for _, o := range g.Current().Cards {
		if game.IsHigh(o.Card.Def()) {
			return game.RollTwo
		}
	}
	return game.RollOne
}

func (s *ExpectedValue) DecidePurchase(g *game.Game) game.Purchase {
	if landmarks := g.AffordableLandmarks(); len(landmarks) > 0 {
		return game.PurchaseLandmark(landmarks[0])
	}

	best, bestGain := game.Card(-1), 0.0
	for _, c := range g.AffordableCards() {
		if gain := g.ExpectedGain(c); gain > bestGain {
			best, bestGain = c, gain
		}
	}
	if best < 0 {
		return game.Purchase{}
	}
	return game.PurchaseCard(best)
}
