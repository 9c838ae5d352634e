package game

import (
	"fmt"
)

// There can be at most 10 cards available for purchase, 5 per card market.
const maxAffordableCards = 10

// LandmarkCost is what player would pay for l right now, after discounts.
// It reports false when player may not build l at all: already owned, no
// price tier for their landmark count, or Loan Office while someone else
// also has no landmark.
func (g *Game) LandmarkCost(player int, l Landmark) (uint, bool) {
	p := g.Players[player]
	if p.Owns(l) {
		return 0, false
	}
	if l == LoanOffice && !g.soleWithoutLandmark(player) {
		return 0, false
	}
	base, ok := l.Def().BaseCost(len(p.Landmarks))
	if !ok {
		return 0, false
	}
	reduction := g.CostReduction(player, l)
	if reduction >= base {
		return 0, true
	}
	return base - reduction, true
}

func (g *Game) soleWithoutLandmark(player int) bool {
	for i, p := range g.Players {
		if (i == player) != (len(p.Landmarks) == 0) {
			return false
		}
	}
	return true
}

func (g *Game) CanAffordCard(player int, c Card) bool {
	return g.Players[player].Coins >= c.Def().Cost
}

func (g *Game) CanAffordLandmark(player int, l Landmark) bool {
	cost, ok := g.LandmarkCost(player, l)
	return ok && g.Players[player].Coins >= cost
}

// AffordableCards lists the face-up cards the current player can pay for,
// low market first, each in reveal order.
func (g *Game) AffordableCards() []Card {
	cards := make([]Card, 0, maxAffordableCards)
	for _, pile := range []*Pile[Card]{g.LowCards, g.HighCards} {
		for _, c := range pile.Market().Tags() {
			if g.CanAffordCard(g.CurrentPlayer, c) {
				cards = append(cards, c)
			}
		}
	}
	return cards
}

// AffordableLandmarks lists the face-up landmarks the current player can
// build, in reveal order.
func (g *Game) AffordableLandmarks() []Landmark {
	var landmarks []Landmark
	for _, l := range g.Landmarks.Market().Tags() {
		if g.CanAffordLandmark(g.CurrentPlayer, l) {
			landmarks = append(landmarks, l)
		}
	}
	return landmarks
}

func (g *Game) cardPile(c Card) *Pile[Card] {
	if IsLow(c.Def()) {
		return g.LowCards
	}
	return g.HighCards
}

// BuyCard moves a face-up copy of c into the current player's city.
func (g *Game) BuyCard(c Card) error {
	if !c.inCatalog() {
		return fmt.Errorf("%w: card %d is not in the catalog", ErrInvalidDecision, int(c))
	}
	pile := g.cardPile(c)
	if !pile.Market().Contains(c) {
		return fmt.Errorf("%w: %s is not face up", ErrInvalidDecision, c)
	}
	if !g.CanAffordCard(g.CurrentPlayer, c) {
		return fmt.Errorf("%w: player %d cannot afford %s", ErrInvalidDecision, g.CurrentPlayer, c)
	}

	p := g.Current()
	p.Coins -= c.Def().Cost
	p.Cards = append(p.Cards, OwnedCard{Card: c, Round: g.Round()})
	pile.Take(c)
	return nil
}

// BuyLandmark builds l for the current player. An immediate landmark fires
// at once; an infinite one joins the active cache.
func (g *Game) BuyLandmark(l Landmark) error {
	if !g.Landmarks.Market().Contains(l) {
		return fmt.Errorf("%w: %s is not face up", ErrInvalidDecision, l)
	}
	cost, ok := g.LandmarkCost(g.CurrentPlayer, l)
	if !ok || g.Current().Coins < cost {
		return fmt.Errorf("%w: player %d cannot build %s", ErrInvalidDecision, g.CurrentPlayer, l)
	}

	p := g.Current()
	p.Coins -= cost
	p.Landmarks = append(p.Landmarks, OwnedLandmark{Landmark: l, Round: g.Round()})
	g.Landmarks.Take(l)

	if l.Def().Kind == Immediate {
		g.ActivateLandmark(l)
	} else {
		g.active = append(g.active, l)
	}
	return nil
}

// Buy applies a purchase decision and reports whether anything was bought.
func (g *Game) Buy(decision Purchase) (bool, error) {
	switch decision.Kind {
	case BuyCard:
		if err := g.BuyCard(decision.Card); err != nil {
			return false, err
		}
		return true, nil
	case BuyLandmark:
		if err := g.BuyLandmark(decision.Landmark); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, nil
	}
}
