package game

import "fmt"

// DiceRoll is a strategy's choice of how many dice to roll.
type DiceRoll int

const (
	RollOne DiceRoll = iota + 1
	RollTwo
)

// PurchaseKind represents what a player buys at the end of a turn.
type PurchaseKind int

const (
	BuyNothing PurchaseKind = iota
	BuyCard
	BuyLandmark
)

// Purchase is a strategy's buy decision. Card or Landmark is set according
// to Kind; the zero value buys nothing.
type Purchase struct {
	Kind     PurchaseKind
	Card     Card
	Landmark Landmark
}

func PurchaseCard(c Card) Purchase {
	return Purchase{Kind: BuyCard, Card: c}
}

func PurchaseLandmark(l Landmark) Purchase {
	return Purchase{Kind: BuyLandmark, Landmark: l}
}

func (p Purchase) String() string {
	switch p.Kind {
	case BuyCard:
		return fmt.Sprintf("buy card %s", p.Card)
	case BuyLandmark:
		return fmt.Sprintf("buy landmark %s", p.Landmark)
	default:
		return "buy nothing"
	}
}

// Exchange swaps one of the active player's cards for an opponent's card.
// The zero value is no exchange.
type Exchange struct {
	Swap         bool
	Own          Card
	Opponent     int
	OpponentCard Card
}

func ExchangeCards(own Card, opponent int, opponentCard Card) Exchange {
	return Exchange{Swap: true, Own: own, Opponent: opponent, OpponentCard: opponentCard}
}

func (e Exchange) String() string {
	if !e.Swap {
		return "no exchange"
	}
	return fmt.Sprintf("exchange %s for player %d's %s", e.Own, e.Opponent, e.OpponentCard)
}

// Give hands one of the active player's cards to the player on the right.
// The zero value gives nothing.
type Give struct {
	Hand bool
	Card Card
}

func GiveCard(c Card) Give {
	return Give{Hand: true, Card: c}
}

func (g Give) String() string {
	if !g.Hand {
		return "no give"
	}
	return fmt.Sprintf("give %s", g.Card)
}
