package game

import (
	"fmt"
)

// Coin movement shared by card and landmark rules. Every transfer between
// players is capped at the payer's balance; the shortfall is lost.

func (g *Game) GetCoinsFromBank(owner int, amount uint) {
	g.Players[owner].Coins += amount
}

func (g *Game) moveCoins(from, to int, amount uint) uint {
	moved := g.Players[from].pay(amount)
	g.Players[to].Coins += moved
	return moved
}

// TakeCoinsFromActivePlayer moves up to amount from the rolling player to
// owner. Does nothing when owner is the rolling player.
func (g *Game) TakeCoinsFromActivePlayer(owner int, amount uint) {
	if owner == g.CurrentPlayer {
		return
	}
	g.moveCoins(g.CurrentPlayer, owner, amount)
}

func (g *Game) TakeCoinsFromEachOpponent(owner int, amount uint) {
	for i := range g.Players {
		if i != owner {
			g.moveCoins(i, owner, amount)
		}
	}
}

// TakeHalfFromRichOpponents takes half, rounded down, from every opponent
// holding more than 10 coins.
func (g *Game) TakeHalfFromRichOpponents(owner int) {
	for i, p := range g.Players {
		if i != owner && p.Coins > 10 {
			g.moveCoins(i, owner, p.Coins/2)
		}
	}
}

// GetCoinsForEachCard pays owner amount per owned card matching pred.
func (g *Game) GetCoinsForEachCard(owner int, amount uint, pred func(CardDef) bool) {
	g.GetCoinsFromBank(owner, amount*g.Players[owner].CountCards(pred))
}

// TakeCoinsForEachCard takes amount from each opponent per card of theirs
// matching pred.
func (g *Game) TakeCoinsForEachCard(owner int, amount uint, pred func(CardDef) bool) {
	for i, p := range g.Players {
		if i != owner {
			g.moveCoins(i, owner, amount*p.CountCards(pred))
		}
	}
}

// TakeCoinsForEachLandmark takes amount from each opponent per landmark
// they own.
func (g *Game) TakeCoinsForEachLandmark(owner int, amount uint) {
	for i, p := range g.Players {
		if i != owner {
			g.moveCoins(i, owner, amount*uint(len(p.Landmarks)))
		}
	}
}

// RedistributeCoinsEvenly sets every balance to the total divided by the
// number of players, rounded up; the bank covers the difference.
func (g *Game) RedistributeCoinsEvenly() {
	var total uint
	for _, p := range g.Players {
		total += p.Coins
	}
	n := uint(len(g.Players))
	share := (total + n - 1) / n
	for _, p := range g.Players {
		p.Coins = share
	}
}

// moveCard hands the first copy of c from one player to another, stamping
// it with the current round.
func (g *Game) moveCard(from, to int, c Card) {
	g.Players[from].removeCard(c)
	g.Players[to].Cards = append(g.Players[to].Cards, OwnedCard{Card: c, Round: g.Round()})
}

// ExchangeEstablishment swaps own (held by the current player) with
// opponentCard (held by opponent). Both cards are re-dated to this round.
func (g *Game) ExchangeEstablishment(own Card, opponent int, opponentCard Card) error {
	if opponent < 0 || opponent >= len(g.Players) || opponent == g.CurrentPlayer {
		return fmt.Errorf("%w: no opponent at seat %d", ErrInvalidDecision, opponent)
	}
	if !g.Current().HasCard(own) {
		return fmt.Errorf("%w: player %d does not own %s", ErrInvalidDecision, g.CurrentPlayer, own)
	}
	if !g.Players[opponent].HasCard(opponentCard) {
		return fmt.Errorf("%w: player %d does not own %s", ErrInvalidDecision, opponent, opponentCard)
	}
	g.moveCard(g.CurrentPlayer, opponent, own)
	g.moveCard(opponent, g.CurrentPlayer, opponentCard)
	return nil
}

// RightOf returns the seat to the right of player, the one who plays before.
func (g *Game) RightOf(player int) int {
	n := len(g.Players)
	return (player - 1 + n) % n
}

// GiveEstablishment hands one of the current player's cards to the player
// on their right.
func (g *Game) GiveEstablishment(c Card) error {
	if !g.Current().HasCard(c) {
		return fmt.Errorf("%w: player %d does not own %s", ErrInvalidDecision, g.CurrentPlayer, c)
	}
	g.moveCard(g.CurrentPlayer, g.RightOf(g.CurrentPlayer), c)
	return nil
}

// ActivateCard applies a card's effect for owner. The exchange effect asks
// s, the owner's strategy, which cards to swap; an invalid answer changes
// nothing and is returned.
func (g *Game) ActivateCard(c Card, owner int, s Strategy) error {
	def := c.Def()
	eff := def.Effect
	amount := eff.Amount + g.EarningsBonus(owner, def.Category)

	switch eff.Kind {
	case GetCoinsFromBank:
		g.GetCoinsFromBank(owner, amount)
	case TakeCoinsFromActivePlayer:
		g.TakeCoinsFromActivePlayer(owner, amount)
	case TakeCoinsFromEachOpponent:
		g.TakeCoinsFromEachOpponent(owner, amount)
	case TakeCoinsFromEachOpponentWithMoreThan10Coins:
		g.TakeHalfFromRichOpponents(owner)
	case GetCoinsFromBankForEachCardCategory:
		g.GetCoinsForEachCard(owner, amount, func(d CardDef) bool { return d.Category == eff.Category })
	case GetCoinsFromBankForEachCardColor:
		g.GetCoinsForEachCard(owner, amount, func(d CardDef) bool { return d.Color == eff.Color })
	case ExchangeEstablishment:
		decision := s.DecideExchange(g)
		if !decision.Swap {
			return nil
		}
		return g.ExchangeEstablishment(decision.Own, decision.Opponent, decision.OpponentCard)
	default:
		panic(fmt.Sprintf("unknown effect kind %d for %s", eff.Kind, c))
	}
	return nil
}
