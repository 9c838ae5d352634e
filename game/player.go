package game

import (
	"machikoro/meta"
	"machikoro/utils"
)

// OwnedCard is a card in a player's city, stamped with the round it arrived.
type OwnedCard struct {
	Card  Card
	Round int
}

// OwnedLandmark is a built landmark, stamped with the round it was built.
type OwnedLandmark struct {
	Landmark Landmark
	Round    int
}

// Roll records one dice roll. Second is 0 when a single die was rolled.
type Roll struct {
	First  int
	Second int
	Round  int
}

func (r Roll) Sum() int {
	return r.First + r.Second
}

// Dice returns how many dice were rolled.
func (r Roll) Dice() int {
	if r.Second == 0 {
		return 1
	}
	return 2
}

func (r Roll) Doubles() bool {
	return r.Second != 0 && r.First == r.Second
}

// Player is one participant's ledger.
type Player struct {
	Coins     uint
	Cards     []OwnedCard
	Landmarks []OwnedLandmark
	Rolls     []Roll
}

func NewPlayer() *Player {
	return &Player{Coins: meta.STARTING_COINS}
}

func (p *Player) Copy() *Player {
	cp := &Player{
		Coins:     p.Coins,
		Cards:     make([]OwnedCard, len(p.Cards)),
		Landmarks: make([]OwnedLandmark, len(p.Landmarks)),
		Rolls:     make([]Roll, len(p.Rolls)),
	}
	copy(cp.Cards, p.Cards)
	copy(cp.Landmarks, p.Landmarks)
	copy(cp.Rolls, p.Rolls)
	return cp
}

func (p *Player) HasCard(c Card) bool {
	return p.cardIndex(c) >= 0
}

func (p *Player) Owns(l Landmark) bool {
	return utils.FindIndexFunc(p.Landmarks, func(o OwnedLandmark) bool { return o.Landmark == l }) >= 0
}

// CountCards counts owned cards whose definition matches pred.
func (p *Player) CountCards(pred func(CardDef) bool) uint {
	var n uint
	for _, o := range p.Cards {
		if pred(o.Card.Def()) {
			n++
		}
	}
	return n
}

func (p *Player) cardIndex(c Card) int {
	return utils.FindIndexFunc(p.Cards, func(o OwnedCard) bool { return o.Card == c })
}

// removeCard drops the first owned copy of c.
func (p *Player) removeCard(c Card) bool {
	i := p.cardIndex(c)
	if i < 0 {
		return false
	}
	p.Cards = append(p.Cards[:i], p.Cards[i+1:]...)
	return true
}

// pay removes up to amount coins and returns what was actually paid.
func (p *Player) pay(amount uint) uint {
	paid := min(amount, p.Coins)
	p.Coins -= paid
	return paid
}
