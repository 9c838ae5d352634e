package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	mathrand "math/rand/v2"
	"slices"

	"machikoro/meta"

	"github.com/rs/zerolog"
)

// Game holds the whole state of one match.
type Game struct {
	rng *Rng

	Players       []*Player
	CurrentPlayer int
	Turn          int // completed turns, extra turns excluded

	LowCards  *Pile[Card]     // every activation <= 6
	HighCards *Pile[Card]     // every activation > 6
	Landmarks *Pile[Landmark] // one of each

	active    []Landmark // infinite landmarks bought by anyone, purchase order
	extraTurn bool
}

type Option func(g *Game)

// WithSeed makes deck order and dice reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = NewRng(seed)
	}
}

// New sets up a match for numPlayers: shuffles the three piles and primes
// their markets. Without WithSeed a seed is drawn from system entropy.
func New(numPlayers int, options ...Option) (*Game, error) {
	if numPlayers < meta.MIN_PLAYERS || numPlayers > meta.MAX_PLAYERS {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidPlayerCount, numPlayers, meta.MIN_PLAYERS, meta.MAX_PLAYERS)
	}

	g := &Game{}
	for _, option := range options {
		option(g)
	}
	if g.rng == nil {
		g.rng = NewRng(mathrand.Uint64())
	}

	low := BuildCardDeck(IsLow)
	high := BuildCardDeck(IsHigh)
	landmarks := AllLandmarks()
	Shuffle(g.rng, low)
	Shuffle(g.rng, high)
	Shuffle(g.rng, landmarks)

	g.LowCards = NewPile(low)
	g.HighCards = NewPile(high)
	g.Landmarks = NewPile(landmarks)

	g.Players = make([]*Player, numPlayers)
	for i := range g.Players {
		g.Players[i] = NewPlayer()
	}
	return g, nil
}

// Clone deep-copies g for a what-if playout. The copy draws from a fresh
// Rng seeded with seed, and its face-down decks are reshuffled with it, so
// hidden order is not carried over.
func (g *Game) Clone(seed uint64) *Game {
	cp := &Game{
		rng:           NewRng(seed),
		Players:       make([]*Player, len(g.Players)),
		CurrentPlayer: g.CurrentPlayer,
		Turn:          g.Turn,
		LowCards:      g.LowCards.clone(),
		HighCards:     g.HighCards.clone(),
		Landmarks:     g.Landmarks.clone(),
		active:        slices.Clone(g.active),
		extraTurn:     g.extraTurn,
	}
	for i, p := range g.Players {
		cp.Players[i] = p.Copy()
	}
	Shuffle(cp.rng, cp.LowCards.deck)
	Shuffle(cp.rng, cp.HighCards.deck)
	Shuffle(cp.rng, cp.Landmarks.deck)
	return cp
}

func (g *Game) Seed() uint64 {
	return g.rng.Seed()
}

// Round is the derived round number: turns divided by seats.
func (g *Game) Round() int {
	return g.Turn / len(g.Players)
}

func (g *Game) Current() *Player {
	return g.Players[g.CurrentPlayer]
}

// IsBuyOnlyTurn reports whether the current turn is one of the opening
// buy-only turns.
func (g *Game) IsBuyOnlyTurn() bool {
	return g.Round() < meta.BUY_ONLY_ROUNDS
}

// RollDice rolls one or two dice for the current player and records it.
func (g *Game) RollDice(decision DiceRoll) Roll {
	roll := Roll{First: g.rng.RollDie(), Round: g.Round()}
	if decision == RollTwo {
		roll.Second = g.rng.RollDie()
	}
	p := g.Current()
	p.Rolls = append(p.Rolls, roll)
	return roll
}

// TakeAnotherTurn makes the current player go again after this turn.
func (g *Game) TakeAnotherTurn() {
	g.extraTurn = true
}

// AdvanceTurn rotates to the next seat, unless an extra turn is pending, in
// which case the flag is consumed and the same player goes again.
func (g *Game) AdvanceTurn() {
	if g.extraTurn {
		g.extraTurn = false
		return
	}
	g.CurrentPlayer = (g.CurrentPlayer + 1) % len(g.Players)
	g.Turn++
}

// Winner returns the first seat owning the win landmark or enough landmarks.
func (g *Game) Winner() (int, bool) {
	for i, p := range g.Players {
		if len(p.Landmarks) >= meta.LANDMARKS_TO_WIN || p.Owns(WinLandmark) {
			return i, true
		}
	}
	return -1, false
}

// ActiveLandmarks returns the cache of infinite landmarks owned by anyone.
func (g *Game) ActiveLandmarks() []Landmark {
	out := make([]Landmark, len(g.active))
	copy(out, g.active)
	return out
}

// Activation is one card firing for its owner during income.
type Activation struct {
	Card  Card
	Owner int
}

// CollectActivations snapshots, in resolution order, every owned card that
// a roll summing to sum triggers: opponents' Red cards walking backward from
// the seat before the current player, everyone's Blue cards in seat order,
// then the current player's Green and Purple cards.
func (g *Game) CollectActivations(sum int) []Activation {
	var out []Activation
	collect := func(owner int, color Color) {
		for _, o := range g.Players[owner].Cards {
			def := o.Card.Def()
			if def.Color == color && def.Activates(sum) {
				out = append(out, Activation{Card: o.Card, Owner: owner})
			}
		}
	}

	n := len(g.Players)
	for step := 1; step < n; step++ {
		collect((g.CurrentPlayer-step+n)%n, Red)
	}
	for i := 0; i < n; i++ {
		collect(i, Blue)
	}
	collect(g.CurrentPlayer, Green)
	collect(g.CurrentPlayer, Purple)
	return out
}

// OwnedBy pairs a card with the seat that owns it.
type OwnedBy struct {
	Card  Card
	Owner int
}

// OpponentCards lists every card the current player's opponents own.
func (g *Game) OpponentCards() []OwnedBy {
	var out []OwnedBy
	for i, p := range g.Players {
		if i == g.CurrentPlayer {
			continue
		}
		for _, o := range p.Cards {
			out = append(out, OwnedBy{Card: o.Card, Owner: i})
		}
	}
	return out
}

func (g *Game) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(g.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(g.Turn))

	for _, p := range g.Players {
		binary.Write(hasher, binary.LittleEndian, uint64(p.Coins))
		for _, o := range p.Cards {
			binary.Write(hasher, binary.LittleEndian, int64(o.Card))
			binary.Write(hasher, binary.LittleEndian, int64(o.Round))
		}
		for _, o := range p.Landmarks {
			binary.Write(hasher, binary.LittleEndian, int64(o.Landmark))
			binary.Write(hasher, binary.LittleEndian, int64(o.Round))
		}
		binary.Write(hasher, binary.LittleEndian, int64(len(p.Rolls)))
	}

	for _, c := range g.LowCards.Market().Tags() {
		binary.Write(hasher, binary.LittleEndian, int64(c))
	}
	for _, c := range g.HighCards.Market().Tags() {
		binary.Write(hasher, binary.LittleEndian, int64(c))
	}
	for _, l := range g.Landmarks.Market().Tags() {
		binary.Write(hasher, binary.LittleEndian, int64(l))
	}

	return StateHash(hasher.Sum64())
}

func (g *Game) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("seed", g.Seed()).
		Int("current_player", g.CurrentPlayer).
		Int("turn", g.Turn).
		Int("round", g.Round()).
		Stringers("low_market", stringers(g.LowCards.Market().Tags())).
		Stringers("high_market", stringers(g.HighCards.Market().Tags())).
		Stringers("landmark_market", stringers(g.Landmarks.Market().Tags())).
		Int("low_deck", g.LowCards.DeckLen()).
		Int("high_deck", g.HighCards.DeckLen()).
		Int("landmark_deck", g.Landmarks.DeckLen())

	coins := make([]int, len(g.Players))
	for i, p := range g.Players {
		coins[i] = int(p.Coins)
	}
	e.Ints("coins", coins)
}

func stringers[T fmt.Stringer](items []T) []fmt.Stringer {
	out := make([]fmt.Stringer, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
