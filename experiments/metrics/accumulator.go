package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"machikoro/engine"
	"machikoro/game"

	"github.com/google/uuid"
)

// RoundCutoffs buckets card presence by the round a card was acquired in:
// a card counts for cutoff r when it arrived before round r.
var RoundCutoffs = [3]int{5, 10, 15}

// GameRecord is one finished match of a batch.
type GameRecord struct {
	ID         uuid.UUID
	Index      int
	Seed       uint64
	Strategies []string // by seat
	Winner     int      // -1 without a winner
	Round      int
	Turns      int
	Duration   time.Duration
}

func (r GameRecord) WinnerStrategy() string {
	if r.Winner < 0 {
		return ""
	}
	return r.Strategies[r.Winner]
}

// cardCounts is one statistic, behind its own lock.
type cardCounts struct {
	mu     sync.Mutex
	counts map[game.Card]int
}

func (c *cardCounts) add(cards []game.Card) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[game.Card]int)
	}
	for _, card := range cards {
		c.counts[card]++
	}
}

func (c *cardCounts) get(card game.Card) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[card]
}

// Accumulator reduces results from concurrent workers. Games that hit the
// turn cap are counted but contribute no card statistics.
type Accumulator struct {
	games         atomic.Int64
	decided       atomic.Int64
	winningRounds atomic.Int64

	winnerTotals cardCounts
	winPresence  cardCounts
	lossPresence cardCounts
	winByRound   [len(RoundCutoffs)]cardCounts
	lossByRound  [len(RoundCutoffs)]cardCounts

	winsMu       sync.Mutex
	strategyWins map[string]int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{strategyWins: make(map[string]int)}
}

func (a *Accumulator) Add(record GameRecord, result engine.Result) {
	a.games.Add(1)
	if !result.HasWinner {
		return
	}
	a.decided.Add(1)
	a.winningRounds.Add(int64(result.Round))

	a.winsMu.Lock()
	a.strategyWins[record.WinnerStrategy()]++
	a.winsMu.Unlock()

	winner := result.WinningPlayer()
	a.winnerTotals.add(allCards(winner))
	a.winPresence.add(distinctCards(winner, -1))
	for i, cutoff := range RoundCutoffs {
		a.winByRound[i].add(distinctCards(winner, cutoff))
	}

	for seat, p := range result.Players {
		if seat == result.Winner {
			continue
		}
		a.lossPresence.add(distinctCards(p, -1))
		for i, cutoff := range RoundCutoffs {
			a.lossByRound[i].add(distinctCards(p, cutoff))
		}
	}
}

func allCards(p *game.Player) []game.Card {
	cards := make([]game.Card, len(p.Cards))
	for i, o := range p.Cards {
		cards[i] = o.Card
	}
	return cards
}

// distinctCards lists each card p owns once, keeping only cards acquired
// before cutoff unless cutoff is negative.
func distinctCards(p *game.Player, cutoff int) []game.Card {
	seen := make(map[game.Card]bool)
	var cards []game.Card
	for _, o := range p.Cards {
		if cutoff >= 0 && o.Round >= cutoff {
			continue
		}
		if !seen[o.Card] {
			seen[o.Card] = true
			cards = append(cards, o.Card)
		}
	}
	return cards
}

// CardStats is the finalized view of one card.
type CardStats struct {
	Card               game.Card
	WinnerTotal        int     // copies owned by winners, summed over games
	PresentWin         float64 // share of winners owning at least one
	PresentLoss        float64 // share of losers owning at least one
	PresentWinByRound  [len(RoundCutoffs)]float64
	PresentLossByRound [len(RoundCutoffs)]float64
}

type Summary struct {
	Games           int
	Decided         int
	AvgWinningRound float64
	StrategyWins    map[string]int
	Cards           []CardStats // catalog order
}

// Finalize turns the counts into probabilities for a batch played at
// numPlayers seats.
func (a *Accumulator) Finalize(numPlayers int) Summary {
	decided := int(a.decided.Load())
	s := Summary{
		Games:        int(a.games.Load()),
		Decided:      decided,
		StrategyWins: make(map[string]int),
	}

	a.winsMu.Lock()
	for name, wins := range a.strategyWins {
		s.StrategyWins[name] = wins
	}
	a.winsMu.Unlock()

	if decided > 0 {
		s.AvgWinningRound = float64(a.winningRounds.Load()) / float64(decided)
	}
	winners := float64(decided)
	losers := float64(decided * (numPlayers - 1))
	ratio := func(n int, d float64) float64 {
		if d == 0 {
			return 0
		}
		return float64(n) / d
	}

	for _, c := range game.AllCards() {
		stats := CardStats{
			Card:        c,
			WinnerTotal: a.winnerTotals.get(c),
			PresentWin:  ratio(a.winPresence.get(c), winners),
			PresentLoss: ratio(a.lossPresence.get(c), losers),
		}
		for i := range RoundCutoffs {
			stats.PresentWinByRound[i] = ratio(a.winByRound[i].get(c), winners)
			stats.PresentLossByRound[i] = ratio(a.lossByRound[i].get(c), losers)
		}
		s.Cards = append(s.Cards, stats)
	}
	return s
}
