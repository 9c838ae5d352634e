package agent

import (
	"sync"

	"machikoro/engine"
	"machikoro/game"

	"github.com/rs/zerolog"
)

const (
	defaultPlayouts = 16
	defaultCutoff   = 200 // turns per playout
)

type MonteCarloOption func(m *MonteCarlo)

// WithPlayouts sets how many playouts each purchase option gets.
func WithPlayouts(playouts int) MonteCarloOption {
	return func(m *MonteCarlo) {
		if playouts > 0 {
			m.playouts = playouts
		}
	}
}

func WithGoroutines(goroutines int) MonteCarloOption {
	return func(m *MonteCarlo) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithCutoff ends a playout after depth turns and scores it with evaluate.
func WithCutoff(depth int) MonteCarloOption {
	return func(m *MonteCarlo) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) MonteCarloOption {
	return func(m *MonteCarlo) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// MonteCarlo buys whatever wins most often when the rest of the game is
// played out at random. Other decisions are left to Random.
type MonteCarlo struct {
	*Random
	playouts   int
	goroutines int
	cutoff     int
	evaluate   game.Evaluate
}

func NewMonteCarlo(seed uint64, options ...MonteCarloOption) *MonteCarlo {
	m := &MonteCarlo{
		Random:     NewRandom(seed),
		playouts:   defaultPlayouts,
		goroutines: 1,
		cutoff:     defaultCutoff,
		evaluate:   game.EvaluateProgress,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

type playout struct {
	index  int
	option int
	seed   uint64
}

func (m *MonteCarlo) DecidePurchase(g *game.Game) game.Purchase {
	var options []game.Purchase
	for _, c := range g.AffordableCards() {
		options = append(options, game.PurchaseCard(c))
	}
	for _, l := range g.AffordableLandmarks() {
		options = append(options, game.PurchaseLandmark(l))
	}
	options = append(options, game.Purchase{})
	if len(options) == 1 {
		return options[0]
	}

	// Seeds are drawn up front and scores summed in playout order, so the
	// choice does not depend on scheduling.
	playouts := make([]playout, 0, len(options)*m.playouts)
	for i := range options {
		for j := 0; j < m.playouts; j++ {
			playouts = append(playouts, playout{index: len(playouts), option: i, seed: m.rng.Uint64()})
		}
	}
	task := make(chan playout, len(playouts))
	for _, p := range playouts {
		task <- p
	}
	close(task)

	results := make([]float64, len(playouts))
	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for p := range task {
				results[p.index] = m.rollout(g, options[p.option], p.seed)
			}
		}()
	}
	wg.Wait()

	scores := make([]float64, len(options))
	for _, p := range playouts {
		scores[p.option] += results[p.index]
	}

	best := 0
	for i, score := range scores {
		if score > scores[best] {
			best = i
		}
	}
	return options[best]
}

// rollout plays decision on a copy of g, then random moves for everyone
// until the game ends or the cutoff is reached.
func (m *MonteCarlo) rollout(g *game.Game, decision game.Purchase, seed uint64) float64 {
	me := g.CurrentPlayer
	clone := g.Clone(seed)

	strategies := make([]game.Strategy, len(clone.Players))
	for i := range strategies {
		strategies[i] = NewRandom(seed + uint64(i) + 1)
	}
	e, err := engine.Resume(clone, strategies, engine.WithMaxTurns(m.cutoff), engine.WithLogger(zerolog.Nop()))
	if err != nil {
		panic(err)
	}

	e.FinishTurn(decision)
	result := e.Run()
	if result.HasWinner {
		if result.Winner == me {
			return 1
		}
		return 0
	}
	return m.evaluate(clone, me)
}
