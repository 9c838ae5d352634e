package experiments

import (
	"fmt"
	mathrand "math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"machikoro/agent"
	"machikoro/config"
	"machikoro/engine"
	"machikoro/experiments/metrics"
	"machikoro/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Batch is the outcome of many independent games.
type Batch struct {
	ID       uuid.UUID
	Seed     uint64
	Players  int
	Records  []metrics.GameRecord // by game index
	Summary  metrics.Summary
	Duration time.Duration
}

// plan fixes everything random about one game before any game runs, so a
// batch replays identically whatever the worker count.
type plan struct {
	index         int
	seed          uint64
	strategies    []string
	strategySeeds []uint64
}

func planGames(cfg config.Config, master uint64) []plan {
	r := rand.New(rand.NewSource(master))
	plans := make([]plan, cfg.Games)
	for i := range plans {
		p := plan{
			index:         i,
			seed:          r.Uint64(),
			strategies:    make([]string, cfg.Players),
			strategySeeds: make([]uint64, cfg.Players),
		}
		for seat := range p.strategies {
			p.strategies[seat] = cfg.StrategyFor(seat)
			p.strategySeeds[seat] = r.Uint64()
		}
		plans[i] = p
	}
	return plans
}

// RunBatch plays cfg.Games games on cfg.Workers goroutines. Each game is
// owned by a single worker; results meet only in the accumulator.
func RunBatch(cfg config.Config) (*Batch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	master := cfg.Seed
	if master == 0 {
		master = mathrand.Uint64()
	}

	b := &Batch{
		ID:      uuid.New(),
		Seed:    master,
		Players: cfg.Players,
		Records: make([]metrics.GameRecord, cfg.Games),
	}
	log.Info().Msgf("starting batch %s: %d games, %d players, %d workers, seed %d", b.ID, cfg.Games, cfg.Players, cfg.Workers, master)

	plans := planGames(cfg, master)
	task := make(chan plan, len(plans))
	for _, p := range plans {
		task <- p
	}
	close(task)

	acc := metrics.NewAccumulator()
	errs := make([]error, len(plans))
	start := time.Now()

	var done atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for p := range task {
				record, result, err := runGame(p, cfg.MaxTurns)
				if err != nil {
					errs[p.index] = err
					continue
				}
				b.Records[p.index] = record
				acc.Add(record, result)
				if n := int(done.Add(1)); n%progressEvery(cfg.Games) == 0 {
					log.Info().Msgf("completed %d of %d games", n, cfg.Games)
				}
			}
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}
	}

	b.Duration = time.Since(start)
	b.Summary = acc.Finalize(cfg.Players)
	log.Info().Msgf("completed batch %s in %s: %d of %d games decided, average winning round %.2f",
		b.ID, b.Duration, b.Summary.Decided, b.Summary.Games, b.Summary.AvgWinningRound)
	return b, nil
}

func progressEvery(games int) int {
	return max(1, games/10)
}

func runGame(p plan, maxTurns int) (metrics.GameRecord, engine.Result, error) {
	strategies := make([]game.Strategy, len(p.strategies))
	for seat, name := range p.strategies {
		s, err := agent.ByName(name, p.strategySeeds[seat])
		if err != nil {
			return metrics.GameRecord{}, engine.Result{}, err
		}
		strategies[seat] = s
	}

	e, err := engine.New(strategies, engine.WithSeed(p.seed), engine.WithMaxTurns(maxTurns))
	if err != nil {
		return metrics.GameRecord{}, engine.Result{}, err
	}

	start := time.Now()
	result := e.Run()
	record := metrics.GameRecord{
		ID:         uuid.New(),
		Index:      p.index,
		Seed:       p.seed,
		Strategies: p.strategies,
		Winner:     result.Winner,
		Round:      result.Round,
		Turns:      result.Turns,
		Duration:   time.Since(start),
	}
	return record, result, nil
}

// PlayGame runs one game with strategies seeded from seed. Intended for
// inspecting a single match with debug logging on.
func PlayGame(strategies []string, seed uint64, maxTurns int) (engine.Result, error) {
	cfg := config.Config{Games: 1, Players: len(strategies), Strategies: strategies}
	plans := planGames(cfg, seed)
	_, result, err := runGame(plans[0], maxTurns)
	return result, err
}

// Write stores the batch's records and statistics under outDir.
func (b *Batch) Write(outDir string) (string, error) {
	writer, err := metrics.NewWriter(outDir, b.ID)
	if err != nil {
		return "", fmt.Errorf("failed to create batch writer: %w", err)
	}

	if err := writer.WriteGameRecords(b.Records); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteCardStats(b.Summary); err != nil {
		return "", fmt.Errorf("failed to write card statistics: %w", err)
	}
	log.Info().Msg("stored card statistics")

	if err := writer.WriteStrategyWins(b.Summary); err != nil {
		return "", fmt.Errorf("failed to write strategy wins: %w", err)
	}
	log.Info().Msg("stored strategy wins")

	return writer.Dir(), nil
}
