package experiments

import (
	"machikoro/config"

	"github.com/rs/zerolog/log"
)

// Throughput is how fast one worker count got through a batch.
type Throughput struct {
	Workers     int
	Games       int
	GamesPerSec float64
}

// RunThroughputExperiment replays the same batch at each worker count. The
// master seed is pinned so every run plays identical games.
func RunThroughputExperiment(cfg config.Config, workerCounts []int) ([]Throughput, error) {
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}

	log.Info().Msg("starting throughput experiment...")
	var results []Throughput
	for _, workers := range workerCounts {
		cfg.Workers = workers
		b, err := RunBatch(cfg)
		if err != nil {
			return nil, err
		}

		t := Throughput{Workers: workers, Games: cfg.Games}
		if secs := b.Duration.Seconds(); secs > 0 {
			t.GamesPerSec = float64(cfg.Games) / secs
		}
		results = append(results, t)
		log.Info().Msgf("%d workers: %.1f games/s", workers, t.GamesPerSec)
	}
	log.Info().Msg("completed throughput experiment")
	return results, nil
}
