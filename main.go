package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"machikoro/config"
	"machikoro/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// overrides collects repeated -set flags.
type overrides []string

func (o *overrides) String() string {
	return strings.Join(*o, ",")
}

func (o *overrides) Set(value string) error {
	*o = append(*o, value)
	return nil
}

func main() {
	var sets overrides
	configPath := flag.String("config", "", "YAML batch config")
	flag.Var(&sets, "set", "config override key=value, repeatable")
	single := flag.Bool("game", false, "play one game with debug logging instead of a batch")
	throughput := flag.String("throughput", "", "comma separated worker counts to benchmark")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadConfig(*configPath, sets)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	switch {
	case *single:
		playGame(cfg)
	case *throughput != "":
		runThroughput(cfg, *throughput)
	default:
		runBatch(cfg)
	}
}

func loadConfig(path string, sets []string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.Apply(sets); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func runBatch(cfg config.Config) {
	b, err := experiments.RunBatch(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}
	dir, err := b.Write(cfg.OutDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store batch")
	}
	log.Info().Msgf("results written to %s", dir)

	for name, wins := range b.Summary.StrategyWins {
		log.Info().Msgf("%s won %d of %d games", name, wins, b.Summary.Games)
	}
}

func playGame(cfg config.Config) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	strategies := make([]string, cfg.Players)
	for seat := range strategies {
		strategies[seat] = cfg.StrategyFor(seat)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}

	result, err := experiments.PlayGame(strategies, seed, cfg.MaxTurns)
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	if result.HasWinner {
		log.Info().Msgf("player %d (%s) won in round %d after %d turns", result.Winner, strategies[result.Winner], result.Round, result.Turns)
	} else {
		log.Info().Msgf("no winner after %d turns", result.Turns)
	}
	for seat, p := range result.Players {
		log.Info().Msgf("player %d: %d coins, %d cards, %d landmarks", seat, p.Coins, len(p.Cards), len(p.Landmarks))
	}
}

func runThroughput(cfg config.Config, counts string) {
	var workers []int
	for _, field := range strings.Split(counts, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n <= 0 {
			log.Fatal().Msgf("bad worker count %q", field)
		}
		workers = append(workers, n)
	}

	if _, err := experiments.RunThroughputExperiment(cfg, workers); err != nil {
		log.Fatal().Err(err).Msg("throughput experiment failed")
	}
}
