package agent

import (
	"fmt"
	"sort"

	"machikoro/game"
)

var registry = map[string]func(seed uint64) game.Strategy{
	"random":        func(seed uint64) game.Strategy { return NewRandom(seed) },
	"landmark-rush": func(seed uint64) game.Strategy { return NewLandmarkRush(seed) },
	"greedy":        func(seed uint64) game.Strategy { return NewGreedyBestCard(seed) },
	"expected":      func(seed uint64) game.Strategy { return NewExpectedValue(seed) },
	"montecarlo":    func(seed uint64) game.Strategy { return NewMonteCarlo(seed) },
}

// ByName builds a registered strategy seeded with seed.
func ByName(name string, seed uint64) (game.Strategy, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", name, Names())
	}
	return build(seed), nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func IsRegistered(name string) bool {
	_, ok := registry[name]
	return ok
}
