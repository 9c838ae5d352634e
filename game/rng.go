package game

import (
	"golang.org/x/exp/rand"
)

// Rng is the game's seeded randomness: deck shuffles and dice.
type Rng struct {
	seed uint64
	r    *rand.Rand
}

func NewRng(seed uint64) *Rng {
	return &Rng{seed: seed, r: rand.New(rand.NewSource(seed))}
}

func (r *Rng) Seed() uint64 {
	return r.seed
}

// RollDie returns a value in 1..6.
func (r *Rng) RollDie() int {
	return r.r.Intn(6) + 1
}

func Shuffle[T any](r *Rng, items []T) {
	r.r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
