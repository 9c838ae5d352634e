package agent

import "machikoro/game"

// LandmarkRush builds the first affordable landmark and otherwise plays
// like Random.
type LandmarkRush struct {
	*Random
}

func NewLandmarkRush(seed uint64) *LandmarkRush {
	return &LandmarkRush{Random: NewRandom(seed)}
}

func (s *LandmarkRush) DecidePurchase(g *game.Game) game.Purchase {
	if landmarks := g.AffordableLandmarks(); len(landmarks) > 0 {
		return game.PurchaseLandmark(landmarks[0])
	}
	return s.Random.DecidePurchase(g)
}
