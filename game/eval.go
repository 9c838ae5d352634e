package game

import "math"

// Chance of each sum with two dice, indexed by sum-2.
var twoDiceOdds = [11]float64{
	1.0 / 36, 2.0 / 36, 3.0 / 36, 4.0 / 36, 5.0 / 36,
	6.0 / 36,
	5.0 / 36, 4.0 / 36, 3.0 / 36, 2.0 / 36, 1.0 / 36,
}

// oneDieActivation is the chance a single die triggers the card.
func oneDieActivation(c Card) float64 {
	hits := 0
	for _, a := range c.Def().Activation {
		if a >= 1 && a <= 6 {
			hits++
		}
	}
	return float64(hits) / 6
}

// twoDiceActivation is the chance a two dice roll triggers the card.
func twoDiceActivation(c Card) float64 {
	p := 0.0
	for _, a := range c.Def().Activation {
		if a >= 2 && a <= 12 {
			p += twoDiceOdds[a-2]
		}
	}
	return p
}

// ActivationProbability assumes one or two dice are equally likely.
func ActivationProbability(c Card) float64 {
	return 0.5*oneDieActivation(c) + 0.5*twoDiceActivation(c)
}

// ExpectedGain estimates the coins per round the current player would earn
// by owning one more c. Exchange effects are valued at zero.
func (g *Game) ExpectedGain(c Card) float64 {
	def := c.Def()
	eff := def.Effect
	p := ActivationProbability(c)
	opponents := float64(len(g.Players) - 1)
	amount := float64(eff.Amount + g.EarningsBonus(g.CurrentPlayer, def.Category))

	var gain float64
	switch eff.Kind {
	case TakeCoinsFromActivePlayer, TakeCoinsFromEachOpponent:
		gain = opponents * p * amount
	case TakeCoinsFromEachOpponentWithMoreThan10Coins:
		var rich uint
		for i, pl := range g.Players {
			if i != g.CurrentPlayer && pl.Coins > 10 {
				rich += pl.Coins / 2
			}
		}
		gain = float64(rich) * p
	case GetCoinsFromBank:
		gain = float64(len(g.Players)) * p * amount
	case GetCoinsFromBankForEachCardCategory:
		count := g.Current().CountCards(func(d CardDef) bool { return d.Category == eff.Category })
		gain = p * amount * float64(count)
	case GetCoinsFromBankForEachCardColor:
		count := g.Current().CountCards(func(d CardDef) bool { return d.Color == eff.Color })
		gain = p * amount * float64(count)
	}
	return math.Round(gain*100) / 100
}

// Evaluate scores an unfinished game from player's point of view, in [0, 1].
type Evaluate func(g *Game, player int) float64

// EvaluateProgress weighs how close player is to winning against the best
// opponent: landmarks first, coins as a tie breaker.
func EvaluateProgress(g *Game, player int) float64 {
	score := func(p *Player) float64 {
		return float64(len(p.Landmarks)) + min(float64(p.Coins), 30)/30
	}
	mine, best := score(g.Players[player]), 0.0
	for i, p := range g.Players {
		if i != player {
			best = max(best, score(p))
		}
	}
	if mine+best == 0 {
		return 0.5
	}
	return mine / (mine + best)
}
