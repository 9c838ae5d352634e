package game

import "fmt"

// Hook is the single point at which a landmark takes part in play.
type Hook int

const (
	HookBuild           Hook = iota // immediate: fires once at purchase
	HookDiceRoll                    // after the owner rolls
	HookAfterActivation             // after the owner's income phase
	HookTurnEnd                     // after the owner's buy phase
	HookEarnings                    // passive bonus on the owner's card income
	HookCost                        // passive discount on the owner's landmark purchases
)

var hookNames = map[Hook]string{
	HookBuild:           "Build",
	HookDiceRoll:        "DiceRoll",
	HookAfterActivation: "AfterActivation",
	HookTurnEnd:         "TurnEnd",
	HookEarnings:        "Earnings",
	HookCost:            "Cost",
}

func (h Hook) String() string {
	if s, ok := hookNames[h]; ok {
		return s
	}
	return "Unknown"
}

var landmarkHooks = map[Landmark]Hook{
	Airport:           HookTurnEnd,
	AmusementPark:     HookDiceRoll,
	Charterhouse:      HookAfterActivation,
	ExhibitHall:       HookBuild,
	FarmersMarket:     HookEarnings,
	Forge:             HookEarnings,
	FrenchRestaurant:  HookBuild,
	LaunchPad:         HookBuild,
	LoanOffice:        HookCost,
	MovingCompany:     HookDiceRoll,
	Museum:            HookBuild,
	Observatory:       HookCost,
	Park:              HookBuild,
	Publisher:         HookBuild,
	RadioTower:        HookBuild,
	SodaBottlingPlant: HookEarnings,
	ShoppingMall:      HookEarnings,
	TechStartup:       HookDiceRoll,
	Temple:            HookDiceRoll,
	TvStation:         HookBuild,
}

var earningsBonus = map[Landmark]Category{
	FarmersMarket:     Wheat,
	Forge:             Gear,
	SodaBottlingPlant: Cup,
	ShoppingMall:      Bread,
}

func init() {
	if err := validateHooks(landmarkHooks); err != nil {
		panic(err)
	}
}

// validateHooks checks that every landmark has exactly one hook and that
// only immediate landmarks use the build hook.
func validateHooks(hooks map[Landmark]Hook) error {
	for _, l := range AllLandmarks() {
		h, ok := hooks[l]
		if !ok {
			return fmt.Errorf("landmark %s has no hook", l)
		}
		if (h == HookBuild) != (l.Def().Kind == Immediate) {
			return fmt.Errorf("landmark %s is %s but hooks into %s", l, l.Def().Kind, h)
		}
	}
	if len(hooks) != int(numLandmarks) {
		return fmt.Errorf("hook table has %d entries for %d landmarks", len(hooks), numLandmarks)
	}
	return nil
}

// Hook returns the landmark's hook.
func (l Landmark) Hook() Hook {
	return landmarkHooks[l]
}

func mustHook(l Landmark, h Hook) {
	if l.Hook() != h {
		panic(fmt.Sprintf("landmark %s dispatched to %s hook, supports %s", l, h, l.Hook()))
	}
}

// ActiveFor returns the cached infinite landmarks that player owns and that
// take part in hook, in purchase order.
func (g *Game) ActiveFor(player int, hook Hook) []Landmark {
	var out []Landmark
	for _, l := range g.active {
		if l.Hook() == hook && g.Players[player].Owns(l) {
			out = append(out, l)
		}
	}
	return out
}

// ActivateLandmark applies an immediate landmark's one-shot effect for the
// current player.
func (g *Game) ActivateLandmark(l Landmark) {
	mustHook(l, HookBuild)
	owner := g.CurrentPlayer

	switch l {
	case ExhibitHall:
		g.TakeHalfFromRichOpponents(owner)
	case FrenchRestaurant:
		g.TakeCoinsFromEachOpponent(owner, 2)
	case LaunchPad:
		// winning is checked by the win condition
	case Museum:
		g.TakeCoinsForEachLandmark(owner, 3)
	case Park:
		g.RedistributeCoinsEvenly()
	case Publisher:
		g.TakeCoinsForEachCard(owner, 1, func(d CardDef) bool { return d.Category == Bread })
	case RadioTower:
		g.TakeAnotherTurn()
	case TvStation:
		g.TakeCoinsForEachCard(owner, 1, func(d CardDef) bool { return d.Category == Cup })
	}
}

// OnDiceRoll fires after the current player rolls. Moving Company asks s
// which card to give away; an invalid answer is returned.
func (g *Game) OnDiceRoll(l Landmark, roll Roll, s Strategy) error {
	mustHook(l, HookDiceRoll)
	owner := g.CurrentPlayer

	switch l {
	case AmusementPark:
		if roll.Doubles() {
			g.TakeAnotherTurn()
		}
	case MovingCompany:
		if roll.Doubles() {
			decision := s.DecideGive(g)
			if decision.Hand {
				return g.GiveEstablishment(decision.Card)
			}
		}
	case TechStartup:
		if roll.Sum() == 12 {
			g.GetCoinsFromBank(owner, 8)
		}
	case Temple:
		if roll.Doubles() {
			g.TakeCoinsFromEachOpponent(owner, 2)
		}
	}
	return nil
}

// OnAfterCardActivation fires once the income phase is over. received says
// whether the current player's balance went up during it.
func (g *Game) OnAfterCardActivation(l Landmark, roll Roll, received bool) {
	mustHook(l, HookAfterActivation)

	switch l {
	case Charterhouse:
		if roll.Dice() == 2 && !received {
			g.GetCoinsFromBank(g.CurrentPlayer, 3)
		}
	}
}

// OnTurnEnd fires after the buy phase. built says whether anything was bought.
func (g *Game) OnTurnEnd(l Landmark, built bool) {
	mustHook(l, HookTurnEnd)

	switch l {
	case Airport:
		if !built {
			g.GetCoinsFromBank(g.CurrentPlayer, 5)
		}
	}
}

// EarningsBonus is the extra income owner's landmarks add to each activation
// of a card in category.
func (g *Game) EarningsBonus(owner int, category Category) uint {
	var bonus uint
	for _, l := range g.ActiveFor(owner, HookEarnings) {
		if earningsBonus[l] == category {
			bonus++
		}
	}
	return bonus
}

// CostReduction is the discount owner's landmarks give on building target.
func (g *Game) CostReduction(owner int, target Landmark) uint {
	var reduction uint
	for _, l := range g.ActiveFor(owner, HookCost) {
		switch l {
		case LoanOffice:
			reduction += 2
		case Observatory:
			if target == LaunchPad {
				reduction += 5
			}
		}
	}
	return reduction
}
