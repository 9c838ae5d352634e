package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run("every card is defined", func(t *testing.T) {
		require.Len(t, AllCards(), 20)
		for _, c := range AllCards() {
			def := c.Def()
			require.NotEmpty(t, def.Name, "card %d should have a name", c)
			require.NotEmpty(t, def.Activation, "%s should have activation numbers", c)
			require.Positive(t, def.Copies, "%s should have copies", c)
		}
	})

	t.Run("decks partition the catalog", func(t *testing.T) {
		low := BuildCardDeck(IsLow)
		high := BuildCardDeck(IsHigh)

		require.Len(t, low, 46, "low deck should hold 8 basic cards and 2 advanced ones")
		require.Len(t, high, 40, "high deck should hold 5 basic cards and 5 advanced ones")
		for _, c := range low {
			require.False(t, IsHigh(c.Def()), "%s should only be in the low deck", c)
		}
		for _, c := range high {
			require.False(t, IsLow(c.Def()), "%s should only be in the high deck", c)
		}
	})

	t.Run("activation", func(t *testing.T) {
		require.True(t, FamilyRestaurant.Def().Activates(9))
		require.True(t, FamilyRestaurant.Def().Activates(10))
		require.False(t, FamilyRestaurant.Def().Activates(8))
	})

	t.Run("unknown tags", func(t *testing.T) {
		require.Equal(t, "Unknown", Card(99).String())
		require.Equal(t, "Unknown", Landmark(-1).String())
	})
}

func TestLandmarkCatalog(t *testing.T) {
	t.Run("cost tiers", func(t *testing.T) {
		cost, ok := Airport.Def().BaseCost(1)
		require.True(t, ok)
		require.Equal(t, uint(16), cost)

		_, ok = Airport.Def().BaseCost(3)
		require.False(t, ok, "there is no fourth tier")

		_, ok = LoanOffice.Def().BaseCost(1)
		require.False(t, ok, "Loan Office has a single tier")
	})

	t.Run("every landmark has one valid hook", func(t *testing.T) {
		require.NoError(t, validateHooks(landmarkHooks))
		for _, l := range AllLandmarks() {
			if l.Def().Kind == Immediate {
				require.Equal(t, HookBuild, l.Hook(), "%s fires at purchase", l)
			} else {
				require.NotEqual(t, HookBuild, l.Hook(), "%s persists", l)
			}
		}
	})

	t.Run("incomplete hook table", func(t *testing.T) {
		hooks := make(map[Landmark]Hook)
		for l, h := range landmarkHooks {
			hooks[l] = h
		}
		delete(hooks, Temple)

		require.Error(t, validateHooks(hooks))
	})

	t.Run("immediate landmark on a runtime hook", func(t *testing.T) {
		hooks := make(map[Landmark]Hook)
		for l, h := range landmarkHooks {
			hooks[l] = h
		}
		hooks[Park] = HookTurnEnd

		require.Error(t, validateHooks(hooks))
	})
}
