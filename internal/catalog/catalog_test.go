package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecohome/internal/model"
)

func TestCatalogShape(t *testing.T) {
	all := All()
	require.Len(t, all, 90)

	// 3 categories × 6 tiers × 5 items each
	for _, c := range model.Categories {
		items := ByCategory(c)
		assert.Len(t, items, 30, "category %s", c)

		perTier := map[int]int{}
		for _, it := range items {
			perTier[it.Tier]++
			assert.Equal(t, c, it.Category)
			assert.Greater(t, it.BasePrice, 0)
			assert.NotEmpty(t, it.Name)
		}
		for tier := 1; tier <= 6; tier++ {
			assert.Equal(t, 5, perTier[tier], "category %s tier %d", c, tier)
		}
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, it := range All() {
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
}

func TestLookup(t *testing.T) {
	item, ok := Lookup("solar-panel")
	require.True(t, ok)
	assert.Equal(t, "solar-panel", item.ID)
	assert.Equal(t, model.CategoryEnergy, item.Category)
	assert.Equal(t, 2000, item.BasePrice)

	_, ok = Lookup("flux-capacitor")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].BasePrice = -1

	again := All()
	assert.NotEqual(t, -1, again[0].BasePrice)
}

func TestDrawTreasures(t *testing.T) {
	ids := DrawTreasures(4)
	require.Len(t, ids, 4)

	seen := map[string]bool{}
	for _, id := range ids {
		_, ok := Lookup(id)
		assert.True(t, ok, "treasure %s must exist in catalog", id)
		assert.False(t, seen[id], "treasures must be distinct")
		seen[id] = true
	}
}
