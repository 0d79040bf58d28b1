package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ecohome/internal/model"
)

func TestUpgradeCost(t *testing.T) {
	// First purchase costs the base price
	assert.Equal(t, 20000, UpgradeCost(20000, 0))
	assert.Equal(t, 150, UpgradeCost(150, 0))

	// Each upgrade multiplies by 1.5 and floors
	assert.Equal(t, 30000, UpgradeCost(20000, 1))
	assert.Equal(t, 45000, UpgradeCost(20000, 2))
	assert.Equal(t, 225, UpgradeCost(150, 1))
	assert.Equal(t, 337, UpgradeCost(150, 2)) // 337.5 floors

	// Negative levels behave like a first purchase
	assert.Equal(t, 500, UpgradeCost(500, -1))
}

func TestUpgradeCostMonotonic(t *testing.T) {
	prev := 0
	for level := 0; level < 10; level++ {
		cost := UpgradeCost(200, level)
		assert.Greater(t, cost, prev, "cost must grow with level")
		prev = cost
	}
}

func TestHouseLevelDelta(t *testing.T) {
	assert.Equal(t, 0.25, HouseLevelDelta(1))
	assert.Equal(t, 0.5, HouseLevelDelta(2))
	assert.Equal(t, 0.75, HouseLevelDelta(3))
	assert.Equal(t, 1.0, HouseLevelDelta(4))
	assert.Equal(t, 1.25, HouseLevelDelta(5))
	assert.Equal(t, 1.5, HouseLevelDelta(6))

	// Out-of-range tiers yield nothing
	assert.Equal(t, 0.0, HouseLevelDelta(0))
	assert.Equal(t, 0.0, HouseLevelDelta(7))
}

func TestApplyHouseLevel(t *testing.T) {
	assert.Equal(t, 1.25, ApplyHouseLevel(1.0, 0.25))
	assert.Equal(t, 25.0, ApplyHouseLevel(24.8, 1.5), "capped at 25")
	assert.Equal(t, 25.0, ApplyHouseLevel(25.0, 0.25))
}

func TestOxygenDelta(t *testing.T) {
	assert.Equal(t, 6, OxygenDelta(model.CategoryGreenery, 3))
	assert.Equal(t, 12, OxygenDelta(model.CategoryGreenery, 6))
	assert.Equal(t, 0, OxygenDelta(model.CategoryEnergy, 3))
	assert.Equal(t, 0, OxygenDelta(model.CategoryWater, 6))
}

func TestMaxResalePrice(t *testing.T) {
	assert.Equal(t, 150, MaxResalePrice(200))
	assert.Equal(t, 112, MaxResalePrice(150)) // 112.5 floors
	assert.Equal(t, 1500, MaxResalePrice(2000))
}

func TestCommission(t *testing.T) {
	assert.Equal(t, 7, Commission(100))
	assert.Equal(t, 10, Commission(150)) // 10.5 floors
	assert.Equal(t, 0, Commission(10))   // 0.7 floors to zero
	assert.Equal(t, 140, Commission(2000))
}

func TestRequiresLevelGate(t *testing.T) {
	assert.False(t, RequiresLevelGate(1499))
	assert.True(t, RequiresLevelGate(1500))
	assert.True(t, RequiresLevelGate(50000))
}

func TestItemCountRewardsOrdering(t *testing.T) {
	prev := 0
	for _, r := range ItemCountRewards {
		assert.Greater(t, r.Threshold, prev, "thresholds must ascend")
		assert.Greater(t, r.Reward, 0)
		prev = r.Threshold
	}
}
