// Package economy contains the pure pricing and progression rules. Everything
// here is stateless; services apply these functions to player state.
package economy

import (
	"math"

	"ecohome/internal/model"
)

const (
	// HouseLevelCap is the maximum house level a player can reach.
	HouseLevelCap = 25.0

	// Items at or above GatePrice require GateHouseLevel to purchase or upgrade.
	GatePrice      = 1500
	GateHouseLevel = 3.0

	// CommissionRate numerator/denominator: 7% retained on every market sale.
	commissionPercent = 7

	// TreasureBonus is paid on first purchase of a session treasure item;
	// AllTreasuresBonus once all TreasureCount treasures are claimed.
	TreasureBonus     = 5000
	AllTreasuresBonus = 20000
	TreasureCount     = 4

	// MaxActiveListings caps concurrent market listings per seller.
	MaxActiveListings = 5
)

// ItemCountReward is a one-time bonus for crossing a cumulative inventory
// threshold (sum of item levels).
type ItemCountReward struct {
	Threshold int
	Reward    int
}

// ItemCountRewards in ascending threshold order.
var ItemCountRewards = []ItemCountReward{
	{Threshold: 50, Reward: 5000},
	{Threshold: 75, Reward: 10000},
	{Threshold: 100, Reward: 25000},
}

// UpgradeCost is the price to move an item from currentLevel to the next one.
// The first purchase (level 0) costs the base price; each upgrade multiplies
// by 1.5 and floors.
func UpgradeCost(basePrice, currentLevel int) int {
	if currentLevel <= 0 {
		return basePrice
	}
	return int(math.Floor(float64(basePrice) * math.Pow(1.5, float64(currentLevel))))
}

var houseLevelDeltas = [6]float64{0.25, 0.5, 0.75, 1.0, 1.25, 1.5}

// HouseLevelDelta is the house-level gain for buying an item of the given tier.
func HouseLevelDelta(tier int) float64 {
	if tier < 1 || tier > len(houseLevelDeltas) {
		return 0
	}
	return houseLevelDeltas[tier-1]
}

// ApplyHouseLevel adds delta to a house level, clamped to the cap.
func ApplyHouseLevel(current, delta float64) float64 {
	return math.Min(HouseLevelCap, current+delta)
}

// OxygenDelta is the oxygen gain for buying an item: greenery yields tier×2,
// everything else nothing.
func OxygenDelta(category model.Category, tier int) int {
	if category == model.CategoryGreenery {
		return tier * 2
	}
	return 0
}

// MaxResalePrice is the market price ceiling: 75% of base price, floored.
func MaxResalePrice(basePrice int) int {
	return basePrice * 3 / 4
}

// Commission is the market's cut on a sale: 7% of the price, floored. The
// seller receives price − Commission(price).
func Commission(price int) int {
	return price * commissionPercent / 100
}

// RequiresLevelGate reports whether an item is gated behind the house-level
// requirement. The gate applies to first purchases and upgrades alike.
func RequiresLevelGate(basePrice int) bool {
	return basePrice >= GatePrice
}
