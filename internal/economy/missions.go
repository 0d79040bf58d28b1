package economy

import "ecohome/internal/model"

// Mission is a one-time objective with a pure eligibility predicate over
// player state. Claiming is idempotent via the player's completed_missions
// set; the predicate never mutates anything.
type Mission struct {
	ID          string                     `json:"id"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Reward      int                        `json:"reward"`
	Eligible    func(p *model.Player) bool `json:"-"`
}

// Missions is the fixed mission set, in display order.
var Missions = []Mission{
	{
		ID:          "house_5",
		Title:       "Early Progress",
		Description: "Build your house to level 5",
		Reward:      10000,
		Eligible:    func(p *model.Player) bool { return p.HouseLevel >= 5 },
	},
	{
		ID:          "money_50k",
		Title:       "First Capital",
		Description: "Save up $50,000",
		Reward:      10000,
		Eligible:    func(p *model.Player) bool { return p.Money >= 50000 },
	},
	{
		ID:          "all_categories",
		Title:       "Well-Rounded",
		Description: "Buy items from all 3 categories",
		Reward:      10000,
		Eligible:    func(p *model.Player) bool { return p.DistinctCategories() == 3 },
	},
	{
		ID:          "house_10",
		Title:       "Seasoned Builder",
		Description: "Build your house to level 10",
		Reward:      10000,
		Eligible:    func(p *model.Player) bool { return p.HouseLevel >= 10 },
	},
	{
		ID:          "house_15",
		Title:       "Master Builder",
		Description: "Build your house to level 15",
		Reward:      10000,
		Eligible:    func(p *model.Player) bool { return p.HouseLevel >= 15 },
	},
}

// MissionByID looks up a mission in the fixed set.
func MissionByID(id string) (Mission, bool) {
	for _, m := range Missions {
		if m.ID == id {
			return m, true
		}
	}
	return Mission{}, false
}
