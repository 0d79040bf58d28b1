package model

import "time"

// Player represents a participant in a game session.
type Player struct {
	ID                  string          `json:"id" bson:"_id,omitempty"`
	SessionID           string          `json:"sessionId" bson:"session_id"`
	Nickname            string          `json:"nickname" bson:"nickname"`
	Money               int             `json:"money" bson:"money"`
	HouseLevel          float64         `json:"houseLevel" bson:"house_level"`
	SelectedCard        *Category       `json:"selectedCard" bson:"selected_card,omitempty"`
	Inventory           []InventoryItem `json:"inventory" bson:"inventory"`
	Oxygen              int             `json:"oxygen" bson:"oxygen"`
	CompletedMissions   []string        `json:"completedMissions" bson:"completed_missions"`
	ClaimedTreasures    []string        `json:"claimedTreasures" bson:"claimed_treasures"`
	ClaimedItemRewards  []int           `json:"claimedItemRewards" bson:"claimed_item_rewards"`
	AllTreasuresClaimed bool            `json:"allTreasuresClaimed" bson:"all_treasures_claimed"`
	LastActivity        time.Time       `json:"lastActivity" bson:"last_activity"`
	JoinedAt            time.Time       `json:"joinedAt" bson:"created_at"`
}

// FindItem returns the index of the inventory entry with the given catalog id,
// or -1 if the player does not own it.
func (p *Player) FindItem(itemID string) int {
	for i := range p.Inventory {
		if p.Inventory[i].ID == itemID {
			return i
		}
	}
	return -1
}

// TotalItemLevels is the sum of all inventory entry levels. Milestone rewards
// are granted against this total, so upgrading an item counts the same as
// buying a new one.
func (p *Player) TotalItemLevels() int {
	total := 0
	for i := range p.Inventory {
		total += p.Inventory[i].Level
	}
	return total
}

// HasCompletedMission reports whether missionID has already been claimed.
func (p *Player) HasCompletedMission(missionID string) bool {
	for _, id := range p.CompletedMissions {
		if id == missionID {
			return true
		}
	}
	return false
}

// HasClaimedTreasure reports whether the treasure bonus for itemID was granted.
func (p *Player) HasClaimedTreasure(itemID string) bool {
	for _, id := range p.ClaimedTreasures {
		if id == itemID {
			return true
		}
	}
	return false
}

// HasClaimedItemReward reports whether the milestone at threshold was granted.
func (p *Player) HasClaimedItemReward(threshold int) bool {
	for _, t := range p.ClaimedItemRewards {
		if t == threshold {
			return true
		}
	}
	return false
}

// DistinctCategories counts how many different categories appear in the inventory.
func (p *Player) DistinctCategories() int {
	seen := make(map[Category]bool, 3)
	for i := range p.Inventory {
		seen[p.Inventory[i].Category] = true
	}
	return len(seen)
}

// PlayerJoinResponse is returned when a player joins a session.
type PlayerJoinResponse struct {
	Player      *Player      `json:"player"`
	Token       string       `json:"token"`
	ResumeToken string       `json:"resumeToken"`
	Session     *GameSession `json:"session"`
}
