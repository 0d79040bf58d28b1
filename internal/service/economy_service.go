package service

import (
	"context"
	"log"
	"time"

	"ecohome/internal/cache"
	"ecohome/internal/catalog"
	"ecohome/internal/economy"
	"ecohome/internal/model"
	"ecohome/internal/repository"
)

// EconomyService owns a player's transaction operations: purchases with their
// treasure and milestone side effects, mission claims, and card selection.
// Each purchase is validated fully before the single player-document write, so
// a rejection never leaves a partial effect.
type EconomyService struct {
	sessionRepo repository.SessionRepo
	playerRepo  repository.PlayerRepo
	historyRepo repository.HistoryRepo
	leaderboard cache.LeaderboardCache
	broadcaster Broadcaster

	now func() time.Time
}

// NewEconomyService creates a new economy service
func NewEconomyService(
	sessionRepo repository.SessionRepo,
	playerRepo repository.PlayerRepo,
	historyRepo repository.HistoryRepo,
	leaderboard cache.LeaderboardCache,
) *EconomyService {
	return &EconomyService{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		historyRepo: historyRepo,
		leaderboard: leaderboard,
		now:         time.Now,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *EconomyService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// PurchaseResult reports everything a single purchase changed, including any
// bonuses triggered by it.
type PurchaseResult struct {
	Player            *model.Player             `json:"player"`
	Item              model.CatalogItem         `json:"item"`
	Level             int                       `json:"level"`
	Price             int                       `json:"price"`
	TreasureBonus     int                       `json:"treasureBonus,omitempty"`
	AllTreasuresBonus int                       `json:"allTreasuresBonus,omitempty"`
	MilestoneRewards  []economy.ItemCountReward `json:"milestoneRewards,omitempty"`
}

// Purchase buys or upgrades a catalog item for the player. House level,
// oxygen, treasure bonuses and milestone rewards are all settled into the same
// player-document write as the payment.
func (s *EconomyService) Purchase(ctx context.Context, sessionCode, playerID, itemID string) (*PurchaseResult, error) {
	session, player, err := s.activeSessionPlayer(ctx, sessionCode, playerID)
	if err != nil {
		return nil, err
	}

	item, ok := catalog.Lookup(itemID)
	if !ok {
		return nil, model.ErrItemNotFound
	}

	currentLevel := 0
	if idx := player.FindItem(itemID); idx >= 0 {
		currentLevel = player.Inventory[idx].Level
	}
	price := economy.UpgradeCost(item.BasePrice, currentLevel)

	if economy.RequiresLevelGate(item.BasePrice) && player.HouseLevel < economy.GateHouseLevel {
		return nil, model.ErrLevelGate
	}
	if player.Money < price {
		return nil, model.ErrInsufficientFunds
	}

	newLevel := currentLevel + 1
	player.Money -= price
	if idx := player.FindItem(itemID); idx >= 0 {
		player.Inventory[idx].Level = newLevel
	} else {
		player.Inventory = append(player.Inventory, model.InventoryItem{CatalogItem: item, Level: 1})
	}
	player.HouseLevel = economy.ApplyHouseLevel(player.HouseLevel, economy.HouseLevelDelta(item.Tier))
	player.Oxygen += economy.OxygenDelta(item.Category, item.Tier)
	player.LastActivity = s.now()

	result := &PurchaseResult{
		Item:  item,
		Level: newLevel,
		Price: price,
	}

	if session.IsTreasure(itemID) && !player.HasClaimedTreasure(itemID) {
		player.Money += economy.TreasureBonus
		player.ClaimedTreasures = append(player.ClaimedTreasures, itemID)
		result.TreasureBonus = economy.TreasureBonus

		if len(player.ClaimedTreasures) == economy.TreasureCount && !player.AllTreasuresClaimed {
			player.Money += economy.AllTreasuresBonus
			player.AllTreasuresClaimed = true
			result.AllTreasuresBonus = economy.AllTreasuresBonus
		}
	}

	// Milestones count total upgrade levels, evaluated after every purchase.
	total := player.TotalItemLevels()
	for _, reward := range economy.ItemCountRewards {
		if total >= reward.Threshold && !player.HasClaimedItemReward(reward.Threshold) {
			player.Money += reward.Reward
			player.ClaimedItemRewards = append(player.ClaimedItemRewards, reward.Threshold)
			result.MilestoneRewards = append(result.MilestoneRewards, reward)
		}
	}

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}

	if err := s.historyRepo.Insert(ctx, &model.PurchaseRecord{
		PlayerID:    player.ID,
		ItemID:      item.ID,
		ItemName:    item.Name,
		Category:    item.Category,
		Tier:        item.Tier,
		Level:       newLevel,
		Price:       price,
		PurchasedAt: s.now(),
	}); err != nil {
		log.Printf("failed to record purchase for %s: %v", player.ID, err)
	}

	if err := s.leaderboard.UpdateScore(ctx, sessionCode, player.ID, player.HouseLevel); err != nil {
		log.Printf("failed to update leaderboard for %s: %v", player.ID, err)
	}

	result.Player = player
	s.broadcastPlayer(sessionCode, player)
	return result, nil
}

// ClaimMission awards a mission's reward once. The completed_missions set is
// the idempotency check; eligibility is re-verified server-side so a crafted
// request cannot claim an unmet mission.
func (s *EconomyService) ClaimMission(ctx context.Context, sessionCode, playerID, missionID string) (*model.Player, error) {
	_, player, err := s.activeSessionPlayer(ctx, sessionCode, playerID)
	if err != nil {
		return nil, err
	}

	mission, ok := economy.MissionByID(missionID)
	if !ok {
		return nil, model.ErrMissionNotFound
	}
	if player.HasCompletedMission(missionID) {
		return nil, model.ErrAlreadyClaimed
	}
	if !mission.Eligible(player) {
		return nil, model.ErrMissionNotEligible
	}

	player.CompletedMissions = append(player.CompletedMissions, missionID)
	player.Money += mission.Reward
	player.LastActivity = s.now()

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}

	s.broadcastPlayer(sessionCode, player)
	return player, nil
}

// SelectCard sets the player's chosen category. Allowed at any session status
// so players can browse before the round starts.
func (s *EconomyService) SelectCard(ctx context.Context, sessionCode, playerID string, category model.Category) (*model.Player, error) {
	if !category.Valid() {
		return nil, model.ErrInvalidCategory
	}

	session, err := s.sessionRepo.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, model.ErrSessionNotFound
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil || player.SessionID != session.ID {
		return nil, model.ErrPlayerNotFound
	}

	player.SelectedCard = &category
	player.LastActivity = s.now()

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}

	s.broadcastPlayer(sessionCode, player)
	return player, nil
}

// History returns the player's purchase log, newest first.
func (s *EconomyService) History(ctx context.Context, playerID string) ([]*model.PurchaseRecord, error) {
	return s.historyRepo.GetByPlayer(ctx, playerID)
}

// MissionStatus pairs each mission with the player's progress on it.
type MissionStatus struct {
	economy.Mission
	Completed bool `json:"completed"`
	Eligible  bool `json:"eligible"`
}

// Missions reports the fixed mission set with completion and eligibility for
// one player.
func (s *EconomyService) Missions(ctx context.Context, playerID string) ([]MissionStatus, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, model.ErrPlayerNotFound
	}

	statuses := make([]MissionStatus, len(economy.Missions))
	for i, m := range economy.Missions {
		statuses[i] = MissionStatus{
			Mission:   m,
			Completed: player.HasCompletedMission(m.ID),
			Eligible:  m.Eligible(player),
		}
	}
	return statuses, nil
}

// activeSessionPlayer loads the session and player, requiring active status.
func (s *EconomyService) activeSessionPlayer(ctx context.Context, sessionCode, playerID string) (*model.GameSession, *model.Player, error) {
	session, err := s.sessionRepo.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, model.ErrSessionNotFound
	}
	if session.Status != model.SessionActive {
		return nil, nil, model.ErrSessionInactive
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	if player == nil || player.SessionID != session.ID {
		return nil, nil, model.ErrPlayerNotFound
	}
	return session, player, nil
}

func (s *EconomyService) broadcastPlayer(sessionCode string, player *model.Player) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastToAdmin(sessionCode, EventPlayerUpdated, player)
	s.broadcaster.BroadcastToPlayer(sessionCode, player.ID, EventPlayerUpdated, player)
}
