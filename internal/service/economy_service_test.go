package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecohome/internal/catalog"
	"ecohome/internal/economy"
	"ecohome/internal/model"
)

// activeGame seeds an active session and one player straight into the fakes.
func activeGame(t *testing.T, w *testWorld, money int, treasures ...string) (*model.GameSession, *model.Player) {
	t.Helper()
	ctx := context.Background()

	session := &model.GameSession{
		Code:           "555123",
		Status:         model.SessionActive,
		TimerDuration:  model.DefaultTimerDuration,
		InitialBalance: 10000,
		TreasureItems:  treasures,
	}
	require.NoError(t, w.sessions.Create(ctx, session))

	player := &model.Player{
		ID:                 "p_test1",
		SessionID:          session.ID,
		Nickname:           "Alice",
		Money:              money,
		HouseLevel:         1,
		Inventory:          []model.InventoryItem{},
		CompletedMissions:  []string{},
		ClaimedTreasures:   []string{},
		ClaimedItemRewards: []int{},
	}
	require.NoError(t, w.players.Create(ctx, player))
	return session, player
}

func TestPurchaseFirstThenUpgrade(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 20000)

	// gutter-basic: tier 1, base price 200
	result, err := svc.Purchase(ctx, session.Code, player.ID, "gutter-basic")
	require.NoError(t, err)

	assert.Equal(t, 200, result.Price)
	assert.Equal(t, 1, result.Level)
	assert.Equal(t, 19800, result.Player.Money)
	assert.Equal(t, 1.25, result.Player.HouseLevel)

	// Upgrade costs floor(200 × 1.5) = 300
	result, err = svc.Purchase(ctx, session.Code, player.ID, "gutter-basic")
	require.NoError(t, err)

	assert.Equal(t, 300, result.Price)
	assert.Equal(t, 2, result.Level)
	assert.Equal(t, 19500, result.Player.Money)
	assert.Equal(t, 1.5, result.Player.HouseLevel)

	// Leaderboard tracks the house level
	entries, _ := w.leaderboard.GetTop(ctx, session.Code, 10)
	require.Len(t, entries, 1)
	assert.Equal(t, 1.5, entries[0].HouseLevel)
}

func TestPurchaseGreeneryGrantsOxygen(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 20000)

	items := catalog.ByCategory(model.CategoryGreenery)
	var pick model.CatalogItem
	for _, it := range items {
		if it.Tier == 3 && it.BasePrice < economy.GatePrice {
			pick = it
			break
		}
	}
	require.NotEmpty(t, pick.ID)

	result, err := svc.Purchase(ctx, session.Code, player.ID, pick.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, result.Player.Oxygen)
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 100)

	_, err := svc.Purchase(ctx, session.Code, player.ID, "gutter-basic")
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	// Nothing changed
	fresh, _ := w.players.GetByID(ctx, player.ID)
	assert.Equal(t, 100, fresh.Money)
	assert.Empty(t, fresh.Inventory)
}

func TestPurchaseLevelGate(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	// solar-panel: base price 2000, gated behind house level 3
	session, player := activeGame(t, w, 50000)

	_, err := svc.Purchase(ctx, session.Code, player.ID, "solar-panel")
	assert.ErrorIs(t, err, model.ErrLevelGate)

	player.HouseLevel = 3
	require.NoError(t, w.players.Update(ctx, player))

	_, err = svc.Purchase(ctx, session.Code, player.ID, "solar-panel")
	assert.NoError(t, err)
}

func TestPurchaseRequiresActiveSession(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 20000)
	session.Status = model.SessionPaused
	require.NoError(t, w.sessions.Update(ctx, session))

	_, err := svc.Purchase(ctx, session.Code, player.ID, "gutter-basic")
	assert.ErrorIs(t, err, model.ErrSessionInactive)
}

func TestPurchaseRejectsForeignSessionCode(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	// The player's own session is paused, so purchases there are blocked.
	session, player := activeGame(t, w, 20000)
	session.Status = model.SessionPaused
	require.NoError(t, w.sessions.Update(ctx, session))

	// A second, unrelated session is running with a treasure up for grabs.
	other := &model.GameSession{
		Code:           "888999",
		Status:         model.SessionActive,
		TimerDuration:  model.DefaultTimerDuration,
		InitialBalance: 10000,
		TreasureItems:  []string{"gutter-basic"},
	}
	require.NoError(t, w.sessions.Create(ctx, other))

	// Presenting the other session's code must not let the player act there,
	// let alone collect its treasure bonus.
	_, err := svc.Purchase(ctx, other.Code, player.ID, "gutter-basic")
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)

	got, _ := w.players.GetByID(ctx, player.ID)
	assert.Equal(t, 20000, got.Money)
	assert.Empty(t, got.Inventory)

	_, err = svc.SelectCard(ctx, other.Code, player.ID, model.CategoryWater)
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestPurchaseUnknownItem(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 20000)

	_, err := svc.Purchase(ctx, session.Code, player.ID, "flux-capacitor")
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestTreasureBonus(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 20000, "gutter-basic")

	result, err := svc.Purchase(ctx, session.Code, player.ID, "gutter-basic")
	require.NoError(t, err)
	assert.Equal(t, economy.TreasureBonus, result.TreasureBonus)
	// 20000 − 200 + 5000
	assert.Equal(t, 24800, result.Player.Money)

	// Upgrading the same treasure pays no second bonus
	result, err = svc.Purchase(ctx, session.Code, player.ID, "gutter-basic")
	require.NoError(t, err)
	assert.Zero(t, result.TreasureBonus)
	assert.Equal(t, 24500, result.Player.Money)
}

func TestAllTreasuresBonus(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	// Four cheap tier-1 treasures
	treasures := []string{"bucket", "tarp-collector", "gutter-basic", "clay-pot"}
	session, player := activeGame(t, w, 20000, treasures...)

	var last *PurchaseResult
	for _, id := range treasures {
		var err error
		last, err = svc.Purchase(ctx, session.Code, player.ID, id)
		require.NoError(t, err)
	}

	assert.Equal(t, economy.TreasureBonus, last.TreasureBonus)
	assert.Equal(t, economy.AllTreasuresBonus, last.AllTreasuresBonus)
	assert.True(t, last.Player.AllTreasuresClaimed)
	assert.Len(t, last.Player.ClaimedTreasures, 4)
}

func TestMilestoneReward(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 20000)

	// 49 accumulated levels; the next purchase crosses the 50 threshold
	bucket, _ := catalog.Lookup("bucket")
	player.Inventory = []model.InventoryItem{{CatalogItem: bucket, Level: 49}}
	require.NoError(t, w.players.Update(ctx, player))

	result, err := svc.Purchase(ctx, session.Code, player.ID, "gutter-basic")
	require.NoError(t, err)

	require.Len(t, result.MilestoneRewards, 1)
	assert.Equal(t, 50, result.MilestoneRewards[0].Threshold)
	assert.Equal(t, 5000, result.MilestoneRewards[0].Reward)
	// 20000 − 200 + 5000
	assert.Equal(t, 24800, result.Player.Money)

	// The threshold pays only once
	result, err = svc.Purchase(ctx, session.Code, player.ID, "gutter-basic")
	require.NoError(t, err)
	assert.Empty(t, result.MilestoneRewards)
}

func TestClaimMission(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 1000)
	player.HouseLevel = 6
	require.NoError(t, w.players.Update(ctx, player))

	updated, err := svc.ClaimMission(ctx, session.Code, player.ID, "house_5")
	require.NoError(t, err)
	assert.Equal(t, 11000, updated.Money)
	assert.Contains(t, updated.CompletedMissions, "house_5")

	// Double claim is rejected
	_, err = svc.ClaimMission(ctx, session.Code, player.ID, "house_5")
	assert.ErrorIs(t, err, model.ErrAlreadyClaimed)
}

func TestClaimMissionNotEligible(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 1000)

	_, err := svc.ClaimMission(ctx, session.Code, player.ID, "house_5")
	assert.ErrorIs(t, err, model.ErrMissionNotEligible)

	_, err = svc.ClaimMission(ctx, session.Code, player.ID, "no_such_mission")
	assert.ErrorIs(t, err, model.ErrMissionNotFound)
}

func TestSelectCard(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 1000)

	updated, err := svc.SelectCard(ctx, session.Code, player.ID, model.CategoryGreenery)
	require.NoError(t, err)
	require.NotNil(t, updated.SelectedCard)
	assert.Equal(t, model.CategoryGreenery, *updated.SelectedCard)

	_, err = svc.SelectCard(ctx, session.Code, player.ID, model.Category("fire"))
	assert.ErrorIs(t, err, model.ErrInvalidCategory)
}

func TestSelectCardWorksWhilePaused(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 1000)
	session.Status = model.SessionPaused
	require.NoError(t, w.sessions.Update(ctx, session))

	_, err := svc.SelectCard(ctx, session.Code, player.ID, model.CategoryWater)
	assert.NoError(t, err)
}

func TestPurchaseHistory(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	session, player := activeGame(t, w, 20000)

	_, err := svc.Purchase(ctx, session.Code, player.ID, "bucket")
	require.NoError(t, err)
	_, err = svc.Purchase(ctx, session.Code, player.ID, "gutter-basic")
	require.NoError(t, err)

	records, err := svc.History(ctx, player.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Newest first
	assert.Equal(t, "gutter-basic", records[0].ItemID)
	assert.Equal(t, "bucket", records[1].ItemID)
}

func TestMissionStatuses(t *testing.T) {
	w := newTestWorld()
	svc := w.economyService()
	ctx := context.Background()

	_, player := activeGame(t, w, 60000)
	player.CompletedMissions = []string{"money_50k"}
	require.NoError(t, w.players.Update(ctx, player))

	statuses, err := svc.Missions(ctx, player.ID)
	require.NoError(t, err)
	require.Len(t, statuses, len(economy.Missions))

	byID := map[string]MissionStatus{}
	for _, st := range statuses {
		byID[st.ID] = st
	}
	assert.True(t, byID["money_50k"].Completed)
	assert.True(t, byID["money_50k"].Eligible)
	assert.False(t, byID["house_5"].Completed)
	assert.False(t, byID["house_5"].Eligible)
}
