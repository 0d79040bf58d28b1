package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ecohome/internal/cache"
	"ecohome/internal/model"
)

// In-memory doubles for the Mongo repos and Redis caches. They copy documents
// on every read and write, like the real driver, so a mutation that was never
// Update()d is not visible to the next reader.

type fakeSessionRepo struct {
	mu       sync.Mutex
	seq      int
	sessions map[string]model.GameSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]model.GameSession)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *model.GameSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session.ID == "" {
		r.seq++
		session.ID = fmt.Sprintf("s_%d", r.seq)
	}
	r.sessions[session.ID] = *session
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*model.GameSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	out := s
	return &out, nil
}

func (r *fakeSessionRepo) GetByCode(ctx context.Context, code string) (*model.GameSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.Code == code {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) GetByStatus(ctx context.Context, status model.SessionStatus) ([]*model.GameSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.GameSession
	for _, s := range r.sessions {
		if s.Status == status {
			ss := s
			out = append(out, &ss)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *model.GameSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

type fakePlayerRepo struct {
	mu      sync.Mutex
	players map[string]model.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[string]model.Player)}
}

func (r *fakePlayerRepo) Create(ctx context.Context, player *model.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.SessionID == player.SessionID && p.Nickname == player.Nickname {
			return model.ErrNicknameTaken
		}
	}
	r.players[player.ID] = *player
	return nil
}

func (r *fakePlayerRepo) GetByID(ctx context.Context, id string) (*model.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return nil, nil
	}
	out := p
	out.Inventory = append([]model.InventoryItem(nil), p.Inventory...)
	return &out, nil
}

func (r *fakePlayerRepo) GetBySession(ctx context.Context, sessionID string) ([]*model.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Player
	for _, p := range r.players {
		if p.SessionID == sessionID {
			cp := p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePlayerRepo) Update(ctx context.Context, player *model.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *player
	cp.Inventory = append([]model.InventoryItem(nil), player.Inventory...)
	r.players[player.ID] = cp
	return nil
}

func (r *fakePlayerRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, id)
	return nil
}

func (r *fakePlayerRepo) ResetAll(ctx context.Context, sessionID string, initialBalance int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.players {
		if p.SessionID != sessionID {
			continue
		}
		p.Money = initialBalance
		p.HouseLevel = 1
		p.SelectedCard = nil
		p.Inventory = []model.InventoryItem{}
		p.Oxygen = 0
		p.CompletedMissions = []string{}
		p.ClaimedTreasures = []string{}
		p.ClaimedItemRewards = []int{}
		p.AllTreasuresClaimed = false
		r.players[id] = p
	}
	return nil
}

type fakeListingRepo struct {
	mu       sync.Mutex
	seq      int
	listings map[string]model.MarketListing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]model.MarketListing)}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *model.MarketListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if listing.ID == "" {
		r.seq++
		listing.ID = fmt.Sprintf("l_%d", r.seq)
	}
	r.listings[listing.ID] = *listing
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*model.MarketListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	out := l
	return &out, nil
}

func (r *fakeListingRepo) GetBySession(ctx context.Context, sessionID string) ([]*model.MarketListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.MarketListing
	for _, l := range r.listings {
		if l.SessionID == sessionID {
			cp := l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeListingRepo) CountBySeller(ctx context.Context, sellerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, l := range r.listings {
		if l.SellerID == sellerID {
			n++
		}
	}
	return n, nil
}

func (r *fakeListingRepo) Remove(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[id]; !ok {
		return false, nil
	}
	delete(r.listings, id)
	return true, nil
}

func (r *fakeListingRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, l := range r.listings {
		if l.SessionID == sessionID {
			delete(r.listings, id)
		}
	}
	return nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	records []model.PurchaseRecord
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{}
}

func (r *fakeHistoryRepo) Insert(ctx context.Context, record *model.PurchaseRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeHistoryRepo) GetByPlayer(ctx context.Context, playerID string) ([]*model.PurchaseRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.PurchaseRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].PlayerID == playerID {
			cp := r.records[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) DeleteByPlayers(ctx context.Context, playerIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	keep := r.records[:0]
	for _, rec := range r.records {
		del := false
		for _, id := range playerIDs {
			if rec.PlayerID == id {
				del = true
				break
			}
		}
		if !del {
			keep = append(keep, rec)
		}
	}
	r.records = keep
	return nil
}

type fakeLeaderboard struct {
	mu     sync.Mutex
	scores map[string]map[string]float64 // code -> playerID -> house level
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{scores: make(map[string]map[string]float64)}
}

func (l *fakeLeaderboard) UpdateScore(ctx context.Context, sessionCode, playerID string, houseLevel float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.scores[sessionCode] == nil {
		l.scores[sessionCode] = make(map[string]float64)
	}
	l.scores[sessionCode][playerID] = houseLevel
	return nil
}

func (l *fakeLeaderboard) GetTop(ctx context.Context, sessionCode string, limit int) ([]cache.LeaderboardEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var entries []cache.LeaderboardEntry
	for id, score := range l.scores[sessionCode] {
		entries = append(entries, cache.LeaderboardEntry{PlayerID: id, HouseLevel: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].HouseLevel != entries[j].HouseLevel {
			return entries[i].HouseLevel > entries[j].HouseLevel
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (l *fakeLeaderboard) GetRank(ctx context.Context, sessionCode, playerID string) (int64, error) {
	entries, _ := l.GetTop(ctx, sessionCode, 0)
	for i, e := range entries {
		if e.PlayerID == playerID {
			return int64(i + 1), nil
		}
	}
	return -1, nil
}

func (l *fakeLeaderboard) Remove(ctx context.Context, sessionCode, playerID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.scores[sessionCode], playerID)
	return nil
}

func (l *fakeLeaderboard) Reset(ctx context.Context, sessionCode string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.scores, sessionCode)
	return nil
}

type fakeResumeCache struct {
	mu     sync.Mutex
	states map[string]model.ResumeState
}

func newFakeResumeCache() *fakeResumeCache {
	return &fakeResumeCache{states: make(map[string]model.ResumeState)}
}

func (c *fakeResumeCache) Set(ctx context.Context, token string, state *model.ResumeState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[token] = *state
	return nil
}

func (c *fakeResumeCache) Get(ctx context.Context, token string) (*model.ResumeState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.states[token]
	if !ok {
		return nil, nil
	}
	out := s
	return &out, nil
}

func (c *fakeResumeCache) Delete(ctx context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.states, token)
	return nil
}

// broadcastEvent records one fan-out call for assertions.
type broadcastEvent struct {
	Target   string // "admin", "player", "all"
	Code     string
	PlayerID string
	Event    string
}

type fakeBroadcaster struct {
	mu           sync.Mutex
	events       []broadcastEvent
	disconnected []string
}

func (b *fakeBroadcaster) BroadcastToAdmin(code, event string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, broadcastEvent{Target: "admin", Code: code, Event: event})
}

func (b *fakeBroadcaster) BroadcastToPlayer(code, playerID, event string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, broadcastEvent{Target: "player", Code: code, PlayerID: playerID, Event: event})
}

func (b *fakeBroadcaster) BroadcastToAllPlayers(code, event string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, broadcastEvent{Target: "all", Code: code, Event: event})
}

func (b *fakeBroadcaster) DisconnectPlayer(code, playerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disconnected = append(b.disconnected, playerID)
}

func (b *fakeBroadcaster) eventsFor(event string) []broadcastEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []broadcastEvent
	for _, e := range b.events {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}

// testWorld bundles one session service's dependencies for a test.
type testWorld struct {
	sessions    *fakeSessionRepo
	players     *fakePlayerRepo
	listings    *fakeListingRepo
	history     *fakeHistoryRepo
	leaderboard *fakeLeaderboard
	resume      *fakeResumeCache
	auth        *AuthService
	broadcast   *fakeBroadcaster
}

func newTestWorld() *testWorld {
	return &testWorld{
		sessions:    newFakeSessionRepo(),
		players:     newFakePlayerRepo(),
		listings:    newFakeListingRepo(),
		history:     newFakeHistoryRepo(),
		leaderboard: newFakeLeaderboard(),
		resume:      newFakeResumeCache(),
		auth:        NewAuthService("eco-home", "Shkola74", "test-secret"),
		broadcast:   &fakeBroadcaster{},
	}
}

func (w *testWorld) sessionService() *SessionService {
	svc := NewSessionService(w.sessions, w.players, w.listings, w.history, w.leaderboard, w.resume, w.auth)
	svc.SetBroadcaster(w.broadcast)
	return svc
}

func (w *testWorld) economyService() *EconomyService {
	svc := NewEconomyService(w.sessions, w.players, w.history, w.leaderboard)
	svc.SetBroadcaster(w.broadcast)
	return svc
}

func (w *testWorld) marketService() *MarketService {
	svc := NewMarketService(w.sessions, w.players, w.listings)
	svc.SetBroadcaster(w.broadcast)
	return svc
}
