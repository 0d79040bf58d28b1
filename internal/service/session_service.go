package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"

	"ecohome/internal/cache"
	"ecohome/internal/catalog"
	"ecohome/internal/economy"
	"ecohome/internal/model"
	"ecohome/internal/repository"
)

var codePattern = regexp.MustCompile(`^\d{6}$`)

// SessionService owns the game-session lifecycle: waiting → active ⇄ paused →
// finished → waiting. All transitions are admin-driven except the automatic
// active → finished on timer expiry, which a per-session watcher issues.
type SessionService struct {
	sessionRepo repository.SessionRepo
	playerRepo  repository.PlayerRepo
	listingRepo repository.ListingRepo
	historyRepo repository.HistoryRepo
	leaderboard cache.LeaderboardCache
	resumeCache cache.ResumeCache
	authSvc     *AuthService
	broadcaster Broadcaster

	now func() time.Time

	watchMu  sync.Mutex
	watching map[string]bool
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo repository.SessionRepo,
	playerRepo repository.PlayerRepo,
	listingRepo repository.ListingRepo,
	historyRepo repository.HistoryRepo,
	leaderboard cache.LeaderboardCache,
	resumeCache cache.ResumeCache,
	authSvc *AuthService,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		listingRepo: listingRepo,
		historyRepo: historyRepo,
		leaderboard: leaderboard,
		resumeCache: resumeCache,
		authSvc:     authSvc,
		now:         time.Now,
		watching:    make(map[string]bool),
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// CreateSession creates a waiting session with a fresh unique code.
func (s *SessionService) CreateSession(ctx context.Context, initialBalance int) (*model.GameSession, error) {
	if initialBalance <= 0 {
		initialBalance = model.DefaultInitialBalance
	}

	code, err := s.generateGameCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate game code: %w", err)
	}

	session := &model.GameSession{
		Code:           code,
		Status:         model.SessionWaiting,
		TimerDuration:  model.DefaultTimerDuration,
		InitialBalance: initialBalance,
		TreasureItems:  []string{},
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by code.
func (s *SessionService) GetSession(ctx context.Context, code string) (*model.GameSession, error) {
	session, err := s.sessionRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// GetPlayers lists every player in a session.
func (s *SessionService) GetPlayers(ctx context.Context, code string) ([]*model.Player, error) {
	session, err := s.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.playerRepo.GetBySession(ctx, session.ID)
}

// Join creates a player in a waiting session and hands back a session-scoped
// token plus a resume token good for three hours.
func (s *SessionService) Join(ctx context.Context, code, nickname string) (*model.PlayerJoinResponse, error) {
	if !codePattern.MatchString(code) {
		return nil, model.ErrInvalidCode
	}
	if nickname == "" {
		return nil, fmt.Errorf("nickname is required")
	}

	session, err := s.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionWaiting {
		return nil, model.ErrSessionNotWaiting
	}

	now := s.now()
	player := &model.Player{
		ID:                 "p_" + uuid.New().String()[:8],
		SessionID:          session.ID,
		Nickname:           nickname,
		Money:              session.InitialBalance,
		HouseLevel:         1,
		Inventory:          []model.InventoryItem{},
		CompletedMissions:  []string{},
		ClaimedTreasures:   []string{},
		ClaimedItemRewards: []int{},
		LastActivity:       now,
		JoinedAt:           now,
	}

	// The unique index on (session_id, nickname) is the authority here; the
	// repo surfaces duplicates as ErrNicknameTaken.
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, err
	}

	token, err := s.authSvc.GeneratePlayerToken(code, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.leaderboard.UpdateScore(ctx, code, player.ID, player.HouseLevel); err != nil {
		return nil, fmt.Errorf("failed to init leaderboard: %w", err)
	}

	resumeToken := uuid.New().String()
	if err := s.resumeCache.Set(ctx, resumeToken, &model.ResumeState{
		PlayerID:  player.ID,
		SessionID: session.ID,
	}); err != nil {
		log.Printf("failed to store resume state for %s: %v", player.ID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmin(code, EventPlayerJoined, player)
	}

	return &model.PlayerJoinResponse{
		Player:      player,
		Token:       token,
		ResumeToken: resumeToken,
		Session:     session,
	}, nil
}

// Start begins the round: draws the four treasure items, anchors the timer
// and flips the session to active. Valid only from waiting.
func (s *SessionService) Start(ctx context.Context, code string, durationMinutes, initialBalance int) (*model.GameSession, error) {
	session, err := s.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}
	if session.Status != model.SessionWaiting {
		return nil, model.ErrInvalidTransition
	}
	if durationMinutes <= 0 {
		durationMinutes = model.DefaultTimerDuration / 60
	}

	now := s.now()
	session.Status = model.SessionActive
	session.StartedAt = &now
	session.TimerDuration = durationMinutes * 60
	session.TreasureItems = catalog.DrawTreasures(economy.TreasureCount)
	if initialBalance > 0 {
		session.InitialBalance = initialBalance
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	s.watchExpiry(session.ID, code)
	s.broadcastSession(session)
	return session, nil
}

// TogglePause pauses an active session or resumes a paused one. On pause the
// remaining seconds are persisted into TimerDuration; on resume StartedAt is
// re-anchored so the countdown restarts from that remainder.
func (s *SessionService) TogglePause(ctx context.Context, code string) (*model.GameSession, error) {
	session, err := s.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch session.Status {
	case model.SessionActive:
		session.TimerDuration = session.Remaining(now)
		session.Status = model.SessionPaused
	case model.SessionPaused:
		session.Status = model.SessionActive
		session.StartedAt = &now
	default:
		return nil, model.ErrInvalidTransition
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	if session.Status == model.SessionActive {
		s.watchExpiry(session.ID, code)
	}
	s.broadcastSession(session)
	return session, nil
}

// End finishes the session. Setting finished twice is a no-op, which makes the
// watcher's automatic expiry safe to race with an explicit admin end.
func (s *SessionService) End(ctx context.Context, code string) (*model.GameSession, error) {
	session, err := s.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionFinished {
		return session, nil
	}

	session.Status = model.SessionFinished
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	s.broadcastSession(session)
	return session, nil
}

// Restart wipes the round: purchase history and market listings are deleted,
// every player is reset to the starting balance and the session returns to
// waiting with a fresh 30-minute timer and no treasures.
func (s *SessionService) Restart(ctx context.Context, code string) (*model.GameSession, error) {
	session, err := s.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.GetBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	playerIDs := make([]string, len(players))
	for i, p := range players {
		playerIDs[i] = p.ID
	}

	if err := s.historyRepo.DeleteByPlayers(ctx, playerIDs); err != nil {
		return nil, fmt.Errorf("failed to clear purchase history: %w", err)
	}
	if err := s.listingRepo.DeleteBySession(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to clear market: %w", err)
	}
	if err := s.playerRepo.ResetAll(ctx, session.ID, session.InitialBalance); err != nil {
		return nil, fmt.Errorf("failed to reset players: %w", err)
	}

	if err := s.leaderboard.Reset(ctx, code); err != nil {
		log.Printf("failed to reset leaderboard for %s: %v", code, err)
	}
	for _, id := range playerIDs {
		if err := s.leaderboard.UpdateScore(ctx, code, id, 1); err != nil {
			log.Printf("failed to re-seed leaderboard for %s: %v", id, err)
		}
	}

	session.Status = model.SessionWaiting
	session.StartedAt = nil
	session.TimerDuration = model.DefaultTimerDuration
	session.TreasureItems = []string{}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	s.broadcastSession(session)
	return session, nil
}

// Kick removes a player from the session. The deleted player's client is told
// directly and then disconnected; everyone else sees a player_left.
func (s *SessionService) Kick(ctx context.Context, code, playerID string) error {
	session, err := s.GetSession(ctx, code)
	if err != nil {
		return err
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return err
	}
	if player == nil || player.SessionID != session.ID {
		return model.ErrPlayerNotFound
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return err
	}
	if err := s.leaderboard.Remove(ctx, code, playerID); err != nil {
		log.Printf("failed to remove %s from leaderboard: %v", playerID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToPlayer(code, playerID, EventPlayerKicked, map[string]string{"playerId": playerID})
		s.broadcaster.BroadcastToAdmin(code, EventPlayerLeft, map[string]string{"playerId": playerID})
		s.broadcaster.DisconnectPlayer(code, playerID)
	}
	return nil
}

// Leave is a player's self-exit: same cleanup as a kick, minus the kick notice.
func (s *SessionService) Leave(ctx context.Context, code, playerID string) error {
	session, err := s.GetSession(ctx, code)
	if err != nil {
		return err
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return err
	}
	if player == nil || player.SessionID != session.ID {
		return model.ErrPlayerNotFound
	}

	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return err
	}
	if err := s.leaderboard.Remove(ctx, code, playerID); err != nil {
		log.Printf("failed to remove %s from leaderboard: %v", playerID, err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToAdmin(code, EventPlayerLeft, map[string]string{"playerId": playerID})
	}
	return nil
}

// Resume restores a reloaded client from its resume token.
func (s *SessionService) Resume(ctx context.Context, resumeToken string) (*model.PlayerJoinResponse, error) {
	state, err := s.resumeCache.Get(ctx, resumeToken)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, model.ErrResumeStateNotFound
	}

	session, err := s.sessionRepo.GetByID(ctx, state.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, model.ErrSessionNotFound
	}

	player, err := s.playerRepo.GetByID(ctx, state.PlayerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		// Kicked while away; the saved state is dead.
		_ = s.resumeCache.Delete(ctx, resumeToken)
		return nil, model.ErrPlayerNotFound
	}

	token, err := s.authSvc.GeneratePlayerToken(session.Code, player.ID)
	if err != nil {
		return nil, err
	}

	return &model.PlayerJoinResponse{
		Player:      player,
		Token:       token,
		ResumeToken: resumeToken,
		Session:     session,
	}, nil
}

// Leaderboard returns the top entries with nicknames resolved.
func (s *SessionService) Leaderboard(ctx context.Context, code string, limit int) ([]cache.LeaderboardEntry, error) {
	session, err := s.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}

	entries, err := s.leaderboard.GetTop(ctx, code, limit)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.GetBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Nickname
	}
	for i := range entries {
		entries[i].Nickname = names[entries[i].PlayerID]
	}
	return entries, nil
}

func (s *SessionService) broadcastSession(session *model.GameSession) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastToAdmin(session.Code, EventSessionUpdated, session)
	s.broadcaster.BroadcastToAllPlayers(session.Code, EventSessionUpdated, session)
}

// watchExpiry runs a level-triggered countdown for an active session: every
// second it recomputes the remainder from the persisted wall-clock anchor and
// issues the finished transition when it hits zero. The watcher exits whenever
// the session leaves the active state; pause/resume simply restarts it.
func (s *SessionService) watchExpiry(sessionID, code string) {
	s.watchMu.Lock()
	if s.watching[sessionID] {
		s.watchMu.Unlock()
		return
	}
	s.watching[sessionID] = true
	s.watchMu.Unlock()

	go func() {
		defer func() {
			s.watchMu.Lock()
			delete(s.watching, sessionID)
			s.watchMu.Unlock()
		}()

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			session, err := s.sessionRepo.GetByID(ctx, sessionID)
			cancel()
			if err != nil {
				log.Printf("expiry watcher for %s: %v", code, err)
				continue
			}
			if session == nil || session.Status != model.SessionActive {
				return
			}
			if session.Remaining(s.now()) > 0 {
				continue
			}

			ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
			_, err = s.End(ctx, code)
			cancel()
			if err != nil {
				log.Printf("auto-expire for %s: %v", code, err)
			}
			return
		}
	}()
}

// ResumeWatchers re-arms the expiry countdown for every session that was
// active when the process last stopped. Watchers are in-process goroutines, so
// a restart would otherwise leave running games without auto-expiry.
func (s *SessionService) ResumeWatchers(ctx context.Context) error {
	sessions, err := s.sessionRepo.GetByStatus(ctx, model.SessionActive)
	if err != nil {
		return err
	}
	for _, session := range sessions {
		s.watchExpiry(session.ID, session.Code)
	}
	return nil
}

// generateGameCode creates a unique 6-digit game code.
func (s *SessionService) generateGameCode(ctx context.Context) (string, error) {
	const digits = "0123456789"
	const codeLen = 6

	for attempts := 0; attempts < 10; attempts++ {
		b := make([]byte, codeLen)
		if _, err := rand.Read(b); err != nil {
			return "", err
		}

		code := make([]byte, codeLen)
		for i := range code {
			code[i] = digits[int(b[i])%len(digits)]
		}
		codeStr := string(code)

		existing, err := s.sessionRepo.GetByCode(ctx, codeStr)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return codeStr, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique game code")
}
