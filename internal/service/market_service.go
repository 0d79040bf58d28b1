package service

import (
	"context"
	"log"
	"time"

	"ecohome/internal/catalog"
	"ecohome/internal/economy"
	"ecohome/internal/model"
	"ecohome/internal/repository"
)

// MarketService owns the session's peer-to-peer market: listing, buying with
// commission, and delisting. The listing document's conditional delete is the
// linearization point for a sale — whichever caller's delete lands first owns
// the trade, so two buyers can never both pay for one listing.
type MarketService struct {
	sessionRepo repository.SessionRepo
	playerRepo  repository.PlayerRepo
	listingRepo repository.ListingRepo
	broadcaster Broadcaster

	now func() time.Time
}

// NewMarketService creates a new market service
func NewMarketService(
	sessionRepo repository.SessionRepo,
	playerRepo repository.PlayerRepo,
	listingRepo repository.ListingRepo,
) *MarketService {
	return &MarketService{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		listingRepo: listingRepo,
		now:         time.Now,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *MarketService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Listings returns every active listing in a session.
func (s *MarketService) Listings(ctx context.Context, sessionCode string) ([]*model.MarketListing, error) {
	session, err := s.session(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	return s.listingRepo.GetBySession(ctx, session.ID)
}

// List offers one level of an owned item for sale. The seller's inventory
// level drops by one (the entry disappears at zero) and the listing snapshots
// the item at level 1, priced no higher than 75% of base.
func (s *MarketService) List(ctx context.Context, sessionCode, playerID, itemID string, price int) (*model.MarketListing, error) {
	session, player, err := s.sessionPlayer(ctx, sessionCode, playerID)
	if err != nil {
		return nil, err
	}

	catalogItem, ok := catalog.Lookup(itemID)
	if !ok {
		return nil, model.ErrItemNotFound
	}
	if price < 1 {
		return nil, model.ErrPriceTooLow
	}
	if price > economy.MaxResalePrice(catalogItem.BasePrice) {
		return nil, model.ErrPriceTooHigh
	}

	idx := player.FindItem(itemID)
	if idx < 0 || player.Inventory[idx].Level < 1 {
		return nil, model.ErrNotOwned
	}
	item := player.Inventory[idx]

	count, err := s.listingRepo.CountBySeller(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if count >= economy.MaxActiveListings {
		return nil, model.ErrListingCapExceeded
	}

	listing := &model.MarketListing{
		SessionID:      session.ID,
		SellerID:       player.ID,
		SellerNickname: player.Nickname,
		Item:           model.InventoryItem{CatalogItem: item.CatalogItem, Level: 1},
		Price:          price,
	}

	// Constructive step first: if the listing insert fails, the inventory is
	// untouched.
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	if item.Level > 1 {
		player.Inventory[idx].Level--
	} else {
		player.Inventory = append(player.Inventory[:idx], player.Inventory[idx+1:]...)
	}
	player.LastActivity = s.now()

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}

	s.broadcastMarket(sessionCode)
	return listing, nil
}

// Buy purchases a listing. The conditional delete decides the winner under
// concurrent buys or a racing delist; the loser aborts with no money moved.
// The seller is credited from a live read so concurrent seller-side changes
// are not stomped.
func (s *MarketService) Buy(ctx context.Context, sessionCode, buyerID, listingID string) (*model.Player, error) {
	_, buyer, err := s.sessionPlayer(ctx, sessionCode, buyerID)
	if err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, model.ErrListingNotFound
	}
	if listing.SellerID == buyerID {
		return nil, model.ErrSelfTradeForbidden
	}
	if buyer.Money < listing.Price {
		return nil, model.ErrInsufficientFunds
	}

	removed, err := s.listingRepo.Remove(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, model.ErrListingNotFound
	}

	buyer.Money -= listing.Price
	mergeItem(buyer, listing.Item)
	buyer.LastActivity = s.now()

	if err := s.playerRepo.Update(ctx, buyer); err != nil {
		return nil, err
	}

	commission := economy.Commission(listing.Price)
	seller, err := s.playerRepo.GetByID(ctx, listing.SellerID)
	if err != nil || seller == nil {
		// Seller gone (kicked or left); the proceeds are forfeit with the
		// commission.
		log.Printf("seller %s unavailable for payout: %v", listing.SellerID, err)
	} else {
		seller.Money += listing.Price - commission
		if err := s.playerRepo.Update(ctx, seller); err != nil {
			log.Printf("failed to credit seller %s: %v", seller.ID, err)
		} else if s.broadcaster != nil {
			s.broadcaster.BroadcastToPlayer(sessionCode, seller.ID, EventPlayerUpdated, seller)
		}
	}

	s.broadcastMarket(sessionCode)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToPlayer(sessionCode, buyer.ID, EventPlayerUpdated, buyer)
		s.broadcaster.BroadcastToAdmin(sessionCode, EventPlayerUpdated, buyer)
	}
	return buyer, nil
}

// Delist withdraws the caller's own listing and returns the item to their
// inventory, inverse of List.
func (s *MarketService) Delist(ctx context.Context, sessionCode, playerID, listingID string) (*model.Player, error) {
	_, player, err := s.sessionPlayer(ctx, sessionCode, playerID)
	if err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil || listing.SellerID != playerID {
		return nil, model.ErrListingNotFound
	}

	removed, err := s.listingRepo.Remove(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if !removed {
		// A buyer won the race; the sale stands.
		return nil, model.ErrListingNotFound
	}

	mergeItem(player, listing.Item)
	player.LastActivity = s.now()

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}

	s.broadcastMarket(sessionCode)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToPlayer(sessionCode, player.ID, EventPlayerUpdated, player)
	}
	return player, nil
}

// mergeItem folds a listing's item into an inventory: one more level if the
// player already owns that id, otherwise a fresh level-1 entry.
func mergeItem(player *model.Player, item model.InventoryItem) {
	if idx := player.FindItem(item.ID); idx >= 0 {
		player.Inventory[idx].Level++
		return
	}
	player.Inventory = append(player.Inventory, model.InventoryItem{CatalogItem: item.CatalogItem, Level: 1})
}

func (s *MarketService) session(ctx context.Context, sessionCode string) (*model.GameSession, error) {
	session, err := s.sessionRepo.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

// sessionPlayer resolves the session by code and the player by id, requiring
// that the player actually belongs to that session.
func (s *MarketService) sessionPlayer(ctx context.Context, sessionCode, playerID string) (*model.GameSession, *model.Player, error) {
	session, err := s.session(ctx, sessionCode)
	if err != nil {
		return nil, nil, err
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

func (s *MarketService) broadcastMarket(sessionCode string) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastToAllPlayers(sessionCode, EventMarketUpdated, nil)
	s.broadcaster.BroadcastToAdmin(sessionCode, EventMarketUpdated, nil)
}
