package model

import "time"

// MarketListing is a sell offer on the session market. The item is a snapshot
// detached from the seller's live inventory for the lifetime of the listing;
// seller_nickname is denormalized at creation time so market views never join
// against player records.
type MarketListing struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	SessionID      string        `json:"sessionId" bson:"session_id"`
	SellerID       string        `json:"sellerId" bson:"seller_id"`
	SellerNickname string        `json:"sellerNickname" bson:"seller_nickname"`
	Item           InventoryItem `json:"item" bson:"item"`
	Price          int           `json:"price" bson:"price"`
	CreatedAt      time.Time     `json:"createdAt" bson:"created_at"`
}
