package model

import "time"

// PurchaseRecord is an append-only log entry for every successful purchase.
type PurchaseRecord struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	PlayerID    string    `json:"playerId" bson:"player_id"`
	ItemID      string    `json:"itemId" bson:"item_id"`
	ItemName    string    `json:"itemName" bson:"item_name"`
	Category    Category  `json:"category" bson:"category"`
	Tier        int       `json:"tier" bson:"tier"`
	Level       int       `json:"level" bson:"level"`
	Price       int       `json:"price" bson:"price"`
	PurchasedAt time.Time `json:"purchasedAt" bson:"purchased_at"`
}
