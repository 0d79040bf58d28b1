package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecohome/internal/catalog"
	"ecohome/internal/model"
)

// Seeds a demo session with a few players so the admin panel has something to
// show on a fresh database.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "ecohome"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	sessionColl := db.Collection("game_sessions")
	playerColl := db.Collection("players")

	now := time.Now()
	startedAt := now.Add(-5 * time.Minute)

	session := model.GameSession{
		ID:             primitive.NewObjectID().Hex(),
		Code:           "123456",
		Status:         model.SessionActive,
		TimerDuration:  model.DefaultTimerDuration,
		StartedAt:      &startedAt,
		InitialBalance: model.DefaultInitialBalance,
		TreasureItems:  catalog.DrawTreasures(4),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := sessionColl.InsertOne(ctx, session); err != nil {
		log.Fatalf("Failed to insert session: %v", err)
	}
	log.Printf("Created session %s (code %s)", session.ID, session.Code)

	solar, _ := catalog.Lookup("solar-panel")
	barrel, _ := catalog.Lookup("barrel")
	energyCard := model.CategoryEnergy
	waterCard := model.CategoryWater

	players := []model.Player{
		{
			ID:           playerID(),
			SessionID:    session.ID,
			Nickname:     "Alice",
			Money:        8200,
			HouseLevel:   1.75,
			SelectedCard: &energyCard,
			Inventory: []model.InventoryItem{
				{CatalogItem: solar, Level: 2},
			},
			Oxygen:             0,
			CompletedMissions:  []string{},
			ClaimedTreasures:   []string{},
			ClaimedItemRewards: []int{},
			LastActivity:       now,
			JoinedAt:           startedAt,
		},
		{
			ID:           playerID(),
			SessionID:    session.ID,
			Nickname:     "Bob",
			Money:        9550,
			HouseLevel:   1.25,
			SelectedCard: &waterCard,
			Inventory: []model.InventoryItem{
				{CatalogItem: barrel, Level: 1},
			},
			Oxygen:             0,
			CompletedMissions:  []string{},
			ClaimedTreasures:   []string{},
			ClaimedItemRewards: []int{},
			LastActivity:       now,
			JoinedAt:           startedAt,
		},
	}

	for _, p := range players {
		if _, err := playerColl.InsertOne(ctx, p); err != nil {
			log.Fatalf("Failed to insert player %s: %v", p.Nickname, err)
		}
		log.Printf("Created player %s (%s)", p.Nickname, p.ID)
	}

	fmt.Println("Seed complete. Join code: 123456")
}

func playerID() string {
	return "p_" + uuid.New().String()[:8]
}
