package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecohome/internal/model"
)

type HistoryRepo interface {
	Insert(ctx context.Context, record *model.PurchaseRecord) error
	GetByPlayer(ctx context.Context, playerID string) ([]*model.PurchaseRecord, error)
	DeleteByPlayers(ctx context.Context, playerIDs []string) error
}

type historyRepo struct {
	collection *mongo.Collection
}

func NewHistoryRepo(db *mongo.Database) HistoryRepo {
	return &historyRepo{
		collection: db.Collection("purchase_history"),
	}
}

func (r *historyRepo) Insert(ctx context.Context, record *model.PurchaseRecord) error {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	if record.PurchasedAt.IsZero() {
		record.PurchasedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *historyRepo) GetByPlayer(ctx context.Context, playerID string) ([]*model.PurchaseRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "purchased_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"player_id": playerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.PurchaseRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *historyRepo) DeleteByPlayers(ctx context.Context, playerIDs []string) error {
	if len(playerIDs) == 0 {
		return nil
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"player_id": bson.M{"$in": playerIDs}})
	return err
}
