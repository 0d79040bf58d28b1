package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecohome/internal/model"
)

type PlayerRepo interface {
	Create(ctx context.Context, player *model.Player) error
	GetByID(ctx context.Context, id string) (*model.Player, error)
	GetBySession(ctx context.Context, sessionID string) ([]*model.Player, error)
	Update(ctx context.Context, player *model.Player) error
	Delete(ctx context.Context, id string) error
	// ResetAll restores every player of a session to the fresh-join state with
	// the given starting balance.
	ResetAll(ctx context.Context, sessionID string, initialBalance int) error
}

type playerRepo struct {
	collection *mongo.Collection
}

func NewPlayerRepo(db *mongo.Database) PlayerRepo {
	coll := db.Collection("players")

	// Nickname uniqueness is enforced here rather than by check-then-insert,
	// so two simultaneous joiners with the same name cannot both succeed.
	_, _ = coll.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "session_id", Value: 1}, {Key: "nickname", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &playerRepo{collection: coll}
}

func (r *playerRepo) Create(ctx context.Context, player *model.Player) error {
	_, err := r.collection.InsertOne(ctx, player)
	if mongo.IsDuplicateKeyError(err) {
		return model.ErrNicknameTaken
	}
	return err
}

func (r *playerRepo) GetByID(ctx context.Context, id string) (*model.Player, error) {
	var player model.Player
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&player)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepo) GetBySession(ctx context.Context, sessionID string) ([]*model.Player, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var players []*model.Player
	if err := cursor.All(ctx, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepo) Update(ctx context.Context, player *model.Player) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": player.ID}, player)
	return err
}

func (r *playerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *playerRepo) ResetAll(ctx context.Context, sessionID string, initialBalance int) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"session_id": sessionID}, bson.M{
		"$set": bson.M{
			"money":                 initialBalance,
			"house_level":           1.0,
			"selected_card":         nil,
			"inventory":             []model.InventoryItem{},
			"oxygen":                0,
			"completed_missions":    []string{},
			"claimed_treasures":     []string{},
			"claimed_item_rewards":  []int{},
			"all_treasures_claimed": false,
		},
	})
	return err
}
