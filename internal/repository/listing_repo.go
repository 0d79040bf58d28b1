package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ecohome/internal/model"
)

type ListingRepo interface {
	Create(ctx context.Context, listing *model.MarketListing) error
	GetByID(ctx context.Context, id string) (*model.MarketListing, error)
	GetBySession(ctx context.Context, sessionID string) ([]*model.MarketListing, error)
	CountBySeller(ctx context.Context, sellerID string) (int64, error)
	// Remove deletes a listing and reports whether this call removed it.
	// A false result means another buyer or a delist got there first; callers
	// must abort their trade in that case.
	Remove(ctx context.Context, id string) (bool, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type listingRepo struct {
	collection *mongo.Collection
}

func NewListingRepo(db *mongo.Database) ListingRepo {
	return &listingRepo{
		collection: db.Collection("market_listings"),
	}
}

func (r *listingRepo) Create(ctx context.Context, listing *model.MarketListing) error {
	if listing.ID == "" {
		listing.ID = primitive.NewObjectID().Hex()
	}
	listing.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, listing)
	return err
}

func (r *listingRepo) GetByID(ctx context.Context, id string) (*model.MarketListing, error) {
	var listing model.MarketListing
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepo) GetBySession(ctx context.Context, sessionID string) ([]*model.MarketListing, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []*model.MarketListing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepo) CountBySeller(ctx context.Context, sellerID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"seller_id": sellerID})
}

func (r *listingRepo) Remove(ctx context.Context, id string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *listingRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"session_id": sessionID})
	return err
}
