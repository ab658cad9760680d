package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names inside the roam database.
const (
	CollectionUsers    = "users"
	CollectionHistory  = "history"
	CollectionWishlist = "wishlist"
	CollectionRanks    = "ranks"
	CollectionCounters = "counters"
)

const connectTimeout = 10 * time.Second

// Connect opens a client for the given URI and returns a handle to the
// named database. The handle is passed explicitly to every repository; no
// package-level client is kept.
func Connect(ctx context.Context, uri, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client.Database(database), nil
}

// EnsureIndexes creates the uniqueness constraints the application relies
// on: one account per username, one history entry per (user, place) pair,
// one rank entry per place. Application-level duplicate checks are a
// fast path; these indexes are the authority under concurrency.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("users index: %w", err)
	}

	_, err = db.Collection(CollectionHistory).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "place_id", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("history index: %w", err)
	}

	_, err = db.Collection(CollectionRanks).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "place_id", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("ranks index: %w", err)
	}

	_, err = db.Collection(CollectionCounters).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("counters index: %w", err)
	}

	return nil
}
