package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roam-backend/internal/db"
	"roam-backend/internal/domain/entities"
	"roam-backend/internal/domain/repositories"
)

type RankRepository struct {
	collection *mongo.Collection
}

func NewRankRepository(database *mongo.Database) repositories.RankRepository {
	return &RankRepository{collection: database.Collection(db.CollectionRanks)}
}

// IncrementOrCreate is a single upsert: $inc either bumps the existing
// counter or seeds a new document at 1, and $setOnInsert fills city/country
// only on the insert path. Mongo applies the whole update atomically per
// document, so two concurrent first visits to the same place cannot race
// into duplicate rank entries. The unique index on place_id backstops the
// rare upsert-upsert collision; retrying once on duplicate-key resolves it.
func (r *RankRepository) IncrementOrCreate(ctx context.Context, placeID, city, country string) error {
	filter := bson.M{"place_id": placeID}
	update := bson.M{
		"$inc":         bson.M{"counter": 1},
		"$setOnInsert": bson.M{"city": city, "country": country},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		_, err = r.collection.UpdateOne(ctx, filter, update)
	}
	if err != nil {
		return fmt.Errorf("increment rank for %q: %w", placeID, err)
	}
	return nil
}

func (r *RankRepository) TopRanked(ctx context.Context, n int) ([]*entities.RankEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "counter", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(n))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find ranks: %w", err)
	}
	defer cursor.Close(ctx)

	ranks := []*entities.RankEntry{}
	for cursor.Next(ctx) {
		var doc rankDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode rank: %w", err)
		}
		ranks = append(ranks, doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate ranks: %w", err)
	}
	return ranks, nil
}
