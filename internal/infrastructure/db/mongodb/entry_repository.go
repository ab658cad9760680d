package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"roam-backend/internal/domain"
	"roam-backend/internal/domain/entities"
	"roam-backend/internal/domain/repositories"
)

// EntryRepository serves one entries collection; construct it once for
// history and once for wishlist.
type EntryRepository struct {
	collection *mongo.Collection
}

func NewEntryRepository(database *mongo.Database, collection string) repositories.EntryRepository {
	return &EntryRepository{collection: database.Collection(collection)}
}

func (r *EntryRepository) Create(ctx context.Context, entry *entities.ValidatedEntry) (*entities.Entry, error) {
	entity := entry.GetEntry()
	result, err := r.collection.InsertOne(ctx, newEntryDocument(entity))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("place %q for user %q: %w", entity.PlaceID, entity.UserID, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	created := *entity
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id string) (*entities.Entry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *EntryRepository) FindByUser(ctx context.Context, userID string) ([]*entities.Entry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []*entities.Entry{}
	for cursor.Next(ctx) {
		var doc entryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		entries = append(entries, doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func (r *EntryRepository) FindByUserAndPlace(ctx context.Context, userID, placeID string) (*entities.Entry, error) {
	return r.findOne(ctx, bson.M{"user_id": userID, "place_id": placeID})
}

func (r *EntryRepository) Replace(ctx context.Context, entry *entities.Entry) error {
	oid, err := primitive.ObjectIDFromHex(entry.ID)
	if err != nil {
		return fmt.Errorf("entry %q: %w", entry.ID, domain.ErrNotFound)
	}

	doc := newEntryDocument(entry)
	doc.ID = oid
	doc.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("replace entry: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("entry %q: %w", entry.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("entry %q: %w", id, domain.ErrNotFound)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("entry %q: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *EntryRepository) DistinctByUser(ctx context.Context, userID, field string) ([]string, error) {
	raw, err := r.collection.Distinct(ctx, field, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	return values, nil
}

func (r *EntryRepository) findOne(ctx context.Context, filter bson.M) (*entities.Entry, error) {
	var doc entryDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return doc.toEntity(), nil
}

var _ repositories.EntryRepository = (*EntryRepository)(nil)
