package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roam-backend/internal/db"
	"roam-backend/internal/domain"
	"roam-backend/internal/domain/entities"
	"roam-backend/internal/domain/repositories"
)

type CounterRepository struct {
	collection *mongo.Collection
}

func NewCounterRepository(database *mongo.Database) repositories.CounterRepository {
	return &CounterRepository{collection: database.Collection(db.CollectionCounters)}
}

func (r *CounterRepository) Create(ctx context.Context, summary *entities.CounterSummary) (*entities.CounterSummary, error) {
	result, err := r.collection.InsertOne(ctx, newCounterDocument(summary))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("counters for user %q: %w", summary.UserID, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("insert counters: %w", err)
	}

	created := *summary
	created.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CounterRepository) FindByUser(ctx context.Context, userID string) (*entities.CounterSummary, error) {
	var doc counterDocument
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find counters: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *CounterRepository) Save(ctx context.Context, summary *entities.CounterSummary) error {
	doc := newCounterDocument(summary)
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"user_id": summary.UserID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save counters: %w", err)
	}
	return nil
}
