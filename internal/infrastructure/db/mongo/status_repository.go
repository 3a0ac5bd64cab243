package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brightpixel/website-api/internal/core/domain"
)

const collectionStatusChecks = "status_checks"

// StatusRepository implements ports.StatusRepository using MongoDB.
type StatusRepository struct {
	col *mongo.Collection
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{col: db.Collection(collectionStatusChecks)}
}

func (r *StatusRepository) Insert(ctx context.Context, check *domain.StatusCheck) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (r *StatusRepository) FindAll(ctx context.Context) ([]*domain.StatusCheck, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find status checks: %w", err)
	}
	defer cur.Close(ctx)

	checks := make([]*domain.StatusCheck, 0)
	if err := cur.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("decode status checks: %w", err)
	}
	return checks, nil
}
