package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brightpixel/website-api/internal/core/domain"
)

const collectionContacts = "contact_submissions"

// ContactRepository implements ports.ContactRepository using MongoDB.
type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection(collectionContacts)}
}

func (r *ContactRepository) Insert(ctx context.Context, submission *domain.ContactSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, submission); err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// FindAll returns every submission sorted by timestamp descending. A full
// scan, not paginated.
func (r *ContactRepository) FindAll(ctx context.Context) ([]*domain.ContactSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find contact submissions: %w", err)
	}
	defer cur.Close(ctx)

	submissions := make([]*domain.ContactSubmission, 0)
	if err := cur.All(ctx, &submissions); err != nil {
		return nil, fmt.Errorf("decode contact submissions: %w", err)
	}
	return submissions, nil
}

func (r *ContactRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete contact submission: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

// EnsureIndexes creates indexes for the newest-first listing and id deletes.
func (r *ContactRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
