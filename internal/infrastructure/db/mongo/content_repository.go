package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brightpixel/website-api/internal/core/domain"
)

const collectionContent = "content"

// ContentRepository implements ports.ContentRepository using MongoDB.
// The collection holds at most one document, keyed by type = "website".
type ContentRepository struct {
	col *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{col: db.Collection(collectionContent)}
}

func (r *ContentRepository) Find(ctx context.Context) (domain.ContentDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var doc domain.ContentDocument
	err := r.col.FindOne(ctx, bson.M{"type": domain.ContentType}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContentNotFound
		}
		return nil, fmt.Errorf("find content: %w", err)
	}
	return doc, nil
}

// UpsertSection sets one section on the singleton document in a single
// atomic write, creating the document on first use. Concurrent updates to
// different sections do not interfere; same-section updates are
// last-write-wins.
func (r *ContentRepository) UpsertSection(ctx context.Context, section string, data any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"type": domain.ContentType}
	update := bson.M{"$set": bson.M{section: data}}

	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert content section: %w", err)
	}
	return nil
}
