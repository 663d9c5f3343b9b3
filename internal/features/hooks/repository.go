package hooks

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/hookedapp/hooked/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection("hooks"),
	}
}

// GetAll returns the full catalog. The ranking core snapshots this once per
// batch pass or per feed request.
func (r *Repository) GetAll(ctx context.Context) ([]Hook, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []Hook
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetByID returns one hook or apperrors.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Hook, error) {
	var hook Hook
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&hook)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &hook, nil
}

// List returns a page of the catalog sorted by creation time, newest first.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Hook, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "metadata.createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var results []Hook
	if err = cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// GetTrending returns hooks sorted by the precomputed decayed popularity.
func (r *Repository) GetTrending(ctx context.Context, limit int) ([]Hook, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "metadata.popularity", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []Hook
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// UpdatePopularity overwrites metadata.popularity for one hook. The write is
// a single field set, idempotent and safe to re-run at any cadence.
func (r *Repository) UpdatePopularity(ctx context.Context, id primitive.ObjectID, score float64) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"metadata.popularity": score}},
	)
	return err
}

// IncrementCounter bumps one engagement counter (viewCount, likeCount,
// saveCount or shareCount). Counters are monotonically non-decreasing.
func (r *Repository) IncrementCounter(ctx context.Context, id primitive.ObjectID, counter string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"metadata." + counter: 1}},
	)
	return err
}
