package profiles

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	repo := &Repository{
		collection: db.Collection("user_profiles"),
	}
	repo.ensureIndexes()
	return repo
}

func (r *Repository) ensureIndexes() {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	r.collection.Indexes().CreateOne(context.Background(), indexModel)
}

// GetByUserID returns the stored profile, or nil when the user has never
// been through a recompute pass. A missing profile is not an error; the
// feed falls back to recency/popularity ranking.
func (r *Repository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*InterestProfile, error) {
	var profile InterestProfile
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// BulkUpsert writes one full-record replace per profile in a single batch.
// Each profile is replaced whole, so readers see either the previous
// complete vector or the new one, never a mixture.
func (r *Repository) BulkUpsert(ctx context.Context, batch []InterestProfile) error {
	if len(batch) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(batch))
	for i := range batch {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"userId": batch[i].UserID}).
			SetReplacement(batch[i]).
			SetUpsert(true))
	}

	_, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	return err
}
