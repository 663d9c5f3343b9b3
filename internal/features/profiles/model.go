package profiles

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InterestProfile is one user's compact interest model: a mapping from tag
// to accumulated affinity weight. Tags absent from the vector are implicitly
// weight zero. The profile is always the output of one complete
// recomputation pass; it is replaced whole, never merged.
type InterestProfile struct {
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	InterestVector map[string]float64 `bson:"interestVector" json:"interestVector"`
	LastUpdated    time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}
