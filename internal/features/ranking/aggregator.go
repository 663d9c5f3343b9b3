package ranking

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/features/interactions"
)

// GroupByUser buckets the full event log per user, preserving log order
// within each bucket. Users absent from the log are simply absent from the
// result.
func GroupByUser(events []interactions.Event) map[primitive.ObjectID][]interactions.Event {
	grouped := make(map[primitive.ObjectID][]interactions.Event)
	for _, event := range events {
		grouped[event.UserID] = append(grouped[event.UserID], event)
	}
	return grouped
}
