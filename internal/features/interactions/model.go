package interactions

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixed action vocabulary for interaction events.
const (
	ActionView  = "view"
	ActionClick = "click"
	ActionLike  = "like"
	ActionSave  = "save"
	ActionShare = "share"
)

// Event is one append-only interaction record. ImplicitTags is a snapshot of
// the hook's topic and related topics taken at log time, so later edits to
// the hook never rewrite history.
type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	HookID       primitive.ObjectID `bson:"hookId" json:"hookId"`
	Action       string             `bson:"action" json:"action"`
	Duration     float64            `bson:"duration" json:"duration"` // seconds, view actions only
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
	ImplicitTags []string           `bson:"implicitTags,omitempty" json:"implicitTags,omitempty"`
}

// LogRequest is the payload for POST /interactions/log.
type LogRequest struct {
	HookID   string  `json:"hookId" binding:"required"`
	Action   string  `json:"action" binding:"required"`
	Duration float64 `json:"duration"`
}
