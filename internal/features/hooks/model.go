package hooks

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SourceInfo carries the provenance the content generator attached to a hook.
type SourceInfo struct {
	SonarTopicID string   `bson:"sonarTopicId" json:"sonarTopicId"`
	Citations    []string `bson:"citations,omitempty" json:"citations,omitempty"`
}

// Metadata holds the engagement counters and the popularity score computed
// by the ranking core. CreatedAt decodes to the zero value when the stored
// timestamp is missing or unparsable; downstream scorers treat that as a
// per-record failure rather than guessing.
type Metadata struct {
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	ViewCount  int       `bson:"viewCount" json:"viewCount"`
	LikeCount  int       `bson:"likeCount" json:"likeCount"`
	SaveCount  int       `bson:"saveCount" json:"saveCount"`
	ShareCount int       `bson:"shareCount" json:"shareCount"`
	Popularity float64   `bson:"popularity" json:"popularity"`
}

// Hook is one unit of feed content. The ranking core only reads its ID,
// tags and metadata; the text fields exist for the serving layer.
type Hook struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Headline         string             `bson:"headline" json:"headline"`
	HookText         string             `bson:"hookText" json:"hookText"`
	ExpandedContent  string             `bson:"expandedContent,omitempty" json:"expandedContent,omitempty"`
	Category         string             `bson:"category" json:"category"`
	Tags             []string           `bson:"tags" json:"tags"`
	RelatedTopics    []string           `bson:"relatedTopics,omitempty" json:"relatedTopics,omitempty"`
	ImageDescription string             `bson:"imageDescription,omitempty" json:"imageDescription,omitempty"`
	SourceInfo       SourceInfo         `bson:"sourceInfo" json:"sourceInfo"`
	Metadata         Metadata           `bson:"metadata" json:"metadata"`
}

// ImplicitTags returns the tag snapshot logged alongside an interaction:
// the hook's source topic plus its related topics.
func (h *Hook) ImplicitTags() []string {
	tags := make([]string, 0, len(h.RelatedTopics)+1)
	if h.SourceInfo.SonarTopicID != "" {
		tags = append(tags, h.SourceInfo.SonarTopicID)
	}
	tags = append(tags, h.RelatedTopics...)
	return tags
}
