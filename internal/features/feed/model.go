package feed

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedItem is one served hook with its blended ranking score.
type FeedItem struct {
	ID               primitive.ObjectID `json:"id"`
	Headline         string             `json:"headline"`
	HookText         string             `json:"hookText"`
	Category         string             `json:"category"`
	Tags             []string           `json:"tags"`
	ImageDescription string             `json:"imageDescription,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	Popularity       float64            `json:"popularity"`
	Score            float64            `json:"score"`
}

// FeedMeta tells the client how the feed was assembled.
type FeedMeta struct {
	Personalized bool    `json:"personalized"`
	EmptyReason  *string `json:"emptyReason"`
}

// FeedResponse is the payload of GET /feed.
type FeedResponse struct {
	Items []FeedItem `json:"items"`
	Meta  FeedMeta   `json:"meta"`
}

// TrendingItem is one hook in the trending list.
type TrendingItem struct {
	ID         primitive.ObjectID `json:"id"`
	Headline   string             `json:"headline"`
	HookText   string             `json:"hookText"`
	Category   string             `json:"category"`
	Tags       []string           `json:"tags"`
	CreatedAt  time.Time          `json:"createdAt"`
	Popularity float64            `json:"popularity"`
}

// TrendingResponse is the payload of GET /feed/trending.
type TrendingResponse struct {
	Items []TrendingItem `json:"items"`
}
