package feed

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hookedapp/hooked/internal/config"
	"github.com/hookedapp/hooked/internal/features/hooks"
	"github.com/hookedapp/hooked/internal/features/profiles"
	"github.com/hookedapp/hooked/internal/features/ranking"
)

// ProfileSource is the point lookup the feed needs from the profile store.
type ProfileSource interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*profiles.InterestProfile, error)
}

// CatalogSource is the slice of the hooks store the feed reads.
type CatalogSource interface {
	GetAll(ctx context.Context) ([]hooks.Hook, error)
	GetTrending(ctx context.Context, limit int) ([]hooks.Hook, error)
}

type Service struct {
	catalog  CatalogSource
	profiles ProfileSource
	scorer   ranking.CandidateScorer
	cfg      config.RankingConfig
}

func NewService(catalog CatalogSource, profileRepo ProfileSource, scorer ranking.CandidateScorer, cfg config.RankingConfig) *Service {
	return &Service{
		catalog:  catalog,
		profiles: profileRepo,
		scorer:   scorer,
		cfg:      cfg,
	}
}

// GetPersonalizedFeed scores the catalog against the user's stored interest
// vector and diversifies the top candidates. A user without a profile gets
// an empty vector: ranking degrades to pure recency/popularity/exploration,
// which is the intended cold-start behavior, not an error.
func (s *Service) GetPersonalizedFeed(ctx context.Context, userID primitive.ObjectID, limit int) (*FeedResponse, error) {
	if limit <= 0 {
		limit = s.cfg.FeedSize
	}

	now := time.Now().UTC()

	catalog, err := s.catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		reason := "EMPTY_CATALOG"
		return &FeedResponse{Items: []FeedItem{}, Meta: FeedMeta{EmptyReason: &reason}}, nil
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var vector map[string]float64
	personalized := false
	if profile != nil && len(profile.InterestVector) > 0 {
		vector = profile.InterestVector
		personalized = true
	}

	scored := s.scorer.Score(now, vector, catalog)
	selected := ranking.SelectDiverse(scored, limit, s.cfg.MMRLambda, s.cfg.PoolFactor)

	items := make([]FeedItem, 0, len(selected))
	for _, candidate := range selected {
		items = append(items, toFeedItem(candidate))
	}

	return &FeedResponse{
		Items: items,
		Meta:  FeedMeta{Personalized: personalized},
	}, nil
}

// GetTrending returns the decayed-popularity ranking truncated to count.
// No personalization; popularity values may lag a refresh in flight.
func (s *Service) GetTrending(ctx context.Context, count int) (*TrendingResponse, error) {
	if count <= 0 {
		count = s.cfg.TrendingSize
	}

	trending, err := s.catalog.GetTrending(ctx, count)
	if err != nil {
		return nil, err
	}

	items := make([]TrendingItem, 0, len(trending))
	for _, hook := range trending {
		items = append(items, TrendingItem{
			ID:         hook.ID,
			Headline:   hook.Headline,
			HookText:   hook.HookText,
			Category:   hook.Category,
			Tags:       hook.Tags,
			CreatedAt:  hook.Metadata.CreatedAt,
			Popularity: hook.Metadata.Popularity,
		})
	}

	return &TrendingResponse{Items: items}, nil
}

func toFeedItem(candidate ranking.ScoredHook) FeedItem {
	hook := candidate.Hook
	return FeedItem{
		ID:               hook.ID,
		Headline:         hook.Headline,
		HookText:         hook.HookText,
		Category:         hook.Category,
		Tags:             hook.Tags,
		ImageDescription: hook.ImageDescription,
		CreatedAt:        hook.Metadata.CreatedAt,
		Popularity:       hook.Metadata.Popularity,
		Score:            candidate.Score,
	}
}
