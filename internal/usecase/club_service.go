package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/cricket-club/internal/domain/event"
	"github.com/riskibarqy/cricket-club/internal/domain/feed"
	"github.com/riskibarqy/cricket-club/internal/domain/sponsor"
)

const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 50
)

// ClubService serves the read-only club content pages.
type ClubService struct {
	eventRepo   event.Repository
	sponsorRepo sponsor.Repository
	feedRepo    feed.Repository
}

func NewClubService(eventRepo event.Repository, sponsorRepo sponsor.Repository, feedRepo feed.Repository) *ClubService {
	return &ClubService{
		eventRepo:   eventRepo,
		sponsorRepo: sponsorRepo,
		feedRepo:    feedRepo,
	}
}

func (s *ClubService) ListUpcomingEvents(ctx context.Context, from time.Time) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.ListUpcomingEvents")
	defer span.End()

	items, err := s.eventRepo.ListFrom(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]event.Event, 0, len(items))
	for _, item := range items {
		if item.StartsAt.Before(from) {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (s *ClubService) ListSponsors(ctx context.Context) ([]sponsor.Sponsor, error) {
	items, err := s.sponsorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		wi, wj := sponsor.TierWeight(items[i].Tier), sponsor.TierWeight(items[j].Tier)
		if wi != wj {
			return wi >= 0 && (wj < 0 || wi < wj)
		}
		return items[i].Rank < items[j].Rank
	})
	return items, nil
}

func (s *ClubService) ListFeed(ctx context.Context, limit int) ([]feed.Post, error) {
	limit = ClampFeedLimit(limit)

	items, err := s.feedRepo.ListLatest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list feed posts: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].PublishedAt.After(items[j].PublishedAt) })
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// ClampFeedLimit maps a requested page size into [1, MaxFeedLimit]; zero or less means the default.
func ClampFeedLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultFeedLimit
	case limit > MaxFeedLimit:
		return MaxFeedLimit
	default:
		return limit
	}
}
