package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/cricket-club/internal/domain/feed"
	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
	"github.com/riskibarqy/cricket-club/internal/domain/sponsor"
	"github.com/riskibarqy/cricket-club/internal/domain/team"
	basecache "github.com/riskibarqy/cricket-club/internal/platform/cache"
)

// Read-through decorators for the rarely changing club data. Callers always
// receive their own copy of cached slices.

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, "team:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, "team:id:"+teamID, func(ctx context.Context) (lookup[team.Team], error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		return lookup[team.Team]{value: item, exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return cached.value, cached.exists, nil
}

type FixtureRepository struct {
	next  fixture.Repository
	cache *basecache.Store
}

func NewFixtureRepository(next fixture.Repository, cache *basecache.Store) *FixtureRepository {
	return &FixtureRepository{next: next, cache: cache}
}

func (r *FixtureRepository) ListByTeam(ctx context.Context, teamID string) ([]fixture.Fixture, error) {
	items, err := basecache.Load(ctx, r.cache, "fixture:team:"+teamID, func(ctx context.Context) ([]fixture.Fixture, error) {
		return r.next.ListByTeam(ctx, teamID)
	})
	if err != nil {
		return nil, err
	}
	return append([]fixture.Fixture(nil), items...), nil
}

type SponsorRepository struct {
	next  sponsor.Repository
	cache *basecache.Store
}

func NewSponsorRepository(next sponsor.Repository, cache *basecache.Store) *SponsorRepository {
	return &SponsorRepository{next: next, cache: cache}
}

func (r *SponsorRepository) List(ctx context.Context) ([]sponsor.Sponsor, error) {
	items, err := basecache.Load(ctx, r.cache, "sponsor:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]sponsor.Sponsor(nil), items...), nil
}

type FeedRepository struct {
	next  feed.Repository
	cache *basecache.Store
}

func NewFeedRepository(next feed.Repository, cache *basecache.Store) *FeedRepository {
	return &FeedRepository{next: next, cache: cache}
}

func (r *FeedRepository) ListLatest(ctx context.Context, limit int) ([]feed.Post, error) {
	items, err := basecache.Load(ctx, r.cache, "feed:latest:"+strconv.Itoa(limit), func(ctx context.Context) ([]feed.Post, error) {
		return r.next.ListLatest(ctx, limit)
	})
	if err != nil {
		return nil, err
	}
	return append([]feed.Post(nil), items...), nil
}

type lookup[T any] struct {
	value  T
	exists bool
}
