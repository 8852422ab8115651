package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-club/internal/domain/event"
	"github.com/riskibarqy/cricket-club/internal/domain/feed"
	"github.com/riskibarqy/cricket-club/internal/domain/sponsor"
)

type fakeEvents []event.Event

func (f fakeEvents) ListFrom(context.Context, time.Time) ([]event.Event, error) {
	return append([]event.Event(nil), f...), nil
}

type fakeSponsors []sponsor.Sponsor

func (f fakeSponsors) List(context.Context) ([]sponsor.Sponsor, error) {
	return append([]sponsor.Sponsor(nil), f...), nil
}

type fakeFeed struct {
	posts     []feed.Post
	lastLimit int
}

func (f *fakeFeed) ListLatest(_ context.Context, limit int) ([]feed.Post, error) {
	f.lastLimit = limit
	return append([]feed.Post(nil), f.posts...), nil
}

func TestClubService_ListUpcomingEvents(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	events := fakeEvents{
		{ID: "presentation", Title: "Presentation night", StartsAt: from.AddDate(0, 1, 0)},
		{ID: "past", Title: "Season launch", StartsAt: from.AddDate(0, 0, -3)},
		{ID: "working-bee", Title: "Working bee", StartsAt: from.AddDate(0, 0, 4)},
	}

	got, err := NewClubService(events, nil, nil).ListUpcomingEvents(context.Background(), from)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 2 || got[0].ID != "working-bee" || got[1].ID != "presentation" {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestClubService_ListSponsors_OrdersByTierThenRank(t *testing.T) {
	t.Parallel()

	sponsors := fakeSponsors{
		{ID: "bakery", Tier: sponsor.TierBronze, Rank: 1},
		{ID: "pub", Tier: sponsor.TierGold, Rank: 2},
		{ID: "hardware", Tier: sponsor.TierGold, Rank: 1},
		{ID: "mystery", Tier: "platinum", Rank: 0},
		{ID: "physio", Tier: sponsor.TierPartner, Rank: 1},
	}

	got, err := NewClubService(nil, sponsors, nil).ListSponsors(context.Background())
	if err != nil {
		t.Fatalf("list sponsors: %v", err)
	}
	want := []string{"hardware", "pub", "bakery", "physio", "mystery"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s want %s", i, got[i].ID, id)
		}
	}
}

func TestClubService_ListFeed_ClampsLimit(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	repo := &fakeFeed{posts: []feed.Post{
		{ID: "old", PublishedAt: base.Add(-time.Hour)},
		{ID: "new", PublishedAt: base},
	}}
	service := NewClubService(nil, nil, repo)

	got, err := service.ListFeed(context.Background(), 0)
	if err != nil {
		t.Fatalf("list feed: %v", err)
	}
	if repo.lastLimit != DefaultFeedLimit {
		t.Fatalf("expected default limit, got %d", repo.lastLimit)
	}
	if got[0].ID != "new" {
		t.Fatalf("expected newest first, got %+v", got)
	}

	if _, err := service.ListFeed(context.Background(), 500); err != nil {
		t.Fatalf("list feed: %v", err)
	}
	if repo.lastLimit != MaxFeedLimit {
		t.Fatalf("expected max limit, got %d", repo.lastLimit)
	}

	got, err = service.ListFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("list feed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one post, got %d", len(got))
	}
}
