package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/cricket-club/internal/domain/event"
	"github.com/riskibarqy/cricket-club/internal/domain/feed"
	"github.com/riskibarqy/cricket-club/internal/domain/sponsor"
)

type EventRepository struct {
	mu     sync.RWMutex
	events []event.Event
}

func NewEventRepository(events []event.Event) *EventRepository {
	return &EventRepository{events: append([]event.Event(nil), events...)}
}

func (r *EventRepository) ListFrom(_ context.Context, from time.Time) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.events))
	for _, item := range r.events {
		if !item.StartsAt.Before(from) {
			out = append(out, item)
		}
	}
	return out, nil
}

type SponsorRepository struct {
	mu       sync.RWMutex
	sponsors []sponsor.Sponsor
}

func NewSponsorRepository(sponsors []sponsor.Sponsor) *SponsorRepository {
	return &SponsorRepository{sponsors: append([]sponsor.Sponsor(nil), sponsors...)}
}

func (r *SponsorRepository) List(_ context.Context) ([]sponsor.Sponsor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sponsor.Sponsor, 0, len(r.sponsors))
	out = append(out, r.sponsors...)
	return out, nil
}

type FeedRepository struct {
	mu    sync.RWMutex
	posts []feed.Post
}

func NewFeedRepository(posts []feed.Post) *FeedRepository {
	return &FeedRepository{posts: append([]feed.Post(nil), posts...)}
}

func (r *FeedRepository) ListLatest(_ context.Context, limit int) ([]feed.Post, error) {
	r.mu.RLock()
	out := make([]feed.Post, 0, len(r.posts))
	out = append(out, r.posts...)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
