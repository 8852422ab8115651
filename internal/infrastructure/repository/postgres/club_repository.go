package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-club/internal/domain/event"
	"github.com/riskibarqy/cricket-club/internal/domain/feed"
	"github.com/riskibarqy/cricket-club/internal/domain/sponsor"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListFrom(ctx context.Context, from time.Time) ([]event.Event, error) {
	const query = `
SELECT public_id, title, description, starts_at, ends_at, location, image_url
FROM events
WHERE starts_at >= $1 AND deleted_at IS NULL
ORDER BY starts_at, id`

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, from.UTC()); err != nil {
		return nil, fmt.Errorf("select events from: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		item := event.Event{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			StartsAt:    row.StartsAt.UTC(),
			Location:    row.Location,
			ImageURL:    row.ImageURL.String,
		}
		if row.EndsAt.Valid {
			endsAt := row.EndsAt.Time.UTC()
			item.EndsAt = &endsAt
		}
		out = append(out, item)
	}
	return out, nil
}

type SponsorRepository struct {
	db *sqlx.DB
}

func NewSponsorRepository(db *sqlx.DB) *SponsorRepository {
	return &SponsorRepository{db: db}
}

func (r *SponsorRepository) List(ctx context.Context) ([]sponsor.Sponsor, error) {
	const query = `
SELECT public_id, name, tier, website_url, logo_url, rank
FROM sponsors
WHERE deleted_at IS NULL
ORDER BY rank, name`

	var rows []sponsorTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select sponsors: %w", err)
	}

	out := make([]sponsor.Sponsor, 0, len(rows))
	for _, row := range rows {
		out = append(out, sponsor.Sponsor{
			ID:         row.ID,
			Name:       row.Name,
			Tier:       sponsor.Tier(row.Tier),
			WebsiteURL: row.WebsiteURL.String,
			LogoURL:    row.LogoURL.String,
			Rank:       row.Rank,
		})
	}
	return out, nil
}

type FeedRepository struct {
	db *sqlx.DB
}

func NewFeedRepository(db *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

func (r *FeedRepository) ListLatest(ctx context.Context, limit int) ([]feed.Post, error) {
	const query = `
SELECT public_id, author, body, image_url, link_url, published_at
FROM feed_posts
WHERE deleted_at IS NULL
ORDER BY published_at DESC, id DESC
LIMIT $1`

	var rows []feedPostTableModel
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("select feed posts: %w", err)
	}

	out := make([]feed.Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, feed.Post{
			ID:          row.ID,
			Author:      row.Author,
			Body:        row.Body,
			ImageURL:    row.ImageURL.String,
			LinkURL:     row.LinkURL.String,
			PublishedAt: row.PublishedAt.UTC(),
		})
	}
	return out, nil
}
