package feed

import (
	"context"
	"time"
)

// Post is a single entry in the club social feed.
type Post struct {
	ID          string
	Author      string
	Body        string
	ImageURL    string
	LinkURL     string
	PublishedAt time.Time
}

type Repository interface {
	ListLatest(ctx context.Context, limit int) ([]Post, error)
}
