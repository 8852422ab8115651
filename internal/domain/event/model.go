package event

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Event is a club calendar entry such as a presentation night or working bee.
type Event struct {
	ID          string
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      *time.Time
	Location    string
	ImageURL    string
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("event title is required")
	}
	if e.StartsAt.IsZero() {
		return fmt.Errorf("event start is required")
	}
	if e.EndsAt != nil && e.EndsAt.Before(e.StartsAt) {
		return fmt.Errorf("event end must not be before start")
	}

	return nil
}

type Repository interface {
	ListFrom(ctx context.Context, from time.Time) ([]Event, error)
}
