package fixture

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusPostponed  Status = "postponed"
	StatusCancelled  Status = "cancelled"
)

// DefaultOpposingTeamColor is used when neither the store nor the provider carries one.
const DefaultOpposingTeamColor = "#64748B"

// Fixture represents one scheduled match between a club team and an opponent.
type Fixture struct {
	ID                       string
	TeamID                   string
	Date                     time.Time
	Location                 string
	IsHome                   bool
	OpposingTeam             string
	OpposingTeamAbbreviation string
	OpposingTeamColor        string
	Result                   *Result
}

type Result struct {
	HomeScore *int
	AwayScore *int
	Status    Status
}

func (f Fixture) Validate() error {
	if strings.TrimSpace(f.TeamID) == "" {
		return fmt.Errorf("fixture team id is required")
	}
	if f.Date.IsZero() {
		return fmt.Errorf("fixture date is required")
	}
	if f.Result != nil && !f.Result.Status.Valid() {
		return fmt.Errorf("invalid fixture status %q", f.Result.Status)
	}

	return nil
}

// StatusOrScheduled reports the result status, treating a missing result as scheduled.
func (f Fixture) StatusOrScheduled() Status {
	if f.Result == nil || f.Result.Status == "" {
		return StatusScheduled
	}
	return f.Result.Status
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusPostponed, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(value string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	normalized = strings.ReplaceAll(normalized, " ", "-")

	switch normalized {
	case "", "scheduled", "upcoming", "not-started":
		return StatusScheduled, nil
	case "in-progress", "inprogress", "live":
		return StatusInProgress, nil
	case "completed", "complete", "finished", "final":
		return StatusCompleted, nil
	case "postponed":
		return StatusPostponed, nil
	case "cancelled", "canceled", "abandoned":
		return StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown fixture status %q", value)
	}
}
