package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches wrapped pq unique violation", func(t *testing.T) {
		err := fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "42P01"}) {
			t.Fatalf("expected false for undefined table")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to match")
	}
}

func TestFixtureTableModelToDomain(t *testing.T) {
	row := fixtureTableModel{
		ID:           "fx-1",
		TeamID:       "mens-1st-xi",
		KickoffAt:    time.Date(2026, 10, 24, 10, 0, 0, 0, time.FixedZone("AEDT", 11*3600)),
		OpposingTeam: "Riverside Rovers",
		HomeScore:    sql.NullInt64{Int64: 154, Valid: true},
		Status:       "rained off",
	}

	got := row.toDomain()
	if got.Date.Location() != time.UTC {
		t.Fatalf("expected UTC date, got %s", got.Date.Location())
	}
	if got.Result.HomeScore == nil || *got.Result.HomeScore != 154 || got.Result.AwayScore != nil {
		t.Fatalf("unexpected scores: %+v", got.Result)
	}
	if got.Result.Status != fixture.StatusScheduled {
		t.Fatalf("expected unknown status to read as scheduled, got %s", got.Result.Status)
	}
}
