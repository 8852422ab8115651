package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
)

func TestNormalizeExternalFixture_FullRecord(t *testing.T) {
	now := time.Date(2026, 10, 19, 16, 45, 0, 0, time.UTC)
	record := ExternalFixtureRecord{
		"id":                       "game-42",
		"date":                     "2026-10-24T13:00:00+11:00",
		"venue":                    map[string]any{"name": "Memorial Oval"},
		"home":                     true,
		"opponent":                 map[string]any{"name": "Eastern Districts"},
		"opposingTeamAbbreviation": "EDCC",
		"opposingTeamColor":        "#1D4ED8",
	}

	got := NormalizeExternalFixture(record, 0, "mens-1st-xi", now)
	if got.ID != "game-42" || got.TeamID != "mens-1st-xi" {
		t.Fatalf("unexpected identity: %+v", got)
	}
	if want := time.Date(2026, 10, 24, 2, 0, 0, 0, time.UTC); !got.Date.Equal(want) {
		t.Fatalf("unexpected date: %s", got.Date)
	}
	if got.Location != "Memorial Oval" || !got.IsHome || got.OpposingTeam != "Eastern Districts" {
		t.Fatalf("unexpected fields: %+v", got)
	}
	if got.OpposingTeamAbbreviation != "EDCC" || got.OpposingTeamColor != "#1D4ED8" {
		t.Fatalf("unexpected provider display fields: %+v", got)
	}
	if got.StatusOrScheduled() != fixture.StatusScheduled {
		t.Fatalf("unexpected status: %s", got.StatusOrScheduled())
	}
}

func TestNormalizeExternalFixture_Defaults(t *testing.T) {
	now := time.Date(2026, 10, 19, 16, 45, 0, 0, time.UTC)

	got := NormalizeExternalFixture(ExternalFixtureRecord{"date": "next saturday", "venue": 12}, 3, "lions", now)
	if !strings.HasPrefix(got.ID, "placeholder-") {
		t.Fatalf("expected placeholder id, got %q", got.ID)
	}
	if want := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC); !got.Date.Equal(want) {
		t.Fatalf("expected day sentinel, got %s", got.Date)
	}
	if got.Location != "TBD" || got.OpposingTeam != "TBD" || got.IsHome {
		t.Fatalf("unexpected fallbacks: %+v", got)
	}
	if got.OpposingTeamAbbreviation != "TB" {
		t.Fatalf("unexpected derived abbreviation: %q", got.OpposingTeamAbbreviation)
	}
	if got.OpposingTeamColor != fixture.DefaultOpposingTeamColor {
		t.Fatalf("unexpected default color: %q", got.OpposingTeamColor)
	}
	if got.Result == nil || got.Result.Status != fixture.StatusScheduled || got.Result.HomeScore != nil {
		t.Fatalf("unexpected result: %+v", got.Result)
	}
}

func TestNormalizeExternalFixture_ScheduleAndDerivedInitials(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	record := ExternalFixtureRecord{
		"schedule":     []any{map[string]any{"date": "2026-11-07", "time": "10:30"}},
		"location":     "Eastern Park",
		"opposingTeam": "Under 12s",
	}

	got := NormalizeExternalFixture(record, 0, "lions", now)
	if want := time.Date(2026, 11, 7, 10, 30, 0, 0, time.UTC); !got.Date.Equal(want) {
		t.Fatalf("unexpected schedule date: %s", got.Date)
	}
	if got.Location != "Eastern Park" || got.OpposingTeamAbbreviation != "U1" {
		t.Fatalf("unexpected fields: %+v", got)
	}
}

func TestNormalizeExternalFixture_PlaceholderIDsAreStableAndDistinct(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	record := ExternalFixtureRecord{"opponent": "Lions"}

	first := NormalizeExternalFixture(record, 0, "t1", now)
	again := NormalizeExternalFixture(record, 0, "t1", now)
	other := NormalizeExternalFixture(record, 1, "t1", now)

	if first.ID != again.ID {
		t.Fatalf("expected stable placeholder id, got %q and %q", first.ID, again.ID)
	}
	if first.ID == other.ID {
		t.Fatalf("expected distinct placeholder ids for distinct positions")
	}
}
