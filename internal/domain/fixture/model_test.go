package fixture

import (
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"":            StatusScheduled,
		"Scheduled":   StatusScheduled,
		"in_progress": StatusInProgress,
		"LIVE":        StatusInProgress,
		"finished":    StatusCompleted,
		"postponed":   StatusPostponed,
		"canceled":    StatusCancelled,
	}
	for raw, want := range cases {
		got, err := ParseStatus(raw)
		if err != nil {
			t.Fatalf("ParseStatus(%q) unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", raw, got, want)
		}
	}

	if _, err := ParseStatus("rained off"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestFixtureValidate(t *testing.T) {
	valid := Fixture{TeamID: "t1", Date: time.Date(2026, 10, 24, 10, 0, 0, 0, time.UTC)}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noDate := valid
	noDate.Date = time.Time{}
	if err := noDate.Validate(); err == nil {
		t.Fatalf("expected error for zero date")
	}

	badStatus := valid
	badStatus.Result = &Result{Status: "unknown"}
	if err := badStatus.Validate(); err == nil {
		t.Fatalf("expected error for invalid status")
	}
}

func TestMaterialize(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 42, 0, 0, time.UTC)
	items, err := Materialize(DemoTemplates(), "demo", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(items))
	}

	want := time.Date(2026, 10, 26, 10, 0, 0, 0, time.UTC)
	if !items[0].Date.Equal(want) {
		t.Fatalf("unexpected first date: %s", items[0].Date)
	}
	for _, item := range items {
		if item.TeamID != "demo" {
			t.Fatalf("unexpected team id: %s", item.TeamID)
		}
		if item.StatusOrScheduled() != StatusScheduled {
			t.Fatalf("unexpected status: %s", item.StatusOrScheduled())
		}
	}

	if _, err := Materialize([]Template{{Kickoff: "25:99"}}, "demo", now); err == nil {
		t.Fatalf("expected invalid kickoff error")
	}
}
