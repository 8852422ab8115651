package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
	"github.com/riskibarqy/cricket-club/internal/domain/subscription"
)

func TestFixtureRepository_ListByTeamReturnsCopy(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	repo := NewFixtureRepository(SeedFixtures(now))

	items, err := repo.ListByTeam(context.Background(), TeamIDMensFirstXI)
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(items))
	}
	items[0].Location = "mutated"

	again, _ := repo.ListByTeam(context.Background(), TeamIDMensFirstXI)
	if again[0].Location == "mutated" {
		t.Fatalf("repository exposed internal slice")
	}

	empty, _ := repo.ListByTeam(context.Background(), TeamIDWinter)
	if len(empty) != 0 {
		t.Fatalf("expected no winter fixtures, got %d", len(empty))
	}
}

func TestFixtureRepository_OrdersByKickoff(t *testing.T) {
	base := time.Date(2026, 11, 7, 13, 0, 0, 0, time.UTC)
	repo := NewFixtureRepository([]fixture.Fixture{
		{ID: "c", TeamID: "lions", Date: base.AddDate(0, 0, 14)},
		{ID: "b", TeamID: "lions", Date: base},
		{ID: "a", TeamID: "lions", Date: base},
		{ID: "z", TeamID: "tigers", Date: base.AddDate(0, 0, -7)},
	})

	items, err := repo.ListByTeam(context.Background(), "lions")
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	got := make([]string, 0, len(items))
	for _, item := range items {
		got = append(got, item.ID)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestSubscriptionRepository_UpsertByToken(t *testing.T) {
	ctx := context.Background()
	repo := NewSubscriptionRepository()

	created := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	first := subscription.Subscription{ID: "s1", UserID: "u1", Token: "tok", Topics: []string{"news"}, CreatedAt: created}
	if _, err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	updated := first
	updated.ID = "s2"
	updated.UserID = "u2"
	updated.Topics = []string{"fixtures", "team:lions"}
	updated.CreatedAt = created.AddDate(0, 0, 5)
	stored, err := repo.Upsert(ctx, updated)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if stored.ID != "s1" || !stored.CreatedAt.Equal(created) {
		t.Fatalf("expected stored id and created_at to win, got %+v", stored)
	}
	if _, ok, _ := repo.GetByID(ctx, "s2"); ok {
		t.Fatalf("incoming id must not be stored for an existing token")
	}

	mine, _ := repo.ListByUser(ctx, "u1")
	if len(mine) != 0 {
		t.Fatalf("expected token to move to u2, got %+v", mine)
	}
	byTopic, _ := repo.ListByTopic(ctx, "team:lions")
	if len(byTopic) != 1 || byTopic[0].UserID != "u2" {
		t.Fatalf("unexpected topic subscribers: %+v", byTopic)
	}

	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.GetByToken(ctx, "tok"); ok {
		t.Fatalf("expected token index to be cleared")
	}
}
