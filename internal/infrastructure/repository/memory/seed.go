package memory

import (
	"time"

	"github.com/riskibarqy/cricket-club/internal/domain/event"
	"github.com/riskibarqy/cricket-club/internal/domain/feed"
	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
	"github.com/riskibarqy/cricket-club/internal/domain/sponsor"
	"github.com/riskibarqy/cricket-club/internal/domain/team"
)

const (
	TeamIDMensFirstXI = "mens-1st-xi"
	TeamIDUnder12s    = "under-12s"
	TeamIDWinter      = "winter"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDMensFirstXI, Name: "Men's 1st XI", Division: "Premier Division"},
		{ID: "womens-1st-xi", Name: "Women's 1st XI", Abbreviation: "W1", Division: "Women's Premier"},
		{ID: TeamIDUnder12s, Name: "Under 12s", Division: "Junior Blue"},
		{ID: TeamIDWinter, Name: "Winter", Division: "Indoor Social"},
	}
}

// SeedFixtures anchors dates on now so the local store always has upcoming games.
func SeedFixtures(now time.Time) []fixture.Fixture {
	day := fixture.TruncateToDay(now)
	home, away := 142, 118
	return []fixture.Fixture{
		{
			ID: "fx-m1-001", TeamID: TeamIDMensFirstXI, Date: day.AddDate(0, 0, 5).Add(11 * time.Hour),
			Location: "Memorial Oval", IsHome: true, OpposingTeam: "Riverside Rovers",
			OpposingTeamColor: "#B91C1C", Result: &fixture.Result{Status: fixture.StatusScheduled},
		},
		{
			ID: "fx-m1-002", TeamID: TeamIDMensFirstXI, Date: day.AddDate(0, 0, 12).Add(11 * time.Hour),
			Location: "Eastern Park", OpposingTeam: "Eastern Districts", OpposingTeamAbbreviation: "EDCC",
			Result: &fixture.Result{Status: fixture.StatusScheduled},
		},
		{
			ID: "fx-m1-000", TeamID: TeamIDMensFirstXI, Date: day.AddDate(0, 0, -2).Add(11 * time.Hour),
			Location: "Memorial Oval", IsHome: true, OpposingTeam: "Hillside Hawks",
			Result: &fixture.Result{HomeScore: &home, AwayScore: &away, Status: fixture.StatusCompleted},
		},
		{
			ID: "fx-u12-001", TeamID: TeamIDUnder12s, Date: day.AddDate(0, 0, 6).Add(9 * time.Hour),
			Location: "Memorial Oval No. 2", IsHome: true, OpposingTeam: "Lions",
			Result: &fixture.Result{Status: fixture.StatusScheduled},
		},
	}
}

func SeedEvents(now time.Time) []event.Event {
	day := fixture.TruncateToDay(now)
	presentationEnd := day.AddDate(0, 1, 0).Add(23 * time.Hour)
	return []event.Event{
		{
			ID: "ev-working-bee", Title: "Pre-season working bee", Description: "Covers, sight screens and a sausage sizzle.",
			StartsAt: day.AddDate(0, 0, 3).Add(8 * time.Hour), Location: "Memorial Oval",
		},
		{
			ID: "ev-presentation", Title: "Presentation night", Description: "Season awards and club champion.",
			StartsAt: day.AddDate(0, 1, 0).Add(18 * time.Hour), EndsAt: &presentationEnd, Location: "Clubrooms",
		},
	}
}

func SeedSponsors() []sponsor.Sponsor {
	return []sponsor.Sponsor{
		{ID: "sp-hardware", Name: "Main Street Hardware", Tier: sponsor.TierGold, Rank: 1, WebsiteURL: "https://hardware.example.com"},
		{ID: "sp-pub", Name: "The Crease Hotel", Tier: sponsor.TierGold, Rank: 2, WebsiteURL: "https://crease.example.com"},
		{ID: "sp-bakery", Name: "Long Room Bakery", Tier: sponsor.TierSilver, Rank: 1},
		{ID: "sp-physio", Name: "Follow Through Physio", Tier: sponsor.TierPartner, Rank: 1},
	}
}

func SeedFeed(now time.Time) []feed.Post {
	return []feed.Post{
		{ID: "post-001", Author: "Club Secretary", Body: "Registrations for the new season are open.", PublishedAt: now.Add(-72 * time.Hour)},
		{ID: "post-002", Author: "Men's 1st XI", Body: "Big win at home on Saturday, thanks to everyone who came down.", PublishedAt: now.Add(-24 * time.Hour)},
	}
}
