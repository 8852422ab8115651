package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
)

// FixtureRepository keeps each team's fixtures ordered by kickoff, matching
// the order the postgres store returns them in.
type FixtureRepository struct {
	mu     sync.RWMutex
	byTeam map[string][]fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	byTeam := make(map[string][]fixture.Fixture)
	for _, item := range fixtures {
		byTeam[item.TeamID] = append(byTeam[item.TeamID], item)
	}
	for teamID := range byTeam {
		slices.SortStableFunc(byTeam[teamID], compareKickoff)
	}

	return &FixtureRepository{byTeam: byTeam}
}

func (r *FixtureRepository) ListByTeam(_ context.Context, teamID string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.byTeam[teamID]), nil
}

func compareKickoff(a, b fixture.Fixture) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if a.ID < b.ID {
		return -1
	}
	if a.ID > b.ID {
		return 1
	}
	return 0
}
