package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cricket-club/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
	byID  map[string]int
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byID := make(map[string]int, len(teams))
	for idx, item := range teams {
		byID[item.ID] = idx
	}

	return &TeamRepository{teams: append([]team.Team(nil), teams...), byID: byID}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[teamID]
	if !ok {
		return team.Team{}, false, nil
	}
	return r.teams[idx], true, nil
}
