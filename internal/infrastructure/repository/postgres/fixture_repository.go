package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-club/internal/domain/fixture"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListByTeam(ctx context.Context, teamID string) ([]fixture.Fixture, error) {
	const query = `
SELECT public_id, team_public_id, kickoff_at, location, is_home, opposing_team,
       opposing_team_abbreviation, opposing_team_color, home_score, away_score, status
FROM fixtures
WHERE team_public_id = $1 AND deleted_at IS NULL
ORDER BY kickoff_at, id`

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, fmt.Errorf("select fixtures by team: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	status, err := fixture.ParseStatus(m.Status)
	if err != nil {
		status = fixture.StatusScheduled
	}
	return fixture.Fixture{
		ID:                       m.ID,
		TeamID:                   m.TeamID,
		Date:                     m.KickoffAt.UTC(),
		Location:                 m.Location,
		IsHome:                   m.IsHome,
		OpposingTeam:             m.OpposingTeam,
		OpposingTeamAbbreviation: m.OpposingTeamAbbreviation.String,
		OpposingTeamColor:        m.OpposingTeamColor.String,
		Result: &fixture.Result{
			HomeScore: nullIntToPtr(m.HomeScore),
			AwayScore: nullIntToPtr(m.AwayScore),
			Status:    status,
		},
	}
}
