package fixture

import "context"

// Repository exposes locally authored fixtures.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Fixture, error)
}
