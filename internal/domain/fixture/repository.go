package fixture

import "context"

// Repository exposes fixture read operations. Lookups by id report absence
// through the bool instead of an error.
type Repository interface {
	LiveFixtures(ctx context.Context) ([]Fixture, error)
	Fixture(ctx context.Context, fixtureID int64) (Fixture, bool, error)
	FixturesByDate(ctx context.Context, date string) ([]Fixture, error)
	FixturesByLeague(ctx context.Context, leagueID int64, season int) ([]Fixture, error)
	FixturesByTeam(ctx context.Context, teamID int64, season int) ([]Fixture, error)
	HeadToHead(ctx context.Context, teamA, teamB int64, last int) ([]Fixture, error)
}
