package match

import "context"

// Repository exposes the per-fixture detail sections.
type Repository interface {
	Lineups(ctx context.Context, fixtureID int64) ([]Lineup, error)
	FixtureStatistics(ctx context.Context, fixtureID int64) ([]TeamStatistics, error)
	FixtureEvents(ctx context.Context, fixtureID int64) ([]Event, error)
	FixturePlayers(ctx context.Context, fixtureID int64) ([]TeamPlayers, error)
	Prediction(ctx context.Context, fixtureID int64) (Prediction, bool, error)
	Odds(ctx context.Context, fixtureID int64) (Odds, bool, error)
}
