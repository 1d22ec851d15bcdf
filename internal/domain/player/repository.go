package player

import "context"

// LeaderKind selects one of a league's player leaderboards.
type LeaderKind string

const (
	LeaderTopScorers     LeaderKind = "topscorers"
	LeaderTopAssists     LeaderKind = "topassists"
	LeaderTopYellowCards LeaderKind = "topyellowcards"
	LeaderTopRedCards    LeaderKind = "topredcards"
)

var LeaderKinds = []LeaderKind{LeaderTopScorers, LeaderTopAssists, LeaderTopYellowCards, LeaderTopRedCards}

// Repository exposes player read operations. A zero season lets the
// provider pick its default season.
type Repository interface {
	Player(ctx context.Context, playerID int64, season int) (Player, bool, error)
	PlayerTransfers(ctx context.Context, playerID int64) ([]Transfer, error)
	Trophies(ctx context.Context, playerID int64) ([]Trophy, error)
	Sidelined(ctx context.Context, playerID int64) ([]Sidelined, error)
	Leaders(ctx context.Context, kind LeaderKind, leagueID int64, season int) ([]Player, error)
}
