package team

import (
	"context"

	"github.com/riskibarqy/kickoff-api/internal/domain/player"
)

// Repository exposes team read operations.
type Repository interface {
	Team(ctx context.Context, teamID int64) (Info, bool, error)
	Squad(ctx context.Context, teamID int64) (Squad, bool, error)
	TeamStatistics(ctx context.Context, teamID, leagueID int64, season int) (SeasonStats, bool, error)
	TeamTransfers(ctx context.Context, teamID int64) ([]player.TransferHistory, error)
	TeamLeagues(ctx context.Context, teamID int64, season int) ([]Competition, error)
}
