package league

import "context"

// Repository exposes league read operations.
type Repository interface {
	League(ctx context.Context, leagueID int64) (Info, bool, error)
}
