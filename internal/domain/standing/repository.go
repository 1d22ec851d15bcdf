package standing

import "context"

// Repository exposes standings. A league season without standings yields a
// table with no groups.
type Repository interface {
	Standings(ctx context.Context, leagueID int64, season int) (Table, error)
}
