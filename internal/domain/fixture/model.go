package fixture

import (
	"strings"
	"time"

	"github.com/riskibarqy/kickoff-api/internal/domain/league"
)

// Team is one side of a fixture. Winner is set by the provider on finished
// fixtures only and is nil while undecided.
type Team struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

// IsWinner reports whether the provider flagged the team as winner.
func (t Team) IsWinner() bool {
	return t.Winner != nil && *t.Winner
}

// Goals is a nullable home/away pair.
type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type Score struct {
	Halftime  Goals `json:"halftime"`
	Fulltime  Goals `json:"fulltime"`
	Extratime Goals `json:"extratime"`
	Penalty   Goals `json:"penalty"`
}

type Venue struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
}

// Fixture is one scheduled or completed match.
type Fixture struct {
	ID       int64  `json:"id"`
	Referee  string `json:"referee,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	// Date is the kickoff timestamp exactly as the provider sent it.
	Date       string        `json:"date"`
	KickoffAt  time.Time     `json:"kickoffAt"`
	Venue      Venue         `json:"venue"`
	Status     Status        `json:"status"`
	StatusLong string        `json:"statusLong,omitempty"`
	Elapsed    *int          `json:"elapsed"`
	Extra      *int          `json:"extra"`
	League     league.League `json:"league"`
	Home       Team          `json:"home"`
	Away       Team          `json:"away"`
	Goals      Goals         `json:"goals"`
	Score      Score         `json:"score"`
}

// DateKey is the calendar date part of the provider timestamp.
func (f Fixture) DateKey() string {
	if idx := strings.IndexByte(f.Date, 'T'); idx >= 0 {
		return f.Date[:idx]
	}
	if f.Date != "" {
		return f.Date
	}
	if !f.KickoffAt.IsZero() {
		return f.KickoffAt.Format(time.DateOnly)
	}
	return ""
}

func (f Fixture) IsLive() bool      { return f.Status.IsLive() }
func (f Fixture) IsFinished() bool  { return f.Status.IsFinished() }
func (f Fixture) IsScheduled() bool { return f.Status.IsScheduled() }

// IsUpcoming reports fixtures that are neither live nor finished.
func (f Fixture) IsUpcoming() bool {
	return !f.Status.IsLive() && !f.Status.IsFinished()
}

// Involves reports whether teamID plays in the fixture.
func (f Fixture) Involves(teamID int64) bool {
	return f.Home.ID == teamID || f.Away.ID == teamID
}

// Clock renders the match clock shown next to a live score.
func (f Fixture) Clock() string {
	return MatchClock(f.Elapsed, f.Status)
}
