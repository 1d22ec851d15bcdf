package standing

import (
	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
)

// Record is a played/won/drawn/lost line with goals.
type Record struct {
	Played       int `json:"played"`
	Win          int `json:"win"`
	Draw         int `json:"draw"`
	Lose         int `json:"lose"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

// Row is one team's line in a standings group.
type Row struct {
	Rank        int          `json:"rank"`
	Team        fixture.Team `json:"team"`
	Points      int          `json:"points"`
	GoalsDiff   int          `json:"goalsDiff"`
	Group       string       `json:"group,omitempty"`
	Form        string       `json:"form,omitempty"`
	Status      string       `json:"status,omitempty"`
	Description string       `json:"description,omitempty"`
	All         Record       `json:"all"`
	Home        Record       `json:"home"`
	Away        Record       `json:"away"`
	Update      string       `json:"update,omitempty"`
}

// RecentForm returns the last five form results.
func (r Row) RecentForm() []fixture.FormResult {
	return fixture.LastForm(r.Form, 5)
}

// Group is an ordered list of rows ranked 1..N.
type Group []Row

// Table is a league with its standings groups in provider order.
type Table struct {
	League league.League `json:"league"`
	Groups []Group       `json:"groups"`
}

// MultiGroup reports a classic group-stage table.
func (t Table) MultiGroup() bool {
	return len(t.Groups) > 1
}

// GroupName is the name of the group at index i, taken from its first row or
// derived from the index ("Group A", "Group B", ...).
func (t Table) GroupName(i int) string {
	if i < 0 || i >= len(t.Groups) {
		return ""
	}
	if g := t.Groups[i]; len(g) > 0 && g[0].Group != "" {
		return g[0].Group
	}
	return "Group " + string(rune('A'+i))
}
