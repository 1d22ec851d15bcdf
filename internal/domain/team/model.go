package team

import (
	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
)

type Venue struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
	Surface  string `json:"surface"`
	Image    string `json:"image"`
}

// Team is a club or national team profile.
type Team struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Country  string `json:"country"`
	Founded  int    `json:"founded"`
	National bool   `json:"national"`
	Logo     string `json:"logo"`
}

// Info is a team with its home venue.
type Info struct {
	Team  Team  `json:"team"`
	Venue Venue `json:"venue"`
}

type SquadPlayer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Number   *int   `json:"number"`
	Position string `json:"position"`
	Photo    string `json:"photo"`
}

type Squad struct {
	Team    fixture.Team  `json:"team"`
	Players []SquadPlayer `json:"players"`
}

// ByPosition groups the squad by position in first-seen order.
func (s Squad) ByPosition() []PositionGroup {
	groups := make([]PositionGroup, 0, 4)
	index := make(map[string]int)
	for _, p := range s.Players {
		pos, ok := index[p.Position]
		if !ok {
			pos = len(groups)
			index[p.Position] = pos
			groups = append(groups, PositionGroup{Position: p.Position})
		}
		groups[pos].Players = append(groups[pos].Players, p)
	}
	return groups
}

type PositionGroup struct {
	Position string        `json:"position"`
	Players  []SquadPlayer `json:"players"`
}

// Split is a home/away/total triple.
type Split struct {
	Home  int `json:"home"`
	Away  int `json:"away"`
	Total int `json:"total"`
}

type AverageSplit struct {
	Home  string `json:"home"`
	Away  string `json:"away"`
	Total string `json:"total"`
}

type FixtureTotals struct {
	Played Split `json:"played"`
	Wins   Split `json:"wins"`
	Draws  Split `json:"draws"`
	Loses  Split `json:"loses"`
}

type GoalLine struct {
	Total   Split        `json:"total"`
	Average AverageSplit `json:"average"`
}

type GoalTotals struct {
	For     GoalLine `json:"for"`
	Against GoalLine `json:"against"`
}

type Streak struct {
	Wins  int `json:"wins"`
	Draws int `json:"draws"`
	Loses int `json:"loses"`
}

type Biggest struct {
	Streak Streak `json:"streak"`
}

type Lineup struct {
	Formation string `json:"formation"`
	Played    int    `json:"played"`
}

type PenaltyLine struct {
	Total      int    `json:"total"`
	Percentage string `json:"percentage"`
}

type PenaltyTotals struct {
	Scored PenaltyLine `json:"scored"`
	Missed PenaltyLine `json:"missed"`
}

// SeasonStats is a team's aggregate for one league season.
type SeasonStats struct {
	League        league.League `json:"league"`
	Team          fixture.Team  `json:"team"`
	Form          string        `json:"form"`
	Fixtures      FixtureTotals `json:"fixtures"`
	Goals         GoalTotals    `json:"goals"`
	Biggest       Biggest       `json:"biggest"`
	CleanSheet    Split         `json:"clean_sheet"`
	FailedToScore Split         `json:"failed_to_score"`
	Penalty       PenaltyTotals `json:"penalty"`
	Lineups       []Lineup      `json:"lineups"`
}

// MostUsedFormation returns the formation played most often.
func (s SeasonStats) MostUsedFormation() (Lineup, bool) {
	var best Lineup
	found := false
	for _, l := range s.Lineups {
		if !found || l.Played > best.Played {
			best = l
			found = true
		}
	}
	return best, found
}

// Competition is a league a team took part in, with its seasons.
type Competition struct {
	League  league.League   `json:"league"`
	Seasons []league.Season `json:"seasons"`
}
