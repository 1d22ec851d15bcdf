package fixture

import (
	"sort"

	"github.com/riskibarqy/kickoff-api/internal/domain/league"
)

// DateGroup holds the fixtures of one calendar date in input order.
type DateGroup struct {
	Date     string    `json:"date"`
	Fixtures []Fixture `json:"fixtures"`
}

// LeagueGroup holds the fixtures of one league in input order. League is taken
// from the first fixture of the group.
type LeagueGroup struct {
	League   league.League `json:"league"`
	Fixtures []Fixture     `json:"fixtures"`
}

// GroupByDate partitions fixtures by DateKey. Groups appear in order of first
// occurrence and keep input order inside each group.
func GroupByDate(fixtures []Fixture) []DateGroup {
	groups := make([]DateGroup, 0)
	index := make(map[string]int)
	for _, f := range fixtures {
		key := f.DateKey()
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, DateGroup{Date: key})
		}
		groups[pos].Fixtures = append(groups[pos].Fixtures, f)
	}
	return groups
}

// GroupByLeague partitions fixtures by league id with the same ordering rules
// as GroupByDate.
func GroupByLeague(fixtures []Fixture) []LeagueGroup {
	groups := make([]LeagueGroup, 0)
	index := make(map[int64]int)
	for _, f := range fixtures {
		pos, ok := index[f.League.ID]
		if !ok {
			pos = len(groups)
			index[f.League.ID] = pos
			groups = append(groups, LeagueGroup{League: f.League})
		}
		groups[pos].Fixtures = append(groups[pos].Fixtures, f)
	}
	return groups
}

// DateKeys lists the group keys in order.
func DateKeys(groups []DateGroup) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Date)
	}
	return out
}

// LeagueKeys lists the group league ids in order.
func LeagueKeys(groups []LeagueGroup) []int64 {
	out := make([]int64, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.League.ID)
	}
	return out
}

// SortByLeaguePriority sorts in place by (league priority, league id); fixtures
// of the same league keep their relative order.
func SortByLeaguePriority(fixtures []Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		return league.Less(fixtures[i].League.ID, fixtures[j].League.ID)
	})
}

// SortByKickoff sorts in place by kickoff time ascending.
func SortByKickoff(fixtures []Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].KickoffAt.Before(fixtures[j].KickoffAt)
	})
}

// SortByKickoffDesc sorts in place, most recent kickoff first.
func SortByKickoffDesc(fixtures []Fixture) {
	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].KickoffAt.After(fixtures[j].KickoffAt)
	})
}

// Filter returns the fixtures for which keep is true, preserving order.
func Filter(fixtures []Fixture, keep func(Fixture) bool) []Fixture {
	out := make([]Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}
