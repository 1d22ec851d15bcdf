package player

import (
	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
)

type Birth struct {
	Date    string `json:"date"`
	Place   string `json:"place"`
	Country string `json:"country"`
}

// Profile is the biographical part of a player.
type Profile struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Age         int    `json:"age"`
	Birth       Birth  `json:"birth"`
	Nationality string `json:"nationality"`
	Height      string `json:"height"`
	Weight      string `json:"weight"`
	Injured     bool   `json:"injured"`
	Photo       string `json:"photo"`
}

type Games struct {
	Appearences *int    `json:"appearences"`
	Lineups     *int    `json:"lineups"`
	Minutes     *int    `json:"minutes"`
	Number      *int    `json:"number"`
	Position    string  `json:"position"`
	Rating      *string `json:"rating"`
	Captain     bool    `json:"captain"`
	Substitute  bool    `json:"substitute,omitempty"`
}

type Shots struct {
	Total *int `json:"total"`
	On    *int `json:"on"`
}

type Goals struct {
	Total    *int `json:"total"`
	Conceded *int `json:"conceded"`
	Assists  *int `json:"assists"`
	Saves    *int `json:"saves"`
}

type Cards struct {
	Yellow    *int `json:"yellow"`
	YellowRed *int `json:"yellowred"`
	Red       *int `json:"red"`
}

type Penalty struct {
	Won      *int `json:"won"`
	Commited *int `json:"commited"`
	Scored   *int `json:"scored"`
	Missed   *int `json:"missed"`
	Saved    *int `json:"saved"`
}

// Statistics is one (team, league, season) statistics record.
type Statistics struct {
	Team    fixture.Team  `json:"team"`
	League  league.League `json:"league"`
	Games   Games         `json:"games"`
	Shots   Shots         `json:"shots"`
	Goals   Goals         `json:"goals"`
	Cards   Cards         `json:"cards"`
	Penalty Penalty       `json:"penalty"`
}

// Appearances is the appearance count of the record, zero when unknown.
func (s Statistics) Appearances() int {
	return deref(s.Games.Appearences)
}

// Player is a profile with every statistics record for one season.
type Player struct {
	Profile    Profile      `json:"player"`
	Statistics []Statistics `json:"statistics"`
}

// Appearances sums appearances across all competitions of the season.
func (p Player) Appearances() int {
	total := 0
	for _, s := range p.Statistics {
		total += s.Appearances()
	}
	return total
}

// HasAppearances reports whether any competition credits an appearance.
func (p Player) HasAppearances() bool {
	for _, s := range p.Statistics {
		if s.Appearances() > 0 {
			return true
		}
	}
	return false
}

// SeasonStats is a player's statistics for one season year.
type SeasonStats struct {
	Season      int          `json:"season"`
	Appearances int          `json:"appearances"`
	Player      Profile      `json:"player"`
	Statistics  []Statistics `json:"statistics"`
}

// FixtureStats is the per-match statistics line of a player.
type FixtureStats struct {
	Games    Games `json:"games"`
	Offsides *int  `json:"offsides"`
	Shots    Shots `json:"shots"`
	Goals    Goals `json:"goals"`
	Cards    Cards `json:"cards"`
}

// Played reports whether the player was on the pitch.
func (s FixtureStats) Played() bool {
	return deref(s.Games.Minutes) > 0
}

// Appearance is a player's line in one finished fixture.
type Appearance struct {
	Fixture fixture.Fixture `json:"fixture"`
	Stats   FixtureStats    `json:"stats"`
}

type TransferTeams struct {
	In  fixture.Team `json:"in"`
	Out fixture.Team `json:"out"`
}

type Transfer struct {
	Date  string        `json:"date"`
	Type  string        `json:"type"`
	Teams TransferTeams `json:"teams"`
}

type Trophy struct {
	League  string `json:"league"`
	Country string `json:"country"`
	Season  string `json:"season"`
	Place   string `json:"place"`
}

type Sidelined struct {
	Type  string `json:"type"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// TransferHistory is one player's transfer list as returned for a team.
type TransferHistory struct {
	Player struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
	Update    string     `json:"update"`
	Transfers []Transfer `json:"transfers"`
}
