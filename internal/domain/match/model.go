package match

import (
	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
	"github.com/riskibarqy/kickoff-api/internal/domain/player"
)

type LineupPlayer struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
	Pos    string `json:"pos"`
	Grid   string `json:"grid"`
}

type LineupSlot struct {
	Player LineupPlayer `json:"player"`
}

type Coach struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Lineup is one team's starting eleven, bench and coach.
type Lineup struct {
	Team        fixture.Team `json:"team"`
	Formation   string       `json:"formation"`
	StartXI     []LineupSlot `json:"startXI"`
	Substitutes []LineupSlot `json:"substitutes"`
	Coach       Coach        `json:"coach"`
}

// StatisticItem values are numbers, percentages as strings, or null.
type StatisticItem struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

type TeamStatistics struct {
	Team       fixture.Team    `json:"team"`
	Statistics []StatisticItem `json:"statistics"`
}

// Value returns the statistic named typ, or nil.
func (s TeamStatistics) Value(typ string) any {
	for _, item := range s.Statistics {
		if item.Type == typ {
			return item.Value
		}
	}
	return nil
}

type EventTime struct {
	Elapsed int  `json:"elapsed"`
	Extra   *int `json:"extra"`
}

type EventActor struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

const (
	EventGoal  = "Goal"
	EventCard  = "Card"
	EventSubst = "subst"
	EventVar   = "Var"
)

// Event is one timeline entry of a fixture.
type Event struct {
	Time     EventTime    `json:"time"`
	Team     fixture.Team `json:"team"`
	Player   EventActor   `json:"player"`
	Assist   EventActor   `json:"assist"`
	Type     string       `json:"type"`
	Detail   string       `json:"detail"`
	Comments string       `json:"comments"`
}

type PlayerLine struct {
	Player struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Photo string `json:"photo"`
	} `json:"player"`
	Statistics []player.FixtureStats `json:"statistics"`
}

// Stats returns the first statistics entry, which is the only one the
// provider fills per fixture.
func (l PlayerLine) Stats() (player.FixtureStats, bool) {
	if len(l.Statistics) == 0 {
		return player.FixtureStats{}, false
	}
	return l.Statistics[0], true
}

// TeamPlayers is one team's player lines in a fixture.
type TeamPlayers struct {
	Team    fixture.Team `json:"team"`
	Players []PlayerLine `json:"players"`
}

// Find returns the line of playerID.
func (t TeamPlayers) Find(playerID int64) (PlayerLine, bool) {
	for _, p := range t.Players {
		if p.Player.ID == playerID {
			return p, true
		}
	}
	return PlayerLine{}, false
}

type HomeAway struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

type PredictionWinner struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Comment string `json:"comment"`
}

type Advice struct {
	Winner    PredictionWinner `json:"winner"`
	WinOrDraw bool             `json:"win_or_draw"`
	UnderOver string           `json:"under_over"`
	Goals     HomeAway         `json:"goals"`
	Advice    string           `json:"advice"`
	Percent   struct {
		Home string `json:"home"`
		Draw string `json:"draw"`
		Away string `json:"away"`
	} `json:"percent"`
}

type PredictionTeam struct {
	fixture.Team
	League struct {
		Form string `json:"form"`
	} `json:"league"`
}

// Prediction is the provider's win probability and team comparison.
type Prediction struct {
	Predictions Advice        `json:"predictions"`
	League      league.League `json:"league"`
	Teams       struct {
		Home PredictionTeam `json:"home"`
		Away PredictionTeam `json:"away"`
	} `json:"teams"`
	Comparison map[string]HomeAway `json:"comparison"`
}

type OddsValue struct {
	Value string `json:"value"`
	Odd   string `json:"odd"`
}

type OddsBet struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	Values []OddsValue `json:"values"`
}

type Bookmaker struct {
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Bets []OddsBet `json:"bets"`
}

// Odds is the bookmaker offer for a fixture.
type Odds struct {
	Update     string      `json:"update"`
	Bookmakers []Bookmaker `json:"bookmakers"`
}

// MatchWinner returns the first bookmaker's 1X2 market.
func (o Odds) MatchWinner() (OddsBet, bool) {
	for _, b := range o.Bookmakers {
		for _, bet := range b.Bets {
			if bet.Name == "Match Winner" {
				return bet, true
			}
		}
	}
	return OddsBet{}, false
}

// HeadToHead summarizes previous meetings from the home team's perspective.
type HeadToHead struct {
	Fixtures []fixture.Fixture `json:"fixtures"`
	HomeWins int               `json:"homeWins"`
	Draws    int               `json:"draws"`
	AwayWins int               `json:"awayWins"`
}

// SummarizeHeadToHead counts finished meetings won by homeID, awayID or drawn.
func SummarizeHeadToHead(homeID, awayID int64, fixtures []fixture.Fixture) HeadToHead {
	out := HeadToHead{Fixtures: fixtures}
	for _, f := range fixtures {
		if !f.IsFinished() {
			continue
		}
		var winnerID int64
		switch {
		case f.Home.IsWinner():
			winnerID = f.Home.ID
		case f.Away.IsWinner():
			winnerID = f.Away.ID
		}
		switch winnerID {
		case homeID:
			out.HomeWins++
		case awayID:
			out.AwayWins++
		default:
			out.Draws++
		}
	}
	return out
}
