package apifootball

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
	"github.com/riskibarqy/kickoff-api/internal/domain/standing"
	"github.com/riskibarqy/kickoff-api/internal/domain/team"
)

// rawMessage keeps the response field undecoded until the caller picks a type.
type rawMessage []byte

func (m *rawMessage) UnmarshalJSON(data []byte) error {
	*m = append((*m)[:0], data...)
	return nil
}

// envelope is the uniform response wrapper. errors is an array when empty and
// an object keyed by field when populated.
type envelope struct {
	Get     string `json:"get"`
	Errors  any    `json:"errors"`
	Results int    `json:"results"`
	Paging  struct {
		Current int `json:"current"`
		Total   int `json:"total"`
	} `json:"paging"`
	Response rawMessage `json:"response"`
}

func providerErrors(v any) []string {
	switch errs := v.(type) {
	case nil:
		return nil
	case string:
		if errs == "" {
			return nil
		}
		return []string{errs}
	case []any:
		out := make([]string, 0, len(errs))
		for _, e := range errs {
			out = append(out, fmt.Sprint(e))
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(errs))
		for k := range errs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]string, 0, len(errs))
		for _, k := range keys {
			out = append(out, k+": "+fmt.Sprint(errs[k]))
		}
		return out
	default:
		return []string{fmt.Sprint(errs)}
	}
}

func isEmptyResponse(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return true
	}
	return false
}

type fixtureItem struct {
	Fixture struct {
		ID        int64  `json:"id"`
		Referee   string `json:"referee"`
		Timezone  string `json:"timezone"`
		Date      string `json:"date"`
		Timestamp int64  `json:"timestamp"`
		Venue     struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"venue"`
		Status struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
			Extra   *int   `json:"extra"`
		} `json:"status"`
	} `json:"fixture"`
	League league.League `json:"league"`
	Teams  struct {
		Home fixture.Team `json:"home"`
		Away fixture.Team `json:"away"`
	} `json:"teams"`
	Goals fixture.Goals `json:"goals"`
	Score fixture.Score `json:"score"`
}

func (item fixtureItem) toDomain() fixture.Fixture {
	src := item.Fixture
	return fixture.Fixture{
		ID:        src.ID,
		Referee:   src.Referee,
		Timezone:  src.Timezone,
		Date:      src.Date,
		KickoffAt: kickoffTime(src.Date, src.Timestamp),
		Venue: fixture.Venue{
			ID:   src.Venue.ID,
			Name: src.Venue.Name,
			City: src.Venue.City,
		},
		Status:     fixture.NormalizeStatus(src.Status.Short),
		StatusLong: src.Status.Long,
		Elapsed:    src.Status.Elapsed,
		Extra:      src.Status.Extra,
		League:     item.League,
		Home:       item.Teams.Home,
		Away:       item.Teams.Away,
		Goals:      item.Goals,
		Score:      item.Score,
	}
}

func mapFixtures(items []fixtureItem) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out
}

func kickoffTime(date string, timestamp int64) time.Time {
	if timestamp > 0 {
		return time.Unix(timestamp, 0).UTC()
	}
	if parsed, err := time.Parse(time.RFC3339, date); err == nil {
		return parsed.UTC()
	}
	return time.Time{}
}

type recordItem struct {
	Played int `json:"played"`
	Win    int `json:"win"`
	Draw   int `json:"draw"`
	Lose   int `json:"lose"`
	Goals  struct {
		For     int `json:"for"`
		Against int `json:"against"`
	} `json:"goals"`
}

func (r recordItem) toDomain() standing.Record {
	return standing.Record{
		Played:       r.Played,
		Win:          r.Win,
		Draw:         r.Draw,
		Lose:         r.Lose,
		GoalsFor:     r.Goals.For,
		GoalsAgainst: r.Goals.Against,
	}
}

type standingRowItem struct {
	Rank        int          `json:"rank"`
	Team        fixture.Team `json:"team"`
	Points      int          `json:"points"`
	GoalsDiff   int          `json:"goalsDiff"`
	Group       string       `json:"group"`
	Form        string       `json:"form"`
	Status      string       `json:"status"`
	Description string       `json:"description"`
	All         recordItem   `json:"all"`
	Home        recordItem   `json:"home"`
	Away        recordItem   `json:"away"`
	Update      string       `json:"update"`
}

type standingsItem struct {
	League struct {
		league.League
		Standings [][]standingRowItem `json:"standings"`
	} `json:"league"`
}

func (item standingsItem) toDomain() standing.Table {
	groups := make([]standing.Group, 0, len(item.League.Standings))
	for _, src := range item.League.Standings {
		group := make(standing.Group, 0, len(src))
		for _, row := range src {
			group = append(group, standing.Row{
				Rank:        row.Rank,
				Team:        row.Team,
				Points:      row.Points,
				GoalsDiff:   row.GoalsDiff,
				Group:       row.Group,
				Form:        row.Form,
				Status:      row.Status,
				Description: row.Description,
				All:         row.All.toDomain(),
				Home:        row.Home.toDomain(),
				Away:        row.Away.toDomain(),
				Update:      row.Update,
			})
		}
		groups = append(groups, group)
	}
	return standing.Table{League: item.League.League, Groups: groups}
}

type leagueItem struct {
	League struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
		Logo string `json:"logo"`
	} `json:"league"`
	Country struct {
		Name string `json:"name"`
		Code string `json:"code"`
		Flag string `json:"flag"`
	} `json:"country"`
	Seasons []league.Season `json:"seasons"`
}

func (item leagueItem) toInfo() league.Info {
	info := league.Info{
		League: league.League{
			ID:      item.League.ID,
			Name:    item.League.Name,
			Type:    item.League.Type,
			Country: item.Country.Name,
			Logo:    item.League.Logo,
			Flag:    item.Country.Flag,
		},
		Seasons: item.Seasons,
	}
	if current, ok := info.CurrentSeason(); ok {
		info.League.Season = current.Year
	}
	return info
}

func (item leagueItem) toCompetition() team.Competition {
	info := item.toInfo()
	return team.Competition{League: info.League, Seasons: info.Seasons}
}
