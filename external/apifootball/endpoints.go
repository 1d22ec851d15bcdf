package apifootball

import (
	"context"
	"net/url"
	"strconv"

	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
	"github.com/riskibarqy/kickoff-api/internal/domain/match"
	"github.com/riskibarqy/kickoff-api/internal/domain/player"
	"github.com/riskibarqy/kickoff-api/internal/domain/standing"
	"github.com/riskibarqy/kickoff-api/internal/domain/team"
)

var (
	_ fixture.Repository  = (*Client)(nil)
	_ match.Repository    = (*Client)(nil)
	_ league.Repository   = (*Client)(nil)
	_ standing.Repository = (*Client)(nil)
	_ player.Repository   = (*Client)(nil)
	_ team.Repository     = (*Client)(nil)
)

func params(kv ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		values.Set(kv[i], kv[i+1])
	}
	return values
}

func id(v int64) string { return strconv.FormatInt(v, 10) }
func num(v int) string  { return strconv.Itoa(v) }

func (c *Client) fixtures(ctx context.Context, op operation, query url.Values) ([]fixture.Fixture, error) {
	var items []fixtureItem
	if _, err := c.get(ctx, op, query, &items); err != nil {
		return nil, err
	}
	return mapFixtures(items), nil
}

func (c *Client) LiveFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	return c.fixtures(ctx, opLiveFixtures, params("live", "all"))
}

func (c *Client) Fixture(ctx context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	items, err := c.fixtures(ctx, opFixture, params("id", id(fixtureID)))
	if err != nil || len(items) == 0 {
		return fixture.Fixture{}, false, err
	}
	return items[0], true, nil
}

func (c *Client) FixturesByDate(ctx context.Context, date string) ([]fixture.Fixture, error) {
	return c.fixtures(ctx, opFixturesByDate, params("date", date))
}

func (c *Client) FixturesByLeague(ctx context.Context, leagueID int64, season int) ([]fixture.Fixture, error) {
	return c.fixtures(ctx, opFixturesByLeague, params("league", id(leagueID), "season", num(season)))
}

func (c *Client) FixturesByTeam(ctx context.Context, teamID int64, season int) ([]fixture.Fixture, error) {
	return c.fixtures(ctx, opFixturesByTeam, params("team", id(teamID), "season", num(season)))
}

func (c *Client) HeadToHead(ctx context.Context, teamA, teamB int64, last int) ([]fixture.Fixture, error) {
	return c.fixtures(ctx, opHeadToHead, params("h2h", id(teamA)+"-"+id(teamB), "last", num(last)))
}

func (c *Client) Lineups(ctx context.Context, fixtureID int64) ([]match.Lineup, error) {
	var out []match.Lineup
	_, err := c.get(ctx, opLineups, params("fixture", id(fixtureID)), &out)
	return out, err
}

func (c *Client) FixtureStatistics(ctx context.Context, fixtureID int64) ([]match.TeamStatistics, error) {
	var out []match.TeamStatistics
	_, err := c.get(ctx, opFixtureStatistics, params("fixture", id(fixtureID)), &out)
	return out, err
}

func (c *Client) FixtureEvents(ctx context.Context, fixtureID int64) ([]match.Event, error) {
	var out []match.Event
	_, err := c.get(ctx, opFixtureEvents, params("fixture", id(fixtureID)), &out)
	return out, err
}

func (c *Client) FixturePlayers(ctx context.Context, fixtureID int64) ([]match.TeamPlayers, error) {
	var out []match.TeamPlayers
	_, err := c.get(ctx, opFixturePlayers, params("fixture", id(fixtureID)), &out)
	return out, err
}

func (c *Client) Prediction(ctx context.Context, fixtureID int64) (match.Prediction, bool, error) {
	var out []match.Prediction
	if _, err := c.get(ctx, opPrediction, params("fixture", id(fixtureID)), &out); err != nil || len(out) == 0 {
		return match.Prediction{}, false, err
	}
	return out[0], true, nil
}

func (c *Client) Odds(ctx context.Context, fixtureID int64) (match.Odds, bool, error) {
	var out []match.Odds
	if _, err := c.get(ctx, opOdds, params("fixture", id(fixtureID)), &out); err != nil || len(out) == 0 {
		return match.Odds{}, false, err
	}
	return out[0], true, nil
}

func (c *Client) League(ctx context.Context, leagueID int64) (league.Info, bool, error) {
	var items []leagueItem
	if _, err := c.get(ctx, opLeague, params("id", id(leagueID)), &items); err != nil || len(items) == 0 {
		return league.Info{}, false, err
	}
	return items[0].toInfo(), true, nil
}

func (c *Client) Standings(ctx context.Context, leagueID int64, season int) (standing.Table, error) {
	var items []standingsItem
	if _, err := c.get(ctx, opStandings, params("league", id(leagueID), "season", num(season)), &items); err != nil {
		return standing.Table{}, err
	}
	if len(items) == 0 {
		return standing.Table{League: league.League{ID: leagueID, Season: season}}, nil
	}
	return items[0].toDomain(), nil
}

func (c *Client) Leaders(ctx context.Context, kind player.LeaderKind, leagueID int64, season int) ([]player.Player, error) {
	var out []player.Player
	_, err := c.get(ctx, leaderOperation(string(kind)), params("league", id(leagueID), "season", num(season)), &out)
	return out, err
}

func (c *Client) Player(ctx context.Context, playerID int64, season int) (player.Player, bool, error) {
	query := params("id", id(playerID))
	if season > 0 {
		query.Set("season", num(season))
	}
	var out []player.Player
	if _, err := c.get(ctx, opPlayer, query, &out); err != nil || len(out) == 0 {
		return player.Player{}, false, err
	}
	return out[0], true, nil
}

func (c *Client) PlayerTransfers(ctx context.Context, playerID int64) ([]player.Transfer, error) {
	var out []player.TransferHistory
	if _, err := c.get(ctx, opPlayerTransfers, params("player", id(playerID)), &out); err != nil || len(out) == 0 {
		return nil, err
	}
	return out[0].Transfers, nil
}

func (c *Client) Trophies(ctx context.Context, playerID int64) ([]player.Trophy, error) {
	var out []player.Trophy
	_, err := c.get(ctx, opTrophies, params("player", id(playerID)), &out)
	return out, err
}

func (c *Client) Sidelined(ctx context.Context, playerID int64) ([]player.Sidelined, error) {
	var out []player.Sidelined
	_, err := c.get(ctx, opSidelined, params("player", id(playerID)), &out)
	return out, err
}

func (c *Client) Team(ctx context.Context, teamID int64) (team.Info, bool, error) {
	var out []team.Info
	if _, err := c.get(ctx, opTeam, params("id", id(teamID)), &out); err != nil || len(out) == 0 {
		return team.Info{}, false, err
	}
	return out[0], true, nil
}

func (c *Client) Squad(ctx context.Context, teamID int64) (team.Squad, bool, error) {
	var out []team.Squad
	if _, err := c.get(ctx, opSquad, params("team", id(teamID)), &out); err != nil || len(out) == 0 {
		return team.Squad{}, false, err
	}
	return out[0], true, nil
}

// TeamStatistics is the one endpoint whose response is an object, not a list.
func (c *Client) TeamStatistics(ctx context.Context, teamID, leagueID int64, season int) (team.SeasonStats, bool, error) {
	var out team.SeasonStats
	found, err := c.get(ctx, opTeamStatistics, params("team", id(teamID), "league", id(leagueID), "season", num(season)), &out)
	if err != nil || !found {
		return team.SeasonStats{}, false, err
	}
	return out, true, nil
}

func (c *Client) TeamTransfers(ctx context.Context, teamID int64) ([]player.TransferHistory, error) {
	var out []player.TransferHistory
	_, err := c.get(ctx, opTeamTransfers, params("team", id(teamID)), &out)
	return out, err
}

func (c *Client) TeamLeagues(ctx context.Context, teamID int64, season int) ([]team.Competition, error) {
	var items []leagueItem
	if _, err := c.get(ctx, opTeamLeagues, params("team", id(teamID), "season", num(season)), &items); err != nil {
		return nil, err
	}
	out := make([]team.Competition, 0, len(items))
	for _, item := range items {
		out = append(out, item.toCompetition())
	}
	return out, nil
}
