package apifootball

import "time"

// operation is one provider endpoint with the freshness window of its data.
type operation struct {
	name string
	path string
	ttl  time.Duration
}

var (
	opLiveFixtures      = operation{name: "fixtures_live", path: "/fixtures", ttl: 10 * time.Second}
	opFixture           = operation{name: "fixture", path: "/fixtures", ttl: 30 * time.Second}
	opFixturesByDate    = operation{name: "fixtures_date", path: "/fixtures", ttl: 5 * time.Minute}
	opFixturesByLeague  = operation{name: "fixtures_league", path: "/fixtures", ttl: time.Minute}
	opFixturesByTeam    = operation{name: "fixtures_team", path: "/fixtures", ttl: time.Minute}
	opHeadToHead        = operation{name: "h2h", path: "/fixtures/headtohead", ttl: 5 * time.Minute}
	opLineups           = operation{name: "lineups", path: "/fixtures/lineups", ttl: time.Minute}
	opFixtureStatistics = operation{name: "fixture_statistics", path: "/fixtures/statistics", ttl: 30 * time.Second}
	opFixtureEvents     = operation{name: "fixture_events", path: "/fixtures/events", ttl: 30 * time.Second}
	opFixturePlayers    = operation{name: "fixture_players", path: "/fixtures/players", ttl: time.Minute}
	opPrediction        = operation{name: "prediction", path: "/predictions", ttl: 5 * time.Minute}
	opOdds              = operation{name: "odds", path: "/odds", ttl: time.Minute}
	opLeague            = operation{name: "league", path: "/leagues", ttl: 10 * time.Minute}
	opTeamLeagues       = operation{name: "team_leagues", path: "/leagues", ttl: 5 * time.Minute}
	opStandings         = operation{name: "standings", path: "/standings", ttl: 5 * time.Minute}
	opPlayer            = operation{name: "player", path: "/players", ttl: 5 * time.Minute}
	opPlayerTransfers   = operation{name: "player_transfers", path: "/transfers", ttl: 10 * time.Minute}
	opTrophies          = operation{name: "trophies", path: "/trophies", ttl: 10 * time.Minute}
	opSidelined         = operation{name: "sidelined", path: "/sidelined", ttl: 10 * time.Minute}
	opTeam              = operation{name: "team", path: "/teams", ttl: 5 * time.Minute}
	opSquad             = operation{name: "squad", path: "/players/squads", ttl: 5 * time.Minute}
	opTeamStatistics    = operation{name: "team_statistics", path: "/teams/statistics", ttl: 5 * time.Minute}
	opTeamTransfers     = operation{name: "team_transfers", path: "/transfers", ttl: 10 * time.Minute}
)

func leaderOperation(kind string) operation {
	return operation{name: kind, path: "/players/" + kind, ttl: 5 * time.Minute}
}
