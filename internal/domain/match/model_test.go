package match

import (
	"testing"

	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
)

func boolPtr(v bool) *bool { return &v }

func TestSummarizeHeadToHead(t *testing.T) {
	t.Parallel()

	meetings := []fixture.Fixture{
		{Status: fixture.StatusFullTime, Home: fixture.Team{ID: 1, Winner: boolPtr(true)}, Away: fixture.Team{ID: 2, Winner: boolPtr(false)}},
		{Status: fixture.StatusFullTime, Home: fixture.Team{ID: 2, Winner: boolPtr(true)}, Away: fixture.Team{ID: 1, Winner: boolPtr(false)}},
		{Status: fixture.StatusFullTime, Home: fixture.Team{ID: 2}, Away: fixture.Team{ID: 1}},
		{Status: fixture.StatusPenalties, Home: fixture.Team{ID: 1, Winner: boolPtr(false)}, Away: fixture.Team{ID: 2, Winner: boolPtr(true)}},
		{Status: fixture.StatusNotStarted, Home: fixture.Team{ID: 1}, Away: fixture.Team{ID: 2}},
	}

	got := SummarizeHeadToHead(1, 2, meetings)
	if got.HomeWins != 1 || got.AwayWins != 2 || got.Draws != 1 {
		t.Fatalf("unexpected summary: %+v", got)
	}
	if len(got.Fixtures) != len(meetings) {
		t.Fatalf("expected all meetings listed")
	}
}

func TestOdds_MatchWinner(t *testing.T) {
	t.Parallel()

	odds := Odds{Bookmakers: []Bookmaker{{Bets: []OddsBet{{Name: "Goals Over/Under"}, {Name: "Match Winner", Values: []OddsValue{{Value: "Home", Odd: "1.80"}}}}}}}
	bet, ok := odds.MatchWinner()
	if !ok || len(bet.Values) != 1 {
		t.Fatalf("expected match winner market, got %+v ok=%v", bet, ok)
	}
	if _, ok := (Odds{}).MatchWinner(); ok {
		t.Fatalf("expected no market")
	}
}

func TestTeamPlayers_Find(t *testing.T) {
	t.Parallel()

	var line PlayerLine
	line.Player.ID = 276
	tp := TeamPlayers{Players: []PlayerLine{line}}
	if _, ok := tp.Find(276); !ok {
		t.Fatalf("expected player found")
	}
	if _, ok := tp.Find(1); ok {
		t.Fatalf("expected player missing")
	}
	if _, ok := line.Stats(); ok {
		t.Fatalf("expected no stats for empty line")
	}
}
