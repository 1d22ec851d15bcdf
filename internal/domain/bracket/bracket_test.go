package bracket

import (
	"testing"

	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
	"github.com/riskibarqy/kickoff-api/internal/domain/round"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func knockout(id int64, label string, status fixture.Status, homeWinner *bool, homeGoals, awayGoals *int) fixture.Fixture {
	var awayWinner *bool
	if homeWinner != nil {
		awayWinner = boolPtr(!*homeWinner)
	}
	return fixture.Fixture{
		ID:     id,
		Status: status,
		League: league.League{ID: league.ChampionsLeague, Round: label},
		Home:   fixture.Team{ID: id*10 + 1, Name: "Home", Winner: homeWinner},
		Away:   fixture.Team{ID: id*10 + 2, Name: "Away", Winner: awayWinner},
		Goals:  fixture.Goals{Home: homeGoals, Away: awayGoals},
	}
}

func TestAdvancements_PenaltyShootout(t *testing.T) {
	t.Parallel()

	f := knockout(1, "Final", fixture.StatusPenalties, boolPtr(true), intPtr(1), intPtr(1))
	records := Advancements([]fixture.Fixture{f})
	if len(records) != 2 {
		t.Fatalf("expected two records, got %d", len(records))
	}

	home, away := records[0], records[1]
	if !home.Advanced || !home.WonOnPenalties {
		t.Fatalf("unexpected home record: %+v", home)
	}
	if away.Advanced || away.WonOnPenalties {
		t.Fatalf("unexpected away record: %+v", away)
	}
	if home.OpponentName != "Away" || away.OpponentName != "Home" {
		t.Fatalf("unexpected opponent names: %+v %+v", home, away)
	}
}

func TestAdvancements_NilGoalsAndRegularWin(t *testing.T) {
	t.Parallel()

	f := knockout(2, "Semi-finals", fixture.StatusFullTime, boolPtr(false), nil, intPtr(2))
	records := Advancements([]fixture.Fixture{f})

	home, away := records[0], records[1]
	if home.Advanced || !away.Advanced {
		t.Fatalf("expected away to advance: %+v %+v", home, away)
	}
	if home.GoalsFor != 0 || home.GoalsAgainst != 2 || away.GoalsFor != 2 || away.GoalsAgainst != 0 {
		t.Fatalf("unexpected goals: %+v %+v", home, away)
	}
	if away.WonOnPenalties {
		t.Fatalf("full time win must not be a penalty win")
	}
}

func TestAdvancements_WinnerUnsetMeansNotAdvanced(t *testing.T) {
	t.Parallel()

	f := knockout(3, "Round of 16", fixture.StatusFullTime, nil, intPtr(1), intPtr(1))
	for _, r := range Advancements([]fixture.Fixture{f}) {
		if r.Advanced {
			t.Fatalf("first leg draw without winner must not advance: %+v", r)
		}
	}
}

func TestBuild_PendingAndOrdering(t *testing.T) {
	t.Parallel()

	fixtures := []fixture.Fixture{
		knockout(1, "Quarter-finals", fixture.StatusFullTime, boolPtr(true), intPtr(2), intPtr(0)),
		knockout(2, "Final", fixture.StatusNotStarted, nil, nil, nil),
		knockout(3, "Group A", fixture.StatusFullTime, boolPtr(true), intPtr(3), intPtr(1)),
		knockout(4, "Qualifying Round 1", fixture.StatusFullTime, boolPtr(true), intPtr(1), intPtr(0)),
		knockout(5, "Semi-finals", fixture.StatusAfterExtraTime, boolPtr(false), intPtr(1), intPtr(2)),
		knockout(6, "Quarter-finals", fixture.StatusSecondHalf, nil, intPtr(0), intPtr(0)),
		knockout(7, "", fixture.StatusFullTime, boolPtr(true), intPtr(1), intPtr(0)),
	}

	b := Build(fixtures, 0)
	if b.TaxonomyVersion != round.TaxonomyVersion {
		t.Fatalf("unexpected taxonomy version %d", b.TaxonomyVersion)
	}

	wantLabels := []string{"Final", "Semi-finals", "Quarter-finals"}
	if len(b.Rounds) != len(wantLabels) {
		t.Fatalf("expected %d main rounds, got %d", len(wantLabels), len(b.Rounds))
	}
	for i, label := range wantLabels {
		if b.Rounds[i].Label != label {
			t.Fatalf("round %d: got %s want %s", i, b.Rounds[i].Label, label)
		}
	}

	final := b.Rounds[0]
	if !final.IsFinal || len(final.Advancements) != 0 || len(final.Pending) != 1 || final.Pending[0].ID != 2 {
		t.Fatalf("final must only hold the pending fixture: %+v", final)
	}

	quarter := b.Rounds[2]
	if len(quarter.Advancements) != 2 || len(quarter.Pending) != 1 || quarter.Pending[0].ID != 6 {
		t.Fatalf("unexpected quarter-final split: %+v", quarter)
	}
	if len(quarter.Advanced()) != 1 || len(quarter.Eliminated()) != 1 || len(quarter.Fixtures()) != 2 {
		t.Fatalf("unexpected quarter-final counts")
	}
	if quarter.DisplayName != "8강" || quarter.IsFinal {
		t.Fatalf("unexpected quarter-final metadata: %+v", quarter)
	}
}

func TestBuild_HighlightsTeam(t *testing.T) {
	t.Parallel()

	f := knockout(8, "Round of 16", fixture.StatusFullTime, boolPtr(true), intPtr(3), intPtr(1))
	b := Build([]fixture.Fixture{f}, f.Away.ID)

	records := b.Rounds[0].Advancements
	if records[0].Highlighted || !records[1].Highlighted {
		t.Fatalf("expected only away team highlighted: %+v", records)
	}
}

func TestBuild_NoMainRounds(t *testing.T) {
	t.Parallel()

	b := Build([]fixture.Fixture{knockout(9, "Group B", fixture.StatusFullTime, boolPtr(true), intPtr(1), intPtr(0))}, 0)
	if !b.Empty() {
		t.Fatalf("expected empty bracket, got %+v", b.Rounds)
	}
}

func TestGroupByRound_UnknownLabel(t *testing.T) {
	t.Parallel()

	rounds := GroupByRound([]fixture.Fixture{knockout(10, "", fixture.StatusNotStarted, nil, nil, nil)})
	if len(rounds) != 1 || rounds[0].Label != UnknownRound || rounds[0].Order != round.Unrecognized {
		t.Fatalf("unexpected rounds: %+v", rounds)
	}
}
