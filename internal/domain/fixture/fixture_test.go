package fixture

import (
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/kickoff-api/internal/domain/league"
)

func sample(id int64, date string, leagueID int64) Fixture {
	kickoff, _ := time.Parse(time.RFC3339, date)
	return Fixture{
		ID:        id,
		Date:      date,
		KickoffAt: kickoff,
		Status:    StatusNotStarted,
		League:    league.League{ID: leagueID, Name: "league"},
	}
}

func ids(fixtures []Fixture) []int64 {
	out := make([]int64, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, f.ID)
	}
	return out
}

func TestGroupByDate_StableAndIdempotent(t *testing.T) {
	t.Parallel()

	input := []Fixture{
		sample(1, "2026-03-01T15:00:00+00:00", 39),
		sample(2, "2026-03-02T18:00:00+00:00", 140),
		sample(3, "2026-03-01T20:00:00+00:00", 140),
		sample(4, "2026-03-02T12:30:00+00:00", 39),
	}

	first := GroupByDate(input)
	second := GroupByDate(input)

	if got := DateKeys(first); !reflect.DeepEqual(got, []string{"2026-03-01", "2026-03-02"}) {
		t.Fatalf("unexpected keys: %v", got)
	}
	if !reflect.DeepEqual(DateKeys(first), DateKeys(second)) {
		t.Fatalf("keys differ between calls")
	}
	for i := range first {
		if !reflect.DeepEqual(ids(first[i].Fixtures), ids(second[i].Fixtures)) {
			t.Fatalf("group %s ordering differs between calls", first[i].Date)
		}
	}
	if got := ids(first[0].Fixtures); !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Fatalf("expected input order inside group, got %v", got)
	}
	if got := ids(first[1].Fixtures); !reflect.DeepEqual(got, []int64{2, 4}) {
		t.Fatalf("expected input order inside group, got %v", got)
	}
}

func TestGroupByLeague_KeepsFirstLeagueAndOrder(t *testing.T) {
	t.Parallel()

	input := []Fixture{
		sample(10, "2026-03-01T15:00:00+00:00", 292),
		sample(11, "2026-03-01T15:00:00+00:00", 39),
		sample(12, "2026-03-01T17:00:00+00:00", 292),
	}
	input[0].League.Round = "Regular Season - 3"

	groups := GroupByLeague(input)
	if got := LeagueKeys(groups); !reflect.DeepEqual(got, []int64{292, 39}) {
		t.Fatalf("unexpected league keys: %v", got)
	}
	if groups[0].League.Round != "Regular Season - 3" {
		t.Fatalf("expected league of first fixture, got %+v", groups[0].League)
	}
	if got := ids(groups[0].Fixtures); !reflect.DeepEqual(got, []int64{10, 12}) {
		t.Fatalf("unexpected order: %v", got)
	}
	if !reflect.DeepEqual(LeagueKeys(GroupByLeague(input)), LeagueKeys(groups)) {
		t.Fatalf("grouping is not idempotent")
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	t.Parallel()

	if groups := GroupByDate(nil); len(groups) != 0 || groups == nil {
		t.Fatalf("expected empty non-nil groups, got %#v", groups)
	}
}

func TestSortByLeaguePriority(t *testing.T) {
	t.Parallel()

	input := []Fixture{
		sample(1, "2026-03-01T15:00:00+00:00", 253),
		sample(2, "2026-03-01T15:00:00+00:00", 2),
		sample(3, "2026-03-01T15:00:00+00:00", 140),
		sample(4, "2026-03-01T15:00:00+00:00", 39),
		sample(5, "2026-03-01T16:00:00+00:00", 2),
		sample(6, "2026-03-01T15:00:00+00:00", 292),
	}
	SortByLeaguePriority(input)

	if got := ids(input); !reflect.DeepEqual(got, []int64{4, 3, 2, 5, 6, 1}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestStatusSets(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{"1H", "2H", "HT", "ET", "BT", "P", "SUSP", "INT", "LIVE"} {
		if !s.IsLive() || s.IsFinished() {
			t.Fatalf("%s must be live only", s)
		}
	}
	for _, s := range []Status{"FT", "AET", "PEN"} {
		if !s.IsFinished() || s.IsLive() {
			t.Fatalf("%s must be finished only", s)
		}
	}
	for _, s := range []Status{"PST", "CANC", "ABD", "AWD", "WO"} {
		if s.IsLive() || s.IsFinished() || s.IsScheduled() {
			t.Fatalf("%s must be in no set", s)
		}
	}
	if NormalizeStatus(" pen ") != StatusPenalties {
		t.Fatalf("expected normalized PEN")
	}
}

func TestStatusText(t *testing.T) {
	t.Parallel()

	if StatusFullTime.Text() != "종료" {
		t.Fatalf("unexpected FT text %q", StatusFullTime.Text())
	}
	if Status("XYZ").Text() != "XYZ" {
		t.Fatalf("unknown status must fall back to code")
	}
}

func TestMatchClock(t *testing.T) {
	t.Parallel()

	minute := 67
	cases := []struct {
		elapsed *int
		status  Status
		want    string
	}{
		{elapsed: &minute, status: StatusSecondHalf, want: "67'"},
		{elapsed: &minute, status: StatusHalfTime, want: "HT"},
		{elapsed: nil, status: StatusFirstHalf, want: "-"},
		{elapsed: &minute, status: StatusNotStarted, want: "-"},
		{elapsed: &minute, status: StatusPenalties, want: "PEN"},
	}
	for _, tc := range cases {
		if got := MatchClock(tc.elapsed, tc.status); got != tc.want {
			t.Fatalf("MatchClock(%v, %s)=%q want %q", tc.elapsed, tc.status, got, tc.want)
		}
	}
}

func TestParseForm(t *testing.T) {
	t.Parallel()

	if got := ParseForm("WWDLW"); !reflect.DeepEqual(got, []FormResult{"W", "W", "D", "L", "W"}) {
		t.Fatalf("unexpected form: %v", got)
	}
	if got := ParseForm(""); len(got) != 0 {
		t.Fatalf("expected empty form, got %v", got)
	}
	if got := LastForm("LLWWDLW", 5); !reflect.DeepEqual(got, []FormResult{"W", "W", "D", "L", "W"}) {
		t.Fatalf("unexpected last form: %v", got)
	}
}

func TestFixture_DateKeyFallsBackToKickoff(t *testing.T) {
	t.Parallel()

	f := Fixture{KickoffAt: time.Date(2026, 5, 30, 19, 0, 0, 0, time.UTC)}
	if f.DateKey() != "2026-05-30" {
		t.Fatalf("unexpected date key %q", f.DateKey())
	}
}
