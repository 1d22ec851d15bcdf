package bracket

import (
	"sort"

	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/round"
)

// UnknownRound labels fixtures delivered without a round.
const UnknownRound = "Unknown"

// Advancement is one team's outcome of a finished knockout fixture.
type Advancement struct {
	FixtureID      int64  `json:"fixtureId"`
	TeamID         int64  `json:"teamId"`
	TeamName       string `json:"teamName"`
	TeamLogo       string `json:"teamLogo"`
	Advanced       bool   `json:"advanced"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	WonOnPenalties bool   `json:"wonOnPenalties"`
	OpponentName   string `json:"opponentName"`
	Highlighted    bool   `json:"highlighted,omitempty"`
}

// Round is one knockout round of the bracket.
type Round struct {
	Label        string            `json:"label"`
	DisplayName  string            `json:"displayName"`
	Order        int               `json:"order"`
	IsFinal      bool              `json:"isFinal"`
	Advancements []Advancement     `json:"advancements"`
	Pending      []fixture.Fixture `json:"pending"`
	fixtures     []fixture.Fixture
}

// Advanced returns the advancing records in fixture order.
func (r Round) Advanced() []Advancement {
	return filter(r.Advancements, true)
}

// Eliminated returns the eliminated records in fixture order.
func (r Round) Eliminated() []Advancement {
	return filter(r.Advancements, false)
}

// Fixtures returns every fixture of the round, finished or not.
func (r Round) Fixtures() []fixture.Fixture {
	return r.fixtures
}

func filter(records []Advancement, advanced bool) []Advancement {
	out := make([]Advancement, 0, len(records))
	for _, a := range records {
		if a.Advanced == advanced {
			out = append(out, a)
		}
	}
	return out
}

// Bracket lists the main knockout rounds, final first.
type Bracket struct {
	Rounds          []Round `json:"rounds"`
	TaxonomyVersion int     `json:"taxonomyVersion"`
}

// Empty reports whether no main bracket round exists.
func (b Bracket) Empty() bool {
	return len(b.Rounds) == 0
}

// GroupByRound groups fixtures by round label and sorts the groups by round
// order descending. Rounds of equal order keep first-seen order.
func GroupByRound(fixtures []fixture.Fixture) []Round {
	rounds := make([]Round, 0)
	index := make(map[string]int)
	for _, f := range fixtures {
		label := f.League.Round
		if label == "" {
			label = UnknownRound
		}
		pos, ok := index[label]
		if !ok {
			order := round.Order(label)
			pos = len(rounds)
			index[label] = pos
			rounds = append(rounds, Round{
				Label:       label,
				DisplayName: round.DisplayName(label),
				Order:       order,
				IsFinal:     order >= round.Final,
			})
		}
		rounds[pos].fixtures = append(rounds[pos].fixtures, f)
	}

	sort.SliceStable(rounds, func(i, j int) bool {
		return rounds[i].Order > rounds[j].Order
	})
	return rounds
}

// Build derives the knockout bracket from a competition's fixtures. Only
// rounds at or above round.MainBracketThreshold are kept. A non-zero
// highlightTeamID marks that team's records.
func Build(fixtures []fixture.Fixture, highlightTeamID int64) Bracket {
	out := Bracket{Rounds: make([]Round, 0), TaxonomyVersion: round.TaxonomyVersion}
	for _, r := range GroupByRound(fixtures) {
		if r.Order < round.MainBracketThreshold {
			continue
		}
		r.Advancements = Advancements(r.fixtures)
		r.Pending = fixture.Filter(r.fixtures, func(f fixture.Fixture) bool { return !f.IsFinished() })
		if highlightTeamID != 0 {
			for i := range r.Advancements {
				r.Advancements[i].Highlighted = r.Advancements[i].TeamID == highlightTeamID
			}
		}
		out.Rounds = append(out.Rounds, r)
	}
	return out
}

// Advancements returns home and away records for every finished fixture.
// The provider's winner flag is taken as is; aggregate scores across legs are
// not recomputed.
func Advancements(fixtures []fixture.Fixture) []Advancement {
	out := make([]Advancement, 0, len(fixtures)*2)
	for _, f := range fixtures {
		if !f.IsFinished() {
			continue
		}
		onPenalties := f.Status == fixture.StatusPenalties
		homeGoals, awayGoals := goals(f.Goals.Home), goals(f.Goals.Away)
		homeWon, awayWon := f.Home.IsWinner(), f.Away.IsWinner()

		out = append(out,
			Advancement{
				FixtureID:      f.ID,
				TeamID:         f.Home.ID,
				TeamName:       f.Home.Name,
				TeamLogo:       f.Home.Logo,
				Advanced:       homeWon,
				GoalsFor:       homeGoals,
				GoalsAgainst:   awayGoals,
				WonOnPenalties: onPenalties && homeWon,
				OpponentName:   f.Away.Name,
			},
			Advancement{
				FixtureID:      f.ID,
				TeamID:         f.Away.ID,
				TeamName:       f.Away.Name,
				TeamLogo:       f.Away.Logo,
				Advanced:       awayWon,
				GoalsFor:       awayGoals,
				GoalsAgainst:   homeGoals,
				WonOnPenalties: onPenalties && awayWon,
				OpponentName:   f.Home.Name,
			},
		)
	}
	return out
}

func goals(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
