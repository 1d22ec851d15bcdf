package standing

import "github.com/riskibarqy/kickoff-api/internal/domain/round"

// Format is the standings layout of a competition season.
type Format string

const (
	FormatEmpty       Format = "empty"
	FormatLeaguePhase Format = "league_phase"
	FormatGroups      Format = "groups"
)

// Band is the qualification outcome attached to a rank.
type Band string

const (
	BandDirectAdvance Band = "direct_advance"
	BandPlayOff       Band = "playoff"
	BandEliminated    Band = "eliminated"
	BandQualified     Band = "qualified"
	BandNotQualified  Band = "not_qualified"
)

const (
	leaguePhaseDirectMax  = 8
	leaguePhasePlayOffMax = 24
	groupQualifiedMax     = 2
)

// ClassifiedRow is a standings row with its band.
type ClassifiedRow struct {
	Row
	Band Band `json:"band"`
}

// ClassifiedGroup is one group of a classified table.
type ClassifiedGroup struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Rows        []ClassifiedRow `json:"rows"`
}

// Classification is a table annotated with qualification bands.
type Classification struct {
	Format Format            `json:"format"`
	Groups []ClassifiedGroup `json:"groups"`
}

// Classify decides the format from the group count of this table alone and
// bands every row. A single group is a league phase (1-8 direct, 9-24
// play-off, rest eliminated); several groups qualify the top two of each.
func Classify(table Table) Classification {
	switch {
	case len(table.Groups) == 0:
		return Classification{Format: FormatEmpty, Groups: []ClassifiedGroup{}}
	case len(table.Groups) == 1:
		return Classification{
			Format: FormatLeaguePhase,
			Groups: []ClassifiedGroup{classifyGroup(table, 0, LeaguePhaseBand)},
		}
	default:
		groups := make([]ClassifiedGroup, 0, len(table.Groups))
		for i := range table.Groups {
			groups = append(groups, classifyGroup(table, i, GroupBand))
		}
		return Classification{Format: FormatGroups, Groups: groups}
	}
}

func classifyGroup(table Table, i int, band func(rank int) Band) ClassifiedGroup {
	name := table.GroupName(i)
	rows := make([]ClassifiedRow, 0, len(table.Groups[i]))
	for _, row := range table.Groups[i] {
		rows = append(rows, ClassifiedRow{Row: row, Band: band(row.Rank)})
	}
	return ClassifiedGroup{Name: name, DisplayName: round.GroupName(name), Rows: rows}
}

func LeaguePhaseBand(rank int) Band {
	switch {
	case rank <= leaguePhaseDirectMax:
		return BandDirectAdvance
	case rank <= leaguePhasePlayOffMax:
		return BandPlayOff
	default:
		return BandEliminated
	}
}

func GroupBand(rank int) Band {
	if rank <= groupQualifiedMax {
		return BandQualified
	}
	return BandNotQualified
}
