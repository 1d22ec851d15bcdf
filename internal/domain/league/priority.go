package league

// Provider league ids for the curated competitions.
const (
	PremierLeague    int64 = 39
	LaLiga           int64 = 140
	SerieA           int64 = 135
	Bundesliga       int64 = 78
	Ligue1           int64 = 61
	ChampionsLeague  int64 = 2
	EuropaLeague     int64 = 3
	ConferenceLeague int64 = 848
	KLeague1         int64 = 292
	KLeague2         int64 = 293
	WorldCup         int64 = 1
	Euro             int64 = 4
	AFCON            int64 = 6
	CopaAmerica      int64 = 9
	AFCAsianCup      int64 = 17
)

// Tier is a league's priority bucket, lower is more prominent.
type Tier int

const (
	TierTopDomestic Tier = 1
	TierContinental Tier = 2
	TierRegional    Tier = 3
	TierOther       Tier = 4
)

var tiers = map[int64]Tier{
	PremierLeague:    TierTopDomestic,
	LaLiga:           TierTopDomestic,
	SerieA:           TierTopDomestic,
	Bundesliga:       TierTopDomestic,
	Ligue1:           TierTopDomestic,
	ChampionsLeague:  TierContinental,
	EuropaLeague:     TierContinental,
	ConferenceLeague: TierContinental,
	KLeague1:         TierRegional,
	KLeague2:         TierRegional,
	WorldCup:         TierRegional,
	Euro:             TierRegional,
	AFCON:            TierRegional,
	CopaAmerica:      TierRegional,
	AFCAsianCup:      TierRegional,
}

// Priority returns the sort priority for a league id; lower sorts first.
func Priority(leagueID int64) int {
	return int(TierOf(leagueID))
}

func TierOf(leagueID int64) Tier {
	if tier, ok := tiers[leagueID]; ok {
		return tier
	}
	return TierOther
}

// IsMajor reports whether the league is one of the curated tiers 1-3.
func IsMajor(leagueID int64) bool {
	_, ok := tiers[leagueID]
	return ok
}

// Less orders leagues by (priority, id) ascending.
func Less(a, b int64) bool {
	pa, pb := Priority(a), Priority(b)
	if pa != pb {
		return pa < pb
	}
	return a < b
}
