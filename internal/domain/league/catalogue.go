package league

import "time"

// Entry is a curated catalogue entry shown on the league list.
type Entry struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Country  string `json:"country,omitempty"`
	Tier     Tier   `json:"tier"`
}

// Section is a titled block of the league catalogue.
type Section struct {
	Key     string  `json:"key"`
	Title   string  `json:"title"`
	Leagues []Entry `json:"leagues"`
}

// Catalogue returns the curated league list in display order.
func Catalogue() []Section {
	return []Section{
		{
			Key:   "top5",
			Title: "5대 리그",
			Leagues: []Entry{
				{ID: PremierLeague, Name: "Premier League", FullName: "Premier League", Country: "England", Tier: TierTopDomestic},
				{ID: LaLiga, Name: "La Liga", FullName: "La Liga", Country: "Spain", Tier: TierTopDomestic},
				{ID: SerieA, Name: "Serie A", FullName: "Serie A", Country: "Italy", Tier: TierTopDomestic},
				{ID: Bundesliga, Name: "Bundesliga", FullName: "Bundesliga", Country: "Germany", Tier: TierTopDomestic},
				{ID: Ligue1, Name: "Ligue 1", FullName: "Ligue 1", Country: "France", Tier: TierTopDomestic},
			},
		},
		{
			Key:   "europe",
			Title: "유럽 대회",
			Leagues: []Entry{
				{ID: ChampionsLeague, Name: "UCL", FullName: "UEFA Champions League", Tier: TierContinental},
				{ID: EuropaLeague, Name: "UEL", FullName: "UEFA Europa League", Tier: TierContinental},
				{ID: ConferenceLeague, Name: "UECL", FullName: "UEFA Conference League", Tier: TierContinental},
			},
		},
		{
			Key:   "kleague",
			Title: "K리그",
			Leagues: []Entry{
				{ID: KLeague1, Name: "K리그1", FullName: "K League 1", Country: "South-Korea", Tier: TierRegional},
				{ID: KLeague2, Name: "K리그2", FullName: "K League 2", Country: "South-Korea", Tier: TierRegional},
			},
		},
		{
			Key:   "international",
			Title: "국가대항전",
			Leagues: []Entry{
				{ID: WorldCup, Name: "World Cup", FullName: "FIFA World Cup", Tier: TierRegional},
				{ID: Euro, Name: "EURO", FullName: "UEFA European Championship", Tier: TierRegional},
				{ID: AFCON, Name: "AFCON", FullName: "Africa Cup of Nations", Tier: TierRegional},
				{ID: CopaAmerica, Name: "Copa América", FullName: "Copa América", Tier: TierRegional},
				{ID: AFCAsianCup, Name: "Asian Cup", FullName: "AFC Asian Cup", Tier: TierRegional},
			},
		},
	}
}

// CurrentSeason returns the season year in effect at now: a season starting in
// July belongs to that calendar year until the following June.
func CurrentSeason(now time.Time) int {
	if now.Month() >= time.July {
		return now.Year()
	}
	return now.Year() - 1
}
