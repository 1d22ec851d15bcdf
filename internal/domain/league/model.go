package league

import "strings"

// League is a competition as delivered by the data provider.
type League struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Flag    string `json:"flag,omitempty"`
	Season  int    `json:"season,omitempty"`
	// Round is the free-text round label attached to a fixture, e.g. "Quarter-finals".
	Round string `json:"round,omitempty"`
}

// Season is one season entry of a league with its coverage window.
type Season struct {
	Year    int    `json:"year"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current"`
}

// Info is a league together with its known seasons.
type Info struct {
	League  League   `json:"league"`
	Seasons []Season `json:"seasons"`
}

// CurrentSeason returns the season flagged current, or false when none is.
func (i Info) CurrentSeason() (Season, bool) {
	for _, s := range i.Seasons {
		if s.Current {
			return s, true
		}
	}
	return Season{}, false
}

// IsCup reports whether the provider types the competition as a cup.
func (l League) IsCup() bool {
	return strings.EqualFold(strings.TrimSpace(l.Type), "cup")
}
