// Package round classifies free-text round labels from the data provider.
//
// Labels are matched case-insensitively against a fixed rule table; the first
// matching rule wins, and labels matching no rule fall back to Unrecognized.
// New provider labels are added to the table together with a regression
// fixture in round_test.go.
package round

import (
	"regexp"
	"strings"
)

// TaxonomyVersion identifies the rule table below. Bump it whenever a rule is
// added, removed or reordered.
const TaxonomyVersion = 1

// Order ranks a round; larger values are closer to the final.
const (
	Final        = 100
	ThirdPlace   = 99
	Semifinal    = 80
	Quarterfinal = 70
	RoundOf16    = 60
	RoundOf32    = 50
	RoundOf64    = 40
	GroupStage   = 30
	PlayOff      = 20
	Qualifying   = 10
	Unrecognized = 0
)

// MainBracketThreshold is the lowest order shown in a knockout bracket.
const MainBracketThreshold = RoundOf64

type matcher func(label string) bool

func exact(values ...string) matcher {
	return func(label string) bool {
		for _, v := range values {
			if label == v {
				return true
			}
		}
		return false
	}
}

func contains(values ...string) matcher {
	return func(label string) bool {
		for _, v := range values {
			if strings.Contains(label, v) {
				return true
			}
		}
		return false
	}
}

type rule struct {
	order   int
	display string
	match   matcher
}

// rules are evaluated top to bottom. Order matters: "Semi-finals" also
// contains "final" and must not reach the final rule through a substring.
var rules = []rule{
	{order: Final, display: "결승", match: func(l string) bool { return exact("final")(l) || contains("1/2-finals")(l) }},
	{order: ThirdPlace, display: "3·4위전", match: contains("3rd place")},
	{order: Semifinal, display: "준결승", match: contains("semi", "1/4-finals")},
	{order: Quarterfinal, display: "8강", match: contains("quarter", "1/8-finals")},
	{order: RoundOf16, display: "16강", match: contains("round of 16", "1/16-finals")},
	{order: RoundOf32, display: "32강", match: contains("round of 32", "1/32-finals")},
	{order: RoundOf64, display: "64강", match: contains("round of 64", "1/64-finals")},
	{order: GroupStage, display: "조별리그", match: contains("group")},
	{order: PlayOff, display: "플레이오프", match: contains("play-off", "playoff")},
	{order: Qualifying, display: "예선", match: contains("qualifying", "preliminary")},
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

func classify(label string) (rule, bool) {
	normalized := normalize(label)
	if normalized == "" {
		return rule{}, false
	}
	for _, r := range rules {
		if r.match(normalized) {
			return r, true
		}
	}
	return rule{}, false
}

// Order returns the rank of a round label, Unrecognized when no rule matches.
func Order(label string) int {
	if r, ok := classify(label); ok {
		return r.order
	}
	return Unrecognized
}

// IsMainBracket reports whether the round belongs in the knockout bracket view.
func IsMainBracket(label string) bool {
	return Order(label) >= MainBracketThreshold
}

var (
	groupLetterPattern = regexp.MustCompile(`(?i)group\s+([a-z])\b`)
	numberedPattern    = regexp.MustCompile(`(?i)(?:regular season|league stage|round)\s*-?\s*(\d+)$`)
)

// DisplayName returns the localized round name. Group letters and numbered
// rounds are rendered from the label itself; anything unrecognized is returned
// unchanged.
func DisplayName(label string) string {
	trimmed := strings.TrimSpace(label)
	if m := groupLetterPattern.FindStringSubmatch(trimmed); m != nil {
		return strings.ToUpper(m[1]) + "조"
	}
	if r, ok := classify(trimmed); ok {
		return r.display
	}
	if m := numberedPattern.FindStringSubmatch(trimmed); m != nil {
		return m[1] + "라운드"
	}
	return label
}

// GroupName renders "Group A" as "A조" and leaves other names as they are.
func GroupName(name string) string {
	if m := groupLetterPattern.FindStringSubmatch(name); m != nil {
		return strings.ToUpper(m[1]) + "조"
	}
	return name
}
