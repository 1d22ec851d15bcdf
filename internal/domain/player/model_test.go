package player

import "testing"

func intPtr(v int) *int { return &v }

func TestPlayer_Appearances(t *testing.T) {
	t.Parallel()

	p := Player{Statistics: []Statistics{
		{Games: Games{Appearences: intPtr(0)}},
		{Games: Games{Appearences: nil}},
		{Games: Games{Appearences: intPtr(3)}},
	}}
	if !p.HasAppearances() || p.Appearances() != 3 {
		t.Fatalf("unexpected appearances: has=%v total=%d", p.HasAppearances(), p.Appearances())
	}

	empty := Player{Statistics: []Statistics{{Games: Games{Appearences: intPtr(0)}}}}
	if empty.HasAppearances() {
		t.Fatalf("zero appearances must not count")
	}
}

func TestFixtureStats_Played(t *testing.T) {
	t.Parallel()

	if (FixtureStats{}).Played() {
		t.Fatalf("nil minutes must not count as played")
	}
	if (FixtureStats{Games: Games{Minutes: intPtr(0)}}).Played() {
		t.Fatalf("zero minutes must not count as played")
	}
	if !(FixtureStats{Games: Games{Minutes: intPtr(12)}}).Played() {
		t.Fatalf("expected played")
	}
}
