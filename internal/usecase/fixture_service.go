package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
	"github.com/riskibarqy/kickoff-api/internal/domain/match"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	featuredDays    = 7
	headToHeadLast  = 10
	ScheduleMajor   = "major"
	ScheduleAll     = "all"
	defaultSchedule = ScheduleMajor
)

type FixtureService struct {
	fixtureRepo fixture.Repository
	matchRepo   match.Repository
	clock       Clock
	logger      *logging.Logger
}

func NewFixtureService(fixtureRepo fixture.Repository, matchRepo match.Repository, clock Clock, logger *logging.Logger) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureService{
		fixtureRepo: fixtureRepo,
		matchRepo:   matchRepo,
		clock:       clock,
		logger:      logger.Named("fixture_service"),
	}
}

// LiveView lists running fixtures grouped by league in priority order.
type LiveView struct {
	Total   int                   `json:"total"`
	Leagues []fixture.LeagueGroup `json:"leagues"`
}

func (s *FixtureService) Live(ctx context.Context) (LiveView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Live")
	fixtures, err := s.liveFixtures(ctx)
	endUsecaseSpan(span, err)
	if err != nil {
		return LiveView{}, err
	}
	return LiveView{Total: len(fixtures), Leagues: fixture.GroupByLeague(fixtures)}, nil
}

func (s *FixtureService) liveFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	items, err := s.fixtureRepo.LiveFixtures(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list live fixtures")
	}
	live := fixture.Filter(items, fixture.Fixture.IsLive)
	fixture.SortByLeaguePriority(live)
	return live, nil
}

// ScheduleView is one day of fixtures after the league filter.
type ScheduleView struct {
	Date    string                `json:"date"`
	Filter  string                `json:"filter"`
	Total   int                   `json:"total"`
	Leagues []fixture.LeagueGroup `json:"leagues"`
}

// Schedule lists fixtures of date (YYYY-MM-DD, default today) filtered by
// "major", "all" or a league id.
func (s *FixtureService) Schedule(ctx context.Context, date, filter string) (ScheduleView, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = s.clock.today()
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return ScheduleView{}, errors.Wrapf(ErrInvalidInput, "date must be YYYY-MM-DD, got %q", date)
	}
	keep, filter, err := scheduleFilter(filter)
	if err != nil {
		return ScheduleView{}, err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Schedule", attribute.String("date", date), attribute.String("filter", filter))
	items, err := s.fixtureRepo.FixturesByDate(ctx, date)
	endUsecaseSpan(span, err)
	if err != nil {
		return ScheduleView{}, errors.Wrapf(err, "list fixtures date=%s", date)
	}

	fixture.SortByLeaguePriority(items)
	filtered := fixture.Filter(items, keep)
	return ScheduleView{
		Date:    date,
		Filter:  filter,
		Total:   len(filtered),
		Leagues: fixture.GroupByLeague(filtered),
	}, nil
}

func scheduleFilter(raw string) (func(fixture.Fixture) bool, string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", ScheduleMajor:
		return func(f fixture.Fixture) bool { return league.IsMajor(f.League.ID) }, defaultSchedule, nil
	case ScheduleAll:
		return func(fixture.Fixture) bool { return true }, ScheduleAll, nil
	}
	leagueID, err := strconv.ParseInt(value, 10, 64)
	if err != nil || leagueID <= 0 {
		return nil, "", errors.Wrapf(ErrInvalidInput, "filter must be major, all or a league id, got %q", raw)
	}
	return func(f fixture.Fixture) bool { return f.League.ID == leagueID }, value, nil
}

// Featured returns major-league fixtures of the next seven days, day by day.
// Any failed day fails the whole list.
func (s *FixtureService) Featured(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Featured")
	var err error
	defer func() { endUsecaseSpan(span, err) }()

	start := s.clock.now()
	days := make([][]fixture.Fixture, featuredDays)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < featuredDays; i++ {
		date := start.AddDate(0, 0, i).Format(time.DateOnly)
		g.Go(func() error {
			items, err := s.fixtureRepo.FixturesByDate(gctx, date)
			if err != nil {
				return errors.Wrapf(err, "list fixtures date=%s", date)
			}
			days[i] = items
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	out := make([]fixture.Fixture, 0)
	for _, items := range days {
		for _, f := range items {
			if league.IsMajor(f.League.ID) {
				out = append(out, f)
			}
		}
	}
	return out, nil
}

// DayView is one calendar date of upcoming fixtures grouped by league.
type DayView struct {
	Date    string                `json:"date"`
	Leagues []fixture.LeagueGroup `json:"leagues"`
}

type HomeView struct {
	Live     Section[LiveView]  `json:"live"`
	Upcoming Section[[]DayView] `json:"upcoming"`
}

// Home loads live fixtures and the upcoming featured schedule side by side;
// either section may fail without failing the other.
func (s *FixtureService) Home(ctx context.Context) HomeView {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Home")
	defer span.End()

	var view HomeView
	var wg conc.WaitGroup
	wg.Go(func() {
		live, err := s.Live(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "home live section failed", "error", err)
		}
		view.Live = sectionOf(live, err)
	})
	wg.Go(func() {
		featured, err := s.Featured(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "home upcoming section failed", "error", err)
		}
		view.Upcoming = sectionOf(upcomingDays(featured), err)
	})
	wg.Wait()
	return view
}

func upcomingDays(featured []fixture.Fixture) []DayView {
	upcoming := fixture.Filter(featured, fixture.Fixture.IsUpcoming)
	fixture.SortByKickoff(upcoming)

	dates := fixture.GroupByDate(upcoming)
	out := make([]DayView, 0, len(dates))
	for _, d := range dates {
		out = append(out, DayView{Date: d.Date, Leagues: fixture.GroupByLeague(d.Fixtures)})
	}
	return out
}

// MatchDetail is a fixture with every detail section loaded independently.
type MatchDetail struct {
	Fixture    fixture.Fixture                     `json:"fixture"`
	Clock      string                              `json:"clock"`
	StatusText string                              `json:"statusText"`
	Lineups    Section[[]match.Lineup]             `json:"lineups"`
	Statistics Section[[]match.TeamStatistics]     `json:"statistics"`
	Events     Section[[]match.Event]              `json:"events"`
	Players    Section[[]match.TeamPlayers]        `json:"players"`
	Prediction Section[Optional[match.Prediction]] `json:"prediction"`
	Odds       Section[Optional[match.Odds]]       `json:"odds"`
	HeadToHead Section[match.HeadToHead]           `json:"headToHead"`
}

func (s *FixtureService) MatchDetail(ctx context.Context, fixtureID int64) (MatchDetail, error) {
	if fixtureID <= 0 {
		return MatchDetail{}, errors.Wrap(ErrInvalidInput, "fixture id must be positive")
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.MatchDetail", attribute.Int64("fixture_id", fixtureID))
	var err error
	defer func() { endUsecaseSpan(span, err) }()

	f, found, err := s.fixtureRepo.Fixture(ctx, fixtureID)
	if err != nil {
		return MatchDetail{}, errors.Wrapf(err, "get fixture id=%d", fixtureID)
	}
	if !found {
		err = errors.Wrapf(ErrNotFound, "fixture=%d", fixtureID)
		return MatchDetail{}, err
	}

	detail := MatchDetail{Fixture: f, Clock: f.Clock(), StatusText: f.Status.Text()}
	logger := s.logger.With("fixture_id", fixtureID)
	var wg conc.WaitGroup
	wg.Go(func() {
		v, err := s.matchRepo.Lineups(ctx, fixtureID)
		detail.Lineups = loggedSection(ctx, logger, "match detail section failed", "lineups", v, err)
	})
	wg.Go(func() {
		v, err := s.matchRepo.FixtureStatistics(ctx, fixtureID)
		detail.Statistics = loggedSection(ctx, logger, "match detail section failed", "statistics", v, err)
	})
	wg.Go(func() {
		v, err := s.matchRepo.FixtureEvents(ctx, fixtureID)
		detail.Events = loggedSection(ctx, logger, "match detail section failed", "events", v, err)
	})
	wg.Go(func() {
		v, err := s.matchRepo.FixturePlayers(ctx, fixtureID)
		detail.Players = loggedSection(ctx, logger, "match detail section failed", "players", v, err)
	})
	wg.Go(func() {
		v, ok, err := s.matchRepo.Prediction(ctx, fixtureID)
		detail.Prediction = loggedSection(ctx, logger, "match detail section failed", "prediction", optionalOf(v, ok), err)
	})
	wg.Go(func() {
		v, ok, err := s.matchRepo.Odds(ctx, fixtureID)
		detail.Odds = loggedSection(ctx, logger, "match detail section failed", "odds", optionalOf(v, ok), err)
	})
	wg.Go(func() {
		v, err := s.fixtureRepo.HeadToHead(ctx, f.Home.ID, f.Away.ID, headToHeadLast)
		detail.HeadToHead = loggedSection(ctx, logger, "match detail section failed", "head_to_head", match.SummarizeHeadToHead(f.Home.ID, f.Away.ID, v), err)
	})
	wg.Wait()

	return detail, nil
}
