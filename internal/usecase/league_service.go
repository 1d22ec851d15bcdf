package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/kickoff-api/internal/domain/bracket"
	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
	"github.com/riskibarqy/kickoff-api/internal/domain/player"
	"github.com/riskibarqy/kickoff-api/internal/domain/standing"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"
)

type LeagueService struct {
	leagueRepo   league.Repository
	fixtureRepo  fixture.Repository
	standingRepo standing.Repository
	playerRepo   player.Repository
	clock        Clock
	logger       *logging.Logger
}

func NewLeagueService(
	leagueRepo league.Repository,
	fixtureRepo fixture.Repository,
	standingRepo standing.Repository,
	playerRepo player.Repository,
	clock Clock,
	logger *logging.Logger,
) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		leagueRepo:   leagueRepo,
		fixtureRepo:  fixtureRepo,
		standingRepo: standingRepo,
		playerRepo:   playerRepo,
		clock:        clock,
		logger:       logger.Named("league_service"),
	}
}

func (s *LeagueService) Catalogue() []league.Section {
	return league.Catalogue()
}

// season falls back to the season in effect today.
func (s *LeagueService) season(season int) int {
	if season > 0 {
		return season
	}
	return league.CurrentSeason(s.clock.now())
}

func (s *LeagueService) Info(ctx context.Context, leagueID int64) (league.Info, error) {
	if leagueID <= 0 {
		return league.Info{}, errors.Wrap(ErrInvalidInput, "league id must be positive")
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Info", attribute.Int64("league_id", leagueID))
	info, found, err := s.leagueRepo.League(ctx, leagueID)
	if err == nil && !found {
		err = errors.Wrapf(ErrNotFound, "league=%d", leagueID)
	}
	endUsecaseSpan(span, err)
	if err != nil {
		return league.Info{}, errors.Wrapf(err, "get league id=%d", leagueID)
	}
	return info, nil
}

type StandingsView struct {
	LeagueID       int64                   `json:"leagueId"`
	Season         int                     `json:"season"`
	Table          standing.Table          `json:"table"`
	Classification standing.Classification `json:"classification"`
}

func (s *LeagueService) Standings(ctx context.Context, leagueID int64, season int) (StandingsView, error) {
	if leagueID <= 0 {
		return StandingsView{}, errors.Wrap(ErrInvalidInput, "league id must be positive")
	}
	season = s.season(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Standings",
		attribute.Int64("league_id", leagueID), attribute.Int("season", season))
	table, err := s.standingRepo.Standings(ctx, leagueID, season)
	endUsecaseSpan(span, err)
	if err != nil {
		return StandingsView{}, errors.Wrapf(err, "get standings league=%d season=%d", leagueID, season)
	}
	return StandingsView{
		LeagueID:       leagueID,
		Season:         season,
		Table:          table,
		Classification: standing.Classify(table),
	}, nil
}

type LeagueFixturesView struct {
	LeagueID int64               `json:"leagueId"`
	Season   int                 `json:"season"`
	Total    int                 `json:"total"`
	Dates    []fixture.DateGroup `json:"dates"`
}

func (s *LeagueService) Fixtures(ctx context.Context, leagueID int64, season int) (LeagueFixturesView, error) {
	items, season, err := s.leagueFixtures(ctx, leagueID, season)
	if err != nil {
		return LeagueFixturesView{}, err
	}
	fixture.SortByKickoff(items)
	return LeagueFixturesView{
		LeagueID: leagueID,
		Season:   season,
		Total:    len(items),
		Dates:    fixture.GroupByDate(items),
	}, nil
}

func (s *LeagueService) leagueFixtures(ctx context.Context, leagueID int64, season int) ([]fixture.Fixture, int, error) {
	if leagueID <= 0 {
		return nil, 0, errors.Wrap(ErrInvalidInput, "league id must be positive")
	}
	season = s.season(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Fixtures",
		attribute.Int64("league_id", leagueID), attribute.Int("season", season))
	items, err := s.fixtureRepo.FixturesByLeague(ctx, leagueID, season)
	endUsecaseSpan(span, err)
	if err != nil {
		return nil, season, errors.Wrapf(err, "list fixtures league=%d season=%d", leagueID, season)
	}
	return items, season, nil
}

// Bracket derives the knockout bracket of a cup season. highlightTeamID may
// be zero.
func (s *LeagueService) Bracket(ctx context.Context, leagueID int64, season int, highlightTeamID int64) (bracket.Bracket, error) {
	items, _, err := s.leagueFixtures(ctx, leagueID, season)
	if err != nil {
		return bracket.Bracket{}, err
	}
	return bracket.Build(items, highlightTeamID), nil
}

// LeagueStatsView holds the player leaderboards of a season; each board
// loads on its own.
type LeagueStatsView struct {
	LeagueID    int64                    `json:"leagueId"`
	Season      int                      `json:"season"`
	TopScorers  Section[[]player.Player] `json:"topScorers"`
	TopAssists  Section[[]player.Player] `json:"topAssists"`
	YellowCards Section[[]player.Player] `json:"yellowCards"`
	RedCards    Section[[]player.Player] `json:"redCards"`
}

func (s *LeagueService) Stats(ctx context.Context, leagueID int64, season int) (LeagueStatsView, error) {
	if leagueID <= 0 {
		return LeagueStatsView{}, errors.Wrap(ErrInvalidInput, "league id must be positive")
	}
	season = s.season(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Stats",
		attribute.Int64("league_id", leagueID), attribute.Int("season", season))
	defer span.End()

	view := LeagueStatsView{LeagueID: leagueID, Season: season}
	targets := map[player.LeaderKind]*Section[[]player.Player]{
		player.LeaderTopScorers:     &view.TopScorers,
		player.LeaderTopAssists:     &view.TopAssists,
		player.LeaderTopYellowCards: &view.YellowCards,
		player.LeaderTopRedCards:    &view.RedCards,
	}

	var wg conc.WaitGroup
	for _, kind := range player.LeaderKinds {
		target := targets[kind]
		wg.Go(func() {
			leaders, err := s.playerRepo.Leaders(ctx, kind, leagueID, season)
			if err != nil {
				s.logger.WarnContext(ctx, "league leaderboard failed",
					"kind", string(kind), "league_id", leagueID, "season", season, "error", err)
			}
			*target = sectionOf(leaders, err)
		})
	}
	wg.Wait()
	return view, nil
}
