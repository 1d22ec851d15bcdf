package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
	"github.com/riskibarqy/kickoff-api/internal/domain/player"
	"github.com/riskibarqy/kickoff-api/internal/domain/standing"
	"github.com/riskibarqy/kickoff-api/internal/domain/team"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"
)

const teamRecentFixtures = 20

type TeamService struct {
	teamRepo     team.Repository
	fixtureRepo  fixture.Repository
	standingRepo standing.Repository
	clock        Clock
	logger       *logging.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	standingRepo standing.Repository,
	clock Clock,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		teamRepo:     teamRepo,
		fixtureRepo:  fixtureRepo,
		standingRepo: standingRepo,
		clock:        clock,
		logger:       logger.Named("team_service"),
	}
}

func (s *TeamService) season(season int) int {
	if season > 0 {
		return season
	}
	return league.CurrentSeason(s.clock.now())
}

// TeamOverview is a team profile with its squad, competitions and transfer
// history loaded as independent sections.
type TeamOverview struct {
	Info      team.Info                         `json:"info"`
	Squad     Section[[]team.PositionGroup]     `json:"squad"`
	Leagues   Section[[]team.Competition]       `json:"leagues"`
	Transfers Section[[]player.TransferHistory] `json:"transfers"`
}

func (s *TeamService) Overview(ctx context.Context, teamID int64) (TeamOverview, error) {
	if teamID <= 0 {
		return TeamOverview{}, errors.Wrap(ErrInvalidInput, "team id must be positive")
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Overview", attribute.Int64("team_id", teamID))
	var err error
	defer func() { endUsecaseSpan(span, err) }()

	info, found, err := s.teamRepo.Team(ctx, teamID)
	if err != nil {
		return TeamOverview{}, errors.Wrapf(err, "get team id=%d", teamID)
	}
	if !found {
		err = errors.Wrapf(ErrNotFound, "team=%d", teamID)
		return TeamOverview{}, err
	}

	season := s.season(0)
	view := TeamOverview{Info: info}
	logger := s.logger.With("team_id", teamID)
	var wg conc.WaitGroup
	wg.Go(func() {
		squad, _, err := s.teamRepo.Squad(ctx, teamID)
		view.Squad = loggedSection(ctx, logger, "team overview section failed", "squad", squad.ByPosition(), err)
	})
	wg.Go(func() {
		leagues, err := s.teamRepo.TeamLeagues(ctx, teamID, season)
		view.Leagues = loggedSection(ctx, logger, "team overview section failed", "leagues", leagues, err)
	})
	wg.Go(func() {
		transfers, err := s.teamRepo.TeamTransfers(ctx, teamID)
		view.Transfers = loggedSection(ctx, logger, "team overview section failed", "transfers", transfers, err)
	})
	wg.Wait()
	return view, nil
}

// RecentFixtures returns the team's finished fixtures of the season, most
// recent first, capped at twenty.
func (s *TeamService) RecentFixtures(ctx context.Context, teamID int64, season int) ([]fixture.Fixture, error) {
	if teamID <= 0 {
		return nil, errors.Wrap(ErrInvalidInput, "team id must be positive")
	}
	season = s.season(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RecentFixtures",
		attribute.Int64("team_id", teamID), attribute.Int("season", season))
	items, err := s.fixtureRepo.FixturesByTeam(ctx, teamID, season)
	endUsecaseSpan(span, err)
	if err != nil {
		return nil, errors.Wrapf(err, "list fixtures team=%d season=%d", teamID, season)
	}

	finished := fixture.Filter(items, fixture.Fixture.IsFinished)
	fixture.SortByKickoffDesc(finished)
	if len(finished) > teamRecentFixtures {
		finished = finished[:teamRecentFixtures]
	}
	return finished, nil
}

// TeamStandingView is the team's row in a league table. Found is false when
// the team is not part of the table.
type TeamStandingView struct {
	Found          bool                    `json:"found"`
	Season         int                     `json:"season"`
	Location       standing.Location       `json:"location"`
	Classification standing.Classification `json:"classification"`
}

func (s *TeamService) Standing(ctx context.Context, teamID, leagueID int64, season int) (TeamStandingView, error) {
	if teamID <= 0 || leagueID <= 0 {
		return TeamStandingView{}, errors.Wrap(ErrInvalidInput, "team and league ids must be positive")
	}
	season = s.season(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Standing",
		attribute.Int64("team_id", teamID), attribute.Int64("league_id", leagueID), attribute.Int("season", season))
	table, err := s.standingRepo.Standings(ctx, leagueID, season)
	endUsecaseSpan(span, err)
	if err != nil {
		return TeamStandingView{}, errors.Wrapf(err, "get standings league=%d season=%d", leagueID, season)
	}

	location, found := standing.Locate(table, teamID)
	return TeamStandingView{
		Found:          found,
		Season:         season,
		Location:       location,
		Classification: standing.Classify(table),
	}, nil
}

type TeamStatsView struct {
	Stats     team.SeasonStats `json:"stats"`
	Formation *team.Lineup     `json:"formation,omitempty"`
}

func (s *TeamService) Stats(ctx context.Context, teamID, leagueID int64, season int) (TeamStatsView, error) {
	if teamID <= 0 || leagueID <= 0 {
		return TeamStatsView{}, errors.Wrap(ErrInvalidInput, "team and league ids must be positive")
	}
	season = s.season(season)
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Stats",
		attribute.Int64("team_id", teamID), attribute.Int64("league_id", leagueID), attribute.Int("season", season))
	stats, found, err := s.teamRepo.TeamStatistics(ctx, teamID, leagueID, season)
	if err == nil && !found {
		err = errors.Wrapf(ErrNotFound, "team statistics team=%d league=%d season=%d", teamID, leagueID, season)
	}
	endUsecaseSpan(span, err)
	if err != nil {
		return TeamStatsView{}, errors.Wrap(err, "get team statistics")
	}

	view := TeamStatsView{Stats: stats}
	if formation, ok := stats.MostUsedFormation(); ok {
		view.Formation = &formation
	}
	return view, nil
}
