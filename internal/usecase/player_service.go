package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
	"github.com/riskibarqy/kickoff-api/internal/domain/match"
	"github.com/riskibarqy/kickoff-api/internal/domain/player"
	"github.com/riskibarqy/kickoff-api/internal/platform/cache"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"
)

const (
	seasonLookback          = 5
	appearanceScanLimit     = 30
	appearanceTarget        = 20
	defaultAppearanceWorker = 4

	seasonsCacheTTL     = 10 * time.Minute
	appearancesCacheTTL = 5 * time.Minute
)

type PlayerService struct {
	playerRepo  player.Repository
	fixtureRepo fixture.Repository
	matchRepo   match.Repository
	store       *cache.Store
	clock       Clock
	logger      *logging.Logger
	workers     int
}

// NewPlayerService builds the player use cases. store may be nil, in which
// case aggregated results are recomputed on every call.
func NewPlayerService(
	playerRepo player.Repository,
	fixtureRepo fixture.Repository,
	matchRepo match.Repository,
	store *cache.Store,
	clock Clock,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		playerRepo:  playerRepo,
		fixtureRepo: fixtureRepo,
		matchRepo:   matchRepo,
		store:       store,
		clock:       clock,
		logger:      logger.Named("player_service"),
		workers:     defaultAppearanceWorker,
	}
}

// WithAppearanceWorkers sets the size of the appearance scan pool.
func (s *PlayerService) WithAppearanceWorkers(n int) *PlayerService {
	if n > 0 {
		s.workers = n
	}
	return s
}

// PlayerProfileView is a player's season record with career sections that
// load independently.
type PlayerProfileView struct {
	Player    player.Player               `json:"player"`
	Season    int                         `json:"season"`
	Transfers Section[[]player.Transfer]  `json:"transfers"`
	Trophies  Section[[]player.Trophy]    `json:"trophies"`
	Sidelined Section[[]player.Sidelined] `json:"sidelined"`
}

func (s *PlayerService) Profile(ctx context.Context, playerID int64, season int) (PlayerProfileView, error) {
	if playerID <= 0 {
		return PlayerProfileView{}, errors.Wrap(ErrInvalidInput, "player id must be positive")
	}
	if season <= 0 {
		season = league.CurrentSeason(s.clock.now())
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Profile",
		attribute.Int64("player_id", playerID), attribute.Int("season", season))
	var err error
	defer func() { endUsecaseSpan(span, err) }()

	p, found, err := s.playerRepo.Player(ctx, playerID, season)
	if err != nil {
		return PlayerProfileView{}, errors.Wrapf(err, "get player id=%d season=%d", playerID, season)
	}
	if !found {
		err = errors.Wrapf(ErrNotFound, "player=%d season=%d", playerID, season)
		return PlayerProfileView{}, err
	}

	view := PlayerProfileView{Player: p, Season: season}
	logger := s.logger.With("player_id", playerID)
	var wg conc.WaitGroup
	wg.Go(func() {
		v, err := s.playerRepo.PlayerTransfers(ctx, playerID)
		view.Transfers = loggedSection(ctx, logger, "player profile section failed", "transfers", v, err)
	})
	wg.Go(func() {
		v, err := s.playerRepo.Trophies(ctx, playerID)
		view.Trophies = loggedSection(ctx, logger, "player profile section failed", "trophies", v, err)
	})
	wg.Go(func() {
		v, err := s.playerRepo.Sidelined(ctx, playerID)
		view.Sidelined = loggedSection(ctx, logger, "player profile section failed", "sidelined", v, err)
	})
	wg.Wait()
	return view, nil
}

// Seasons aggregates the player's last five seasons counted back from the
// current calendar year. A failing season is logged and left out, as is a
// season without appearances. Most recent season first.
func (s *PlayerService) Seasons(ctx context.Context, playerID int64) ([]player.SeasonStats, error) {
	if playerID <= 0 {
		return nil, errors.Wrap(ErrInvalidInput, "player id must be positive")
	}
	currentYear := s.clock.now().Year()
	key := fmt.Sprintf("player_seasons:%d:%d", playerID, currentYear)
	v, err := s.cached(ctx, key, seasonsCacheTTL, func(ctx context.Context) (any, error) {
		seasons := s.loadSeasons(ctx, playerID, currentYear)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return seasons, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]player.SeasonStats), nil
}

func (s *PlayerService) loadSeasons(ctx context.Context, playerID int64, currentYear int) []player.SeasonStats {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Seasons", attribute.Int64("player_id", playerID))
	defer span.End()

	years := make([]int, seasonLookback)
	for i := range years {
		years[i] = currentYear - i
	}

	results := iter.Map(years, func(year *int) *player.SeasonStats {
		p, found, err := s.playerRepo.Player(ctx, playerID, *year)
		if err != nil {
			s.logger.WarnContext(ctx, "player season load failed", "player_id", playerID, "season", *year, "error", err)
			return nil
		}
		if !found || !p.HasAppearances() {
			return nil
		}
		return &player.SeasonStats{
			Season:      *year,
			Appearances: p.Appearances(),
			Player:      p.Profile,
			Statistics:  p.Statistics,
		}
	})

	out := make([]player.SeasonStats, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// Appearances scans the team's finished fixtures of the season, most recent
// first, for matches the player took part in. At most thirty fixtures are
// examined and the scan stops after twenty appearances. Fixtures whose player
// lines cannot be loaded are skipped.
func (s *PlayerService) Appearances(ctx context.Context, playerID, teamID int64, season int) ([]player.Appearance, error) {
	if playerID <= 0 || teamID <= 0 {
		return nil, errors.Wrap(ErrInvalidInput, "player and team ids must be positive")
	}
	if season <= 0 {
		season = league.CurrentSeason(s.clock.now())
	}
	key := fmt.Sprintf("player_appearances:%d:%d:%d", playerID, teamID, season)
	v, err := s.cached(ctx, key, appearancesCacheTTL, func(ctx context.Context) (any, error) {
		return s.scanAppearances(ctx, playerID, teamID, season)
	})
	if err != nil {
		return nil, err
	}
	return v.([]player.Appearance), nil
}

func (s *PlayerService) scanAppearances(ctx context.Context, playerID, teamID int64, season int) ([]player.Appearance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Appearances",
		attribute.Int64("player_id", playerID), attribute.Int64("team_id", teamID), attribute.Int("season", season))
	var err error
	defer func() { endUsecaseSpan(span, err) }()

	items, err := s.fixtureRepo.FixturesByTeam(ctx, teamID, season)
	if err != nil {
		return nil, errors.Wrapf(err, "list fixtures team=%d season=%d", teamID, season)
	}
	finished := fixture.Filter(items, fixture.Fixture.IsFinished)
	fixture.SortByKickoffDesc(finished)
	if len(finished) > appearanceScanLimit {
		finished = finished[:appearanceScanLimit]
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	slots := make([]*player.Appearance, len(finished))
	var found atomic.Int32
	var workers sync.WaitGroup
	for i, f := range finished {
		workers.Add(1)
		if err = pool.Submit(func() {
			defer workers.Done()
			if found.Load() >= appearanceTarget || ctx.Err() != nil {
				return
			}
			stats, ok := s.fixtureAppearance(ctx, f.ID, playerID)
			if !ok {
				return
			}
			slots[i] = &player.Appearance{Fixture: f, Stats: stats}
			found.Add(1)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, errors.Wrap(err, "submit appearance scan")
		}
	}
	workers.Wait()

	out := make([]player.Appearance, 0, appearanceTarget)
	for _, a := range slots {
		if a == nil {
			continue
		}
		out = append(out, *a)
		if len(out) == appearanceTarget {
			break
		}
	}
	return out, nil
}

func (s *PlayerService) fixtureAppearance(ctx context.Context, fixtureID, playerID int64) (player.FixtureStats, bool) {
	teams, err := s.matchRepo.FixturePlayers(ctx, fixtureID)
	if err != nil {
		s.logger.DebugContext(ctx, "skip fixture in appearance scan", "fixture_id", fixtureID, "error", err)
		return player.FixtureStats{}, false
	}
	for _, t := range teams {
		line, ok := t.Find(playerID)
		if !ok {
			continue
		}
		stats, ok := line.Stats()
		if !ok || !stats.Played() {
			return player.FixtureStats{}, false
		}
		return stats, true
	}
	return player.FixtureStats{}, false
}

func (s *PlayerService) cached(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (any, error)) (any, error) {
	if s.store == nil {
		return loader(ctx)
	}
	return s.store.GetOrLoadTTL(ctx, key, ttl, loader)
}
