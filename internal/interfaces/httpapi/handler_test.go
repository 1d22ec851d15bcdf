package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
	fixturemock "github.com/riskibarqy/kickoff-api/internal/mocks/domain/fixture"
	leaguemock "github.com/riskibarqy/kickoff-api/internal/mocks/domain/league"
	matchmock "github.com/riskibarqy/kickoff-api/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/kickoff-api/internal/mocks/domain/player"
	standingmock "github.com/riskibarqy/kickoff-api/internal/mocks/domain/standing"
	teammock "github.com/riskibarqy/kickoff-api/internal/mocks/domain/team"
	"github.com/riskibarqy/kickoff-api/internal/notify"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
	"github.com/riskibarqy/kickoff-api/internal/share"
	"github.com/riskibarqy/kickoff-api/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	fixtures *fixturemock.Repository
	leagues  *leaguemock.Repository
	notices  *notify.Bus
	metrics  *recordingMetrics
	router   http.Handler
}

type observedRequest struct {
	route  string
	method string
	status int
}

type recordingMetrics struct {
	mu       sync.Mutex
	observed []observedRequest
}

func (m *recordingMetrics) ObserveHTTP(route, method string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observed = append(m.observed, observedRequest{route: route, method: method, status: status})
}

func newTestRouter(t *testing.T) testDeps {
	t.Helper()

	clock := usecase.Clock{
		Now:      func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
		Location: time.UTC,
	}
	logger := logging.NewNop()

	fixtureRepo := fixturemock.NewRepository(t)
	leagueRepo := leaguemock.NewRepository(t)
	matchRepo := matchmock.NewRepository(t)
	standingRepo := standingmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	sharer, err := share.NewWebSharer("https://kickoff.example.com")
	require.NoError(t, err)

	bus := notify.NewBus(time.Minute)
	t.Cleanup(bus.Close)

	handler := NewHandler(
		usecase.NewFixtureService(fixtureRepo, matchRepo, clock, logger),
		usecase.NewLeagueService(leagueRepo, fixtureRepo, standingRepo, playerRepo, clock, logger),
		usecase.NewTeamService(teamRepo, fixtureRepo, standingRepo, clock, logger),
		usecase.NewPlayerService(playerRepo, fixtureRepo, matchRepo, nil, clock, logger),
		bus,
		sharer,
		logger,
	)
	metrics := &recordingMetrics{}

	return testDeps{
		fixtures: fixtureRepo,
		leagues:  leagueRepo,
		notices:  bus,
		metrics:  metrics,
		router:   NewRouter(handler, logger, []string{"*"}, metrics, http.NotFoundHandler()),
	}
}

func serve(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body), "body=%s", rec.Body.String())
	return rec, body
}

func errorStatus(t *testing.T, body map[string]any) string {
	t.Helper()
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error object, got %v", body)
	status, _ := errObj["status"].(string)
	return status
}

func TestHealthz_AssignsRequestID(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)

	rec, body := serve(t, deps.router, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(requestIDHeader))
	data, _ := body["data"].(map[string]any)
	require.Equal(t, "ok", data["status"])
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	deps.router.ServeHTTP(rec, req)

	require.Equal(t, "req-123", rec.Header().Get(requestIDHeader))
}

func TestGetMatch_RejectsBadIDs(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)

	for _, target := range []string{"/v1/matches/abc", "/v1/matches/0", "/v1/matches/-4"} {
		rec, body := serve(t, deps.router, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
		require.Equal(t, "INVALID_ARGUMENT", errorStatus(t, body), target)
	}
}

func TestGetLeague_NotFound(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)
	deps.leagues.On("League", mock.Anything, int64(77)).Return(league.Info{}, false, nil).Once()

	rec, body := serve(t, deps.router, "/v1/leagues/77")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", errorStatus(t, body))
}

func TestGetLeagueStandings_RejectsSeasonOutOfRange(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)

	rec, body := serve(t, deps.router, "/v1/leagues/39/standings?season=1066")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "INVALID_ARGUMENT", errorStatus(t, body))
}

func TestGetLive_GroupsByLeague(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)

	kickoff := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	deps.fixtures.On("LiveFixtures", mock.Anything).Return([]fixture.Fixture{
		{ID: 1, KickoffAt: kickoff, Status: fixture.StatusFirstHalf, League: league.League{ID: 292}},
		{ID: 2, KickoffAt: kickoff, Status: fixture.StatusSecondHalf, League: league.League{ID: league.PremierLeague}},
	}, nil).Once()

	rec, body := serve(t, deps.router, "/v1/live")
	require.Equal(t, http.StatusOK, rec.Code)

	data, _ := body["data"].(map[string]any)
	require.EqualValues(t, 2, data["total"])
	groups, _ := data["leagues"].([]any)
	require.Len(t, groups, 2)
}

func TestGetLive_UpstreamFailureIsBadGateway(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)
	deps.fixtures.On("LiveFixtures", mock.Anything).
		Return(nil, errors.Wrap(usecase.ErrUpstream, "rateLimit")).Once()

	rec, body := serve(t, deps.router, "/v1/live")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, "BAD_GATEWAY", errorStatus(t, body))
}

func TestGetLive_ClientCancelIsNotInternalError(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)
	deps.fixtures.On("LiveFixtures", mock.Anything).
		Return(nil, errors.Wrap(context.Canceled, "get fixtures")).Once()

	rec, body := serve(t, deps.router, "/v1/live")
	require.Equal(t, statusClientClosedRequest, rec.Code)
	require.Equal(t, "CANCELLED", errorStatus(t, body))
}

func TestGetSchedule_RejectsMalformedDate(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)

	rec, _ := serve(t, deps.router, "/v1/schedule?date=03-01-2026")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTeamStanding_RequiresLeague(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)

	rec, _ := serve(t, deps.router, "/v1/teams/33/standings")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serve(t, deps.router, "/v1/teams/33/standings?league=x")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPlayerAppearances_RequiresTeam(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)

	rec, _ := serve(t, deps.router, "/v1/players/276/appearances")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCurrentNotice(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)

	_, body := serve(t, deps.router, "/v1/notices/current")
	data, _ := body["data"].(map[string]any)
	require.Equal(t, false, data["visible"])

	deps.notices.Publish(notify.LevelSuccess, "Arsenal 1-0 Chelsea (Premier League)")

	_, body = serve(t, deps.router, "/v1/notices/current")
	data, _ = body["data"].(map[string]any)
	require.Equal(t, true, data["visible"])
	notice, _ := data["notice"].(map[string]any)
	require.Equal(t, "Arsenal 1-0 Chelsea (Premier League)", notice["message"])
}

func TestGetShare(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)

	rec, body := serve(t, deps.router, "/v1/share?path=/match/1035")
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := body["data"].(map[string]any)
	require.Equal(t, "web", data["mode"])
	require.Equal(t, "https://kickoff.example.com/match/1035", data["url"])

	rec, _ = serve(t, deps.router, "/v1/share?path=match")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ObservesRoutePattern(t *testing.T) {
	t.Parallel()
	deps := newTestRouter(t)
	deps.leagues.On("League", mock.Anything, int64(39)).Return(league.Info{}, false, nil).Once()

	serve(t, deps.router, "/v1/leagues/39")

	deps.metrics.mu.Lock()
	defer deps.metrics.mu.Unlock()
	require.Len(t, deps.metrics.observed, 1)
	require.Equal(t, observedRequest{route: "GET /v1/leagues/{id}", method: http.MethodGet, status: http.StatusNotFound}, deps.metrics.observed[0])
}
