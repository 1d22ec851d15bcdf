package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/kickoff-api/internal/domain/fixture"
	"github.com/riskibarqy/kickoff-api/internal/domain/league"
	"github.com/riskibarqy/kickoff-api/internal/domain/match"
	"github.com/riskibarqy/kickoff-api/internal/domain/player"
	fixturemock "github.com/riskibarqy/kickoff-api/internal/mocks/domain/fixture"
	matchmock "github.com/riskibarqy/kickoff-api/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/kickoff-api/internal/mocks/domain/player"
	"github.com/riskibarqy/kickoff-api/internal/platform/cache"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func playerWithApps(id int64, apps ...int) player.Player {
	p := player.Player{Profile: player.Profile{ID: id, Name: "Son"}}
	for _, n := range apps {
		p.Statistics = append(p.Statistics, player.Statistics{Games: player.Games{Appearences: intPtr(n)}})
	}
	return p
}

func lineFor(playerID int64, minutes int) match.TeamPlayers {
	var line match.PlayerLine
	line.Player.ID = playerID
	line.Statistics = []player.FixtureStats{{Games: player.Games{Minutes: intPtr(minutes)}}}
	return match.TeamPlayers{Players: []match.PlayerLine{line}}
}

func TestPlayerService_Seasons_DropsFailedAndEmptySeasons(t *testing.T) {
	t.Parallel()

	players := playermock.NewRepository(t)
	service := NewPlayerService(players, fixturemock.NewRepository(t), matchmock.NewRepository(t), nil,
		fixedClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)), logging.NewNop())

	players.On("Player", mock.Anything, int64(7), 2026).Return(playerWithApps(7, 10, 2), true, nil).Once()
	players.On("Player", mock.Anything, int64(7), 2025).Return(player.Player{}, false, errors.New("boom")).Once()
	players.On("Player", mock.Anything, int64(7), 2024).Return(playerWithApps(7, 0, 0), true, nil).Once()
	players.On("Player", mock.Anything, int64(7), 2023).Return(playerWithApps(7, 30), true, nil).Once()
	players.On("Player", mock.Anything, int64(7), 2022).Return(player.Player{}, false, nil).Once()

	got, err := service.Seasons(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 2026, got[0].Season)
	require.Equal(t, 12, got[0].Appearances)
	require.Equal(t, 2023, got[1].Season)
	require.Equal(t, 30, got[1].Appearances)
}

func TestPlayerService_Seasons_CachedInStore(t *testing.T) {
	t.Parallel()

	players := playermock.NewRepository(t)
	service := NewPlayerService(players, fixturemock.NewRepository(t), matchmock.NewRepository(t), cache.NewStore(time.Minute),
		fixedClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)), logging.NewNop())

	players.On("Player", mock.Anything, int64(7), mock.AnythingOfType("int")).Return(playerWithApps(7, 1), true, nil).Times(5)

	for i := 0; i < 3; i++ {
		got, err := service.Seasons(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, got, 5)
	}
}

func TestPlayerService_Appearances_StopsAtTwenty(t *testing.T) {
	t.Parallel()

	fixtures := fixturemock.NewRepository(t)
	matches := matchmock.NewRepository(t)
	service := NewPlayerService(playermock.NewRepository(t), fixtures, matches, nil, fixedClock(time.Now()), logging.NewNop()).
		WithAppearanceWorkers(1)

	start := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	items := make([]fixture.Fixture, 0, 40)
	for i := 1; i <= 40; i++ {
		items = append(items, testFixture(int64(i), league.PremierLeague, fixture.StatusFullTime, start.AddDate(0, 0, 3*i)))
	}
	fixtures.On("FixturesByTeam", mock.Anything, int64(47), 2025).Return(items, nil).Once()

	var calls atomic.Int32
	matches.On("FixturePlayers", mock.Anything, mock.AnythingOfType("int64")).
		Return(func(_ context.Context, id int64) ([]match.TeamPlayers, error) {
			calls.Add(1)
			switch {
			case id == 40:
				return nil, ErrUpstream
			case id%4 == 0:
				return []match.TeamPlayers{lineFor(186, 0)}, nil
			default:
				return []match.TeamPlayers{lineFor(186, 90)}, nil
			}
		}).Maybe()

	got, err := service.Appearances(context.Background(), 186, 47, 2025)
	require.NoError(t, err)
	require.Len(t, got, 20)
	require.Equal(t, int64(39), got[0].Fixture.ID)
	for i := 1; i < len(got); i++ {
		require.True(t, got[i-1].Fixture.KickoffAt.After(got[i].Fixture.KickoffAt))
	}
	require.LessOrEqual(t, calls.Load(), int32(30))
}

func TestPlayerService_Profile_PartialSections(t *testing.T) {
	t.Parallel()

	players := playermock.NewRepository(t)
	service := NewPlayerService(players, fixturemock.NewRepository(t), matchmock.NewRepository(t), nil,
		fixedClock(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)), logging.NewNop())

	players.On("Player", mock.Anything, int64(7), 2026).Return(playerWithApps(7, 3), true, nil).Once()
	players.On("PlayerTransfers", mock.Anything, int64(7)).Return([]player.Transfer{}, nil).Once()
	players.On("Trophies", mock.Anything, int64(7)).Return(nil, ErrDependencyUnavailable).Once()
	players.On("Sidelined", mock.Anything, int64(7)).Return([]player.Sidelined{}, nil).Once()

	view, err := service.Profile(context.Background(), 7, 0)
	require.NoError(t, err)
	require.Equal(t, 2026, view.Season)
	require.True(t, view.Transfers.Available)
	require.Equal(t, SectionErrorUnavailable, view.Trophies.Error)
	require.True(t, view.Sidelined.Available)
}

func TestPlayerService_Profile_NotFound(t *testing.T) {
	t.Parallel()

	players := playermock.NewRepository(t)
	service := NewPlayerService(players, fixturemock.NewRepository(t), matchmock.NewRepository(t), nil, fixedClock(time.Now()), logging.NewNop())
	players.On("Player", mock.Anything, int64(7), 2024).Return(player.Player{}, false, nil).Once()

	_, err := service.Profile(context.Background(), 7, 2024)
	require.ErrorIs(t, err, ErrNotFound)
}
