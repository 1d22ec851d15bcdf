package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/kickoff-api/internal/notify"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
	"github.com/riskibarqy/kickoff-api/internal/share"
	"github.com/riskibarqy/kickoff-api/internal/usecase"
)

// NoticeReader exposes the notice currently visible to clients.
type NoticeReader interface {
	Current() (notify.Notice, bool)
}

type Handler struct {
	fixtureService *usecase.FixtureService
	leagueService  *usecase.LeagueService
	teamService    *usecase.TeamService
	playerService  *usecase.PlayerService
	notices        NoticeReader
	sharer         share.Sharer
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	fixtureService *usecase.FixtureService,
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	notices NoticeReader,
	sharer share.Sharer,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		fixtureService: fixtureService,
		leagueService:  leagueService,
		teamService:    teamService,
		playerService:  playerService,
		notices:        notices,
		sharer:         sharer,
		logger:         logger.Named("httpapi"),
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail logs at error level only for failures the client did not cause.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	logger := logging.FromContext(ctx, h.logger)
	switch status := mapError(ctx, err).HTTPStatus; {
	case status == statusClientClosedRequest:
		logger.DebugContext(ctx, msg, "error", err)
	case status >= http.StatusInternalServerError:
		logger.ErrorContext(ctx, msg, "error", err)
	default:
		logger.WarnContext(ctx, msg, "error", err)
	}
	writeError(ctx, w, err)
}
