package httpapi

import (
	"net/http"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.leagueService.Catalogue())
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	req, err := h.decodeResource(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	info, err := h.leagueService.Info(ctx, req.ID)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get league failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, info)
}

func (h *Handler) GetLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueStandings")
	defer span.End()

	req, err := h.decodeResource(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.leagueService.Standings(ctx, req.ID, req.Season)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get league standings failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetLeagueFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueFixtures")
	defer span.End()

	req, err := h.decodeResource(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.leagueService.Fixtures(ctx, req.ID, req.Season)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get league fixtures failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetLeagueBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueBracket")
	defer span.End()

	res, err := h.decodeResource(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := queryInt64(r, "team")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req := bracketRequest{LeagueID: res.ID, Season: res.Season, TeamID: teamID}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.leagueService.Bracket(ctx, req.LeagueID, req.Season, req.TeamID)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get league bracket failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetLeagueStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueStats")
	defer span.End()

	req, err := h.decodeResource(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.leagueService.Stats(ctx, req.ID, req.Season)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get league stats failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}
