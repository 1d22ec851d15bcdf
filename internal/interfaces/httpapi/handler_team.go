package httpapi

import (
	"net/http"
)

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	req, err := h.decodeResource(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.teamService.Overview(ctx, req.ID)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get team failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overview)
}

func (h *Handler) GetTeamFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamFixtures")
	defer span.End()

	req, err := h.decodeResource(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.teamService.RecentFixtures(ctx, req.ID, req.Season)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get team fixtures failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtures)
}

func (h *Handler) decodeTeamLeague(r *http.Request) (teamLeagueRequest, error) {
	res, err := h.decodeResource(r)
	if err != nil {
		return teamLeagueRequest{}, err
	}
	leagueID, err := queryInt64(r, "league")
	if err != nil {
		return teamLeagueRequest{}, err
	}
	req := teamLeagueRequest{TeamID: res.ID, LeagueID: leagueID, Season: res.Season}
	return req, h.validateRequest(r.Context(), req)
}

func (h *Handler) GetTeamStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStanding")
	defer span.End()

	req, err := h.decodeTeamLeague(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.Standing(ctx, req.TeamID, req.LeagueID, req.Season)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get team standing failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	req, err := h.decodeTeamLeague(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.teamService.Stats(ctx, req.TeamID, req.LeagueID, req.Season)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get team stats failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}
