package httpapi

import (
	"net/http"
)

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	req, err := h.decodeResource(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.playerService.Profile(ctx, req.ID, req.Season)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get player failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profile)
}

func (h *Handler) GetPlayerSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSeasons")
	defer span.End()

	req, err := h.decodeResource(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons, err := h.playerService.Seasons(ctx, req.ID)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get player seasons failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasons)
}

func (h *Handler) GetPlayerAppearances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerAppearances")
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
	req := appearancesRequest{PlayerID: res.ID, TeamID: teamID, Season: res.Season}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	appearances, err := h.playerService.Appearances(ctx, req.PlayerID, req.TeamID, req.Season)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get player appearances failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, appearances)
}
