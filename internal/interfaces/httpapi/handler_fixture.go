package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHome")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.fixtureService.Home(ctx))
}

func (h *Handler) GetLive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLive")
	defer span.End()

	view, err := h.fixtureService.Live(ctx)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get live fixtures failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	query := r.URL.Query()
	req := scheduleRequest{
		Date:   strings.TrimSpace(query.Get("date")),
		Filter: strings.TrimSpace(query.Get("filter")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.fixtureService.Schedule(ctx, req.Date, req.Filter)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get schedule failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	req, err := h.decodeResource(r.WithContext(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.fixtureService.MatchDetail(ctx, req.ID)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "get match detail failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, detail)
}
