package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/kickoff-api/internal/notify"
)

type currentNoticeDTO struct {
	Visible bool           `json:"visible"`
	Notice  *notify.Notice `json:"notice,omitempty"`
}

func (h *Handler) GetCurrentNotice(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentNotice")
	defer span.End()

	var dto currentNoticeDTO
	if h.notices != nil {
		if notice, ok := h.notices.Current(); ok {
			dto = currentNoticeDTO{Visible: true, Notice: &notice}
		}
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) GetShare(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetShare")
	defer span.End()

	req := shareRequest{Path: strings.TrimSpace(r.URL.Query().Get("path"))}
	if req.Path == "" {
		req.Path = "/"
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	payload, err := h.sharer.Share(req.Path)
	if err != nil {
		h.fail(w, r.WithContext(ctx), "build share payload failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, payload)
}
