package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/kickoff-api/internal/usecase"
)

// resourceRequest addresses one league, team, fixture or player.
type resourceRequest struct {
	ID     int64 `validate:"gt=0"`
	Season int   `validate:"omitempty,gte=1900,lte=2100"`
}

type bracketRequest struct {
	LeagueID int64 `validate:"gt=0"`
	Season   int   `validate:"omitempty,gte=1900,lte=2100"`
	TeamID   int64 `validate:"omitempty,gt=0"`
}

type teamLeagueRequest struct {
	TeamID   int64 `validate:"gt=0"`
	LeagueID int64 `validate:"required,gt=0"`
	Season   int   `validate:"omitempty,gte=1900,lte=2100"`
}

type appearancesRequest struct {
	PlayerID int64 `validate:"gt=0"`
	TeamID   int64 `validate:"required,gt=0"`
	Season   int   `validate:"omitempty,gte=1900,lte=2100"`
}

type scheduleRequest struct {
	Date   string `validate:"omitempty,datetime=2006-01-02"`
	Filter string `validate:"omitempty,max=16"`
}

type shareRequest struct {
	Path string `validate:"required,startswith=/,max=512"`
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return errors.Wrapf(usecase.ErrInvalidInput, "validation failed: %v", err)
	}

	return nil
}

func (h *Handler) decodeResource(r *http.Request) (resourceRequest, error) {
	id, err := pathInt64(r, "id")
	if err != nil {
		return resourceRequest{}, err
	}
	season, err := queryInt(r, "season")
	if err != nil {
		return resourceRequest{}, err
	}
	req := resourceRequest{ID: id, Season: season}
	return req, h.validateRequest(r.Context(), req)
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(usecase.ErrInvalidInput, "%s must be numeric, got %q", name, raw)
	}
	return v, nil
}

// queryInt64 returns 0 for an absent parameter.
func queryInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(usecase.ErrInvalidInput, "%s must be numeric, got %q", name, raw)
	}
	return v, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	v, err := queryInt64(r, name)
	return int(v), err
}
