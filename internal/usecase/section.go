package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/kickoff-api/internal/platform/logging"
)

// Section is one independently loaded part of a composite view. A failed
// section carries an error code and leaves the rest of the view intact.
type Section[T any] struct {
	Data      T      `json:"data"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

const (
	SectionErrorUpstream    = "upstream_error"
	SectionErrorUnavailable = "dependency_unavailable"
	SectionErrorTimeout     = "timeout"
	SectionErrorInternal    = "internal_error"
)

func sectionOf[T any](data T, err error) Section[T] {
	if err != nil {
		var zero T
		return Section[T]{Data: zero, Error: sectionErrorCode(err)}
	}
	return Section[T]{Data: data, Available: true}
}

// loggedSection is sectionOf that also logs a failed section under name.
func loggedSection[T any](ctx context.Context, logger *logging.Logger, msg, name string, data T, err error) Section[T] {
	if err != nil {
		logger.WarnContext(ctx, msg, "section", name, "error", err)
	}
	return sectionOf(data, err)
}

func sectionErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrDependencyUnavailable):
		return SectionErrorUnavailable
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return SectionErrorTimeout
	case errors.Is(err, ErrUpstream):
		return SectionErrorUpstream
	default:
		return SectionErrorInternal
	}
}

// Optional is a lookup result where absence is not an error.
type Optional[T any] struct {
	Value T    `json:"value"`
	Found bool `json:"found"`
}

func optionalOf[T any](value T, found bool) Optional[T] {
	return Optional[T]{Value: value, Found: found}
}
