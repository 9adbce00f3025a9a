package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/batterlab/internal/adapters/upstream"
	service "github.com/okian/batterlab/internal/app"
	"github.com/okian/batterlab/internal/domain/splits"
)

// Sentinel kinds for API errors.
var (
	ErrServe       = errors.New("serve failed")
	ErrBadRequest  = errors.New("bad request")
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("upstream unavailable")
	ErrInternal    = errors.New("internal error")
)

// OpError records the operation, the error kind and the cause.
type OpError struct {
	Op   string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	case e.Kind == nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	}
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *OpError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// NewKind returns an error of kind raised by op.
func NewKind(op string, kind error) error {
	return &OpError{Op: op, Kind: kind}
}

// WrapKind tags err with op and kind.
func WrapKind(op string, kind error, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Kind: kind, Err: err}
}

// Wrap tags err with op and the kind derived from err.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return WrapKind(op, kindOf(err), err)
}

// kindOf classifies service and provider errors.
func kindOf(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrDateOutOfCoverage),
		errors.Is(err, service.ErrInvalidPlayer),
		errors.Is(err, splits.ErrUnknownStat):
		return ErrBadRequest
	case errors.Is(err, service.ErrPlayerNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrUnknownSplit),
		errors.Is(err, service.ErrPitcherNotFound),
		errors.Is(err, service.ErrNoPitchData):
		return ErrNotFound
	case errors.Is(err, upstream.ErrUnavailable):
		return ErrUnavailable
	}
	var se *upstream.StatusError
	if errors.As(err, &se) {
		return ErrUnavailable
	}
	return ErrInternal
}

// status maps an error to its HTTP status and response code.
func status(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, ErrUnavailable):
		return http.StatusBadGateway, "upstream_unavailable"
	case errors.Is(err, service.ErrNoDirectory):
		return http.StatusNotImplemented, "not_implemented"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
