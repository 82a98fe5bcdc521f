package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/validate"
)

const (
	ReasonDuplicate        = "duplicate"
	ReasonNotFound         = "not_found"
	ReasonInvalidReference = "invalid_reference"
	ReasonHasDependents    = "has_dependents"
	ReasonInternal         = "internal"
)

func reply(code int, msg, reason string) *echo.HTTPError {
	return echo.NewHTTPError(code, transport.ErrorResponse{Error: msg, Reason: reason})
}

// fail logs err under event and turns it into the matching HTTP error.
func fail(l *slog.Logger, event, entity string, err error) error {
	var (
		ve  *validate.Error
		ce  *service.ConflictError
		ref *repo.ReferenceError
	)
	switch {
	case errors.As(err, &ve):
		l.Warn(event, "status", 400, "reason", string(ve.Reason), "field", ve.Field, "error", err)
		return reply(http.StatusBadRequest, ve.Error(), string(ve.Reason))
	case errors.As(err, &ce):
		l.Warn(event, "status", 400, "reason", ReasonDuplicate, "field", ce.Field)
		return reply(http.StatusBadRequest, ce.Msg, ReasonDuplicate)
	case errors.Is(err, service.ErrConflict):
		l.Warn(event, "status", 400, "reason", ReasonDuplicate, "error", err)
		return reply(http.StatusBadRequest, entity+" already exists", ReasonDuplicate)
	case errors.Is(err, service.ErrNotFound):
		l.Warn(event, "status", 404, "reason", ReasonNotFound)
		return reply(http.StatusNotFound, entity+" not found", ReasonNotFound)
	case errors.As(err, &ref):
		l.Warn(event, "status", 400, "reason", ReasonInvalidReference, "field", ref.Field, "ref_id", ref.ID)
		return reply(http.StatusBadRequest, ref.Error(), ReasonInvalidReference)
	case errors.Is(err, service.ErrInvalidReference):
		l.Warn(event, "status", 400, "reason", ReasonInvalidReference, "error", err)
		return reply(http.StatusBadRequest, "referenced record does not exist", ReasonInvalidReference)
	case errors.Is(err, service.ErrHasDependents):
		l.Warn(event, "status", 400, "reason", ReasonHasDependents, "error", err)
		return reply(http.StatusBadRequest, entity+" is still referenced by other records", ReasonHasDependents)
	}
	l.Error(event, "status", 500, "reason", ReasonInternal, "error", err)
	return reply(http.StatusInternalServerError, "internal server error", ReasonInternal)
}

// ErrorHandler renders every error, including router 404/405s, as the
// {"error": ...} envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := transport.ErrorResponse{Error: "internal server error", Reason: ReasonInternal}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case transport.ErrorResponse:
			body = m
		case string:
			body = transport.ErrorResponse{Error: m, Reason: reasonForStatus(code)}
		default:
			body = transport.ErrorResponse{Error: http.StatusText(code), Reason: reasonForStatus(code)}
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, body)
}

func reasonForStatus(code int) string {
	switch {
	case code == http.StatusNotFound:
		return ReasonNotFound
	case code >= 500:
		return ReasonInternal
	}
	return ""
}
