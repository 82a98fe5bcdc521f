package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/validate"
)

func parseID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 63)
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		// well-formed but beyond any stored key
		return 0, service.ErrNotFound
	}
	if err != nil || id == 0 {
		return 0, validate.BadFormat("id", "id must be a positive integer")
	}
	return uint(id), nil
}

// bindJSON decodes the request body into dst, rejecting unknown keys,
// wrong value types and trailing data.
func bindJSON(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return validate.BadFormat("", "request body must contain a single JSON object")
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return validate.BadFormat(typeErr.Field, "expected "+typeErr.Type.String()+", got "+typeErr.Value)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return validate.BadFormat("", "malformed JSON body")
	case errors.Is(err, io.EOF):
		return validate.BadFormat("", "request body is empty")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return validate.BadFormat(field, "unknown field")
	}
	return validate.BadFormat("", err.Error())
}

// badUpdateBody reports 404 for a missing id before judging a bad body.
func badUpdateBody(ctx context.Context, l *slog.Logger, event, entity string, exists func(context.Context, uint) (bool, error), id uint, bodyErr error) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return fail(l, event, entity, err)
	}
	if !ok {
		return fail(l, event, entity, service.ErrNotFound)
	}
	return fail(l, event, entity, bodyErr)
}
