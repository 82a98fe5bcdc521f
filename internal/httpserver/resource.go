package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func listAll[T, R any](c echo.Context, entity string, list func(context.Context) ([]T, error), toResp func(T) R) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", entity+".list")

	items, err := list(ctx)
	if err != nil {
		return fail(l, entity+"_list_error", entity, err)
	}

	l.Info(entity+"_list_success", "count", len(items))
	return c.JSON(http.StatusOK, transport.Map(items, toResp))
}

func getOne[T, R any](c echo.Context, entity string, get func(context.Context, uint) (*T, error), toResp func(T) R) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", entity+".get")

	id, err := parseID(c)
	if err != nil {
		return fail(l, entity+"_get_error", entity, err)
	}

	rec, err := get(ctx, id)
	if err != nil {
		return fail(l, entity+"_get_error", entity, err)
	}

	return c.JSON(http.StatusOK, toResp(*rec))
}

func deleteOne(c echo.Context, entity string, remove func(context.Context, uint) error) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", entity+".delete")

	id, err := parseID(c)
	if err != nil {
		return fail(l, entity+"_delete_error", entity, err)
	}

	if err := remove(ctx, id); err != nil {
		return fail(l, entity+"_delete_error", entity, err)
	}

	l.Info(entity+"_delete_success", "id", id)
	return c.JSON(http.StatusOK, transport.DeleteResponse{ID: id, Deleted: true})
}

// createOne decodes a Req, hands it to create and answers 201.
func createOne[Req, T, R any](c echo.Context, entity string, create func(context.Context, Req) (*T, error), toResp func(T) R) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", entity+".create")

	var req Req
	if err := bindJSON(c, &req); err != nil {
		return fail(l, entity+"_create_error", entity, err)
	}

	rec, err := create(ctx, req)
	if err != nil {
		return fail(l, entity+"_create_error", entity, err)
	}

	l.Info(entity + "_create_success")
	return c.JSON(http.StatusCreated, toResp(*rec))
}

// updateOne answers 404 for a missing id whatever the body holds.
func updateOne[Req, T, R any](c echo.Context, entity string, exists func(context.Context, uint) (bool, error), update func(context.Context, uint, Req) (*T, error), toResp func(T) R) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", entity+".update")
	event := entity + "_update_error"

	id, err := parseID(c)
	if err != nil {
		return fail(l, event, entity, err)
	}

	var req Req
	if err := bindJSON(c, &req); err != nil {
		return badUpdateBody(ctx, l, event, entity, exists, id, err)
	}

	rec, err := update(ctx, id, req)
	if err != nil {
		return fail(l, event, entity, err)
	}

	l.Info(entity+"_update_success", "id", id)
	return c.JSON(http.StatusOK, toResp(*rec))
}
