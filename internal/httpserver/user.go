package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) List(c echo.Context) error {
	return listAll(c, "user", h.Svc.List, transport.NewUserResponse)
}

func (h *UserHTTP) Get(c echo.Context) error {
	return getOne(c, "user", h.Svc.Get, transport.NewUserResponse)
}

// Create stores a new user. The response never carries the password digest.
func (h *UserHTTP) Create(c echo.Context) error {
	return createOne(c, "user", h.Svc.Create, transport.NewUserResponse)
}

// Update replaces username and email; a present password is re-hashed.
func (h *UserHTTP) Update(c echo.Context) error {
	return updateOne(c, "user", h.Svc.Exists, h.Svc.Update, transport.NewUserResponse)
}

func (h *UserHTTP) Delete(c echo.Context) error {
	return deleteOne(c, "user", h.Svc.Delete)
}
