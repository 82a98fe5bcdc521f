package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type ReviewHTTP struct {
	Svc *service.ReviewService
}

func (h *ReviewHTTP) List(c echo.Context) error {
	return listAll(c, "review", h.Svc.List, transport.NewReviewResponse)
}

func (h *ReviewHTTP) Get(c echo.Context) error {
	return getOne(c, "review", h.Svc.Get, transport.NewReviewResponse)
}

func (h *ReviewHTTP) Create(c echo.Context) error {
	return createOne(c, "review", h.Svc.Create, transport.NewReviewResponse)
}

func (h *ReviewHTTP) Update(c echo.Context) error {
	return updateOne(c, "review", h.Svc.Exists, h.Svc.Update, transport.NewReviewResponse)
}

func (h *ReviewHTTP) Delete(c echo.Context) error {
	return deleteOne(c, "review", h.Svc.Delete)
}
