package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) List(c echo.Context) error {
	return listAll(c, "product", h.Svc.List, transport.NewProductResponse)
}

func (h *ProductHTTP) Get(c echo.Context) error {
	return getOne(c, "product", h.Svc.Get, transport.NewProductResponse)
}

func (h *ProductHTTP) Create(c echo.Context) error {
	return createOne(c, "product", h.Svc.Create, transport.NewProductResponse)
}

// Update changes only the fields present in the body.
func (h *ProductHTTP) Update(c echo.Context) error {
	return updateOne(c, "product", h.Svc.Exists, h.Svc.Update, transport.NewProductResponse)
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	return deleteOne(c, "product", h.Svc.Delete)
}
