package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) List(c echo.Context) error {
	return listAll(c, "cart", h.Svc.List, transport.NewCartResponse)
}

func (h *CartHTTP) Get(c echo.Context) error {
	return getOne(c, "cart", h.Svc.Get, transport.NewCartResponse)
}

func (h *CartHTTP) Create(c echo.Context) error {
	return createOne(c, "cart", h.Svc.Create, transport.NewCartResponse)
}

func (h *CartHTTP) Update(c echo.Context) error {
	return updateOne(c, "cart", h.Svc.Exists, h.Svc.Update, transport.NewCartResponse)
}

func (h *CartHTTP) Delete(c echo.Context) error {
	return deleteOne(c, "cart", h.Svc.Delete)
}

type CartItemHTTP struct {
	Svc *service.CartItemService
}

func (h *CartItemHTTP) List(c echo.Context) error {
	return listAll(c, "cart_item", h.Svc.List, transport.NewCartItemResponse)
}

func (h *CartItemHTTP) Get(c echo.Context) error {
	return getOne(c, "cart_item", h.Svc.Get, transport.NewCartItemResponse)
}

func (h *CartItemHTTP) Create(c echo.Context) error {
	return createOne(c, "cart_item", h.Svc.Create, transport.NewCartItemResponse)
}

func (h *CartItemHTTP) Update(c echo.Context) error {
	return updateOne(c, "cart_item", h.Svc.Exists, h.Svc.Update, transport.NewCartItemResponse)
}

func (h *CartItemHTTP) Delete(c echo.Context) error {
	return deleteOne(c, "cart_item", h.Svc.Delete)
}

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) List(c echo.Context) error {
	return listAll(c, "order", h.Svc.List, transport.NewOrderResponse)
}

func (h *OrderHTTP) Get(c echo.Context) error {
	return getOne(c, "order", h.Svc.Get, transport.NewOrderResponse)
}

func (h *OrderHTTP) Create(c echo.Context) error {
	return createOne(c, "order", h.Svc.Create, transport.NewOrderResponse)
}

func (h *OrderHTTP) Update(c echo.Context) error {
	return updateOne(c, "order", h.Svc.Exists, h.Svc.Update, transport.NewOrderResponse)
}

func (h *OrderHTTP) Delete(c echo.Context) error {
	return deleteOne(c, "order", h.Svc.Delete)
}

type OrderItemHTTP struct {
	Svc *service.OrderItemService
}

func (h *OrderItemHTTP) List(c echo.Context) error {
	return listAll(c, "order_item", h.Svc.List, transport.NewOrderItemResponse)
}

func (h *OrderItemHTTP) Get(c echo.Context) error {
	return getOne(c, "order_item", h.Svc.Get, transport.NewOrderItemResponse)
}

func (h *OrderItemHTTP) Create(c echo.Context) error {
	return createOne(c, "order_item", h.Svc.Create, transport.NewOrderItemResponse)
}

func (h *OrderItemHTTP) Update(c echo.Context) error {
	return updateOne(c, "order_item", h.Svc.Exists, h.Svc.Update, transport.NewOrderItemResponse)
}

func (h *OrderItemHTTP) Delete(c echo.Context) error {
	return deleteOne(c, "order_item", h.Svc.Delete)
}
