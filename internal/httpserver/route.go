package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/hash"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
)

type Deps struct {
	DB               *gorm.DB
	UserHandler      *UserHTTP
	ProductHandler   *ProductHTTP
	CartHandler      *CartHTTP
	CartItemHandler  *CartItemHTTP
	OrderHandler     *OrderHTTP
	OrderItemHandler *OrderItemHTTP
	ReviewHandler    *ReviewHTTP
}

// NewDeps wires gateways, services and handlers over one connection pool.
func NewDeps(db *gorm.DB, hasher hash.Hasher, events service.Publisher) *Deps {
	return &Deps{
		DB:               db,
		UserHandler:      &UserHTTP{Svc: service.NewUserService(repo.NewUserRepo(db), hasher, events)},
		ProductHandler:   &ProductHTTP{Svc: service.NewProductService(repo.NewProductRepo(db), events)},
		CartHandler:      &CartHTTP{Svc: service.NewCartService(repo.NewCartRepo(db), events)},
		CartItemHandler:  &CartItemHTTP{Svc: service.NewCartItemService(repo.NewCartItemRepo(db), events)},
		OrderHandler:     &OrderHTTP{Svc: service.NewOrderService(repo.NewOrderRepo(db), events)},
		OrderItemHandler: &OrderItemHTTP{Svc: service.NewOrderItemService(repo.NewOrderItemRepo(db), events)},
		ReviewHandler:    &ReviewHTTP{Svc: service.NewReviewService(repo.NewReviewRepo(db), events)},
	}
}

type crud interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the storefront API"})
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", d.ready)

	mount(e, "/users", d.UserHandler)
	mount(e, "/products", d.ProductHandler)
	mount(e, "/carts", d.CartHandler)
	mount(e, "/cart_items", d.CartItemHandler)
	mount(e, "/orders", d.OrderHandler)
	mount(e, "/order_items", d.OrderItemHandler)
	mount(e, "/reviews", d.ReviewHandler)
}

func mount(e *echo.Echo, prefix string, h crud) {
	g := e.Group(prefix)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (d *Deps) ready(c echo.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
