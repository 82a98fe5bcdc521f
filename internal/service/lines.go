package service

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/validate"
)

type CartService struct {
	Entity[models.Cart]
}

func NewCartService(r *repo.GormRepo[models.Cart], events Publisher) *CartService {
	return &CartService{newEntity(r, events, TopicCarts, "cart", func(c *models.Cart) uint { return c.ID }, viewAs(transport.NewCartResponse))}
}

func (s *CartService) Create(ctx context.Context, req transport.CartRequest) (*models.Cart, error) {
	cart, err := validate.CreateCart(req)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, &cart)
}

func (s *CartService) Update(ctx context.Context, id uint, req transport.CartRequest) (*models.Cart, error) {
	return s.update(ctx, id, func(cur *models.Cart) error {
		next, err := validate.UpdateCart(*cur, req)
		if err != nil {
			return err
		}
		*cur = next
		return nil
	})
}

type CartItemService struct {
	Entity[models.CartItem]
}

func NewCartItemService(r *repo.GormRepo[models.CartItem], events Publisher) *CartItemService {
	return &CartItemService{newEntity(r, events, TopicCarts, "cart_item", func(c *models.CartItem) uint { return c.ID }, viewAs(transport.NewCartItemResponse))}
}

func (s *CartItemService) Create(ctx context.Context, req transport.CartItemRequest) (*models.CartItem, error) {
	item, err := validate.CreateCartItem(req)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, &item)
}

func (s *CartItemService) Update(ctx context.Context, id uint, req transport.CartItemRequest) (*models.CartItem, error) {
	return s.update(ctx, id, func(cur *models.CartItem) error {
		next, err := validate.UpdateCartItem(*cur, req)
		if err != nil {
			return err
		}
		*cur = next
		return nil
	})
}

type OrderService struct {
	Entity[models.Order]
}

func NewOrderService(r *repo.GormRepo[models.Order], events Publisher) *OrderService {
	return &OrderService{newEntity(r, events, TopicOrders, "order", func(o *models.Order) uint { return o.ID }, viewAs(transport.NewOrderResponse))}
}

func (s *OrderService) Create(ctx context.Context, req transport.OrderRequest) (*models.Order, error) {
	order, err := validate.CreateOrder(req)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, &order)
}

func (s *OrderService) Update(ctx context.Context, id uint, req transport.OrderRequest) (*models.Order, error) {
	return s.update(ctx, id, func(cur *models.Order) error {
		next, err := validate.UpdateOrder(*cur, req)
		if err != nil {
			return err
		}
		*cur = next
		return nil
	})
}

type OrderItemService struct {
	Entity[models.OrderItem]
}

func NewOrderItemService(r *repo.GormRepo[models.OrderItem], events Publisher) *OrderItemService {
	return &OrderItemService{newEntity(r, events, TopicOrders, "order_item", func(o *models.OrderItem) uint { return o.ID }, viewAs(transport.NewOrderItemResponse))}
}

func (s *OrderItemService) Create(ctx context.Context, req transport.OrderItemRequest) (*models.OrderItem, error) {
	item, err := validate.CreateOrderItem(req)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, &item)
}

func (s *OrderItemService) Update(ctx context.Context, id uint, req transport.OrderItemRequest) (*models.OrderItem, error) {
	return s.update(ctx, id, func(cur *models.OrderItem) error {
		next, err := validate.UpdateOrderItem(*cur, req)
		if err != nil {
			return err
		}
		*cur = next
		return nil
	})
}
