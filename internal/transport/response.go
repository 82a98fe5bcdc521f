package transport

import "github.com/Skotchmaster/storefront/internal/models"

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

type DeleteResponse struct {
	ID      uint `json:"id"`
	Deleted bool `json:"deleted"`
}

// UserResponse carries no password field.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ProductResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type CartResponse struct {
	ID        uint `json:"id"`
	UserID    uint `json:"user_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CartItemResponse struct {
	ID        uint `json:"id"`
	CartID    uint `json:"cart_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type OrderResponse struct {
	ID        uint `json:"id"`
	UserID    uint `json:"user_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type OrderItemResponse struct {
	ID        uint `json:"id"`
	OrderID   uint `json:"order_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type ReviewResponse struct {
	ID        uint    `json:"id"`
	UserID    uint    `json:"user_id"`
	ProductID uint    `json:"product_id"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

func NewProductResponse(p models.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
}

func NewCartResponse(c models.Cart) CartResponse {
	return CartResponse{ID: c.ID, UserID: c.UserID, ProductID: c.ProductID, Quantity: c.Quantity}
}

func NewCartItemResponse(c models.CartItem) CartItemResponse {
	return CartItemResponse{ID: c.ID, CartID: c.CartID, ProductID: c.ProductID, Quantity: c.Quantity}
}

func NewOrderResponse(o models.Order) OrderResponse {
	return OrderResponse{ID: o.ID, UserID: o.UserID, ProductID: o.ProductID, Quantity: o.Quantity}
}

func NewOrderItemResponse(o models.OrderItem) OrderItemResponse {
	return OrderItemResponse{ID: o.ID, OrderID: o.OrderID, ProductID: o.ProductID, Quantity: o.Quantity}
}

func NewReviewResponse(r models.Review) ReviewResponse {
	return ReviewResponse{ID: r.ID, UserID: r.UserID, ProductID: r.ProductID, Rating: r.Rating, Comment: r.Comment}
}

// Map converts a list of records with one of the constructors above.
func Map[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
