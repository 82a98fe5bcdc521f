package transport

import "encoding/json"

// Request schemas use pointers so an absent key can be told apart from a zero value.

type CreateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type CreateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

type UpdateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

type CartRequest struct {
	UserID    *uint `json:"user_id"`
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type CartItemRequest struct {
	CartID    *uint `json:"cart_id"`
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type OrderRequest struct {
	UserID    *uint `json:"user_id"`
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type OrderItemRequest struct {
	OrderID   *uint `json:"order_id"`
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type ReviewRequest struct {
	UserID    *uint    `json:"user_id"`
	ProductID *uint    `json:"product_id"`
	Rating    *int     `json:"rating"`
	Comment   Optional `json:"comment"`
}

// Optional records whether a nullable string key was sent at all, so that
// an explicit null can clear a value while an absent key leaves it alone.
type Optional struct {
	Set   bool
	Value *string
}

func (o *Optional) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
