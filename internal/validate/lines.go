package validate

import (
	"math"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

func CreateCart(req transport.CartRequest) (models.Cart, error) {
	if err := requireKeys(
		key{"user_id", req.UserID != nil},
		key{"product_id", req.ProductID != nil},
		key{"quantity", req.Quantity != nil},
	); err != nil {
		return models.Cart{}, err
	}
	userID, err := requiredID("user_id", req.UserID)
	if err != nil {
		return models.Cart{}, err
	}
	productID, err := requiredID("product_id", req.ProductID)
	if err != nil {
		return models.Cart{}, err
	}
	qty, err := Quantity(req.Quantity)
	if err != nil {
		return models.Cart{}, err
	}
	return models.Cart{UserID: userID, ProductID: productID, Quantity: qty}, nil
}

func UpdateCart(cur models.Cart, req transport.CartRequest) (models.Cart, error) {
	qty, err := Quantity(req.Quantity)
	if err != nil {
		return cur, err
	}
	if err := optionalID("user_id", req.UserID, &cur.UserID); err != nil {
		return cur, err
	}
	if err := optionalID("product_id", req.ProductID, &cur.ProductID); err != nil {
		return cur, err
	}
	cur.Quantity = qty
	return cur, nil
}

func CreateCartItem(req transport.CartItemRequest) (models.CartItem, error) {
	if err := requireKeys(
		key{"cart_id", req.CartID != nil},
		key{"product_id", req.ProductID != nil},
		key{"quantity", req.Quantity != nil},
	); err != nil {
		return models.CartItem{}, err
	}
	cartID, err := requiredID("cart_id", req.CartID)
	if err != nil {
		return models.CartItem{}, err
	}
	productID, err := requiredID("product_id", req.ProductID)
	if err != nil {
		return models.CartItem{}, err
	}
	qty, err := Quantity(req.Quantity)
	if err != nil {
		return models.CartItem{}, err
	}
	return models.CartItem{CartID: cartID, ProductID: productID, Quantity: qty}, nil
}

func UpdateCartItem(cur models.CartItem, req transport.CartItemRequest) (models.CartItem, error) {
	qty, err := Quantity(req.Quantity)
	if err != nil {
		return cur, err
	}
	if err := optionalID("cart_id", req.CartID, &cur.CartID); err != nil {
		return cur, err
	}
	if err := optionalID("product_id", req.ProductID, &cur.ProductID); err != nil {
		return cur, err
	}
	cur.Quantity = qty
	return cur, nil
}

func CreateOrder(req transport.OrderRequest) (models.Order, error) {
	if err := requireKeys(
		key{"user_id", req.UserID != nil},
		key{"product_id", req.ProductID != nil},
		key{"quantity", req.Quantity != nil},
	); err != nil {
		return models.Order{}, err
	}
	userID, err := requiredID("user_id", req.UserID)
	if err != nil {
		return models.Order{}, err
	}
	productID, err := requiredID("product_id", req.ProductID)
	if err != nil {
		return models.Order{}, err
	}
	qty, err := Quantity(req.Quantity)
	if err != nil {
		return models.Order{}, err
	}
	return models.Order{UserID: userID, ProductID: productID, Quantity: qty}, nil
}

func UpdateOrder(cur models.Order, req transport.OrderRequest) (models.Order, error) {
	qty, err := Quantity(req.Quantity)
	if err != nil {
		return cur, err
	}
	if err := optionalID("user_id", req.UserID, &cur.UserID); err != nil {
		return cur, err
	}
	if err := optionalID("product_id", req.ProductID, &cur.ProductID); err != nil {
		return cur, err
	}
	cur.Quantity = qty
	return cur, nil
}

func CreateOrderItem(req transport.OrderItemRequest) (models.OrderItem, error) {
	if err := requireKeys(
		key{"order_id", req.OrderID != nil},
		key{"product_id", req.ProductID != nil},
		key{"quantity", req.Quantity != nil},
	); err != nil {
		return models.OrderItem{}, err
	}
	orderID, err := requiredID("order_id", req.OrderID)
	if err != nil {
		return models.OrderItem{}, err
	}
	productID, err := requiredID("product_id", req.ProductID)
	if err != nil {
		return models.OrderItem{}, err
	}
	qty, err := Quantity(req.Quantity)
	if err != nil {
		return models.OrderItem{}, err
	}
	return models.OrderItem{OrderID: orderID, ProductID: productID, Quantity: qty}, nil
}

func UpdateOrderItem(cur models.OrderItem, req transport.OrderItemRequest) (models.OrderItem, error) {
	qty, err := Quantity(req.Quantity)
	if err != nil {
		return cur, err
	}
	if err := optionalID("order_id", req.OrderID, &cur.OrderID); err != nil {
		return cur, err
	}
	if err := optionalID("product_id", req.ProductID, &cur.ProductID); err != nil {
		return cur, err
	}
	cur.Quantity = qty
	return cur, nil
}

func Quantity(v *int) (int, error) {
	if v == nil {
		return 0, Missing("quantity")
	}
	if *v <= 0 {
		return 0, OutOfRange("quantity", "quantity must be a positive number")
	}
	return *v, nil
}

// MaxID is the largest id the store can hold in a signed 64-bit key column.
const MaxID = math.MaxInt64

type key struct {
	name    string
	present bool
}

// requireKeys reports the first absent key in declaration order.
func requireKeys(keys ...key) error {
	for _, k := range keys {
		if !k.present {
			return Missing(k.name)
		}
	}
	return nil
}

func requiredID(field string, v *uint) (uint, error) {
	if v == nil {
		return 0, Missing(field)
	}
	if *v == 0 || uint64(*v) > MaxID {
		return 0, OutOfRange(field, "id must be a positive integer")
	}
	return *v, nil
}

func optionalID(field string, v *uint, dst *uint) error {
	if v == nil {
		return nil
	}
	id, err := requiredID(field, v)
	if err != nil {
		return err
	}
	*dst = id
	return nil
}
