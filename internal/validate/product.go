package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

const MaxProductNameLen = 80

func CreateProduct(req transport.CreateProductRequest) (models.Product, error) {
	switch {
	case req.Name == nil:
		return models.Product{}, Missing("name")
	case req.Price == nil:
		return models.Product{}, Missing("price")
	case req.Stock == nil:
		return models.Product{}, Missing("stock")
	}

	name, err := ProductName(*req.Name)
	if err != nil {
		return models.Product{}, err
	}
	if err := Price(*req.Price); err != nil {
		return models.Product{}, err
	}
	if err := Stock(*req.Stock); err != nil {
		return models.Product{}, err
	}

	return models.Product{Name: name, Price: *req.Price, Stock: *req.Stock}, nil
}

// UpdateProduct applies only the fields present in req.
func UpdateProduct(cur models.Product, req transport.UpdateProductRequest) (models.Product, error) {
	if req.Name != nil {
		name, err := ProductName(*req.Name)
		if err != nil {
			return cur, err
		}
		cur.Name = name
	}
	if req.Price != nil {
		if err := Price(*req.Price); err != nil {
			return cur, err
		}
		cur.Price = *req.Price
	}
	if req.Stock != nil {
		if err := Stock(*req.Stock); err != nil {
			return cur, err
		}
		cur.Stock = *req.Stock
	}
	return cur, nil
}

func ProductName(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", OutOfRange("name", "product name cannot be empty")
	}
	if utf8.RuneCountInString(v) > MaxProductNameLen {
		return "", OutOfRange("name", "product name must be at most 80 characters long")
	}
	return v, nil
}

func Price(v float64) error {
	if !(v > 0) {
		return OutOfRange("price", "price must be a positive number")
	}
	return nil
}

func Stock(v int) error {
	if v < 0 {
		return OutOfRange("stock", "stock cannot be negative")
	}
	return nil
}
