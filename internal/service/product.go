package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/validate"
)

type ProductService struct {
	Entity[models.Product]
}

func NewProductService(r *repo.GormRepo[models.Product], events Publisher) *ProductService {
	return &ProductService{
		Entity: newEntity(r, events, TopicProducts, "product", func(p *models.Product) uint { return p.ID }, viewAs(transport.NewProductResponse)),
	}
}

func (s *ProductService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	product, err := validate.CreateProduct(req)
	if err != nil {
		return nil, err
	}
	rec, err := s.create(ctx, &product)
	return rec, nameConflict(err)
}

// Update applies only the keys present in req.
func (s *ProductService) Update(ctx context.Context, id uint, req transport.UpdateProductRequest) (*models.Product, error) {
	rec, err := s.update(ctx, id, func(cur *models.Product) error {
		next, err := validate.UpdateProduct(*cur, req)
		if err != nil {
			return err
		}
		*cur = next
		return nil
	})
	return rec, nameConflict(err)
}

func nameConflict(err error) error {
	if errors.Is(err, ErrConflict) {
		return conflict("product name")
	}
	return err
}
