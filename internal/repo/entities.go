package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/models"
)

type UserRepo struct {
	GormRepo[models.User]
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{GormRepo[models.User]{
		DB: db,
		Dependents: []Dependent{
			{Table: "carts", Column: "user_id"},
			{Table: "orders", Column: "user_id"},
			{Table: "reviews", Column: "user_id"},
		},
	}}
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindConflicting returns a user other than excludeID holding username or
// email, or ErrNotFound when both are free.
func (r *UserRepo) FindConflicting(ctx context.Context, username, email string, excludeID uint) (*models.User, error) {
	var user models.User
	q := r.DB.WithContext(ctx).Where("(username = ? OR email = ?)", username, email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func NewProductRepo(db *gorm.DB) *GormRepo[models.Product] {
	return &GormRepo[models.Product]{
		DB: db,
		Dependents: []Dependent{
			{Table: "carts", Column: "product_id"},
			{Table: "cart_items", Column: "product_id"},
			{Table: "orders", Column: "product_id"},
			{Table: "order_items", Column: "product_id"},
			{Table: "reviews", Column: "product_id"},
		},
	}
}

func NewCartRepo(db *gorm.DB) *GormRepo[models.Cart] {
	return &GormRepo[models.Cart]{
		DB:         db,
		Dependents: []Dependent{{Table: "cart_items", Column: "cart_id"}},
	}
}

func NewCartItemRepo(db *gorm.DB) *GormRepo[models.CartItem] {
	return &GormRepo[models.CartItem]{DB: db}
}

func NewOrderRepo(db *gorm.DB) *GormRepo[models.Order] {
	return &GormRepo[models.Order]{
		DB:         db,
		Dependents: []Dependent{{Table: "order_items", Column: "order_id"}},
	}
}

func NewOrderItemRepo(db *gorm.DB) *GormRepo[models.OrderItem] {
	return &GormRepo[models.OrderItem]{DB: db}
}

func NewReviewRepo(db *gorm.DB) *GormRepo[models.Review] {
	return &GormRepo[models.Review]{DB: db}
}
