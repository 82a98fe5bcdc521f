package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/models"
)

// Dependent names a foreign key column that points at the repo's table.
type Dependent struct {
	Table  string
	Column string
}

type referencer interface {
	References() []models.Reference
}

// GormRepo is the typed gateway for one table. It never opens transactions.
type GormRepo[T any] struct {
	DB         *gorm.DB
	Dependents []Dependent
}

func (r *GormRepo[T]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := r.DB.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

// List returns rows in storage order.
func (r *GormRepo[T]) List(ctx context.Context) ([]T, error) {
	items := []T{}
	if err := r.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo[T]) Create(ctx context.Context, rec *T) error {
	if err := r.checkReferences(ctx, rec); err != nil {
		return err
	}
	if err := r.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update loads the row, lets apply mutate it and saves the result. A missing
// row or a failing apply leaves the table untouched.
func (r *GormRepo[T]) Update(ctx context.Context, id uint, apply func(*T) error) (*T, error) {
	rec, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(rec); err != nil {
		return nil, err
	}
	if err := r.checkReferences(ctx, rec); err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, translate(err)
	}
	return rec, nil
}

// Delete refuses to remove a row other rows still point at.
func (r *GormRepo[T]) Delete(ctx context.Context, id uint) error {
	rec, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	for _, d := range r.Dependents {
		var count int64
		if err := r.DB.WithContext(ctx).Table(d.Table).Where(d.Column+" = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %d row(s) in %s", ErrHasDependents, count, d.Table)
		}
	}
	res := r.DB.WithContext(ctx).Delete(rec)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepo[T]) checkReferences(ctx context.Context, rec *T) error {
	ref, ok := any(rec).(referencer)
	if !ok {
		return nil
	}
	for _, fk := range ref.References() {
		var count int64
		if err := r.DB.WithContext(ctx).Table(fk.Table).Where("id = ?", fk.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return &ReferenceError{Field: fk.Field, ID: fk.ID}
		}
	}
	return nil
}

// ReferenceError names the foreign key that points nowhere.
type ReferenceError struct {
	Field string
	ID    uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Field, e.ID)
}

func (e *ReferenceError) Unwrap() error { return ErrInvalidReference }
