package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/storefront/internal/repo"
)

// Entity carries the read and delete operations shared by every resource.
// Create and update live on the typed services because each entity
// validates its own request shape.
type Entity[T any] struct {
	Repo *repo.GormRepo[T]
	emitter
	idOf func(*T) uint
	view func(T) any
}

// viewAs adapts a response mapper into an event payload builder.
func viewAs[T, R any](toResp func(T) R) func(T) any {
	return func(v T) any { return toResp(v) }
}

func newEntity[T any](r *repo.GormRepo[T], events Publisher, topic, name string, idOf func(*T) uint, view func(T) any) Entity[T] {
	if events == nil {
		events = NopPublisher{}
	}
	return Entity[T]{
		Repo:    r,
		emitter: emitter{events: events, topic: topic, entity: name},
		idOf:    idOf,
		view:    view,
	}
}

func (s *Entity[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.entity, err)
	}
	return items, nil
}

func (s *Entity[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.Repo.Get(ctx, id)
}

func (s *Entity[T]) Exists(ctx context.Context, id uint) (bool, error) {
	return s.Repo.Exists(ctx, id)
}

func (s *Entity[T]) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.emit(ctx, "deleted", id, nil)
	return nil
}

func (s *Entity[T]) create(ctx context.Context, rec *T) (*T, error) {
	if err := s.Repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	s.emit(ctx, "created", s.idOf(rec), s.view(*rec))
	return rec, nil
}

func (s *Entity[T]) update(ctx context.Context, id uint, apply func(*T) error) (*T, error) {
	rec, err := s.Repo.Update(ctx, id, apply)
	if err != nil {
		return nil, err
	}
	s.emit(ctx, "updated", id, s.view(*rec))
	return rec, nil
}
