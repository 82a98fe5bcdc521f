package service

import (
	"context"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/validate"
)

type ReviewService struct {
	Entity[models.Review]
}

func NewReviewService(r *repo.GormRepo[models.Review], events Publisher) *ReviewService {
	return &ReviewService{newEntity(r, events, TopicReviews, "review", func(rv *models.Review) uint { return rv.ID }, viewAs(transport.NewReviewResponse))}
}

func (s *ReviewService) Create(ctx context.Context, req transport.ReviewRequest) (*models.Review, error) {
	review, err := validate.CreateReview(req)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, &review)
}

// Update requires a rating. An explicit null comment clears it, an absent
// comment keeps the stored one.
func (s *ReviewService) Update(ctx context.Context, id uint, req transport.ReviewRequest) (*models.Review, error) {
	return s.update(ctx, id, func(cur *models.Review) error {
		next, err := validate.UpdateReview(*cur, req)
		if err != nil {
			return err
		}
		*cur = next
		return nil
	})
}
