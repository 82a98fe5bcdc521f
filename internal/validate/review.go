package validate

import (
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/transport"
)

const (
	MinRating = 1
	MaxRating = 5
)

func CreateReview(req transport.ReviewRequest) (models.Review, error) {
	if err := requireKeys(
		key{"user_id", req.UserID != nil},
		key{"product_id", req.ProductID != nil},
		key{"rating", req.Rating != nil},
	); err != nil {
		return models.Review{}, err
	}
	userID, err := requiredID("user_id", req.UserID)
	if err != nil {
		return models.Review{}, err
	}
	productID, err := requiredID("product_id", req.ProductID)
	if err != nil {
		return models.Review{}, err
	}
	rating, err := Rating(req.Rating)
	if err != nil {
		return models.Review{}, err
	}
	return models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   req.Comment.Value,
	}, nil
}

// UpdateReview requires a rating; an explicit "comment": null clears the comment.
func UpdateReview(cur models.Review, req transport.ReviewRequest) (models.Review, error) {
	rating, err := Rating(req.Rating)
	if err != nil {
		return cur, err
	}
	if err := optionalID("user_id", req.UserID, &cur.UserID); err != nil {
		return cur, err
	}
	if err := optionalID("product_id", req.ProductID, &cur.ProductID); err != nil {
		return cur, err
	}
	cur.Rating = rating
	if req.Comment.Set {
		cur.Comment = req.Comment.Value
	}
	return cur, nil
}

func Rating(v *int) (int, error) {
	if v == nil {
		return 0, Missing("rating")
	}
	if *v < MinRating || *v > MaxRating {
		return 0, OutOfRange("rating", "rating must be between 1 and 5")
	}
	return *v, nil
}
