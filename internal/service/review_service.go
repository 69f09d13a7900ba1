package service

import (
	"context"

	"business_directory/internal/model"
	"business_directory/internal/repository"
)

// ReviewService defines operations for reviews
type ReviewService interface {
	CreateReview(ctx context.Context, subjectID int, req model.CreateReviewRequest) (*model.Review, error)
	GetReview(ctx context.Context, id int) (*model.Review, error)
	ListUserReviews(ctx context.Context, subjectID, userID int) ([]model.Review, error)
	UpdateReview(ctx context.Context, subjectID, id int, req model.UpdateReviewRequest) error
	DeleteReview(ctx context.Context, subjectID, id int) error
}

type reviewService struct {
	repo   repository.ReviewRepository
	policy Authorizer
}

// NewReviewService creates a new ReviewService
func NewReviewService(repo repository.ReviewRepository, policy Authorizer) ReviewService {
	return &reviewService{repo: repo, policy: policy}
}

func (s *reviewService) CreateReview(ctx context.Context, subjectID int, req model.CreateReviewRequest) (*model.Review, error) {
	if err := authorize(ctx, s.policy, subjectID, req.UserID); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	review := &model.Review{
		UserID:     req.UserID,
		BusinessID: req.BusinessID,
		Dollars:    req.Dollars,
		Stars:      *req.Stars,
		Review:     req.Review,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, asValidation(err)
	}
	return review, nil
}

func (s *reviewService) GetReview(ctx context.Context, id int) (*model.Review, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrNotFound
	}
	return review, nil
}

func (s *reviewService) ListUserReviews(ctx context.Context, subjectID, userID int) ([]model.Review, error) {
	if err := authorize(ctx, s.policy, subjectID, userID); err != nil {
		return nil, err
	}
	return s.repo.FindByUser(ctx, userID)
}

func (s *reviewService) UpdateReview(ctx context.Context, subjectID, id int, req model.UpdateReviewRequest) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := authorize(ctx, s.policy, subjectID, existing.UserID); err != nil {
		return err
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	n, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return asValidation(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *reviewService) DeleteReview(ctx context.Context, subjectID, id int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := authorize(ctx, s.policy, subjectID, existing.UserID); err != nil {
		return err
	}

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
