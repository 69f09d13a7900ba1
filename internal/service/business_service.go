package service

import (
	"context"
	"fmt"

	"business_directory/internal/model"
	"business_directory/internal/repository"
)

// BusinessService defines operations for businesses
type BusinessService interface {
	CreateBusiness(ctx context.Context, subjectID int, req model.CreateBusinessRequest) (*model.Business, error)
	GetBusiness(ctx context.Context, id int) (*model.BusinessDetails, error)
	ListBusinesses(ctx context.Context) ([]model.Business, error)
	ListUserBusinesses(ctx context.Context, subjectID, userID int) ([]model.Business, error)
	UpdateBusiness(ctx context.Context, subjectID, id int, req model.UpdateBusinessRequest) error
	DeleteBusiness(ctx context.Context, subjectID, id int) error
}

type businessService struct {
	repo    repository.BusinessRepository
	photos  repository.PhotoRepository
	reviews repository.ReviewRepository
	policy  Authorizer
}

// NewBusinessService creates a new BusinessService
func NewBusinessService(repo repository.BusinessRepository, photos repository.PhotoRepository, reviews repository.ReviewRepository, policy Authorizer) BusinessService {
	return &businessService{repo: repo, photos: photos, reviews: reviews, policy: policy}
}

func (s *businessService) CreateBusiness(ctx context.Context, subjectID int, req model.CreateBusinessRequest) (*model.Business, error) {
	if err := authorize(ctx, s.policy, subjectID, req.OwnerID); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	business := &model.Business{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		Phone:       req.Phone,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Website:     req.Website,
		Email:       req.Email,
	}
	if err := s.repo.Create(ctx, business); err != nil {
		return nil, asValidation(err)
	}
	return business, nil
}

// GetBusiness returns the business with its photos and reviews
func (s *businessService) GetBusiness(ctx context.Context, id int) (*model.BusinessDetails, error) {
	business, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrNotFound
	}

	photos, err := s.photos.FindByBusiness(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load photos for business %d: %w", id, err)
	}
	reviews, err := s.reviews.FindByBusiness(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews for business %d: %w", id, err)
	}
	return &model.BusinessDetails{Business: *business, Photos: photos, Reviews: reviews}, nil
}

func (s *businessService) ListBusinesses(ctx context.Context) ([]model.Business, error) {
	return s.repo.FindAll(ctx)
}

func (s *businessService) ListUserBusinesses(ctx context.Context, subjectID, userID int) ([]model.Business, error) {
	if err := authorize(ctx, s.policy, subjectID, userID); err != nil {
		return nil, err
	}
	return s.repo.FindByOwner(ctx, userID)
}

func (s *businessService) UpdateBusiness(ctx context.Context, subjectID, id int, req model.UpdateBusinessRequest) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := authorize(ctx, s.policy, subjectID, existing.OwnerID); err != nil {
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

func (s *businessService) DeleteBusiness(ctx context.Context, subjectID, id int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := authorize(ctx, s.policy, subjectID, existing.OwnerID); err != nil {
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
