package service

import (
	"context"

	"business_directory/internal/model"
	"business_directory/internal/repository"
)

// PhotoService defines operations for photos
type PhotoService interface {
	CreatePhoto(ctx context.Context, subjectID int, req model.CreatePhotoRequest) (*model.Photo, error)
	GetPhoto(ctx context.Context, id int) (*model.Photo, error)
	ListUserPhotos(ctx context.Context, subjectID, userID int) ([]model.Photo, error)
	UpdatePhoto(ctx context.Context, subjectID, id int, req model.UpdatePhotoRequest) error
	DeletePhoto(ctx context.Context, subjectID, id int) error
}

type photoService struct {
	repo   repository.PhotoRepository
	policy Authorizer
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(repo repository.PhotoRepository, policy Authorizer) PhotoService {
	return &photoService{repo: repo, policy: policy}
}

func (s *photoService) CreatePhoto(ctx context.Context, subjectID int, req model.CreatePhotoRequest) (*model.Photo, error) {
	if err := authorize(ctx, s.policy, subjectID, req.UserID); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	photo := &model.Photo{UserID: req.UserID, BusinessID: req.BusinessID, Caption: req.Caption}
	if err := s.repo.Create(ctx, photo); err != nil {
		return nil, asValidation(err)
	}
	return photo, nil
}

func (s *photoService) GetPhoto(ctx context.Context, id int) (*model.Photo, error) {
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrNotFound
	}
	return photo, nil
}

func (s *photoService) ListUserPhotos(ctx context.Context, subjectID, userID int) ([]model.Photo, error) {
	if err := authorize(ctx, s.policy, subjectID, userID); err != nil {
		return nil, err
	}
	return s.repo.FindByUser(ctx, userID)
}

func (s *photoService) UpdatePhoto(ctx context.Context, subjectID, id int, req model.UpdatePhotoRequest) error {
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

	n, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return asValidation(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *photoService) DeletePhoto(ctx context.Context, subjectID, id int) error {
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
