package handler

import (
	"context"

	"business_directory/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) CreateUser(ctx context.Context, creatorID int, req model.CreateUserRequest) (*model.User, error) {
	args := m.Called(ctx, creatorID, req)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*model.User)
	return u, args.String(1), args.Error(2)
}

func (m *mockUserService) GetUser(ctx context.Context, subjectID, userID int) (*model.User, error) {
	args := m.Called(ctx, subjectID, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

type mockBusinessService struct{ mock.Mock }

func (m *mockBusinessService) CreateBusiness(ctx context.Context, subjectID int, req model.CreateBusinessRequest) (*model.Business, error) {
	args := m.Called(ctx, subjectID, req)
	b, _ := args.Get(0).(*model.Business)
	return b, args.Error(1)
}

func (m *mockBusinessService) GetBusiness(ctx context.Context, id int) (*model.BusinessDetails, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*model.BusinessDetails)
	return b, args.Error(1)
}

func (m *mockBusinessService) ListBusinesses(ctx context.Context) ([]model.Business, error) {
	args := m.Called(ctx)
	bs, _ := args.Get(0).([]model.Business)
	return bs, args.Error(1)
}

func (m *mockBusinessService) ListUserBusinesses(ctx context.Context, subjectID, userID int) ([]model.Business, error) {
	args := m.Called(ctx, subjectID, userID)
	bs, _ := args.Get(0).([]model.Business)
	return bs, args.Error(1)
}

func (m *mockBusinessService) UpdateBusiness(ctx context.Context, subjectID, id int, req model.UpdateBusinessRequest) error {
	return m.Called(ctx, subjectID, id, req).Error(0)
}

func (m *mockBusinessService) DeleteBusiness(ctx context.Context, subjectID, id int) error {
	return m.Called(ctx, subjectID, id).Error(0)
}

type mockPhotoService struct{ mock.Mock }

func (m *mockPhotoService) CreatePhoto(ctx context.Context, subjectID int, req model.CreatePhotoRequest) (*model.Photo, error) {
	args := m.Called(ctx, subjectID, req)
	p, _ := args.Get(0).(*model.Photo)
	return p, args.Error(1)
}

func (m *mockPhotoService) GetPhoto(ctx context.Context, id int) (*model.Photo, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Photo)
	return p, args.Error(1)
}

func (m *mockPhotoService) ListUserPhotos(ctx context.Context, subjectID, userID int) ([]model.Photo, error) {
	args := m.Called(ctx, subjectID, userID)
	ps, _ := args.Get(0).([]model.Photo)
	return ps, args.Error(1)
}

func (m *mockPhotoService) UpdatePhoto(ctx context.Context, subjectID, id int, req model.UpdatePhotoRequest) error {
	return m.Called(ctx, subjectID, id, req).Error(0)
}

func (m *mockPhotoService) DeletePhoto(ctx context.Context, subjectID, id int) error {
	return m.Called(ctx, subjectID, id).Error(0)
}

type mockReviewService struct{ mock.Mock }

func (m *mockReviewService) CreateReview(ctx context.Context, subjectID int, req model.CreateReviewRequest) (*model.Review, error) {
	args := m.Called(ctx, subjectID, req)
	r, _ := args.Get(0).(*model.Review)
	return r, args.Error(1)
}

func (m *mockReviewService) GetReview(ctx context.Context, id int) (*model.Review, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Review)
	return r, args.Error(1)
}

func (m *mockReviewService) ListUserReviews(ctx context.Context, subjectID, userID int) ([]model.Review, error) {
	args := m.Called(ctx, subjectID, userID)
	rs, _ := args.Get(0).([]model.Review)
	return rs, args.Error(1)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, subjectID, id int, req model.UpdateReviewRequest) error {
	return m.Called(ctx, subjectID, id, req).Error(0)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, subjectID, id int) error {
	return m.Called(ctx, subjectID, id).Error(0)
}
