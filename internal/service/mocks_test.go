package service

import (
	"context"

	"business_directory/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 100
	}
	return args.Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

type mockAuthorizer struct{ mock.Mock }

func (m *mockAuthorizer) HasAccess(ctx context.Context, subjectID, ownerID int) (bool, error) {
	args := m.Called(ctx, subjectID, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAuthorizer) IsAdmin(ctx context.Context, subjectID int) (bool, error) {
	args := m.Called(ctx, subjectID)
	return args.Bool(0), args.Error(1)
}

type mockBusinessRepo struct{ mock.Mock }

func (m *mockBusinessRepo) Create(ctx context.Context, b *model.Business) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = 1
	}
	return args.Error(0)
}

func (m *mockBusinessRepo) FindByID(ctx context.Context, id int) (*model.Business, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*model.Business)
	return b, args.Error(1)
}

func (m *mockBusinessRepo) FindAll(ctx context.Context) ([]model.Business, error) {
	args := m.Called(ctx)
	bs, _ := args.Get(0).([]model.Business)
	return bs, args.Error(1)
}

func (m *mockBusinessRepo) FindByOwner(ctx context.Context, ownerID int) ([]model.Business, error) {
	args := m.Called(ctx, ownerID)
	bs, _ := args.Get(0).([]model.Business)
	return bs, args.Error(1)
}

func (m *mockBusinessRepo) Update(ctx context.Context, id int, req model.UpdateBusinessRequest) (int64, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBusinessRepo) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockPhotoRepo struct{ mock.Mock }

func (m *mockPhotoRepo) Create(ctx context.Context, p *model.Photo) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 1
	}
	return args.Error(0)
}

func (m *mockPhotoRepo) FindByID(ctx context.Context, id int) (*model.Photo, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Photo)
	return p, args.Error(1)
}

func (m *mockPhotoRepo) FindByUser(ctx context.Context, userID int) ([]model.Photo, error) {
	args := m.Called(ctx, userID)
	ps, _ := args.Get(0).([]model.Photo)
	return ps, args.Error(1)
}

func (m *mockPhotoRepo) FindByBusiness(ctx context.Context, businessID int) ([]model.Photo, error) {
	args := m.Called(ctx, businessID)
	ps, _ := args.Get(0).([]model.Photo)
	return ps, args.Error(1)
}

func (m *mockPhotoRepo) Update(ctx context.Context, id int, req model.UpdatePhotoRequest) (int64, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPhotoRepo) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	args := m.Called(ctx, rv)
	if args.Error(0) == nil {
		rv.ID = 1
	}
	return args.Error(0)
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id int) (*model.Review, error) {
	args := m.Called(ctx, id)
	rv, _ := args.Get(0).(*model.Review)
	return rv, args.Error(1)
}

func (m *mockReviewRepo) FindByUser(ctx context.Context, userID int) ([]model.Review, error) {
	args := m.Called(ctx, userID)
	rs, _ := args.Get(0).([]model.Review)
	return rs, args.Error(1)
}

func (m *mockReviewRepo) FindByBusiness(ctx context.Context, businessID int) ([]model.Review, error) {
	args := m.Called(ctx, businessID)
	rs, _ := args.Get(0).([]model.Review)
	return rs, args.Error(1)
}

func (m *mockReviewRepo) Update(ctx context.Context, id int, req model.UpdateReviewRequest) (int64, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
