package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"business_directory/internal/model"
	"business_directory/internal/repository"
	"business_directory/internal/utils"
)

// UserService provides account and authentication operations
type UserService interface {
	// CreateUser registers a user. creatorID is the authenticated caller, or 0
	// for anonymous signup; only an existing admin may create another admin.
	CreateUser(ctx context.Context, creatorID int, req model.CreateUserRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	GetUser(ctx context.Context, subjectID, userID int) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	policy   Authorizer
	jwtUtil  *utils.JWTUtil
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, policy Authorizer, jwtUtil *utils.JWTUtil) UserService {
	return &userService{
		userRepo: userRepo,
		policy:   policy,
		jwtUtil:  jwtUtil,
	}
}

func (s *userService) CreateUser(ctx context.Context, creatorID int, req model.CreateUserRequest) (*model.User, error) {
	if req.Admin {
		isAdmin, err := s.policy.IsAdmin(ctx, creatorID)
		if err != nil {
			return nil, err
		}
		if !isAdmin {
			return nil, ErrForbidden
		}
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Admin:        req.Admin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, asValidation(err)
	}
	if user.Admin {
		slog.InfoContext(ctx, "Administrator account created", "user_id", user.ID, "created_by", creatorID)
	}
	return user, nil
}

// Login checks the credentials and returns a signed token for the user
func (s *userService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	user.PasswordHash = ""
	return user, token, nil
}

func (s *userService) GetUser(ctx context.Context, subjectID, userID int) (*model.User, error) {
	if err := authorize(ctx, s.policy, subjectID, userID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
