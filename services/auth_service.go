package services

import (
	"context"
	"errors"
	"time"

	"github.com/Fromshel/ontaste-api/models"
	"github.com/Fromshel/ontaste-api/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AuthService defines the business logic for registration and login.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) *ServiceError
	Login(ctx context.Context, req *models.LoginRequest) (*models.UserProfile, *ServiceError)
}

type authServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo repository.UserRepository, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// Register creates a user with a bcrypt-hashed password. Duplicate emails are
// rejected both by the lookup and, under concurrent registration, by the
// unique email index.
func (s *authServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) *ServiceError {
	_, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return &ServiceError{StatusCode: 409, Message: "user exists"}
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("Failed to look up user", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to register"}
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to register"}
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &ServiceError{StatusCode: 409, Message: "user exists"}
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to register"}
	}

	s.logger.Info("User registered", zap.String("email", req.Email))
	return nil
}

// Login verifies credentials. An unknown email and a wrong password produce
// the identical rejection so the two cases stay indistinguishable to callers.
func (s *authServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.UserProfile, *ServiceError) {
	invalidCreds := &ServiceError{StatusCode: 401, Message: "invalid creds"}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, invalidCreds
		}
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to log in"}
	}

	if !CheckPassword(user.Password, req.Password) {
		return nil, invalidCreds
	}

	return &models.UserProfile{Name: user.Name, Email: user.Email}, nil
}
