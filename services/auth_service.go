package services

import (
	"context"
	"errors"
	"time"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/repository"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles account registration and login.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, *ServiceError)
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, *ServiceError)
}

type authServiceImpl struct {
	users    repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   *zap.Logger
}

func NewAuthService(users repository.UserRepository, secret string, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: 24 * time.Hour,
		logger:   logger,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, *ServiceError) {
	if existing, err := s.users.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, &ServiceError{StatusCode: 409, Message: "Email already registered"}
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("Failed to check existing account", zap.Error(err))
		return nil, internal("Failed to register account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, internal("Failed to register account")
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Roles:    []string{models.RoleCustomer},
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create account", zap.Error(err))
		return nil, internal("Failed to register account")
	}

	s.logger.Info("Account registered", zap.String("id", user.ID.Hex()))
	return user, nil
}

func (s *authServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, *ServiceError) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, &ServiceError{StatusCode: 401, Message: "Invalid credentials"}
		}
		s.logger.Error("Failed to load account", zap.Error(err))
		return "", nil, internal("Failed to log in")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, &ServiceError{StatusCode: 401, Message: "Invalid credentials"}
	}

	claims := jwt.MapClaims{
		"id":   user.ID.Hex(),
		"role": user.Roles,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return "", nil, internal("Failed to log in")
	}
	return token, user, nil
}
