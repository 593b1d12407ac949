package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/harentsoaR/contact-directory/internal/apperr"
	"github.com/harentsoaR/contact-directory/internal/dto"
	"github.com/harentsoaR/contact-directory/internal/models"
	"github.com/harentsoaR/contact-directory/internal/repository"
	"github.com/harentsoaR/contact-directory/internal/utils"
)

// AuthService registers users and logs them in.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	users    repository.UserRepository
	hasher   *utils.PasswordHasher
	tokens   *utils.TokenIssuer
	validate *validator.Validate
	logger   *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	hasher *utils.PasswordHasher,
	tokens *utils.TokenIssuer,
	validate *validator.Validate,
	logger *zap.Logger,
) AuthService {
	return &authService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		validate: validate,
		logger:   logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, apperr.Validation(MsgMissingFields)
	}

	// 1. Reject a phone that is already registered
	_, err := s.users.GetByPhone(ctx, req.Phone)
	switch {
	case err == nil:
		return nil, apperr.Conflict(MsgUserExists)
	case !errors.Is(err, repository.ErrNotFound):
		s.logger.Error("look up user failed", zap.Error(err))
		return nil, apperr.Storage(MsgInternalServerFailure, err)
	}

	// 2. Hash
	hash, err := s.hasher.HashPassword(req.Password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return nil, apperr.Validation(MsgPasswordTooLong)
	}
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, apperr.Storage(MsgInternalServerFailure, err)
	}

	// 3. Insert; the store's unique constraint catches concurrent registrations
	user := &models.User{Phone: req.Phone, PasswordHash: hash, Role: req.Role}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict(MsgUserExists)
		}
		s.logger.Error("insert user failed", zap.Error(err))
		return nil, apperr.Storage(MsgInternalServerFailure, err)
	}

	s.logger.Info("user registered", zap.String("role", user.Role))
	return &dto.UserResponse{Phone: user.Phone, Role: user.Role}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, apperr.Validation(MsgMissingCredentials)
	}

	// 1. Unknown phone and wrong password share one message
	user, err := s.users.GetByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Authentication(MsgInvalidCredentials)
		}
		s.logger.Error("look up user failed", zap.Error(err))
		return nil, apperr.Storage(MsgInternalServerFailure, err)
	}

	// 2. Verify
	if !s.hasher.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperr.Authentication(MsgInvalidCredentials)
	}

	// 3. Issue
	token, err := s.tokens.GenerateJWT(user.Phone, user.Role)
	if err != nil {
		s.logger.Error("sign token failed", zap.Error(err))
		return nil, apperr.Storage(MsgInternalServerFailure, err)
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.UserResponse{Phone: user.Phone, Role: user.Role},
	}, nil
}
