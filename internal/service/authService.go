package service

import (
	"context"
	"fmt"
	"strings"

	repository "github.com/anjalishikhare80/event-management-system/internal/database/sqlite"
	"github.com/anjalishikhare80/event-management-system/internal/entity"
)

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Signup(ctx context.Context, req *SignupRequest) (*entity.User, error) {
	user := &entity.User{
		Username: strings.TrimSpace(req.Username),
		Password: strings.TrimSpace(req.Password),
		Role:     entity.ParseRole(req.Role),
	}

	if user.Username == "" || user.Password == "" {
		return nil, entity.ErrInvalidCredentials
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// uniqueness conflict surfaces as ErrUserExists, nothing was mutated
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := s.userRepo.GetByCredentials(ctx,
		strings.TrimSpace(username), strings.TrimSpace(password))
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return user, nil
}
