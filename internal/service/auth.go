package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jerdirlson/api-task/internal/models"
	"github.com/Jerdirlson/api-task/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
)

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// AuthService handles login and registration against the credential store.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	Register(ctx context.Context, username, password string, role int) error
}

type authService struct {
	users  repository.UserRepository
	tokens TokenService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users repository.UserRepository, tokens TokenService) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

// Login verifies the credentials and issues a token carrying the user's
// role snapshot. Unknown users and wrong passwords are indistinguishable to
// the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.tokens.Expiry().Seconds()),
	}, nil
}

// Register creates a user. A role may be set at creation time only; zero
// means the standard tier. There is no elevation path after creation.
func (s *authService) Register(ctx context.Context, username, password string, role int) error {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if role == 0 {
		role = models.DefaultRole
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}
