package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "eventoz/database/repository/user"
	"eventoz/models"
	"eventoz/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

// ErrInvalidCredentials is returned on a failed login, without revealing
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	UserRepo  userRepo.UserRepository
	AuthCache *redis.Client
}

// Register creates a new account, hashes the password with bcrypt and
// signs the user in immediately.
func (s *DefaultAuthService) Register(req RegisterRequest) (*models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", fmt.Errorf("email and password are required")
	}
	if _, err := s.UserRepo.GetByEmail(req.Email); err == nil {
		return nil, "", fmt.Errorf("an account with email %s already exists", req.Email)
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleOrganizer
	}
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Location:     req.Location,
		Phone:        req.Phone,
		JoinedAt:     time.Now(),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	utils.GetLogger().Info("user registered", zap.String("userID", user.ID), zap.String("role", user.Role))
	return user, token, nil
}

// Login verifies credentials and returns a fresh token.
func (s *DefaultAuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes the token by dropping its cache entry. The middleware
// treats an uncached token as signed out even before its JWT expiry.
func (s *DefaultAuthService) Logout(token string) error {
	ctx := context.Background()
	key := utils.AuthCachePrefix + utils.HashToken(token)
	if err := s.AuthCache.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// issueToken signs a JWT and caches its hash so the middleware can check
// revocation with one Redis hit.
func (s *DefaultAuthService) issueToken(user *models.User) (string, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenLifetime)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	ctx := context.Background()
	key := utils.AuthCachePrefix + utils.HashToken(token)
	if err := s.AuthCache.Set(ctx, key, user.ID, utils.AuthCacheTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to cache token: %w", err)
	}
	return token, nil
}
