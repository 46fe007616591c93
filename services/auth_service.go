// services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/repository"
	"github.com/fadhlanhapp/splitbill-backend/utils"

	"github.com/google/uuid"
)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	List() ([]*models.User, error)
	IncrementLoginAttempts(userID string, maxAttempts int, lockFor time.Duration) error
	ResetLoginAttempts(userID string) error
}

// Claims are the JWT claims carried by both access and refresh tokens.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies tokens and resolves caller identity.
type AuthService struct {
	users         UserStore
	accessSecret  []byte
	refreshSecret []byte
}

// NewAuthService creates a new auth service. Both secrets must be non-empty.
func NewAuthService(users UserStore, accessSecret, refreshSecret string) (*AuthService, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("JWT_SECRET and JWT_REFRESH_SECRET must be set")
	}
	return &AuthService{
		users:         users,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}, nil
}

// GenerateTokens creates a fresh access/refresh pair for the user.
func (s *AuthService) GenerateTokens(userID string) (models.TokenPair, error) {
	accessToken, err := s.sign(userID, s.accessSecret, utils.AccessTokenTTL)
	if err != nil {
		return models.TokenPair{}, err
	}
	refreshToken, err := s.sign(userID, s.refreshSecret, utils.RefreshTokenTTL)
	if err != nil {
		return models.TokenPair{}, err
	}
	return models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) sign(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses an access token and returns its claims.
func (s *AuthService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return validate(tokenString, s.accessSecret)
}

// ValidateRefreshToken parses a refresh token and returns its claims.
func (s *AuthService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return validate(tokenString, s.refreshSecret)
}

func validate(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, utils.NewUnauthorizedError(utils.ErrTokenExpired)
		}
		return nil, utils.NewUnauthorizedError(utils.ErrTokenInvalid)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, utils.NewUnauthorizedError(utils.ErrTokenInvalid)
	}
	return claims, nil
}

// ResolveUser turns a bearer access token into the stored user, failing
// closed with a 401 on any problem.
func (s *AuthService) ResolveUser(tokenString string) (*models.User, error) {
	claims, err := s.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, utils.NewUnauthorizedError(utils.ErrTokenInvalid)
		}
		return nil, utils.NewInternalError("Authentication failed")
	}
	return user, nil
}

// Login verifies credentials for the admin dashboard. The invalid-credentials
// message is identical for unknown email and wrong password so emails cannot
// be enumerated. Repeated failures lock the account.
func (s *AuthService) Login(email, password string) (*models.User, models.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, models.TokenPair{}, utils.NewBadRequestError(utils.ErrEmailPasswordNeeded)
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.Warn("failed login attempt, user not found", "email", email)
			return nil, models.TokenPair{}, utils.NewUnauthorizedError(utils.ErrInvalidCredentials)
		}
		return nil, models.TokenPair{}, utils.NewInternalError("Authentication failed")
	}

	now := time.Now()
	if user.IsLocked(now) {
		slog.Warn("login attempt on locked account", "userId", user.ID, "lockUntil", user.LockUntil)
		return nil, models.TokenPair{}, utils.NewLockedError(fmt.Sprintf(
			"Account is locked due to too many failed login attempts. Please try again after %s",
			user.LockUntil.Format("15:04:05"),
		))
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if err := s.users.IncrementLoginAttempts(user.ID, utils.MaxLoginAttempts, utils.LockoutDuration); err != nil {
			slog.Error("failed to record login attempt", "userId", user.ID, "error", err)
		}
		slog.Warn("failed login attempt, invalid password", "userId", user.ID, "attempts", user.LoginAttempts+1)
		return nil, models.TokenPair{}, utils.NewUnauthorizedError(utils.ErrInvalidCredentials)
	}

	if !user.IsVerified {
		return nil, models.TokenPair{}, utils.NewForbiddenError(utils.ErrNotVerified)
	}

	if !user.IsAdmin {
		slog.Warn("non-admin attempted dashboard login", "userId", user.ID)
		return nil, models.TokenPair{}, utils.NewForbiddenError(utils.ErrNotAdmin)
	}

	if err := s.users.ResetLoginAttempts(user.ID); err != nil {
		slog.Error("failed to reset login attempts", "userId", user.ID, "error", err)
	}

	tokens, err := s.GenerateTokens(user.ID)
	if err != nil {
		return nil, models.TokenPair{}, utils.NewInternalError("Failed to issue tokens")
	}

	slog.Info("successful login", "userId", user.ID)
	return user, tokens, nil
}

// Register creates a new unverified, non-admin user.
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" {
		return nil, utils.NewBadRequestError(utils.ErrInvalidRequest)
	}
	if !utils.IsValidEmail(email) {
		return nil, utils.NewBadRequestError("Format email tidak valid")
	}
	if len(password) < 8 {
		return nil, utils.NewBadRequestError("Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewInternalError("Failed to hash password")
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, utils.NewConflictError("Email already registered")
		}
		return nil, utils.NewInternalError("Failed to create user")
	}

	return user, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(refreshToken string) (models.TokenPair, error) {
	claims, err := s.ValidateRefreshToken(refreshToken)
	if err != nil {
		return models.TokenPair{}, err
	}
	if _, err := s.users.GetByID(claims.UserID); err != nil {
		return models.TokenPair{}, utils.NewUnauthorizedError(utils.ErrTokenInvalid)
	}
	return s.GenerateTokens(claims.UserID)
}

// ListUsers returns the public shape of every user.
func (s *AuthService) ListUsers() ([]models.PublicUser, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve users")
	}
	public := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}
	return public, nil
}
