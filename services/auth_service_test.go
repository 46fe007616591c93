package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/repository"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

type fakeUserStore struct {
	byEmail    map[string]*models.User
	byID       map[string]*models.User
	increments int
	resets     int
	createErr  error
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	store := &fakeUserStore{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
	for _, user := range users {
		store.byEmail[user.Email] = user
		store.byID[user.ID] = user
	}
	return store
}

func (s *fakeUserStore) Create(user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) GetByID(id string) (*models.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) List() ([]*models.User, error) {
	users := make([]*models.User, 0, len(s.byID))
	for _, user := range s.byID {
		users = append(users, user)
	}
	return users, nil
}

func (s *fakeUserStore) IncrementLoginAttempts(userID string, maxAttempts int, lockFor time.Duration) error {
	s.increments++
	return nil
}

func (s *fakeUserStore) ResetLoginAttempts(userID string) error {
	s.resets++
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func adminUser(t *testing.T) *models.User {
	return &models.User{
		ID:           "u1",
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: hashPassword(t, "correct-horse"),
		IsAdmin:      true,
		IsVerified:   true,
	}
}

func newTestAuthService(t *testing.T, store UserStore) *AuthService {
	t.Helper()
	service, err := NewAuthService(store, "access-secret", "refresh-secret")
	require.NoError(t, err)
	return service
}

func TestNewAuthService_RequiresSecrets(t *testing.T) {
	_, err := NewAuthService(newFakeUserStore(), "", "refresh")
	assert.Error(t, err)

	_, err = NewAuthService(newFakeUserStore(), "access", "")
	assert.Error(t, err)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	service := newTestAuthService(t, newFakeUserStore())

	tokens, err := service.GenerateTokens("u1")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	claims, err := service.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)

	// The two token families are signed with different secrets.
	_, err = service.ValidateAccessToken(tokens.RefreshToken)
	assert.Error(t, err)

	claims, err = service.ValidateRefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestAuthService_ValidateAccessToken_Garbage(t *testing.T) {
	service := newTestAuthService(t, newFakeUserStore())

	_, err := service.ValidateAccessToken("not.a.token")

	require.Error(t, err)
	assert.Equal(t, utils.ErrTokenInvalid, err.Error())
}

func TestAuthService_Login_Success(t *testing.T) {
	store := newFakeUserStore(adminUser(t))
	service := newTestAuthService(t, store)

	user, tokens, err := service.Login("Admin@Example.com", "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, 1, store.resets)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	store := newFakeUserStore(adminUser(t))
	service := newTestAuthService(t, store)

	_, _, unknownErr := service.Login("nobody@example.com", "whatever")
	_, _, wrongErr := service.Login("admin@example.com", "wrong")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, utils.ErrInvalidCredentials, wrongErr.Error())
}

func TestAuthService_Login_WrongPasswordCountsAttempt(t *testing.T) {
	store := newFakeUserStore(adminUser(t))
	service := newTestAuthService(t, store)

	_, _, err := service.Login("admin@example.com", "wrong")

	require.Error(t, err)
	assert.Equal(t, 1, store.increments)
	assert.Zero(t, store.resets)
}

func TestAuthService_Login_LockedAccount(t *testing.T) {
	user := adminUser(t)
	lockUntil := time.Now().Add(10 * time.Minute)
	user.LockUntil = &lockUntil
	service := newTestAuthService(t, newFakeUserStore(user))

	_, _, err := service.Login("admin@example.com", "correct-horse")

	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 423, appErr.Code)
}

func TestAuthService_Login_ExpiredLockAdmitted(t *testing.T) {
	user := adminUser(t)
	lockUntil := time.Now().Add(-time.Minute)
	user.LockUntil = &lockUntil
	service := newTestAuthService(t, newFakeUserStore(user))

	_, _, err := service.Login("admin@example.com", "correct-horse")

	assert.NoError(t, err)
}

func TestAuthService_Login_UnverifiedForbidden(t *testing.T) {
	user := adminUser(t)
	user.IsVerified = false
	service := newTestAuthService(t, newFakeUserStore(user))

	_, _, err := service.Login("admin@example.com", "correct-horse")

	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)
	assert.Equal(t, utils.ErrNotVerified, appErr.Message)
}

func TestAuthService_Login_NonAdminForbidden(t *testing.T) {
	user := adminUser(t)
	user.IsAdmin = false
	service := newTestAuthService(t, newFakeUserStore(user))

	_, _, err := service.Login("admin@example.com", "correct-horse")

	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)
	assert.Equal(t, utils.ErrNotAdmin, appErr.Message)
}

func TestAuthService_Register(t *testing.T) {
	store := newFakeUserStore()
	service := newTestAuthService(t, store)

	user, err := service.Register("  Dina  ", "Dina@Example.com", "longenough")

	require.NoError(t, err)
	assert.Equal(t, "Dina", user.Name)
	assert.Equal(t, "dina@example.com", user.Email)
	assert.False(t, user.IsAdmin)
	assert.False(t, user.IsVerified)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")))
}

func TestAuthService_Register_Validation(t *testing.T) {
	service := newTestAuthService(t, newFakeUserStore())

	_, err := service.Register("", "dina@example.com", "longenough")
	assert.Error(t, err)

	_, err = service.Register("Dina", "not-an-email", "longenough")
	assert.Error(t, err)

	_, err = service.Register("Dina", "dina@example.com", "short")
	assert.Error(t, err)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	store.createErr = repository.ErrConflict
	service := newTestAuthService(t, store)

	_, err := service.Register("Dina", "dina@example.com", "longenough")

	require.Error(t, err)
	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.Code)
}

func TestAuthService_Refresh(t *testing.T) {
	store := newFakeUserStore(adminUser(t))
	service := newTestAuthService(t, store)

	tokens, err := service.GenerateTokens("u1")
	require.NoError(t, err)

	refreshed, err := service.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// An access token is not accepted as a refresh token.
	_, err = service.Refresh(tokens.AccessToken)
	assert.Error(t, err)
}

func TestAuthService_Refresh_DeletedUser(t *testing.T) {
	service := newTestAuthService(t, newFakeUserStore())

	tokens, err := service.GenerateTokens("gone")
	require.NoError(t, err)

	_, err = service.Refresh(tokens.RefreshToken)
	assert.Error(t, err)
}

func TestAuthService_ResolveUser(t *testing.T) {
	store := newFakeUserStore(adminUser(t))
	service := newTestAuthService(t, store)

	tokens, err := service.GenerateTokens("u1")
	require.NoError(t, err)

	user, err := service.ResolveUser(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = service.ResolveUser("garbage")
	assert.Error(t, err)
}
