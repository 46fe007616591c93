// repository/user_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/fadhlanhapp/splitbill-backend/models"
)

// UserRepository handles database operations for users.
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, name, email, password_hash, is_admin, is_verified,
	login_attempts, lock_until, created_at, updated_at`

// Create inserts a user. A duplicate email returns ErrConflict.
func (r *UserRepository) Create(user *models.User) error {
	_, err := r.DB.Exec(
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		user.ID, user.Name, user.Email, user.PasswordHash,
		user.IsAdmin, user.IsVerified, user.LoginAttempts, user.LockUntil,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return ErrConflict
		}
		return fmt.Errorf("failed to insert user: %v", err)
	}
	return nil
}

// GetByEmail returns the user with the given email, or ErrNotFound.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetByID returns the user with the given id, or ErrNotFound.
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) getOne(query string, arg interface{}) (*models.User, error) {
	var user models.User
	var lockUntil sql.NullTime
	err := r.DB.QueryRow(query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.IsAdmin, &user.IsVerified, &user.LoginAttempts, &lockUntil,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	if lockUntil.Valid {
		t := lockUntil.Time
		user.LockUntil = &t
	}
	return &user, nil
}

// List returns all users, newest first.
func (r *UserRepository) List() ([]*models.User, error) {
	rows, err := r.DB.Query(`SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %v", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var user models.User
		var lockUntil sql.NullTime
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.PasswordHash,
			&user.IsAdmin, &user.IsVerified, &user.LoginAttempts, &lockUntil,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %v", err)
		}
		if lockUntil.Valid {
			t := lockUntil.Time
			user.LockUntil = &t
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

// IncrementLoginAttempts bumps the failed-login counter and locks the
// account once maxAttempts is reached.
func (r *UserRepository) IncrementLoginAttempts(userID string, maxAttempts int, lockFor time.Duration) error {
	_, err := r.DB.Exec(
		`UPDATE users SET
			login_attempts = login_attempts + 1,
			lock_until = CASE WHEN login_attempts + 1 >= $2 THEN $3 ELSE lock_until END,
			updated_at = now()
		 WHERE id = $1`,
		userID, maxAttempts, time.Now().UTC().Add(lockFor),
	)
	if err != nil {
		return fmt.Errorf("failed to increment login attempts: %v", err)
	}
	return nil
}

// ResetLoginAttempts clears the failed-login counter and any lockout.
func (r *UserRepository) ResetLoginAttempts(userID string) error {
	_, err := r.DB.Exec(
		`UPDATE users SET login_attempts = 0, lock_until = NULL, updated_at = now()
		 WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to reset login attempts: %v", err)
	}
	return nil
}
