// repository/participant_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fadhlanhapp/splitbill-backend/models"
)

// uniqueViolation is the Postgres error code for a unique index conflict.
const uniqueViolation = "23505"

// ParticipantRepository handles database operations for the standalone
// participant directory.
type ParticipantRepository struct {
	DB *sql.DB
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *sql.DB) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

// List returns the owner's participants in creation order.
func (r *ParticipantRepository) List(userID string) ([]models.Participant, error) {
	rows, err := r.DB.Query(
		`SELECT id, name, created_at, updated_at FROM participants
		 WHERE user_id = $1 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %v", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %v", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// Create inserts a participant for the owner. The unique index on
// (user_id, LOWER(name)) makes a racing duplicate lose with ErrConflict
// instead of silently overwriting.
func (r *ParticipantRepository) Create(userID string, participant *models.Participant) error {
	_, err := r.DB.Exec(
		`INSERT INTO participants (id, user_id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		participant.ID, userID, participant.Name,
		participant.CreatedAt, participant.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return ErrConflict
		}
		return fmt.Errorf("failed to insert participant: %v", err)
	}
	return nil
}

// ExistsByName reports whether the owner already has a participant with this
// name, compared case-insensitively.
func (r *ParticipantRepository) ExistsByName(userID, name string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM participants
		 WHERE user_id = $1 AND LOWER(name) = LOWER($2))`,
		userID, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check participant name: %v", err)
	}
	return exists, nil
}

// Delete removes the owner's participant. A malformed or not-owned id is
// ErrNotFound either way.
func (r *ParticipantRepository) Delete(userID, participantID string) error {
	if _, err := uuid.Parse(participantID); err != nil {
		return ErrNotFound
	}
	result, err := r.DB.Exec(
		`DELETE FROM participants WHERE id = $1 AND user_id = $2`,
		participantID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check participant delete: %v", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
