// services/participant_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/repository"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// ParticipantStore is the persistence surface the participant directory
// service needs.
type ParticipantStore interface {
	List(userID string) ([]models.Participant, error)
	Create(userID string, participant *models.Participant) error
	ExistsByName(userID, name string) (bool, error)
	Delete(userID, participantID string) error
}

// ParticipantService handles the per-user participant directory.
type ParticipantService struct {
	store ParticipantStore
}

// NewParticipantService creates a new participant service
func NewParticipantService(store ParticipantStore) *ParticipantService {
	return &ParticipantService{store: store}
}

// List returns the caller's participants in creation order.
func (s *ParticipantService) List(userID string) ([]models.Participant, error) {
	participants, err := s.store.List(userID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve participants")
	}
	return participants, nil
}

// Create adds a named participant for the caller. Names are unique per owner,
// compared case-insensitively; a duplicate is a 409.
func (s *ParticipantService) Create(userID, name string) (*models.Participant, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, utils.NewBadRequestError(utils.ErrParticipantNameRequired)
	}

	exists, err := s.store.ExistsByName(userID, trimmed)
	if err != nil {
		return nil, utils.NewInternalError("Failed to check participant name")
	}
	if exists {
		return nil, utils.NewConflictError(utils.ErrParticipantExists)
	}

	now := time.Now().UTC()
	participant := &models.Participant{
		ID:        uuid.NewString(),
		Name:      trimmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(userID, participant); err != nil {
		// A racing duplicate loses on the unique index.
		if errors.Is(err, repository.ErrConflict) {
			return nil, utils.NewConflictError(utils.ErrParticipantExists)
		}
		return nil, utils.NewInternalError("Failed to store participant")
	}

	return participant, nil
}

// Delete removes one of the caller's participants. Malformed and not-owned
// ids are both a 404.
func (s *ParticipantService) Delete(userID, participantID string) error {
	if err := s.store.Delete(userID, participantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.NewNotFoundError(utils.ErrParticipantNotFound)
		}
		return utils.NewInternalError("Failed to delete participant")
	}
	return nil
}
