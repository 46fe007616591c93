// repository/banner_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fadhlanhapp/splitbill-backend/models"
)

// BannerRepository handles database operations for banners.
type BannerRepository struct {
	DB *sql.DB
}

// NewBannerRepository creates a new BannerRepository
func NewBannerRepository(db *sql.DB) *BannerRepository {
	return &BannerRepository{DB: db}
}

// ReplaceAll reconciles storage against the submitted set inside one
// transaction: entries with an id update that banner (missing id fails the
// whole batch), entries without insert a new one, and every stored banner
// absent from the submission is deleted. Any failure rolls the batch back.
func (r *BannerRepository) ReplaceAll(inputs []models.BannerInput) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	keptIDs := make([]string, 0, len(inputs))

	for _, input := range inputs {
		if input.ID != "" {
			if _, err := uuid.Parse(input.ID); err != nil {
				return fmt.Errorf("banner %s: %w", input.ID, ErrNotFound)
			}
			result, err := tx.Exec(
				`UPDATE banners SET image = $1, route = $2, updated_at = $3 WHERE id = $4`,
				input.Image, input.Route, now, input.ID,
			)
			if err != nil {
				return fmt.Errorf("failed to update banner: %v", err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to check banner update: %v", err)
			}
			if affected == 0 {
				return fmt.Errorf("banner %s: %w", input.ID, ErrNotFound)
			}
			keptIDs = append(keptIDs, input.ID)
			continue
		}

		id := uuid.NewString()
		_, err := tx.Exec(
			`INSERT INTO banners (id, image, route, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			id, input.Image, input.Route, now, now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert banner: %v", err)
		}
		keptIDs = append(keptIDs, id)
	}

	// Banners omitted from the submission are deletions.
	if _, err := tx.Exec(
		`DELETE FROM banners WHERE id <> ALL($1)`,
		pq.Array(keptIDs),
	); err != nil {
		return fmt.Errorf("failed to prune banners: %v", err)
	}

	return tx.Commit()
}

// List returns all banners, newest first.
func (r *BannerRepository) List() ([]models.Banner, error) {
	rows, err := r.DB.Query(
		`SELECT id, image, route, created_at, updated_at
		 FROM banners ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %v", err)
	}
	defer rows.Close()

	banners := []models.Banner{}
	for rows.Next() {
		var banner models.Banner
		if err := rows.Scan(&banner.ID, &banner.Image, &banner.Route,
			&banner.CreatedAt, &banner.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan banner: %v", err)
		}
		banners = append(banners, banner)
	}
	return banners, rows.Err()
}

// Delete removes a single banner by id.
func (r *BannerRepository) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	result, err := r.DB.Exec(`DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete banner: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check banner delete: %v", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
