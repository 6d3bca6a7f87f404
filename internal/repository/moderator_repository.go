package repository

import (
	"database/sql"

	"github.com/unclebandit/outreachly-backend/internal/model"
)

// ModeratorRepositoryInterface defines methods used by the distributor
type ModeratorRepositoryInterface interface {
	GetByID(id int) (*model.Moderator, error)
	ListActive() ([]model.Moderator, error)
}

// ModeratorRepository is the concrete implementation
type ModeratorRepository struct {
	DB *sql.DB
}

// GetByID fetches a moderator by ID
func (r *ModeratorRepository) GetByID(id int) (*model.Moderator, error) {
	query := `
        SELECT id, name, status
        FROM moderators
        WHERE id = $1
    `
	row := r.DB.QueryRow(query, id)

	var m model.Moderator
	if err := row.Scan(&m.ID, &m.Name, &m.Status); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &m, nil
}

// ListActive fetches the moderators eligible for distribution. The fixed
// id ordering keeps round-robin assignment deterministic across runs.
func (r *ModeratorRepository) ListActive() ([]model.Moderator, error) {
	query := `
        SELECT id, name, status
        FROM moderators
        WHERE status = 'active'
        ORDER BY id ASC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	moderators := []model.Moderator{}
	for rows.Next() {
		var m model.Moderator
		if err := rows.Scan(&m.ID, &m.Name, &m.Status); err != nil {
			return nil, err
		}
		moderators = append(moderators, m)
	}
	return moderators, nil
}
