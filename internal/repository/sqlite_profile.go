package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sofiaherrero/vinculo/internal/db"
)

// SQLiteProfileRepo implements ProfileRepo over the single-row profile table.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) CurrentUserID(ctx context.Context) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT professional_id FROM profile WHERE id = 1`)
	var id string
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("no current user set (run 'vinculo whoami --set <id>')")
		}
		return "", fmt.Errorf("reading profile: %w", err)
	}
	return id, nil
}

func (r *SQLiteProfileRepo) SetCurrentUserID(ctx context.Context, professionalID string) error {
	query := `INSERT INTO profile (id, professional_id) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET professional_id = excluded.professional_id`
	_, err := r.db.ExecContext(ctx, query, professionalID)
	if err != nil {
		return fmt.Errorf("setting current user: %w", err)
	}
	return nil
}
