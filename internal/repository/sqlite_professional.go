package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sofiaherrero/vinculo/internal/db"
	"github.com/sofiaherrero/vinculo/internal/domain"
)

// SQLiteProfessionalRepo implements ProfessionalRepo using a SQLite database.
type SQLiteProfessionalRepo struct {
	db db.DBTX
}

// NewSQLiteProfessionalRepo creates a new SQLiteProfessionalRepo.
func NewSQLiteProfessionalRepo(conn db.DBTX) *SQLiteProfessionalRepo {
	return &SQLiteProfessionalRepo{db: conn}
}

func (r *SQLiteProfessionalRepo) Upsert(ctx context.Context, p *domain.Professional) error {
	query := `INSERT INTO professionals (id, name, role, ceas) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, role = excluded.role, ceas = excluded.ceas`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, string(p.Role), p.CEAS)
	if err != nil {
		return fmt.Errorf("upserting professional: %w", err)
	}
	return nil
}

func (r *SQLiteProfessionalRepo) GetByID(ctx context.Context, id string) (*domain.Professional, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, role, ceas FROM professionals WHERE id = ?`, id)
	var p domain.Professional
	var roleStr string
	if err := row.Scan(&p.ID, &p.Name, &roleStr, &p.CEAS); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("professional not found")
		}
		return nil, fmt.Errorf("scanning professional: %w", err)
	}
	p.Role = domain.Role(roleStr)
	return &p, nil
}

func (r *SQLiteProfessionalRepo) List(ctx context.Context) ([]*domain.Professional, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, role, ceas FROM professionals ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing professionals: %w", err)
	}
	defer rows.Close()

	var pros []*domain.Professional
	for rows.Next() {
		var p domain.Professional
		var roleStr string
		if err := rows.Scan(&p.ID, &p.Name, &roleStr, &p.CEAS); err != nil {
			return nil, fmt.Errorf("scanning professional: %w", err)
		}
		p.Role = domain.Role(roleStr)
		pros = append(pros, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating professionals: %w", err)
	}
	return pros, nil
}
