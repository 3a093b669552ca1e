package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sofiaherrero/vinculo/internal/db"
	"github.com/sofiaherrero/vinculo/internal/domain"
)

// SQLiteCaseRepo implements CaseRepo using a SQLite database.
type SQLiteCaseRepo struct {
	db db.DBTX
}

// NewSQLiteCaseRepo creates a new SQLiteCaseRepo over a DB or transaction.
func NewSQLiteCaseRepo(conn db.DBTX) *SQLiteCaseRepo {
	return &SQLiteCaseRepo{db: conn}
}

const caseColumns = `id, name, nickname, status, address, created_at, updated_at`

func (r *SQLiteCaseRepo) Create(ctx context.Context, c *domain.Case) error {
	query := `INSERT INTO cases (` + caseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Nickname,
		string(c.Status),
		c.Address,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting case: %w", err)
	}
	return nil
}

func (r *SQLiteCaseRepo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	c, err := scanCase(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("case not found")
		}
		return nil, err
	}
	c.ProfessionalIDs, err = r.ListProfessionalIDs(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCaseRepo) List(ctx context.Context, includeClosed bool) ([]*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases ORDER BY created_at`
	if !includeClosed {
		query = `SELECT ` + caseColumns + ` FROM cases WHERE status != 'closed' ORDER BY created_at`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	defer rows.Close()

	var cases []*domain.Case
	for rows.Next() {
		c, err := scanCase(rows.Scan)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cases: %w", err)
	}
	for _, c := range cases {
		if c.ProfessionalIDs, err = r.ListProfessionalIDs(ctx, c.ID); err != nil {
			return nil, err
		}
	}
	return cases, nil
}

func (r *SQLiteCaseRepo) Update(ctx context.Context, c *domain.Case) error {
	query := `UPDATE cases SET name = ?, nickname = ?, status = ?, address = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Nickname,
		string(c.Status),
		c.Address,
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating case: %w", err)
	}
	return nil
}

func (r *SQLiteCaseRepo) SetStatus(ctx context.Context, id string, status domain.CaseStatus) error {
	query := `UPDATE cases SET status = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting case status: %w", err)
	}
	return nil
}

func (r *SQLiteCaseRepo) AssignProfessional(ctx context.Context, caseID, professionalID string) error {
	query := `INSERT OR IGNORE INTO case_professionals (case_id, professional_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, caseID, professionalID)
	if err != nil {
		return fmt.Errorf("assigning professional: %w", err)
	}
	return nil
}

func (r *SQLiteCaseRepo) UnassignProfessional(ctx context.Context, caseID, professionalID string) error {
	query := `DELETE FROM case_professionals WHERE case_id = ? AND professional_id = ?`
	_, err := r.db.ExecContext(ctx, query, caseID, professionalID)
	if err != nil {
		return fmt.Errorf("unassigning professional: %w", err)
	}
	return nil
}

func (r *SQLiteCaseRepo) ListProfessionalIDs(ctx context.Context, caseID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT professional_id FROM case_professionals WHERE case_id = ? ORDER BY professional_id`, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing case professionals: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning professional id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *SQLiteCaseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting case: %w", err)
	}
	return nil
}

// scanCase scans one case row via the given Scan function, so it works for
// both *sql.Row and *sql.Rows.
func scanCase(scan func(dest ...any) error) (*domain.Case, error) {
	var c domain.Case
	var statusStr, createdAtStr, updatedAtStr string

	if err := scan(&c.ID, &c.Name, &c.Nickname, &statusStr, &c.Address, &createdAtStr, &updatedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning case: %w", err)
	}
	c.Status = domain.CaseStatus(statusStr)

	var parseErr error
	c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}
