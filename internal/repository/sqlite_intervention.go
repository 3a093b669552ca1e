package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sofiaherrero/vinculo/internal/db"
	"github.com/sofiaherrero/vinculo/internal/domain"
)

// SQLiteInterventionRepo implements InterventionRepo using a SQLite database.
type SQLiteInterventionRepo struct {
	db db.DBTX
}

// NewSQLiteInterventionRepo creates a new SQLiteInterventionRepo.
func NewSQLiteInterventionRepo(conn db.DBTX) *SQLiteInterventionRepo {
	return &SQLiteInterventionRepo{db: conn}
}

const interventionColumns = `id, case_id, title, type, start_at, end_at, is_all_day, notes, status, cancellation_time, registered, created_by, created_at, updated_at`

func (r *SQLiteInterventionRepo) Create(ctx context.Context, iv *domain.Intervention) error {
	query := `INSERT INTO interventions (` + interventionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	var caseID interface{}
	if iv.CaseID != "" {
		caseID = iv.CaseID
	}
	_, err := r.db.ExecContext(ctx, query,
		iv.ID,
		caseID,
		iv.Title,
		string(iv.Type),
		iv.Start.UTC().Format(time.RFC3339),
		iv.End.UTC().Format(time.RFC3339),
		boolToInt(iv.IsAllDay),
		iv.Notes,
		string(iv.Status),
		nullableTimeToString(iv.CancellationTime, time.RFC3339),
		boolToInt(iv.Registered),
		iv.CreatedBy,
		iv.CreatedAt.Format(time.RFC3339),
		iv.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting intervention: %w", err)
	}
	return nil
}

func (r *SQLiteInterventionRepo) GetByID(ctx context.Context, id string) (*domain.Intervention, error) {
	query := `SELECT ` + interventionColumns + ` FROM interventions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	iv, err := scanIntervention(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("intervention not found")
	}
	return iv, err
}

func (r *SQLiteInterventionRepo) ListByCase(ctx context.Context, caseID string) ([]*domain.Intervention, error) {
	query := `SELECT ` + interventionColumns + ` FROM interventions WHERE case_id = ? ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing case interventions: %w", err)
	}
	return collectInterventions(rows)
}

func (r *SQLiteInterventionRepo) ListGeneral(ctx context.Context) ([]*domain.Intervention, error) {
	query := `SELECT ` + interventionColumns + ` FROM interventions WHERE case_id IS NULL ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing general interventions: %w", err)
	}
	return collectInterventions(rows)
}

func (r *SQLiteInterventionRepo) ListAll(ctx context.Context) ([]*domain.Intervention, error) {
	query := `SELECT ` + interventionColumns + ` FROM interventions ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing interventions: %w", err)
	}
	return collectInterventions(rows)
}

func (r *SQLiteInterventionRepo) Update(ctx context.Context, iv *domain.Intervention) error {
	query := `UPDATE interventions SET case_id = ?, title = ?, type = ?, start_at = ?, end_at = ?, is_all_day = ?, notes = ?, status = ?, cancellation_time = ?, registered = ?, updated_at = ?
		WHERE id = ?`
	var caseID interface{}
	if iv.CaseID != "" {
		caseID = iv.CaseID
	}
	_, err := r.db.ExecContext(ctx, query,
		caseID,
		iv.Title,
		string(iv.Type),
		iv.Start.UTC().Format(time.RFC3339),
		iv.End.UTC().Format(time.RFC3339),
		boolToInt(iv.IsAllDay),
		iv.Notes,
		string(iv.Status),
		nullableTimeToString(iv.CancellationTime, time.RFC3339),
		boolToInt(iv.Registered),
		iv.UpdatedAt.Format(time.RFC3339),
		iv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating intervention: %w", err)
	}
	return nil
}

func (r *SQLiteInterventionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM interventions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting intervention: %w", err)
	}
	return nil
}

func collectInterventions(rows *sql.Rows) ([]*domain.Intervention, error) {
	defer rows.Close()
	var out []*domain.Intervention
	for rows.Next() {
		iv, err := scanIntervention(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interventions: %w", err)
	}
	return out, nil
}

func scanIntervention(scan func(dest ...any) error) (*domain.Intervention, error) {
	var iv domain.Intervention
	var caseID, cancellationStr sql.NullString
	var typeStr, startStr, endStr, statusStr, createdAtStr, updatedAtStr string
	var allDayInt, registeredInt int

	err := scan(
		&iv.ID, &caseID, &iv.Title, &typeStr,
		&startStr, &endStr, &allDayInt, &iv.Notes,
		&statusStr, &cancellationStr, &registeredInt,
		&iv.CreatedBy, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning intervention: %w", err)
	}

	if caseID.Valid {
		iv.CaseID = caseID.String
	}
	iv.Type = domain.InterventionType(typeStr)
	iv.Status = domain.InterventionStatus(statusStr)
	iv.IsAllDay = intToBool(allDayInt)
	iv.Registered = intToBool(registeredInt)
	iv.CancellationTime = parseNullableTime(cancellationStr, time.RFC3339)

	var parseErr error
	iv.Start, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_at: %w", parseErr)
	}
	iv.End, parseErr = time.Parse(time.RFC3339, endStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_at: %w", parseErr)
	}
	iv.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	iv.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &iv, nil
}
