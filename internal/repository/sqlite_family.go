package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sofiaherrero/vinculo/internal/db"
	"github.com/sofiaherrero/vinculo/internal/domain"
)

// SQLiteFamilyRepo implements FamilyRepo using a SQLite database.
type SQLiteFamilyRepo struct {
	db db.DBTX
}

// NewSQLiteFamilyRepo creates a new SQLiteFamilyRepo.
func NewSQLiteFamilyRepo(conn db.DBTX) *SQLiteFamilyRepo {
	return &SQLiteFamilyRepo{db: conn}
}

const birthDateLayout = "2006-01-02"

func (r *SQLiteFamilyRepo) Create(ctx context.Context, m *domain.FamilyMember) error {
	query := `INSERT INTO family_members (id, case_id, name, relationship, birth_date) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.CaseID, m.Name, m.Relationship, nullableTimeToString(m.BirthDate, birthDateLayout))
	if err != nil {
		return fmt.Errorf("inserting family member: %w", err)
	}
	return nil
}

func (r *SQLiteFamilyRepo) ListByCase(ctx context.Context, caseID string) ([]*domain.FamilyMember, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, case_id, name, relationship, birth_date FROM family_members WHERE case_id = ? ORDER BY name`, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing family members: %w", err)
	}
	defer rows.Close()

	var members []*domain.FamilyMember
	for rows.Next() {
		var m domain.FamilyMember
		var birthStr sql.NullString
		if err := rows.Scan(&m.ID, &m.CaseID, &m.Name, &m.Relationship, &birthStr); err != nil {
			return nil, fmt.Errorf("scanning family member: %w", err)
		}
		m.BirthDate = parseNullableTime(birthStr, birthDateLayout)
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating family members: %w", err)
	}
	return members, nil
}

func (r *SQLiteFamilyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM family_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting family member: %w", err)
	}
	return nil
}
