package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sofiaherrero/vinculo/internal/db"
	"github.com/sofiaherrero/vinculo/internal/domain"
)

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(conn db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: conn}
}

func (r *SQLiteNoteRepo) Create(ctx context.Context, n *domain.Note) error {
	query := `INSERT INTO notes (id, case_id, author_id, text, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, n.ID, n.CaseID, n.AuthorID, n.Text, n.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) ListByCase(ctx context.Context, caseID string) ([]*domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, case_id, author_id, text, created_at FROM notes WHERE case_id = ? ORDER BY created_at`, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return collectNotes(rows)
}

func (r *SQLiteNoteRepo) ListByAuthor(ctx context.Context, caseID, authorID string) ([]*domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, case_id, author_id, text, created_at FROM notes WHERE case_id = ? AND author_id = ? ORDER BY created_at`, caseID, authorID)
	if err != nil {
		return nil, fmt.Errorf("listing notes by author: %w", err)
	}
	return collectNotes(rows)
}

func (r *SQLiteNoteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}

func collectNotes(rows *sql.Rows) ([]*domain.Note, error) {
	defer rows.Close()
	var notes []*domain.Note
	for rows.Next() {
		var n domain.Note
		var createdAtStr string
		if err := rows.Scan(&n.ID, &n.CaseID, &n.AuthorID, &n.Text, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		t, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		n.CreatedAt = t
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}
