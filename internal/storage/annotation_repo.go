package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_annotation_store.go -package=mocks textmark/internal/storage AnnotationStore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AnnotationStore defines the interface for annotation storage operations.
type AnnotationStore interface {
	// Create inserts an annotation and sets its ID and CreatedAt.
	// Returns ErrConstraint if the document or label does not exist.
	Create(ctx context.Context, a *AnnotationRecord) error
	// GetByID gets an annotation with its label fields. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id int64) (*AnnotationRecord, error)
	// List returns annotations ordered by document and start offset.
	// An empty documentID lists annotations of all documents.
	List(ctx context.Context, documentID string) ([]AnnotationRecord, error)
	// UpdateLabel changes the label of an annotation.
	UpdateLabel(ctx context.Context, id, labelID int64) error
	// Delete removes an annotation. Returns ErrNotFound if not found.
	Delete(ctx context.Context, id int64) error
}

// AnnotationRepo provides methods for annotation operations.
type AnnotationRepo struct {
	db *sql.DB
}

// NewAnnotationRepo creates a new AnnotationRepo.
func NewAnnotationRepo(db *sql.DB) *AnnotationRepo {
	return &AnnotationRepo{db: db}
}

const annotationColumns = `a.id, a.document_id, a.label_id, a.start_offset, a.end_offset, a.text, a.created_at, l.name, l.color`

// Create inserts an annotation and sets its ID and CreatedAt.
func (r *AnnotationRepo) Create(ctx context.Context, a *AnnotationRecord) error {
	a.CreatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO annotations (document_id, label_id, start_offset, end_offset, text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.DocumentID, a.LabelID, a.Start, a.End, a.Text, a.CreatedAt,
	)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("failed to insert annotation: %w", ErrConstraint)
		}
		return fmt.Errorf("failed to insert annotation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read annotation id: %w", err)
	}
	a.ID = id
	return nil
}

// GetByID gets an annotation with its label fields. Returns ErrNotFound if not found.
func (r *AnnotationRepo) GetByID(ctx context.Context, id int64) (*AnnotationRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+annotationColumns+" FROM annotations a JOIN labels l ON l.id = a.label_id WHERE a.id = ?",
		id,
	)
	a, err := scanAnnotation(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query annotation: %w", err)
	}
	return a, nil
}

// List returns annotations ordered by document and start offset.
// Returns an empty slice if none match (not an error).
func (r *AnnotationRepo) List(ctx context.Context, documentID string) ([]AnnotationRecord, error) {
	query := "SELECT " + annotationColumns + " FROM annotations a JOIN labels l ON l.id = a.label_id"
	var args []any
	if documentID != "" {
		query += " WHERE a.document_id = ?"
		args = append(args, documentID)
	}
	query += " ORDER BY a.document_id, a.start_offset, a.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query annotations: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	annotations := []AnnotationRecord{}
	for rows.Next() {
		a, err := scanAnnotation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan annotation: %w", err)
		}
		annotations = append(annotations, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return annotations, nil
}

// UpdateLabel changes the label of an annotation. The range and text are
// never rewritten.
func (r *AnnotationRepo) UpdateLabel(ctx context.Context, id, labelID int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE annotations SET label_id = ? WHERE id = ?",
		labelID, id,
	)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("failed to update annotation label: %w", ErrConstraint)
		}
		return fmt.Errorf("failed to update annotation label: %w", err)
	}
	return expectAffected(result)
}

// Delete removes an annotation. Returns ErrNotFound if not found.
func (r *AnnotationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM annotations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete annotation: %w", err)
	}
	return expectAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnnotation(row rowScanner) (*AnnotationRecord, error) {
	var a AnnotationRecord
	if err := row.Scan(&a.ID, &a.DocumentID, &a.LabelID, &a.Start, &a.End, &a.Text, &a.CreatedAt, &a.LabelName, &a.LabelColor); err != nil {
		return nil, err
	}
	return &a, nil
}
