package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_label_store.go -package=mocks textmark/internal/storage LabelStore

import (
	"context"
	"database/sql"
	"fmt"
)

// LabelStore defines the interface for label storage operations.
type LabelStore interface {
	// Create inserts a label and sets label.ID.
	Create(ctx context.Context, label *LabelRecord) error
	// GetByID gets a label by its ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id int64) (*LabelRecord, error)
	// List returns all labels ordered by name.
	List(ctx context.Context) ([]LabelRecord, error)
	// Update replaces name and color. Returns ErrNotFound if not found.
	Update(ctx context.Context, label *LabelRecord) error
	// Delete removes a label. Returns ErrConstraint while annotations use it.
	Delete(ctx context.Context, id int64) error
}

// LabelRepo provides methods for label operations.
type LabelRepo struct {
	db *sql.DB
}

// NewLabelRepo creates a new LabelRepo.
func NewLabelRepo(db *sql.DB) *LabelRepo {
	return &LabelRepo{db: db}
}

// Create inserts a label and sets label.ID.
func (r *LabelRepo) Create(ctx context.Context, label *LabelRecord) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO labels (name, color) VALUES (?, ?)",
		label.Name, label.Color,
	)
	if err != nil {
		return fmt.Errorf("failed to insert label: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read label id: %w", err)
	}
	label.ID = id
	return nil
}

// GetByID gets a label by its ID. Returns ErrNotFound if not found.
func (r *LabelRepo) GetByID(ctx context.Context, id int64) (*LabelRecord, error) {
	var label LabelRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, color FROM labels WHERE id = ?",
		id,
	).Scan(&label.ID, &label.Name, &label.Color)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query label: %w", err)
	}
	return &label, nil
}

// List returns all labels ordered by name.
func (r *LabelRepo) List(ctx context.Context) ([]LabelRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, color FROM labels ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query labels: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	labels := []LabelRecord{}
	for rows.Next() {
		var label LabelRecord
		if err := rows.Scan(&label.ID, &label.Name, &label.Color); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, label)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return labels, nil
}

// Update replaces name and color. Returns ErrNotFound if not found.
func (r *LabelRepo) Update(ctx context.Context, label *LabelRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE labels SET name = ?, color = ? WHERE id = ?",
		label.Name, label.Color, label.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update label: %w", err)
	}
	return expectAffected(result)
}

// Delete removes a label. Labels still referenced by annotations are
// protected by the foreign key and yield ErrConstraint.
func (r *LabelRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM labels WHERE id = ?", id)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("label %d is in use: %w", id, ErrConstraint)
		}
		return fmt.Errorf("failed to delete label: %w", err)
	}
	return expectAffected(result)
}
