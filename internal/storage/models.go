package storage

import "time"

// DocumentRecord represents a stored text document.
type DocumentRecord struct {
	ID          string // UUID
	Title       string
	Content     string // Normalized text (line endings are "\n")
	ContentHash string // BLAKE3 hex digest of Content
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LabelRecord represents an annotation label.
type LabelRecord struct {
	ID    int64
	Name  string
	Color string // "#rrggbb"
}

// AnnotationRecord represents a labeled character range of a document.
// Text is a snapshot taken at creation time.
type AnnotationRecord struct {
	ID         int64
	DocumentID string // Foreign key to documents.id
	LabelID    int64  // Foreign key to labels.id
	Start      int    // Rune offset, inclusive
	End        int    // Rune offset, exclusive
	Text       string
	CreatedAt  time.Time

	// Populated on reads from the joined label row.
	LabelName  string
	LabelColor string
}
