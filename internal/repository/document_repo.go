package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/claritycore/internal/domain"
)

// DocumentRepository handles policy and procedure persistence
type DocumentRepository struct {
	db *DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

const documentColumns = `id, code, title, domain, kind, content, steps, owning_office, version, created_at, updated_at`

// Create inserts a new document
func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.Version == 0 {
		doc.Version = 1
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	stepsJSON, err := json.Marshal(doc.Steps)
	if err != nil {
		return fmt.Errorf("encode steps: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Code, doc.Title, doc.Domain, string(doc.Kind), doc.Content,
		string(stepsJSON), doc.OwningOffice, doc.Version, doc.CreatedAt, doc.UpdatedAt)

	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateCode, doc.Code)
	}
	return err
}

// Get retrieves a document by ID, nil when absent
func (r *DocumentRepository) Get(ctx context.Context, id string) (*domain.Document, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+documentColumns+` FROM documents WHERE id = ?
	`, id)
	return scanDocument(row)
}

// GetByCode retrieves a document by its code, nil when absent
func (r *DocumentRepository) GetByCode(ctx context.Context, code string) (*domain.Document, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+documentColumns+` FROM documents WHERE code = ?
	`, code)
	return scanDocument(row)
}

// List retrieves the full corpus in stable creation order
func (r *DocumentRepository) List(ctx context.Context) ([]domain.Document, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+documentColumns+` FROM documents ORDER BY created_at ASC, code ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocumentRow(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}

	return docs, rows.Err()
}

// ListDocuments satisfies clarity.DocumentSource
func (r *DocumentRepository) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	return r.List(ctx)
}

// Update edits a document and bumps its version
func (r *DocumentRepository) Update(ctx context.Context, doc *domain.Document) error {
	doc.UpdatedAt = time.Now()
	doc.Version++

	stepsJSON, err := json.Marshal(doc.Steps)
	if err != nil {
		return fmt.Errorf("encode steps: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE documents
		SET title = ?, domain = ?, content = ?, steps = ?, owning_office = ?, version = ?, updated_at = ?
		WHERE id = ?
	`, doc.Title, doc.Domain, doc.Content, string(stepsJSON), doc.OwningOffice,
		doc.Version, doc.UpdatedAt, doc.ID)

	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("%w: document %s", domain.ErrNotFound, doc.ID)
	}

	return nil
}

// Delete removes a document
func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("%w: document %s", domain.ErrNotFound, id)
	}

	return nil
}

// Count returns the corpus size
func (r *DocumentRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row *sql.Row) (*domain.Document, error) {
	doc, err := scanDocumentRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return doc, err
}

func scanDocumentRow(s rowScanner) (*domain.Document, error) {
	doc := &domain.Document{}
	var kind string
	var content, stepsJSON, owningOffice sql.NullString

	if err := s.Scan(&doc.ID, &doc.Code, &doc.Title, &doc.Domain, &kind,
		&content, &stepsJSON, &owningOffice, &doc.Version,
		&doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}

	doc.Kind = domain.DocumentKind(kind)
	doc.Content = content.String
	doc.OwningOffice = owningOffice.String

	// A procedure's step list that no longer decodes is a data-integrity
	// failure, surfaced so retrieval never ranks over a truncated corpus.
	if stepsJSON.Valid && stepsJSON.String != "" && stepsJSON.String != "null" {
		if err := json.Unmarshal([]byte(stepsJSON.String), &doc.Steps); err != nil {
			return nil, fmt.Errorf("%w: document %s steps: %v", domain.ErrMalformedDocument, doc.Code, err)
		}
	}

	return doc, nil
}
