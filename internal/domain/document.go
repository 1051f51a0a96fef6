package domain

import (
	"strings"
	"time"
)

// DocumentKind discriminates the two retrievable content types.
type DocumentKind string

const (
	KindPolicy    DocumentKind = "policy"
	KindProcedure DocumentKind = "procedure"
)

// Domain tags used for document classification and query routing.
const (
	DomainFees      = "FEES"
	DomainExams     = "EXAMS"
	DomainHostel    = "HOSTEL"
	DomainAcademics = "ACADEMICS"
	DomainGeneral   = "GENERAL"
)

// Document is a policy or procedure owned by an administrative office.
// A policy carries free-text content; a procedure carries ordered steps.
// Kind tells them apart; retrieval treats both uniformly via FlattenedContent.
type Document struct {
	ID           string       `json:"id"`
	Code         string       `json:"code"`
	Title        string       `json:"title"`
	Domain       string       `json:"domain"`
	Kind         DocumentKind `json:"kind"`
	Content      string       `json:"content,omitempty"`
	Steps        []string     `json:"steps,omitempty"`
	OwningOffice string       `json:"owning_office"`
	Version      int          `json:"version"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// FlattenedContent returns the scoreable text body: the policy content as-is,
// or the procedure steps joined into one string.
func (d *Document) FlattenedContent() string {
	if d.Kind == KindProcedure {
		return strings.Join(d.Steps, " ")
	}
	return d.Content
}

// CreateDocumentRequest is the admin request to create a document.
type CreateDocumentRequest struct {
	Code         string       `json:"code" binding:"required"`
	Title        string       `json:"title" binding:"required"`
	Domain       string       `json:"domain" binding:"required"`
	Kind         DocumentKind `json:"kind" binding:"required"`
	Content      string       `json:"content,omitempty"`
	Steps        []string     `json:"steps,omitempty"`
	OwningOffice string       `json:"owning_office,omitempty"`
}

// UpdateDocumentRequest is the admin request to edit a document.
// Edits bump the document version.
type UpdateDocumentRequest struct {
	Title        string   `json:"title,omitempty"`
	Domain       string   `json:"domain,omitempty"`
	Content      string   `json:"content,omitempty"`
	Steps        []string `json:"steps,omitempty"`
	OwningOffice string   `json:"owning_office,omitempty"`
}
