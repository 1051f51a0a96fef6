package domain

import "time"

// Interaction is one logged student query. Exactly one of PolicyCode and
// ProcedureCode is set when retrieval found a match; both are empty otherwise.
// Entries are append-only: never mutated or deleted by the core.
type Interaction struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	DepartmentID  string `json:"department_id"`
	Role          string `json:"role"`
	Intent        string `json:"intent"`
	PolicyCode    string `json:"policy_code,omitempty"`
	ProcedureCode string `json:"procedure_code,omitempty"`
	// AIConfidence is 0-100, nil when no confidence was recorded.
	AIConfidence *int `json:"ai_confidence,omitempty"`
	// FollowUp is set by the caller before logging; the detection policy
	// (time window, same-domain check) lives outside this core.
	FollowUp  bool      `json:"follow_up"`
	CreatedAt time.Time `json:"created_at"`
}

// InteractionFilter narrows an interaction listing. Zero values mean "no
// constraint".
type InteractionFilter struct {
	DepartmentID string
	From         time.Time
	To           time.Time
}

// AskRequest is a student query. FollowUp is an opaque flag supplied by the
// calling client.
type AskRequest struct {
	UserID       string `json:"user_id"`
	DepartmentID string `json:"department_id"`
	Role         string `json:"role"`
	Query        string `json:"query" binding:"required"`
	FollowUp     bool   `json:"follow_up"`
}

// AskResponse is the answer to a student query. Document is nil when nothing
// in the corpus scored above the retrieval threshold.
type AskResponse struct {
	Intent     string    `json:"intent"`
	Confidence int       `json:"confidence"`
	Document   *Document `json:"document,omitempty"`
}

// Stats summarises the system for the admin dashboard.
type Stats struct {
	TotalDocuments    int `json:"total_documents"`
	TotalInteractions int `json:"total_interactions"`
	OverallPCI        int `json:"overall_pci"`
}
