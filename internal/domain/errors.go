package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrDuplicateCode indicates a document code collision
	ErrDuplicateCode = errors.New("document code already exists")
	// ErrMalformedDocument indicates stored document content that cannot be
	// decoded; surfaced rather than skipped so ranking is never computed over
	// a silently truncated corpus
	ErrMalformedDocument = errors.New("malformed document content")
)
