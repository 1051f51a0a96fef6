package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/claritycore/internal/domain"
)

// InteractionRepository handles the append-only interaction log. Entries are
// only ever inserted and read; there is no update or delete path.
type InteractionRepository struct {
	db *DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Create appends one interaction to the log
func (r *InteractionRepository) Create(ctx context.Context, in *domain.Interaction) error {
	if in.ID == "" {
		in.ID = uuid.New().String()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}

	var confidence sql.NullInt64
	if in.AIConfidence != nil {
		confidence = sql.NullInt64{Int64: int64(*in.AIConfidence), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO interactions (id, user_id, department_id, role, intent, policy_code, procedure_code, ai_confidence, follow_up, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, in.ID, in.UserID, in.DepartmentID, in.Role, in.Intent,
		nullString(in.PolicyCode), nullString(in.ProcedureCode), confidence, in.FollowUp, in.CreatedAt)

	return err
}

// List retrieves interactions, oldest first, optionally narrowed by filter
func (r *InteractionRepository) List(ctx context.Context, filter *domain.InteractionFilter) ([]domain.Interaction, error) {
	query := `
		SELECT id, user_id, department_id, role, intent, policy_code, procedure_code, ai_confidence, follow_up, created_at
		FROM interactions`
	var conds []string
	var args []any

	if filter != nil {
		if filter.DepartmentID != "" {
			conds = append(conds, "department_id = ?")
			args = append(args, filter.DepartmentID)
		}
		if !filter.From.IsZero() {
			conds = append(conds, "created_at >= ?")
			args = append(args, filter.From)
		}
		if !filter.To.IsZero() {
			conds = append(conds, "created_at < ?")
			args = append(args, filter.To)
		}
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Interaction
	for rows.Next() {
		var in domain.Interaction
		var departmentID, role, policyCode, procedureCode sql.NullString
		var confidence sql.NullInt64

		if err := rows.Scan(&in.ID, &in.UserID, &departmentID, &role, &in.Intent,
			&policyCode, &procedureCode, &confidence, &in.FollowUp, &in.CreatedAt); err != nil {
			return nil, err
		}

		in.DepartmentID = departmentID.String
		in.Role = role.String
		in.PolicyCode = policyCode.String
		in.ProcedureCode = procedureCode.String
		if confidence.Valid {
			c := int(confidence.Int64)
			in.AIConfidence = &c
		}
		out = append(out, in)
	}

	return out, rows.Err()
}

// Count returns the log size
func (r *InteractionRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interactions`).Scan(&n)
	return n, err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
