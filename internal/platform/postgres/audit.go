package postgres

import (
	"database/sql"
	"time"

	"github.com/phrazzld/eazybank-api/internal/domain"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// nullableAudit receives the audit columns. updated_at and updated_by stay
// NULL until the first update.
type nullableAudit struct {
	createdAt time.Time
	createdBy string
	updatedAt sql.NullTime
	updatedBy sql.NullString
}

func (a *nullableAudit) dest() []any {
	return []any{&a.createdAt, &a.createdBy, &a.updatedAt, &a.updatedBy}
}

func (a *nullableAudit) into(audit *domain.Audit) {
	audit.CreatedAt = a.createdAt.UTC()
	audit.CreatedBy = a.createdBy
	audit.UpdatedAt = time.Time{}
	if a.updatedAt.Valid {
		audit.UpdatedAt = a.updatedAt.Time.UTC()
	}
	audit.UpdatedBy = a.updatedBy.String
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
