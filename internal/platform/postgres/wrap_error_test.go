package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/eazybank-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	connErr := errors.New("connection refused")

	tests := []struct {
		name      string
		err       error
		wantIs    error
		wantStore bool
	}{
		{name: "nil", err: nil},
		{name: "no rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{
			name:   "unique violation",
			err:    &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "loans_loan_number_key"},
			wantIs: store.ErrRecordNumberExists,
		},
		{
			name:   "check violation",
			err:    &pgconn.PgError{Code: checkViolationCode, ConstraintName: "loans_amounts_check"},
			wantIs: store.ErrInvalidEntity,
		},
		{name: "unmapped", err: connErr, wantIs: connErr, wantStore: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapError("loan", "create", tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)

			var storeErr *store.StoreError
			if !tt.wantStore {
				assert.False(t, errors.As(got, &storeErr))
				return
			}
			require.ErrorAs(t, got, &storeErr)
			assert.Equal(t, "loan", storeErr.Entity)
			assert.Equal(t, "create", storeErr.Operation)
			assert.Equal(t, "create operation on loan failed: database error: connection refused", got.Error())
		})
	}
}
