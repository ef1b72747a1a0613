// Package testdb provides utilities for tests that need a real PostgreSQL
// database.
//
// Tests call Open to obtain a migrated, empty database. Open skips the test
// when EAZYBANK_TEST_DATABASE_URL is not set, so the default test run needs
// no external services.
//
// # Transaction Isolation
//
// WithTx runs a test body inside a transaction that is always rolled back.
// Every store accepts a store.DBTX, so a *sql.Tx can be passed wherever a
// *sql.DB is expected:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.Open(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        loans := postgres.NewPostgresLoanStore(tx, nil)
//	        // ...
//	    })
//	}
//
// A constraint violation aborts a PostgreSQL transaction, so tests that
// assert on unique violations should use the *sql.DB from Open directly.
package testdb
