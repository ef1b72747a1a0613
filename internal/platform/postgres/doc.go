// Package postgres provides PostgreSQL implementations of the store interfaces
// defined in internal/store. Queries go through database/sql on top of the pgx
// stdlib driver. Unique keys are enforced by table constraints, and violations
// are translated by MapError into the store duplicate errors.
//
// The schema lives in the embedded migrations directory and is applied with
// Migrate or RunMigration.
package postgres
