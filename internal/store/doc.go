// Package store defines the persistence contracts the service layer depends
// on, one interface per domain, along with the errors every implementation
// reports. Implementations live under internal/platform.
//
// Lookups report a missing row with an ErrNotFound-wrapping error rather than
// a nil record. Unique keys (mobile numbers and record numbers) are enforced
// by every implementation and reported as ErrDuplicate-wrapping errors, which
// lets the service layer detect a lost create race or a colliding generated
// number without holding locks of its own.
package store
