package domain

import "time"

// Actors recorded in the audit fields by each domain service.
const (
	ActorAccounts = "ACCOUNTS_MS"
	ActorLoans    = "LOANS_MS"
	ActorCards    = "CARDS_MS"
)

// Audit holds the bookkeeping columns shared by every persisted record.
// Stores stamp the timestamps; services stamp the actor.
type Audit struct {
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by"`
}

// StampCreated sets the creation timestamp and clears the update columns.
func (a *Audit) StampCreated(now time.Time) {
	a.CreatedAt = now.UTC()
	a.UpdatedAt = time.Time{}
	a.UpdatedBy = ""
}

// StampUpdated sets the update timestamp.
func (a *Audit) StampUpdated(now time.Time) {
	a.UpdatedAt = now.UTC()
}
