package auditlog

import "time"

// Entry is an immutable, append-only record of one mutation.
//
// Invariants:
// - Entries are never updated or deleted; the log only grows.
// - Exactly one entry exists per successful create/update/delete.
// - Changes carries the request payload (CREATE/UPDATE); OldData carries the
//   full pre-mutation snapshot (UPDATE/DELETE).
type Entry struct {
	ID         int64     `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   int64     `json:"entityId"`
	Operation  Operation `json:"operation"`
	Changes    any       `json:"changes,omitempty"`
	OldData    any       `json:"oldData,omitempty"`
	UserID     string    `json:"userId"`
	Timestamp  time.Time `json:"timestamp"`
}

type Operation string

const (
	OpCreate Operation = "CREATE"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)
