package auditlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PostgresArchive keeps durable copies of log entries.
//
// Expected table (insert-only; consider a trigger preventing UPDATE/DELETE
// and time partitioning for retention):
//
//	CREATE TABLE audit_entries (
//	    id          BIGINT      NOT NULL,
//	    entity_type TEXT        NOT NULL,
//	    entity_id   BIGINT      NOT NULL,
//	    operation   TEXT        NOT NULL,
//	    changes     JSONB,
//	    old_data    JSONB,
//	    user_id     TEXT        NOT NULL,
//	    recorded_at TIMESTAMPTZ NOT NULL
//	);
//
// Entry ids restart with the process, so (recorded_at, id) rather than id
// alone identifies a row across restarts.
type PostgresArchive struct {
	db *sql.DB
}

func NewPostgresArchive(db *sql.DB) *PostgresArchive { return &PostgresArchive{db: db} }

func (a *PostgresArchive) Archive(ctx context.Context, e Entry) error {
	changes, err := marshalPayload(e.Changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}
	oldData, err := marshalPayload(e.OldData)
	if err != nil {
		return fmt.Errorf("marshal old data: %w", err)
	}

	const q = `
INSERT INTO audit_entries (id, entity_type, entity_id, operation, changes, old_data, user_id, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err = a.db.ExecContext(ctx, q,
		e.ID,
		e.EntityType,
		e.EntityID,
		string(e.Operation),
		changes,
		oldData,
		e.UserID,
		e.Timestamp,
	)
	return err
}

func marshalPayload(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
