package auditlog

import (
	"context"
	"time"

	"campaign-docs/internal/auth"
	"campaign-docs/pkg/logger"
)

// Repository is the persistence contract for the operation log.
// Append assigns the entry id; there are no update or delete methods.
type Repository interface {
	Append(ctx context.Context, e Entry) (Entry, error)
	All(ctx context.Context) ([]Entry, error)
	ByEntity(ctx context.Context, entityType string, entityID int64) ([]Entry, error)
	ByUser(ctx context.Context, userID string) ([]Entry, error)
	ByTimeRange(ctx context.Context, start, end time.Time) ([]Entry, error)
}

// Archiver is an optional secondary sink for durable copies of entries.
// Archive failures are reported via logging only; queries never read from it.
type Archiver interface {
	Archive(ctx context.Context, e Entry) error
}

// Service records and retrieves the mutation history of every entity store.
//
// Recording is best-effort by contract: the primary mutation has already
// committed by the time an entry is written, so a failure here is logged and
// swallowed rather than surfaced to the caller.
type Service struct {
	repo    Repository
	archive Archiver
	clock   func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

// SetArchive attaches a durable secondary sink.
func (s *Service) SetArchive(a Archiver) { s.archive = a }

// SetClock replaces the service clock. Tests only.
func (s *Service) SetClock(clock func() time.Time) { s.clock = clock }

func (s *Service) RecordCreate(ctx context.Context, entityType string, entityID int64, changes any) {
	s.record(ctx, Entry{EntityType: entityType, EntityID: entityID, Operation: OpCreate, Changes: changes})
}

func (s *Service) RecordUpdate(ctx context.Context, entityType string, entityID int64, changes, oldData any) {
	s.record(ctx, Entry{EntityType: entityType, EntityID: entityID, Operation: OpUpdate, Changes: changes, OldData: oldData})
}

func (s *Service) RecordDelete(ctx context.Context, entityType string, entityID int64, oldData any) {
	s.record(ctx, Entry{EntityType: entityType, EntityID: entityID, Operation: OpDelete, OldData: oldData})
}

func (s *Service) record(ctx context.Context, e Entry) {
	e.UserID = auth.Actor(ctx)
	e.Timestamp = s.clock().UTC()

	log := logger.From(ctx)
	stored, err := s.repo.Append(ctx, e)
	if err != nil {
		log.Error("audit append failed",
			"entity_type", e.EntityType, "entity_id", e.EntityID, "operation", e.Operation, "err", err)
		return
	}
	if s.archive != nil {
		if err := s.archive.Archive(ctx, stored); err != nil {
			log.Warn("audit archive failed", "entry_id", stored.ID, "err", err)
		}
	}
}

func (s *Service) All(ctx context.Context) ([]Entry, error) {
	return s.repo.All(ctx)
}

func (s *Service) ByEntity(ctx context.Context, entityType string, entityID int64) ([]Entry, error) {
	return s.repo.ByEntity(ctx, entityType, entityID)
}

func (s *Service) ByUser(ctx context.Context, userID string) ([]Entry, error) {
	return s.repo.ByUser(ctx, userID)
}

// ByTimeRange returns entries with start <= timestamp <= end, newest first.
func (s *Service) ByTimeRange(ctx context.Context, start, end time.Time) ([]Entry, error) {
	return s.repo.ByTimeRange(ctx, start, end)
}
