package campaign

import (
	"context"
	"fmt"
	"time"

	"campaign-docs/internal/store"
)

// Service owns the campaign collection. It is the only store dependents
// consult before inserting records that reference a campaign.
type Service struct {
	col   *store.Collection[Campaign]
	audit store.AuditRecorder
}

func NewService(audit store.AuditRecorder) *Service {
	return &Service{
		col:   store.NewCollection(func(c Campaign) int64 { return c.ID }),
		audit: audit,
	}
}

// SetClock replaces the collection clock. Tests only.
func (s *Service) SetClock(clock func() time.Time) { s.col.SetClock(clock) }

func (s *Service) Create(ctx context.Context, in CreateInput) (Campaign, error) {
	if err := in.validate(); err != nil {
		return Campaign{}, err
	}

	rec := s.col.Insert(func(id int64, now time.Time) Campaign {
		return Campaign{
			ID:                id,
			Name:              in.Name,
			Type:              in.Type,
			ActionNumber:      in.ActionNumber,
			ProjectNumber:     in.ProjectNumber,
			TotalDisbursement: *in.TotalDisbursement,
			PlannedStartDate:  in.PlannedStartDate,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
	})
	s.audit.RecordCreate(ctx, EntityType, rec.ID, in)
	return rec, nil
}

// List returns all campaigns in insertion order.
func (s *Service) List(ctx context.Context) []Campaign {
	_ = ctx
	return s.col.List()
}

func (s *Service) Get(ctx context.Context, id int64) (Campaign, error) {
	_ = ctx
	rec, ok := s.col.Get(id)
	if !ok {
		return Campaign{}, fmt.Errorf("%s %d: %w", EntityType, id, store.ErrNotFound)
	}
	return rec, nil
}

// Exists reports whether a campaign id is live. Used by dependent stores as
// their foreign-key gate.
func (s *Service) Exists(ctx context.Context, id int64) error {
	_, err := s.Get(ctx, id)
	return err
}

// Update applies a partial patch and records the pre-merge snapshot.
func (s *Service) Update(ctx context.Context, id int64, patch UpdateInput) (Campaign, error) {
	old, updated, ok := s.col.Update(id, func(cur Campaign, now time.Time) Campaign {
		return patch.apply(cur, now)
	})
	if !ok {
		return Campaign{}, fmt.Errorf("%s %d: %w", EntityType, id, store.ErrNotFound)
	}
	s.audit.RecordUpdate(ctx, EntityType, id, patch, old)
	return updated, nil
}

// Remove deletes a campaign. It neither cascades to nor blocks on dependent
// records; rows referencing the deleted id are left orphaned.
func (s *Service) Remove(ctx context.Context, id int64) error {
	old, ok := s.col.Remove(id)
	if !ok {
		return fmt.Errorf("%s %d: %w", EntityType, id, store.ErrNotFound)
	}
	s.audit.RecordDelete(ctx, EntityType, id, old)
	return nil
}

// SearchByActionNumber matches q as a case-insensitive substring.
func (s *Service) SearchByActionNumber(ctx context.Context, q string) []Campaign {
	_ = ctx
	return s.col.Filter(func(c Campaign) bool {
		return store.ContainsFold(c.ActionNumber, q)
	})
}

// SearchByProjectNumber matches q as a case-insensitive substring.
func (s *Service) SearchByProjectNumber(ctx context.Context, q string) []Campaign {
	_ = ctx
	return s.col.Filter(func(c Campaign) bool {
		return store.ContainsFold(c.ProjectNumber, q)
	})
}
