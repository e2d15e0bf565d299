package store

import (
	"context"
	"fmt"
	"time"
)

// CampaignDirectory is the read-side contract a dependent entity needs from
// the campaign collection: an existence check for its foreign key.
type CampaignDirectory interface {
	Exists(ctx context.Context, id int64) error
}

// AuditRecorder receives one entry per successful mutation. Implementations
// must be best-effort: a recording failure never reaches the caller.
type AuditRecorder interface {
	RecordCreate(ctx context.Context, entityType string, entityID int64, changes any)
	RecordUpdate(ctx context.Context, entityType string, entityID int64, changes, oldData any)
	RecordDelete(ctx context.Context, entityType string, entityID int64, oldData any)
}

// Field selects an optional searchable field from a record.
type Field[T any] func(T) *string

// DependentConfig wires one dependent entity type into the shared service.
type DependentConfig[T, C, P any] struct {
	// Entity is the audit-log discriminator, e.g. "CreativeContent".
	Entity    string
	Campaigns CampaignDirectory
	Audit     AuditRecorder

	ID               func(T) int64
	RecordCampaignID func(T) int64
	CampaignID       func(C) int64

	// New builds a record from a create input; Apply merges a partial patch
	// onto an existing record. Both receive the operation timestamp. The
	// patch-first order lets entity packages pass their apply method
	// expression directly.
	New   func(id int64, now time.Time, in C) T
	Apply func(patch P, cur T, now time.Time) T

	// Validate runs before the parent check on create. Optional.
	Validate func(C) error
}

// Dependent implements the contract every dependent entity shares: CRUD over
// an in-memory collection, a campaign existence gate on create and
// list-by-campaign, one audit entry per mutation, and case-insensitive
// substring search over optional fields.
type Dependent[T, C, P any] struct {
	cfg DependentConfig[T, C, P]
	col *Collection[T]
}

func NewDependent[T, C, P any](cfg DependentConfig[T, C, P]) *Dependent[T, C, P] {
	return &Dependent[T, C, P]{
		cfg: cfg,
		col: NewCollection(cfg.ID),
	}
}

func (d *Dependent[T, C, P]) Entity() string { return d.cfg.Entity }

// SetClock replaces the collection clock. Tests only.
func (d *Dependent[T, C, P]) SetClock(clock func() time.Time) { d.col.SetClock(clock) }

// Create validates the input, checks that the referenced campaign exists and
// only then inserts and records the mutation. A missing campaign propagates
// as ErrNotFound with nothing inserted or logged.
func (d *Dependent[T, C, P]) Create(ctx context.Context, in C) (T, error) {
	var zero T

	if d.cfg.Validate != nil {
		if err := d.cfg.Validate(in); err != nil {
			return zero, err
		}
	}
	campaignID := d.cfg.CampaignID(in)
	if campaignID <= 0 {
		return zero, fmt.Errorf("campaignId is required: %w", ErrInvalidInput)
	}
	if err := d.cfg.Campaigns.Exists(ctx, campaignID); err != nil {
		return zero, err
	}

	rec := d.col.Insert(func(id int64, now time.Time) T {
		return d.cfg.New(id, now, in)
	})
	d.cfg.Audit.RecordCreate(ctx, d.cfg.Entity, d.cfg.ID(rec), in)
	return rec, nil
}

// List returns every record in insertion order.
func (d *Dependent[T, C, P]) List(ctx context.Context) []T {
	_ = ctx
	return d.col.List()
}

// ListByCampaign verifies the campaign exists, then filters by exact
// campaignId match.
func (d *Dependent[T, C, P]) ListByCampaign(ctx context.Context, campaignID int64) ([]T, error) {
	if err := d.cfg.Campaigns.Exists(ctx, campaignID); err != nil {
		return nil, err
	}
	return d.col.Filter(func(rec T) bool {
		return d.cfg.RecordCampaignID(rec) == campaignID
	}), nil
}

func (d *Dependent[T, C, P]) Get(ctx context.Context, id int64) (T, error) {
	_ = ctx
	rec, ok := d.col.Get(id)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", d.cfg.Entity, id, ErrNotFound)
	}
	return rec, nil
}

// Update applies a partial patch; fields absent from the patch are left
// untouched. Records the mutation with the pre-merge snapshot.
func (d *Dependent[T, C, P]) Update(ctx context.Context, id int64, patch P) (T, error) {
	old, updated, ok := d.col.Update(id, func(cur T, now time.Time) T {
		return d.cfg.Apply(patch, cur, now)
	})
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", d.cfg.Entity, id, ErrNotFound)
	}
	d.cfg.Audit.RecordUpdate(ctx, d.cfg.Entity, id, patch, old)
	return updated, nil
}

// Remove deletes the record. Its audit trail survives.
func (d *Dependent[T, C, P]) Remove(ctx context.Context, id int64) error {
	old, ok := d.col.Remove(id)
	if !ok {
		return fmt.Errorf("%s %d: %w", d.cfg.Entity, id, ErrNotFound)
	}
	d.cfg.Audit.RecordDelete(ctx, d.cfg.Entity, id, old)
	return nil
}

// Search matches q as a case-insensitive substring of the selected field.
// Records where the field is unset or empty never match.
func (d *Dependent[T, C, P]) Search(ctx context.Context, q string, field Field[T]) []T {
	_ = ctx
	return d.col.Filter(func(rec T) bool {
		return OptContainsFold(field(rec), q)
	})
}
