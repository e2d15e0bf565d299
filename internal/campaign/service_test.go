package campaign

import (
	"context"
	"errors"
	"testing"
	"time"

	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/store"
)

func newTestService(t *testing.T) (*Service, *auditlog.Service) {
	t.Helper()
	logs := auditlog.NewService(auditlog.NewMemoryRepo())
	return NewService(logs), logs
}

func validInput() CreateInput {
	disb := 1500.50
	return CreateInput{
		Name:              "Summer Launch",
		Type:              "Institutional",
		ActionNumber:      "ACT-2024-001",
		ProjectNumber:     "PRJ-778",
		TotalDisbursement: &disb,
		PlannedStartDate:  store.NewDate(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func TestCreateValidCampaign(t *testing.T) {
	svc, logs := newTestService(t)
	ctx := context.Background()

	got, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("id = %d, want 1", got.ID)
	}
	if got.CreatedAt.IsZero() || !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Fatalf("timestamps: created=%v updated=%v", got.CreatedAt, got.UpdatedAt)
	}

	entries, err := logs.ByEntity(ctx, EntityType, got.ID)
	if err != nil {
		t.Fatalf("byEntity: %v", err)
	}
	if len(entries) != 1 || entries[0].Operation != auditlog.OpCreate {
		t.Fatalf("audit entries = %+v", entries)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc, logs := newTestService(t)
	ctx := context.Background()

	cases := map[string]func(*CreateInput){
		"name":              func(in *CreateInput) { in.Name = "  " },
		"type":              func(in *CreateInput) { in.Type = "" },
		"actionNumber":      func(in *CreateInput) { in.ActionNumber = "" },
		"projectNumber":     func(in *CreateInput) { in.ProjectNumber = "" },
		"totalDisbursement": func(in *CreateInput) { in.TotalDisbursement = nil },
		"plannedStartDate":  func(in *CreateInput) { in.PlannedStartDate = store.Date{} },
	}
	for name, mutate := range cases {
		in := validInput()
		mutate(&in)
		if _, err := svc.Create(ctx, in); !errors.Is(err, store.ErrInvalidInput) {
			t.Fatalf("%s: err = %v, want ErrInvalidInput", name, err)
		}
	}

	if len(svc.List(ctx)) != 0 {
		t.Fatal("invalid creates must not insert")
	}
	entries, _ := logs.All(ctx)
	if len(entries) != 0 {
		t.Fatal("invalid creates must not be logged")
	}
}

func TestCreateRejectsNegativeDisbursement(t *testing.T) {
	svc, _ := newTestService(t)

	in := validInput()
	neg := -10.0
	in.TotalDisbursement = &neg
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, store.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreateAllowsZeroDisbursement(t *testing.T) {
	svc, _ := newTestService(t)

	in := validInput()
	zero := 0.0
	in.TotalDisbursement = &zero
	got, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.TotalDisbursement != 0 {
		t.Fatalf("totalDisbursement = %v, want 0", got.TotalDisbursement)
	}
}

func TestUpdatePartialPatch(t *testing.T) {
	svc, logs := newTestService(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	step := 0
	svc.SetClock(func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	})

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newName := "Winter Launch"
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Name: &newName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Winter Launch" {
		t.Fatalf("name = %q", updated.Name)
	}
	if updated.Type != created.Type || updated.ActionNumber != created.ActionNumber {
		t.Fatal("untouched fields must be preserved")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updatedAt did not advance: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("createdAt must not change on update")
	}

	entries, _ := logs.ByEntity(ctx, EntityType, created.ID)
	if len(entries) != 2 || entries[0].Operation != auditlog.OpUpdate {
		t.Fatalf("audit entries = %+v", entries)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	name := "x"
	if _, err := svc.Update(context.Background(), 42, UpdateInput{Name: &name}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRemoveKeepsAuditTrail(t *testing.T) {
	svc, logs := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Remove(ctx, created.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("get err = %v, want ErrNotFound", err)
	}
	if err := svc.Exists(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("exists err = %v, want ErrNotFound", err)
	}

	entries, _ := logs.ByEntity(ctx, EntityType, created.ID)
	if len(entries) != 2 {
		t.Fatalf("audit entries after delete = %d, want 2", len(entries))
	}
	if entries[0].Operation != auditlog.OpDelete {
		t.Fatalf("newest op = %v, want DELETE", entries[0].Operation)
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	in1 := validInput()
	in2 := validInput()
	in2.ActionNumber = "act-2025-XYZ"
	in2.ProjectNumber = "OTHER-1"
	for _, in := range []CreateInput{in1, in2} {
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	if got := svc.SearchByActionNumber(ctx, "ACT-20"); len(got) != 2 {
		t.Fatalf("action search len = %d, want 2", len(got))
	}
	if got := svc.SearchByActionNumber(ctx, "xyz"); len(got) != 1 {
		t.Fatalf("action search len = %d, want 1", len(got))
	}
	if got := svc.SearchByProjectNumber(ctx, "prj"); len(got) != 1 {
		t.Fatalf("project search len = %d, want 1", len(got))
	}
	if got := svc.SearchByProjectNumber(ctx, "nope"); len(got) != 0 {
		t.Fatalf("project search len = %d, want 0", len(got))
	}
}
