package socialad

import (
	"context"
	"testing"

	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/campaign"
	"campaign-docs/internal/store"
)

func newFixture(t *testing.T) (*Service, *auditlog.Service) {
	t.Helper()
	logs := auditlog.NewService(auditlog.NewMemoryRepo())
	campaigns := campaign.NewService(logs)

	disb := 100.0
	start, err := store.ParseDate("2024-12-01")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if _, err := campaigns.Create(context.Background(), campaign.CreateInput{
		Name:              "Host",
		Type:              "Product",
		ActionNumber:      "ACT-1",
		ProjectNumber:     "PRJ-1",
		TotalDisbursement: &disb,
		PlannedStartDate:  store.NewDate(start),
	}); err != nil {
		t.Fatalf("create campaign: %v", err)
	}
	return NewService(campaigns, logs), logs
}

func strp(s string) *string { return &s }

func TestCreatePatchRoundTrip(t *testing.T) {
	svc, logs := newFixture(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, CreateInput{CampaignID: 1, Owner: strp("media-team"), Status: strp("planned")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ID != 1 || rec.Owner == nil || *rec.Owner != "media-team" {
		t.Fatalf("created = %+v", rec)
	}

	updated, err := svc.Update(ctx, rec.ID, UpdateInput{Status: strp("live")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status == nil || *updated.Status != "live" {
		t.Fatalf("status = %v", updated.Status)
	}
	if updated.Owner == nil || *updated.Owner != "media-team" {
		t.Fatal("untouched fields must survive a patch")
	}

	entries, _ := logs.ByEntity(ctx, EntityType, rec.ID)
	if len(entries) != 2 {
		t.Fatalf("audit entries = %d, want 2", len(entries))
	}
}

func TestSearchFieldsCatalog(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{CampaignID: 1, AudienceType: strp("Lookalike")}); err != nil {
		t.Fatalf("create: %v", err)
	}

	want := []string{"owner", "status", "vehicle", "product", "agency", "format", "strategy", "audience-type", "objective"}
	fields := SearchFields()
	if len(fields) != len(want) {
		t.Fatalf("catalog size = %d, want %d", len(fields), len(want))
	}
	for _, name := range want {
		if fields[name] == nil {
			t.Fatalf("field %q missing from catalog", name)
		}
	}

	if got := svc.Search(ctx, "lookalike", fields["audience-type"]); len(got) != 1 {
		t.Fatalf("audience-type search len = %d, want 1", len(got))
	}
}
