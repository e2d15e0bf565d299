package campaign

import (
	"fmt"
	"strings"
	"time"

	"campaign-docs/internal/store"
)

// EntityType is the audit-log discriminator for campaigns.
const EntityType = "Campaign"

// Campaign is the root record every other entity references by id.
type Campaign struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Type              string     `json:"type"`
	ActionNumber      string     `json:"actionNumber"`
	ProjectNumber     string     `json:"projectNumber"`
	TotalDisbursement float64    `json:"totalDisbursement"`
	PlannedStartDate  store.Date `json:"plannedStartDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	Name              string     `json:"name"`
	Type              string     `json:"type"`
	ActionNumber      string     `json:"actionNumber"`
	ProjectNumber     string     `json:"projectNumber"`
	TotalDisbursement *float64   `json:"totalDisbursement"`
	PlannedStartDate  store.Date `json:"plannedStartDate"`
}

func (in CreateInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Type) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(in.ActionNumber) == "" {
		missing = append(missing, "actionNumber")
	}
	if strings.TrimSpace(in.ProjectNumber) == "" {
		missing = append(missing, "projectNumber")
	}
	if in.TotalDisbursement == nil {
		missing = append(missing, "totalDisbursement")
	} else if *in.TotalDisbursement < 0 {
		return fmt.Errorf("totalDisbursement must not be negative: %w", store.ErrInvalidInput)
	}
	if in.PlannedStartDate.IsZero() {
		missing = append(missing, "plannedStartDate")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid fields: %s: %w", strings.Join(missing, ", "), store.ErrInvalidInput)
	}
	return nil
}

// UpdateInput is a partial patch; nil fields are left untouched.
type UpdateInput struct {
	Name              *string     `json:"name,omitempty"`
	Type              *string     `json:"type,omitempty"`
	ActionNumber      *string     `json:"actionNumber,omitempty"`
	ProjectNumber     *string     `json:"projectNumber,omitempty"`
	TotalDisbursement *float64    `json:"totalDisbursement,omitempty"`
	PlannedStartDate  *store.Date `json:"plannedStartDate,omitempty"`
}

func (p UpdateInput) apply(cur Campaign, now time.Time) Campaign {
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Type != nil {
		cur.Type = *p.Type
	}
	if p.ActionNumber != nil {
		cur.ActionNumber = *p.ActionNumber
	}
	if p.ProjectNumber != nil {
		cur.ProjectNumber = *p.ProjectNumber
	}
	if p.TotalDisbursement != nil {
		cur.TotalDisbursement = *p.TotalDisbursement
	}
	if p.PlannedStartDate != nil {
		cur.PlannedStartDate = *p.PlannedStartDate
	}
	cur.UpdatedAt = now
	return cur
}
