package matrix

import (
	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/httpapi"
	"campaign-docs/internal/store"
)

// Service is the content-matrix store.
type Service struct {
	*store.Dependent[ContentMatrix, CreateInput, UpdateInput]
}

func NewService(campaigns store.CampaignDirectory, audit store.AuditRecorder) *Service {
	return &Service{store.NewDependent(store.DependentConfig[ContentMatrix, CreateInput, UpdateInput]{
		Entity:           EntityType,
		Campaigns:        campaigns,
		Audit:            audit,
		ID:               func(r ContentMatrix) int64 { return r.ID },
		RecordCampaignID: func(r ContentMatrix) int64 { return r.CampaignID },
		CampaignID:       func(in CreateInput) int64 { return in.CampaignID },
		New:              newRecord,
		Apply:            UpdateInput.apply,
	})}
}

func SearchFields() map[string]store.Field[ContentMatrix] {
	return map[string]store.Field[ContentMatrix]{
		"product":         func(r ContentMatrix) *string { return r.Product },
		"status":          func(r ContentMatrix) *string { return r.Status },
		"phase":           func(r ContentMatrix) *string { return r.Phase },
		"vehicle":         func(r ContentMatrix) *string { return r.Vehicle },
		"media-objective": func(r ContentMatrix) *string { return r.MediaObjective },
		"period":          func(r ContentMatrix) *string { return r.Period },
		"media-type":      func(r ContentMatrix) *string { return r.MediaType },
	}
}

func NewHandler(s *Service, logs *auditlog.Service) httpapi.EntityHandler[ContentMatrix, CreateInput, UpdateInput] {
	return httpapi.EntityHandler[ContentMatrix, CreateInput, UpdateInput]{
		Service:  s.Dependent,
		Logs:     logs,
		Searches: SearchFields(),
	}
}
