package creative

import (
	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/httpapi"
	"campaign-docs/internal/store"
)

// Service is the creative-content store: the shared dependent-entity
// behavior specialized with this package's record shape.
type Service struct {
	*store.Dependent[CreativeContent, CreateInput, UpdateInput]
}

func NewService(campaigns store.CampaignDirectory, audit store.AuditRecorder) *Service {
	return &Service{store.NewDependent(store.DependentConfig[CreativeContent, CreateInput, UpdateInput]{
		Entity:           EntityType,
		Campaigns:        campaigns,
		Audit:            audit,
		ID:               func(r CreativeContent) int64 { return r.ID },
		RecordCampaignID: func(r CreativeContent) int64 { return r.CampaignID },
		CampaignID:       func(in CreateInput) int64 { return in.CampaignID },
		New:              newRecord,
		Apply:            UpdateInput.apply,
	})}
}

// SearchFields maps search route suffixes to the fields exposed for
// substring matching.
func SearchFields() map[string]store.Field[CreativeContent] {
	return map[string]store.Field[CreativeContent]{
		"product":  func(r CreativeContent) *string { return r.Product },
		"vehicle":  func(r CreativeContent) *string { return r.Vehicle },
		"strategy": func(r CreativeContent) *string { return r.Strategy },
		"piece-id": func(r CreativeContent) *string { return r.PieceID },
		"format":   func(r CreativeContent) *string { return r.Format },
	}
}

func NewHandler(s *Service, logs *auditlog.Service) httpapi.EntityHandler[CreativeContent, CreateInput, UpdateInput] {
	return httpapi.EntityHandler[CreativeContent, CreateInput, UpdateInput]{
		Service:  s.Dependent,
		Logs:     logs,
		Searches: SearchFields(),
	}
}
