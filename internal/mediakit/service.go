package mediakit

import (
	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/httpapi"
	"campaign-docs/internal/store"
)

// Service is the media-kit store.
type Service struct {
	*store.Dependent[MediaKit, CreateInput, UpdateInput]
}

func NewService(campaigns store.CampaignDirectory, audit store.AuditRecorder) *Service {
	return &Service{store.NewDependent(store.DependentConfig[MediaKit, CreateInput, UpdateInput]{
		Entity:           EntityType,
		Campaigns:        campaigns,
		Audit:            audit,
		ID:               func(r MediaKit) int64 { return r.ID },
		RecordCampaignID: func(r MediaKit) int64 { return r.CampaignID },
		CampaignID:       func(in CreateInput) int64 { return in.CampaignID },
		New:              newRecord,
		Apply:            UpdateInput.apply,
	})}
}

func SearchFields() map[string]store.Field[MediaKit] {
	return map[string]store.Field[MediaKit]{
		"vehicle":    func(r MediaKit) *string { return r.Vehicle },
		"media-type": func(r MediaKit) *string { return r.MediaType },
	}
}

func NewHandler(s *Service, logs *auditlog.Service) httpapi.EntityHandler[MediaKit, CreateInput, UpdateInput] {
	return httpapi.EntityHandler[MediaKit, CreateInput, UpdateInput]{
		Service:  s.Dependent,
		Logs:     logs,
		Searches: SearchFields(),
	}
}
