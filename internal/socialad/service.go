package socialad

import (
	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/httpapi"
	"campaign-docs/internal/store"
)

// Service is the social-ad store.
type Service struct {
	*store.Dependent[SocialAd, CreateInput, UpdateInput]
}

func NewService(campaigns store.CampaignDirectory, audit store.AuditRecorder) *Service {
	return &Service{store.NewDependent(store.DependentConfig[SocialAd, CreateInput, UpdateInput]{
		Entity:           EntityType,
		Campaigns:        campaigns,
		Audit:            audit,
		ID:               func(r SocialAd) int64 { return r.ID },
		RecordCampaignID: func(r SocialAd) int64 { return r.CampaignID },
		CampaignID:       func(in CreateInput) int64 { return in.CampaignID },
		New:              newRecord,
		Apply:            UpdateInput.apply,
	})}
}

func SearchFields() map[string]store.Field[SocialAd] {
	return map[string]store.Field[SocialAd]{
		"owner":         func(r SocialAd) *string { return r.Owner },
		"status":        func(r SocialAd) *string { return r.Status },
		"vehicle":       func(r SocialAd) *string { return r.Vehicle },
		"product":       func(r SocialAd) *string { return r.Product },
		"agency":        func(r SocialAd) *string { return r.Agency },
		"format":        func(r SocialAd) *string { return r.Format },
		"strategy":      func(r SocialAd) *string { return r.Strategy },
		"audience-type": func(r SocialAd) *string { return r.AudienceType },
		"objective":     func(r SocialAd) *string { return r.Objective },
	}
}

func NewHandler(s *Service, logs *auditlog.Service) httpapi.EntityHandler[SocialAd, CreateInput, UpdateInput] {
	return httpapi.EntityHandler[SocialAd, CreateInput, UpdateInput]{
		Service:  s.Dependent,
		Logs:     logs,
		Searches: SearchFields(),
	}
}
