package taxonomy

import (
	"campaign-docs/internal/auditlog"
	"campaign-docs/internal/httpapi"
	"campaign-docs/internal/store"
)

// Service is the taxonomy parameter store.
type Service struct {
	*store.Dependent[TaxonomyParam, CreateInput, UpdateInput]
}

func NewService(campaigns store.CampaignDirectory, audit store.AuditRecorder) *Service {
	return &Service{store.NewDependent(store.DependentConfig[TaxonomyParam, CreateInput, UpdateInput]{
		Entity:           EntityType,
		Campaigns:        campaigns,
		Audit:            audit,
		ID:               func(r TaxonomyParam) int64 { return r.ID },
		RecordCampaignID: func(r TaxonomyParam) int64 { return r.CampaignID },
		CampaignID:       func(in CreateInput) int64 { return in.CampaignID },
		New:              newRecord,
		Apply:            UpdateInput.apply,
	})}
}

func SearchFields() map[string]store.Field[TaxonomyParam] {
	return map[string]store.Field[TaxonomyParam]{
		"advertiser":        func(r TaxonomyParam) *string { return r.Advertiser },
		"vehicle-platform":  func(r TaxonomyParam) *string { return r.VehiclePlatform },
		"agency":            func(r TaxonomyParam) *string { return r.Agency },
		"channel":           func(r TaxonomyParam) *string { return r.Channel },
		"device":            func(r TaxonomyParam) *string { return r.Device },
		"buy-type":          func(r TaxonomyParam) *string { return r.BuyType },
		"goal":              func(r TaxonomyParam) *string { return r.Goal },
		"inventory-type":    func(r TaxonomyParam) *string { return r.InventoryType },
		"creative-format":   func(r TaxonomyParam) *string { return r.CreativeFormat },
		"ad-server":         func(r TaxonomyParam) *string { return r.AdServer },
		"pac-action-number": func(r TaxonomyParam) *string { return r.PACActionNumber },
		"project-number":    func(r TaxonomyParam) *string { return r.ProjectNumber },
	}
}

func NewHandler(s *Service, logs *auditlog.Service) httpapi.EntityHandler[TaxonomyParam, CreateInput, UpdateInput] {
	return httpapi.EntityHandler[TaxonomyParam, CreateInput, UpdateInput]{
		Service:  s.Dependent,
		Logs:     logs,
		Searches: SearchFields(),
	}
}
