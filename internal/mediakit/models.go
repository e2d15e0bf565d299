package mediakit

import (
	"time"

	"campaign-docs/internal/store"
)

// EntityType is the audit-log discriminator for digital media-kit records.
const EntityType = "MediaKit"

// MediaKit tracks a digital media-kit deliverable for a campaign.
type MediaKit struct {
	ID         int64 `json:"id"`
	CampaignID int64 `json:"campaignId"`

	DeliveryDate   *store.Date `json:"deliveryDate,omitempty"`
	Market         *string     `json:"market,omitempty"`
	Vehicle        *string     `json:"vehicle,omitempty"`
	MediaType      *string     `json:"mediaType,omitempty"`
	FileType       *string     `json:"fileType,omitempty"`
	Format         *string     `json:"format,omitempty"`
	Dimensions     *string     `json:"dimensions,omitempty"`
	Duration       *string     `json:"duration,omitempty"`
	FileSize       *string     `json:"fileSize,omitempty"`
	Specifications *string     `json:"specifications,omitempty"`
	MediaKitURL    *string     `json:"mediaKitUrl,omitempty"`
	Notes          *string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	CampaignID int64 `json:"campaignId"`

	DeliveryDate   *store.Date `json:"deliveryDate,omitempty"`
	Market         *string     `json:"market,omitempty"`
	Vehicle        *string     `json:"vehicle,omitempty"`
	MediaType      *string     `json:"mediaType,omitempty"`
	FileType       *string     `json:"fileType,omitempty"`
	Format         *string     `json:"format,omitempty"`
	Dimensions     *string     `json:"dimensions,omitempty"`
	Duration       *string     `json:"duration,omitempty"`
	FileSize       *string     `json:"fileSize,omitempty"`
	Specifications *string     `json:"specifications,omitempty"`
	MediaKitURL    *string     `json:"mediaKitUrl,omitempty"`
	Notes          *string     `json:"notes,omitempty"`
}

func newRecord(id int64, now time.Time, in CreateInput) MediaKit {
	return MediaKit{
		ID:             id,
		CampaignID:     in.CampaignID,
		DeliveryDate:   in.DeliveryDate,
		Market:         in.Market,
		Vehicle:        in.Vehicle,
		MediaType:      in.MediaType,
		FileType:       in.FileType,
		Format:         in.Format,
		Dimensions:     in.Dimensions,
		Duration:       in.Duration,
		FileSize:       in.FileSize,
		Specifications: in.Specifications,
		MediaKitURL:    in.MediaKitURL,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UpdateInput is a partial patch; nil fields are left untouched.
type UpdateInput struct {
	CampaignID *int64 `json:"campaignId,omitempty"`

	DeliveryDate   *store.Date `json:"deliveryDate,omitempty"`
	Market         *string     `json:"market,omitempty"`
	Vehicle        *string     `json:"vehicle,omitempty"`
	MediaType      *string     `json:"mediaType,omitempty"`
	FileType       *string     `json:"fileType,omitempty"`
	Format         *string     `json:"format,omitempty"`
	Dimensions     *string     `json:"dimensions,omitempty"`
	Duration       *string     `json:"duration,omitempty"`
	FileSize       *string     `json:"fileSize,omitempty"`
	Specifications *string     `json:"specifications,omitempty"`
	MediaKitURL    *string     `json:"mediaKitUrl,omitempty"`
	Notes          *string     `json:"notes,omitempty"`
}

func (p UpdateInput) apply(cur MediaKit, now time.Time) MediaKit {
	if p.CampaignID != nil {
		cur.CampaignID = *p.CampaignID
	}
	if p.DeliveryDate != nil {
		cur.DeliveryDate = p.DeliveryDate
	}
	if p.Market != nil {
		cur.Market = p.Market
	}
	if p.Vehicle != nil {
		cur.Vehicle = p.Vehicle
	}
	if p.MediaType != nil {
		cur.MediaType = p.MediaType
	}
	if p.FileType != nil {
		cur.FileType = p.FileType
	}
	if p.Format != nil {
		cur.Format = p.Format
	}
	if p.Dimensions != nil {
		cur.Dimensions = p.Dimensions
	}
	if p.Duration != nil {
		cur.Duration = p.Duration
	}
	if p.FileSize != nil {
		cur.FileSize = p.FileSize
	}
	if p.Specifications != nil {
		cur.Specifications = p.Specifications
	}
	if p.MediaKitURL != nil {
		cur.MediaKitURL = p.MediaKitURL
	}
	if p.Notes != nil {
		cur.Notes = p.Notes
	}
	cur.UpdatedAt = now
	return cur
}
