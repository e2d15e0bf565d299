package creative

import (
	"time"

	"campaign-docs/internal/store"
)

// EntityType is the audit-log discriminator for creative content records.
const EntityType = "CreativeContent"

// CreativeContent describes one ad piece produced for a campaign.
// Everything besides the campaign reference is optional.
type CreativeContent struct {
	ID         int64 `json:"id"`
	CampaignID int64 `json:"campaignId"`

	PieceID              *string     `json:"pieceId,omitempty"`
	MaterialDeliveryDate *store.Date `json:"materialDeliveryDate,omitempty"`
	PlannedEntryDate     *store.Date `json:"plannedEntryDate,omitempty"`
	Product              *string     `json:"product,omitempty"`
	Subproduct           *string     `json:"subproduct,omitempty"`
	Strategy             *string     `json:"strategy,omitempty"`
	Market               *string     `json:"market,omitempty"`
	Vehicle              *string     `json:"vehicle,omitempty"`
	MediaType            *string     `json:"mediaType,omitempty"`
	Format               *string     `json:"format,omitempty"`
	Dimensions           *string     `json:"dimensions,omitempty"`
	Duration             *string     `json:"duration,omitempty"`
	CreativeLine         *string     `json:"creativeLine,omitempty"`
	Title                *string     `json:"title,omitempty"`
	Description          *string     `json:"description,omitempty"`
	SupportingText       *string     `json:"supportingText,omitempty"`
	CTA                  *string     `json:"cta,omitempty"`
	Path                 *string     `json:"path,omitempty"`
	Piece                *string     `json:"piece,omitempty"`
	ProofLink            *string     `json:"proofLink,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	CampaignID int64 `json:"campaignId"`

	PieceID              *string     `json:"pieceId,omitempty"`
	MaterialDeliveryDate *store.Date `json:"materialDeliveryDate,omitempty"`
	PlannedEntryDate     *store.Date `json:"plannedEntryDate,omitempty"`
	Product              *string     `json:"product,omitempty"`
	Subproduct           *string     `json:"subproduct,omitempty"`
	Strategy             *string     `json:"strategy,omitempty"`
	Market               *string     `json:"market,omitempty"`
	Vehicle              *string     `json:"vehicle,omitempty"`
	MediaType            *string     `json:"mediaType,omitempty"`
	Format               *string     `json:"format,omitempty"`
	Dimensions           *string     `json:"dimensions,omitempty"`
	Duration             *string     `json:"duration,omitempty"`
	CreativeLine         *string     `json:"creativeLine,omitempty"`
	Title                *string     `json:"title,omitempty"`
	Description          *string     `json:"description,omitempty"`
	SupportingText       *string     `json:"supportingText,omitempty"`
	CTA                  *string     `json:"cta,omitempty"`
	Path                 *string     `json:"path,omitempty"`
	Piece                *string     `json:"piece,omitempty"`
	ProofLink            *string     `json:"proofLink,omitempty"`
}

func newRecord(id int64, now time.Time, in CreateInput) CreativeContent {
	return CreativeContent{
		ID:                   id,
		CampaignID:           in.CampaignID,
		PieceID:              in.PieceID,
		MaterialDeliveryDate: in.MaterialDeliveryDate,
		PlannedEntryDate:     in.PlannedEntryDate,
		Product:              in.Product,
		Subproduct:           in.Subproduct,
		Strategy:             in.Strategy,
		Market:               in.Market,
		Vehicle:              in.Vehicle,
		MediaType:            in.MediaType,
		Format:               in.Format,
		Dimensions:           in.Dimensions,
		Duration:             in.Duration,
		CreativeLine:         in.CreativeLine,
		Title:                in.Title,
		Description:          in.Description,
		SupportingText:       in.SupportingText,
		CTA:                  in.CTA,
		Path:                 in.Path,
		Piece:                in.Piece,
		ProofLink:            in.ProofLink,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// UpdateInput is a partial patch; nil fields are left untouched. The campaign
// reference may be repointed without a new existence check, matching create-time-only
// validation of the foreign key.
type UpdateInput struct {
	CampaignID *int64 `json:"campaignId,omitempty"`

	PieceID              *string     `json:"pieceId,omitempty"`
	MaterialDeliveryDate *store.Date `json:"materialDeliveryDate,omitempty"`
	PlannedEntryDate     *store.Date `json:"plannedEntryDate,omitempty"`
	Product              *string     `json:"product,omitempty"`
	Subproduct           *string     `json:"subproduct,omitempty"`
	Strategy             *string     `json:"strategy,omitempty"`
	Market               *string     `json:"market,omitempty"`
	Vehicle              *string     `json:"vehicle,omitempty"`
	MediaType            *string     `json:"mediaType,omitempty"`
	Format               *string     `json:"format,omitempty"`
	Dimensions           *string     `json:"dimensions,omitempty"`
	Duration             *string     `json:"duration,omitempty"`
	CreativeLine         *string     `json:"creativeLine,omitempty"`
	Title                *string     `json:"title,omitempty"`
	Description          *string     `json:"description,omitempty"`
	SupportingText       *string     `json:"supportingText,omitempty"`
	CTA                  *string     `json:"cta,omitempty"`
	Path                 *string     `json:"path,omitempty"`
	Piece                *string     `json:"piece,omitempty"`
	ProofLink            *string     `json:"proofLink,omitempty"`
}

func (p UpdateInput) apply(cur CreativeContent, now time.Time) CreativeContent {
	if p.CampaignID != nil {
		cur.CampaignID = *p.CampaignID
	}
	if p.PieceID != nil {
		cur.PieceID = p.PieceID
	}
	if p.MaterialDeliveryDate != nil {
		cur.MaterialDeliveryDate = p.MaterialDeliveryDate
	}
	if p.PlannedEntryDate != nil {
		cur.PlannedEntryDate = p.PlannedEntryDate
	}
	if p.Product != nil {
		cur.Product = p.Product
	}
	if p.Subproduct != nil {
		cur.Subproduct = p.Subproduct
	}
	if p.Strategy != nil {
		cur.Strategy = p.Strategy
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
	if p.Format != nil {
		cur.Format = p.Format
	}
	if p.Dimensions != nil {
		cur.Dimensions = p.Dimensions
	}
	if p.Duration != nil {
		cur.Duration = p.Duration
	}
	if p.CreativeLine != nil {
		cur.CreativeLine = p.CreativeLine
	}
	if p.Title != nil {
		cur.Title = p.Title
	}
	if p.Description != nil {
		cur.Description = p.Description
	}
	if p.SupportingText != nil {
		cur.SupportingText = p.SupportingText
	}
	if p.CTA != nil {
		cur.CTA = p.CTA
	}
	if p.Path != nil {
		cur.Path = p.Path
	}
	if p.Piece != nil {
		cur.Piece = p.Piece
	}
	if p.ProofLink != nil {
		cur.ProofLink = p.ProofLink
	}
	cur.UpdatedAt = now
	return cur
}
