package matrix

import (
	"time"

	"campaign-docs/internal/store"
)

// EntityType is the audit-log discriminator for content-matrix records.
const EntityType = "ContentMatrix"

// ContentMatrix is one row of a campaign's content planning matrix: what
// gets produced, where it runs and in which phase.
type ContentMatrix struct {
	ID         int64 `json:"id"`
	CampaignID int64 `json:"campaignId"`

	Product        *string `json:"product,omitempty"`
	Subproduct     *string `json:"subproduct,omitempty"`
	Production     *string `json:"production,omitempty"`
	Posting        *string `json:"posting,omitempty"`
	Status         *string `json:"status,omitempty"`
	Period         *string `json:"period,omitempty"`
	Market         *string `json:"market,omitempty"`
	Vehicle        *string `json:"vehicle,omitempty"`
	MediaType      *string `json:"mediaType,omitempty"`
	FileType       *string `json:"fileType,omitempty"`
	Format         *string `json:"format,omitempty"`
	Dimensions     *string `json:"dimensions,omitempty"`
	Duration       *string `json:"duration,omitempty"`
	FileSize       *string `json:"fileSize,omitempty"`
	Specifications *string `json:"specifications,omitempty"`
	Subject        *string `json:"subject,omitempty"`
	PieceBriefing  *string `json:"pieceBriefing,omitempty"`
	Phase          *string `json:"phase,omitempty"`
	MediaObjective *string `json:"mediaObjective,omitempty"`

	EstimatedRunStart *store.Date `json:"estimatedRunStart,omitempty"`
	EstimatedRunEnd   *store.Date `json:"estimatedRunEnd,omitempty"`

	Title                *string `json:"title,omitempty"`
	TitleLength          *int    `json:"titleLength,omitempty"`
	Description          *string `json:"description,omitempty"`
	DescriptionLength    *int    `json:"descriptionLength,omitempty"`
	SupportingText       *string `json:"supportingText,omitempty"`
	SupportingTextLength *int    `json:"supportingTextLength,omitempty"`
	CTA                  *string `json:"cta,omitempty"`
	PiecePath            *string `json:"piecePath,omitempty"`
	TargetURL            *string `json:"targetUrl,omitempty"`
	RunProofLink         *string `json:"runProofLink,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	CampaignID int64 `json:"campaignId"`

	Product        *string `json:"product,omitempty"`
	Subproduct     *string `json:"subproduct,omitempty"`
	Production     *string `json:"production,omitempty"`
	Posting        *string `json:"posting,omitempty"`
	Status         *string `json:"status,omitempty"`
	Period         *string `json:"period,omitempty"`
	Market         *string `json:"market,omitempty"`
	Vehicle        *string `json:"vehicle,omitempty"`
	MediaType      *string `json:"mediaType,omitempty"`
	FileType       *string `json:"fileType,omitempty"`
	Format         *string `json:"format,omitempty"`
	Dimensions     *string `json:"dimensions,omitempty"`
	Duration       *string `json:"duration,omitempty"`
	FileSize       *string `json:"fileSize,omitempty"`
	Specifications *string `json:"specifications,omitempty"`
	Subject        *string `json:"subject,omitempty"`
	PieceBriefing  *string `json:"pieceBriefing,omitempty"`
	Phase          *string `json:"phase,omitempty"`
	MediaObjective *string `json:"mediaObjective,omitempty"`

	EstimatedRunStart *store.Date `json:"estimatedRunStart,omitempty"`
	EstimatedRunEnd   *store.Date `json:"estimatedRunEnd,omitempty"`

	Title                *string `json:"title,omitempty"`
	TitleLength          *int    `json:"titleLength,omitempty"`
	Description          *string `json:"description,omitempty"`
	DescriptionLength    *int    `json:"descriptionLength,omitempty"`
	SupportingText       *string `json:"supportingText,omitempty"`
	SupportingTextLength *int    `json:"supportingTextLength,omitempty"`
	CTA                  *string `json:"cta,omitempty"`
	PiecePath            *string `json:"piecePath,omitempty"`
	TargetURL            *string `json:"targetUrl,omitempty"`
	RunProofLink         *string `json:"runProofLink,omitempty"`
}

func newRecord(id int64, now time.Time, in CreateInput) ContentMatrix {
	return ContentMatrix{
		ID:                   id,
		CampaignID:           in.CampaignID,
		Product:              in.Product,
		Subproduct:           in.Subproduct,
		Production:           in.Production,
		Posting:              in.Posting,
		Status:               in.Status,
		Period:               in.Period,
		Market:               in.Market,
		Vehicle:              in.Vehicle,
		MediaType:            in.MediaType,
		FileType:             in.FileType,
		Format:               in.Format,
		Dimensions:           in.Dimensions,
		Duration:             in.Duration,
		FileSize:             in.FileSize,
		Specifications:       in.Specifications,
		Subject:              in.Subject,
		PieceBriefing:        in.PieceBriefing,
		Phase:                in.Phase,
		MediaObjective:       in.MediaObjective,
		EstimatedRunStart:    in.EstimatedRunStart,
		EstimatedRunEnd:      in.EstimatedRunEnd,
		Title:                in.Title,
		TitleLength:          in.TitleLength,
		Description:          in.Description,
		DescriptionLength:    in.DescriptionLength,
		SupportingText:       in.SupportingText,
		SupportingTextLength: in.SupportingTextLength,
		CTA:                  in.CTA,
		PiecePath:            in.PiecePath,
		TargetURL:            in.TargetURL,
		RunProofLink:         in.RunProofLink,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// UpdateInput is a partial patch; nil fields are left untouched.
type UpdateInput struct {
	CampaignID *int64 `json:"campaignId,omitempty"`

	Product        *string `json:"product,omitempty"`
	Subproduct     *string `json:"subproduct,omitempty"`
	Production     *string `json:"production,omitempty"`
	Posting        *string `json:"posting,omitempty"`
	Status         *string `json:"status,omitempty"`
	Period         *string `json:"period,omitempty"`
	Market         *string `json:"market,omitempty"`
	Vehicle        *string `json:"vehicle,omitempty"`
	MediaType      *string `json:"mediaType,omitempty"`
	FileType       *string `json:"fileType,omitempty"`
	Format         *string `json:"format,omitempty"`
	Dimensions     *string `json:"dimensions,omitempty"`
	Duration       *string `json:"duration,omitempty"`
	FileSize       *string `json:"fileSize,omitempty"`
	Specifications *string `json:"specifications,omitempty"`
	Subject        *string `json:"subject,omitempty"`
	PieceBriefing  *string `json:"pieceBriefing,omitempty"`
	Phase          *string `json:"phase,omitempty"`
	MediaObjective *string `json:"mediaObjective,omitempty"`

	EstimatedRunStart *store.Date `json:"estimatedRunStart,omitempty"`
	EstimatedRunEnd   *store.Date `json:"estimatedRunEnd,omitempty"`

	Title                *string `json:"title,omitempty"`
	TitleLength          *int    `json:"titleLength,omitempty"`
	Description          *string `json:"description,omitempty"`
	DescriptionLength    *int    `json:"descriptionLength,omitempty"`
	SupportingText       *string `json:"supportingText,omitempty"`
	SupportingTextLength *int    `json:"supportingTextLength,omitempty"`
	CTA                  *string `json:"cta,omitempty"`
	PiecePath            *string `json:"piecePath,omitempty"`
	TargetURL            *string `json:"targetUrl,omitempty"`
	RunProofLink         *string `json:"runProofLink,omitempty"`
}

func (p UpdateInput) apply(cur ContentMatrix, now time.Time) ContentMatrix {
	if p.CampaignID != nil {
		cur.CampaignID = *p.CampaignID
	}
	if p.Product != nil {
		cur.Product = p.Product
	}
	if p.Subproduct != nil {
		cur.Subproduct = p.Subproduct
	}
	if p.Production != nil {
		cur.Production = p.Production
	}
	if p.Posting != nil {
		cur.Posting = p.Posting
	}
	if p.Status != nil {
		cur.Status = p.Status
	}
	if p.Period != nil {
		cur.Period = p.Period
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
	if p.Subject != nil {
		cur.Subject = p.Subject
	}
	if p.PieceBriefing != nil {
		cur.PieceBriefing = p.PieceBriefing
	}
	if p.Phase != nil {
		cur.Phase = p.Phase
	}
	if p.MediaObjective != nil {
		cur.MediaObjective = p.MediaObjective
	}
	if p.EstimatedRunStart != nil {
		cur.EstimatedRunStart = p.EstimatedRunStart
	}
	if p.EstimatedRunEnd != nil {
		cur.EstimatedRunEnd = p.EstimatedRunEnd
	}
	if p.Title != nil {
		cur.Title = p.Title
	}
	if p.TitleLength != nil {
		cur.TitleLength = p.TitleLength
	}
	if p.Description != nil {
		cur.Description = p.Description
	}
	if p.DescriptionLength != nil {
		cur.DescriptionLength = p.DescriptionLength
	}
	if p.SupportingText != nil {
		cur.SupportingText = p.SupportingText
	}
	if p.SupportingTextLength != nil {
		cur.SupportingTextLength = p.SupportingTextLength
	}
	if p.CTA != nil {
		cur.CTA = p.CTA
	}
	if p.PiecePath != nil {
		cur.PiecePath = p.PiecePath
	}
	if p.TargetURL != nil {
		cur.TargetURL = p.TargetURL
	}
	if p.RunProofLink != nil {
		cur.RunProofLink = p.RunProofLink
	}
	cur.UpdatedAt = now
	return cur
}
