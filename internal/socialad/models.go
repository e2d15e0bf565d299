package socialad

import (
	"time"

	"campaign-docs/internal/store"
)

// EntityType is the audit-log discriminator for social-media ad records.
const EntityType = "SocialAd"

// SocialAd is one paid social placement belonging to a campaign.
type SocialAd struct {
	ID         int64 `json:"id"`
	CampaignID int64 `json:"campaignId"`

	Owner  *string     `json:"owner,omitempty"`
	Status *string     `json:"status,omitempty"`
	Start  *store.Date `json:"startDate,omitempty"`
	End    *store.Date `json:"endDate,omitempty"`

	Agency       *string `json:"agency,omitempty"`
	Project      *string `json:"project,omitempty"`
	PieceID      *string `json:"pieceId,omitempty"`
	Product      *string `json:"product,omitempty"`
	Subproduct   *string `json:"subproduct,omitempty"`
	Vehicle      *string `json:"vehicle,omitempty"`
	CampaignType *string `json:"campaignType,omitempty"`
	Format       *string `json:"format,omitempty"`
	Strategy     *string `json:"strategy,omitempty"`
	Market       *string `json:"market,omitempty"`
	Dimensions   *string `json:"dimensions,omitempty"`
	Duration     *string `json:"duration,omitempty"`
	CreativeLine *string `json:"creativeLine,omitempty"`
	Objective    *string `json:"objective,omitempty"`
	BuyType      *string `json:"buyType,omitempty"`
	ExtraInfo    *string `json:"extraInfo,omitempty"`
	AudienceType *string `json:"audienceType,omitempty"`
	Segmentation *string `json:"segmentation,omitempty"`
	MediaPlan    *string `json:"mediaPlan,omitempty"`
	Argument     *string `json:"argument,omitempty"`

	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	SupportingText *string `json:"supportingText,omitempty"`
	CTA            *string `json:"cta,omitempty"`
	CampaignName   *string `json:"campaignName,omitempty"`
	AdGroup        *string `json:"adGroup,omitempty"`
	Ad             *string `json:"ad,omitempty"`
	TargetURL      *string `json:"targetUrl,omitempty"`
	TaggedURL      *string `json:"taggedUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	CampaignID int64 `json:"campaignId"`

	Owner  *string     `json:"owner,omitempty"`
	Status *string     `json:"status,omitempty"`
	Start  *store.Date `json:"startDate,omitempty"`
	End    *store.Date `json:"endDate,omitempty"`

	Agency       *string `json:"agency,omitempty"`
	Project      *string `json:"project,omitempty"`
	PieceID      *string `json:"pieceId,omitempty"`
	Product      *string `json:"product,omitempty"`
	Subproduct   *string `json:"subproduct,omitempty"`
	Vehicle      *string `json:"vehicle,omitempty"`
	CampaignType *string `json:"campaignType,omitempty"`
	Format       *string `json:"format,omitempty"`
	Strategy     *string `json:"strategy,omitempty"`
	Market       *string `json:"market,omitempty"`
	Dimensions   *string `json:"dimensions,omitempty"`
	Duration     *string `json:"duration,omitempty"`
	CreativeLine *string `json:"creativeLine,omitempty"`
	Objective    *string `json:"objective,omitempty"`
	BuyType      *string `json:"buyType,omitempty"`
	ExtraInfo    *string `json:"extraInfo,omitempty"`
	AudienceType *string `json:"audienceType,omitempty"`
	Segmentation *string `json:"segmentation,omitempty"`
	MediaPlan    *string `json:"mediaPlan,omitempty"`
	Argument     *string `json:"argument,omitempty"`

	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	SupportingText *string `json:"supportingText,omitempty"`
	CTA            *string `json:"cta,omitempty"`
	CampaignName   *string `json:"campaignName,omitempty"`
	AdGroup        *string `json:"adGroup,omitempty"`
	Ad             *string `json:"ad,omitempty"`
	TargetURL      *string `json:"targetUrl,omitempty"`
	TaggedURL      *string `json:"taggedUrl,omitempty"`
}

func newRecord(id int64, now time.Time, in CreateInput) SocialAd {
	return SocialAd{
		ID:             id,
		CampaignID:     in.CampaignID,
		Owner:          in.Owner,
		Status:         in.Status,
		Start:          in.Start,
		End:            in.End,
		Agency:         in.Agency,
		Project:        in.Project,
		PieceID:        in.PieceID,
		Product:        in.Product,
		Subproduct:     in.Subproduct,
		Vehicle:        in.Vehicle,
		CampaignType:   in.CampaignType,
		Format:         in.Format,
		Strategy:       in.Strategy,
		Market:         in.Market,
		Dimensions:     in.Dimensions,
		Duration:       in.Duration,
		CreativeLine:   in.CreativeLine,
		Objective:      in.Objective,
		BuyType:        in.BuyType,
		ExtraInfo:      in.ExtraInfo,
		AudienceType:   in.AudienceType,
		Segmentation:   in.Segmentation,
		MediaPlan:      in.MediaPlan,
		Argument:       in.Argument,
		Title:          in.Title,
		Description:    in.Description,
		SupportingText: in.SupportingText,
		CTA:            in.CTA,
		CampaignName:   in.CampaignName,
		AdGroup:        in.AdGroup,
		Ad:             in.Ad,
		TargetURL:      in.TargetURL,
		TaggedURL:      in.TaggedURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// UpdateInput is a partial patch; nil fields are left untouched.
type UpdateInput struct {
	CampaignID *int64 `json:"campaignId,omitempty"`

	Owner  *string     `json:"owner,omitempty"`
	Status *string     `json:"status,omitempty"`
	Start  *store.Date `json:"startDate,omitempty"`
	End    *store.Date `json:"endDate,omitempty"`

	Agency       *string `json:"agency,omitempty"`
	Project      *string `json:"project,omitempty"`
	PieceID      *string `json:"pieceId,omitempty"`
	Product      *string `json:"product,omitempty"`
	Subproduct   *string `json:"subproduct,omitempty"`
	Vehicle      *string `json:"vehicle,omitempty"`
	CampaignType *string `json:"campaignType,omitempty"`
	Format       *string `json:"format,omitempty"`
	Strategy     *string `json:"strategy,omitempty"`
	Market       *string `json:"market,omitempty"`
	Dimensions   *string `json:"dimensions,omitempty"`
	Duration     *string `json:"duration,omitempty"`
	CreativeLine *string `json:"creativeLine,omitempty"`
	Objective    *string `json:"objective,omitempty"`
	BuyType      *string `json:"buyType,omitempty"`
	ExtraInfo    *string `json:"extraInfo,omitempty"`
	AudienceType *string `json:"audienceType,omitempty"`
	Segmentation *string `json:"segmentation,omitempty"`
	MediaPlan    *string `json:"mediaPlan,omitempty"`
	Argument     *string `json:"argument,omitempty"`

	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	SupportingText *string `json:"supportingText,omitempty"`
	CTA            *string `json:"cta,omitempty"`
	CampaignName   *string `json:"campaignName,omitempty"`
	AdGroup        *string `json:"adGroup,omitempty"`
	Ad             *string `json:"ad,omitempty"`
	TargetURL      *string `json:"targetUrl,omitempty"`
	TaggedURL      *string `json:"taggedUrl,omitempty"`
}

func (p UpdateInput) apply(cur SocialAd, now time.Time) SocialAd {
	if p.CampaignID != nil {
		cur.CampaignID = *p.CampaignID
	}
	if p.Owner != nil {
		cur.Owner = p.Owner
	}
	if p.Status != nil {
		cur.Status = p.Status
	}
	if p.Start != nil {
		cur.Start = p.Start
	}
	if p.End != nil {
		cur.End = p.End
	}
	if p.Agency != nil {
		cur.Agency = p.Agency
	}
	if p.Project != nil {
		cur.Project = p.Project
	}
	if p.PieceID != nil {
		cur.PieceID = p.PieceID
	}
	if p.Product != nil {
		cur.Product = p.Product
	}
	if p.Subproduct != nil {
		cur.Subproduct = p.Subproduct
	}
	if p.Vehicle != nil {
		cur.Vehicle = p.Vehicle
	}
	if p.CampaignType != nil {
		cur.CampaignType = p.CampaignType
	}
	if p.Format != nil {
		cur.Format = p.Format
	}
	if p.Strategy != nil {
		cur.Strategy = p.Strategy
	}
	if p.Market != nil {
		cur.Market = p.Market
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
	if p.Objective != nil {
		cur.Objective = p.Objective
	}
	if p.BuyType != nil {
		cur.BuyType = p.BuyType
	}
	if p.ExtraInfo != nil {
		cur.ExtraInfo = p.ExtraInfo
	}
	if p.AudienceType != nil {
		cur.AudienceType = p.AudienceType
	}
	if p.Segmentation != nil {
		cur.Segmentation = p.Segmentation
	}
	if p.MediaPlan != nil {
		cur.MediaPlan = p.MediaPlan
	}
	if p.Argument != nil {
		cur.Argument = p.Argument
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
	if p.CampaignName != nil {
		cur.CampaignName = p.CampaignName
	}
	if p.AdGroup != nil {
		cur.AdGroup = p.AdGroup
	}
	if p.Ad != nil {
		cur.Ad = p.Ad
	}
	if p.TargetURL != nil {
		cur.TargetURL = p.TargetURL
	}
	if p.TaggedURL != nil {
		cur.TaggedURL = p.TaggedURL
	}
	cur.UpdatedAt = now
	return cur
}
