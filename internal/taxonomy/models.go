package taxonomy

import (
	"time"

	"campaign-docs/internal/store"
)

// EntityType is the audit-log discriminator for taxonomy parameter records.
const EntityType = "TaxonomyParam"

// TaxonomyParam holds the naming and tracking parameters for one media-plan
// line of a campaign. Almost every column is optional; rows are filled in
// incrementally as the plan is trafficked.
type TaxonomyParam struct {
	ID         int64 `json:"id"`
	CampaignID int64 `json:"campaignId"`

	MediaPlanVersion *string `json:"mediaPlanVersion,omitempty"`
	MediaPlanLine    *string `json:"mediaPlanLine,omitempty"`
	Advertiser       *string `json:"advertiser,omitempty"`
	AdvertiserShort  *string `json:"advertiserShort,omitempty"`
	ProjectName      *string `json:"projectName,omitempty"`
	Argument         *string `json:"argument,omitempty"`
	PACActionNumber  *string `json:"pacActionNumber,omitempty"`
	ProjectNumber    *string `json:"projectNumber,omitempty"`
	CMCampaignName   *string `json:"cmCampaignName,omitempty"`

	VehiclePlatform        *string `json:"vehiclePlatform,omitempty"`
	InventoryType          *string `json:"inventoryType,omitempty"`
	Goal                   *string `json:"goal,omitempty"`
	OptimizationIO         *string `json:"optimizationIo,omitempty"`
	IOTargetingMacro       *string `json:"ioTargetingMacro,omitempty"`
	IOSegmentation         *string `json:"ioSegmentation,omitempty"`
	LineItemTargetingMacro *string `json:"lineItemTargetingMacro,omitempty"`
	LineItemSegmentation   *string `json:"lineItemSegmentation,omitempty"`
	CMTargetingMacro       *string `json:"cmTargetingMacro,omitempty"`

	Market               *string `json:"market,omitempty"`
	Channel              *string `json:"channel,omitempty"`
	Agency               *string `json:"agency,omitempty"`
	ReferenceMonth       *string `json:"referenceMonth,omitempty"`
	LineItemOptimization *string `json:"lineItemOptimization,omitempty"`
	LineItemMediaType    *string `json:"lineItemMediaType,omitempty"`
	BuyType              *string `json:"buyType,omitempty"`
	AdServer             *string `json:"adServer,omitempty"`
	CreativeFormat       *string `json:"creativeFormat,omitempty"`
	Dimensions           *string `json:"dimensions,omitempty"`
	Device               *string `json:"device,omitempty"`

	ParamID      *string     `json:"paramId,omitempty"`
	CreativeLine *string     `json:"creativeLine,omitempty"`
	PieceContent *string     `json:"pieceContent,omitempty"`
	PlannedStart *store.Date `json:"plannedStart,omitempty"`
	PlannedEnd   *store.Date `json:"plannedEnd,omitempty"`

	InsertionOrderDSP *string `json:"insertionOrderDsp,omitempty"`
	LineItemDSP       *string `json:"lineItemDsp,omitempty"`
	CharacterCount    *int    `json:"characterCount,omitempty"`
	PlacementCM       *string `json:"placementCm,omitempty"`
	CreativeDSP       *string `json:"creativeDsp,omitempty"`
	TargetURL         *string `json:"targetUrl,omitempty"`
	AdName            *string `json:"adName,omitempty"`
	TaggedTargetURL   *string `json:"taggedTargetUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	CampaignID int64 `json:"campaignId"`

	MediaPlanVersion *string `json:"mediaPlanVersion,omitempty"`
	MediaPlanLine    *string `json:"mediaPlanLine,omitempty"`
	Advertiser       *string `json:"advertiser,omitempty"`
	AdvertiserShort  *string `json:"advertiserShort,omitempty"`
	ProjectName      *string `json:"projectName,omitempty"`
	Argument         *string `json:"argument,omitempty"`
	PACActionNumber  *string `json:"pacActionNumber,omitempty"`
	ProjectNumber    *string `json:"projectNumber,omitempty"`
	CMCampaignName   *string `json:"cmCampaignName,omitempty"`

	VehiclePlatform        *string `json:"vehiclePlatform,omitempty"`
	InventoryType          *string `json:"inventoryType,omitempty"`
	Goal                   *string `json:"goal,omitempty"`
	OptimizationIO         *string `json:"optimizationIo,omitempty"`
	IOTargetingMacro       *string `json:"ioTargetingMacro,omitempty"`
	IOSegmentation         *string `json:"ioSegmentation,omitempty"`
	LineItemTargetingMacro *string `json:"lineItemTargetingMacro,omitempty"`
	LineItemSegmentation   *string `json:"lineItemSegmentation,omitempty"`
	CMTargetingMacro       *string `json:"cmTargetingMacro,omitempty"`

	Market               *string `json:"market,omitempty"`
	Channel              *string `json:"channel,omitempty"`
	Agency               *string `json:"agency,omitempty"`
	ReferenceMonth       *string `json:"referenceMonth,omitempty"`
	LineItemOptimization *string `json:"lineItemOptimization,omitempty"`
	LineItemMediaType    *string `json:"lineItemMediaType,omitempty"`
	BuyType              *string `json:"buyType,omitempty"`
	AdServer             *string `json:"adServer,omitempty"`
	CreativeFormat       *string `json:"creativeFormat,omitempty"`
	Dimensions           *string `json:"dimensions,omitempty"`
	Device               *string `json:"device,omitempty"`

	ParamID      *string     `json:"paramId,omitempty"`
	CreativeLine *string     `json:"creativeLine,omitempty"`
	PieceContent *string     `json:"pieceContent,omitempty"`
	PlannedStart *store.Date `json:"plannedStart,omitempty"`
	PlannedEnd   *store.Date `json:"plannedEnd,omitempty"`

	InsertionOrderDSP *string `json:"insertionOrderDsp,omitempty"`
	LineItemDSP       *string `json:"lineItemDsp,omitempty"`
	CharacterCount    *int    `json:"characterCount,omitempty"`
	PlacementCM       *string `json:"placementCm,omitempty"`
	CreativeDSP       *string `json:"creativeDsp,omitempty"`
	TargetURL         *string `json:"targetUrl,omitempty"`
	AdName            *string `json:"adName,omitempty"`
	TaggedTargetURL   *string `json:"taggedTargetUrl,omitempty"`
}

func newRecord(id int64, now time.Time, in CreateInput) TaxonomyParam {
	return TaxonomyParam{
		ID:                     id,
		CampaignID:             in.CampaignID,
		MediaPlanVersion:       in.MediaPlanVersion,
		MediaPlanLine:          in.MediaPlanLine,
		Advertiser:             in.Advertiser,
		AdvertiserShort:        in.AdvertiserShort,
		ProjectName:            in.ProjectName,
		Argument:               in.Argument,
		PACActionNumber:        in.PACActionNumber,
		ProjectNumber:          in.ProjectNumber,
		CMCampaignName:         in.CMCampaignName,
		VehiclePlatform:        in.VehiclePlatform,
		InventoryType:          in.InventoryType,
		Goal:                   in.Goal,
		OptimizationIO:         in.OptimizationIO,
		IOTargetingMacro:       in.IOTargetingMacro,
		IOSegmentation:         in.IOSegmentation,
		LineItemTargetingMacro: in.LineItemTargetingMacro,
		LineItemSegmentation:   in.LineItemSegmentation,
		CMTargetingMacro:       in.CMTargetingMacro,
		Market:                 in.Market,
		Channel:                in.Channel,
		Agency:                 in.Agency,
		ReferenceMonth:         in.ReferenceMonth,
		LineItemOptimization:   in.LineItemOptimization,
		LineItemMediaType:      in.LineItemMediaType,
		BuyType:                in.BuyType,
		AdServer:               in.AdServer,
		CreativeFormat:         in.CreativeFormat,
		Dimensions:             in.Dimensions,
		Device:                 in.Device,
		ParamID:                in.ParamID,
		CreativeLine:           in.CreativeLine,
		PieceContent:           in.PieceContent,
		PlannedStart:           in.PlannedStart,
		PlannedEnd:             in.PlannedEnd,
		InsertionOrderDSP:      in.InsertionOrderDSP,
		LineItemDSP:            in.LineItemDSP,
		CharacterCount:         in.CharacterCount,
		PlacementCM:            in.PlacementCM,
		CreativeDSP:            in.CreativeDSP,
		TargetURL:              in.TargetURL,
		AdName:                 in.AdName,
		TaggedTargetURL:        in.TaggedTargetURL,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// UpdateInput is a partial patch; nil fields are left untouched.
type UpdateInput struct {
	CampaignID *int64 `json:"campaignId,omitempty"`

	MediaPlanVersion *string `json:"mediaPlanVersion,omitempty"`
	MediaPlanLine    *string `json:"mediaPlanLine,omitempty"`
	Advertiser       *string `json:"advertiser,omitempty"`
	AdvertiserShort  *string `json:"advertiserShort,omitempty"`
	ProjectName      *string `json:"projectName,omitempty"`
	Argument         *string `json:"argument,omitempty"`
	PACActionNumber  *string `json:"pacActionNumber,omitempty"`
	ProjectNumber    *string `json:"projectNumber,omitempty"`
	CMCampaignName   *string `json:"cmCampaignName,omitempty"`

	VehiclePlatform        *string `json:"vehiclePlatform,omitempty"`
	InventoryType          *string `json:"inventoryType,omitempty"`
	Goal                   *string `json:"goal,omitempty"`
	OptimizationIO         *string `json:"optimizationIo,omitempty"`
	IOTargetingMacro       *string `json:"ioTargetingMacro,omitempty"`
	IOSegmentation         *string `json:"ioSegmentation,omitempty"`
	LineItemTargetingMacro *string `json:"lineItemTargetingMacro,omitempty"`
	LineItemSegmentation   *string `json:"lineItemSegmentation,omitempty"`
	CMTargetingMacro       *string `json:"cmTargetingMacro,omitempty"`

	Market               *string `json:"market,omitempty"`
	Channel              *string `json:"channel,omitempty"`
	Agency               *string `json:"agency,omitempty"`
	ReferenceMonth       *string `json:"referenceMonth,omitempty"`
	LineItemOptimization *string `json:"lineItemOptimization,omitempty"`
	LineItemMediaType    *string `json:"lineItemMediaType,omitempty"`
	BuyType              *string `json:"buyType,omitempty"`
	AdServer             *string `json:"adServer,omitempty"`
	CreativeFormat       *string `json:"creativeFormat,omitempty"`
	Dimensions           *string `json:"dimensions,omitempty"`
	Device               *string `json:"device,omitempty"`

	ParamID      *string     `json:"paramId,omitempty"`
	CreativeLine *string     `json:"creativeLine,omitempty"`
	PieceContent *string     `json:"pieceContent,omitempty"`
	PlannedStart *store.Date `json:"plannedStart,omitempty"`
	PlannedEnd   *store.Date `json:"plannedEnd,omitempty"`

	InsertionOrderDSP *string `json:"insertionOrderDsp,omitempty"`
	LineItemDSP       *string `json:"lineItemDsp,omitempty"`
	CharacterCount    *int    `json:"characterCount,omitempty"`
	PlacementCM       *string `json:"placementCm,omitempty"`
	CreativeDSP       *string `json:"creativeDsp,omitempty"`
	TargetURL         *string `json:"targetUrl,omitempty"`
	AdName            *string `json:"adName,omitempty"`
	TaggedTargetURL   *string `json:"taggedTargetUrl,omitempty"`
}

func (p UpdateInput) apply(cur TaxonomyParam, now time.Time) TaxonomyParam {
	if p.CampaignID != nil {
		cur.CampaignID = *p.CampaignID
	}
	if p.MediaPlanVersion != nil {
		cur.MediaPlanVersion = p.MediaPlanVersion
	}
	if p.MediaPlanLine != nil {
		cur.MediaPlanLine = p.MediaPlanLine
	}
	if p.Advertiser != nil {
		cur.Advertiser = p.Advertiser
	}
	if p.AdvertiserShort != nil {
		cur.AdvertiserShort = p.AdvertiserShort
	}
	if p.ProjectName != nil {
		cur.ProjectName = p.ProjectName
	}
	if p.Argument != nil {
		cur.Argument = p.Argument
	}
	if p.PACActionNumber != nil {
		cur.PACActionNumber = p.PACActionNumber
	}
	if p.ProjectNumber != nil {
		cur.ProjectNumber = p.ProjectNumber
	}
	if p.CMCampaignName != nil {
		cur.CMCampaignName = p.CMCampaignName
	}
	if p.VehiclePlatform != nil {
		cur.VehiclePlatform = p.VehiclePlatform
	}
	if p.InventoryType != nil {
		cur.InventoryType = p.InventoryType
	}
	if p.Goal != nil {
		cur.Goal = p.Goal
	}
	if p.OptimizationIO != nil {
		cur.OptimizationIO = p.OptimizationIO
	}
	if p.IOTargetingMacro != nil {
		cur.IOTargetingMacro = p.IOTargetingMacro
	}
	if p.IOSegmentation != nil {
		cur.IOSegmentation = p.IOSegmentation
	}
	if p.LineItemTargetingMacro != nil {
		cur.LineItemTargetingMacro = p.LineItemTargetingMacro
	}
	if p.LineItemSegmentation != nil {
		cur.LineItemSegmentation = p.LineItemSegmentation
	}
	if p.CMTargetingMacro != nil {
		cur.CMTargetingMacro = p.CMTargetingMacro
	}
	if p.Market != nil {
		cur.Market = p.Market
	}
	if p.Channel != nil {
		cur.Channel = p.Channel
	}
	if p.Agency != nil {
		cur.Agency = p.Agency
	}
	if p.ReferenceMonth != nil {
		cur.ReferenceMonth = p.ReferenceMonth
	}
	if p.LineItemOptimization != nil {
		cur.LineItemOptimization = p.LineItemOptimization
	}
	if p.LineItemMediaType != nil {
		cur.LineItemMediaType = p.LineItemMediaType
	}
	if p.BuyType != nil {
		cur.BuyType = p.BuyType
	}
	if p.AdServer != nil {
		cur.AdServer = p.AdServer
	}
	if p.CreativeFormat != nil {
		cur.CreativeFormat = p.CreativeFormat
	}
	if p.Dimensions != nil {
		cur.Dimensions = p.Dimensions
	}
	if p.Device != nil {
		cur.Device = p.Device
	}
	if p.ParamID != nil {
		cur.ParamID = p.ParamID
	}
	if p.CreativeLine != nil {
		cur.CreativeLine = p.CreativeLine
	}
	if p.PieceContent != nil {
		cur.PieceContent = p.PieceContent
	}
	if p.PlannedStart != nil {
		cur.PlannedStart = p.PlannedStart
	}
	if p.PlannedEnd != nil {
		cur.PlannedEnd = p.PlannedEnd
	}
	if p.InsertionOrderDSP != nil {
		cur.InsertionOrderDSP = p.InsertionOrderDSP
	}
	if p.LineItemDSP != nil {
		cur.LineItemDSP = p.LineItemDSP
	}
	if p.CharacterCount != nil {
		cur.CharacterCount = p.CharacterCount
	}
	if p.PlacementCM != nil {
		cur.PlacementCM = p.PlacementCM
	}
	if p.CreativeDSP != nil {
		cur.CreativeDSP = p.CreativeDSP
	}
	if p.TargetURL != nil {
		cur.TargetURL = p.TargetURL
	}
	if p.AdName != nil {
		cur.AdName = p.AdName
	}
	if p.TaggedTargetURL != nil {
		cur.TaggedTargetURL = p.TaggedTargetURL
	}
	cur.UpdatedAt = now
	return cur
}
