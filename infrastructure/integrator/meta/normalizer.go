package meta

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

var statusTable = integrator.StatusTable{
	"ACTIVE":          domain.StatusActive,
	"PAUSED":          domain.StatusPaused,
	"CAMPAIGN_PAUSED": domain.StatusPaused,
	"ADSET_PAUSED":    domain.StatusPaused,
	"DELETED":         domain.StatusRemoved,
	"ARCHIVED":        domain.StatusRemoved,
}

// MapStatus prefere o effective_status, que reflete pausas herdadas
func MapStatus(effectiveStatus, status string) domain.Status {
	if effectiveStatus != "" {
		return statusTable.Map(effectiveStatus)
	}
	return statusTable.Map(status)
}

// ActionTargets define quais tipos de ação contam como conversão e como ROAS
type ActionTargets struct {
	Conversion string
	ROAS       string
}

// NormalizeCampaign converte uma campanha com insights já na unidade principal.
// O CTR permanece em percentual, como reportado pela plataforma.
func NormalizeCampaign(campaign metadomain.Campaign, targets ActionTargets) *domain.Campaign {
	insight := campaign.Insights.First()
	spend := integrator.Units(insight.Spend.Float64())
	conversions := conversionCount(insight.Actions, targets.Conversion)

	cpa, found := integrator.FirstActionValue(insight.CostPerActionType, targets.Conversion)
	if !found {
		cpa = integrator.CostPer(spend, conversions)
	}

	roas, _ := integrator.FirstActionValue(insight.PurchaseROAS, targets.ROAS)

	var endDate *string
	if campaign.StopTime != "" {
		endDate = integrator.StringPtr(datePart(campaign.StopTime))
	}

	return &domain.Campaign{
		ID:          campaign.ID,
		Name:        campaign.Name,
		Status:      MapStatus(campaign.EffectiveStatus, campaign.Status),
		Channel:     domain.ChannelSocial,
		Objective:   campaign.Objective,
		StartDate:   datePart(campaign.StartTime),
		EndDate:     endDate,
		Impressions: insight.Impressions.Int64(),
		Clicks:      insight.Clicks.Int64(),
		CTR:         insight.CTR.Float64(),
		Conversions: conversions,
		Spend:       spend,
		CPC:         integrator.Units(insight.CPC.Float64()),
		CPA:         integrator.Units(cpa),
		CPM:         integrator.Units(insight.CPM.Float64()),
		ROAS:        integrator.GuardROAS(roas, conversions, spend),
	}
}

// NormalizeAd converte um anúncio; creative pode ser nil quando a consulta do criativo falhou
func NormalizeAd(ad metadomain.Ad, creative *metadomain.Creative, conversionAction string) *domain.Ad {
	insight := ad.Insights.First()

	return &domain.Ad{
		ID:           ad.ID,
		Name:         ad.Name,
		Status:       MapStatus(ad.EffectiveStatus, ad.Status),
		CampaignID:   ad.CampaignID,
		AdSetID:      integrator.StringPtr(ad.AdSetID),
		ThumbnailURL: integrator.StringPtr(creative.Thumbnail()),
		AdLink:       integrator.StringPtr(creative.Link()),
		Impressions:  insight.Impressions.Int64(),
		Clicks:       insight.Clicks.Int64(),
		CTR:          insight.CTR.Float64(),
		Conversions:  conversionCount(insight.Actions, conversionAction),
		Spend:        integrator.Units(insight.Spend.Float64()),
	}
}

func conversionCount(actions []integrator.Action, target string) int64 {
	value, found := integrator.FirstActionValue(actions, target)
	if !found {
		if len(actions) > 0 {
			logrus.WithField("action_type", target).Debug("meta: conversion action not found")
		}
		return 0
	}
	if value <= 0 {
		return 0
	}
	return int64(math.Round(value))
}

// A Graph API envia datas como "2024-01-01T00:00:00-0300"
func datePart(timestamp string) string {
	if len(timestamp) >= len("2006-01-02") {
		return timestamp[:len("2006-01-02")]
	}
	return timestamp
}
