package googleads

import (
	"math"
	"strings"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	googledomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// O Google Ads representa "sem data de término" com esta data
const noEndDate = "2037-12-30"

var statusTable = integrator.StatusTable{
	"ENABLED": domain.StatusActive,
	"PAUSED":  domain.StatusPaused,
	"REMOVED": domain.StatusRemoved,
}

// MapStatus converte ENABLED/PAUSED/REMOVED; qualquer outro valor vira UNKNOWN
func MapStatus(raw string) domain.Status {
	return statusTable.Map(raw)
}

// NormalizeCampaign converte uma linha de campanha. Valores monetários chegam em micro-unidades.
// conversionValue é o valor por conversão informado por quem chama; zero desativa a estimativa.
func NormalizeCampaign(row googledomain.CampaignRow, conversionValue float64) *domain.Campaign {
	metrics := row.Metrics
	spend := integrator.MicrosToUnits(metrics.CostMicros.Int64())
	conversions := roundConversions(metrics.Conversions.Float64())

	var endDate *string
	if row.Campaign.EndDate != noEndDate {
		endDate = integrator.StringPtr(row.Campaign.EndDate)
	}

	return &domain.Campaign{
		ID:          row.Campaign.ID,
		Name:        row.Campaign.Name,
		Status:      MapStatus(row.Campaign.Status),
		Channel:     domain.ChannelSearch,
		Objective:   row.Campaign.AdvertisingChannelType,
		StartDate:   row.Campaign.StartDate,
		EndDate:     endDate,
		Impressions: metrics.Impressions.Int64(),
		Clicks:      metrics.Clicks.Int64(),
		CTR:         metrics.CTR.Float64(),
		Conversions: conversions,
		Spend:       spend,
		CPC:         integrator.FractionalMicrosToUnits(metrics.AverageCPC.Float64()),
		CPA:         integrator.FractionalMicrosToUnits(metrics.CostPerConversion.Float64()),
		CPM:         integrator.FractionalMicrosToUnits(metrics.AverageCPM.Float64()),
		ROAS:        campaignROAS(metrics, spend, conversions, conversionValue),
	}
}

// campaignROAS usa o valor de conversões reportado pela plataforma.
// Sem ele, só estima quando há valor por conversão explícito.
func campaignROAS(metrics googledomain.Metrics, spend float64, conversions int64, conversionValue float64) float64 {
	if metrics.Conversions.Float64() <= 0 || spend <= 0 {
		return 0
	}

	revenue := metrics.ConversionsValue.Float64()
	if revenue <= 0 && conversionValue > 0 {
		revenue = metrics.Conversions.Float64() * conversionValue
	}

	return integrator.GuardROAS(integrator.RatioROAS(revenue, spend), conversions, spend)
}

func NormalizeAdGroup(row googledomain.AdGroupRow) *domain.AdGroup {
	metrics := row.Metrics

	campaignID := row.Campaign.ID
	if campaignID == "" {
		campaignID = lastSegment(row.AdGroup.Campaign)
	}

	return &domain.AdGroup{
		ID:          row.AdGroup.ID,
		Name:        row.AdGroup.Name,
		Status:      MapStatus(row.AdGroup.Status),
		CampaignID:  campaignID,
		Impressions: metrics.Impressions.Int64(),
		Clicks:      metrics.Clicks.Int64(),
		CTR:         metrics.CTR.Float64(),
		Conversions: roundConversions(metrics.Conversions.Float64()),
		Spend:       integrator.MicrosToUnits(metrics.CostMicros.Int64()),
		CPC:         integrator.FractionalMicrosToUnits(metrics.AverageCPC.Float64()),
	}
}

// NormalizeAd converte uma linha de anúncio marcando o nome do grupo de origem
func NormalizeAd(row googledomain.AdRow, adGroupName string) *domain.Ad {
	ad := row.AdGroupAd.Ad
	metrics := row.Metrics

	name := ad.Name
	if name == "" && len(ad.ResponsiveSearchAd.Headlines) > 0 {
		name = ad.ResponsiveSearchAd.Headlines[0].Text
	}

	var link *string
	if len(ad.FinalURLs) > 0 {
		link = integrator.StringPtr(ad.FinalURLs[0])
	}

	if adGroupName == "" {
		adGroupName = row.AdGroup.Name
	}

	return &domain.Ad{
		ID:           ad.ID,
		Name:         name,
		Status:       MapStatus(row.AdGroupAd.Status),
		CampaignID:   row.Campaign.ID,
		AdGroupName:  integrator.StringPtr(adGroupName),
		ThumbnailURL: integrator.StringPtr(ad.ImageAd.ImageURL),
		AdLink:       link,
		Impressions:  metrics.Impressions.Int64(),
		Clicks:       metrics.Clicks.Int64(),
		CTR:          metrics.CTR.Float64(),
		Conversions:  roundConversions(metrics.Conversions.Float64()),
		Spend:        integrator.MicrosToUnits(metrics.CostMicros.Int64()),
	}
}

// Conversões podem ser fracionárias por atribuição; o modelo canônico usa contagem inteira
func roundConversions(value float64) int64 {
	if value <= 0 {
		return 0
	}
	return int64(math.Round(value))
}

func lastSegment(resourceName string) string {
	if i := strings.LastIndex(resourceName, "/"); i >= 0 {
		return resourceName[i+1:]
	}
	return resourceName
}
