package googleadsclient

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	metricFields = "metrics.impressions, metrics.clicks, metrics.ctr, metrics.conversions, " +
		"metrics.conversions_value, metrics.cost_micros, metrics.average_cpc, metrics.average_cpm, " +
		"metrics.cost_per_conversion"

	campaignFields = "campaign.id, campaign.name, campaign.status, campaign.advertising_channel_type, " +
		"campaign.start_date, campaign.end_date"

	adGroupFields = "ad_group.id, ad_group.name, ad_group.status, ad_group.campaign, campaign.id"

	adFields = "ad_group_ad.status, ad_group_ad.ad.id, ad_group_ad.ad.name, ad_group_ad.ad.type, " +
		"ad_group_ad.ad.final_urls, ad_group_ad.ad.image_ad.image_url, " +
		"ad_group_ad.ad.responsive_search_ad.headlines, ad_group.id, ad_group.name, campaign.id"
)

var numericID = regexp.MustCompile(`^[0-9]+$`)

// Janelas pré-definidas aceitas pela cláusula DURING
var metricWindows = map[string]struct{}{
	"TODAY":               {},
	"YESTERDAY":           {},
	"LAST_7_DAYS":         {},
	"LAST_14_DAYS":        {},
	"LAST_30_DAYS":        {},
	"LAST_BUSINESS_WEEK":  {},
	"LAST_MONTH":          {},
	"LAST_WEEK_MON_SUN":   {},
	"LAST_WEEK_SUN_SAT":   {},
	"THIS_MONTH":          {},
	"THIS_WEEK_MON_TODAY": {},
	"THIS_WEEK_SUN_TODAY": {},
}

// ValidMetricWindow aceita vazio (sem restrição de período) ou uma janela pré-definida
func ValidMetricWindow(window string) bool {
	if window == "" {
		return true
	}
	_, ok := metricWindows[window]
	return ok
}

// NormalizeCustomerID remove os hífens do formato exibido na interface (123-456-7890)
func NormalizeCustomerID(customerID string) string {
	return strings.ReplaceAll(strings.TrimSpace(customerID), "-", "")
}

func windowClause(window string) string {
	if window == "" {
		return ""
	}
	return fmt.Sprintf(" AND segments.date DURING %s", window)
}

func campaignsQuery(window string) string {
	return fmt.Sprintf(
		"SELECT %s, %s FROM campaign WHERE campaign.status != 'REMOVED'%s ORDER BY campaign.name",
		campaignFields, metricFields, windowClause(window),
	)
}

func adGroupsQuery(campaignID, window string) string {
	return fmt.Sprintf(
		"SELECT %s, %s FROM ad_group WHERE campaign.id = %s%s ORDER BY ad_group.name",
		adGroupFields, metricFields, campaignID, windowClause(window),
	)
}

func adsQuery(adGroupID, window string) string {
	return fmt.Sprintf(
		"SELECT %s, %s FROM ad_group_ad WHERE ad_group.id = %s%s ORDER BY ad_group_ad.ad.id",
		adFields, metricFields, adGroupID, windowClause(window),
	)
}
