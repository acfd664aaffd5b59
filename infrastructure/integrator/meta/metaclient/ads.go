package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

const adInsightFields = "impressions,clicks,ctr,spend,actions"

const adStatuses = `["ACTIVE","PAUSED","CAMPAIGN_PAUSED","ADSET_PAUSED","IN_PROCESS","WITH_ISSUES","PENDING_REVIEW","DISAPPROVED"]`

type filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// ListAds lista os anúncios da conta; com campaignID filtra pela campanha
func (c *MetaClient) ListAds(ctx context.Context, accountID, campaignID string) ([]metadomain.Ad, error) {
	accountID = NormalizeAccountID(accountID)
	scope := fmt.Sprintf("account %s", accountID)

	params := url.Values{}
	params.Set("fields", fmt.Sprintf(
		"id,name,status,effective_status,campaign_id,adset_id,creative{id},insights.date_preset(%s){%s}",
		c.cfg.DatePreset, adInsightFields,
	))
	params.Set("effective_status", adStatuses)
	params.Set("limit", pageLimit)

	if campaignID != "" {
		scope = fmt.Sprintf("account %s campaign %s", accountID, campaignID)
		filtering, err := json.Marshal([]filter{{Field: "campaign.id", Operator: "EQUAL", Value: campaignID}})
		if err != nil {
			return nil, err
		}
		params.Set("filtering", string(filtering))
	}

	return list[metadomain.Ad](ctx, c, c.endpoint("act_"+accountID+"/ads", params), scope)
}
