package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

const campaignInsightFields = "impressions,clicks,ctr,spend,cpc,cpm,actions,cost_per_action_type,purchase_roas"

// Campanhas apagadas e arquivadas ficam de fora
const campaignStatuses = `["ACTIVE","PAUSED","IN_PROCESS","WITH_ISSUES"]`

// ListCampaigns retorna as campanhas da conta ordenadas pelo nome
func (c *MetaClient) ListCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error) {
	accountID = NormalizeAccountID(accountID)
	scope := fmt.Sprintf("account %s", accountID)

	params := url.Values{}
	params.Set("fields", fmt.Sprintf(
		"id,name,status,effective_status,objective,start_time,stop_time,insights.date_preset(%s){%s}",
		c.cfg.DatePreset, campaignInsightFields,
	))
	params.Set("effective_status", campaignStatuses)
	params.Set("limit", pageLimit)

	campaigns, err := list[metadomain.Campaign](ctx, c, c.endpoint("act_"+accountID+"/campaigns", params), scope)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].Name < campaigns[j].Name
	})

	return campaigns, nil
}
