package googleadsclient

import (
	"context"
	"fmt"

	googledomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/domain"
)

// ListCampaigns lista as campanhas não removidas da conta, ordenadas por nome
func (c *GoogleAdsClient) ListCampaigns(ctx context.Context, customerID string) ([]googledomain.CampaignRow, error) {
	scope := fmt.Sprintf("customer %s", customerID)

	raw, err := c.search(ctx, customerID, campaignsQuery(c.cfg.MetricWindow), scope)
	if err != nil {
		return nil, err
	}

	return decodeRows[googledomain.CampaignRow](raw, scope)
}
