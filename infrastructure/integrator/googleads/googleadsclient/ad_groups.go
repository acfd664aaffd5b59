package googleadsclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	googledomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/domain"
)

// ListAdGroups lista os grupos de anúncios de uma campanha, ordenados por nome
func (c *GoogleAdsClient) ListAdGroups(ctx context.Context, customerID, campaignID string) ([]googledomain.AdGroupRow, error) {
	scope := fmt.Sprintf("customer %s campaign %s", customerID, campaignID)
	if !numericID.MatchString(campaignID) {
		return nil, integrator.NewQueryError(integrator.VendorGoogleAds, "INVALID_ARGUMENT", "campaign id must be numeric", scope, http.StatusBadRequest)
	}

	raw, err := c.search(ctx, customerID, adGroupsQuery(campaignID, c.cfg.MetricWindow), scope)
	if err != nil {
		return nil, err
	}

	return decodeRows[googledomain.AdGroupRow](raw, scope)
}
