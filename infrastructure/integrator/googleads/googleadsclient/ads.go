package googleadsclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	googledomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/domain"
)

// ListAds lista os anúncios de um grupo de anúncios
func (c *GoogleAdsClient) ListAds(ctx context.Context, customerID, adGroupID string) ([]googledomain.AdRow, error) {
	scope := fmt.Sprintf("customer %s ad_group %s", customerID, adGroupID)
	if !numericID.MatchString(adGroupID) {
		return nil, integrator.NewQueryError(integrator.VendorGoogleAds, "INVALID_ARGUMENT", "ad group id must be numeric", scope, http.StatusBadRequest)
	}

	raw, err := c.search(ctx, customerID, adsQuery(adGroupID, c.cfg.MetricWindow), scope)
	if err != nil {
		return nil, err
	}

	return decodeRows[googledomain.AdRow](raw, scope)
}
