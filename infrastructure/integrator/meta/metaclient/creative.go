package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetCreative(ctx context.Context, creativeID string) (*metadomain.Creative, error) {
	scope := fmt.Sprintf("creative %s", creativeID)

	params := url.Values{}
	params.Set("fields", "thumbnail_url,image_url,object_story_spec")

	body, err := c.get(ctx, c.endpoint(url.PathEscape(creativeID), params), scope)
	if err != nil {
		return nil, err
	}

	var creative metadomain.Creative
	if err := json.Unmarshal(body, &creative); err != nil {
		return nil, integrator.NewQueryError(integrator.VendorMetaAds, "MALFORMED_RESPONSE", err.Error(), scope, http.StatusOK)
	}

	return &creative, nil
}
