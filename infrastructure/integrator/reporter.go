package integrator

import (
	"context"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Reporter é a superfície comum das fachadas de cada plataforma.
// O escopo de GetAds é a campanha; vazio significa a conta inteira
// quando a plataforma permite.
type Reporter interface {
	GetCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error)
	GetAds(ctx context.Context, accountID, campaignID string) ([]*domain.Ad, error)
}

// AdGroupReporter é implementado apenas pela plataforma de busca
type AdGroupReporter interface {
	Reporter
	GetAdGroups(ctx context.Context, accountID, campaignID string) ([]*domain.AdGroup, error)
}
