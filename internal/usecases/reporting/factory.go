package reporting

import (
	"context"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// GoogleAdsFactory monta a fachada da plataforma de busca com a credencial da conta.
// É chamada uma vez por requisição; nada é compartilhado entre requisições.
type GoogleAdsFactory func(ctx context.Context, account *domain.AdAccount) (integrator.AdGroupReporter, error)

// MetaAdsFactory monta a fachada da plataforma social com a credencial da conta
type MetaAdsFactory func(ctx context.Context, account *domain.AdAccount) (integrator.Reporter, error)

func NewGoogleAdsFactory(cfg config.GoogleAds) GoogleAdsFactory {
	opts := googleads.OptionsFromConfig(cfg)

	return func(ctx context.Context, account *domain.AdAccount) (integrator.AdGroupReporter, error) {
		client, err := googleadsclient.NewClient(ctx, cfg, googleadsclient.Credentials{
			ClientID:        cfg.ClientID,
			ClientSecret:    cfg.ClientSecret,
			DeveloperToken:  cfg.DeveloperToken,
			RefreshToken:    account.Credential,
			LoginCustomerID: cfg.LoginCustomerID,
		})
		if err != nil {
			return nil, err
		}

		return googleads.New(client, opts), nil
	}
}

func NewMetaAdsFactory(cfg config.Meta) MetaAdsFactory {
	opts := meta.OptionsFromConfig(cfg)

	return func(_ context.Context, account *domain.AdAccount) (integrator.Reporter, error) {
		client, err := metaclient.NewClient(cfg, metaclient.Credentials{
			AppID:       cfg.AppID,
			AppSecret:   cfg.AppSecret,
			AccessToken: account.Credential,
		})
		if err != nil {
			return nil, err
		}

		return meta.New(client, opts), nil
	}
}
