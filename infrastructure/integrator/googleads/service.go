package googleads

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

var _ integrator.AdGroupReporter = (*Service)(nil)

type Options struct {
	// ConversionValue é o valor atribuído a cada conversão quando a plataforma não reporta receita
	ConversionValue float64
	// PartialResults permite pular grupos de anúncios cuja listagem falhou
	PartialResults bool
	// Concurrency limita as consultas simultâneas por grupo de anúncios
	Concurrency int
}

func OptionsFromConfig(cfg config.GoogleAds) Options {
	return Options{
		ConversionValue: cfg.ConversionValue,
		PartialResults:  cfg.PartialResults,
		Concurrency:     cfg.FanoutConcurrency,
	}
}

type Service struct {
	client googleadsclient.Client
	opts   Options
}

func New(client googleadsclient.Client, opts Options) *Service {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	return &Service{
		client: client,
		opts:   opts,
	}
}

// GetCampaigns mantém a ordem devolvida pela plataforma
func (s *Service) GetCampaigns(ctx context.Context, customerID string) ([]*domain.Campaign, error) {
	rows, err := s.client.ListCampaigns(ctx, customerID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": customerID,
			"error":      err.Error(),
		}).Error("googleads: failed to list campaigns")
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(rows))
	for _, row := range rows {
		campaigns = append(campaigns, NormalizeCampaign(row, s.opts.ConversionValue))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": customerID,
		"campaigns":  len(campaigns),
	}).Debug("googleads: campaigns retrieved")

	return campaigns, nil
}

func (s *Service) GetAdGroups(ctx context.Context, customerID, campaignID string) ([]*domain.AdGroup, error) {
	rows, err := s.client.ListAdGroups(ctx, customerID, campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  customerID,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("googleads: failed to list ad groups")
		return nil, err
	}

	adGroups := make([]*domain.AdGroup, 0, len(rows))
	for _, row := range rows {
		adGroups = append(adGroups, NormalizeAdGroup(row))
	}

	return adGroups, nil
}

// GetAds lista os grupos da campanha e depois os anúncios de cada grupo (1 + G consultas).
// O resultado segue a ordem dos grupos e, dentro de cada grupo, a ordem dos anúncios.
// Sem PartialResults, qualquer falha descarta o resultado inteiro.
func (s *Service) GetAds(ctx context.Context, customerID, campaignID string) ([]*domain.Ad, error) {
	groups, err := s.client.ListAdGroups(ctx, customerID, campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  customerID,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("googleads: failed to list ad groups")
		return nil, err
	}

	adsByGroup := make([][]*domain.Ad, len(groups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rows, err := s.client.ListAds(gctx, customerID, group.AdGroup.ID)
			if err != nil {
				entry := logrus.WithFields(logrus.Fields{
					"account_id":  customerID,
					"campaign_id": campaignID,
					"ad_group_id": group.AdGroup.ID,
					"error":       err.Error(),
				})
				if s.opts.PartialResults {
					entry.Warn("googleads: skipping ad group after failure")
					return nil
				}
				entry.Error("googleads: failed to list ads")
				return err
			}

			ads := make([]*domain.Ad, 0, len(rows))
			for _, row := range rows {
				ads = append(ads, NormalizeAd(row, group.AdGroup.Name))
			}
			adsByGroup[i] = ads
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*domain.Ad, 0)
	for _, ads := range adsByGroup {
		result = append(result, ads...)
	}

	return result, nil
}
