package meta

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

var _ integrator.Reporter = (*Service)(nil)

type Options struct {
	Targets ActionTargets
	// CreativeBestEffort mantém o anúncio sem thumbnail e link quando o criativo falha
	CreativeBestEffort bool
}

func OptionsFromConfig(cfg config.Meta) Options {
	return Options{
		Targets: ActionTargets{
			Conversion: cfg.ConversionAction,
			ROAS:       cfg.ROASAction,
		},
		CreativeBestEffort: cfg.CreativeBestEffort,
	}
}

type Service struct {
	client metaclient.Client
	opts   Options
}

func New(client metaclient.Client, opts Options) *Service {
	return &Service{
		client: client,
		opts:   opts,
	}
}

func (s *Service) GetCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	campaigns, err := s.client.ListCampaigns(ctx, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: failed to list campaigns")
		return nil, err
	}

	result := make([]*domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		result = append(result, NormalizeCampaign(campaign, s.opts.Targets))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"campaigns":  len(result),
	}).Debug("meta: campaigns retrieved")

	return result, nil
}

// GetAds lista os anúncios e consulta o criativo de cada um, uma vez por criativo
func (s *Service) GetAds(ctx context.Context, accountID, campaignID string) ([]*domain.Ad, error) {
	ads, err := s.client.ListAds(ctx, accountID, campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  accountID,
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("meta: failed to list ads")
		return nil, err
	}

	creatives := make(map[string]*metadomain.Creative)
	result := make([]*domain.Ad, 0, len(ads))
	for _, ad := range ads {
		creative, err := s.creative(ctx, ad.CreativeID(), creatives)
		if err != nil {
			entry := logrus.WithFields(logrus.Fields{
				"account_id":  accountID,
				"ad_id":       ad.ID,
				"creative_id": ad.CreativeID(),
				"error":       err.Error(),
			})
			if !s.opts.CreativeBestEffort {
				entry.Error("meta: failed to get creative")
				return nil, err
			}
			entry.Warn("meta: creative unavailable, returning ad without thumbnail and link")
		}

		result = append(result, NormalizeAd(ad, creative, s.opts.Targets.Conversion))
	}

	return result, nil
}

func (s *Service) creative(ctx context.Context, creativeID string, cache map[string]*metadomain.Creative) (*metadomain.Creative, error) {
	if creativeID == "" {
		return nil, nil
	}
	if creative, ok := cache[creativeID]; ok {
		return creative, nil
	}

	creative, err := s.client.GetCreative(ctx, creativeID)
	if err != nil {
		return nil, err
	}

	cache[creativeID] = creative
	return creative, nil
}
