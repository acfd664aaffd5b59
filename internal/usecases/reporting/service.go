package reporting

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

// Rótulos de operação usados nas métricas
const (
	operationCampaigns = "campaigns"
	operationAdGroups  = "ad_groups"
	operationAds       = "ads"
)

type ReportingService interface {
	GoogleCampaigns(ctx context.Context, requester domain.Requester, accountID int) ([]*domain.Campaign, error)
	GoogleAdGroups(ctx context.Context, requester domain.Requester, accountID int, campaignID string) ([]*domain.AdGroup, error)
	GoogleAds(ctx context.Context, requester domain.Requester, accountID int, campaignID string) ([]*domain.Ad, error)
	MetaCampaigns(ctx context.Context, requester domain.Requester, accountID int) ([]*domain.Campaign, error)
	MetaAds(ctx context.Context, requester domain.Requester, accountID int, campaignID string) ([]*domain.Ad, error)
}

type Service struct {
	accountService account.AccountService
	googleAds      GoogleAdsFactory
	metaAds        MetaAdsFactory
	metrics        *metrics.Metrics
}

func NewService(
	accountService account.AccountService,
	googleAds GoogleAdsFactory,
	metaAds MetaAdsFactory,
	m *metrics.Metrics,
) ReportingService {
	return &Service{
		accountService: accountService,
		googleAds:      googleAds,
		metaAds:        metaAds,
		metrics:        m,
	}
}

func (s *Service) GoogleCampaigns(ctx context.Context, requester domain.Requester, accountID int) ([]*domain.Campaign, error) {
	adAccount, err := s.accountService.ResolveAccount(ctx, requester, domain.PlatformGoogleAds, accountID)
	if err != nil {
		return nil, err
	}

	return observe(s, integrator.VendorGoogleAds, operationCampaigns, adAccount, func() ([]*domain.Campaign, error) {
		reporter, err := s.googleAds(ctx, adAccount)
		if err != nil {
			return nil, err
		}
		return reporter.GetCampaigns(ctx, adAccount.ExternalID)
	})
}

func (s *Service) GoogleAdGroups(ctx context.Context, requester domain.Requester, accountID int, campaignID string) ([]*domain.AdGroup, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return nil, NewReportingError(ErrMissingCampaignID, apiErrors.ErrMissingRequiredData, accountID, "")
	}

	adAccount, err := s.accountService.ResolveAccount(ctx, requester, domain.PlatformGoogleAds, accountID)
	if err != nil {
		return nil, err
	}

	return observe(s, integrator.VendorGoogleAds, operationAdGroups, adAccount, func() ([]*domain.AdGroup, error) {
		reporter, err := s.googleAds(ctx, adAccount)
		if err != nil {
			return nil, err
		}
		return reporter.GetAdGroups(ctx, adAccount.ExternalID, campaignID)
	})
}

func (s *Service) GoogleAds(ctx context.Context, requester domain.Requester, accountID int, campaignID string) ([]*domain.Ad, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return nil, NewReportingError(ErrMissingCampaignID, apiErrors.ErrMissingRequiredData, accountID, "")
	}

	adAccount, err := s.accountService.ResolveAccount(ctx, requester, domain.PlatformGoogleAds, accountID)
	if err != nil {
		return nil, err
	}

	return observe(s, integrator.VendorGoogleAds, operationAds, adAccount, func() ([]*domain.Ad, error) {
		reporter, err := s.googleAds(ctx, adAccount)
		if err != nil {
			return nil, err
		}
		return reporter.GetAds(ctx, adAccount.ExternalID, campaignID)
	})
}

func (s *Service) MetaCampaigns(ctx context.Context, requester domain.Requester, accountID int) ([]*domain.Campaign, error) {
	adAccount, err := s.accountService.ResolveAccount(ctx, requester, domain.PlatformMetaAds, accountID)
	if err != nil {
		return nil, err
	}

	return observe(s, integrator.VendorMetaAds, operationCampaigns, adAccount, func() ([]*domain.Campaign, error) {
		reporter, err := s.metaAds(ctx, adAccount)
		if err != nil {
			return nil, err
		}
		return reporter.GetCampaigns(ctx, adAccount.ExternalID)
	})
}

// MetaAds aceita campaignID vazio para listar os anúncios da conta inteira
func (s *Service) MetaAds(ctx context.Context, requester domain.Requester, accountID int, campaignID string) ([]*domain.Ad, error) {
	adAccount, err := s.accountService.ResolveAccount(ctx, requester, domain.PlatformMetaAds, accountID)
	if err != nil {
		return nil, err
	}

	return observe(s, integrator.VendorMetaAds, operationAds, adAccount, func() ([]*domain.Ad, error) {
		reporter, err := s.metaAds(ctx, adAccount)
		if err != nil {
			return nil, err
		}
		return reporter.GetAds(ctx, adAccount.ExternalID, strings.TrimSpace(campaignID))
	})
}

// observe mede a chamada à plataforma, incluindo a construção do cliente
func observe[T any](s *Service, vendor, operation string, adAccount *domain.AdAccount, call func() ([]T, error)) ([]T, error) {
	started := time.Now()
	items, err := call()
	s.metrics.ObserveVendorCall(vendor, operation, started, len(items), err)

	entry := logrus.WithFields(logrus.Fields{
		"vendor":      vendor,
		"operation":   operation,
		"account_id":  adAccount.ID,
		"external_id": adAccount.ExternalID,
		"duration_ms": time.Since(started).Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Warn("reporting: vendor call failed")
		return nil, err
	}

	entry.WithField("items", len(items)).Debug("reporting: vendor call finished")
	return items, nil
}
