package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
)

func Healthcheck(db Pinger, m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(m),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// AdAccounts monta o cadastro de contas sob o prefixo da plataforma
func AdAccounts(prefix string, platform domain.Platform, service account.AccountService) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}

	return []router.Route{
		{
			Path:        prefix + "/accounts",
			Method:      http.MethodGet,
			Handler:     ListAdAccounts(service, platform),
			Middlewares: allRoles,
		},
		{
			Path:        prefix + "/accounts",
			Method:      http.MethodPost,
			Handler:     CreateAdAccount(service, platform),
			Middlewares: allRoles,
		},
		{
			Path:        prefix + "/accounts/:id",
			Method:      http.MethodGet,
			Handler:     GetAdAccount(service, platform),
			Middlewares: allRoles,
		},
		{
			Path:        prefix + "/accounts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAdAccount(service, platform),
			Middlewares: allRoles,
		},
		{
			Path:        prefix + "/accounts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAdAccount(service, platform),
			Middlewares: allRoles,
		},
	}
}

func GoogleAdsReports(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/google-ads/campaigns/:account_id",
			Method:      http.MethodGet,
			Handler:     GoogleCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/google-ads/ad-groups/:account_id/:campaign_id",
			Method:      http.MethodGet,
			Handler:     GoogleAdGroups(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/google-ads/ads/:account_id/:campaign_id",
			Method:      http.MethodGet,
			Handler:     GoogleAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func MetaAdsReports(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meta-ads/campaigns/:account_id",
			Method:      http.MethodGet,
			Handler:     MetaCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta-ads/ads/:account_id",
			Method:      http.MethodGet,
			Handler:     MetaAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta-ads/ads/:account_id/:campaign_id",
			Method:      http.MethodGet,
			Handler:     MetaAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
