package googleadsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	googledomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"golang.org/x/oauth2"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Credentials são imutáveis durante uma chamada e nunca persistidas pelo cliente
type Credentials struct {
	ClientID        string
	ClientSecret    string
	DeveloperToken  string
	RefreshToken    string
	LoginCustomerID string
}

type Client interface {
	ListCampaigns(ctx context.Context, customerID string) ([]googledomain.CampaignRow, error)
	ListAdGroups(ctx context.Context, customerID, campaignID string) ([]googledomain.AdGroupRow, error)
	ListAds(ctx context.Context, customerID, adGroupID string) ([]googledomain.AdRow, error)
}

type GoogleAdsClient struct {
	cfg        config.GoogleAds
	creds      Credentials
	httpClient *http.Client
}

// NewClient troca o refresh token por um access token uma única vez.
// Falhas nessa troca retornam *integrator.VendorAuthError.
func NewClient(ctx context.Context, cfg config.GoogleAds, creds Credentials) (Client, error) {
	if creds.RefreshToken == "" {
		return nil, integrator.NewAuthError(integrator.VendorGoogleAds, "refresh token is required", nil)
	}
	if creds.DeveloperToken == "" {
		return nil, integrator.NewAuthError(integrator.VendorGoogleAds, "developer token is required", nil)
	}
	if !ValidMetricWindow(cfg.MetricWindow) {
		return nil, fmt.Errorf("googleads: invalid metric window %q", cfg.MetricWindow)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	base := &http.Client{Timeout: cfg.Timeout}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	source := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, integrator.NewAuthError(integrator.VendorGoogleAds, "failed to exchange refresh token", err)
	}

	httpClient := oauth2.NewClient(ctx, oauth2.ReuseTokenSource(token, source))
	httpClient.Timeout = cfg.Timeout

	return &GoogleAdsClient{
		cfg:        cfg,
		creds:      creds,
		httpClient: httpClient,
	}, nil
}

// search executa uma consulta GAQL e segue todas as páginas.
// Ou retorna o conjunto completo, ou falha.
func (c *GoogleAdsClient) search(ctx context.Context, customerID, query, scope string) ([]jsoniter.RawMessage, error) {
	customerID = NormalizeCustomerID(customerID)
	if !numericID.MatchString(customerID) {
		return nil, integrator.NewQueryError(integrator.VendorGoogleAds, "INVALID_ARGUMENT", "customer id must be numeric", scope, http.StatusBadRequest)
	}

	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.URL, customerID)

	var results []jsoniter.RawMessage
	pageToken := ""
	for {
		body, err := json.Marshal(googledomain.SearchRequest{Query: query, PageToken: pageToken})
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("developer-token", c.creds.DeveloperToken)
		if c.creds.LoginCustomerID != "" {
			req.Header.Set("login-customer-id", NormalizeCustomerID(c.creds.LoginCustomerID))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logrus.WithError(err).WithField("scope", scope).Error("googleads: request failed")
			return nil, integrator.NewQueryError(integrator.VendorGoogleAds, "NETWORK", err.Error(), scope, 0)
		}

		payload, err := handleResponse(resp, scope)
		if err != nil {
			return nil, err
		}

		var page googledomain.SearchResponse
		if err := json.Unmarshal(payload, &page); err != nil {
			return nil, integrator.NewQueryError(integrator.VendorGoogleAds, "MALFORMED_RESPONSE", err.Error(), scope, resp.StatusCode)
		}

		for _, raw := range page.Results {
			results = append(results, jsoniter.RawMessage(raw))
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	return results, nil
}

func handleResponse(resp *http.Response, scope string) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, integrator.NewQueryError(integrator.VendorGoogleAds, "NETWORK", err.Error(), scope, resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		var errResp googledomain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Status == "" {
			return nil, integrator.NewQueryError(integrator.VendorGoogleAds, http.StatusText(resp.StatusCode), string(body), scope, resp.StatusCode)
		}

		code := errResp.Error.Status
		if failure := errResp.FailureCode(); failure != "" {
			code = code + "/" + failure
		}

		logrus.WithFields(logrus.Fields{
			"scope":       scope,
			"status_code": resp.StatusCode,
			"code":        code,
		}).Warn("googleads: query rejected")

		return nil, integrator.NewQueryError(integrator.VendorGoogleAds, code, errResp.FailureMessage(), scope, resp.StatusCode)
	}

	return body, nil
}

func decodeRows[T any](raw []jsoniter.RawMessage, scope string) ([]T, error) {
	rows := make([]T, 0, len(raw))
	for _, item := range raw {
		var row T
		if err := json.Unmarshal(item, &row); err != nil {
			return nil, integrator.NewQueryError(integrator.VendorGoogleAds, "MALFORMED_RESPONSE", err.Error(), scope, http.StatusOK)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
