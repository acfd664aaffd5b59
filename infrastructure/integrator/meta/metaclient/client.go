package metaclient

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tamanho de página pedido à Graph API
const pageLimit = "100"

// Credentials são imutáveis durante uma chamada e nunca persistidas pelo cliente
type Credentials struct {
	AppID       string
	AppSecret   string
	AccessToken string
}

type Client interface {
	ListCampaigns(ctx context.Context, accountID string) ([]metadomain.Campaign, error)
	ListAds(ctx context.Context, accountID, campaignID string) ([]metadomain.Ad, error)
	GetCreative(ctx context.Context, creativeID string) (*metadomain.Creative, error)
}

type MetaClient struct {
	cfg        config.Meta
	creds      Credentials
	proof      string
	httpClient *http.Client
}

// NewClient valida o token e calcula o appsecret_proof uma única vez
func NewClient(cfg config.Meta, creds Credentials) (Client, error) {
	if strings.TrimSpace(creds.AccessToken) == "" {
		return nil, integrator.NewAuthError(integrator.VendorMetaAds, "access token is required", nil)
	}

	return &MetaClient{
		cfg:        cfg,
		creds:      creds,
		proof:      AppSecretProof(creds.AppSecret, creds.AccessToken),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// AppSecretProof é o HMAC-SHA256 do access token com o app secret, em hex.
// Sem app secret nenhuma prova é enviada.
func AppSecretProof(appSecret, accessToken string) string {
	if appSecret == "" {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write([]byte(accessToken))
	return hex.EncodeToString(mac.Sum(nil))
}

// NormalizeAccountID aceita "act_123" ou "123"
func NormalizeAccountID(accountID string) string {
	return strings.TrimPrefix(strings.TrimSpace(accountID), "act_")
}

func (c *MetaClient) endpoint(path string, params url.Values) string {
	params.Set("access_token", c.creds.AccessToken)
	if c.proof != "" {
		params.Set("appsecret_proof", c.proof)
	}
	return fmt.Sprintf("%s/%s?%s", c.cfg.URL, strings.TrimLeft(path, "/"), params.Encode())
}

func (c *MetaClient) get(ctx context.Context, requestURL, scope string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("scope", scope).Error("meta: request failed")
		return nil, integrator.NewQueryError(integrator.VendorMetaAds, "NETWORK", err.Error(), scope, 0)
	}

	return handleResponse(resp, scope)
}

// list segue paging.next até esgotar; ou retorna o conjunto completo, ou falha
func list[T any](ctx context.Context, c *MetaClient, requestURL, scope string) ([]T, error) {
	items := make([]T, 0)
	for requestURL != "" {
		body, err := c.get(ctx, requestURL, scope)
		if err != nil {
			return nil, err
		}

		var page metadomain.ListResponse[T]
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, integrator.NewQueryError(integrator.VendorMetaAds, "MALFORMED_RESPONSE", err.Error(), scope, http.StatusOK)
		}

		items = append(items, page.Data...)
		requestURL = page.Paging.Next
	}
	return items, nil
}

// handleResponse converte erros da Graph API; token expirado vira VendorAuthError
func handleResponse(resp *http.Response, scope string) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, integrator.NewQueryError(integrator.VendorMetaAds, "NETWORK", err.Error(), scope, resp.StatusCode)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Code == 0 {
		return nil, integrator.NewQueryError(integrator.VendorMetaAds, http.StatusText(resp.StatusCode), string(body), scope, resp.StatusCode)
	}

	logrus.WithFields(logrus.Fields{
		"scope":       scope,
		"status_code": resp.StatusCode,
		"code":        errResp.FailureCode(),
		"fbtrace_id":  errResp.Error.FBTraceID,
	}).Warn("meta: query rejected")

	queryErr := integrator.NewQueryError(integrator.VendorMetaAds, errResp.FailureCode(), errResp.Error.Message, scope, resp.StatusCode)
	if errResp.IsTokenExpired() {
		return nil, integrator.NewAuthError(integrator.VendorMetaAds, "access token expired or invalidated", queryErr)
	}

	return nil, queryErr
}
