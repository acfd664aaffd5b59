package googledomain

import (
	"encoding/json"

	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
)

// SearchResponse é a resposta do endpoint googleAds:search
type SearchResponse struct {
	Results       []json.RawMessage `json:"results"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
}

// SearchRequest é o corpo enviado ao endpoint googleAds:search
type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

// Metrics traz valores monetários em micro-unidades (CostMicros, AverageCPC,
// AverageCPM, CostPerConversion) e contagens/taxas nas unidades da plataforma
type Metrics struct {
	Impressions       integrator.Int64   `json:"impressions"`
	Clicks            integrator.Int64   `json:"clicks"`
	CTR               integrator.Float64 `json:"ctr"`
	Conversions       integrator.Float64 `json:"conversions"`
	ConversionsValue  integrator.Float64 `json:"conversionsValue"`
	CostMicros        integrator.Int64   `json:"costMicros"`
	AverageCPC        integrator.Float64 `json:"averageCpc"`
	AverageCPM        integrator.Float64 `json:"averageCpm"`
	CostPerConversion integrator.Float64 `json:"costPerConversion"`
}

type Campaign struct {
	ResourceName           string `json:"resourceName"`
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
	StartDate              string `json:"startDate"`
	EndDate                string `json:"endDate"`
}

// CampaignRow é uma linha de resultado da consulta de campanhas
type CampaignRow struct {
	Campaign Campaign `json:"campaign"`
	Metrics  Metrics  `json:"metrics"`
}

type AdGroup struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Campaign     string `json:"campaign"`
}

// AdGroupRow é uma linha de resultado da consulta de grupos de anúncios
type AdGroupRow struct {
	AdGroup  AdGroup  `json:"adGroup"`
	Campaign Campaign `json:"campaign"`
	Metrics  Metrics  `json:"metrics"`
}

type AdTextAsset struct {
	Text string `json:"text"`
}

type ImageAd struct {
	ImageURL string `json:"imageUrl"`
}

type ResponsiveSearchAd struct {
	Headlines []AdTextAsset `json:"headlines"`
}

type Ad struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Type               string             `json:"type"`
	FinalURLs          []string           `json:"finalUrls"`
	ImageAd            ImageAd            `json:"imageAd"`
	ResponsiveSearchAd ResponsiveSearchAd `json:"responsiveSearchAd"`
}

type AdGroupAd struct {
	ResourceName string `json:"resourceName"`
	Status       string `json:"status"`
	Ad           Ad     `json:"ad"`
}

// AdRow é uma linha de resultado da consulta de anúncios
type AdRow struct {
	AdGroupAd AdGroupAd `json:"adGroupAd"`
	AdGroup   AdGroup   `json:"adGroup"`
	Campaign  Campaign  `json:"campaign"`
	Metrics   Metrics   `json:"metrics"`
}
