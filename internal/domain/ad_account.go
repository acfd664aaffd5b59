package domain

import "time"

// Platform identifica a plataforma de anúncios de uma conta
type Platform string

const (
	PlatformGoogleAds Platform = "google_ads"
	PlatformMetaAds   Platform = "meta_ads"
)

func (p Platform) Valid() bool {
	return p == PlatformGoogleAds || p == PlatformMetaAds
}

// AdAccount é uma conta de anúncios cadastrada. Credential é o refresh token
// (Google Ads) ou o access token (Meta) e nunca sai na resposta da API.
type AdAccount struct {
	ID         int
	Platform   Platform
	ExternalID string
	Name       string
	Credential string
	UserID     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type AdAccountResponse struct {
	ID         int       `json:"id"`
	Platform   Platform  `json:"platform"`
	ExternalID string    `json:"external_id"`
	Name       string    `json:"name"`
	UserID     int       `json:"user_id"`
	HasToken   bool      `json:"hasToken"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (a *AdAccount) ToResponse() *AdAccountResponse {
	return &AdAccountResponse{
		ID:         a.ID,
		Platform:   a.Platform,
		ExternalID: a.ExternalID,
		Name:       a.Name,
		UserID:     a.UserID,
		HasToken:   a.Credential != "",
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

type CreateAdAccountRequest struct {
	Platform   Platform `json:"-"`
	ExternalID string   `json:"external_id"`
	Name       string   `json:"name"`
	Credential string   `json:"credential"`
	// UserID vazio cadastra a conta para o próprio solicitante
	UserID int `json:"user_id,omitempty"`
}

type UpdateAdAccountRequest struct {
	ID         int      `json:"-"`
	Platform   Platform `json:"-"`
	Name       *string  `json:"name,omitempty"`
	Credential *string  `json:"credential,omitempty"`
}
