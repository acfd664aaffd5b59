package domain

// Status é o vocabulário canônico de status, comum às duas plataformas
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusPaused  Status = "PAUSED"
	StatusRemoved Status = "REMOVED"
	StatusUnknown Status = "UNKNOWN"
)

// Channel identifica o tipo de plataforma de origem
type Channel string

const (
	ChannelSearch Channel = "SEARCH"
	ChannelSocial Channel = "SOCIAL"
)

// Campaign é a campanha normalizada.
// Spend, CPC, CPA e CPM estão sempre na unidade monetária principal.
type Campaign struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      Status  `json:"status"`
	Channel     Channel `json:"channel"`
	Objective   string  `json:"objective,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
	CPC         float64 `json:"cpc"`
	CPA         float64 `json:"cpa"`
	CPM         float64 `json:"cpm"`
	ROAS        float64 `json:"roas"`
}

// AdGroup existe apenas na plataforma de busca
type AdGroup struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      Status  `json:"status"`
	CampaignID  string  `json:"campaign_id"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
	CPC         float64 `json:"cpc"`
}

// Ad é o anúncio normalizado. AdGroupName, AdSetID, ThumbnailURL e AdLink
// são preenchidos quando disponíveis; a ausência não é erro.
type Ad struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Status       Status  `json:"status"`
	CampaignID   string  `json:"campaign_id"`
	AdGroupName  *string `json:"ad_group_name"`
	AdSetID      *string `json:"adset_id,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url"`
	AdLink       *string `json:"ad_link"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	CTR          float64 `json:"ctr"`
	Conversions  int64   `json:"conversions"`
	Spend        float64 `json:"spend"`
}
