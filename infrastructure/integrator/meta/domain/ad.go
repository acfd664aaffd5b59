package metadomain

type CreativeRef struct {
	ID string `json:"id"`
}

type Ad struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Status          string        `json:"status"`
	EffectiveStatus string        `json:"effective_status"`
	CampaignID      string        `json:"campaign_id"`
	AdSetID         string        `json:"adset_id"`
	Creative        *CreativeRef  `json:"creative,omitempty"`
	Insights        *InsightsEdge `json:"insights,omitempty"`
}

// CreativeID é vazio quando o anúncio não tem criativo associado
func (a *Ad) CreativeID() string {
	if a.Creative == nil {
		return ""
	}
	return a.Creative.ID
}
