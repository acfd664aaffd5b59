package metadomain

import "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Paging.Next é a URL completa da próxima página; vazia na última
type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// ListResponse é o envelope das listagens da Graph API
type ListResponse[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

// Insight traz as métricas de um objeto no período consultado.
// Números chegam como string ("1000", "12.34").
type Insight struct {
	Impressions       integrator.Int64    `json:"impressions"`
	Clicks            integrator.Int64    `json:"clicks"`
	CTR               integrator.Float64  `json:"ctr"`
	Spend             integrator.Float64  `json:"spend"`
	CPC               integrator.Float64  `json:"cpc"`
	CPM               integrator.Float64  `json:"cpm"`
	Actions           []integrator.Action `json:"actions"`
	CostPerActionType []integrator.Action `json:"cost_per_action_type"`
	PurchaseROAS      []integrator.Action `json:"purchase_roas"`
	DateStart         string              `json:"date_start"`
	DateStop          string              `json:"date_stop"`
}

// InsightsEdge é a expansão "insights" aninhada no objeto
type InsightsEdge struct {
	Data []Insight `json:"data"`
}

// First devolve o primeiro insight ou um insight zerado quando não há dados no período
func (e *InsightsEdge) First() Insight {
	if e == nil || len(e.Data) == 0 {
		return Insight{}
	}
	return e.Data[0]
}

type Campaign struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Status          string        `json:"status"`
	EffectiveStatus string        `json:"effective_status"`
	Objective       string        `json:"objective"`
	StartTime       string        `json:"start_time"`
	StopTime        string        `json:"stop_time"`
	Insights        *InsightsEdge `json:"insights,omitempty"`
}
