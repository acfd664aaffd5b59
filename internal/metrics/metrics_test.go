package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "Sem erro", err: nil, expected: OutcomeSuccess},
		{name: "Erro de autenticação", err: integrator.NewAuthError(integrator.VendorMetaAds, "expired", nil), expected: OutcomeAuthError},
		{name: "Erro de consulta", err: integrator.NewQueryError(integrator.VendorGoogleAds, "INTERNAL", "boom", "customer 1", 500), expected: OutcomeQueryError},
		{name: "Erro genérico", err: errors.New("boom"), expected: OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Outcome(tt.err))
		})
	}
}

func TestMetrics_ObserveVendorCall(t *testing.T) {
	m := New("ads_dashboard")

	m.ObserveVendorCall(integrator.VendorGoogleAds, "campaigns", time.Now(), 3, nil)
	m.ObserveVendorCall(integrator.VendorGoogleAds, "campaigns", time.Now(), 0, errors.New("boom"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	scraped := string(body)
	assert.Contains(t, scraped, `ads_dashboard_vendor_queries_total{operation="campaigns",outcome="success",vendor="google_ads"} 1`)
	assert.Contains(t, scraped, `ads_dashboard_vendor_queries_total{operation="campaigns",outcome="error",vendor="google_ads"} 1`)
	assert.Contains(t, scraped, `ads_dashboard_normalized_items_total{operation="campaigns",vendor="google_ads"} 3`)
	assert.Contains(t, scraped, "ads_dashboard_vendor_query_duration_seconds_count")

	var nilMetrics *Metrics
	assert.NotPanics(t, func() {
		nilMetrics.ObserveVendorCall(integrator.VendorMetaAds, "ads", time.Now(), 1, nil)
	})
}
