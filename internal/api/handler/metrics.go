package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
)

// MetricsHandler expõe as métricas no formato do Prometheus
func MetricsHandler(m *metrics.Metrics) http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return m.Handler()
}
