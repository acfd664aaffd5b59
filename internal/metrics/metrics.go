package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
)

// Resultados possíveis de uma consulta às plataformas
const (
	OutcomeSuccess    = "success"
	OutcomeAuthError  = "auth_error"
	OutcomeQueryError = "query_error"
	OutcomeError      = "error"
)

// Metrics reúne as métricas Prometheus das consultas às plataformas de anúncios
type Metrics struct {
	registry *prometheus.Registry

	VendorQueries   *prometheus.CounterVec
	VendorLatency   *prometheus.HistogramVec
	NormalizedItems *prometheus.CounterVec
}

// New registra as métricas em um registry próprio
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		VendorQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vendor_queries_total",
				Help:      "Total number of reporting calls to ad platforms",
			},
			[]string{"vendor", "operation", "outcome"},
		),
		VendorLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "vendor_query_duration_seconds",
				Help:      "Reporting call latency in seconds, including pagination and fan-out",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"vendor", "operation"},
		),
		NormalizedItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "normalized_items_total",
				Help:      "Total number of normalized records returned",
			},
			[]string{"vendor", "operation"},
		),
	}
}

// Handler expõe o registry no formato texto do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveVendorCall registra uma chamada de relatório. Metrics nil é ignorado.
func (m *Metrics) ObserveVendorCall(vendor, operation string, started time.Time, items int, err error) {
	if m == nil {
		return
	}

	m.VendorQueries.WithLabelValues(vendor, operation, Outcome(err)).Inc()
	m.VendorLatency.WithLabelValues(vendor, operation).Observe(time.Since(started).Seconds())
	if err == nil {
		m.NormalizedItems.WithLabelValues(vendor, operation).Add(float64(items))
	}
}

// Outcome classifica o erro retornado por uma plataforma
func Outcome(err error) string {
	var authErr *integrator.VendorAuthError
	var queryErr *integrator.VendorQueryError

	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.As(err, &authErr):
		return OutcomeAuthError
	case errors.As(err, &queryErr):
		return OutcomeQueryError
	default:
		return OutcomeError
	}
}
