package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	// Registry is private so NewMetrics can be called once per test.
	Registry *prometheus.Registry

	requestDuration  *prometheus.HistogramVec
	requestsTotal    *prometheus.CounterVec
	authOutcomes     *prometheus.CounterVec
	customersCreated *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customer_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_http_requests_total",
				Help: "Total HTTP requests by route and status.",
			},
			[]string{"method", "route", "status"},
		),
		authOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_auth_outcomes_total",
				Help: "Authentication results by outcome.",
			},
			[]string{"outcome"},
		),
		customersCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_customers_created_total",
				Help: "Customers created by kind.",
			},
			[]string{"kind"},
		),
	}
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// IncrAuth counts an authentication outcome (token_issued, invalid_credentials, ...).
func (m *Metrics) IncrAuth(outcome string) {
	if m == nil {
		return
	}
	m.authOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrCustomerCreated(kind string) {
	if m == nil {
		return
	}
	m.customersCreated.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
