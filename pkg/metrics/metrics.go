// Package metrics expõe as métricas Prometheus da API
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operações de agregação usadas como label
const (
	OperationTrends     = "trends"
	OperationTopRevenue = "top_revenue"
	OperationSnapshot   = "revenue_snapshot"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de requisições HTTP",
		},
		[]string{"method", "route", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duração das requisições HTTP",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ordersScannedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_orders_scanned_total",
			Help: "Pedidos lidos da fonte de dados antes do filtro",
		},
		[]string{"operation"},
	)

	ordersMatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_orders_matched_total",
			Help: "Pedidos que passaram no filtro",
		},
		[]string{"operation"},
	)

	aggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_aggregation_duration_seconds",
			Help:    "Duração das agregações em memória",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)

	danglingReferencesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_dangling_restaurant_references_total",
			Help: "Entradas do ranking descartadas por restaurante inexistente",
		},
	)

	snapshotRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revenue_snapshot_runs_total",
			Help: "Execuções do job de snapshot do ranking de receita",
		},
		[]string{"status"},
	)
)

// ObserveAggregation registra o volume e a duração de uma agregação
func ObserveAggregation(operation string, scanned, matched int, duration time.Duration) {
	ordersScannedTotal.WithLabelValues(operation).Add(float64(scanned))
	ordersMatchedTotal.WithLabelValues(operation).Add(float64(matched))
	aggregationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func AddDanglingReferences(n int) {
	if n > 0 {
		danglingReferencesTotal.Add(float64(n))
	}
}

func ObserveSnapshotRun(status string) {
	snapshotRunsTotal.WithLabelValues(status).Inc()
}

// Handler expõe o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

// InstrumentRoute mede as requisições de uma rota usando o padrão da rota como label
func InstrumentRoute(method, route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(srw, r)

		httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(srw.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
