package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "boost", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "boost", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "boost", Name: "store_ops_total", Help: "Review store operations."},
		[]string{"backend", "op", "outcome"}, // op: list|insert|delete|snapshot, outcome: ok|error
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "boost", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "boost", Name: "rate_limited_total", Help: "Requests rejected by the mutation rate limiter."},
		[]string{"route"},
	)
)

// Serve starts the optional sidecar metrics listener when METRICS_ADDR is set.
func Serve(addr string) {
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, StoreOps, CacheEvents, RateLimited)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveStore(backend, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	StoreOps.WithLabelValues(backend, op, outcome).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveRateLimited(route string) {
	RateLimited.WithLabelValues(route).Inc()
}
