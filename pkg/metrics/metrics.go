package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	MessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streets_messages_consumed_total",
			Help: "Number of deliveries received from RabbitMQ",
		},
		[]string{"queue"},
	)
	MessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streets_messages_processed_total",
			Help: "Number of deliveries persisted successfully",
		},
		[]string{"queue"},
	)
	MessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streets_messages_failed_total",
			Help: "Number of deliveries failed to process",
		},
		[]string{"kind"}, // validation|storage
	)
	MessagesRedirected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streets_messages_redirected_total",
			Help: "Number of failed deliveries redirected to a retry tier or DLQ",
		},
		[]string{"tier"}, // short|long|dlq
	)
	MessagesDeadLettered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "streets_messages_dead_lettered_total",
			Help: "Number of deliveries that exhausted retries",
		},
	)
	MessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streets_messages_published_total",
			Help: "Number of confirmed publishes",
		},
		[]string{"routing_key"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streets_cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "streets_cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister регистрирует метрики в default registry. Повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			MessagesConsumed, MessagesProcessed, MessagesFailed,
			MessagesRedirected, MessagesDeadLettered, MessagesPublished,
			CacheOps, CacheSize,
		)
	})
}
