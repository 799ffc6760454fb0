package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Gunvolt24/streets_etl/pkg/metrics"
)

const queue = "streets"

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestConsumerCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.MessagesConsumed.WithLabelValues(queue))
	beforeProcessed := testutil.ToFloat64(metrics.MessagesProcessed.WithLabelValues(queue))
	beforeFailed := testutil.ToFloat64(metrics.MessagesFailed.WithLabelValues("validation"))

	metrics.MessagesConsumed.WithLabelValues(queue).Inc()
	metrics.MessagesProcessed.WithLabelValues(queue).Inc()
	metrics.MessagesFailed.WithLabelValues("validation").Inc()

	if got := testutil.ToFloat64(metrics.MessagesConsumed.WithLabelValues(queue)); got != beforeConsumed+1 {
		t.Fatalf("MessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.MessagesProcessed.WithLabelValues(queue)); got != beforeProcessed+1 {
		t.Fatalf("MessagesProcessed: got=%v want=%v", got, beforeProcessed+1)
	}
	if got := testutil.ToFloat64(metrics.MessagesFailed.WithLabelValues("validation")); got != beforeFailed+1 {
		t.Fatalf("MessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestRedirectCounters_ByTier(t *testing.T) {
	metrics.MustRegister()

	shortBefore := testutil.ToFloat64(metrics.MessagesRedirected.WithLabelValues("short"))
	dlqBefore := testutil.ToFloat64(metrics.MessagesRedirected.WithLabelValues("dlq"))
	deadBefore := testutil.ToFloat64(metrics.MessagesDeadLettered)

	metrics.MessagesRedirected.WithLabelValues("short").Inc()
	metrics.MessagesRedirected.WithLabelValues("short").Inc()
	metrics.MessagesDeadLettered.Inc()

	if got := testutil.ToFloat64(metrics.MessagesRedirected.WithLabelValues("short")); got != shortBefore+2 {
		t.Fatalf("MessagesRedirected(short): got=%v want=%v", got, shortBefore+2)
	}
	if got := testutil.ToFloat64(metrics.MessagesRedirected.WithLabelValues("dlq")); got != dlqBefore {
		t.Fatalf("MessagesRedirected(dlq): got=%v want=%v", got, dlqBefore)
	}
	if got := testutil.ToFloat64(metrics.MessagesDeadLettered); got != deadBefore+1 {
		t.Fatalf("MessagesDeadLettered: got=%v want=%v", got, deadBefore+1)
	}
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss"))

	metrics.CacheOps.WithLabelValues("hit").Inc()
	metrics.CacheOps.WithLabelValues("hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss")); got != missBefore {
		t.Fatalf("CacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheSize)

	metrics.CacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur+5 {
		t.Fatalf("CacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.CacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur {
		t.Fatalf("CacheSize restore: got=%v want=%v", got, cur)
	}
}
