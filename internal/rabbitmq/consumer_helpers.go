package rabbitmq

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Gunvolt24/streets_etl/internal/domain"
	"github.com/Gunvolt24/streets_etl/pkg/ctxmeta"
	"github.com/Gunvolt24/streets_etl/pkg/metrics"
	"github.com/Gunvolt24/streets_etl/pkg/telemetry"
	"github.com/Gunvolt24/streets_etl/pkg/validate"
)

// Политика повторов. Два коротких ретрая, затем длинные, всего не больше MaxRetries.
const (
	MaxRetries          = 5
	shortRetryThreshold = 2
)

const (
	headerXDeath     = "x-death"
	headerRetryCount = "x-retry-count"

	headerOriginalHeaders = "originalHeaders"
	headerError           = "error"
	headerFailedAt        = "failedAt"
)

// State - состояние сообщения, выводимое из счётчика смертей на каждой доставке.
type State int

const (
	StateFresh State = iota
	StateRetryingShort
	StateRetryingLong
	StateDeadLettered
)

func (s State) String() string {
	switch s {
	case StateFresh:
		return "fresh"
	case StateRetryingShort:
		return "retrying_short"
	case StateRetryingLong:
		return "retrying_long"
	case StateDeadLettered:
		return "dead_lettered"
	default:
		return "unknown"
	}
}

// StateOf: 0 -> fresh, 1 -> short, [2, MaxRetries) -> long, >= MaxRetries -> dead.
func StateOf(deaths int) State {
	switch {
	case deaths >= MaxRetries:
		return StateDeadLettered
	case deaths <= 0:
		return StateFresh
	case deaths < shortRetryThreshold:
		return StateRetryingShort
	default:
		return StateRetryingLong
	}
}

// Tier - куда уходит сообщение после неудачной обработки.
type Tier string

const (
	TierShort Tier = "short"
	TierLong  Tier = "long"
	TierDLQ   Tier = "dlq"
)

// TierFor - выбор уровня эскалации по числу смертей до текущей попытки.
func TierFor(deaths int) Tier {
	switch {
	case deaths >= MaxRetries:
		return TierDLQ
	case deaths < shortRetryThreshold:
		return TierShort
	default:
		return TierLong
	}
}

func (c *Consumer) routingKeyFor(t Tier) string {
	switch t {
	case TierDLQ:
		return c.cfg.DeadLetterQueue
	case TierShort:
		return c.cfg.RetryShortQueue
	default:
		return c.cfg.RetryLongQueue
	}
}

// deathCount - число пройденных циклов ретрая по данным брокера:
// максимум из суммы count по всем записям x-death и x-retry-count.
// Оба значения не убывают, поэтому результат монотонен.
func deathCount(headers amqp.Table) int {
	sum := 0
	if entries, ok := headers[headerXDeath].([]any); ok {
		for _, e := range entries {
			if t, ok := e.(amqp.Table); ok {
				sum += toInt(t["count"])
			}
		}
	}
	return max(sum, toInt(headers[headerRetryCount]))
}

func toInt(v any) int {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case float32:
		n = int64(x)
	case float64:
		n = int64(x)
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	return int(n)
}

// handleDelivery обрабатывает одну доставку до ack/nack.
func (c *Consumer) handleDelivery(ctx context.Context, d *amqp.Delivery) {
	deaths := deathCount(d.Headers)
	ctx = ctxmeta.WithMessageID(ctx, d.MessageId)
	ctx, span := telemetry.StartConsumeSpan(ctx, headerCarrier(d.Headers), c.cfg.Queue, d.MessageId, deaths)

	metrics.MessagesConsumed.WithLabelValues(c.cfg.Queue).Inc()

	err := c.service.SaveFromMessage(ctx, d.Body)
	if err == nil {
		c.ackSafely(ctx, d)
		metrics.MessagesProcessed.WithLabelValues(c.cfg.Queue).Inc()
		c.log.Debugf(ctx, "message processed attempt=%d state=%s", deaths+1, StateOf(deaths))
		telemetry.EndSpan(span, nil)
		return
	}

	c.handleFailure(ctx, d, deaths, err)
	telemetry.EndSpan(span, err)
}

// handleFailure публикует копию тела в retry-очередь или DLQ и только после
// подтверждения делает ack. Если публикация не удалась - nack без requeue:
// основная очередь dead-letter'ит сообщение в DLQ.
func (c *Consumer) handleFailure(ctx context.Context, d *amqp.Delivery, deaths int, cause error) {
	kind := failureKind(cause)
	metrics.MessagesFailed.WithLabelValues(kind).Inc()

	tier := TierFor(deaths)
	key := c.routingKeyFor(tier)
	c.log.Warnf(ctx, "processing failed attempt=%d kind=%s tier=%s: %v", deaths+1, kind, tier, cause)

	var msg amqp.Publishing
	if tier == TierDLQ {
		msg = deadLetterMessage(d, cause, c.now())
	} else {
		msg = retryMessage(d, deaths, c.now())
	}

	if err := c.pub.Publish(ctx, key, msg); err != nil {
		c.log.Errorf(ctx, "redirect to %s failed attempt=%d: %v (rejecting without requeue)", key, deaths+1, err)
		c.nackSafely(ctx, d)
		return
	}

	c.ackSafely(ctx, d)
	metrics.MessagesRedirected.WithLabelValues(string(tier)).Inc()

	if tier == TierDLQ {
		metrics.MessagesDeadLettered.Inc()
		c.log.Errorf(ctx, "moved to DLQ after %d attempts: %v", deaths+1, cause)
		return
	}
	c.log.Warnf(ctx, "sent to %s retry queue %s retry_count=%d", tier, key, deaths+1)
}

// retryMessage - исходное тело, исходные заголовки и x-retry-count = deaths+1.
func retryMessage(d *amqp.Delivery, deaths int, now time.Time) amqp.Publishing {
	headers := cloneHeaders(d.Headers)
	headers[headerRetryCount] = int32(deaths + 1)
	return redirectPublishing(d, headers, now)
}

// deadLetterMessage - исходное тело; заголовки: originalHeaders, error, failedAt.
func deadLetterMessage(d *amqp.Delivery, cause error, now time.Time) amqp.Publishing {
	headers := amqp.Table{
		headerOriginalHeaders: cloneHeaders(d.Headers),
		headerError:           cause.Error(),
		headerFailedAt:        now.UTC().Format(time.RFC3339),
	}
	return redirectPublishing(d, headers, now)
}

func redirectPublishing(d *amqp.Delivery, headers amqp.Table, now time.Time) amqp.Publishing {
	return amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    d.MessageId,
		Timestamp:    now.UTC(),
		Headers:      headers,
		Body:         d.Body,
	}
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, validate.ErrInvalidStreet):
		return "validation"
	case errors.Is(err, domain.ErrStorage):
		return "storage"
	default:
		return "unexpected"
	}
}

// ackSafely подтверждает доставку и логирует ошибку.
func (c *Consumer) ackSafely(ctx context.Context, d *amqp.Delivery) {
	if err := d.Ack(false); err != nil {
		c.log.Warnf(ctx, "ack failed delivery_tag=%d: %v", d.DeliveryTag, err)
	}
}

func (c *Consumer) nackSafely(ctx context.Context, d *amqp.Delivery) {
	if err := d.Nack(false, false); err != nil {
		c.log.Warnf(ctx, "nack failed delivery_tag=%d: %v", d.DeliveryTag, err)
	}
}
