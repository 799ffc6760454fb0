package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Gunvolt24/streets_etl/internal/ports"
	"github.com/Gunvolt24/streets_etl/pkg/metrics"
	"github.com/Gunvolt24/streets_etl/pkg/telemetry"
)

// ErrNotConfirmed - брокер ответил basic.nack на публикацию.
var ErrNotConfirmed = errors.New("rabbitmq: publish not confirmed")

const contentTypeJSON = "application/json"

var _ ports.MessagePublisher = (*Publisher)(nil)

// confirmChannel - публикация с отложенным подтверждением (*amqp.Channel).
type confirmChannel interface {
	PublishWithDeferredConfirmWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) (*amqp.DeferredConfirmation, error)
}

// Publisher публикует в exchange и дожидается publisher confirms.
// nil-подтверждение (канал не в confirm-режиме) считается успехом.
type Publisher struct {
	ch       confirmChannel
	exchange string
	log      ports.Logger
}

func NewPublisher(ch confirmChannel, exchange string, log ports.Logger) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, log: log}
}

// Publish - одна публикация с ожиданием подтверждения.
func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	dc, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err != nil {
		return fmt.Errorf("publish to %s/%s: %w", p.exchange, routingKey, err)
	}
	if err := waitConfirm(ctx, dc); err != nil {
		return fmt.Errorf("publish to %s/%s: %w", p.exchange, routingKey, err)
	}
	metrics.MessagesPublished.WithLabelValues(routingKey).Inc()
	return nil
}

// PublishBatch публикует все тела (persistent, application/json),
// затем ждёт подтверждения по каждому. Контекст трассы пишется в заголовки.
func (p *Publisher) PublishBatch(ctx context.Context, routingKey string, bodies [][]byte) (retErr error) {
	if len(bodies) == 0 {
		return nil
	}

	headers := amqp.Table{}
	ctx, span := telemetry.StartPublishSpan(ctx, headerCarrier(headers), p.exchange, routingKey)
	defer func() { telemetry.EndSpan(span, retErr) }()

	now := time.Now().UTC()
	pending := make([]*amqp.DeferredConfirmation, 0, len(bodies))
	for i, body := range bodies {
		dc, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
			ContentType:  contentTypeJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    now,
			Headers:      cloneHeaders(headers),
			Body:         body,
		})
		if err != nil {
			return fmt.Errorf("publish batch item %d to %s/%s: %w", i, p.exchange, routingKey, err)
		}
		pending = append(pending, dc)
	}

	for i, dc := range pending {
		if err := waitConfirm(ctx, dc); err != nil {
			return fmt.Errorf("confirm batch item %d: %w", i, err)
		}
	}

	metrics.MessagesPublished.WithLabelValues(routingKey).Add(float64(len(bodies)))
	p.log.Debugf(ctx, "batch confirmed routing_key=%s size=%d", routingKey, len(bodies))
	return nil
}

func waitConfirm(ctx context.Context, dc *amqp.DeferredConfirmation) error {
	if dc == nil {
		return nil
	}
	acked, err := dc.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return ErrNotConfirmed
	}
	return nil
}
