package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/Gunvolt24/streets_etl"

	SpanConsume = "streets.consume"
	SpanPublish = "streets.publish"
)

// StartConsumeSpan - спан на одну доставку. Родитель извлекается из заголовков
// сообщения (carrier), если продюсер их проставил.
func StartConsumeSpan(
	ctx context.Context,
	carrier propagation.TextMapCarrier,
	queue, messageID string,
	deaths int,
) (context.Context, trace.Span) {
	if carrier != nil {
		ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)
	}
	return otel.Tracer(tracerName).Start(ctx, SpanConsume,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.source.name", queue),
			attribute.String("messaging.message.id", messageID),
			attribute.Int("streets.deaths", deaths),
		),
	)
}

// StartPublishSpan - спан публикации; контекст трассы пишется в carrier.
func StartPublishSpan(
	ctx context.Context,
	carrier propagation.TextMapCarrier,
	exchange, routingKey string,
) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, SpanPublish,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.destination.name", exchange),
			attribute.String("messaging.rabbitmq.routing_key", routingKey),
		),
	)
	if carrier != nil {
		otel.GetTextMapPropagator().Inject(ctx, carrier)
	}
	return ctx, span
}

// EndSpan закрывает спан, помечая ошибку (если есть).
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
