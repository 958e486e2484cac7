package events

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/supplychain-dashboard/pkg/logger"
)

// Handler processes a published event. Handlers run synchronously on the
// publishing goroutine, in subscription order.
type Handler func(ctx context.Context, event interface{})

// Bus is a synchronous in-process event bus. The dashboard core has exactly
// one logical writer, so publishing completes every handler before the
// originating mutation returns to its caller.
type Bus struct {
	handlers map[string][]Handler
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for an event type
func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.handlers[eventType] = append(b.handlers[eventType], handler)

	logger.Logger.Debug().
		Str("event_type", eventType).
		Int("handlers", len(b.handlers[eventType])).
		Msg("Event handler subscribed")
}

// Publish delivers an event to every subscribed handler with tracing
func (b *Bus) Publish(ctx context.Context, eventType string, event interface{}) {
	tracer := otel.Tracer("event-bus")
	ctx, span := tracer.Start(ctx, "events.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "in-process"),
			attribute.String("event.type", eventType),
			attribute.Int("event.handlers", len(b.handlers[eventType])),
		),
	)
	defer span.End()

	for _, handler := range b.handlers[eventType] {
		handler(ctx, event)
	}

	logger.Debug(ctx).
		Str("event_type", eventType).
		Int("handlers", len(b.handlers[eventType])).
		Msg("Event published")
}
