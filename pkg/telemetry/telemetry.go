package telemetry

import (
	"context"
	"fmt"

	"github.com/stateforward/go-act/embedded"
	"github.com/stateforward/go-act/kinds"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentation = "github.com/stateforward/go-act"

type Provider struct {
	trace.TracerProvider
}

var (
	provider    = &Provider{}
	tracer      = &Tracer{}
	span        = &Span{}
	spanContext = trace.SpanContext{}
)

// NewProvider returns a provider whose spans record nothing.
func NewProvider() *Provider {
	return provider
}

func (provider *Provider) Tracer(name string, options ...trace.TracerOption) trace.Tracer {
	return tracer
}

type Tracer struct {
	trace.Tracer
}

func (tracer *Tracer) Start(ctx context.Context, name string, options ...trace.SpanStartOption) (context.Context, trace.Span) {
	return ctx, span
}

type Span struct {
	trace.Span
}

func (span *Span) End(options ...trace.SpanEndOption)                  {}
func (span *Span) AddEvent(name string, options ...trace.EventOption)  {}
func (span *Span) AddLink(link trace.Link)                             {}
func (span *Span) IsRecording() bool                                   { return false }
func (span *Span) RecordError(err error, options ...trace.EventOption) {}
func (span *Span) SetAttributes(kv ...attribute.KeyValue)              {}
func (span *Span) SetName(name string)                                 {}
func (span *Span) SetStatus(code codes.Code, description string)       {}
func (span *Span) SpanContext() trace.SpanContext                      { return spanContext }
func (span *Span) TracerProvider() trace.TracerProvider                { return provider }

// Attributes describes element as span attributes.
func Attributes(element embedded.Element) []attribute.KeyValue {
	attributes := []attribute.KeyValue{
		attribute.String("act.id", element.Id()),
		attribute.Int64("act.kind", int64(element.Kind())),
	}
	if typed, ok := element.(embedded.Typed); ok {
		attributes = append(attributes, attribute.String("act.type", typed.Type()))
	}
	if creator, ok := element.(embedded.Creator); ok {
		attributes = append(attributes,
			attribute.Bool("act.assigned", creator.Assigned()),
			attribute.Bool("act.bound", creator.Bound()),
		)
	}
	if variant := variant(element.Kind()); variant != "" {
		attributes = append(attributes, attribute.String("act.variant", variant))
	}
	return attributes
}

func variant(kind uint64) string {
	switch {
	case kinds.IsKind(kind, kinds.Bound):
		return "bound"
	case kinds.IsKind(kind, kinds.Mutable):
		return "mutable"
	case kinds.IsKind(kind, kinds.Store):
		return "store"
	case kinds.IsKind(kind, kinds.Reducer):
		return "reducer"
	}
	return ""
}

// NewTrace returns a trace hook, assignable to act.Trace, that opens one span
// per step and element. A nil provider falls back to NewProvider.
func NewTrace(tracerProvider trace.TracerProvider) func(ctx context.Context, step string, elements ...embedded.Element) func(...any) {
	if tracerProvider == nil {
		tracerProvider = NewProvider()
	}
	tracer := tracerProvider.Tracer(instrumentation)
	return func(ctx context.Context, step string, elements ...embedded.Element) func(...any) {
		spans := make([]trace.Span, 0, len(elements))
		for _, element := range elements {
			_, span := tracer.Start(ctx, "act."+step, trace.WithAttributes(Attributes(element)...))
			spans = append(spans, span)
		}
		return func(results ...any) {
			for _, span := range spans {
				for _, result := range results {
					switch result := result.(type) {
					case error:
						span.RecordError(result)
						span.SetStatus(codes.Error, result.Error())
					case []any:
						span.SetAttributes(attribute.Int("act.targets", len(result)))
					default:
						span.SetAttributes(attribute.String("act.result", fmt.Sprintf("%T", result)))
					}
				}
				span.End()
			}
		}
	}
}
