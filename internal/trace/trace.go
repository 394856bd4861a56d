package trace

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dyapi/dyctl/internal/build"
	"github.com/getsentry/sentry-go"
	sentryotel "github.com/getsentry/sentry-go/otel"
	"github.com/pterm/pterm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/dyapi/dyctl/trace"

var (
	once   sync.Once
	tracer trace.Tracer
)

// NewSpan starts a span on the global tracer provider.
// Until Init is called the global provider is a no-op.
func NewSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	once.Do(func() {
		tracer = otel.Tracer(tracerName)
	})
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}

// SpanError records err on span and returns it unchanged.
func SpanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// CaptureError reports err to sentry and records it on the span found in ctx.
func CaptureError(ctx context.Context, err error) error {
	sentry.CaptureException(err)
	return SpanError(trace.SpanFromContext(ctx), err)
}

type Shutdown func()

// Options configures Init.
type Options struct {
	// DSN is the sentry DSN. Tracing is disabled when empty.
	DSN string
	// Environment is reported with every event.
	Environment string
	// Secrets are redacted from every event before it is sent.
	Secrets []string
}

func Init(ctx context.Context, opts Options) ([]Shutdown, error) {
	if opts.DSN == "" {
		pterm.Debug.Println("Tracing is disabled")
	}
	if opts.Environment == "" {
		opts.Environment = "dev"
	}

	redact := redactor(opts.Secrets)
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opts.DSN,
		EnableTracing:    true,
		Environment:      opts.Environment,
		Release:          build.Version,
		TracesSampleRate: 1.0,
		// ServerName can be considered PII, hardcode to N/A
		ServerName:            "N/A",
		BeforeSend:            redact,
		BeforeSendTransaction: redact,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to initialize sentry: %w", err)
	}

	cleanups := []Shutdown{func() { sentry.Flush(2 * time.Second) }}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("dyctl"),
			attribute.String("version", build.Version),
		),
	)
	if err != nil {
		return cleanups, fmt.Errorf("unable to create trace resource: %w", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sentryotel.NewSentrySpanProcessor()),
		sdktrace.WithResource(r),
	)
	cleanups = append(cleanups, func() { _ = tracerProvider.Shutdown(ctx) })

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(sentryotel.NewSentryPropagator())

	return cleanups, nil
}

// redacted replaces every secret found in trace data
const redacted = "[REDACTED]"

// redactor returns a sentry hook that strips secrets out of messages, errors and spans.
func redactor(secrets []string) func(*sentry.Event, *sentry.EventHint) *sentry.Event {
	var pairs []string
	for _, s := range secrets {
		if s != "" {
			pairs = append(pairs, s, redacted)
		}
	}
	r := strings.NewReplacer(pairs...)

	return func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
		if len(pairs) == 0 {
			return event
		}

		event.Message = r.Replace(event.Message)

		for i := range event.Exception {
			event.Exception[i].Value = r.Replace(event.Exception[i].Value)
		}

		for _, span := range event.Spans {
			span.Name = r.Replace(span.Name)
			span.Description = r.Replace(span.Description)
		}

		return event
	}
}
