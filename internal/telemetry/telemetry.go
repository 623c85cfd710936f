package telemetry

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.uber.org/zap"
)

const serviceName = "thermodash"

func newCollectorExporter(endpoint string) (trace.SpanExporter, error) {
	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	return otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithEndpoint(endpoint),
	)
}

func newStdoutExporter() (trace.SpanExporter, error) {
	return stdouttrace.New(
		stdouttrace.WithWriter(os.Stdout),
		stdouttrace.WithoutTimestamps(),
	)
}

func newResource() *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)
}

// NewProvider installs a global tracer provider. The OTLP collector at
// endpoint wins over stdout; with neither, tracing stays a no-op.
// Returns a teardown func.
func NewProvider(endpoint string, stdout bool, lg *zap.SugaredLogger) func() {
	var (
		exp trace.SpanExporter
		err error
	)
	switch {
	case endpoint != "":
		exp, err = newCollectorExporter(endpoint)
	case stdout:
		exp, err = newStdoutExporter()
	default:
		return func() {}
	}
	if err != nil {
		lg.Errorw("unable to create trace exporter", "error", err)
		return func() {}
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(newResource()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			lg.Errorw("unable to shutdown trace provider", "error", err)
		}
	}
}
