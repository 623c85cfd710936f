package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

func TestNewProviderDisabled(t *testing.T) {
	before := otel.GetTracerProvider()
	shutdown := NewProvider("", false, zap.NewNop().Sugar())
	shutdown()
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestNewProviderStdout(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	shutdown := NewProvider("", true, zap.NewNop().Sugar())
	defer shutdown()
	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)
}
